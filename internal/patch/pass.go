/*
 * Copyright 2023 imgop Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package patch implements the image operation patching pass: one forward
// sweep over every stage entry point that legalizes or patches the image
// calls whose lowering depends on the target generation, followed by one
// cleanup sweep that erases the calls the sweep replaced.
package patch

import (
    `fmt`
    `strings`

    `github.com/glslc/imgop/gfx`
    `github.com/glslc/imgop/ir`
    `github.com/glslc/imgop/meta`
    `github.com/glslc/imgop/pipeline`
)

// ImageOpPatcher rewrites image operation calls for the target generation.
type ImageOpPatcher struct {
    _Erasures
    ver gfx.IpVersion
    mod *ir.Module
}

func NewImageOpPatcher(mod *ir.Module, ver gfx.IpVersion) *ImageOpPatcher {
    return &ImageOpPatcher {
        ver       : ver,
        mod       : mod,
        _Erasures : newErasures(),
    }
}

// Run sweeps every present stage entry point, then erases the calls that
// were replaced along the way. The erasure must stay after the last sweep:
// a replaced call keeps feeding operand use lists until it is dropped.
func (self *ImageOpPatcher) Run(ep *pipeline.EntryPoints) bool {
    ep.ForEach(func(_ pipeline.ShaderStage, fn *ir.Function) {
        self.scan(fn)
    })
    self.drain()
    return true
}

func (self *ImageOpPatcher) scan(fn *ir.Function) {
    for _, p := range fn.Instructions() {
        if call, ok := p.(*ir.Call); ok && strings.HasPrefix(call.Fn, meta.ImageCallPrefix) {
            self.visit(fn, call)
        }
    }
}

func (self *ImageOpPatcher) visit(fn *ir.Function, call *ir.Call) {
    if call.NumOperands() < 2 {
        panic(fmt.Sprintf("imgop: malformed image call %s: missing metadata operand", call.Fn))
    }

    /* image call metadata is the last argument, and is always constant */
    word, ok := ir.AsConstInt(call.Operand(call.NumOperands() - 1))
    if !ok {
        panic(fmt.Sprintf("imgop: malformed image call %s: non-constant metadata operand", call.Fn))
    }

    /* the two rules are mutually exclusive on (OpKind, Dim) */
    switch mm := meta.Decode(uint32(word.V)); {
        case mm.OpKind == meta.OpQueryNonLod && mm.Dim == meta.DimBuffer : self.legalizeQuerySize(fn, call)
        case mm.Dim == meta.DimBuffer && offsetErratumOp(mm.OpKind)      : self.patchZeroOffset(fn, call)
    }
}
