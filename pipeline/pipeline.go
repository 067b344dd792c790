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

// Package pipeline enumerates shader stages and carries the per-stage entry
// points discovered by the upstream entry-point analysis.
package pipeline

import (
    `github.com/glslc/imgop/ir`
)

// ShaderStage identifies one stage of the graphics pipeline.
type ShaderStage uint8

const (
    StageVertex ShaderStage = iota
    StageTessControl
    StageTessEval
    StageGeometry
    StageFragment
    StageCompute
    StageCount
)

var _StageNames = [...]string {
    StageVertex      : "vertex",
    StageTessControl : "tess_control",
    StageTessEval    : "tess_eval",
    StageGeometry    : "geometry",
    StageFragment    : "fragment",
    StageCompute     : "compute",
}

func (self ShaderStage) String() string {
    if int(self) < len(_StageNames) {
        return _StageNames[self]
    } else {
        return "invalid"
    }
}

// EntryPoints maps each stage to its entry function, nil means the stage is
// absent from the pipeline.
type EntryPoints struct {
    fns [StageCount]*ir.Function
}

func (self *EntryPoints) Get(stage ShaderStage) *ir.Function {
    return self.fns[stage]
}

func (self *EntryPoints) Set(stage ShaderStage, fn *ir.Function) {
    self.fns[stage] = fn
}

// ForEach visits the present stages in pipeline order.
func (self *EntryPoints) ForEach(action func(stage ShaderStage, fn *ir.Function)) {
    for i, fn := range self.fns {
        if fn != nil {
            action(ShaderStage(i), fn)
        }
    }
}
