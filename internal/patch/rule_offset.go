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

package patch

import (
    `github.com/glslc/imgop/gfx`
    `github.com/glslc/imgop/ir`
    `github.com/glslc/imgop/meta`
)

// texel offset argument position in buffer image access calls
const _TexelOffsetArg = 3

// buffer image access kinds hit by the gfx9 zero-offset erratum
var _OffsetErratumOps = [...]bool {
    meta.OpFetch                 : true,
    meta.OpRead                  : true,
    meta.OpWrite                 : true,
    meta.OpAtomicExchange        : true,
    meta.OpAtomicCompareExchange : true,
    meta.OpAtomicIIncrement      : true,
    meta.OpAtomicIDecrement      : true,
    meta.OpAtomicIAdd            : true,
    meta.OpAtomicISub            : true,
    meta.OpAtomicSMin            : true,
    meta.OpAtomicUMin            : true,
    meta.OpAtomicSMax            : true,
    meta.OpAtomicUMax            : true,
    meta.OpAtomicAnd             : true,
    meta.OpAtomicOr              : true,
    meta.OpAtomicXor             : true,
}

func offsetErratumOp(op meta.OpKind) bool {
    return int(op) < len(_OffsetErratumOps) && _OffsetErratumOps[op]
}

// patchZeroOffset works around a gfx9 backend defect: when the texel offset
// of a buffer image access folds to a literal zero, the backend drops the
// index-enable bit and provides no address register. Hiding the zero behind
// a computation the backend cannot fold keeps the addressing mode intact.
// The top 8 bits of the program counter are architecturally zero, so
// hi32(pc) >> 24 is zero at runtime without being a constant.
//
// TODO: drop this rule once the backend fix for the gfx9 zero-offset
// addressing defect ships.
func (self *ImageOpPatcher) patchZeroOffset(fn *ir.Function, call *ir.Call) {
    if self.ver.Major != 9 {
        return
    }

    /* a non-constant or non-zero offset is not affected */
    off, ok := ir.AsConstInt(call.Operand(_TexelOffsetArg))
    if !ok || off.V != 0 {
        return
    }

    /* pc = getpc(); off = hi32(pc) >> 24 */
    pc := ir.NewCall(gfx.GetPCFunc, ir.I64)
    hi := ir.NewUnaryExpr(ir.OpHi32, ir.I32, pc)
    sh := ir.NewBinExpr(ir.OpLShr, ir.I32, hi, ir.NewConstInt(ir.I32, 24))

    /* only the offset operand changes, the call itself stays */
    fn.InsertBefore(pc, call)
    fn.InsertBefore(hi, call)
    fn.InsertBefore(sh, call)
    call.SetOperand(_TexelOffsetArg, sh)
}
