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

package imgop

import (
    `bytes`
    `testing`

    `github.com/glslc/imgop/gfx`
    `github.com/glslc/imgop/ir`
    `github.com/glslc/imgop/meta`
    `github.com/glslc/imgop/pipeline`
    `github.com/stretchr/testify/require`
)

func mkword(op meta.OpKind, dim meta.Dim) *ir.ConstInt {
    mm := meta.CallMetadata {
        OpKind : op,
        Dim    : dim,
    }
    return ir.NewConstInt(ir.I32, int64(mm.Word()))
}

func TestPatch_EndToEnd(t *testing.T) {
    mod := ir.NewModule("shader")
    fs := ir.NewFunction("fs_main")
    cs := ir.NewFunction("cs_main")
    mod.AddFunction(fs)
    mod.AddFunction(cs)

    /* fragment stage: a buffer size query and an unrelated 2d sample */
    q := ir.NewCall("img.query.size", ir.V2I32, ir.NewParam(ir.I64, "d0"), mkword(meta.OpQueryNonLod, meta.DimBuffer))
    s := ir.NewCall(
        "img.sample.f.2d",
        ir.V4F32,
        ir.NewParam(ir.I64, "d1"),
        ir.NewParam(ir.I64, "samp"),
        ir.NewParam(ir.V4F32, "uv"),
        mkword(meta.OpSample, meta.Dim2D),
    )
    fs.Append(q)
    fs.Append(ir.NewCall("consume", ir.Void, q))
    fs.Append(s)

    /* compute stage: a buffer read with a literal zero offset */
    r := ir.NewCall(
        "img.read.buffer",
        ir.V4F32,
        ir.NewParam(ir.I64, "d2"),
        ir.NewParam(ir.I32, "coord"),
        ir.NewParam(ir.V4F32, "unused"),
        ir.NewConstInt(ir.I32, 0),
        mkword(meta.OpRead, meta.DimBuffer),
    )
    cs.Append(r)

    ep := new(pipeline.EntryPoints)
    ep.Set(pipeline.StageFragment, fs)
    ep.Set(pipeline.StageCompute, cs)

    var buf bytes.Buffer
    require.True(t, Patch(mod, ep, gfx.IpVersion { Major: 8 }, WithDump(&buf)))

    /* gfx8: the query is retargeted, sample and read stay */
    require.Equal(t, "img.query.size.gfx8", fs.Instructions()[0].(*ir.Call).Fn)
    require.Nil(t, q.Parent())
    require.Same(t, s, fs.Instructions()[2].(*ir.Call))
    require.Equal(t, 1, cs.Len())

    require.Contains(t, buf.String(), "before imgop")
    require.Contains(t, buf.String(), "after imgop")
    require.Contains(t, buf.String(), "img.query.size.gfx8")
}

func TestPatch_Gfx9ZeroOffset(t *testing.T) {
    mod := ir.NewModule("shader")
    cs := ir.NewFunction("cs_main")
    mod.AddFunction(cs)

    r := ir.NewCall(
        "img.read.buffer",
        ir.V4F32,
        ir.NewParam(ir.I64, "desc"),
        ir.NewParam(ir.I32, "coord"),
        ir.NewParam(ir.V4F32, "unused"),
        ir.NewConstInt(ir.I32, 0),
        mkword(meta.OpRead, meta.DimBuffer),
    )
    cs.Append(r)

    ep := new(pipeline.EntryPoints)
    ep.Set(pipeline.StageCompute, cs)
    require.True(t, Patch(mod, ep, gfx.IpVersion { Major: 9 }))

    require.Equal(t, 4, cs.Len())
    sh := r.Operand(3).(*ir.BinExpr)
    require.Equal(t, ir.OpLShr, sh.Op)

    /* the synthesized offset is not a constant, so a second run is a no-op */
    require.True(t, Patch(mod, ep, gfx.IpVersion { Major: 9 }))
    require.Equal(t, 4, cs.Len())
}
