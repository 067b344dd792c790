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

// Package imgop is the image operation patching stage of the shader
// compilation pipeline. It scans every stage entry point for image calls
// and rewrites the ones whose lowering depends on the target generation:
// buffer-image size queries on pre-gfx9 parts, and zero texel offsets on
// gfx9 parts.
package imgop

import (
    `github.com/glslc/imgop/debug`
    `github.com/glslc/imgop/gfx`
    `github.com/glslc/imgop/internal/patch`
    `github.com/glslc/imgop/ir`
    `github.com/glslc/imgop/pipeline`
)

// Patch runs the image operation patching pass over mod in place, visiting
// the entry point of every stage present in ep. The pass assumes exclusive
// access to mod for its whole duration.
func Patch(mod *ir.Module, ep *pipeline.EntryPoints, ver gfx.IpVersion, opts ...Option) bool {
    cfg := newOptions(opts...)

    /* dump the graph around the pass if requested */
    if cfg.dump != nil {
        debug.Dump(cfg.dump, "before imgop", mod)
        defer debug.Dump(cfg.dump, "after imgop", mod)
    }

    return patch.NewImageOpPatcher(mod, ver).Run(ep)
}
