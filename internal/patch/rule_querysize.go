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
    `strings`

    `github.com/glslc/imgop/gfx`
    `github.com/glslc/imgop/ir`
)

// legalizeQuerySize retargets a buffer-image size query at the
// generation-qualified entry point on generations that need one. The
// replacement takes the original argument list unchanged, every use of the
// original result moves to the replacement, and the original call is left
// for the cleanup sweep.
func (self *ImageOpPatcher) legalizeQuerySize(fn *ir.Function, call *ir.Call) {
    suffix, ok := gfx.QuerySizeSuffix(self.ver)
    if !ok {
        return
    }

    /* an already qualified call is final */
    if strings.HasSuffix(call.Fn, suffix) {
        return
    }

    /* same arguments, same result type, generation-qualified callee */
    repl := ir.NewCall(call.Fn + suffix, call.Type(), call.Operands()...)
    fn.InsertBefore(repl, call)

    /* redirect the uses before scheduling the erasure */
    ir.ReplaceAllUsesWith(call, repl)
    self.schedule(call)
}
