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

// Package debug provides dump helpers for inspecting the instruction graph
// around a pass.
package debug

import (
    `fmt`
    `io`
    `os`

    `github.com/davecgh/go-spew/spew`
    `github.com/glslc/imgop/ir`
)

// Verbose additionally dumps the raw node structures after the listing.
// Controlled by the IMGOP_DEBUG_VERBOSE environment variable.
var Verbose = os.Getenv("IMGOP_DEBUG_VERBOSE") != ""

// Dump writes a labelled listing of m to w.
func Dump(w io.Writer, label string, m *ir.Module) {
    fmt.Fprintf(w, "---- %s ----\n%s\n", label, m)
    if Verbose {
        spew.Fdump(w, m)
    }
}
