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

package gfx

import (
    `fmt`
)

// IpVersion identifies the graphics IP generation the module is being
// compiled for. It is fixed for the whole compilation and read-only for
// every pass.
type IpVersion struct {
    Major    uint32
    Minor    uint32
    Stepping uint32
}

func (self IpVersion) String() string {
    return fmt.Sprintf("gfx%d.%d.%d", self.Major, self.Minor, self.Stepping)
}

// GetPCFunc is the intrinsic that reads the current program counter as an
// i64. The top 8 bits of the program counter are architecturally zero on
// every supported generation.
const GetPCFunc = "gfx.s.getpc"

// Buffer-image size queries lower differently across generations, older
// generations need an explicit generation-qualified entry point while gfx9
// onwards uses the default lowering. Rows are matched in order against the
// major version, first hit wins.
var _QuerySizeSuffixes = [...]struct {
    major  uint32
    suffix string
} {
    { major: 7, suffix: ".gfx6" },
    { major: 8, suffix: ".gfx8" },
}

// QuerySizeSuffix returns the callee suffix that selects the correct
// buffer-image size query lowering for ver, or false if the default
// lowering is already correct.
func QuerySizeSuffix(ver IpVersion) (string, bool) {
    for _, v := range _QuerySizeSuffixes {
        if ver.Major <= v.major {
            return v.suffix, true
        }
    }
    return "", false
}
