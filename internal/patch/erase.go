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
    `github.com/glslc/imgop/ir`

    `github.com/oleiade/lane`
)

// _Erasures collects the instructions a sweep replaced so they can be
// destroyed after the traversal, never while it is still running. The
// queue keeps drain order stable, the set makes scheduling idempotent.
type _Erasures struct {
    q *lane.Queue
    s map[ir.Inst]struct{}
}

func newErasures() _Erasures {
    return _Erasures {
        q: lane.NewQueue(),
        s: make(map[ir.Inst]struct{}),
    }
}

func (self *_Erasures) schedule(p ir.Inst) {
    if _, ok := self.s[p]; !ok {
        self.s[p] = struct{}{}
        self.q.Enqueue(p)
    }
}

// drain destroys every scheduled instruction. Every use of every scheduled
// instruction must already have been redirected elsewhere.
func (self *_Erasures) drain() {
    for !self.q.Empty() {
        p := self.q.Dequeue().(ir.Inst)
        fn := p.Parent()
        p.DropOperands()
        fn.Remove(p)
        delete(self.s, p)
    }
}
