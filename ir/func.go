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

package ir

import (
    `fmt`
    `strings`
)

// Function is a program-ordered instruction body.
type Function struct {
    Name string
    body []Inst
    nid  int
}

func NewFunction(name string) *Function {
    return &Function {
        Name: name,
    }
}

// Append attaches p at the end of the body.
func (self *Function) Append(p Inst) {
    self.insert(p, len(self.body))
}

// InsertBefore attaches p immediately before an instruction already in
// this body.
func (self *Function) InsertBefore(p Inst, before Inst) {
    self.insert(p, self.index(before))
}

// Remove detaches p from the body. The instruction must not have any
// remaining uses, redirect them first.
func (self *Function) Remove(p Inst) {
    if len(p.Users()) != 0 {
        panic(fmt.Sprintf("ir: removing %s while it still has uses", p))
    }
    i := self.index(p)
    self.body = append(self.body[:i], self.body[i + 1:]...)
    p.setparent(nil)
}

// Instructions returns a snapshot of the body in program order, it stays
// valid while the body is mutated underneath.
func (self *Function) Instructions() []Inst {
    return append([]Inst(nil), self.body...)
}

func (self *Function) Len() int {
    return len(self.body)
}

func (self *Function) String() string {
    ret := make([]string, 0, len(self.body) + 2)
    ret = append(ret, fmt.Sprintf("func %s {", self.Name))
    for _, p := range self.body {
        ret = append(ret, "    " + p.String())
    }
    ret = append(ret, "}")
    return strings.Join(ret, "\n")
}

func (self *Function) insert(p Inst, i int) {
    if p.Parent() != nil {
        panic(fmt.Sprintf("ir: %s is already attached to a function", p))
    }

    /* number the value and take ownership */
    p.setparent(self)
    p.setid(self.nid)
    self.nid++

    /* shift the tail up one slot */
    self.body = append(self.body, nil)
    copy(self.body[i + 1:], self.body[i:])
    self.body[i] = p
}

func (self *Function) index(p Inst) int {
    for i, v := range self.body {
        if v == p {
            return i
        }
    }
    panic(fmt.Sprintf("ir: %s does not belong to function %s", p, self.Name))
}

// Module is a compilation unit, it owns every function and is mutated in
// place by the passes that run over it.
type Module struct {
    Name  string
    funcs []*Function
}

func NewModule(name string) *Module {
    return &Module {
        Name: name,
    }
}

func (self *Module) AddFunction(fn *Function) {
    if self.FuncByName(fn.Name) != nil {
        panic(fmt.Sprintf("ir: duplicate function %s in module %s", fn.Name, self.Name))
    }
    self.funcs = append(self.funcs, fn)
}

func (self *Module) FuncByName(name string) *Function {
    for _, fn := range self.funcs {
        if fn.Name == name {
            return fn
        }
    }
    return nil
}

func (self *Module) Functions() []*Function {
    return append([]*Function(nil), self.funcs...)
}

func (self *Module) String() string {
    ret := make([]string, 0, len(self.funcs) + 1)
    ret = append(ret, fmt.Sprintf("module %s", self.Name))
    for _, fn := range self.funcs {
        ret = append(ret, fn.String())
    }
    return strings.Join(ret, "\n\n")
}
