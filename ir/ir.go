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

// Package ir implements the shader instruction graph the patching stages
// operate on: a mutable, use-tracked graph of typed instructions owned by
// functions, in the shape an earlier lowering stage produced it.
//
// The graph is single-writer, passes own it exclusively for their whole
// duration and mutate it in place.
package ir

import (
    `fmt`
    `strconv`
)

// Type is the result type of a value.
type Type uint8

const (
    Void Type = iota
    I32
    I64
    F32
    V2I32
    V4F32
)

var _TypeNames = [...]string {
    Void  : "void",
    I32   : "i32",
    I64   : "i64",
    F32   : "f32",
    V2I32 : "v2i32",
    V4F32 : "v4f32",
}

func (self Type) String() string {
    if int(self) < len(_TypeNames) {
        return _TypeNames[self]
    } else {
        return "invalid"
    }
}

// Value is anything that can appear as an instruction operand. Every value
// tracks its users so that uses can be redirected wholesale.
type Value interface {
    fmt.Stringer
    Type() Type
    Users() []Inst
    addUser(p Inst)
    delUser(p Inst)
}

// _UserSet counts uses per user so an instruction using the same value in
// several operand slots is tracked correctly.
type _UserSet struct {
    u map[Inst]int
}

func (self *_UserSet) Users() []Inst {
    ret := make([]Inst, 0, len(self.u))
    for p := range self.u {
        ret = append(ret, p)
    }
    return ret
}

func (self *_UserSet) addUser(p Inst) {
    if self.u == nil {
        self.u = make(map[Inst]int, 1)
    }
    self.u[p]++
}

func (self *_UserSet) delUser(p Inst) {
    if n := self.u[p]; n > 1 {
        self.u[p] = n - 1
    } else {
        delete(self.u, p)
    }
}

// ConstInt is a compile-time-constant integer.
type ConstInt struct {
    _UserSet
    T Type
    V int64
}

func NewConstInt(t Type, v int64) *ConstInt {
    return &ConstInt {
        T: t,
        V: v,
    }
}

func (self *ConstInt) Type() Type {
    return self.T
}

func (self *ConstInt) String() string {
    return fmt.Sprintf("const.%s %d", self.T, self.V)
}

// AsConstInt reports whether v is a compile-time-constant integer.
func AsConstInt(v Value) (*ConstInt, bool) {
    p, ok := v.(*ConstInt)
    return p, ok
}

// Param is an opaque function parameter, it stands in for descriptors,
// coordinates and other values produced outside the function body.
type Param struct {
    _UserSet
    T    Type
    Name string
}

func NewParam(t Type, name string) *Param {
    return &Param {
        T    : t,
        Name : name,
    }
}

func (self *Param) Type() Type {
    return self.T
}

func (self *Param) String() string {
    return fmt.Sprintf("param %%%s : %s", self.Name, self.T)
}

// refstr renders a value the way it appears in an operand position.
func refstr(v Value) string {
    switch p := v.(type) {
        case *ConstInt : return strconv.FormatInt(p.V, 10)
        case *Param    : return "%" + p.Name
        case Inst      : return instref(p)
        default        : panic("ir: invalid value kind")
    }
}

func instref(p Inst) string {
    if i := p.id(); i >= 0 {
        return "%" + strconv.Itoa(i)
    } else {
        return "%?"
    }
}

// ReplaceAllUsesWith redirects every use of old to new. Neither value is
// otherwise touched, in particular old stays in its function body.
func ReplaceAllUsesWith(old Value, new Value) {
    if old == new {
        return
    }
    for _, u := range old.Users() {
        for i := 0; i < u.NumOperands(); i++ {
            if u.Operand(i) == old {
                u.SetOperand(i, new)
            }
        }
    }
}
