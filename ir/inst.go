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

// Inst is an instruction: a value with an ordered operand list, owned by
// at most one function body. All operand wiring goes through the methods
// below so the use lists never go stale.
type Inst interface {
    Value
    Parent() *Function
    NumOperands() int
    Operand(i int) Value
    SetOperand(i int, v Value)
    Operands() []Value
    DropOperands()
    setparent(fn *Function)
    setid(i int)
    id() int
}

type instbase struct {
    _UserSet
    fn   *Function
    vid  int
    this Inst
    ops  []Value
}

func (self *instbase) attach(this Inst, ops []Value) {
    self.vid = -1
    self.this = this
    self.ops = ops

    /* wire the use edges */
    for _, v := range ops {
        if v == nil {
            panic("ir: nil operand")
        } else {
            v.addUser(this)
        }
    }
}

func (self *instbase) Parent() *Function {
    return self.fn
}

func (self *instbase) NumOperands() int {
    return len(self.ops)
}

func (self *instbase) Operand(i int) Value {
    if i < 0 || i >= len(self.ops) {
        panic(fmt.Sprintf("ir: operand index %d out of range [0, %d)", i, len(self.ops)))
    } else {
        return self.ops[i]
    }
}

func (self *instbase) SetOperand(i int, v Value) {
    if v == nil {
        panic("ir: nil operand")
    }
    old := self.Operand(i)
    old.delUser(self.this)
    v.addUser(self.this)
    self.ops[i] = v
}

func (self *instbase) Operands() []Value {
    return append([]Value(nil), self.ops...)
}

func (self *instbase) DropOperands() {
    for _, v := range self.ops {
        v.delUser(self.this)
    }
    self.ops = nil
}

func (self *instbase) setparent(fn *Function) { self.fn = fn }
func (self *instbase) setid(i int)            { self.vid = i }
func (self *instbase) id() int                { return self.vid }

// Call invokes a named callee with an ordered argument list. It is the
// only instruction kind the patching stage ever creates.
type Call struct {
    instbase
    Fn string
    T  Type
}

func NewCall(fn string, rt Type, args ...Value) *Call {
    p := new(Call)
    p.Fn = fn
    p.T = rt
    p.attach(p, args)
    return p
}

func (self *Call) Type() Type {
    return self.T
}

func (self *Call) String() string {
    in := make([]string, 0, len(self.ops))

    /* dump the arguments */
    for _, v := range self.ops {
        in = append(in, refstr(v))
    }

    /* calls without a result have no assignment */
    if self.T == Void {
        return fmt.Sprintf("call %s(%s)", self.Fn, strings.Join(in, ", "))
    }

    /* join them together */
    return fmt.Sprintf(
        "%s = call %s(%s) : %s",
        instref(self),
        self.Fn,
        strings.Join(in, ", "),
        self.T,
    )
}

type (
    UnaryOp  uint8
    BinaryOp uint8
)

const (
    OpHi32 UnaryOp = iota
    OpLo32
)

const (
    OpAdd BinaryOp = iota
    OpAnd
    OpLShr
)

func (self UnaryOp) String() string {
    switch self {
        case OpHi32 : return "hi32"
        case OpLo32 : return "lo32"
        default     : panic("unreachable")
    }
}

func (self BinaryOp) String() string {
    switch self {
        case OpAdd  : return "+"
        case OpAnd  : return "&"
        case OpLShr : return ">>"
        default     : panic("unreachable")
    }
}

// UnaryExpr applies Op to its single operand.
type UnaryExpr struct {
    instbase
    Op UnaryOp
    T  Type
}

func NewUnaryExpr(op UnaryOp, rt Type, v Value) *UnaryExpr {
    p := new(UnaryExpr)
    p.Op = op
    p.T = rt
    p.attach(p, []Value { v })
    return p
}

func (self *UnaryExpr) Type() Type {
    return self.T
}

func (self *UnaryExpr) String() string {
    return fmt.Sprintf("%s = %s %s : %s", instref(self), self.Op, refstr(self.ops[0]), self.T)
}

// BinExpr applies Op to its two operands.
type BinExpr struct {
    instbase
    Op BinaryOp
    T  Type
}

func NewBinExpr(op BinaryOp, rt Type, x Value, y Value) *BinExpr {
    p := new(BinExpr)
    p.Op = op
    p.T = rt
    p.attach(p, []Value { x, y })
    return p
}

func (self *BinExpr) Type() Type {
    return self.T
}

func (self *BinExpr) String() string {
    return fmt.Sprintf(
        "%s = %s %s %s : %s",
        instref(self),
        refstr(self.ops[0]),
        self.Op,
        refstr(self.ops[1]),
        self.T,
    )
}
