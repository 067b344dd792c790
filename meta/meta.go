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

// Package meta defines the calling convention shared by every stage that
// produces or consumes image operation calls: the callee name prefix and
// the packed metadata word carried as the last operand of every such call.
//
// The bit layout of the metadata word is a cross-stage binary contract, it
// must match the producing stage bit-for-bit.
package meta

// ImageCallPrefix marks a callee as an image operation. Every call whose
// callee name starts with this prefix carries a metadata word as its last
// operand and has at least two operands.
const ImageCallPrefix = "img."

// OpKind is the kind of image operation a call performs.
type OpKind uint8

const (
    OpSample OpKind = iota
    OpFetch
    OpGather
    OpQueryNonLod
    OpQueryLod
    OpRead
    OpWrite
    OpAtomicLoad
    OpAtomicStore
    OpAtomicExchange
    OpAtomicCompareExchange
    OpAtomicIIncrement
    OpAtomicIDecrement
    OpAtomicIAdd
    OpAtomicISub
    OpAtomicSMin
    OpAtomicUMin
    OpAtomicSMax
    OpAtomicUMax
    OpAtomicAnd
    OpAtomicOr
    OpAtomicXor
)

var _OpKindNames = [...]string {
    OpSample                : "sample",
    OpFetch                 : "fetch",
    OpGather                : "gather",
    OpQueryNonLod           : "query.nonlod",
    OpQueryLod              : "query.lod",
    OpRead                  : "read",
    OpWrite                 : "write",
    OpAtomicLoad            : "atomic.load",
    OpAtomicStore           : "atomic.store",
    OpAtomicExchange        : "atomic.exchange",
    OpAtomicCompareExchange : "atomic.cmpxchg",
    OpAtomicIIncrement      : "atomic.iincrement",
    OpAtomicIDecrement      : "atomic.idecrement",
    OpAtomicIAdd            : "atomic.iadd",
    OpAtomicISub            : "atomic.isub",
    OpAtomicSMin            : "atomic.smin",
    OpAtomicUMin            : "atomic.umin",
    OpAtomicSMax            : "atomic.smax",
    OpAtomicUMax            : "atomic.umax",
    OpAtomicAnd             : "atomic.and",
    OpAtomicOr              : "atomic.or",
    OpAtomicXor             : "atomic.xor",
}

func (self OpKind) String() string {
    if int(self) < len(_OpKindNames) {
        return _OpKindNames[self]
    } else {
        return "invalid"
    }
}

// Dim is the dimensionality of the image a call operates on. The values
// follow the SPIR-V Dim numbering.
type Dim uint8

const (
    Dim1D Dim = iota
    Dim2D
    Dim3D
    DimCube
    DimRect
    DimBuffer
    DimSubpassData
)

var _DimNames = [...]string {
    Dim1D          : "1d",
    Dim2D          : "2d",
    Dim3D          : "3d",
    DimCube        : "cube",
    DimRect        : "rect",
    DimBuffer      : "buffer",
    DimSubpassData : "subpass",
}

func (self Dim) String() string {
    if int(self) < len(_DimNames) {
        return _DimNames[self]
    } else {
        return "invalid"
    }
}

const (
    _B_opkind  = 0
    _B_dim     = 6
    _B_arrayed = 9
    _B_ms      = 10
    _B_nusamp  = 11
    _B_nures   = 12
    _B_wronly  = 13
    _B_rsvd    = 14
)

const (
    _M_opkind = 0x3f
    _M_dim    = 0x07
    _M_flag   = 0x01
)

// CallMetadata is the unpacked form of the metadata word.
type CallMetadata struct {
    OpKind             OpKind
    Dim                Dim
    Arrayed            bool
    Multisampled       bool
    NonUniformSampler  bool
    NonUniformResource bool
    WriteOnly          bool
    rsvd               uint32
}

// Decode unpacks a metadata word. Reserved bits are preserved and survive
// a Word round-trip untouched.
func Decode(word uint32) CallMetadata {
    return CallMetadata {
        OpKind             : OpKind((word >> _B_opkind) & _M_opkind),
        Dim                : Dim((word >> _B_dim) & _M_dim),
        Arrayed            : (word >> _B_arrayed) & _M_flag != 0,
        Multisampled       : (word >> _B_ms) & _M_flag != 0,
        NonUniformSampler  : (word >> _B_nusamp) & _M_flag != 0,
        NonUniformResource : (word >> _B_nures) & _M_flag != 0,
        WriteOnly          : (word >> _B_wronly) & _M_flag != 0,
        rsvd               : word >> _B_rsvd,
    }
}

// Word packs the metadata back into its wire form.
func (self CallMetadata) Word() uint32 {
    ret := uint32(self.OpKind & _M_opkind) << _B_opkind
    ret |= uint32(self.Dim & _M_dim) << _B_dim
    ret |= flagbit(self.Arrayed, _B_arrayed)
    ret |= flagbit(self.Multisampled, _B_ms)
    ret |= flagbit(self.NonUniformSampler, _B_nusamp)
    ret |= flagbit(self.NonUniformResource, _B_nures)
    ret |= flagbit(self.WriteOnly, _B_wronly)
    ret |= self.rsvd << _B_rsvd
    return ret
}

func flagbit(v bool, bit uint32) uint32 {
    if v {
        return 1 << bit
    } else {
        return 0
    }
}
