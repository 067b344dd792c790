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

package meta

import (
    `testing`

    `github.com/brianvoe/gofakeit/v6`
    `github.com/stretchr/testify/require`
)

func TestMetadata_BitPositions(t *testing.T) {
    word := uint32(OpWrite) | uint32(DimBuffer) << 6 | 1 << 9 | 1 << 13
    mm := Decode(word)
    require.Equal(t, OpWrite, mm.OpKind)
    require.Equal(t, DimBuffer, mm.Dim)
    require.True(t, mm.Arrayed)
    require.False(t, mm.Multisampled)
    require.False(t, mm.NonUniformSampler)
    require.False(t, mm.NonUniformResource)
    require.True(t, mm.WriteOnly)
}

func TestMetadata_FieldWidths(t *testing.T) {
    mm := Decode(0xffffffff)
    require.Equal(t, OpKind(0x3f), mm.OpKind)
    require.Equal(t, Dim(0x07), mm.Dim)
    require.Equal(t, uint32(0x3ffff), mm.rsvd)
}

func TestMetadata_RoundTrip(t *testing.T) {
    gofakeit.Seed(42)
    for i := 0; i < 1000; i++ {
        word := gofakeit.Uint32()
        require.Equal(t, word, Decode(word).Word(), "word %#x", word)
    }
}

func TestMetadata_ReservedBitsPreserved(t *testing.T) {
    word := uint32(0xdead << 14) | uint32(DimBuffer) << 6 | uint32(OpAtomicXor)
    require.Equal(t, word, Decode(word).Word())
}

func TestMetadata_Names(t *testing.T) {
    require.Equal(t, "query.nonlod", OpQueryNonLod.String())
    require.Equal(t, "atomic.cmpxchg", OpAtomicCompareExchange.String())
    require.Equal(t, "buffer", DimBuffer.String())
    require.Equal(t, "invalid", OpKind(0x3f).String())
}
