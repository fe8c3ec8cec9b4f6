// Copyright (C) 2019 gyee authors
//
// This file is part of the gyee library.
//
// The gyee library is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The gyee library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with the gyee library.  If not, see <http://www.gnu.org/licenses/>.

package random

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordStream(words ...uint32) *bytes.Reader {
	buf := make([]byte, WordSize*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*WordSize:], w)
	}
	return bytes.NewReader(buf)
}

type failingSource struct {
	t *testing.T
}

func (s failingSource) ReadRandom(n int) ([]byte, error) {
	s.t.Fatalf("unexpected read of %d bytes", n)
	return nil, nil
}

func TestGenerateBlockReplacesRejected(t *testing.T) {
	initial := []uint32{0x12345678, 0x87654321, 0x5a5a5a5a, 0x00000000, 0x3c3c3c3c, 0x96969696}
	// replacements for position 3: the first is too heavy, the second passes
	stream := append(append([]uint32{}, initial...), 0x7f7f7f7f, 0x0f0f0f0f)

	g := NewGenerator(NewReaderSource(wordStream(stream...)))
	b, err := g.GenerateBlock(len(initial), "pools")
	require.NoError(t, err)

	assert.Equal(t, "pools", b.Name)
	require.Equal(t, len(initial), b.Len())
	for i, w := range b.Words {
		if i == 3 {
			assert.Equal(t, uint32(0x0f0f0f0f), w)
			continue
		}
		assert.Equal(t, initial[i], w, "position %d", i)
	}
	assert.Equal(t, 2, g.Redraws())
}

func TestGenerateBlockAllAccepted(t *testing.T) {
	g := NewGenerator(NewReaderSource(rand.Reader))
	for _, n := range []int{1, 8, 9, 192, 40} {
		b, err := g.GenerateBlock(n, "pools")
		require.NoError(t, err)
		require.Len(t, b.Words, n)
		for _, w := range b.Words {
			assert.True(t, Accept(w), "%08x", w)
		}
	}
}

func TestGenerateBlockShortBulkRead(t *testing.T) {
	g := NewGenerator(NewReaderSource(wordStream(0x12345678, 0x12345678, 0x12345678)))
	b, err := g.GenerateBlock(4, "pools")
	assert.Nil(t, b)
	assert.Equal(t, ErrShortRead, errors.Cause(err))
}

func TestGenerateBlockShortReplacementRead(t *testing.T) {
	g := NewGenerator(NewReaderSource(wordStream(0x12345678, 0xffffffff)))
	b, err := g.GenerateBlock(2, "pools")
	assert.Nil(t, b)
	assert.Equal(t, ErrShortRead, errors.Cause(err))
}

func TestGenerateBlockLength(t *testing.T) {
	g := NewGenerator(failingSource{t})

	_, err := g.GenerateBlock(0, "pools")
	assert.Equal(t, ErrBlockLength, errors.Cause(err))

	_, err = g.GenerateBlock(MaxBlockWords+1, "pools")
	assert.Equal(t, ErrAllocation, errors.Cause(err))
}

func TestDecodeWordLittleEndian(t *testing.T) {
	assert.Equal(t, uint32(0x12345678), decodeWord([]byte{0x78, 0x56, 0x34, 0x12}))
}
