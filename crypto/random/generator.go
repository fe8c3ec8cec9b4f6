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
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/yeeco/seedgen/utils/logging"
)

const (
	WordSize = 4

	// MaxBlockWords caps a single request; larger blocks are refused as an
	// allocation failure.
	MaxBlockWords = 1 << 20
)

var (
	ErrAllocation  = errors.New("random: cannot allocate block")
	ErrBlockLength = errors.New("random: block length must be positive")
)

// Block is one named array of accepted words.
type Block struct {
	Name  string
	Words []uint32
}

func (b *Block) Len() int {
	return len(b.Words)
}

// Generator draws words from a Source and replaces any word that fails
// Accept until the whole block is accepted.
type Generator struct {
	src Source

	// redraws counts replacement words drawn over the generator's lifetime.
	redraws int
}

func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

func (g *Generator) Redraws() int {
	return g.redraws
}

// GenerateBlock returns n accepted words labelled name. Words are read in one
// bulk read; each rejected word is replaced in place by single-word reads.
// The loop per position has no iteration cap: with a sane source a
// rejection is rare and a run of them vanishingly unlikely. Any read failure
// aborts the whole block.
func (g *Generator) GenerateBlock(n int, name string) (*Block, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrBlockLength, "%s: %d words", name, n)
	}
	if n > MaxBlockWords {
		return nil, errors.Wrapf(ErrAllocation, "%s: %d words exceeds %d", name, n, MaxBlockWords)
	}

	raw, err := g.src.ReadRandom(WordSize * n)
	if err != nil {
		return nil, errors.Wrapf(err, "block %s", name)
	}
	words := make([]uint32, n)
	for i := range words {
		words[i] = decodeWord(raw[i*WordSize:])
	}

	replaced := 0
	for i := range words {
		for !Accept(words[i]) {
			one, err := g.src.ReadRandom(WordSize)
			if err != nil {
				return nil, errors.Wrapf(err, "block %s, word %d", name, i)
			}
			words[i] = decodeWord(one)
			replaced++
		}
	}
	g.redraws += replaced

	logging.Logger.WithFields(logrus.Fields{
		"block":    name,
		"words":    n,
		"replaced": replaced,
	}).Debug("generated block")

	return &Block{Name: name, Words: words}, nil
}

// decodeWord reads a word little-endian. Accept inspects all four byte
// lanes alike, so the byte order never changes which words pass.
func decodeWord(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
