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

package header

import (
	"github.com/yeeco/seedgen/config"
	"github.com/yeeco/seedgen/crypto/random"
)

const (
	PoolsBlock     = "pools"
	ConstantsBlock = "constants"
)

type Options struct {
	// GCM adds the hash constants block and its counter pointer.
	GCM bool
}

// Build renders the complete header. Nothing is returned unless every block
// was generated, so a failed run never yields a partial file.
func Build(cfg *config.Config, gen *random.Generator, opts Options) ([]byte, error) {
	e := NewEmitter(cfg.Output.PerLine)

	e.Comment(cfg.Output.Title)
	// the driver checks these against its own definitions
	e.Define("INPUT_POOL_WORDS", cfg.InputPoolWords())
	e.Define("OUTPUT_POOL_WORDS", cfg.OutputPoolWords())
	e.Define("INPUT_POOL_SHIFT", cfg.Pool.InputShift)
	e.Blank()

	pools, err := gen.GenerateBlock(cfg.TotalPoolWords(), PoolsBlock)
	if err != nil {
		return nil, err
	}
	e.Block(pools)

	if opts.GCM {
		// Two 128-bit constants per pool: one seeds the accumulator, one
		// takes the role of H. Counter words follow the rows.
		e.Define("ARRAY_WORDS", cfg.ArrayWords())
		e.Blank()
		constants, err := gen.GenerateBlock(cfg.ConstantsWords(), ConstantsBlock)
		if err != nil {
			return nil, err
		}
		e.Block(constants)
		e.Line("static u32 *counter = constants + ARRAY_WORDS ;")
	}

	return e.Bytes(), nil
}
