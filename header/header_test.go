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
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeeco/seedgen/config"
	"github.com/yeeco/seedgen/crypto/random"
)

const smallConfig = `
[pool]
input_shift = 6
output_shift = 5
[gcm]
rows = 1
counter_words = 2
[output]
per_line = 3
title = "test header"
`

func generator(words ...uint32) *random.Generator {
	buf := make([]byte, random.WordSize*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*random.WordSize:], w)
	}
	return random.NewGenerator(random.NewReaderSource(bytes.NewReader(buf)))
}

func TestEmitterBlock(t *testing.T) {
	e := NewEmitter(8)
	e.Block(&random.Block{Name: "pools", Words: []uint32{1, 2, 3, 4, 5, 6, 7, 8, 0xdeadbeef}})
	assert.Equal(t, "static u32 pools[] = {\n"+
		"0x00000001, 0x00000002, 0x00000003, 0x00000004, 0x00000005, 0x00000006, 0x00000007, 0x00000008,\n"+
		"0xdeadbeef } ;\n\n", string(e.Bytes()))

	e = NewEmitter(8)
	e.Block(&random.Block{Name: "x", Words: []uint32{1, 2, 3, 4, 5, 6, 7, 8}})
	assert.Equal(t, "static u32 x[] = {\n"+
		"0x00000001, 0x00000002, 0x00000003, 0x00000004, 0x00000005, 0x00000006, 0x00000007, 0x00000008 } ;\n\n",
		string(e.Bytes()))

	e = NewEmitter(8)
	e.Block(&random.Block{Name: "one", Words: []uint32{0x12345678}})
	assert.Equal(t, "static u32 one[] = {\n0x12345678 } ;\n\n", string(e.Bytes()))
}

func TestBuild(t *testing.T) {
	cfg, err := config.Decode(smallConfig)
	require.NoError(t, err)

	out, err := Build(cfg, generator(0x12345678, 0x87654321, 0x5a5a5a5a, 0x3c3c3c3c), Options{})
	require.NoError(t, err)
	assert.Equal(t, "/* test header */\n\n"+
		"#define INPUT_POOL_WORDS 2\n"+
		"#define OUTPUT_POOL_WORDS 1\n"+
		"#define INPUT_POOL_SHIFT 6\n\n"+
		"static u32 pools[] = {\n"+
		"0x12345678, 0x87654321, 0x5a5a5a5a,\n"+
		"0x3c3c3c3c } ;\n\n", string(out))
}

func TestBuildGCM(t *testing.T) {
	cfg, err := config.Decode(smallConfig)
	require.NoError(t, err)

	gen := generator(
		0x12345678, 0x87654321, 0x5a5a5a5a, 0x3c3c3c3c,
		0x96969696, 0x0f0f0f0f, 0xffffffff, 0x12345678, 0x87654321, 0x5a5a5a5a, 0x3c3c3c3c,
	)
	out, err := Build(cfg, gen, Options{GCM: true})
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasSuffix(text, "#define ARRAY_WORDS 4\n\n"+
		"static u32 constants[] = {\n"+
		"0x96969696, 0x0f0f0f0f, 0x3c3c3c3c,\n"+
		"0x12345678, 0x87654321, 0x5a5a5a5a } ;\n\n"+
		"static u32 *counter = constants + ARRAY_WORDS ;\n"), text)
	assert.NotContains(t, text, "0xffffffff")
}

func TestBuildShortRead(t *testing.T) {
	cfg, err := config.Decode(smallConfig)
	require.NoError(t, err)

	out, err := Build(cfg, generator(0x12345678, 0x87654321), Options{})
	assert.Nil(t, out)
	assert.Equal(t, random.ErrShortRead, errors.Cause(err))

	// pools succeed, constants fail: still nothing
	out, err = Build(cfg, generator(0x12345678, 0x87654321, 0x5a5a5a5a, 0x3c3c3c3c), Options{GCM: true})
	assert.Nil(t, out)
	assert.Equal(t, random.ErrShortRead, errors.Cause(err))
}
