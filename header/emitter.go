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
	"fmt"

	"github.com/yeeco/seedgen/crypto/random"
)

// Emitter renders C declarations into an in-memory buffer.
type Emitter struct {
	buf     bytes.Buffer
	perLine int
}

func NewEmitter(perLine int) *Emitter {
	if perLine < 1 {
		perLine = 1
	}
	return &Emitter{perLine: perLine}
}

func (e *Emitter) Comment(text string) {
	fmt.Fprintf(&e.buf, "/* %s */\n\n", text)
}

func (e *Emitter) Define(name string, value int) {
	fmt.Fprintf(&e.buf, "#define %s %d\n", name, value)
}

func (e *Emitter) Line(text string) {
	e.buf.WriteString(text)
	e.buf.WriteByte('\n')
}

func (e *Emitter) Blank() {
	e.buf.WriteByte('\n')
}

// Block writes b as a static u32 array, perLine hex literals to a line.
func (e *Emitter) Block(b *random.Block) {
	fmt.Fprintf(&e.buf, "static u32 %s[] = {\n", b.Name)
	last := len(b.Words) - 1
	for i, w := range b.Words {
		fmt.Fprintf(&e.buf, "0x%08x", w)
		switch {
		case i == last:
			e.buf.WriteString(" } ;\n")
		case i%e.perLine == e.perLine-1:
			e.buf.WriteString(",\n")
		default:
			e.buf.WriteString(", ")
		}
	}
	e.buf.WriteByte('\n')
}

func (e *Emitter) Bytes() []byte {
	return e.buf.Bytes()
}
