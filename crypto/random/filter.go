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

// Acceptance bounds on the Hamming weight of a word.
//
// Output is biased, mildly, towards words with about 16 of 32 bits set:
// adding, xoring or multiplying such a word into other data then flips any
// given bit with a chance close to one half, which is what pool mixing
// wants. Bytes that are all zeros or all ones are refused as well. This
// costs a little entropy; it is a deliberate compromise.
const (
	MinWeight = 8
	MaxWeight = 32 - MinWeight
)

// Accept reports whether w may be used as a seed word: its Hamming weight
// lies in [MinWeight, MaxWeight] and each of its four byte lanes has at least
// one bit set and one bit clear.
func Accept(w uint32) bool {
	h := Hamming(w)
	if h < MinWeight || h > MaxWeight {
		return false
	}
	for shift := uint(0); shift < 32; shift += 8 {
		switch byte(w >> shift) {
		case 0x00, 0xff:
			return false
		}
	}
	return true
}

// Hamming counts set bits with Kernighan's method.
func Hamming(w uint32) int {
	h := 0
	for ; w != 0; h++ {
		w &= w - 1 // clear the lowest set bit
	}
	return h
}
