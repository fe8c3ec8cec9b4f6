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

//go:build linux

package random

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// getrandomSource draws from the kernel pool through getrandom(2), so no
// device node needs to exist in the build environment.
type getrandomSource struct{}

func newGetrandomSource() (SourceCloser, error) {
	var probe [1]byte
	if _, err := unix.Getrandom(probe[:], unix.GRND_NONBLOCK); err != nil && err != unix.EAGAIN {
		return nil, errors.Wrapf(ErrEntropyUnavailable, "getrandom: %v", err)
	}
	return getrandomSource{}, nil
}

func (getrandomSource) ReadRandom(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := unix.Getrandom(buf, 0)
	if got != n {
		return nil, errors.Wrapf(ErrShortRead, "getrandom: got %d of %d bytes: %v", got, n, err)
	}
	return buf, nil
}

func (getrandomSource) Close() error {
	return nil
}
