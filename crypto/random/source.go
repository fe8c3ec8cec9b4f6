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
	"crypto/rand"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	SourceDevice    = "device"
	SourceGetrandom = "getrandom"
	SourceCSPRNG    = "csprng"

	DefaultDevice = "/dev/urandom"
)

var (
	ErrEntropyUnavailable = errors.New("random: entropy source unavailable")
	ErrShortRead          = errors.New("random: short read from entropy source")
	ErrUnknownSource      = errors.New("random: unknown entropy source")
)

// Source hands out freshly drawn random bytes. ReadRandom returns exactly n
// bytes or fails; it never retries a partial read.
type Source interface {
	ReadRandom(n int) ([]byte, error)
}

type SourceCloser interface {
	Source
	io.Closer
}

// OpenSource opens the named entropy source once. The returned handle is
// meant to be reused for every read of the run and closed on exit.
func OpenSource(kind, device string) (SourceCloser, error) {
	switch kind {
	case SourceDevice, "":
		if device == "" {
			device = DefaultDevice
		}
		return OpenDevice(device)
	case SourceGetrandom:
		return newGetrandomSource()
	case SourceCSPRNG:
		return NewReaderSource(rand.Reader), nil
	}
	return nil, errors.Wrapf(ErrUnknownSource, "%q", kind)
}

// Device reads from an OS random device such as /dev/urandom.
type Device struct {
	path string
	f    *os.File
}

func OpenDevice(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrEntropyUnavailable, "open %s: %v", path, err)
	}
	return &Device{path: path, f: f}, nil
}

func (d *Device) ReadRandom(n int) ([]byte, error) {
	return readOnce(d.f, n, d.path)
}

func (d *Device) Close() error {
	return d.f.Close()
}

// ReaderSource adapts any io.Reader, e.g. crypto/rand.Reader or a fixed
// byte stream in tests.
type ReaderSource struct {
	r io.Reader
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

func (s *ReaderSource) ReadRandom(n int) ([]byte, error) {
	return readOnce(s.r, n, "reader")
}

func (s *ReaderSource) Close() error {
	return nil
}

// readOnce issues a single Read; anything shorter than n is a short read.
func readOnce(r io.Reader, n int, name string) ([]byte, error) {
	buf := make([]byte, n)
	got, err := r.Read(buf)
	if got != n {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, errors.Wrapf(ErrShortRead, "%s: got %d of %d bytes: %v", name, got, n, err)
	}
	return buf, nil
}
