// Copyright 2025 go-lightmat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-lightmat/simd"
)

// dtype is the element type flag, f32 or f64.
type dtype string

const (
	dtypeF32 dtype = "f32"
	dtypeF64 dtype = "f64"
)

var _ pflag.Value = (*dtype)(nil)

func (d *dtype) String() string { return string(*d) }
func (d *dtype) Type() string   { return "dtype" }

func (d *dtype) Set(s string) error {
	switch dtype(s) {
	case dtypeF32, dtypeF64:
		*d = dtype(s)
		return nil
	}
	return fmt.Errorf("%w %q (want f32 or f64)", errBadDType, s)
}

func bitSize[T simd.Floats]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

func parseValues[T simd.Floats](args []string) ([]T, error) {
	vals := make([]T, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, bitSize[T]())
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		vals[i] = T(v)
	}
	return vals, nil
}

// mappedFile is a read-only memory-mapped file of raw floats.
type mappedFile struct {
	f    *os.File
	data mmap.MMap
}

func openMapped(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Zero-length files cannot be mapped.
	if st.Size() == 0 {
		return &mappedFile{f: f}, nil
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &mappedFile{f: f, data: m}, nil
}

func (m *mappedFile) Close() error {
	if m.data != nil {
		if err := m.data.Unmap(); err != nil {
			return err
		}
		m.data = nil
	}
	return m.f.Close()
}

// floatsOf views the mapping as native-endian floats. The slice is valid
// until Close and must not be written.
func floatsOf[T simd.Floats](m *mappedFile) ([]T, error) {
	size := bitSize[T]() / 8
	if len(m.data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", errShape, len(m.data), size)
	}
	if len(m.data) == 0 {
		return []T{}, nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&m.data[0])), len(m.data)/size), nil
}

// shape resolves rows x cols for n elements. Zero means unset: rows
// defaults to n, cols to n/rows.
func shape(n, rows, cols int) (int, int, error) {
	switch {
	case rows < 0 || cols < 0:
		return 0, 0, fmt.Errorf("%w: negative dimension", errShape)
	case rows == 0 && cols == 0:
		return n, 1, nil
	case rows == 0:
		rows = n / cols
	case cols == 0:
		cols = n / rows
	}
	if rows*cols != n {
		return 0, 0, fmt.Errorf("%w: %dx%d does not hold %d values", errShape, rows, cols, n)
	}
	return rows, cols, nil
}
