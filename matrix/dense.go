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

package matrix

import (
	"fmt"

	"github.com/ajroetker/go-lightmat/simd"
)

// Dense is a column-major matrix, or a view into one. Element (i, j) lives
// at data[j*ld+i].
type Dense[T simd.Floats] struct {
	data []T
	rows int
	cols int
	ld   int // leading dimension: elements between column starts
}

// New returns a zeroed rows x cols matrix whose storage is aligned for the
// widest pack.
func New[T simd.Floats](rows, cols int) *Dense[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimension %dx%d", rows, cols))
	}
	return &Dense[T]{
		data: simd.AlignedSlice[T](rows*cols, simd.MaxAlignment),
		rows: rows,
		cols: cols,
		ld:   rows,
	}
}

// FromSlice wraps data as a rows x cols column-major matrix without
// copying. It panics if data is shorter than rows*cols.
func FromSlice[T simd.Floats](rows, cols int, data []T) *Dense[T] {
	if rows < 0 || cols < 0 || len(data) < rows*cols {
		panic(fmt.Sprintf("matrix: %d elements cannot back a %dx%d matrix", len(data), rows, cols))
	}
	return &Dense[T]{data: data[:rows*cols], rows: rows, cols: cols, ld: rows}
}

// ColVector wraps data as a len(data) x 1 matrix.
func ColVector[T simd.Floats](data []T) *Dense[T] {
	return FromSlice(len(data), 1, data)
}

func (d *Dense[T]) Rows() int { return d.rows }
func (d *Dense[T]) Cols() int { return d.cols }
func (d *Dense[T]) Len() int  { return d.rows * d.cols }

// Stride returns the leading dimension.
func (d *Dense[T]) Stride() int { return d.ld }

// At returns element (i, j).
func (d *Dense[T]) At(i, j int) T {
	d.check(i, j)
	return d.data[j*d.ld+i]
}

// Set stores v at (i, j).
func (d *Dense[T]) Set(i, j int, v T) {
	d.check(i, j)
	d.data[j*d.ld+i] = v
}

func (d *Dense[T]) check(i, j int) {
	if uint(i) >= uint(d.rows) || uint(j) >= uint(d.cols) {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range %dx%d", i, j, d.rows, d.cols))
	}
}

// Contiguous reports whether the elements occupy one unbroken run of
// memory in column-major order.
func (d *Dense[T]) Contiguous() bool {
	return d.cols <= 1 || d.rows == d.ld || d.rows == 0
}

// Data returns the backing elements in column-major order. It panics on a
// non-contiguous view.
func (d *Dense[T]) Data() []T {
	if !d.Contiguous() {
		panic("matrix: Data on a non-contiguous view")
	}
	return d.data[:d.Len()]
}

// Plan returns a leaf plan over the storage, or nil for a strided view.
func (d *Dense[T]) Plan() *Plan[T] {
	if !d.Contiguous() {
		return nil
	}
	return Load(d.data[:d.Len()])
}

// Col returns column j as a rows x 1 view sharing storage.
func (d *Dense[T]) Col(j int) *Dense[T] {
	if uint(j) >= uint(d.cols) {
		panic(fmt.Sprintf("matrix: column %d out of range %d", j, d.cols))
	}
	return d.view(0, j, d.rows, 1)
}

// Row returns row i as a 1 x cols view sharing storage. Its elements are ld
// apart, so the view has no plan unless ld is 1.
func (d *Dense[T]) Row(i int) *Dense[T] {
	if uint(i) >= uint(d.rows) {
		panic(fmt.Sprintf("matrix: row %d out of range %d", i, d.rows))
	}
	return d.view(i, 0, 1, d.cols)
}

// Block returns the r x c view starting at (i, j).
func (d *Dense[T]) Block(i, j, r, c int) *Dense[T] {
	if i < 0 || j < 0 || r < 0 || c < 0 || i+r > d.rows || j+c > d.cols {
		panic(fmt.Sprintf("matrix: block (%d, %d) %dx%d out of range %dx%d", i, j, r, c, d.rows, d.cols))
	}
	return d.view(i, j, r, c)
}

func (d *Dense[T]) view(i, j, r, c int) *Dense[T] {
	v := &Dense[T]{rows: r, cols: c, ld: d.ld}
	if r == 0 || c == 0 {
		v.data = []T{}
		return v
	}
	// The view ends at its last element; nothing past it is reachable.
	start := j*d.ld + i
	end := (j+c-1)*d.ld + i + r
	v.data = d.data[start:end:end]
	return v
}

// String formats the matrix row by row.
func (d *Dense[T]) String() string {
	s := "["
	for i := range d.rows {
		if i > 0 {
			s += " "
		}
		s += "["
		for j := range d.cols {
			if j > 0 {
				s += " "
			}
			s += fmt.Sprint(d.At(i, j))
		}
		s += "]"
	}
	return s + "]"
}
