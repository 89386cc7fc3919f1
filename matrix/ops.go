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

type unary[T simd.Floats] struct {
	x  Expr[T]
	op Op
}

func (u unary[T]) Rows() int { return u.x.Rows() }
func (u unary[T]) Cols() int { return u.x.Cols() }
func (u unary[T]) Len() int  { return u.x.Len() }

func (u unary[T]) At(i, j int) T {
	v := u.x.At(i, j)
	switch u.op {
	case OpAbs:
		return abs(v)
	case OpSqr:
		return v * v
	default:
		return -v
	}
}

func (u unary[T]) Plan() *Plan[T] {
	xp := u.x.Plan()
	if xp == nil {
		return nil
	}
	return &Plan[T]{Op: u.op, X: xp}
}

type binary[T simd.Floats] struct {
	x, y Expr[T]
	op   Op
}

func (b binary[T]) Rows() int { return b.x.Rows() }
func (b binary[T]) Cols() int { return b.x.Cols() }
func (b binary[T]) Len() int  { return b.x.Len() }

func (b binary[T]) At(i, j int) T {
	u, v := b.x.At(i, j), b.y.At(i, j)
	switch b.op {
	case OpAdd:
		return u + v
	case OpSub:
		return u - v
	default:
		return u * v
	}
}

func (b binary[T]) Plan() *Plan[T] {
	xp, yp := b.x.Plan(), b.y.Plan()
	if xp == nil || yp == nil {
		return nil
	}
	return &Plan[T]{Op: b.op, X: xp, Y: yp}
}

// Abs is the lazy element-wise absolute value of x.
func Abs[T simd.Floats](x Expr[T]) Expr[T] { return unary[T]{x: x, op: OpAbs} }

// Sqr is the lazy element-wise square of x.
func Sqr[T simd.Floats](x Expr[T]) Expr[T] { return unary[T]{x: x, op: OpSqr} }

// Neg is the lazy element-wise negation of x.
func Neg[T simd.Floats](x Expr[T]) Expr[T] { return unary[T]{x: x, op: OpNeg} }

// Add is the lazy element-wise sum. It panics if the shapes differ.
func Add[T simd.Floats](x, y Expr[T]) Expr[T] { return newBinary(x, y, OpAdd) }

// Sub is the lazy element-wise difference. It panics if the shapes differ.
func Sub[T simd.Floats](x, y Expr[T]) Expr[T] { return newBinary(x, y, OpSub) }

// Mul is the lazy element-wise product. It panics if the shapes differ.
func Mul[T simd.Floats](x, y Expr[T]) Expr[T] { return newBinary(x, y, OpMul) }

func newBinary[T simd.Floats](x, y Expr[T], op Op) Expr[T] {
	CheckSameShape(x, y)
	return binary[T]{x: x, y: y, op: op}
}

// CheckSameShape panics unless x and y have the same dimensions.
func CheckSameShape[T simd.Floats](x, y Expr[T]) {
	if x.Rows() != y.Rows() || x.Cols() != y.Cols() {
		panic(fmt.Sprintf("matrix: shape mismatch %dx%d vs %dx%d", x.Rows(), x.Cols(), y.Rows(), y.Cols()))
	}
}

type column[T simd.Floats] struct {
	x Expr[T]
	j int
}

func (c column[T]) Rows() int     { return c.x.Rows() }
func (c column[T]) Cols() int     { return 1 }
func (c column[T]) Len() int      { return c.x.Rows() }
func (c column[T]) At(i, _ int) T { return c.x.At(i, c.j) }

func (c column[T]) Plan() *Plan[T] {
	p := c.x.Plan()
	if p == nil {
		return nil
	}
	n := c.x.Rows()
	return p.Slice(c.j*n, n)
}

// Column returns column j of any expression. A planned expression yields a
// planned column, since columns are contiguous in column-major order.
func Column[T simd.Floats](x Expr[T], j int) Expr[T] {
	if uint(j) >= uint(x.Cols()) {
		panic(fmt.Sprintf("matrix: column %d out of range %d", j, x.Cols()))
	}
	if d, ok := x.(*Dense[T]); ok {
		return d.Col(j)
	}
	return column[T]{x: x, j: j}
}

// Materialize evaluates x into a new matrix.
func Materialize[T simd.Floats](x Expr[T]) *Dense[T] {
	out := New[T](x.Rows(), x.Cols())
	if p := x.Plan(); p != nil {
		for k := range out.data {
			out.data[k] = p.Eval(k)
		}
		return out
	}
	for j := range x.Cols() {
		for i := range x.Rows() {
			out.data[j*out.ld+i] = x.At(i, j)
		}
	}
	return out
}
