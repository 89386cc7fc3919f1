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

// Package matrix provides column-major matrix expressions for the
// reduction engine.
//
// An Expr yields its elements through At. An expression whose elements can
// be produced chunk by chunk from contiguous memory also returns a non-nil
// Plan, which the reduce package compiles into pack loads:
//
//	a := matrix.New[float32](4, 3)
//	b := matrix.New[float32](4, 3)
//	x := matrix.Mul[float32](a, b) // lazy, has a plan
//	r := a.Row(1)                  // strided view, no plan
//
// Element-wise combinators are lazy: nothing is computed until the
// expression is read.
package matrix

import (
	"math"

	"github.com/ajroetker/go-lightmat/simd"
)

// Expr is a read-only matrix expression in column-major order.
type Expr[T simd.Floats] interface {
	Rows() int
	Cols() int
	// Len returns Rows()*Cols().
	Len() int
	At(i, j int) T
	// Plan returns the packed-access plan, or nil when the elements are not
	// backed by contiguous column-major memory.
	Plan() *Plan[T]
}

// Op is a plan node operation.
type Op int

const (
	OpLoad Op = iota // leaf: read Data
	OpAbs
	OpSqr
	OpNeg
	OpAdd
	OpSub
	OpMul
)

var opNames = [...]string{"load", "abs", "sqr", "neg", "add", "sub", "mul"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// Plan is an element-wise expression tree over contiguous leaves. Element k
// of the expression is element k of every leaf combined by the node ops.
type Plan[T simd.Floats] struct {
	Op   Op
	Data []T // OpLoad only
	X, Y *Plan[T]
}

// Load returns a leaf plan reading data.
func Load[T simd.Floats](data []T) *Plan[T] {
	return &Plan[T]{Op: OpLoad, Data: data}
}

// Len returns the number of elements the plan produces.
func (p *Plan[T]) Len() int {
	if p.Op == OpLoad {
		return len(p.Data)
	}
	return p.X.Len()
}

// Slice returns the plan restricted to elements [off, off+n).
func (p *Plan[T]) Slice(off, n int) *Plan[T] {
	q := &Plan[T]{Op: p.Op}
	switch {
	case p.Op == OpLoad:
		q.Data = p.Data[off : off+n]
	case p.Y != nil:
		q.X = p.X.Slice(off, n)
		q.Y = p.Y.Slice(off, n)
	default:
		q.X = p.X.Slice(off, n)
	}
	return q
}

// Eval computes element k with scalar arithmetic.
func (p *Plan[T]) Eval(k int) T {
	switch p.Op {
	case OpLoad:
		return p.Data[k]
	case OpAbs:
		return abs(p.X.Eval(k))
	case OpSqr:
		v := p.X.Eval(k)
		return v * v
	case OpNeg:
		return -p.X.Eval(k)
	case OpAdd:
		return p.X.Eval(k) + p.Y.Eval(k)
	case OpSub:
		return p.X.Eval(k) - p.Y.Eval(k)
	case OpMul:
		return p.X.Eval(k) * p.Y.Eval(k)
	default:
		panic("matrix: unknown plan op " + p.Op.String())
	}
}

// Leaves calls fn for every leaf in the plan, left to right.
func (p *Plan[T]) Leaves(fn func(data []T)) {
	if p.Op == OpLoad {
		fn(p.Data)
		return
	}
	p.X.Leaves(fn)
	if p.Y != nil {
		p.Y.Leaves(fn)
	}
}

// abs clears the sign bit, matching the pack Abs.
func abs[T simd.Floats](v T) T {
	return T(math.Abs(float64(v)))
}
