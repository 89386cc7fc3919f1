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

package reduce

import (
	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
)

// Reduce folds every element of x with f. An empty expression yields
// f.Identity().
//
// The result is deterministic for a given dispatch level. Packed and scalar
// evaluation may round differently, since they combine in different orders.
func Reduce[T simd.Floats](f Functor[T], x matrix.Expr[T]) T {
	if x.Len() == 0 {
		return f.Identity()
	}
	if p := x.Plan(); p != nil {
		if r, ok := reducePlan(f, p, simd.CurrentLevel()); ok {
			return r
		}
	}
	return reduceScalar(f, x)
}

// reducePlan selects the pack type for (T, level) and runs the packed
// kernel. It reports false at the scalar level.
func reducePlan[T simd.Floats](f Functor[T], p *matrix.Plan[T], level simd.DispatchLevel) (T, bool) {
	var r any
	switch ff := any(f).(type) {
	case Functor[float32]:
		pf := any(p).(*matrix.Plan[float32])
		switch level {
		case simd.DispatchSSE:
			r = reducePacked[float32, simd.Float32x4](ff, pf)
		case simd.DispatchAVX:
			r = reducePacked[float32, simd.Float32x8](ff, pf)
		}
	case Functor[float64]:
		pf := any(p).(*matrix.Plan[float64])
		switch level {
		case simd.DispatchSSE:
			r = reducePacked[float64, simd.Float64x2](ff, pf)
		case simd.DispatchAVX:
			r = reducePacked[float64, simd.Float64x4](ff, pf)
		}
	}
	if r == nil {
		var zero T
		return zero, false
	}
	return r.(T), true
}

// reducePacked is the packed kernel. The accumulator starts as a pack of
// identities, so padding the tail chunk with identities leaves the result
// unchanged.
func reducePacked[T simd.Floats, P simd.Pack[T, P]](f Functor[T], p *matrix.Plan[T]) T {
	var z P
	w := z.Width()
	load, loadPart := compile[T, P](p)
	combine := vertical[T, P](f)
	id := f.Identity()

	acc := z.Set(id)
	simd.ProcessWithTail(p.Len(), w,
		func(off int) {
			acc = combine(acc, load(off))
		},
		func(off, n int) {
			acc = combine(acc, loadPart(off, n).FillTail(n, id))
		},
	)
	return acc.Fold(f.Combine)
}

// compile turns a plan into two pack producers: load reads the full chunk
// at off, loadPart reads the n < width elements at off.
func compile[T simd.Floats, P simd.Pack[T, P]](p *matrix.Plan[T]) (load func(off int) P, loadPart func(off, n int) P) {
	var z P
	if p.Op == matrix.OpLoad {
		data := p.Data
		// Chunk offsets are multiples of the width, so an aligned base keeps
		// every chunk aligned.
		if simd.IsAligned(data, z.Alignment()) {
			load = func(off int) P { return z.LoadA(data[off:]) }
		} else {
			load = func(off int) P { return z.LoadU(data[off:]) }
		}
		loadPart = func(off, n int) P { return z.LoadPart(n, data[off:]) }
		return load, loadPart
	}

	xl, xp := compile[T, P](p.X)
	switch p.Op {
	case matrix.OpAbs:
		return func(off int) P { return xl(off).Abs() },
			func(off, n int) P { return xp(off, n).Abs() }
	case matrix.OpSqr:
		return func(off int) P { v := xl(off); return v.Mul(v) },
			func(off, n int) P { v := xp(off, n); return v.Mul(v) }
	case matrix.OpNeg:
		return func(off int) P { return xl(off).Neg() },
			func(off, n int) P { return xp(off, n).Neg() }
	}

	yl, yp := compile[T, P](p.Y)
	switch p.Op {
	case matrix.OpAdd:
		return func(off int) P { return xl(off).Add(yl(off)) },
			func(off, n int) P { return xp(off, n).Add(yp(off, n)) }
	case matrix.OpSub:
		return func(off int) P { return xl(off).Sub(yl(off)) },
			func(off, n int) P { return xp(off, n).Sub(yp(off, n)) }
	case matrix.OpMul:
		return func(off int) P { return xl(off).Mul(yl(off)) },
			func(off, n int) P { return xp(off, n).Mul(yp(off, n)) }
	}
	panic("reduce: unknown plan op " + p.Op.String())
}

// reduceScalar folds x in column-major order.
func reduceScalar[T simd.Floats](f Functor[T], x matrix.Expr[T]) T {
	acc := f.Identity()
	for j := range x.Cols() {
		for i := range x.Rows() {
			acc = f.Combine(acc, x.At(i, j))
		}
	}
	return acc
}

// Colwise reduces each column of x. Columns of a planned expression are
// contiguous and take the packed kernel.
func Colwise[T simd.Floats](f Functor[T], x matrix.Expr[T]) []T {
	out := make([]T, x.Cols())
	for j := range out {
		out[j] = Reduce(f, matrix.Column(x, j))
	}
	return out
}

// Rowwise reduces each row of x. Rows are strided in column-major storage,
// so this is a scalar pass that walks x once in memory order.
func Rowwise[T simd.Floats](f Functor[T], x matrix.Expr[T]) []T {
	out := make([]T, x.Rows())
	for i := range out {
		out[i] = f.Identity()
	}
	for j := range x.Cols() {
		for i := range out {
			out[i] = f.Combine(out[i], x.At(i, j))
		}
	}
	return out
}

// ReduceSlice folds s as a column vector.
func ReduceSlice[T simd.Floats](f Functor[T], s []T) T {
	return Reduce[T](f, matrix.ColVector(s))
}
