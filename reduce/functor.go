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

// Package reduce folds matrix expressions with associative functors.
//
// Reduce picks between a packed kernel and a scalar loop. The packed kernel
// runs when the expression has a plan and the simd dispatch level is SSE or
// AVX class. It accumulates whole packs lanewise and pads the tail chunk
// with the functor identity before the final horizontal fold.
// Element-wise transforms (absolute value, square, products) come from the
// matrix combinators, never from the functor:
//
//	x := matrix.ColVector([]float32{3, -4})
//	reduce.L1Norm[float32](x) // 7
//	reduce.Reduce(reduce.MaxOp[float32]{}, matrix.Abs[float32](x)) // 4
//
// The functor must be associative and commutative, since the packed kernel
// reorders the combines.
package reduce

import (
	"math"

	"github.com/ajroetker/go-lightmat/simd"
)

// Functor is an associative, commutative binary operation with an
// identity element.
type Functor[T simd.Floats] interface {
	Identity() T
	Combine(a, b T) T
}

// AddOp sums elements.
type AddOp[T simd.Floats] struct{}

func (AddOp[T]) Identity() T       { return 0 }
func (AddOp[T]) Combine(a, b T) T { return a + b }

// MaxOp keeps the largest element. NaN propagates.
type MaxOp[T simd.Floats] struct{}

func (MaxOp[T]) Identity() T       { return T(math.Inf(-1)) }
func (MaxOp[T]) Combine(a, b T) T { return max(a, b) }

// MinOp keeps the smallest element. NaN propagates.
type MinOp[T simd.Floats] struct{}

func (MinOp[T]) Identity() T       { return T(math.Inf(1)) }
func (MinOp[T]) Combine(a, b T) T { return min(a, b) }

// MulOp multiplies elements.
type MulOp[T simd.Floats] struct{}

func (MulOp[T]) Identity() T       { return 1 }
func (MulOp[T]) Combine(a, b T) T { return a * b }

// Func adapts an identity and a combine function to Functor. The packed
// kernel applies Fn lane by lane.
type Func[T simd.Floats] struct {
	Id T
	Fn func(a, b T) T
}

func (f Func[T]) Identity() T       { return f.Id }
func (f Func[T]) Combine(a, b T) T { return f.Fn(a, b) }

// vertical returns the lanewise pack combine for f.
func vertical[T simd.Floats, P simd.Pack[T, P]](f Functor[T]) func(a, b P) P {
	switch f.(type) {
	case AddOp[T]:
		return func(a, b P) P { return a.Add(b) }
	case MaxOp[T]:
		return func(a, b P) P { return a.Max(b) }
	case MinOp[T]:
		return func(a, b P) P { return a.Min(b) }
	case MulOp[T]:
		return func(a, b P) P { return a.Mul(b) }
	default:
		combine := f.Combine
		return func(a, b P) P { return a.Map2(b, combine) }
	}
}
