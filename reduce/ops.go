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
	"math"

	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/simd"
)

// Sum returns the sum of all elements, 0 when x is empty.
func Sum[T simd.Floats](x matrix.Expr[T]) T {
	return Reduce[T](AddOp[T]{}, x)
}

// Mean returns Sum(x) / x.Len(). The mean of an empty expression is NaN.
func Mean[T simd.Floats](x matrix.Expr[T]) T {
	return Sum(x) / T(x.Len())
}

// Maximum returns the largest element, -Inf when x is empty.
func Maximum[T simd.Floats](x matrix.Expr[T]) T {
	return Reduce[T](MaxOp[T]{}, x)
}

// Minimum returns the smallest element, +Inf when x is empty.
func Minimum[T simd.Floats](x matrix.Expr[T]) T {
	return Reduce[T](MinOp[T]{}, x)
}

// Product returns the product of all elements, 1 when x is empty.
func Product[T simd.Floats](x matrix.Expr[T]) T {
	return Reduce[T](MulOp[T]{}, x)
}

// Dot returns the sum of the element-wise product of x and y. It panics if
// the shapes differ.
func Dot[T simd.Floats](x, y matrix.Expr[T]) T {
	return Sum(matrix.Mul(x, y))
}

// L1Norm returns the sum of absolute values.
func L1Norm[T simd.Floats](x matrix.Expr[T]) T {
	return Sum(matrix.Abs(x))
}

// SqL2Norm returns the sum of squares.
func SqL2Norm[T simd.Floats](x matrix.Expr[T]) T {
	return Sum(matrix.Sqr(x))
}

// L2Norm returns the Euclidean norm, sqrt(SqL2Norm(x)).
func L2Norm[T simd.Floats](x matrix.Expr[T]) T {
	return T(math.Sqrt(float64(SqL2Norm(x))))
}

// LinfNorm returns the largest absolute value, 0 when x is empty.
func LinfNorm[T simd.Floats](x matrix.Expr[T]) T {
	if x.Len() == 0 {
		return 0
	}
	return Maximum(matrix.Abs(x))
}
