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

// Package simd provides fixed-width vector packs with one operation set
// shared by every register class.
//
// Each (element type, register class) pair has its own pack type:
// Float32x4 and Float64x2 for 128-bit SSE-class registers, Float32x8 and
// Float64x4 for 256-bit AVX-class registers. Every pack satisfies
// Pack[T, P], so algorithms are written once against the interface and
// instantiated per pack type. Each pack has a matching boolean pack
// (Mask32x4, Mask64x2, Mask32x8, Mask64x4) holding all-ones or all-zeros
// lanes.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lightmat/simd"
//
//	a := simd.LoadFloat32x4(data1)
//	b := simd.LoadFloat32x4(data2)
//	a.Add(b).StoreU(out)
//
// Generic code reaches the constructors through the zero value:
//
//	func sum[T simd.Floats, P simd.Pack[T, P]](v []T) T {
//		var z P
//		acc := z.Zeros()
//		...
//	}
package simd

//go:generate go run ../cmd/packgen -output . -pkg simd

// Floats is the set of element types with pack specializations.
type Floats interface {
	float32 | float64
}

// BInt is the set of boolean lane types. A boolean lane has the same size
// as the element lane it masks.
type BInt interface {
	int32 | int64
}

// Pack is the operation set every pack specialization implements. P is the
// pack type itself.
//
// Methods documented as ignoring the receiver are constructors; call them
// on the zero value of P.
type Pack[T Floats, P any] interface {
	// Width returns the number of lanes.
	Width() int
	// Alignment returns the byte alignment required by LoadA and StoreA.
	Alignment() int

	Zeros() P
	Ones() P
	Inf() P
	NegInf() P
	NaN() P
	Set(v T) P

	// LoadU reads Width() elements with no alignment requirement.
	LoadU(src []T) P
	// LoadA reads Width() elements from a slice aligned to Alignment().
	// Alignment is a precondition; it is only checked with -tags lmatdebug.
	LoadA(src []T) P
	// LoadPart reads exactly n < Width() elements and touches nothing
	// beyond them. The remaining lanes must not be relied on.
	LoadPart(n int, src []T) P

	StoreU(dst []T)
	StoreA(dst []T)
	// StorePart writes exactly n < Width() elements.
	StorePart(n int, dst []T)

	ToScalar() T
	Extract(i int) T
	Broadcast(i int) P

	Add(b P) P
	Sub(b P) P
	Mul(b P) P
	Div(b P) P
	Max(b P) P
	Min(b P) P
	Abs() P
	Neg() P
	Sqrt() P
	Map2(b P, f func(x, y T) T) P

	// Fold combines all lanes pairwise in log2(Width()) steps.
	Fold(f func(x, y T) T) T
	// FillTail replaces lanes n and above with v.
	FillTail(n int, v T) P
}

// laneOf encodes b as a boolean lane: -1 (all ones) or 0.
func laneOf[B BInt](b bool) B {
	if b {
		return -1
	}
	return 0
}
