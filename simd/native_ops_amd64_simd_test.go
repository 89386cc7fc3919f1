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

//go:build amd64 && goexperiment.simd && !purego

package simd

import (
	"math"
	"testing"
)

// laneOps holds the portable lane loops of one pack type, the reference the
// archsimd ops are checked against.
type laneOps[T Floats, P any] struct {
	add, mul, max, min func(a, b P) P
	abs                func(a P) P
	loadPart           func(n int, src []T) P
}

// parityValues has 16 entries so every (x, y) pair fills whole packs.
func parityValues[T Floats]() []T {
	return []T{
		0, T(math.Copysign(0, -1)), 1, -1,
		2.5, -3.75, T(math.Inf(1)), T(math.Inf(-1)),
		T(math.NaN()), T(math.SmallestNonzeroFloat32), -T(math.SmallestNonzeroFloat32), 1e30,
		-1e30, 0.1, 7, -7,
	}
}

// sameLanes reports whether got and want agree bit for bit, treating any
// two NaNs as equal.
func sameLanes[T Floats](got, want []T) bool {
	for i := range want {
		if got[i] != got[i] && want[i] != want[i] {
			continue
		}
		if bitsOf(got[i]) != bitsOf(want[i]) {
			return false
		}
	}
	return true
}

func testNativeParity[T Floats, P Pack[T, P]](ref laneOps[T, P]) func(*testing.T) {
	return func(t *testing.T) {
		if !nativeOps {
			t.Skip("archsimd pack ops disabled: no AVX2 or LMAT_NO_SIMD is set")
		}
		var z P
		w := z.Width()
		lanes := func(p P) []T {
			out := make([]T, w)
			p.StoreU(out)
			return out
		}

		vals := parityValues[T]()
		xs := make([]T, 0, len(vals)*len(vals))
		ys := make([]T, 0, len(vals)*len(vals))
		for _, x := range vals {
			for _, y := range vals {
				xs = append(xs, x)
				ys = append(ys, y)
			}
		}

		for i := 0; i < len(xs); i += w {
			x, y := z.LoadU(xs[i:]), z.LoadU(ys[i:])
			if got := lanes(x); !sameLanes(got, xs[i:i+w]) {
				t.Fatalf("LoadU(%v) = %v", xs[i:i+w], got)
			}
			check := func(op string, got, want P) {
				t.Helper()
				if g, wv := lanes(got), lanes(want); !sameLanes(g, wv) {
					t.Errorf("%s(%v, %v): archsimd %v, lane loop %v", op, xs[i:i+w], ys[i:i+w], g, wv)
				}
			}
			check("Add", x.Add(y), ref.add(x, y))
			check("Mul", x.Mul(y), ref.mul(x, y))
			check("Max", x.Max(y), ref.max(x, y))
			check("Min", x.Min(y), ref.min(x, y))
			check("Abs", x.Abs(), ref.abs(x))
		}

		aligned := AlignedSlice[T](w, z.Alignment())
		copy(aligned, vals)
		if got := lanes(z.LoadA(aligned)); !sameLanes(got, vals[:w]) {
			t.Errorf("LoadA(%v) = %v", vals[:w], got)
		}
		for n := 0; n < w; n++ {
			src := vals[len(vals)-n:]
			if got, want := lanes(z.LoadPart(n, src)), lanes(ref.loadPart(n, src)); !sameLanes(got, want) {
				t.Errorf("LoadPart(%d, %v): archsimd %v, lane loop %v", n, src, got, want)
			}
		}
	}
}

func TestNativeOpsMatchLaneLoops(t *testing.T) {
	runPacks(t,
		testNativeParity(laneOps[float32, Float32x4]{
			add: Float32x4.addLanes, mul: Float32x4.mulLanes,
			max: Float32x4.maxLanes, min: Float32x4.minLanes,
			abs: Float32x4.absLanes, loadPart: float32x4LoadPart,
		}),
		testNativeParity(laneOps[float64, Float64x2]{
			add: Float64x2.addLanes, mul: Float64x2.mulLanes,
			max: Float64x2.maxLanes, min: Float64x2.minLanes,
			abs: Float64x2.absLanes, loadPart: float64x2LoadPart,
		}),
		testNativeParity(laneOps[float32, Float32x8]{
			add: Float32x8.addLanes, mul: Float32x8.mulLanes,
			max: Float32x8.maxLanes, min: Float32x8.minLanes,
			abs: Float32x8.absLanes, loadPart: float32x8LoadPart,
		}),
		testNativeParity(laneOps[float64, Float64x4]{
			add: Float64x4.addLanes, mul: Float64x4.mulLanes,
			max: Float64x4.maxLanes, min: Float64x4.minLanes,
			abs: Float64x4.absLanes, loadPart: float64x4LoadPart,
		}),
	)
}

// Signed zeros and NaN are where VMAXP/VMINP differ from max and min.
func TestNativeMaxMinEdgeLanes(t *testing.T) {
	if !nativeOps {
		t.Skip("archsimd pack ops disabled: no AVX2 or LMAT_NO_SIMD is set")
	}
	negZero := float32(math.Copysign(0, -1))
	nan := float32(math.NaN())
	x := NewFloat32x8(negZero, 0, nan, 1, negZero, nan, 2, negZero)
	y := NewFloat32x8(0, negZero, 1, nan, negZero, nan, 2, 3)

	mx, mn := x.Max(y), x.Min(y)
	wantMax := []float32{0, 0, nan, nan, negZero, nan, 2, 3}
	wantMin := []float32{negZero, negZero, nan, nan, negZero, nan, 2, negZero}
	for i := range 8 {
		if !sameLanes([]float32{mx.Extract(i)}, wantMax[i:i+1]) {
			t.Errorf("Max lane %d: got %v, want %v", i, mx.Extract(i), wantMax[i])
		}
		if !sameLanes([]float32{mn.Extract(i)}, wantMin[i:i+1]) {
			t.Errorf("Min lane %d: got %v, want %v", i, mn.Extract(i), wantMin[i])
		}
	}
}

func TestNativeOpsReported(t *testing.T) {
	if NativeOps() != nativeOps {
		t.Errorf("NativeOps() = %v, want %v", NativeOps(), nativeOps)
	}
}
