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

package simd

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// runPacks runs one generic test body for every pack specialization.
func runPacks(t *testing.T,
	f32x4 func(*testing.T), f64x2 func(*testing.T),
	f32x8 func(*testing.T), f64x4 func(*testing.T),
) {
	t.Run("Float32x4", f32x4)
	t.Run("Float64x2", f64x2)
	t.Run("Float32x8", f32x8)
	t.Run("Float64x4", f64x4)
}

func bitsOf[T Floats](x T) uint64 {
	switch v := any(x).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	default:
		return math.Float64bits(any(x).(float64))
	}
}

func bitsSlice[T Floats](s []T) []uint64 {
	out := make([]uint64, len(s))
	for i, x := range s {
		out[i] = bitsOf(x)
	}
	return out
}

func iota1[T Floats](n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(i + 1)
	}
	return s
}

func TestPackWidthMatchesTraits(t *testing.T) {
	check := func(name string, gotW, gotA int, tr Trait) {
		if gotW != tr.Width || gotA != tr.Alignment {
			t.Errorf("%s: Width/Alignment = %d/%d, want %d/%d", name, gotW, gotA, tr.Width, tr.Alignment)
		}
		if tr.Pack != name {
			t.Errorf("%s: trait pack name = %q", name, tr.Pack)
		}
	}
	check("Float32x4", Float32x4{}.Width(), Float32x4{}.Alignment(), TraitOf[float32, SSE]())
	check("Float64x2", Float64x2{}.Width(), Float64x2{}.Alignment(), TraitOf[float64, SSE]())
	check("Float32x8", Float32x8{}.Width(), Float32x8{}.Alignment(), TraitOf[float32, AVX]())
	check("Float64x4", Float64x4{}.Width(), Float64x4{}.Alignment(), TraitOf[float64, AVX]())
}

func testSpecialValues[T Floats, P Pack[T, P]](t *testing.T) {
	var z P
	w := z.Width()
	lanes := make([]T, w)

	tests := []struct {
		name string
		pack P
		want T
	}{
		{"Zeros", z.Zeros(), 0},
		{"Ones", z.Ones(), 1},
		{"Inf", z.Inf(), T(math.Inf(1))},
		{"NegInf", z.NegInf(), T(math.Inf(-1))},
		{"Set", z.Set(-2.5), -2.5},
	}
	for _, tt := range tests {
		tt.pack.StoreU(lanes)
		for i, got := range lanes {
			if bitsOf(got) != bitsOf(tt.want) {
				t.Errorf("%s: lane %d: got %v (%#x), want %v (%#x)", tt.name, i, got, bitsOf(got), tt.want, bitsOf(tt.want))
			}
		}
	}

	z.NaN().StoreU(lanes)
	wantNaN := map[int]uint64{4: 0x7fc00000, 8: 0x7ff8000000000000}
	var dummy T
	size := 4
	if _, ok := any(dummy).(float64); ok {
		size = 8
	}
	for i, got := range lanes {
		if bitsOf(got) != wantNaN[size] {
			t.Errorf("NaN: lane %d: got %#x, want %#x", i, bitsOf(got), wantNaN[size])
		}
	}
}

func TestSpecialValues(t *testing.T) {
	runPacks(t,
		testSpecialValues[float32, Float32x4],
		testSpecialValues[float64, Float64x2],
		testSpecialValues[float32, Float32x8],
		testSpecialValues[float64, Float64x4],
	)
}

func testRoundTrip[T Floats, P Pack[T, P]](t *testing.T) {
	var z P
	w := z.Width()

	t.Run("aligned", func(t *testing.T) {
		src := AlignedSlice[T](w, z.Alignment())
		copy(src, iota1[T](w))
		src[1] = T(math.NaN())
		src[w-1] = T(math.Copysign(0, -1))
		dst := AlignedSlice[T](w, z.Alignment())

		z.LoadA(src).StoreA(dst)
		if diff := cmp.Diff(bitsSlice(src), bitsSlice(dst)); diff != "" {
			t.Errorf("LoadA/StoreA mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unaligned", func(t *testing.T) {
		backing := AlignedSlice[T](w+1, z.Alignment())
		copy(backing[1:], iota1[T](w))
		src := backing[1:]
		out := AlignedSlice[T](w+1, z.Alignment())
		dst := out[1:]

		z.LoadU(src).StoreU(dst)
		if diff := cmp.Diff(bitsSlice(src), bitsSlice(dst)); diff != "" {
			t.Errorf("LoadU/StoreU mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	runPacks(t,
		testRoundTrip[float32, Float32x4],
		testRoundTrip[float64, Float64x2],
		testRoundTrip[float32, Float32x8],
		testRoundTrip[float64, Float64x4],
	)
}

func testPartial[T Floats, P Pack[T, P]](t *testing.T) {
	var z P
	w := z.Width()
	const sentinel = -777

	for n := 0; n < w; n++ {
		// A source capped at n elements panics on any read beyond n.
		src := iota1[T](n)[:n:n]
		p := z.LoadPart(n, src)
		for i := 0; i < n; i++ {
			if got := p.Extract(i); got != src[i] {
				t.Errorf("LoadPart(%d): lane %d: got %v, want %v", n, i, got, src[i])
			}
		}

		full := z.LoadU(iota1[T](w))
		dst := make([]T, w+2)
		for i := range dst {
			dst[i] = sentinel
		}
		full.StorePart(n, dst)
		for i := range dst {
			want := T(sentinel)
			if i < n {
				want = T(i + 1)
			}
			if dst[i] != want {
				t.Errorf("StorePart(%d): dst[%d] = %v, want %v", n, i, dst[i], want)
			}
		}

		// Capped destination: writing past n would panic.
		capped := make([]T, n)
		full.StorePart(n, capped[:n:n])
	}
}

func TestPartialLoadStore(t *testing.T) {
	runPacks(t,
		testPartial[float32, Float32x4],
		testPartial[float64, Float64x2],
		testPartial[float32, Float32x8],
		testPartial[float64, Float64x4],
	)
}

func testLanes[T Floats, P Pack[T, P]](t *testing.T) {
	var z P
	w := z.Width()
	data := iota1[T](w)
	p := z.LoadU(data)

	if got := p.ToScalar(); got != 1 {
		t.Errorf("ToScalar: got %v, want 1", got)
	}
	out := make([]T, w)
	for i := 0; i < w; i++ {
		if got := p.Extract(i); got != data[i] {
			t.Errorf("Extract(%d): got %v, want %v", i, got, data[i])
		}
		p.Broadcast(i).StoreU(out)
		for j, got := range out {
			if got != data[i] {
				t.Errorf("Broadcast(%d): lane %d: got %v, want %v", i, j, got, data[i])
			}
		}
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Extract(%d) did not panic", w)
		}
	}()
	p.Extract(w)
}

func TestLanes(t *testing.T) {
	runPacks(t,
		testLanes[float32, Float32x4],
		testLanes[float64, Float64x2],
		testLanes[float32, Float32x8],
		testLanes[float64, Float64x4],
	)
}

func testArithmetic[T Floats, P Pack[T, P]](t *testing.T) {
	var z P
	w := z.Width()
	a := z.Set(-6)
	b := z.Set(2)

	tests := []struct {
		name string
		got  P
		want T
	}{
		{"Add", a.Add(b), -4},
		{"Sub", a.Sub(b), -8},
		{"Mul", a.Mul(b), -12},
		{"Div", a.Div(b), -3},
		{"Max", a.Max(b), 2},
		{"Min", a.Min(b), -6},
		{"Abs", a.Abs(), 6},
		{"Neg", a.Neg(), 6},
		{"Sqrt", z.Set(9).Sqrt(), 3},
		{"Map2", a.Map2(b, func(x, y T) T { return x*y + 1 }), -11},
	}
	out := make([]T, w)
	for _, tt := range tests {
		tt.got.StoreU(out)
		for i, got := range out {
			if got != tt.want {
				t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, got, tt.want)
			}
		}
	}

	if got := z.Set(T(math.NaN())).Max(b).ToScalar(); !math.IsNaN(float64(got)) {
		t.Errorf("Max with NaN: got %v, want NaN", got)
	}
	if got := z.Zeros().Neg().ToScalar(); !math.Signbit(float64(got)) {
		t.Errorf("Neg(+0): got %v, want -0", got)
	}
}

func TestArithmetic(t *testing.T) {
	runPacks(t,
		testArithmetic[float32, Float32x4],
		testArithmetic[float64, Float64x2],
		testArithmetic[float32, Float32x8],
		testArithmetic[float64, Float64x4],
	)
}

func testFold[T Floats, P Pack[T, P]](t *testing.T) {
	var z P
	w := z.Width()
	p := z.LoadU(iota1[T](w))

	wantSum := T(w * (w + 1) / 2)
	if got := p.Fold(func(x, y T) T { return x + y }); got != wantSum {
		t.Errorf("Fold(+): got %v, want %v", got, wantSum)
	}
	if got := p.Fold(func(x, y T) T { return max(x, y) }); got != T(w) {
		t.Errorf("Fold(max): got %v, want %v", got, T(w))
	}

	// Pairwise halving: the first combine pairs lane 0 with lane w/2, and
	// there are exactly w-1 combines.
	var calls [][2]T
	p.Fold(func(x, y T) T {
		calls = append(calls, [2]T{x, y})
		return x + y
	})
	if len(calls) != w-1 {
		t.Fatalf("Fold: %d combines, want %d", len(calls), w-1)
	}
	if calls[0] != [2]T{1, T(w/2 + 1)} {
		t.Errorf("Fold: first combine %v, want [1 %v]", calls[0], w/2+1)
	}
}

func TestFold(t *testing.T) {
	runPacks(t,
		testFold[float32, Float32x4],
		testFold[float64, Float64x2],
		testFold[float32, Float32x8],
		testFold[float64, Float64x4],
	)
}

func testFillTail[T Floats, P Pack[T, P]](t *testing.T) {
	var z P
	w := z.Width()
	p := z.LoadU(iota1[T](w))
	out := make([]T, w)
	for n := 0; n <= w; n++ {
		p.FillTail(n, -1).StoreU(out)
		for i, got := range out {
			want := T(-1)
			if i < n {
				want = T(i + 1)
			}
			if got != want {
				t.Errorf("FillTail(%d): lane %d: got %v, want %v", n, i, got, want)
			}
		}
	}
}

func TestFillTail(t *testing.T) {
	runPacks(t,
		testFillTail[float32, Float32x4],
		testFillTail[float64, Float64x2],
		testFillTail[float32, Float32x8],
		testFillTail[float64, Float64x4],
	)
}

func TestConstructors(t *testing.T) {
	if got, want := NewFloat32x4(1, 2, 3, 4).Array(), [4]float32{1, 2, 3, 4}; got != want {
		t.Errorf("NewFloat32x4: got %v, want %v", got, want)
	}
	if got, want := NewFloat64x2(1, 2).Array(), [2]float64{1, 2}; got != want {
		t.Errorf("NewFloat64x2: got %v, want %v", got, want)
	}
	if got, want := NewFloat32x8(1, 2, 3, 4, 5, 6, 7, 8).Array(), [8]float32{1, 2, 3, 4, 5, 6, 7, 8}; got != want {
		t.Errorf("NewFloat32x8: got %v, want %v", got, want)
	}
	if got, want := NewFloat64x4(1, 2, 3, 4).Array(), [4]float64{1, 2, 3, 4}; got != want {
		t.Errorf("NewFloat64x4: got %v, want %v", got, want)
	}
	if got, want := BroadcastFloat64x4(7).Array(), [4]float64{7, 7, 7, 7}; got != want {
		t.Errorf("BroadcastFloat64x4: got %v, want %v", got, want)
	}
	native := [8]float32{8, 7, 6, 5, 4, 3, 2, 1}
	if got := Float32x8FromArray(native).Array(); got != native {
		t.Errorf("Float32x8FromArray round trip: got %v, want %v", got, native)
	}
	if got := LoadFloat32x4([]float32{9, 8, 7, 6, 5}).String(); got != "[9 8 7 6]" {
		t.Errorf("LoadFloat32x4 String: got %q", got)
	}
}

func TestComparisons(t *testing.T) {
	a := NewFloat32x4(1, 2, float32(math.NaN()), 4)
	b := NewFloat32x4(1, 3, 0, 2)

	tests := []struct {
		name string
		got  Mask32x4
		want [4]bool
	}{
		{"Equal", a.Equal(b), [4]bool{true, false, false, false}},
		{"NotEqual", a.NotEqual(b), [4]bool{false, true, true, true}},
		{"Less", a.Less(b), [4]bool{false, true, false, false}},
		{"LessEqual", a.LessEqual(b), [4]bool{true, true, false, false}},
		{"Greater", a.Greater(b), [4]bool{false, false, false, true}},
		{"GreaterEqual", a.GreaterEqual(b), [4]bool{true, false, false, true}},
		{"IsNaN", a.IsNaN(), [4]bool{false, false, true, false}},
	}
	for _, tt := range tests {
		var got [4]bool
		tt.got.Store(got[:])
		if got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
		if !tt.got.Valid() {
			t.Errorf("%s: lanes not all-ones/all-zeros: %v", tt.name, tt.got.Bits())
		}
	}
}

func BenchmarkFoldFloat32x8(b *testing.B) {
	p := NewFloat32x8(1, 2, 3, 4, 5, 6, 7, 8)
	var sink float32
	for b.Loop() {
		sink += p.Fold(func(x, y float32) float32 { return x + y })
	}
	_ = sink
}
