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
	"testing"

	"github.com/ajroetker/go-lightmat/matrix"
)

func TestNorms(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		x := vec64(3, -4, 12, 0, -1, 2)
		tests := []struct {
			name string
			got  float64
			want float64
		}{
			{"L1Norm", L1Norm[float64](x), 22},
			{"SqL2Norm", SqL2Norm[float64](x), 174},
			{"L2Norm", L2Norm[float64](x), math.Sqrt(174)},
			{"LinfNorm", LinfNorm[float64](x), 12},
		}
		for _, tt := range tests {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		}
	})
}

func TestDotEqualsSqL2Norm(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		x := vec32(0.1, -2.5, 3.3, 1e-3, 7, -0.25, 9.5, 4, 1.125, -6)
		if dot, sq := Dot[float32](x, x), SqL2Norm[float32](x); dot != sq {
			t.Errorf("Dot(x, x) = %v, SqL2Norm(x) = %v", dot, sq)
		}
		if l2, sq := L2Norm[float32](x), SqL2Norm[float32](x); l2 != float32(math.Sqrt(float64(sq))) {
			t.Errorf("L2Norm = %v, want sqrt(%v)", l2, sq)
		}
	})
}

func TestDotMatrices(t *testing.T) {
	a := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := matrix.FromSlice(2, 3, []float64{6, 5, 4, 3, 2, 1})
	forEachLevel(t, func(t *testing.T) {
		if got := Dot[float64](a, b); got != 56 {
			t.Errorf("Dot = %v, want 56", got)
		}
	})
}

func TestDotShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dot with mismatched shapes did not panic")
		}
	}()
	Dot[float64](vec64(1, 2), vec64(1, 2, 3))
}

func TestLinfNormEmptyIsZero(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		if got := LinfNorm[float32](matrix.New[float32](0, 3)); got != 0 {
			t.Errorf("LinfNorm(0x3) = %v, want 0", got)
		}
		// The underlying maximum of nothing is -Inf.
		if got := Maximum(matrix.Abs[float32](matrix.New[float32](0, 3))); !math.IsInf(float64(got), -1) {
			t.Errorf("Maximum(Abs(0x3)) = %v, want -Inf", got)
		}
	})
}

func TestMeanOfExpression(t *testing.T) {
	forEachLevel(t, func(t *testing.T) {
		a := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
		if got := Mean(matrix.Neg[float64](a)); got != -2.5 {
			t.Errorf("Mean(-a) = %v, want -2.5", got)
		}
	})
}
