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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ajroetker/go-lightmat/simd"
)

// seq returns a rows x cols matrix with element (i, j) = 10*i + j.
func seq(rows, cols int) *Dense[float64] {
	d := New[float64](rows, cols)
	for j := range cols {
		for i := range rows {
			d.Set(i, j, float64(10*i+j))
		}
	}
	return d
}

func collect[T simd.Floats](x Expr[T]) []T {
	var out []T
	for j := range x.Cols() {
		for i := range x.Rows() {
			out = append(out, x.At(i, j))
		}
	}
	return out
}

func TestNewIsAlignedAndColumnMajor(t *testing.T) {
	d := seq(3, 2)
	if !simd.IsAligned(d.Data(), simd.MaxAlignment) {
		t.Error("New storage is not 32-byte aligned")
	}
	want := []float64{0, 10, 20, 1, 11, 21}
	if diff := cmp.Diff(want, d.Data()); diff != "" {
		t.Errorf("Data() mismatch (-want +got):\n%s", diff)
	}
	if d.Len() != 6 || d.Stride() != 3 {
		t.Errorf("Len/Stride = %d/%d, want 6/3", d.Len(), d.Stride())
	}
}

func TestViews(t *testing.T) {
	d := seq(4, 3)

	tests := []struct {
		name    string
		view    *Dense[float64]
		want    []float64
		hasPlan bool
	}{
		{"Col(1)", d.Col(1), []float64{1, 11, 21, 31}, true},
		{"Row(2)", d.Row(2), []float64{20, 21, 22}, false},
		{"Block rows", d.Block(1, 0, 2, 2), []float64{10, 20, 11, 21}, false},
		{"Block full columns", d.Block(0, 1, 4, 2), []float64{1, 11, 21, 31, 2, 12, 22, 32}, true},
		{"Block one column", d.Block(1, 2, 3, 1), []float64{12, 22, 32}, true},
		{"Block empty", d.Block(0, 0, 0, 3), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, collect[float64](tt.view)); diff != "" {
				t.Errorf("elements mismatch (-want +got):\n%s", diff)
			}
			p := tt.view.Plan()
			if (p != nil) != tt.hasPlan {
				t.Fatalf("Plan() != nil is %v, want %v", p != nil, tt.hasPlan)
			}
			if p != nil {
				got := make([]float64, 0, p.Len())
				for k := range p.Len() {
					got = append(got, p.Eval(k))
				}
				if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("plan elements mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestViewsShareStorage(t *testing.T) {
	d := seq(3, 3)
	d.Row(1).Set(0, 2, -1)
	if got := d.At(1, 2); got != -1 {
		t.Errorf("write through Row view: At(1, 2) = %v, want -1", got)
	}
	d.Col(0).Set(2, 0, -2)
	if got := d.At(2, 0); got != -2 {
		t.Errorf("write through Col view: At(2, 0) = %v, want -2", got)
	}
}

func TestDenseBoundsPanic(t *testing.T) {
	d := seq(2, 2)
	tests := []struct {
		name string
		fn   func()
	}{
		{"At", func() { d.At(2, 0) }},
		{"Set", func() { d.Set(0, -1, 1) }},
		{"Col", func() { d.Col(2) }},
		{"Row", func() { d.Row(5) }},
		{"Block", func() { d.Block(1, 1, 2, 1) }},
		{"Data on strided view", func() { d.Row(0).Data() }},
		{"FromSlice short", func() { FromSlice(2, 2, []float64{1, 2, 3}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("no panic")
				}
				if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "matrix: ") {
					t.Errorf("panic value %v lacks matrix prefix", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestFromSliceWraps(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	d := FromSlice(2, 3, data)
	data[5] = 60
	if got := d.At(1, 2); got != 60 {
		t.Errorf("At(1, 2) = %v, want 60 (no copy)", got)
	}
	if got := ColVector(data).Rows(); got != 6 {
		t.Errorf("ColVector rows = %d, want 6", got)
	}
	if got := d.String(); got != "[[1 3 5] [2 4 60]]" {
		t.Errorf("String() = %q", got)
	}
}
