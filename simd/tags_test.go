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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTraits(t *testing.T) {
	want := []Trait{
		{Pack: "Float32x4", Elem: "float32", Tag: "sse", Width: 4, Alignment: 16, BIntBits: 32},
		{Pack: "Float64x2", Elem: "float64", Tag: "sse", Width: 2, Alignment: 16, BIntBits: 64},
		{Pack: "Float32x8", Elem: "float32", Tag: "avx", Width: 8, Alignment: 32, BIntBits: 32},
		{Pack: "Float64x4", Elem: "float64", Tag: "avx", Width: 4, Alignment: 32, BIntBits: 64},
	}
	if diff := cmp.Diff(want, Traits()); diff != "" {
		t.Errorf("Traits() mismatch (-want +got):\n%s", diff)
	}
}

func TestLaneCount(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"float32/SSE", LaneCount[float32, SSE](), 4},
		{"float64/SSE", LaneCount[float64, SSE](), 2},
		{"float32/AVX", LaneCount[float32, AVX](), 8},
		{"float64/AVX", LaneCount[float64, AVX](), 4},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("LaneCount[%s] = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestTraitAlignmentIsRegisterWidth(t *testing.T) {
	for _, tr := range Traits() {
		elemBytes := tr.BIntBits / 8
		if tr.Width*elemBytes != tr.Alignment {
			t.Errorf("%s: Width*elem = %d bytes, Alignment = %d", tr.Pack, tr.Width*elemBytes, tr.Alignment)
		}
	}
}
