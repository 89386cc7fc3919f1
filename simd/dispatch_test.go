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

	"github.com/cwbudde/algo-vecmath/cpu"
)

func restoreDetection(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		cpu.ResetDetection()
		Redetect()
	})
}

func TestDispatchLevelFromFeatures(t *testing.T) {
	if pureGo {
		t.Skip("purego build always dispatches scalar")
	}
	t.Setenv("LMAT_NO_SIMD", "")
	restoreDetection(t)

	tests := []struct {
		name     string
		features cpu.Features
		want     DispatchLevel
	}{
		{"generic-forced", cpu.Features{ForceGeneric: true, HasSSE2: true, HasAVX2: true, Architecture: "amd64"}, DispatchScalar},
		{"none", cpu.Features{Architecture: "amd64"}, DispatchScalar},
		{"sse2", cpu.Features{HasSSE2: true, Architecture: "amd64"}, DispatchSSE},
		{"avx2", cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"}, DispatchAVX},
		{"neon", cpu.Features{HasNEON: true, Architecture: "arm64"}, DispatchSSE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			if got := Redetect(); got != tt.want {
				t.Errorf("Redetect() = %v, want %v", got, tt.want)
			}
			if got := CurrentLevel(); got != tt.want {
				t.Errorf("CurrentLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoSimdEnv(t *testing.T) {
	restoreDetection(t)
	cpu.SetForcedFeatures(cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"})

	tests := []struct {
		val    string
		noSimd bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"false", false},
	}
	for _, tt := range tests {
		t.Setenv("LMAT_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.noSimd {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.noSimd)
		}
		if tt.noSimd {
			if got := Redetect(); got != DispatchScalar {
				t.Errorf("Redetect() with LMAT_NO_SIMD=%q = %v, want scalar", tt.val, got)
			}
		}
	}
}

func TestSetLevel(t *testing.T) {
	restoreDetection(t)

	before := CurrentLevel()
	if prev := SetLevel(DispatchAVX); prev != before {
		t.Errorf("SetLevel returned %v, want %v", prev, before)
	}
	if got := CurrentLevel(); got != DispatchAVX {
		t.Errorf("CurrentLevel() = %v after SetLevel(avx)", got)
	}
	if prev := SetLevel(DispatchScalar); prev != DispatchAVX {
		t.Errorf("SetLevel returned %v, want avx", prev)
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		bytes int
	}{
		{DispatchScalar, "scalar", 0},
		{DispatchSSE, "sse", 16},
		{DispatchAVX, "avx", 32},
		{DispatchLevel(42), "unknown", 0},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.level.Bytes(); got != tt.bytes {
			t.Errorf("%s.Bytes() = %d, want %d", tt.name, got, tt.bytes)
		}
	}
}
