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

package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestLookupPrefersHighestSupportedPriority(t *testing.T) {
	var reg Registry[string]
	reg.Register(Entry[string]{Name: "scalar", SIMDLevel: cpu.SIMDNone, Priority: 0, Value: "s"})
	reg.Register(Entry[string]{Name: "avx", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Value: "a"})
	reg.Register(Entry[string]{Name: "sse", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Value: "x"})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{name: "avx2", features: cpu.Features{HasSSE2: true, HasAVX2: true}, want: "avx"},
		{name: "sse2", features: cpu.Features{HasSSE2: true}, want: "sse"},
		{name: "none", features: cpu.Features{}, want: "scalar"},
		{name: "forced generic", features: cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}, want: "scalar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("Lookup = %q, want %q", entry.Name, tt.want)
			}
		})
	}
}

func TestLookupEmpty(t *testing.T) {
	var reg Registry[int]
	if entry := reg.Lookup(cpu.Features{HasSSE2: true}); entry != nil {
		t.Errorf("Lookup on empty registry = %+v, want nil", entry)
	}
}

func TestEntriesSortedAfterLookup(t *testing.T) {
	var reg Registry[int]
	reg.Register(Entry[int]{Name: "low", Priority: 1})
	reg.Register(Entry[int]{Name: "high", Priority: 5})
	reg.Lookup(cpu.Features{})

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(entries))
	}
	if entries[0].Name != "high" || entries[1].Name != "low" {
		t.Errorf("Entries order = [%s %s], want [high low]", entries[0].Name, entries[1].Name)
	}
}
