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

// Package registry keeps implementation entries ranked by priority and
// selects the best one the CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Entry is one registered implementation.
type Entry[V any] struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Value     V
}

// Registry stores available implementations.
type Registry[V any] struct {
	mu      sync.RWMutex
	entries []Entry[V]
	sorted  bool
}

// Register adds an implementation entry.
func (r *Registry[V]) Register(entry Entry[V]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil.
func (r *Registry[V]) Lookup(features cpu.Features) *Entry[V] {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Supports reports whether features allow code built for level.
// ForceGeneric admits only cpu.SIMDNone.
func Supports(features cpu.Features, level cpu.SIMDLevel) bool {
	if features.ForceGeneric {
		return level == cpu.SIMDNone
	}
	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return features.HasSSE2
	case cpu.SIMDAVX2:
		return features.HasAVX2
	case cpu.SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

// stable insertion sort, highest priority first
func (r *Registry[V]) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// Entries returns a copy of the entries for tests and diagnostics.
func (r *Registry[V]) Entries() []Entry[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry[V], len(r.entries))
	copy(entries, r.entries)
	return entries
}
