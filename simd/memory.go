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

import "unsafe"

// This file provides the alignment helpers behind the LoadA/StoreA
// precondition.

// MaxAlignment is the strictest alignment any pack requires (AVX class).
const MaxAlignment = 32

// AlignedSlice returns a zeroed slice of n elements whose first element is
// aligned to align bytes. align must be a power of two.
//
// The slice is carved out of a slightly larger allocation, so its capacity
// is exactly n and appending reallocates without the alignment guarantee.
func AlignedSlice[T Floats](n, align int) []T {
	if align&(align-1) != 0 || align <= 0 {
		panic("simd: alignment must be a positive power of two")
	}
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	if n == 0 {
		return []T{}
	}
	pad := (align + size - 1) / size
	buf := make([]T, n+pad)
	off := 0
	for !IsAligned(buf[off:], align) {
		off++
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first element of s is aligned to align
// bytes. An empty slice is never aligned.
func IsAligned[T any](s []T, align int) bool {
	if len(s) == 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return addr%uintptr(align) == 0
}
