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
	"strconv"
	"unsafe"
)

// Tag identifies a register class. Tags are only used as type arguments;
// their values carry no state.
type Tag interface {
	// Bytes returns the register width in bytes (16 for 128-bit, 32 for 256-bit).
	Bytes() int

	// Name returns a human-readable name for this tag ("sse", "avx").
	Name() string
}

// SSE is the 128-bit register class (SSE on amd64, NEON on arm64).
type SSE struct{}

// Bytes returns 16.
func (SSE) Bytes() int { return 16 }

// Name returns "sse".
func (SSE) Name() string { return "sse" }

// AVX is the 256-bit register class.
type AVX struct{}

// Bytes returns 32.
func (AVX) Bytes() int { return 32 }

// Name returns "avx".
func (AVX) Name() string { return "avx" }

// Trait describes one supported (element type, tag) pair.
type Trait struct {
	Pack      string // pack type name
	Elem      string // element type name
	Tag       string // tag name
	Width     int    // lanes per pack
	Alignment int    // bytes, required by LoadA/StoreA
	BIntBits  int    // bits per boolean lane
}

// LaneCount returns the number of T lanes in a register of class I.
//
// For example:
//   - float32, SSE: 16/4 = 4 lanes
//   - float64, SSE: 16/8 = 2 lanes
//   - float32, AVX: 32/4 = 8 lanes
//   - float64, AVX: 32/8 = 4 lanes
func LaneCount[T Floats, I Tag]() int {
	var tag I
	var dummy T
	return tag.Bytes() / int(unsafe.Sizeof(dummy))
}

// TraitOf returns the trait record of (T, I).
func TraitOf[T Floats, I Tag]() Trait {
	var tag I
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	t := Trait{
		Elem:      elemName[T](),
		Tag:       tag.Name(),
		Width:     LaneCount[T, I](),
		Alignment: tag.Bytes(),
		BIntBits:  size * 8,
	}
	t.Pack = packName(t.Elem, t.Width)
	return t
}

// Traits returns the trait table for every supported pair.
func Traits() []Trait {
	return []Trait{
		TraitOf[float32, SSE](),
		TraitOf[float64, SSE](),
		TraitOf[float32, AVX](),
		TraitOf[float64, AVX](),
	}
}

func elemName[T Floats]() string {
	var zero T
	switch any(zero).(type) {
	case float32:
		return "float32"
	default:
		return "float64"
	}
}

func packName(elem string, width int) string {
	switch elem {
	case "float32":
		return "Float32x" + strconv.Itoa(width)
	default:
		return "Float64x" + strconv.Itoa(width)
	}
}

// Every specialization implements the shared operation set.
var (
	_ Pack[float32, Float32x4] = Float32x4{}
	_ Pack[float64, Float64x2] = Float64x2{}
	_ Pack[float32, Float32x8] = Float32x8{}
	_ Pack[float64, Float64x4] = Float64x4{}
)
