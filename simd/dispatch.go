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
	"os"
	"strconv"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/ajroetker/go-lightmat/internal/registry"
)

// DispatchLevel is the register class the reduction kernels run on.
type DispatchLevel int

const (
	// DispatchScalar indicates no packs, plain scalar loops.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE indicates 128-bit packs (SSE2 on amd64, NEON on arm64).
	DispatchSSE

	// DispatchAVX indicates 256-bit packs.
	DispatchAVX
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE:
		return "sse"
	case DispatchAVX:
		return "avx"
	default:
		return "unknown"
	}
}

// Bytes returns the register width in bytes, or 0 for DispatchScalar.
func (d DispatchLevel) Bytes() int {
	switch d {
	case DispatchSSE:
		return SSE{}.Bytes()
	case DispatchAVX:
		return AVX{}.Bytes()
	default:
		return 0
	}
}

// levels maps CPU SIMD support to dispatch levels. AVX-class packs are
// selected on AVX2 hardware.
var levels registry.Registry[DispatchLevel]

// currentLevel is the selected dispatch level, set by Redetect and SetLevel.
var currentLevel atomic.Int32

func init() {
	levels.Register(registry.Entry[DispatchLevel]{Name: "scalar", SIMDLevel: cpu.SIMDNone, Priority: 0, Value: DispatchScalar})
	levels.Register(registry.Entry[DispatchLevel]{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Value: DispatchSSE})
	levels.Register(registry.Entry[DispatchLevel]{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 10, Value: DispatchSSE})
	levels.Register(registry.Entry[DispatchLevel]{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Value: DispatchAVX})

	Redetect()
}

// CurrentLevel returns the dispatch level in use.
func CurrentLevel() DispatchLevel {
	return DispatchLevel(currentLevel.Load())
}

// SetLevel forces a dispatch level and returns the previous one. Forcing a
// level the CPU lacks is allowed: packs are portable Go values.
func SetLevel(level DispatchLevel) DispatchLevel {
	prev := DispatchLevel(currentLevel.Swap(int32(level)))
	Logger().Debug("simd: dispatch level forced", "level", level.String(), "previous", prev.String())
	return prev
}

// Redetect selects the dispatch level from the build tags, the
// LMAT_NO_SIMD environment variable and cpu.DetectFeatures, in that order.
// Tests call it after cpu.SetForcedFeatures.
func Redetect() DispatchLevel {
	level, reason := detectLevel()
	currentLevel.Store(int32(level))
	Logger().Debug("simd: dispatch level selected", "level", level.String(), "reason", reason, "native", NativeOps())
	return level
}

func detectLevel() (DispatchLevel, string) {
	if pureGo {
		return DispatchScalar, "purego"
	}
	if NoSimdEnv() {
		return DispatchScalar, "LMAT_NO_SIMD"
	}
	entry := levels.Lookup(cpu.DetectFeatures())
	if entry == nil {
		return DispatchScalar, "unsupported"
	}
	return entry.Value, entry.Name
}

// NoSimdEnv checks if the LMAT_NO_SIMD environment variable is set.
// When set, the scalar level is used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("LMAT_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
