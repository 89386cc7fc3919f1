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

//go:build amd64 && goexperiment.simd && !purego

package simd

import (
	"simd/archsimd"
)

// nativeOps gates the archsimd hot-path pack ops. The 128-bit forms are
// VEX encoded and the integer broadcasts and blends need AVX2, so both
// register classes require it.
var nativeOps = archsimd.X86.AVX2() && !NoSimdEnv()

// NativeOps reports whether the hot-path pack ops run on archsimd
// registers instead of portable lane loops.
func NativeOps() bool { return nativeOps }
