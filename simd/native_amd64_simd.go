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

//go:build amd64 && goexperiment.simd

package simd

import (
	"simd/archsimd"
)

// This file converts packs to and from archsimd register types so kernels
// written directly against archsimd can consume and produce packs.

// ToArchsimd returns p as an archsimd register value.
func (p Float32x4) ToArchsimd() archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(p.v[:])
}

// Float32x4FromArchsimd converts an archsimd register value to a pack.
func Float32x4FromArchsimd(v archsimd.Float32x4) Float32x4 {
	var p Float32x4
	v.StoreSlice(p.v[:])
	return p
}

// ToArchsimd returns p as an archsimd register value.
func (p Float64x2) ToArchsimd() archsimd.Float64x2 {
	return archsimd.LoadFloat64x2Slice(p.v[:])
}

// Float64x2FromArchsimd converts an archsimd register value to a pack.
func Float64x2FromArchsimd(v archsimd.Float64x2) Float64x2 {
	var p Float64x2
	v.StoreSlice(p.v[:])
	return p
}

// ToArchsimd returns p as an archsimd register value.
func (p Float32x8) ToArchsimd() archsimd.Float32x8 {
	return archsimd.LoadFloat32x8Slice(p.v[:])
}

// Float32x8FromArchsimd converts an archsimd register value to a pack.
func Float32x8FromArchsimd(v archsimd.Float32x8) Float32x8 {
	var p Float32x8
	v.StoreSlice(p.v[:])
	return p
}

// ToArchsimd returns p as an archsimd register value.
func (p Float64x4) ToArchsimd() archsimd.Float64x4 {
	return archsimd.LoadFloat64x4Slice(p.v[:])
}

// Float64x4FromArchsimd converts an archsimd register value to a pack.
func Float64x4FromArchsimd(v archsimd.Float64x4) Float64x4 {
	var p Float64x4
	v.StoreSlice(p.v[:])
	return p
}
