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

package main

// packTemplate renders one pack type and its boolean pack. Only field
// substitutions are used so the output is gofmt-stable for every PackSpec.
const packTemplate = `// Code generated by packgen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
	"math"
)

// {{.Name}} holds {{.Width}} {{.Elem}} lanes of a {{.Align}}-byte {{.Tag}}-class register.
type {{.Name}} struct {
	v [{{.Width}}]{{.Elem}}
}

// New{{.Name}} creates a pack from {{.Width}} lane values.
func New{{.Name}}({{.Params}}) {{.Name}} {
	return {{.Name}}{v: [{{.Width}}]{{.Elem}}{ {{- .Args -}} }}
}

// Broadcast{{.Name}} creates a pack with every lane set to v.
func Broadcast{{.Name}}(v {{.Elem}}) {{.Name}} {
	var p {{.Name}}
	for i := range p.v {
		p.v[i] = v
	}
	return p
}

// Load{{.Name}} reads {{.Width}} elements from src without an alignment requirement.
func Load{{.Name}}(src []{{.Elem}}) {{.Name}} {
	var p {{.Name}}
	copy(p.v[:], src[:{{.Width}}])
	return p
}

// {{.Name}}FromArray wraps the native lane array.
func {{.Name}}FromArray(a [{{.Width}}]{{.Elem}}) {{.Name}} {
	return {{.Name}}{v: a}
}

func {{.Lower}}FromBits(b {{.UInt}}) {{.Name}} {
	return Broadcast{{.Name}}(math.{{.FromBits}}(b))
}

// Width returns the number of lanes.
func ({{.Name}}) Width() int { return {{.Width}} }

// Alignment returns the byte alignment required by LoadA and StoreA.
func ({{.Name}}) Alignment() int { return {{.Align}} }

// Zeros returns a pack of +0. The receiver is ignored.
func ({{.Name}}) Zeros() {{.Name}} { return {{.Name}}{} }

// Ones returns a pack of 1. The receiver is ignored.
func ({{.Name}}) Ones() {{.Name}} { return Broadcast{{.Name}}(1) }

// Inf returns a pack of +Inf. The receiver is ignored.
func ({{.Name}}) Inf() {{.Name}} { return {{.Lower}}FromBits({{.InfBits}}) }

// NegInf returns a pack of -Inf. The receiver is ignored.
func ({{.Name}}) NegInf() {{.Name}} { return {{.Lower}}FromBits({{.NegInfBits}}) }

// NaN returns a pack of quiet NaN. The receiver is ignored.
func ({{.Name}}) NaN() {{.Name}} { return {{.Lower}}FromBits({{.NaNBits}}) }

// Set returns a pack with every lane set to v. The receiver is ignored.
func ({{.Name}}) Set(v {{.Elem}}) {{.Name}} { return Broadcast{{.Name}}(v) }

// {{.Lower}}LoadPart reads the first n elements of src into a zeroed pack.
func {{.Lower}}LoadPart(n int, src []{{.Elem}}) {{.Name}} {
	var p {{.Name}}
	copy(p.v[:n], src[:n])
	return p
}

// StoreU writes all lanes to dst.
func (p {{.Name}}) StoreU(dst []{{.Elem}}) {
	copy(dst[:{{.Width}}], p.v[:])
}

// StoreA writes all lanes to dst, which must be {{.Align}}-byte aligned.
func (p {{.Name}}) StoreA(dst []{{.Elem}}) {
	if debugChecks {
		assertAligned(dst, {{.Align}}, "{{.Name}}.StoreA")
	}
	copy(dst[:{{.Width}}], p.v[:])
}

// StorePart writes exactly the first n lanes to dst, 0 <= n < {{.Width}}.
func (p {{.Name}}) StorePart(n int, dst []{{.Elem}}) {
	if debugChecks {
		assertPart(n, {{.Width}}, "{{.Name}}.StorePart")
	}
	copy(dst[:n], p.v[:n])
}

// Array returns the native lane array.
func (p {{.Name}}) Array() [{{.Width}}]{{.Elem}} { return p.v }

// ToScalar returns lane 0.
func (p {{.Name}}) ToScalar() {{.Elem}} { return p.v[0] }

// Extract returns lane i. It panics unless 0 <= i < {{.Width}}.
func (p {{.Name}}) Extract(i int) {{.Elem}} { return p.v[i] }

// Broadcast returns a pack with every lane set to lane i.
func (p {{.Name}}) Broadcast(i int) {{.Name}} { return Broadcast{{.Name}}(p.v[i]) }

// The *Lanes methods are the portable bodies of the hot-path ops declared
// in {{.Lower}}_ops.gen.go and {{.Lower}}_ops_simd.gen.go.

func (p {{.Name}}) addLanes(b {{.Name}}) {{.Name}} {
	for i := range p.v {
		p.v[i] += b.v[i]
	}
	return p
}

// Sub returns p - b lanewise.
func (p {{.Name}}) Sub(b {{.Name}}) {{.Name}} {
	for i := range p.v {
		p.v[i] -= b.v[i]
	}
	return p
}

func (p {{.Name}}) mulLanes(b {{.Name}}) {{.Name}} {
	for i := range p.v {
		p.v[i] *= b.v[i]
	}
	return p
}

// Div returns p / b lanewise.
func (p {{.Name}}) Div(b {{.Name}}) {{.Name}} {
	for i := range p.v {
		p.v[i] /= b.v[i]
	}
	return p
}

func (p {{.Name}}) maxLanes(b {{.Name}}) {{.Name}} {
	for i := range p.v {
		p.v[i] = max(p.v[i], b.v[i])
	}
	return p
}

func (p {{.Name}}) minLanes(b {{.Name}}) {{.Name}} {
	for i := range p.v {
		p.v[i] = min(p.v[i], b.v[i])
	}
	return p
}

func (p {{.Name}}) absLanes() {{.Name}} {
	for i := range p.v {
		p.v[i] = math.{{.FromBits}}(math.{{.Bits}}(p.v[i]) &^ {{.SignMask}})
	}
	return p
}

// Neg flips the sign bit of every lane.
func (p {{.Name}}) Neg() {{.Name}} {
	for i := range p.v {
		p.v[i] = math.{{.FromBits}}(math.{{.Bits}}(p.v[i]) ^ {{.SignMask}})
	}
	return p
}

// Sqrt returns the lanewise square root.
func (p {{.Name}}) Sqrt() {{.Name}} {
	for i := range p.v {
		p.v[i] = {{.Elem}}(math.Sqrt(float64(p.v[i])))
	}
	return p
}

// Map2 applies f to each pair of corresponding lanes.
func (p {{.Name}}) Map2(b {{.Name}}, f func(x, y {{.Elem}}) {{.Elem}}) {{.Name}} {
	for i := range p.v {
		p.v[i] = f(p.v[i], b.v[i])
	}
	return p
}

// Fold reduces the lanes to one value by pairwise halving: lane i is
// combined with lane i+h for h = {{.Width}}/2, {{.Width}}/4, ..., 1.
func (p {{.Name}}) Fold(f func(x, y {{.Elem}}) {{.Elem}}) {{.Elem}} {
	v := p.v
	for h := {{.Width}} / 2; h > 0; h /= 2 {
		for i := 0; i < h; i++ {
			v[i] = f(v[i], v[i+h])
		}
	}
	return v[0]
}

// FillTail returns p with lanes n and above replaced by v.
func (p {{.Name}}) FillTail(n int, v {{.Elem}}) {{.Name}} {
	return FirstN{{.Mask}}(n).Select(p, Broadcast{{.Name}}(v))
}

// Equal compares lanewise for equality.
func (p {{.Name}}) Equal(b {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range p.v {
		m.v[i] = laneOf[{{.BInt}}](p.v[i] == b.v[i])
	}
	return m
}

// NotEqual compares lanewise for inequality.
func (p {{.Name}}) NotEqual(b {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range p.v {
		m.v[i] = laneOf[{{.BInt}}](p.v[i] != b.v[i])
	}
	return m
}

// Less compares p < b lanewise.
func (p {{.Name}}) Less(b {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range p.v {
		m.v[i] = laneOf[{{.BInt}}](p.v[i] < b.v[i])
	}
	return m
}

// LessEqual compares p <= b lanewise.
func (p {{.Name}}) LessEqual(b {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range p.v {
		m.v[i] = laneOf[{{.BInt}}](p.v[i] <= b.v[i])
	}
	return m
}

// Greater compares p > b lanewise.
func (p {{.Name}}) Greater(b {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range p.v {
		m.v[i] = laneOf[{{.BInt}}](p.v[i] > b.v[i])
	}
	return m
}

// GreaterEqual compares p >= b lanewise.
func (p {{.Name}}) GreaterEqual(b {{.Name}}) {{.Mask}} {
	var m {{.Mask}}
	for i := range p.v {
		m.v[i] = laneOf[{{.BInt}}](p.v[i] >= b.v[i])
	}
	return m
}

// IsNaN reports which lanes hold NaN.
func (p {{.Name}}) IsNaN() {{.Mask}} {
	var m {{.Mask}}
	for i := range p.v {
		m.v[i] = laneOf[{{.BInt}}](p.v[i] != p.v[i])
	}
	return m
}

func (p {{.Name}}) String() string {
	return fmt.Sprint(p.v)
}

// {{.Mask}} holds {{.Width}} boolean lanes matching {{.Name}}. Every lane is
// either all ones (true) or all zeros (false).
type {{.Mask}} struct {
	v [{{.Width}}]{{.BInt}}
}

// New{{.Mask}} creates a boolean pack from {{.Width}} lane values.
func New{{.Mask}}({{.BoolParams}}) {{.Mask}} {
	return {{.Mask}}{v: [{{.Width}}]{{.BInt}}{ {{- .BoolLanes -}} }}
}

// AllTrue{{.Mask}} returns a boolean pack with every lane true.
func AllTrue{{.Mask}}() {{.Mask}} { return Broadcast{{.Mask}}(true) }

// AllFalse{{.Mask}} returns a boolean pack with every lane false.
func AllFalse{{.Mask}}() {{.Mask}} { return {{.Mask}}{} }

// Broadcast{{.Mask}} returns a boolean pack with every lane set to b.
func Broadcast{{.Mask}}(b bool) {{.Mask}} {
	var m {{.Mask}}
	for i := range m.v {
		m.v[i] = laneOf[{{.BInt}}](b)
	}
	return m
}

// Load{{.Mask}} reads {{.Width}} booleans from src.
func Load{{.Mask}}(src []bool) {{.Mask}} {
	var m {{.Mask}}
	for i, b := range src[:{{.Width}}] {
		m.v[i] = laneOf[{{.BInt}}](b)
	}
	return m
}

// FirstN{{.Mask}} returns a boolean pack whose lanes below n are true.
func FirstN{{.Mask}}(n int) {{.Mask}} {
	var m {{.Mask}}
	for i := range m.v {
		m.v[i] = laneOf[{{.BInt}}](i < n)
	}
	return m
}

// {{.Mask}}FromBits wraps raw lane bits without normalizing them. Lanes
// other than 0 and -1 leave the mask invalid: Extract reports any nonzero
// lane as true while Select blends bitwise, so their results are undefined
// unless Valid reports true.
func {{.Mask}}FromBits(bits [{{.Width}}]{{.BInt}}) {{.Mask}} {
	return {{.Mask}}{v: bits}
}

// Width returns the number of lanes.
func ({{.Mask}}) Width() int { return {{.Width}} }

// Store writes every lane to dst as a bool.
func (m {{.Mask}}) Store(dst []bool) {
	for i, b := range m.v {
		dst[i] = b != 0
	}
}

// Bits returns the raw lane bits.
func (m {{.Mask}}) Bits() [{{.Width}}]{{.BInt}} { return m.v }

// Extract returns lane i. It panics unless 0 <= i < {{.Width}}.
func (m {{.Mask}}) Extract(i int) bool { return m.v[i] != 0 }

// ToScalar returns lane 0 only.
func (m {{.Mask}}) ToScalar() bool { return m.v[0] != 0 }

// AllTrue reports whether every lane is true.
func (m {{.Mask}}) AllTrue() bool {
	for _, b := range m.v {
		if b == 0 {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is true.
func (m {{.Mask}}) AnyTrue() bool {
	for _, b := range m.v {
		if b != 0 {
			return true
		}
	}
	return false
}

// CountTrue returns the number of true lanes.
func (m {{.Mask}}) CountTrue() int {
	n := 0
	for _, b := range m.v {
		if b != 0 {
			n++
		}
	}
	return n
}

// Valid reports whether every lane is exactly all ones or all zeros.
func (m {{.Mask}}) Valid() bool {
	for _, b := range m.v {
		if b != 0 && b != -1 {
			return false
		}
	}
	return true
}

// And returns m & o.
func (m {{.Mask}}) And(o {{.Mask}}) {{.Mask}} {
	for i := range m.v {
		m.v[i] &= o.v[i]
	}
	return m
}

// Or returns m | o.
func (m {{.Mask}}) Or(o {{.Mask}}) {{.Mask}} {
	for i := range m.v {
		m.v[i] |= o.v[i]
	}
	return m
}

// Xor returns m ^ o.
func (m {{.Mask}}) Xor(o {{.Mask}}) {{.Mask}} {
	for i := range m.v {
		m.v[i] ^= o.v[i]
	}
	return m
}

// AndNot returns m &^ o.
func (m {{.Mask}}) AndNot(o {{.Mask}}) {{.Mask}} {
	for i := range m.v {
		m.v[i] &^= o.v[i]
	}
	return m
}

// Not inverts every lane.
func (m {{.Mask}}) Not() {{.Mask}} {
	for i := range m.v {
		m.v[i] = ^m.v[i]
	}
	return m
}

// Select takes lanes of a where m is true and lanes of b elsewhere. The
// blend is bitwise, so lane bit patterns are preserved exactly. The result
// is undefined unless m.Valid() reports true.
func (m {{.Mask}}) Select(a, b {{.Name}}) {{.Name}} {
	var r {{.Name}}
	for i, l := range m.v {
		k := {{.UInt}}(l)
		x := math.{{.Bits}}(a.v[i])
		y := math.{{.Bits}}(b.v[i])
		r.v[i] = math.{{.FromBits}}(x&k | y&^k)
	}
	return r
}

func (m {{.Mask}}) String() string {
	return fmt.Sprint(m.v)
}
`

// opsTemplate renders the hot-path ops for builds without archsimd.
const opsTemplate = `// Code generated by packgen. DO NOT EDIT.

//go:build !amd64 || !goexperiment.simd || purego

package {{.Package}}

// LoadU reads {{.Width}} elements from src. The receiver is ignored.
func ({{.Name}}) LoadU(src []{{.Elem}}) {{.Name}} {
	return Load{{.Name}}(src)
}

// LoadA reads {{.Width}} elements from src, which must be {{.Align}}-byte aligned.
// The receiver is ignored.
func ({{.Name}}) LoadA(src []{{.Elem}}) {{.Name}} {
	if debugChecks {
		assertAligned(src, {{.Align}}, "{{.Name}}.LoadA")
	}
	return Load{{.Name}}(src)
}

// LoadPart reads exactly the first n elements of src, 0 <= n < {{.Width}}.
// Lanes n and above are zero. The receiver is ignored.
func ({{.Name}}) LoadPart(n int, src []{{.Elem}}) {{.Name}} {
	if debugChecks {
		assertPart(n, {{.Width}}, "{{.Name}}.LoadPart")
	}
	return {{.Lower}}LoadPart(n, src)
}

// Add returns p + b lanewise.
func (p {{.Name}}) Add(b {{.Name}}) {{.Name}} { return p.addLanes(b) }

// Mul returns p * b lanewise.
func (p {{.Name}}) Mul(b {{.Name}}) {{.Name}} { return p.mulLanes(b) }

// Max returns the lanewise maximum. NaN in either operand propagates.
func (p {{.Name}}) Max(b {{.Name}}) {{.Name}} { return p.maxLanes(b) }

// Min returns the lanewise minimum. NaN in either operand propagates.
func (p {{.Name}}) Min(b {{.Name}}) {{.Name}} { return p.minLanes(b) }

// Abs clears the sign bit of every lane.
func (p {{.Name}}) Abs() {{.Name}} { return p.absLanes() }
`

// nativeTemplate renders the hot-path ops on the matching archsimd register
// type. Every op falls back to the portable lane loop when nativeOps is false.
const nativeTemplate = `// Code generated by packgen. DO NOT EDIT.

//go:build amd64 && goexperiment.simd && !purego

package {{.Package}}

import (
	"simd/archsimd"
)

// The hot-path ops of {{.Name}} run on archsimd.{{.Name}} when nativeOps is
// set and on the portable lane loops otherwise. Results are bit-identical
// to the lane loops, NaN payloads aside.

// LoadU reads {{.Width}} elements from src. The receiver is ignored.
func ({{.Name}}) LoadU(src []{{.Elem}}) {{.Name}} {
	if !nativeOps {
		return Load{{.Name}}(src)
	}
	return {{.Name}}FromArchsimd(archsimd.Load{{.Name}}Slice(src))
}

// LoadA reads {{.Width}} elements from src, which must be {{.Align}}-byte aligned.
// The receiver is ignored.
func ({{.Name}}) LoadA(src []{{.Elem}}) {{.Name}} {
	if debugChecks {
		assertAligned(src, {{.Align}}, "{{.Name}}.LoadA")
	}
	if !nativeOps {
		return Load{{.Name}}(src)
	}
	return {{.Name}}FromArchsimd(archsimd.Load{{.Name}}Slice(src))
}

// LoadPart reads exactly the first n elements of src, 0 <= n < {{.Width}}.
// Lanes n and above are zero. The receiver is ignored.
func ({{.Name}}) LoadPart(n int, src []{{.Elem}}) {{.Name}} {
	if debugChecks {
		assertPart(n, {{.Width}}, "{{.Name}}.LoadPart")
	}
	if !nativeOps {
		return {{.Lower}}LoadPart(n, src)
	}
	// Stage through a zeroed array so nothing past src[n-1] is read.
	var buf [{{.Width}}]{{.Elem}}
	copy(buf[:n], src[:n])
	return {{.Name}}FromArchsimd(archsimd.Load{{.Name}}Slice(buf[:]))
}

// Add returns p + b lanewise.
func (p {{.Name}}) Add(b {{.Name}}) {{.Name}} {
	if !nativeOps {
		return p.addLanes(b)
	}
	return {{.Name}}FromArchsimd(p.ToArchsimd().Add(b.ToArchsimd()))
}

// Mul returns p * b lanewise.
func (p {{.Name}}) Mul(b {{.Name}}) {{.Name}} {
	if !nativeOps {
		return p.mulLanes(b)
	}
	return {{.Name}}FromArchsimd(p.ToArchsimd().Mul(b.ToArchsimd()))
}

// Max returns the lanewise maximum. NaN in either operand propagates.
func (p {{.Name}}) Max(b {{.Name}}) {{.Name}} {
	if !nativeOps {
		return p.maxLanes(b)
	}
	x, y := p.ToArchsimd(), b.ToArchsimd()
	xi, yi := x.As{{.IntVec}}(), y.As{{.IntVec}}()
	// VMAXP returns its second operand on NaN and on a -0/+0 tie.
	r := x.Max(y).As{{.IntVec}}()
	r = xi.And(yi).Merge(r, x.Equal(y))
	r = r.Merge(xi, x.Equal(x))
	r = r.Merge(yi, y.Equal(y))
	return {{.Name}}FromArchsimd(r.As{{.Name}}())
}

// Min returns the lanewise minimum. NaN in either operand propagates.
func (p {{.Name}}) Min(b {{.Name}}) {{.Name}} {
	if !nativeOps {
		return p.minLanes(b)
	}
	x, y := p.ToArchsimd(), b.ToArchsimd()
	xi, yi := x.As{{.IntVec}}(), y.As{{.IntVec}}()
	// VMINP returns its second operand on NaN and on a -0/+0 tie.
	r := x.Min(y).As{{.IntVec}}()
	r = xi.Or(yi).Merge(r, x.Equal(y))
	r = r.Merge(xi, x.Equal(x))
	r = r.Merge(yi, y.Equal(y))
	return {{.Name}}FromArchsimd(r.As{{.Name}}())
}

// Abs clears the sign bit of every lane.
func (p {{.Name}}) Abs() {{.Name}} {
	if !nativeOps {
		return p.absLanes()
	}
	mask := archsimd.Broadcast{{.IntVec}}({{.AbsMask}})
	return {{.Name}}FromArchsimd(p.ToArchsimd().As{{.IntVec}}().And(mask).As{{.Name}}())
}
`
