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

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// PackSpec describes one (element type, register class) pair.
type PackSpec struct {
	Name     string // pack type, e.g. Float32x4
	Mask     string // boolean pack type, e.g. Mask32x4
	Elem     string // lane type
	BInt     string // boolean lane type, same size as Elem
	UInt     string // unsigned type used for bit reinterpretation
	Tag      string // register class tag
	Width    int
	Align    int
	Bits     string // math function: float -> bits
	FromBits string // math function: bits -> float

	InfBits    string
	NegInfBits string
	NaNBits    string
	SignMask   string
	AbsMask    string // signed-integer form of ^SignMask
}

// Specs is the trait table the generated code implements.
var Specs = []PackSpec{
	f32Spec("Float32x4", "Mask32x4", "SSE", 4, 16),
	f64Spec("Float64x2", "Mask64x2", "SSE", 2, 16),
	f32Spec("Float32x8", "Mask32x8", "AVX", 8, 32),
	f64Spec("Float64x4", "Mask64x4", "AVX", 4, 32),
}

func f32Spec(name, mask, tag string, width, align int) PackSpec {
	return PackSpec{
		Name: name, Mask: mask, Elem: "float32", BInt: "int32", UInt: "uint32",
		Tag: tag, Width: width, Align: align,
		Bits: "Float32bits", FromBits: "Float32frombits",
		InfBits: "0x7f800000", NegInfBits: "0xff800000", NaNBits: "0x7fc00000",
		SignMask: "0x80000000", AbsMask: "0x7fffffff",
	}
}

func f64Spec(name, mask, tag string, width, align int) PackSpec {
	return PackSpec{
		Name: name, Mask: mask, Elem: "float64", BInt: "int64", UInt: "uint64",
		Tag: tag, Width: width, Align: align,
		Bits: "Float64bits", FromBits: "Float64frombits",
		InfBits: "0x7ff0000000000000", NegInfBits: "0xfff0000000000000", NaNBits: "0x7ff8000000000000",
		SignMask: "0x8000000000000000", AbsMask: "0x7fffffffffffffff",
	}
}

func packNames() []string {
	names := make([]string, len(Specs))
	for i, s := range Specs {
		names[i] = s.Name
	}
	return names
}

func selectSpecs(list string) ([]PackSpec, error) {
	if list == "" || list == "all" {
		return Specs, nil
	}
	var out []PackSpec
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		found := false
		for _, s := range Specs {
			if strings.EqualFold(s.Name, name) {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown pack %q", name)
		}
	}
	return out, nil
}

// templateData is what packTemplate sees: the PackSpec plus the width-dependent
// argument lists, precomputed so the template has no loops.
type templateData struct {
	PackSpec
	Package    string
	Lower      string
	IntVec     string
	Params     string
	Args       string
	BoolParams string
	BoolLanes  string
}

func newTemplateData(pkg string, s PackSpec) templateData {
	args := make([]string, s.Width)
	bargs := make([]string, s.Width)
	lanes := make([]string, s.Width)
	for i := range s.Width {
		args[i] = fmt.Sprintf("e%d", i)
		bargs[i] = fmt.Sprintf("b%d", i)
		lanes[i] = fmt.Sprintf("laneOf[%s](b%d)", s.BInt, i)
	}
	return templateData{
		PackSpec:   s,
		Package:    pkg,
		Lower:      strings.ToLower(s.Name[:1]) + s.Name[1:],
		IntVec:     "Int" + strings.TrimPrefix(s.Name, "Float"),
		Params:     strings.Join(args, ", ") + " " + s.Elem,
		Args:       strings.Join(args, ", "),
		BoolParams: strings.Join(bargs, ", ") + " bool",
		BoolLanes:  strings.Join(lanes, ", "),
	}
}

// Generator renders pack files into OutputDir.
type Generator struct {
	OutputDir string
	Package   string
	Specs     []PackSpec
}

var tmpl = func() *template.Template {
	t := template.Must(template.New("pack").Parse(packTemplate))
	template.Must(t.New("ops").Parse(opsTemplate))
	template.Must(t.New("native").Parse(nativeTemplate))
	return t
}()

// fileKinds lists the files rendered per PackSpec: the pack types, the
// portable hot-path ops and their archsimd variant.
var fileKinds = []struct {
	template string
	suffix   string
}{
	{"pack", ".gen.go"},
	{"ops", "_ops.gen.go"},
	{"native", "_ops_simd.gen.go"},
}

// File is one rendered source file.
type File struct {
	Name string
	Src  []byte
}

// Render returns the formatted sources for one PackSpec, in FileNames order.
func (g *Generator) Render(s PackSpec) ([]File, error) {
	data := newTemplateData(g.Package, s)
	files := make([]File, 0, len(fileKinds))
	for _, k := range fileKinds {
		name := strings.ToLower(s.Name) + k.suffix
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, k.template, data); err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		formatted, err := imports.Process(name, buf.Bytes(), nil)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", name, err)
		}
		files = append(files, File{Name: name, Src: formatted})
	}
	return files, nil
}

// Run renders and writes every PackSpec, returning the written paths.
func (g *Generator) Run() ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	var written []string
	for _, s := range g.Specs {
		files, err := g.Render(s)
		if err != nil {
			return written, err
		}
		for _, f := range files {
			path := filepath.Join(g.OutputDir, f.Name)
			if err := os.WriteFile(path, f.Src, 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}
	return written, nil
}

// FileNames lists the generated file names for a PackSpec, e.g.
// float32x4.gen.go, float32x4_ops.gen.go and float32x4_ops_simd.gen.go.
func FileNames(s PackSpec) []string {
	names := make([]string, len(fileKinds))
	for i, k := range fileKinds {
		names[i] = strings.ToLower(s.Name) + k.suffix
	}
	return names
}
