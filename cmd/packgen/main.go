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

// Command packgen generates the pack and boolean-pack types of the simd
// package, one file per (element type, register class) pair.
//
// Usage:
//
//	packgen -output ../simd -pkg simd
//	packgen -output . -packs Float32x4,Float64x2
//
// Or via go:generate from the simd package:
//
//	//go:generate go run ../cmd/packgen -output .
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory")
	packageOut = flag.String("pkg", "simd", "Output package name")
	packList   = flag.String("packs", "all", "Comma-separated pack names ("+strings.Join(packNames(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	specs, err := selectSpecs(*packList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Package:   *packageOut,
		Specs:     specs,
	}
	files, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Printf("Generated %s\n", f)
	}
}
