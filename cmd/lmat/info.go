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
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightmat/simd"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level, CPU features and pack traits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			f := cpu.DetectFeatures()
			features := lo.Filter([]string{
				lo.Ternary(f.HasSSE2, "sse2", ""),
				lo.Ternary(f.HasAVX2, "avx2", ""),
				lo.Ternary(f.HasNEON, "neon", ""),
			}, func(s string, _ int) bool { return s != "" })

			fmt.Fprintf(out, "arch:     %s\n", lo.Ternary(f.Architecture == "", runtime.GOARCH, f.Architecture))
			fmt.Fprintf(out, "features: %s\n", lo.Ternary(len(features) == 0, "none", strings.Join(features, " ")))
			fmt.Fprintf(out, "dispatch: %s\n", simd.CurrentLevel())
			fmt.Fprintf(out, "native:   %t\n\n", simd.NativeOps())

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PACK\tELEM\tTAG\tWIDTH\tALIGN\tBINT")
			for _, t := range simd.Traits() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\tint%d\n", t.Pack, t.Elem, t.Tag, t.Width, t.Alignment, t.BIntBits)
			}
			return tw.Flush()
		},
	}
}
