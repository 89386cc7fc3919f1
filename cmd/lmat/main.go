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

// Command lmat reduces numeric data with the go-lightmat engine.
//
// Usage:
//
//	lmat info
//	lmat reduce sum 1 2 3 4
//	lmat reduce l2 --file data.f32 --dtype f32 --rows 128 --colwise
//	lmat dot --file a.f64 --with b.f64 --dtype f64
//
// Files hold raw native-endian floats and are memory-mapped.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightmat/simd"
)

var (
	errUnknownOp = errors.New("unknown reduction")
	errBadDType  = errors.New("bad dtype")
	errShape     = errors.New("bad shape")
)

type globalOptions struct {
	verbose bool
	noSimd  bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "lmat",
		Short:         "Matrix reductions on SIMD packs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				simd.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
				simd.Redetect()
			}
			if opts.noSimd {
				simd.SetLevel(simd.DispatchScalar)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log dispatch decisions to stderr")
	root.PersistentFlags().BoolVar(&opts.noSimd, "no-simd", false, "force scalar evaluation")

	root.AddCommand(newInfoCmd(), newReduceCmd(), newDotCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("lmat:", err)
		os.Exit(1)
	}
}
