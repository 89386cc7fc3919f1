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
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/reduce"
	"github.com/ajroetker/go-lightmat/simd"
)

type dotOptions struct {
	file string
	with string
	dt   dtype
}

func newDotCmd() *cobra.Command {
	opts := &dotOptions{dt: dtypeF64}
	cmd := &cobra.Command{
		Use:   "dot --file A --with B",
		Short: "Dot product of two raw float files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.dt == dtypeF32 {
				return runDot[float32](cmd.OutOrStdout(), opts)
			}
			return runDot[float64](cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "first operand")
	f.StringVar(&opts.with, "with", "", "second operand")
	f.Var(&opts.dt, "dtype", "element type: f32 or f64")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("with")
	return cmd
}

func runDot[T simd.Floats](out io.Writer, opts *dotOptions) error {
	a, closeA, err := loadValues[T](opts.file, nil)
	if err != nil {
		return err
	}
	defer closeA()
	b, closeB, err := loadValues[T](opts.with, nil)
	if err != nil {
		return err
	}
	defer closeB()

	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d values", errShape, len(a), len(b))
	}
	_, err = fmt.Fprintln(out, reduce.Dot[T](matrix.ColVector(a), matrix.ColVector(b)))
	return err
}
