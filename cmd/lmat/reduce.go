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
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lightmat/matrix"
	"github.com/ajroetker/go-lightmat/reduce"
	"github.com/ajroetker/go-lightmat/simd"
)

type reduction struct {
	f32 func(matrix.Expr[float32]) float32
	f64 func(matrix.Expr[float64]) float64
}

var reductions = map[string]reduction{
	"sum":  {reduce.Sum[float32], reduce.Sum[float64]},
	"mean": {reduce.Mean[float32], reduce.Mean[float64]},
	"max":  {reduce.Maximum[float32], reduce.Maximum[float64]},
	"min":  {reduce.Minimum[float32], reduce.Minimum[float64]},
	"prod": {reduce.Product[float32], reduce.Product[float64]},
	"l1":   {reduce.L1Norm[float32], reduce.L1Norm[float64]},
	"l2":   {reduce.L2Norm[float32], reduce.L2Norm[float64]},
	"sql2": {reduce.SqL2Norm[float32], reduce.SqL2Norm[float64]},
	"linf": {reduce.LinfNorm[float32], reduce.LinfNorm[float64]},
}

func reductionNames() []string {
	names := lo.Keys(reductions)
	slices.Sort(names)
	return names
}

type reduceOptions struct {
	file    string
	dt      dtype
	rows    int
	cols    int
	colwise bool
}

func newReduceCmd() *cobra.Command {
	opts := &reduceOptions{dt: dtypeF64}
	cmd := &cobra.Command{
		Use:   "reduce OP [values...]",
		Short: "Reduce values or a raw float file",
		Long:  "Reduce values or a raw float file. OP is one of: " + strings.Join(reductionNames(), ", ") + ".",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := reductions[args[0]]
			if !ok {
				return fmt.Errorf("%w %q (want one of %s)", errUnknownOp, args[0], strings.Join(reductionNames(), ", "))
			}
			if opts.file != "" && len(args) > 1 {
				return fmt.Errorf("values and --file are mutually exclusive")
			}
			switch opts.dt {
			case dtypeF32:
				return runReduce(cmd.OutOrStdout(), opts, args[1:], op.f32)
			default:
				return runReduce(cmd.OutOrStdout(), opts, args[1:], op.f64)
			}
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "raw native-endian float file (memory-mapped)")
	f.Var(&opts.dt, "dtype", "element type: f32 or f64")
	f.IntVar(&opts.rows, "rows", 0, "rows of the column-major input (default: all values)")
	f.IntVar(&opts.cols, "cols", 0, "columns of the column-major input")
	f.BoolVar(&opts.colwise, "colwise", false, "reduce each column separately")
	return cmd
}

func runReduce[T simd.Floats](out io.Writer, opts *reduceOptions, args []string, op func(matrix.Expr[T]) T) error {
	vals, closeFn, err := loadValues[T](opts.file, args)
	if err != nil {
		return err
	}
	defer closeFn()

	rows, cols, err := shape(len(vals), opts.rows, opts.cols)
	if err != nil {
		return err
	}
	x := matrix.FromSlice(rows, cols, vals)
	simd.Logger().Debug("lmat: reduce", "rows", rows, "cols", cols, "level", simd.CurrentLevel().String())

	if !opts.colwise {
		_, err = fmt.Fprintln(out, op(x))
		return err
	}
	results := make([]T, cols)
	for j := range results {
		results[j] = op(matrix.Column[T](x, j))
	}
	_, err = fmt.Fprintln(out, results)
	return err
}

// loadValues returns the values from a mapped file or from args, and a
// function releasing the mapping.
func loadValues[T simd.Floats](path string, args []string) ([]T, func() error, error) {
	if path == "" {
		vals, err := parseValues[T](args)
		return vals, func() error { return nil }, err
	}
	m, err := openMapped(path)
	if err != nil {
		return nil, nil, err
	}
	vals, err := floatsOf[T](m)
	if err != nil {
		m.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return vals, m.Close, nil
}
