// SPDX-License-Identifier: MIT

// Command gaussjordan reads an augmented matrix from stdin, one equation per
// line, and solves it by Gauss–Jordan elimination:
//
//	$ gaussjordan -field rational
//	2 1 -1 8
//	-3 -1 2 -11
//	-2 1 2 -3
//	<blank line>
//
// It prints the input, the row-echelon and reduced forms, and the solution.
// Input ends at the first blank line or EOF.
//
// Flags:
//
//	-field float|complex|rational|modP   arithmetic (default float; P prime)
//	-pivot none|partial                  pivot strategy (default none)
//	-tol eps                             zero tolerance for float/complex
//	-consistent                          reject inconsistent extra equations
//	-check                               float only: print ‖Ax−b‖∞ via gonum
//	-v                                   log pivot and singular-column events
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/gaussjordan/converters"
	"github.com/katalvlaran/gaussjordan/echelon"
	"github.com/katalvlaran/gaussjordan/internal/textio"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

// Exit codes.
const (
	exitOK    = 0
	exitSolve = 1
	exitUsage = 2
)

type config struct {
	field      string
	pivot      matrix.PivotStrategy
	tol        float64
	consistent bool
	check      bool
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process boundary.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)

		return exitUsage
	}

	logger := log.New(stderr, "gaussjordan: ", 0)
	if err = dispatch(cfg, stdin, stdout, logger); err != nil {
		logger.Print(err)

		return exitSolve
	}

	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg   config
		pivot string
	)
	fs := flag.NewFlagSet("gaussjordan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.field, "field", "float", "arithmetic: float, complex, rational or modP")
	fs.StringVar(&pivot, "pivot", matrix.PivotNone.String(), "pivot strategy: none or partial")
	fs.Float64Var(&cfg.tol, "tol", echelon.DefaultTolerance, "treat |v| <= tol as zero (float, complex, rational)")
	fs.BoolVar(&cfg.consistent, "consistent", echelon.DefaultConsistencyCheck, "reject inconsistent extra equations")
	fs.BoolVar(&cfg.check, "check", false, "float only: print the gonum residual of the solution")
	fs.BoolVar(&cfg.verbose, "v", false, "log pivot choices and singular columns")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var err error
	if cfg.pivot, err = matrix.ParsePivotStrategy(pivot); err != nil {
		return cfg, err
	}
	if cfg.tol < 0 || math.IsNaN(cfg.tol) || cfg.tol > 1 {
		return cfg, fmt.Errorf("-tol %v: want a value in [0, 1]", cfg.tol)
	}
	if cfg.check && cfg.field != "float" {
		return cfg, fmt.Errorf("-check needs -field float, got %q", cfg.field)
	}

	return cfg, nil
}

// dispatch picks the scalar type named by cfg.field.
func dispatch(cfg config, in io.Reader, out io.Writer, logger *log.Logger) error {
	switch {
	case cfg.field == "float":
		m, x, err := solve(cfg, in, out, logger, scalar.ParseFloat64)
		if err != nil || !cfg.check {
			return err
		}

		return printResidual(out, m, x)
	case cfg.field == "complex":
		_, _, err := solve(cfg, in, out, logger, scalar.ParseComplex128)

		return err
	case cfg.field == "rational":
		_, _, err := solve(cfg, in, out, logger, scalar.ParseRational)

		return err
	case strings.HasPrefix(cfg.field, "mod"):
		f, err := scalar.ParsePrimeField(strings.TrimPrefix(cfg.field, "mod"))
		if err != nil {
			return fmt.Errorf("-field %s: %w", cfg.field, err)
		}
		_, _, err = solve(cfg, in, out, logger, f.Parse)

		return err
	default:
		return fmt.Errorf("-field %q: want float, complex, rational or modP", cfg.field)
	}
}

// solve reads, echoes and solves one system, printing every stage.
func solve[T scalar.Scalar[T]](
	cfg config,
	in io.Reader,
	out io.Writer,
	logger *log.Logger,
	parse func(string) (T, error),
) (*matrix.Matrix[T], []T, error) {
	rows, err := textio.ReadRows(in, parse)
	if err != nil {
		return nil, nil, err
	}
	m, err := matrix.New(rows)
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(out, "input:\n%s\n", m)

	opts := []echelon.Option{
		echelon.WithPivoting(cfg.pivot),
		echelon.WithTolerance(cfg.tol),
		echelon.WithConsistencyCheck(cfg.consistent),
	}
	if cfg.verbose {
		opts = append(opts, echelon.WithObserver(echelon.ObserverFuncs{
			OnPivot: func(step, row int) {
				if step != row {
					logger.Printf("column %d: swapping rows %d and %d", step, step, row)
				}
			},
			OnSingular: func(col int) { logger.Printf("column %d: no usable pivot", col) },
		}))
	}

	re, err := echelon.Forward(m.Clone(), opts...)
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(out, "row echelon form:\n%s\n", re)
	if cfg.verbose && !re.IsSolvable() {
		logger.Print("row echelon form is not uniquely solvable")
	}

	sq, err := echelon.Square(re)
	if err != nil {
		return nil, nil, err
	}
	rr, err := echelon.Backward(sq)
	if err != nil {
		return nil, nil, err
	}
	fmt.Fprintf(out, "reduced row echelon form:\n%s\n", rr)

	x := rr.Solve()
	for k, v := range x {
		if !scalar.IsFinite(v) {
			return nil, nil, fmt.Errorf("x%d = %v: %w", k+1, v, echelon.ErrNonFinite)
		}
	}
	fmt.Fprintln(out, "solution:")
	for k, v := range x {
		fmt.Fprintf(out, "x%d = %v\n", k+1, v)
	}

	return m, x, nil
}

// printResidual reports ‖Ax−b‖∞ computed independently by gonum.
func printResidual(out io.Writer, m *matrix.Matrix[scalar.Float64], x []scalar.Float64) error {
	a, b, err := converters.ToGonum(m)
	if err != nil {
		return err
	}
	r, err := converters.Residual(a, b, x)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "residual: %g\n", r)

	return nil
}
