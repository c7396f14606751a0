// SPDX-License-Identifier: MIT

// Package textio reads augmented matrices typed one row per line:
//
//	2 1 -1 8
//	-3 -1 2 -11
//	<blank line or EOF>
//
// Fields are separated by any run of whitespace. Reading stops at the first
// empty (or whitespace-only) line so interactive input can be finished
// without closing stdin.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrField is returned when a field cannot be parsed; it wraps the parser error.
var ErrField = errors.New("textio: bad field")

// ReadRows scans r and parses every field with parse.
// An input that starts with a blank line yields an empty, non-nil slice.
// Errors carry the 1-based line and column of the offending field.
func ReadRows[T any](r io.Reader, parse func(string) (T, error)) ([][]T, error) {
	sc := bufio.NewScanner(r)
	rows := make([][]T, 0)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			break
		}
		row := make([]T, len(fields))
		for j, f := range fields {
			v, err := parse(f)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d (%q): %w: %w", line, j+1, f, ErrField, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}

	return rows, nil
}
