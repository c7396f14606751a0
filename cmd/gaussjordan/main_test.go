package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalInput = "2 1 -1 8\n-3 -1 2 -11\n-2 1 2 -3\n\n"

func runCLI(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(input), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Rational(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, canonicalInput, "-field", "rational")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "input:\n 2  1 -1 |   8\n-3 -1  2 | -11\n-2  1  2 |  -3\n")
	assert.Contains(t, out, "row echelon form:\n1 1/2 -1/2 |  4\n0   1    1 |  2\n0   0    1 | -1\n")
	assert.Contains(t, out, "reduced row echelon form:\n1 0 0 |  2\n0 1 0 |  3\n0 0 1 | -1\n")
	assert.True(t, strings.HasSuffix(out, "solution:\nx1 = 2\nx2 = 3\nx3 = -1\n"), out)
	assert.Empty(t, errOut)
}

func TestRun_FloatCheck(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, canonicalInput, "-pivot", "partial", "-check")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "solution:\n")
	assert.Contains(t, out, "residual: ")
}

func TestRun_PrimeField(t *testing.T) {
	t.Parallel()

	code, out, errOut := runCLI(t, "1 1 3\n1 -1 1\n", "-field", "mod7")
	require.Equal(t, exitOK, code, errOut)
	assert.True(t, strings.HasSuffix(out, "x1 = 2\nx2 = 1\n"), out)
}

func TestRun_VerboseLogsSwaps(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "0 1 3\n1 0 2\n", "-v")
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "gaussjordan: column 0: swapping rows 0 and 1")
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		args  []string
		code  int
		msg   string
	}{
		{"singular", "1 3 1 9\n1 1 -1 1\n3 11 5 35\n", nil, exitSolve, "no unique solution"},
		{"ragged", "1 2 3\n4 5\n", nil, exitSolve, "malformed matrix"},
		{"empty", "\n", nil, exitSolve, "malformed matrix"},
		{"bad field value", "1 x\n", nil, exitSolve, "line 1, column 2"},
		{"inconsistent", "1 1 3\n1 -1 1\n2 0 5\n", []string{"-consistent"}, exitSolve, "inconsistent"},
		{"unknown field", "1 2\n", []string{"-field", "quaternion"}, exitSolve, "want float"},
		{"composite modulus", "1 2\n", []string{"-field", "mod8"}, exitSolve, "prime"},
		{"unknown pivot", "", []string{"-pivot", "full"}, exitUsage, "unknown pivot strategy"},
		{"negative tol", "", []string{"-tol", "-1"}, exitUsage, "-tol"},
		{"check needs float", "", []string{"-field", "rational", "-check"}, exitUsage, "-check"},
		{"extra args", "", []string{"input.txt"}, exitUsage, "unexpected arguments"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			code, _, errOut := runCLI(t, tc.input, tc.args...)
			require.Equal(t, tc.code, code, errOut)
			assert.Contains(t, errOut, tc.msg)
		})
	}
}
