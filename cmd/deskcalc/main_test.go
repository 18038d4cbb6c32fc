package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/deskcalc/internal/logger"
)

// run executes the command line args with stdin in, using a config path
// that does not exist so the user's settings never apply.
func run(t *testing.T, in string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errs bytes.Buffer
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err = execute(cmd)
	return out.String(), errs.String(), err
}

func TestEvalArgs(t *testing.T) {
	out, _, err := run(t, "", "eval", "10 - 2 * 3", "2 ^ 3 ^ 2", "7 % 2")
	require.NoError(t, err)
	assert.Equal(t, "4.0\n64.0\n0.07\n", out)
}

func TestEvalModulus(t *testing.T) {
	out, _, err := run(t, "", "eval", "--modulus", "10 % 4")
	require.NoError(t, err)
	assert.Equal(t, "2.0\n", out)
}

func TestEvalStdin(t *testing.T) {
	out, _, err := run(t, "1 + 1\n\n  \n1.0E10 * 10\r\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "2.0\n1.0E11\n", out)
}

func TestEvalFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(p, []byte("3 * 3\n"), 0o644))
	out, _, err := run(t, "", "eval", "--in", p, "1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "3.0\n9.0\n", out)
}

func TestEvalFormat(t *testing.T) {
	out, _, err := run(t, "", "eval", "--fmt", "%.3f", "1 / 4")
	require.NoError(t, err)
	assert.Equal(t, "0.250\n", out)
}

func TestEvalPrec(t *testing.T) {
	out, _, err := run(t, "", "eval", "--prec", "128", "16 ^ 0.5")
	require.NoError(t, err)
	assert.Equal(t, "4.0\n", out)

	_, _, err = run(t, "", "eval", "--prec", "100000", "1")
	assert.Error(t, err)
}

func TestEvalErrors(t *testing.T) {
	out, errs, err := run(t, "", "eval", "5 / 0", "1 + 1", "3 + x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Equal(t, "2.0\n", out, "good expressions still print")
	assert.Contains(t, errs, "  ^ division of 5 by zero")
	assert.Contains(t, errs, "    ^ ")
}

func TestPress(t *testing.T) {
	out, _, err := run(t, "", "press", "8", "+", "%", "3", "=")
	require.NoError(t, err)
	assert.Equal(t, "2.0\n", out)

	out, _, err = run(t, "", "press", "1 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, "12 * 3\n", out)
}

func TestPressTrace(t *testing.T) {
	out, _, err := run(t, "", "press", "--trace", "9 √ + 1 =")
	require.NoError(t, err)
	assert.Equal(t, "9\t9\n√\t3.0\n+\t3.0 + \n1\t3.0 + 1\n=\t4.0\n", out)
}

func TestPressError(t *testing.T) {
	out, errs, err := run(t, "", "press", "5 / 0 =")
	require.NoError(t, err)
	assert.Equal(t, "Error\n", out)
	assert.Contains(t, errs, "by zero")

	_, _, err = run(t, "", "press", "5 x")
	assert.ErrorContains(t, err, `unknown button "x"`)
}

func TestConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("prec: 128\nlog_level: none\n"), 0o644))
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", p, "press", "2 √"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1.4142135623730951\n", out.String())

	require.NoError(t, os.WriteFile(p, []byte("prec: [1]\n"), 0o644))
	cmd = newRootCmd()
	cmd.SetArgs([]string{"--config", p, "press", "1"})
	assert.Error(t, cmd.Execute())
}

func TestCaret(t *testing.T) {
	assert.Equal(t, assert.AnError.Error(), caret(assert.AnError))
}

func TestLogClosedOnFailure(t *testing.T) {
	p := filepath.Join(t.TempDir(), "deskcalc.log")
	_, _, err := run(t, "", "--log-level", "debug", "--log-file", p, "eval", "5 / 0")
	require.Error(t, err)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[WARN] [eval] \"5 / 0\"")
	assert.Equal(t, logger.LevelNone, logger.Global().Level(), "log left open after a failed command")
}
