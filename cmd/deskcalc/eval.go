package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/logger"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		inname  string
		verb    string
		modulus bool
	)
	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions",
		Long: `Evaluate each argument as an expression. With no arguments, or with
--in, read one expression per line. Tokens must be separated by spaces,
as in "1 + 2 * 3".`,
		Example: `  deskcalc eval "10 - 2 * 3"
  deskcalc eval --modulus "10 % 4"
  echo "2 ^ 0.5" | deskcalc eval --prec 256 --fmt %.30g`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs := args
			in, err := infile(cmd, inname, len(args) == 0)
			if err != nil {
				return err
			}
			if in != nil {
				lines, err := readLines(in)
				in.Close()
				if err != nil {
					return err
				}
				exprs = append(exprs, lines...)
			}
			e := evaluator{
				out:  cmd.OutOrStdout(),
				errs: cmd.ErrOrStderr(),
				verb: verb,
				opts: []deskcalc.EvalOption{deskcalc.Modulus(modulus), deskcalc.Prec(a.cfg.Prec)},
				log:  logger.Global().WithPrefix("eval"),
			}
			return e.run(exprs)
		},
	}
	f := cmd.Flags()
	f.StringVar(&inname, "in", "", `input file, "-" for stdin (default stdin if no args given)`)
	f.StringVar(&verb, "fmt", "", "result formatting verb, e.g. %g (default calculator format)")
	f.BoolVar(&modulus, "modulus", false, "treat % as the remainder operator instead of percent")
	return cmd
}

// evaluator evaluates expressions and writes one result line per expression.
type evaluator struct {
	out  io.Writer
	errs io.Writer
	verb string
	opts []deskcalc.EvalOption
	log  *logger.Logger
}

// run evaluates each expression in order. An expression that fails prints
// its error and does not stop the rest.
func (e *evaluator) run(exprs []string) error {
	red := color.New(color.FgRed)
	failed := 0
	for _, src := range exprs {
		r, err := deskcalc.Evaluate(src, e.opts...)
		if err != nil {
			failed++
			e.log.Warn("%q: %v", src, err)
			red.Fprintf(e.errs, "%s\n%s\n", src, caret(err))
			continue
		}
		e.log.Debug("%q = %v", src, r)
		if e.verb == "" {
			fmt.Fprintln(e.out, deskcalc.FormatResult(r))
		} else {
			fmt.Fprintf(e.out, e.verb+"\n", r)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

// caret renders an error message with a marker under the column it names.
func caret(err error) string {
	var ie deskcalc.InputError
	if !errors.As(err, &ie) || ie.Pos() < 1 {
		return err.Error()
	}
	return strings.Repeat(" ", ie.Pos()-1) + "^ " + err.Error()
}

// infile opens the expression input: the named file, stdin for "-", or stdin
// when std is set and no file is named. It returns nil when there is none.
func infile(cmd *cobra.Command, inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return nil, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if l := strings.TrimRight(sc.Text(), "\r"); strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if err := sc.Err(); err != nil {
		return lines, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
