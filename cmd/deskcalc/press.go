package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/logger"
)

func newPressCmd(a *app) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "press label...",
		Short: "Press keypad buttons and print the display",
		Long: `Press keypad buttons in order, as if clicking them, and print the
final display. Labels are the keypad's: 0-9 . + - * / ^ % √ C =.
Arguments containing spaces are split into separate presses.`,
		Example: `  deskcalc press 8 + % 3 =
  deskcalc press --trace "1 2 * 3 ="`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var labels []string
			for _, arg := range args {
				labels = append(labels, strings.Fields(arg)...)
			}
			acc := deskcalc.Accumulator{}.WithPrec(a.cfg.Prec)
			var tr io.Writer
			if trace {
				tr = cmd.OutOrStdout()
			}
			acc, err := pressAll(acc, labels, tr, logger.Global().WithPrefix("press"))
			if err != nil {
				return err
			}
			if !trace {
				fmt.Fprintln(cmd.OutOrStdout(), acc.Display())
			}
			if err := acc.Err(); err != nil {
				color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every press")
	return cmd
}

// pressAll applies each label to acc. When trace is non-nil, it receives
// the label and the display after each press.
func pressAll(acc deskcalc.Accumulator, labels []string, trace io.Writer, log *logger.Logger) (deskcalc.Accumulator, error) {
	for _, l := range labels {
		next, err := acc.Press(l)
		if err != nil {
			return acc, err
		}
		log.Debug("%s: %q -> %q", l, acc.Display(), next.Display())
		acc = next
		if trace != nil {
			fmt.Fprintf(trace, "%s\t%s\n", l, acc.Display())
		}
	}
	return acc, nil
}
