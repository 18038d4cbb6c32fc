package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc/internal/config"
	"github.com/zephyrtronium/deskcalc/internal/logger"
	"github.com/zephyrtronium/deskcalc/internal/tui"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs cmd and closes the log whether or not the command succeeded.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if cerr := logger.Global().Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing log: %w", cerr)
	}
	return err
}

// app holds the settings shared by every subcommand.
type app struct {
	cfgPath  string
	prec     uint
	logLevel string
	logFile  string
	cfg      *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "deskcalc",
		Short: "A four-function calculator with %, √, and ^",
		Long: `deskcalc is a keypad calculator. Without a subcommand it runs an
interactive keypad in the terminal. Expressions are space-delimited numbers
and operators, evaluated with ^ and % binding tightest, then * and /, then
+ and -, all left-associative.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Options{
				Prec:  a.cfg.Prec,
				Theme: a.cfg.Theme,
				Mouse: a.cfg.Mouse,
			})
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", config.DefaultPath(), "configuration file")
	pf.UintVar(&a.prec, "prec", 0, "precision in bits for ^ and √ (0 uses float64)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, none")
	pf.StringVar(&a.logFile, "log-file", "", "log file (default under the user cache directory)")

	root.AddCommand(newEvalCmd(a), newPressCmd(a))
	return root
}

// setup loads the configuration, applies flag overrides, and starts logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	pf := cmd.Flags()
	if pf.Changed("prec") {
		cfg.Prec = a.prec
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if pf.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level := logger.ParseLevel(cfg.LogLevel)
	if level != logger.LevelNone && cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile()
	}
	if err := logger.Init(level, cfg.LogFile); err != nil {
		return fmt.Errorf("starting log: %w", err)
	}
	logger.Global().Debug("%s: config %q, prec %d", cmd.CommandPath(), a.cfgPath, cfg.Prec)
	a.cfg = cfg
	return nil
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "deskcalc", "deskcalc.log")
}
