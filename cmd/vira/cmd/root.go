// Package cmd implements the commands of the vira tool.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/xiam/vira/internal/config"
	"github.com/xiam/vira/internal/report"
)

// errCheckFailed is returned when diagnostics were printed, it makes the
// process exit with status 1 without an extra message.
var errCheckFailed = errors.New("check failed")

var (
	cfgFile string
	verbose bool

	cfg    = config.Default()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "vira",
	Short: "Vira language front end",
	Long: `vira scans and parses Vira source files and reports lexical and
syntax errors with their positions.

Without file arguments, check looks for bytes.yml in the current directory
or its parents and checks every .vira file of the project.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the command line
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errCheckFailed) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $VIRA_CONFIG or ~/.vira/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup() error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	level := parseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Debug("config loaded", "path", path, "log_level", cfg.LogLevel, "color", cfg.Output.Color)
	return nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// newPrinter creates a diagnostic printer honoring the config. Color is only
// used on a terminal.
func newPrinter(w io.Writer) *report.Printer {
	return report.New(w, report.Options{
		Color:   cfg.Output.Color && useColor(w),
		Context: cfg.Output.Context,
		Max:     cfg.Check.MaxDiagnostics,
	})
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
