package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/funhtml-go/funhtml/internal/config"
	"github.com/funhtml-go/funhtml/internal/errors"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬ ┬┌┐┌┬ ┬┌┬┐┌┬┐┬
  ├┤ │ ││││├─┤ │ ││││
  └  └─┘┘└┘┴ ┴ ┴ ┴ ┴┴─┘
`

// app carries state shared by all commands.
type app struct {
	configPath string
	logLevel   string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	setMaxProcs(slog.Default())

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := a.rootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err, useColor(os.Stderr))
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "funhtml",
		Short: "Build HTML pages from Go node trees and Markdown",
		Long: `funhtml renders Markdown into complete, escaped HTML documents.

  • render a single file to HTML
  • preview a directory of pages with live reload
  • publish rendered pages to S3-compatible storage`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Configuration file (default: funhtml.json or funhtml.yaml in the current directory)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		a.renderCmd(),
		a.serveCmd(),
		a.publishCmd(),
		a.configCmd(),
		a.versionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		if _, err := config.ParseLevel(a.logLevel); err != nil {
			return errors.New("F500").WithDetail(err.Error())
		}
		a.cfg.LogLevel = a.logLevel
	}

	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: a.cfg.Level()}))
	slog.SetDefault(a.logger)
	return nil
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
func setMaxProcs(logger *slog.Logger) {
	logf := maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	})
	if _, err := maxprocs.Set(logf); err != nil {
		logger.Debug("GOMAXPROCS unchanged", "error", err)
	}
}

// useColor reports whether f is a terminal that accepts ANSI colors.
func useColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// success prints a success message.
func (a *app) success(format string, args ...any) {
	fmt.Fprintf(a.stdout, "✓ %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func (a *app) info(format string, args ...any) {
	fmt.Fprintf(a.stdout, "  %s\n", fmt.Sprintf(format, args...))
}
