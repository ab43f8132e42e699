// Package main provides the timetree CLI for inspecting logged timer results.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/skybet/time-tree/internal/log"
)

var (
	logLevel string
	devLog   bool
)

var rootCmd = &cobra.Command{
	Use:           "timetree",
	Short:         "Inspect hierarchical timer results",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&devLog, "dev", false, "use the developer log handler")
	rootCmd.AddCommand(newRenderCmd())
}

func newLogger() (*slog.Logger, error) {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return log.New(os.Stderr, &log.Options{Level: lvl, Dev: devLog}), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
