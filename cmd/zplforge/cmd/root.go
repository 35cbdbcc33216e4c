// Package cmd implements the zplforge CLI's cobra command tree: a root
// command wiring slog through PersistentPreRun, with leaf subcommands
// for each operation.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRoot builds the zplforge root command: render, fonts, version.
func NewRoot(ctx context.Context, gitSHA string) *cobra.Command {
	root := &cobra.Command{
		Use:   "zplforge",
		Short: "render ZPL labels to PNG or PDF",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")

			var level slog.Level
			if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
				level = slog.LevelInfo
			}

			if logFile != "" {
				slog.SetDefault(slog.New(slog.NewTextHandler(&lumberjack.Logger{
					Filename:   logFile,
					MaxSize:    50, // MB
					MaxBackups: 5,
					MaxAge:     28, // days
				}, &slog.HandlerOptions{Level: level})))
				return
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.AddCommand(
		NewVersionCmd(gitSHA),
		NewRenderCmd(ctx),
		NewFontsCmd(ctx),
	)
	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "rotate logs to this file instead of stderr")
	return root
}

// NewVersionCmd reports the build's git SHA.
func NewVersionCmd(gitSHA string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the build's git sha",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitSHA)
		},
	}
}
