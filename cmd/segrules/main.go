// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

// Command segrules splits text into sentences with configurable rule sets.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/segrules/internal/logging"
)

type rootCmd struct {
	cobra.Command
	logLevel  string
	logFormat string
}

func newRootCmd() *rootCmd {
	root := &rootCmd{
		Command: cobra.Command{
			Use:           "segrules",
			Short:         "Rule based sentence segmentation",
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}

	root.PersistentPreRunE = root.setupLogging
	root.PersistentFlags().StringVar(&root.logLevel, "log-level", "info",
		"Set log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&root.logFormat, "log-format", "text",
		"Set log format: text or json")

	root.AddCommand(
		&newSplitCmd().Command,
		&newCheckCmd().Command,
		&newVersionCmd().Command,
	)

	return root
}

// setupLogging installs the default logger writing to the command error stream.
func (r *rootCmd) setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(r.logLevel)
	if err != nil {
		return err
	}

	format, err := logging.ParseFormat(r.logFormat)
	if err != nil {
		return err
	}

	logging.InitLogger(cmd.ErrOrStderr(), level, format)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("segrules failed", "error", err)
		os.Exit(1)
	}
}
