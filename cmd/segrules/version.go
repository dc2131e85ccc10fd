// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

type versionCmd struct {
	cobra.Command
}

func newVersionCmd() *versionCmd {
	c := &versionCmd{
		Command: cobra.Command{
			Use:   "version",
			Short: "Print version",
			Args:  cobra.NoArgs,
		},
	}

	c.RunE = func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "segrules", buildVersion())
		return err
	}

	return c
}

// buildVersion returns the linked version, the module version or "dev".
func buildVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}
