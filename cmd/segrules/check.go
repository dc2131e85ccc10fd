// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/woozymasta/segrules"
)

var errCheckFailed = errors.New("rules check failed")

// checkOptions holds check command flags.
type checkOptions struct {
	rulesDir string
	template string
}

type checkCmd struct {
	cobra.Command
	checkOptions
}

func newCheckCmd() *checkCmd {
	c := &checkCmd{
		Command: cobra.Command{
			Use:   "check [files...]",
			Short: "Load and compile rules files",
			Long: `Load and compile rules files.

Every file is compiled on top of the base template. With --rules-dir every
named rule set below the directory is checked too.`,
		},
		checkOptions: checkOptions{
			template: templateNone,
		},
	}

	c.RunE = func(cmd *cobra.Command, files []string) error {
		return c.run(cmd.OutOrStdout(), files)
	}

	c.Flags().StringVar(&c.rulesDir, "rules-dir", "",
		"Check every named rule set of directory")
	c.Flags().StringVarP(&c.template, "template", "t", c.template,
		"Set base template: ja or none")

	return c
}

// run checks every file and rule set and reports one line per item.
func (o *checkOptions) run(out io.Writer, files []string) error {
	if len(files) == 0 && o.rulesDir == "" {
		return errors.New("nothing to check: pass files or --rules-dir")
	}

	base, err := templateRules(o.template)
	if err != nil {
		return err
	}

	failed := 0
	for _, name := range files {
		err := checkRulesFile(base, name)
		if !report(out, name, err) {
			failed++
		}
	}

	if o.rulesDir != "" {
		n, err := checkRulesDir(out, base, o.rulesDir)
		if err != nil {
			return err
		}

		failed += n
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d invalid", errCheckFailed, failed)
	}

	return nil
}

// checkRulesFile loads one rules file and compiles it after base.
func checkRulesFile(base segrules.Rules, name string) error {
	rules, err := segrules.LoadRulesFile(name)
	if err != nil {
		return err
	}

	_, err = segrules.MergeRules(base, rules).Compile()
	return err
}

// checkRulesDir compiles every rule set of dir and returns the failure count.
func checkRulesDir(out io.Writer, base segrules.Rules, dir string) (int, error) {
	provider, err := segrules.NewProvider(dir, segrules.ProviderOptions{
		BaseRules:                base,
		EnableSymlinkEscapeCheck: true,
	})
	if err != nil {
		return 0, err
	}

	names, err := provider.Names()
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, name := range names {
		_, err := provider.Segmenter(name)
		if !report(out, name, err) {
			failed++
		}
	}

	return failed, nil
}

// report prints one check result and reports whether it passed.
func report(out io.Writer, name string, err error) bool {
	if err != nil {
		slog.Error("invalid rules", "name", name, "error", err)
		_, _ = fmt.Fprintf(out, "FAIL %s: %v\n", name, err)
		return false
	}

	slog.Debug("rules ok", "name", name)
	_, _ = fmt.Fprintf(out, "ok   %s\n", name)
	return true
}
