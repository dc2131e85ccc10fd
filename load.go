// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"fmt"
	"os"
)

// LoadRulesFile reads and parses rules from a file.
func LoadRulesFile(path string) (Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rules{}, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rules, err := ParseRules(f)
	if err != nil {
		return Rules{}, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	return rules, nil
}

// LoadRulesFiles reads rules files and merges them in the given order.
func LoadRulesFiles(paths ...string) (Rules, error) {
	sets := make([]Rules, 0, len(paths))
	for _, path := range paths {
		rules, err := LoadRulesFile(path)
		if err != nil {
			return Rules{}, err
		}

		sets = append(sets, rules)
	}

	return MergeRules(sets...), nil
}
