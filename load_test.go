// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadRulesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ja.yaml")
	err := os.WriteFile(path, []byte("inclusive_delimiters: [\"。\"]\nquotes: [\"「」\"]\n"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rules, err := LoadRulesFile(path)
	if err != nil {
		t.Fatalf("LoadRulesFile: %v", err)
	}

	if !slices.Equal(rules.InclusiveDelimiters, []string{"。"}) || !slices.Equal(rules.Quotes, []string{"「」"}) {
		t.Fatalf("unexpected rules: %+v", rules)
	}
}

func TestLoadRulesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p1 := filepath.Join(dir, "base.yaml")
	p2 := filepath.Join(dir, "extra.json")

	if err := os.WriteFile(p1, []byte("inclusive_delimiters: [\"。\"]\nmax_quote_depth: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", p1, err)
	}

	if err := os.WriteFile(p2, []byte(`{"exclusive_delimiters": ["\n"], "max_quote_depth": 5}`), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", p2, err)
	}

	rules, err := LoadRulesFiles(p1, p2)
	if err != nil {
		t.Fatalf("LoadRulesFiles: %v", err)
	}

	if !slices.Equal(rules.InclusiveDelimiters, []string{"。"}) || !slices.Equal(rules.ExclusiveDelimiters, []string{"\n"}) {
		t.Fatalf("unexpected delimiters: %+v", rules)
	}

	if rules.MaxQuoteDepth == nil || *rules.MaxQuoteDepth != 5 {
		t.Fatalf("max_quote_depth=%v, want 5", rules.MaxQuoteDepth)
	}
}

func TestLoadRulesFileMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadRulesFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("LoadRulesFile(missing) must fail")
	}
}
