// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"os"
	"path/filepath"
	"strings"
)

// cleanRuleSetName normalizes and validates a provider rule set name.
//
// Names are slash-separated paths relative to provider root without suffix,
// e.g. "ja" or "news/ja". Traversal and absolute names are rejected.
func cleanRuleSetName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || filepath.IsAbs(name) {
		return "", ErrInvalidRuleSetName
	}

	name = filepath.ToSlash(name)
	if strings.HasPrefix(name, "/") {
		return "", ErrInvalidRuleSetName
	}

	name = strings.TrimPrefix(name, "./")
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return "", ErrInvalidRuleSetName
		}
	}

	return name, nil
}

// cleanRulesSuffix validates provider rules file suffix.
func cleanRulesSuffix(raw string) (string, error) {
	suffix := strings.TrimSpace(raw)
	if suffix == "" {
		return defaultRulesFileSuffix, nil
	}

	if strings.ContainsAny(suffix, `/\`) || suffix == "." || suffix == ".." {
		return "", ErrInvalidRuleSetName
	}

	return suffix, nil
}

// resolvePathOrAbs resolves symlinks/junctions and falls back to absolute path for non-link paths.
func resolvePathOrAbs(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		return "", absErr
	}

	if os.IsNotExist(err) {
		return abs, nil
	}

	return "", err
}

// isPathWithinRoot reports whether target path is inside root path.
func isPathWithinRoot(root string, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}

	if rel == "." {
		return true
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return true
}
