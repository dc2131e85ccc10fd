// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import "errors"

// Sentinel errors for segrules operations.
var (
	// ErrEmptyDelimiters indicates that neither inclusive nor exclusive delimiters were given.
	ErrEmptyDelimiters = errors.New("inclusive and exclusive delimiters are both empty")
	// ErrDuplicateQuote indicates a quote marker reused across quote pairs.
	ErrDuplicateQuote = errors.New("duplicate quote marker")
	// ErrInvalidQuoteDepth indicates a max quote nesting depth below one.
	ErrInvalidQuoteDepth = errors.New("invalid max quote depth")
	// ErrInvalidRule indicates malformed rule input (empty delimiter, bad quote pair, nil regexp).
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidPattern indicates a no-break pattern that failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidRuleSetName indicates invalid provider rule set name.
	ErrInvalidRuleSetName = errors.New("invalid rule set name")
	// ErrRuleSetNotFound indicates that provider has no rules file for a name.
	ErrRuleSetNotFound = errors.New("rule set not found")
	// ErrNilProvider indicates a nil Provider receiver.
	ErrNilProvider = errors.New("provider is nil")
	// ErrRulesPathOutsideRoot indicates resolved rules file path escaped provider root.
	ErrRulesPathOutsideRoot = errors.New("rules file path is outside provider root")
)
