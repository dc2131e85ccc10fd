// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseRules decodes a rules document from reader.
//
// Format is YAML; JSON documents are accepted as well. Unknown keys are
// ignored and an empty document yields empty Rules:
//
//	inclusive_delimiters: ["。", "．"]
//	exclusive_delimiters: ["\n", "\r\n", "\r"]
//	quotes: ["「」", "（）"]
//	no_break_words: ["モーニング娘。"]
//	no_break_patterns:
//	  decimal_point: '\p{Nd}(．)\p{Nd}'
//	max_quote_depth: 3
//
// Decoding does not validate rules; see Rules.Compile.
func ParseRules(r io.Reader) (Rules, error) {
	var rules Rules
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		if errors.Is(err, io.EOF) {
			return Rules{}, nil
		}

		return Rules{}, fmt.Errorf("%w: decode rules: %v", ErrInvalidRule, err)
	}

	return rules, nil
}

// ParseRulesString decodes rules from string input.
func ParseRulesString(src string) (Rules, error) {
	return ParseRules(strings.NewReader(src))
}
