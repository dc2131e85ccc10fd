// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseQuotePair parses a two-rune string such as "「」" into a quote pair.
//
// Surrounding whitespace is ignored.
func ParseQuotePair(src string) (QuotePair, error) {
	src = strings.TrimSpace(src)
	if !utf8.ValidString(src) || utf8.RuneCountInString(src) != 2 {
		return QuotePair{}, fmt.Errorf("%w: quote pair %q must be exactly two characters", ErrInvalidRule, src)
	}

	open, size := utf8.DecodeRuneInString(src)
	closing, _ := utf8.DecodeRuneInString(src[size:])

	return QuotePair{Open: open, Close: closing}, nil
}

// ParseQuotePairs parses quote pair strings preserving input order.
func ParseQuotePairs(src []string) ([]QuotePair, error) {
	pairs := make([]QuotePair, 0, len(src))
	for i, s := range src {
		pair, err := ParseQuotePair(s)
		if err != nil {
			return nil, fmt.Errorf("quote %d: %w", i, err)
		}

		pairs = append(pairs, pair)
	}

	return pairs, nil
}
