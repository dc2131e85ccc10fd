// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"maps"
	"slices"
)

// Builder returns a builder preloaded with r.
//
// Quote and pattern errors are reported by Build.
func (r Rules) Builder() *Builder {
	b := NewBuilder().
		InclusiveDelimiters(r.InclusiveDelimiters...).
		ExclusiveDelimiters(r.ExclusiveDelimiters...).
		NoBreakWords(r.NoBreakWords...)

	pairs, err := ParseQuotePairs(r.Quotes)
	if err != nil {
		b.setErr(err)
	} else {
		b.Quotes(pairs...)
	}

	for _, name := range slices.Sorted(maps.Keys(r.NoBreakPatterns)) {
		b.noBreakNamedPattern(name, r.NoBreakPatterns[name])
	}

	if r.MaxQuoteDepth != nil {
		b.MaxQuoteDepth(*r.MaxQuoteDepth)
	}

	return b
}

// Compile validates r and compiles a Segmenter.
func (r Rules) Compile() (*Segmenter, error) {
	return r.Builder().Build()
}
