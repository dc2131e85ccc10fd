// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

// MergeRules merges rule sets preserving input order.
//
// Lists are concatenated, patterns with the same name are replaced by the
// later set and the last set with MaxQuoteDepth wins.
func MergeRules(ruleSets ...Rules) Rules {
	var out Rules
	for _, set := range ruleSets {
		out.InclusiveDelimiters = append(out.InclusiveDelimiters, set.InclusiveDelimiters...)
		out.ExclusiveDelimiters = append(out.ExclusiveDelimiters, set.ExclusiveDelimiters...)
		out.Quotes = append(out.Quotes, set.Quotes...)
		out.NoBreakWords = append(out.NoBreakWords, set.NoBreakWords...)

		for name, expr := range set.NoBreakPatterns {
			if out.NoBreakPatterns == nil {
				out.NoBreakPatterns = make(map[string]string, len(set.NoBreakPatterns))
			}

			out.NoBreakPatterns[name] = expr
		}

		if set.MaxQuoteDepth != nil {
			depth := *set.MaxQuoteDepth
			out.MaxQuoteDepth = &depth
		}
	}

	return out
}
