// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import "regexp"

// markCaptures protects capture group spans of every non-overlapping match.
//
// Only groups 1..n are marked, never the whole match, so a pattern like
// `\p{Nd}(．)\p{Nd}` protects the period while its digits stay ordinary text.
// A pattern without groups marks nothing.
func markCaptures(patterns []*regexp.Regexp, text string, protect *protectionMap) {
	for _, re := range patterns {
		if re.NumSubexp() == 0 {
			continue
		}

		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			for g := 2; g+1 < len(loc); g += 2 {
				// Unset groups are reported as -1.
				if loc[g] < 0 {
					continue
				}

				protect.markRange(loc[g], loc[g+1])
			}
		}
	}
}
