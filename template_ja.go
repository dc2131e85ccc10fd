// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

// jaNumber matches one Arabic, full-width or kanji numeral.
const jaNumber = `[0-9０-９〇零一二三四五六七八九十百千万億兆]`

// JapaneseDecimalPointPattern protects the period of a decimal number such as "３．１４" or "三．一四".
const JapaneseDecimalPointPattern = jaNumber + `([．.])` + jaNumber

// JapaneseRules returns basic rules for Japanese text.
//
// Inclusive delimiters are sentence-final punctuation, exclusive delimiters are
// line breaks, common brackets act as quotes and decimal points never break.
// The returned value is a fresh copy and may be modified.
func JapaneseRules() Rules {
	return Rules{
		InclusiveDelimiters: []string{"。", "．", "？", "！", "?", "!"},
		ExclusiveDelimiters: []string{"\n", "\r\n", "\r"},
		Quotes: []string{
			"()",
			"[]",
			"（）",
			"「」",
			"【】",
			"『』",
			"［］",
			"〔〕",
		},
		NoBreakPatterns: map[string]string{
			"decimal_point": JapaneseDecimalPointPattern,
		},
	}
}

// NewJapanese compiles JapaneseRules.
func NewJapanese() (*Segmenter, error) {
	return JapaneseRules().Compile()
}
