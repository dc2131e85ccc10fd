// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

// DefaultMaxQuoteDepth is the default quote nesting depth up to which quoted spans are protected.
const DefaultMaxQuoteDepth = 3

// QuotePair is one opening and closing quote marker.
type QuotePair struct {
	// Open is the opening marker.
	Open rune `json:"open" yaml:"open"`
	// Close is the closing marker.
	Close rune `json:"close" yaml:"close"`
}

// String returns the pair in rules file form, e.g. "「」".
func (q QuotePair) String() string {
	return string(q.Open) + string(q.Close)
}

// Segment is a half-open byte range [Start, End) into the segmented text.
type Segment struct {
	// Start is the first byte offset of the segment.
	Start int `json:"start" yaml:"start"`
	// End is the byte offset just past the segment.
	End int `json:"end" yaml:"end"`
}

// Len returns the segment length in bytes.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Slice returns the segment view of text. Text must be the segmented input.
func (s Segment) Slice(text string) string {
	return text[s.Start:s.End]
}

// Rules is a serializable rule set, the form used by rules files.
type Rules struct {
	// InclusiveDelimiters break text and stay at the end of the segment.
	InclusiveDelimiters []string `json:"inclusive_delimiters,omitempty" yaml:"inclusive_delimiters,omitempty"`
	// ExclusiveDelimiters break text and are dropped from segments.
	ExclusiveDelimiters []string `json:"exclusive_delimiters,omitempty" yaml:"exclusive_delimiters,omitempty"`
	// Quotes are two-rune strings of opening and closing markers, e.g. "「」".
	Quotes []string `json:"quotes,omitempty" yaml:"quotes,omitempty"`
	// NoBreakWords protect every byte of each occurrence.
	NoBreakWords []string `json:"no_break_words,omitempty" yaml:"no_break_words,omitempty"`
	// NoBreakPatterns are named regular expressions; capture groups are protected.
	// Patterns are compiled in name order.
	NoBreakPatterns map[string]string `json:"no_break_patterns,omitempty" yaml:"no_break_patterns,omitempty"`
	// MaxQuoteDepth overrides DefaultMaxQuoteDepth when set.
	MaxQuoteDepth *int `json:"max_quote_depth,omitempty" yaml:"max_quote_depth,omitempty"`
}
