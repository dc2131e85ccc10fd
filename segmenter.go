// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"iter"
	"regexp"
)

// Segmenter splits text into sentence-like segments using compiled rules.
//
// A Segmenter is immutable and safe for concurrent use.
type Segmenter struct {
	// delimiters find candidate breaks.
	delimiters *delimiterMatcher
	// quotes, words and patterns suppress breaks; nil/empty when unused.
	quotes        *quoteMatcher
	words         *wordMatcher
	patterns      []*regexp.Regexp
	maxQuoteDepth int
}

// MaxQuoteDepth returns the deepest protected quote nesting level.
func (s *Segmenter) MaxQuoteDepth() int {
	return s.maxQuoteDepth
}

// Segment returns the segments of text as half-open byte ranges in text order.
//
// Each iteration starts from scratch: quoted spans, no-break words and
// no-break pattern captures are resolved first, then delimiters are scanned
// lazily, so stopping early skips the remaining delimiter work.
//
// Break policy for each delimiter:
//   - the break point is the delimiter end for inclusive and its start for exclusive delimiters
//   - a break whose preceding byte is protected is suppressed
//   - an empty segment is never emitted, the delimiter bytes are skipped instead
//   - text after the last delimiter forms the final segment
func (s *Segmenter) Segment(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		protect := s.protect(text)

		cursor := 0
		for m := range s.delimiters.matches(text) {
			if m.start == m.end && m.end == len(text) {
				if cursor < len(text) {
					yield(Segment{Start: cursor, End: len(text)})
				}

				return
			}

			brk := m.start
			if m.inclusive {
				brk = m.end
			}

			if brk > 0 && protect.protected(brk-1) {
				continue
			}

			if cursor == brk {
				cursor = m.end
				continue
			}

			if !yield(Segment{Start: cursor, End: brk}) {
				return
			}

			cursor = m.end
		}
	}
}

// Sentences returns segment texts in order. Values are views into text.
func (s *Segmenter) Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for seg := range s.Segment(text) {
			if !yield(seg.Slice(text)) {
				return
			}
		}
	}
}

// SegmentAll collects all segments of text.
func (s *Segmenter) SegmentAll(text string) []Segment {
	var out []Segment
	for seg := range s.Segment(text) {
		out = append(out, seg)
	}

	return out
}

// Split collects all segment texts of text.
func (s *Segmenter) Split(text string) []string {
	var out []string
	for sentence := range s.Sentences(text) {
		out = append(out, sentence)
	}

	return out
}

// protect builds the per-call protection map. Quote, word and pattern passes
// are independent and only add protected bytes.
func (s *Segmenter) protect(text string) *protectionMap {
	if s.quotes == nil && s.words == nil && len(s.patterns) == 0 {
		return newProtectionMap(0)
	}

	protect := newProtectionMap(len(text))
	if s.quotes != nil {
		markQuotes(s.quotes.events(text), s.maxQuoteDepth, protect)
	}

	s.words.mark(text, protect)
	markCaptures(s.patterns, text, protect)

	return protect
}
