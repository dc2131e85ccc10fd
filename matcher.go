// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import "iter"

// delimiterMatch is one candidate break found by delimiterMatcher.
type delimiterMatch struct {
	start int
	end   int
	// inclusive reports whether the delimiter stays in the segment.
	inclusive bool
}

// delimiterMatcher finds inclusive and exclusive delimiters with leftmost-longest priority.
type delimiterMatcher struct {
	ac *automaton
	// numInclusive is the count of leading inclusive patterns in ac input order.
	numInclusive int
}

// newDelimiterMatcher compiles inclusive delimiters followed by exclusive ones,
// so a string listed in both sets resolves to inclusive.
func newDelimiterMatcher(inclusive, exclusive []string) *delimiterMatcher {
	patterns := make([]string, 0, len(inclusive)+len(exclusive))
	patterns = append(patterns, inclusive...)
	patterns = append(patterns, exclusive...)

	return &delimiterMatcher{
		ac:           newAutomaton(patterns),
		numInclusive: len(inclusive),
	}
}

// matches yields delimiter occurrences in text order followed by the
// zero-width end-of-text match (len(text), len(text)).
func (m *delimiterMatcher) matches(text string) iter.Seq[delimiterMatch] {
	return func(yield func(delimiterMatch) bool) {
		more := true
		m.ac.leftmostLongest(text, func(am acMatch) bool {
			more = yield(delimiterMatch{
				start:     am.start,
				end:       am.end,
				inclusive: am.pattern < m.numInclusive,
			})
			return more
		})

		if !more {
			return
		}

		yield(delimiterMatch{start: len(text), end: len(text)})
	}
}

// quoteEvent is one quote marker occurrence.
type quoteEvent struct {
	start int
	end   int
	// pair is the quote pair index in rule order.
	pair int
	// open reports an opening marker.
	open bool
}

// quoteMatcher finds opening and closing quote markers of all pairs.
type quoteMatcher struct {
	ac *automaton
}

// newQuoteMatcher compiles quote pairs. Pattern 2*i is the opener of pair i
// and 2*i+1 its closer. Markers must already be validated as distinct.
func newQuoteMatcher(pairs []QuotePair) *quoteMatcher {
	if len(pairs) == 0 {
		return nil
	}

	patterns := make([]string, 0, 2*len(pairs))
	for _, pair := range pairs {
		patterns = append(patterns, string(pair.Open), string(pair.Close))
	}

	return &quoteMatcher{ac: newAutomaton(patterns)}
}

// events yields quote markers in text order.
func (m *quoteMatcher) events(text string) iter.Seq[quoteEvent] {
	return func(yield func(quoteEvent) bool) {
		if m == nil {
			return
		}

		m.ac.leftmostLongest(text, func(am acMatch) bool {
			return yield(quoteEvent{
				start: am.start,
				end:   am.end,
				pair:  am.pattern / 2,
				open:  am.pattern%2 == 0,
			})
		})
	}
}

// wordMatcher finds no-break words, overlapping occurrences included.
type wordMatcher struct {
	ac *automaton
}

// newWordMatcher compiles no-break words, nil when there are none.
func newWordMatcher(words []string) *wordMatcher {
	if len(words) == 0 {
		return nil
	}

	return &wordMatcher{ac: newAutomaton(words)}
}

// mark protects the span of every word occurrence.
func (m *wordMatcher) mark(text string, protect *protectionMap) {
	if m == nil {
		return
	}

	m.ac.overlapping(text, func(am acMatch) bool {
		protect.markRange(am.start, am.end)
		return true
	})
}
