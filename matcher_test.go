// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"slices"
	"testing"
)

func TestDelimiterMatcherFlags(t *testing.T) {
	t.Parallel()

	m := newDelimiterMatcher([]string{"。"}, []string{"\n", "\r\n"})
	text := "あ。\r\nい\n"

	got := slices.Collect(m.matches(text))
	want := []delimiterMatch{
		{start: 3, end: 6, inclusive: true},
		{start: 6, end: 8},
		{start: 11, end: 12},
		{start: 12, end: 12},
	}

	if !slices.Equal(got, want) {
		t.Fatalf("matches=%v, want %v", got, want)
	}
}

func TestDelimiterMatcherInclusiveWinsOnDuplicate(t *testing.T) {
	t.Parallel()

	m := newDelimiterMatcher([]string{"|"}, []string{"|"})
	got := slices.Collect(m.matches("a|"))
	if len(got) != 2 || !got[0].inclusive {
		t.Fatalf("matches=%v, want inclusive delimiter then end", got)
	}
}

func TestDelimiterMatcherEmptyText(t *testing.T) {
	t.Parallel()

	m := newDelimiterMatcher([]string{"。"}, nil)
	got := slices.Collect(m.matches(""))
	if want := []delimiterMatch{{}}; !slices.Equal(got, want) {
		t.Fatalf("matches=%v, want %v", got, want)
	}
}

func TestQuoteMatcherEvents(t *testing.T) {
	t.Parallel()

	m := newQuoteMatcher([]QuotePair{{Open: '「', Close: '」'}, {Open: '(', Close: ')'}})
	got := slices.Collect(m.events("「a(b)」"))
	want := []quoteEvent{
		{start: 0, end: 3, pair: 0, open: true},
		{start: 4, end: 5, pair: 1, open: true},
		{start: 6, end: 7, pair: 1},
		{start: 7, end: 10, pair: 0},
	}

	if !slices.Equal(got, want) {
		t.Fatalf("events=%v, want %v", got, want)
	}

	if newQuoteMatcher(nil) != nil {
		t.Fatalf("quote matcher without pairs must be nil")
	}
}

func TestWordMatcherMarksOverlapping(t *testing.T) {
	t.Parallel()

	m := newWordMatcher([]string{"ab", "bcd"})
	p := newProtectionMap(5)
	m.mark("abcde", p)

	if got, want := protectedOffsets(p), []int{0, 1, 2, 3}; !slices.Equal(got, want) {
		t.Fatalf("protected=%v, want %v", got, want)
	}

	var none *wordMatcher
	none.mark("abcde", p)
}

func TestMarkCapturesOnlyGroups(t *testing.T) {
	t.Parallel()

	s, err := NewBuilder().
		InclusiveDelimiters(".").
		NoBreakPattern(`\d(\.)\d`).
		NoBreakPattern(`x`).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	p := newProtectionMap(9)
	markCaptures(s.patterns, "1.2 x 3.4", p)
	if got, want := protectedOffsets(p), []int{1, 7}; !slices.Equal(got, want) {
		t.Fatalf("protected=%v, want %v", got, want)
	}
}
