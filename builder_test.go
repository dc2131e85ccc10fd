// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"errors"
	"regexp"
	"slices"
	"testing"
)

func TestBuilderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *Builder
		want    error
	}{
		{
			name:    "no delimiters",
			builder: NewBuilder().Quotes(QuotePair{Open: '「', Close: '」'}),
			want:    ErrEmptyDelimiters,
		},
		{
			name: "marker shared by two pairs",
			builder: NewBuilder().InclusiveDelimiters("。").
				Quotes(QuotePair{Open: '「', Close: '」'}, QuotePair{Open: '「', Close: '）'}),
			want: ErrDuplicateQuote,
		},
		{
			name:    "closer reused as opener",
			builder: NewBuilder().InclusiveDelimiters("。").Quotes(QuotePair{Open: '"', Close: '"'}),
			want:    ErrDuplicateQuote,
		},
		{
			name:    "zero depth",
			builder: NewBuilder().InclusiveDelimiters("。").MaxQuoteDepth(0),
			want:    ErrInvalidQuoteDepth,
		},
		{
			name:    "negative depth",
			builder: NewBuilder().ExclusiveDelimiters("\n").MaxQuoteDepth(-2),
			want:    ErrInvalidQuoteDepth,
		},
		{
			name:    "empty inclusive delimiter",
			builder: NewBuilder().InclusiveDelimiters("。", ""),
			want:    ErrInvalidRule,
		},
		{
			name:    "empty exclusive delimiter",
			builder: NewBuilder().ExclusiveDelimiters(""),
			want:    ErrInvalidRule,
		},
		{
			name:    "empty word",
			builder: NewBuilder().InclusiveDelimiters("。").NoBreakWords(""),
			want:    ErrInvalidRule,
		},
		{
			name:    "nil regexp",
			builder: NewBuilder().InclusiveDelimiters("。").NoBreakRegexp(nil),
			want:    ErrInvalidRule,
		},
		{
			name:    "invalid marker rune",
			builder: NewBuilder().InclusiveDelimiters("。").Quotes(QuotePair{Open: -1, Close: '」'}),
			want:    ErrInvalidRule,
		},
		{
			name:    "bad pattern",
			builder: NewBuilder().InclusiveDelimiters("。").NoBreakPattern(`(`),
			want:    ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := tt.builder.Build()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Build err=%v, want %v", err, tt.want)
			}

			if s != nil {
				t.Fatalf("Build returned segmenter with error")
			}
		})
	}
}

func TestBuilderFirstSetterErrorWins(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder().
		NoBreakPattern(`(`).
		MaxQuoteDepth(0).
		Build()
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("Build err=%v, want %v", err, ErrInvalidPattern)
	}
}

func TestBuilderReuse(t *testing.T) {
	t.Parallel()

	b := NewBuilder().InclusiveDelimiters("。")
	first := mustBuild(t, b)

	b.NoBreakRegexp(regexp.MustCompile(`(。)x`))
	second := mustBuild(t, b)

	text := "a。xb"
	if got, want := first.Split(text), []string{"a。", "xb"}; !slices.Equal(got, want) {
		t.Fatalf("first Split=%q, want %q", got, want)
	}

	if got, want := second.Split(text), []string{"a。xb"}; !slices.Equal(got, want) {
		t.Fatalf("second Split=%q, want %q", got, want)
	}
}

func TestParseQuotePairs(t *testing.T) {
	t.Parallel()

	pairs, err := ParseQuotePairs([]string{"「」", " () "})
	if err != nil {
		t.Fatalf("ParseQuotePairs: %v", err)
	}

	want := []QuotePair{{Open: '「', Close: '」'}, {Open: '(', Close: ')'}}
	if !slices.Equal(pairs, want) {
		t.Fatalf("pairs=%v, want %v", pairs, want)
	}

	if pairs[0].String() != "「」" {
		t.Fatalf("String()=%q, want %q", pairs[0].String(), "「」")
	}

	for _, bad := range []string{"", "「", "「」」", "\xff)"} {
		if _, err := ParseQuotePair(bad); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseQuotePair(%q) err=%v, want %v", bad, err, ErrInvalidRule)
		}
	}
}
