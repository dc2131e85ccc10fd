// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"
)

// Builder assembles segmentation rules and compiles a Segmenter.
//
// Setters append and return the builder for chaining. Problems found by a
// setter are kept and reported by Build. A Builder is not safe for concurrent use.
type Builder struct {
	inclusive     []string
	exclusive     []string
	quotes        []QuotePair
	words         []string
	patterns      []*regexp.Regexp
	maxQuoteDepth int
	// err is the first setter error, reported by Build.
	err error
}

// NewBuilder creates an empty builder with DefaultMaxQuoteDepth.
func NewBuilder() *Builder {
	return &Builder{
		maxQuoteDepth: DefaultMaxQuoteDepth,
	}
}

// InclusiveDelimiters adds delimiters that break text and stay in the resulting segment.
//
// When several delimiters start at the same offset the longest one is used,
// so "。。。" wins over "。".
func (b *Builder) InclusiveDelimiters(delimiters ...string) *Builder {
	b.inclusive = append(b.inclusive, delimiters...)
	return b
}

// ExclusiveDelimiters adds delimiters that break text and are dropped from segments.
func (b *Builder) ExclusiveDelimiters(delimiters ...string) *Builder {
	b.exclusive = append(b.exclusive, delimiters...)
	return b
}

// Quotes adds quote pairs. Text between a pair is never broken.
// Every marker must be unique across all pairs.
func (b *Builder) Quotes(pairs ...QuotePair) *Builder {
	b.quotes = append(b.quotes, pairs...)
	return b
}

// NoBreakWords adds words whose occurrences are never broken.
func (b *Builder) NoBreakWords(words ...string) *Builder {
	b.words = append(b.words, words...)
	return b
}

// NoBreakRegexp adds compiled patterns. Capture group spans of every match are
// never broken; the rest of the match is ordinary text.
//
// Complex patterns slow segmentation down; prefer NoBreakWords where a literal works.
func (b *Builder) NoBreakRegexp(patterns ...*regexp.Regexp) *Builder {
	b.patterns = append(b.patterns, patterns...)
	return b
}

// NoBreakPattern compiles expr and adds it like NoBreakRegexp.
func (b *Builder) NoBreakPattern(expr string) *Builder {
	return b.noBreakNamedPattern("", expr)
}

// MaxQuoteDepth sets the deepest quote nesting level that is still protected.
//
// Smaller values bound segmentation cost on deeply nested or unbalanced quotes.
// Values below one are reported by Build.
func (b *Builder) MaxQuoteDepth(depth int) *Builder {
	b.maxQuoteDepth = depth
	return b
}

// Build validates rules and compiles an immutable Segmenter.
func (b *Builder) Build() (*Segmenter, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := b.validate(); err != nil {
		return nil, err
	}

	return &Segmenter{
		delimiters:    newDelimiterMatcher(b.inclusive, b.exclusive),
		quotes:        newQuoteMatcher(b.quotes),
		words:         newWordMatcher(b.words),
		patterns:      slices.Clone(b.patterns),
		maxQuoteDepth: b.maxQuoteDepth,
	}, nil
}

// noBreakNamedPattern compiles expr and records a compile failure under name.
func (b *Builder) noBreakNamedPattern(name string, expr string) *Builder {
	re, err := regexp.Compile(expr)
	if err != nil {
		if name == "" {
			b.setErr(fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, expr, err))
		} else {
			b.setErr(fmt.Errorf("%w: compile %s (%q): %v", ErrInvalidPattern, name, expr, err))
		}

		return b
	}

	b.patterns = append(b.patterns, re)
	return b
}

// setErr keeps the first setter error.
func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// validate checks the rule set contract.
func (b *Builder) validate() error {
	if len(b.inclusive) == 0 && len(b.exclusive) == 0 {
		return ErrEmptyDelimiters
	}

	for i, d := range b.inclusive {
		if d == "" {
			return fmt.Errorf("%w: empty inclusive delimiter at %d", ErrInvalidRule, i)
		}
	}

	for i, d := range b.exclusive {
		if d == "" {
			return fmt.Errorf("%w: empty exclusive delimiter at %d", ErrInvalidRule, i)
		}
	}

	for i, w := range b.words {
		if w == "" {
			return fmt.Errorf("%w: empty no-break word at %d", ErrInvalidRule, i)
		}
	}

	for i, re := range b.patterns {
		if re == nil {
			return fmt.Errorf("%w: nil no-break regexp at %d", ErrInvalidRule, i)
		}
	}

	if b.maxQuoteDepth < 1 {
		return fmt.Errorf("%w: %d, must be at least 1", ErrInvalidQuoteDepth, b.maxQuoteDepth)
	}

	return validateQuotes(b.quotes)
}

// validateQuotes ensures every marker is a valid rune used only once.
func validateQuotes(pairs []QuotePair) error {
	seen := make(map[rune]int, 2*len(pairs))
	for i, pair := range pairs {
		for _, r := range [2]rune{pair.Open, pair.Close} {
			if !utf8.ValidRune(r) {
				return fmt.Errorf("%w: quote pair %d has invalid marker %U", ErrInvalidRule, i, r)
			}

			if prev, ok := seen[r]; ok {
				return fmt.Errorf("%w: %q in quote pairs %d and %d", ErrDuplicateQuote, r, prev, i)
			}

			seen[r] = i
		}
	}

	return nil
}
