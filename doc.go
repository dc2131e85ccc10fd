// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

/*
Package segrules implements fast rule-based sentence segmentation.

Text is split at literal delimiters. Breaks are suppressed inside quoted spans,
no-break words and capture groups of no-break patterns. Segments are reported
as half-open byte ranges into the input text; the text itself is never
modified.

Basic flow:
  - assemble rules with `NewBuilder`, or parse a rules file (`ParseRules` / `LoadRulesFile`)
  - optionally start from a template (`JapaneseRules`) and combine sets (`MergeRules`)
  - compile a segmenter (`Builder.Build` / `Rules.Compile`)
  - iterate segments (`Segment`) or texts (`Sentences`, `Split`)

Delimiters:
  - inclusive delimiters stay at the end of the segment, exclusive ones are dropped
  - when several delimiters start at one offset the longest wins
  - empty segments are never produced

For named rules files under a directory, use `Provider`:
  - create provider with root directory and file suffix
  - request segmenters by name, e.g. "ja" for "<root>/ja.yaml"
  - provider caches compiled segmenters
  - optional symlink/junction escape hardening: `EnableSymlinkEscapeCheck` (disabled by default)

A compiled Segmenter is immutable and may be shared between goroutines.
*/
package segrules
