// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import "iter"

// openQuote is one unclosed opener on the nesting stack.
type openQuote struct {
	start int
	pair  int
}

// markQuotes resolves quote events into protected spans.
//
// Resolution rules:
//   - an opener is always pushed
//   - a closer on an empty stack is ignored
//   - a closer of another pair than the top opener is ignored, the stack is kept
//   - a matching closer pops the top opener and protects [opener start, closer end)
//     when the stack depth at that moment does not exceed maxDepth
//
// Marking cost is bounded by len(text) * maxDepth regardless of real nesting.
func markQuotes(events iter.Seq[quoteEvent], maxDepth int, protect *protectionMap) {
	var stack []openQuote
	for ev := range events {
		if ev.open {
			stack = append(stack, openQuote{start: ev.start, pair: ev.pair})
			continue
		}

		if len(stack) == 0 {
			continue
		}

		top := stack[len(stack)-1]
		if top.pair != ev.pair {
			continue
		}

		if len(stack) <= maxDepth {
			protect.markRange(top.start, ev.end)
		}

		stack = stack[:len(stack)-1]
	}
}
