// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

// acMatch is one literal pattern occurrence in a text.
type acMatch struct {
	// start is the first byte offset of the occurrence.
	start int
	// end is the byte offset just past the occurrence.
	end int
	// pattern is the pattern index in automaton input order.
	pattern int
}

// acNode is one trie state of the automaton.
type acNode struct {
	// next holds goto transitions by input byte.
	next map[byte]int32
	// fail is the longest proper suffix state present in the trie.
	fail int32
	// dict is the nearest state on the fail chain that ends a pattern, -1 when none.
	dict int32
	// pattern is the pattern ending at this state, -1 when none.
	pattern int32
	// depth is the length of the string spelled by this state.
	depth int32
}

// automaton is a byte-level Aho-Corasick automaton over literal patterns.
//
// It is immutable after construction and safe for concurrent searches.
type automaton struct {
	nodes []acNode
	// first marks bytes that start at least one pattern.
	first    [256]bool
	patterns int
}

// newAutomaton compiles patterns into a search automaton.
//
// Empty patterns are skipped. When the same pattern is listed more than once,
// the lowest index is reported.
func newAutomaton(patterns []string) *automaton {
	a := &automaton{
		nodes: []acNode{{pattern: -1, dict: -1}},
	}

	for idx, p := range patterns {
		if p == "" {
			continue
		}

		a.insert(p, idx)
		a.first[p[0]] = true
		a.patterns++
	}

	a.link()
	return a
}

// insert adds one pattern to the trie.
func (a *automaton) insert(p string, idx int) {
	var node int32
	for i := 0; i < len(p); i++ {
		c := p[i]
		child, ok := a.nodes[node].next[c]
		if !ok {
			child = int32(len(a.nodes))
			a.nodes = append(a.nodes, acNode{
				pattern: -1,
				dict:    -1,
				depth:   a.nodes[node].depth + 1,
			})

			if a.nodes[node].next == nil {
				a.nodes[node].next = make(map[byte]int32, 1)
			}

			a.nodes[node].next[c] = child
		}

		node = child
	}

	if a.nodes[node].pattern < 0 {
		a.nodes[node].pattern = int32(idx)
	}
}

// link computes failure and dictionary links breadth-first.
func (a *automaton) link() {
	queue := make([]int32, 0, len(a.nodes))
	for _, child := range a.nodes[0].next {
		a.nodes[child].fail = 0
		queue = append(queue, child)
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for c, v := range a.nodes[u].next {
			f := a.nodes[u].fail
			for f != 0 {
				if _, ok := a.nodes[f].next[c]; ok {
					break
				}

				f = a.nodes[f].fail
			}

			if w, ok := a.nodes[f].next[c]; ok && w != v {
				a.nodes[v].fail = w
			} else {
				a.nodes[v].fail = 0
			}

			fail := a.nodes[v].fail
			if a.nodes[fail].pattern >= 0 {
				a.nodes[v].dict = fail
			} else {
				a.nodes[v].dict = a.nodes[fail].dict
			}

			queue = append(queue, v)
		}
	}
}

// step advances state by one input byte following failure links.
func (a *automaton) step(state int32, c byte) int32 {
	for {
		if next, ok := a.nodes[state].next[c]; ok {
			return next
		}

		if state == 0 {
			return 0
		}

		state = a.nodes[state].fail
	}
}

// overlapping reports every occurrence of every pattern, ordered by end offset.
// Occurrences sharing an end offset are reported longest first.
func (a *automaton) overlapping(text string, yield func(acMatch) bool) {
	if a == nil || a.patterns == 0 {
		return
	}

	var state int32
	for i := 0; i < len(text); i++ {
		state = a.step(state, text[i])

		n := state
		if a.nodes[n].pattern < 0 {
			n = a.nodes[n].dict
		}

		for n > 0 {
			m := acMatch{
				start:   i + 1 - int(a.nodes[n].depth),
				end:     i + 1,
				pattern: int(a.nodes[n].pattern),
			}
			if !yield(m) {
				return
			}

			n = a.nodes[n].dict
		}
	}
}

// leftmostLongest reports non-overlapping occurrences. At the leftmost offset
// where any pattern starts, the longest pattern starting there wins and the
// search resumes at its end.
func (a *automaton) leftmostLongest(text string, yield func(acMatch) bool) {
	if a == nil || a.patterns == 0 {
		return
	}

	for pos := 0; pos < len(text); {
		m, ok := a.longestFrom(text, pos)
		if !ok {
			return
		}

		if !yield(m) {
			return
		}

		pos = m.end
	}
}

// longestFrom finds the leftmost-longest occurrence starting at or after pos.
func (a *automaton) longestFrom(text string, pos int) (acMatch, bool) {
	for ; pos < len(text); pos++ {
		if !a.first[text[pos]] {
			continue
		}

		var node int32
		best := acMatch{pattern: -1}
		for i := pos; i < len(text); i++ {
			next, ok := a.nodes[node].next[text[i]]
			if !ok {
				break
			}

			node = next
			if a.nodes[node].pattern >= 0 {
				best = acMatch{start: pos, end: i + 1, pattern: int(a.nodes[node].pattern)}
			}
		}

		if best.pattern >= 0 {
			return best, true
		}
	}

	return acMatch{}, false
}
