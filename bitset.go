// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

// protectionMap is a dense per-byte flag set over one text.
//
// Bit i set means a delimiter whose break point is i+1 must not end a segment.
type protectionMap struct {
	words []uint64
	size  int
}

// newProtectionMap allocates a cleared map for a text of n bytes.
func newProtectionMap(n int) *protectionMap {
	return &protectionMap{
		words: make([]uint64, (n+63)/64),
		size:  n,
	}
}

// markRange protects every offset in [start, end), clamped to the map size.
func (p *protectionMap) markRange(start, end int) {
	if start < 0 {
		start = 0
	}

	if end > p.size {
		end = p.size
	}

	if start >= end {
		return
	}

	first, last := start>>6, (end-1)>>6
	loMask := ^uint64(0) << (uint(start) & 63)
	hiMask := ^uint64(0) >> (63 - (uint(end-1) & 63))

	if first == last {
		p.words[first] |= loMask & hiMask
		return
	}

	p.words[first] |= loMask
	for i := first + 1; i < last; i++ {
		p.words[i] = ^uint64(0)
	}

	p.words[last] |= hiMask
}

// protected reports whether offset i is protected. Out of range offsets are not.
func (p *protectionMap) protected(i int) bool {
	if i < 0 || i >= p.size {
		return false
	}

	return p.words[i>>6]&(1<<(uint(i)&63)) != 0
}
