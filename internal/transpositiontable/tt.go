//
// double-chess-sub000 - Double-Move (Marseillais) chess engine in GO
//
// MIT License
//
// Copyright (c) 2026 double-chess-sub000 contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable implements the Transposition Table (spec
// §4.6): a capacity-bounded map keyed by the 64-bit Zobrist hash, with
// depth-preferred replacement and half-eviction on overflow -- the
// "generic associative container with periodic half-eviction" spec §9
// calls a workable, idiomatic choice.
package transpositiontable

import (
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// Table is a fixed-capacity transposition table. Not safe for
// concurrent use -- the engine is single-threaded per request (spec §5).
type Table struct {
	entries  map[Key]Entry
	capacity int
}

// New creates a table sized to hold roughly capacity entries.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = 1
	}
	return &Table{
		entries:  make(map[Key]Entry, capacity),
		capacity: capacity,
	}
}

// NewSizedMB creates a table sized for sizeMB megabytes, estimating a
// fixed per-entry footprint the way FrankyGo's TT sizes itself from a
// megabyte budget.
func NewSizedMB(sizeMB int) *Table {
	const bytesPerEntry = 32
	capacity := sizeMB * 1024 * 1024 / bytesPerEntry
	return New(capacity)
}

// Probe returns the stored entry for key and whether one was found.
// The caller is responsible for checking depth/bound applicability
// against the current search window (spec §4.6's probe rule).
func (t *Table) Probe(key Key) (Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Store inserts or replaces the entry for key, honoring the
// depth-preferred replacement policy: a shallower-or-equal-depth
// existing entry is always overwritten; a strictly deeper one is kept.
func (t *Table) Store(key Key, score, depth int, bound Bound, move Move) {
	if existing, ok := t.entries[key]; ok && existing.Depth > depth {
		return
	}
	if len(t.entries) >= t.capacity {
		t.evictHalf()
	}
	t.entries[key] = Entry{Key: key, Score: score, Depth: depth, Bound: bound, Move: move}
}

// evictHalf drops roughly half the table's entries. Go's randomized
// map iteration order gives this an unbiased sample without tracking
// access recency.
func (t *Table) evictHalf() {
	target := len(t.entries) / 2
	dropped := 0
	for k := range t.entries {
		if dropped >= target {
			break
		}
		delete(t.entries, k)
		dropped++
	}
}

// Clear empties the table, e.g. between unrelated requests.
func (t *Table) Clear() {
	t.entries = make(map[Key]Entry, t.capacity)
}

// Len reports how many entries are currently stored.
func (t *Table) Len() int {
	return len(t.entries)
}
