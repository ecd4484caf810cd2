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

// Package moveslice provides small, allocation-disciplined containers
// for chess moves, reused across recursion frames instead of being
// reallocated per node -- the allocation discipline spec §5 calls for.
package moveslice

import (
	"sort"

	"github.com/yossior/double-chess-sub000/internal/types"
)

// MoveSlice is a reusable, growable list of moves.
type MoveSlice []types.Move

// NewMoveSlice creates an empty slice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	s := make([]types.Move, 0, cap)
	return (*MoveSlice)(&s)
}

// Clear empties the slice while keeping its backing array.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move.
func (ms *MoveSlice) PushBack(m types.Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) types.Move {
	return (*ms)[i]
}

// ForEach calls f for every index currently stored.
func (ms *MoveSlice) ForEach(f func(i int)) {
	for i := range *ms {
		f(i)
	}
}

// Scored pairs a move with an ordering score, used by both the move
// generator (§4.3) and the turn generator (§4.7) to sort candidates
// before search visits them.
type Scored struct {
	Move  types.Move
	Score int
}

// ScoredList is a reusable, descending-sortable list of scored moves.
type ScoredList []Scored

// NewScoredList creates an empty list with the given capacity.
func NewScoredList(cap int) *ScoredList {
	s := make([]Scored, 0, cap)
	return (*ScoredList)(&s)
}

// Clear empties the list while keeping its backing array.
func (sl *ScoredList) Clear() {
	*sl = (*sl)[:0]
}

// PushBack appends a scored move.
func (sl *ScoredList) PushBack(m types.Move, score int) {
	*sl = append(*sl, Scored{Move: m, Score: score})
}

// Len returns the number of entries.
func (sl *ScoredList) Len() int {
	return len(*sl)
}

// At returns the move at index i, discarding the ordering score.
func (sl *ScoredList) At(i int) types.Move {
	return (*sl)[i].Move
}

// SortDescending orders the list by score, highest first. Stable so
// that moves with equal scores keep their generation order.
func (sl *ScoredList) SortDescending() {
	sort.SliceStable(*sl, func(i, j int) bool {
		return (*sl)[i].Score > (*sl)[j].Score
	})
}
