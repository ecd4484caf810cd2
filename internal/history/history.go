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

// Package history provides the optional move-ordering heuristics spec
// §3 allows: per-ply killer slots and a (piece, to-square) history
// score bumped on beta cutoffs.
package history

import (
	. "github.com/yossior/double-chess-sub000/internal/types"
)

const maxPly = 128

// Table holds killer moves and the history heuristic for one search.
type Table struct {
	killers [maxPly][2]Move
	score   [2][7][64]int // [colorIdx][pieceType][toIndex64]
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

func colorIdx(c Color) int {
	if c == White {
		return 0
	}
	return 1
}

// Killers returns the two killer moves recorded for ply.
func (t *Table) Killers(ply int) (Move, Move) {
	if ply < 0 || ply >= maxPly {
		return NoMove, NoMove
	}
	return t.killers[ply][0], t.killers[ply][1]
}

// AddKiller records m as a killer at ply, keeping the two most recent
// distinct killers (most recent first).
func (t *Table) AddKiller(ply int, m Move) {
	if ply < 0 || ply >= maxPly || m == t.killers[ply][0] {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = m
}

// Bump increases the history score for a quiet move that caused a beta
// cutoff, scaled by depth so deeper cutoffs count more.
func (t *Table) Bump(c Color, pt PieceType, to Square, depth int) {
	idx := to.Index64()
	if idx < 0 {
		return
	}
	t.score[colorIdx(c)][pt][idx] += depth * depth
}

// Score returns the accumulated history score for (c, pt, to).
func (t *Table) Score(c Color, pt PieceType, to Square) int {
	idx := to.Index64()
	if idx < 0 {
		return 0
	}
	return t.score[colorIdx(c)][pt][idx]
}

// Clear resets killers and history, e.g. between unrelated requests.
func (t *Table) Clear() {
	*t = Table{}
}
