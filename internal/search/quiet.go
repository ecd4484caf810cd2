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

package search

import (
	"github.com/yossior/double-chess-sub000/internal/position"
	"github.com/yossior/double-chess-sub000/internal/turn"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// quietScore is the root tiebreaker of spec §4.7's "Root" paragraph:
// it rewards development from the back rank, central pawn pushes and
// castling, and penalizes early captures, edge moves, king moves, and
// retreats to the back rank. pos is the position before t is applied;
// color is the side about to play t. quietScore plays the turn's moves
// on pos to attribute each move to the piece that made it, then undoes
// them, leaving pos unchanged.
func quietScore(pos *position.Position, t turn.Turn, color Color) int {
	score := 0
	homeRank := 0
	if color == Black {
		homeRank = 7
	}

	for i := 0; i < t.Len; i++ {
		m := t.Moves[i]
		mover := pos.At(m.From)

		switch mover.Type() {
		case Knight, Bishop:
			if m.From.Rank() == homeRank && m.To.Rank() != homeRank {
				score += 30
			}
			if isEdgeFile(m.To) {
				score -= 10
			}
		case Pawn:
			if isCentralFile(m.To) {
				score += 15
			}
		case King:
			if m.Flag == Castle {
				score += 50
			} else {
				score -= 25
			}
		}

		if m.IsCapture() {
			score -= 10
		}
		if m.To.Rank() == homeRank {
			if mover.Type() != Pawn && m.From.Rank() != homeRank {
				score -= 15 // retreat toward the back rank
			}
		}

		pos.DoMove(m)
	}
	for i := 0; i < t.Len; i++ {
		pos.UndoMove()
	}
	return score
}

func isEdgeFile(sq Square) bool {
	f := sq.File()
	return f == 0 || f == 7
}

func isCentralFile(sq Square) bool {
	f := sq.File()
	return f == 3 || f == 4
}
