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

package turn

import (
	"sort"

	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// Score ranks a turn for move ordering at a search node (spec §4.7's
// "Turn ordering" table), evaluated against pos before the turn is
// applied.
func Score(pos *position.Position, t Turn) int {
	score := 0
	for i := 0; i < t.Len; i++ {
		score += scoreMove(pos, t.Moves[i])
	}
	if t.Len == 1 && t.Moves[0].Flag != Castle {
		score += 500
	}
	return score
}

func scoreMove(pos *position.Position, m Move) int {
	score := 0
	mover := pos.At(m.From)

	if m.IsCapture() {
		score += 1000 + 10*m.Captured.Type().Value()
		if m.Captured.Type() == Bishop && hasBishopPair(pos, m.Captured.Color()) {
			score += 1500
		}
	}
	if m.IsPromotion() {
		score += 800 + m.Promotion.Value()
	}
	if m.Flag == Castle {
		score += 8000
		return score
	}
	if mover.Type() == King {
		c := mover.Color()
		if pos.Castling().Has(KingSide(c)) || pos.Castling().Has(QueenSide(c)) {
			score -= 10000
		} else {
			score -= 3000
		}
	}
	if mover.Type() == Rook {
		score += rookVacatesCastlingHomeMalus(pos, mover.Color(), m.From)
	}
	return score
}

func rookVacatesCastlingHomeMalus(pos *position.Position, c Color, from Square) int {
	switch from {
	case SqH1:
		if c == White && pos.Castling().Has(WhiteOO) {
			return -1000
		}
	case SqA1:
		if c == White && pos.Castling().Has(WhiteOOO) {
			return -500
		}
	case SqH8:
		if c == Black && pos.Castling().Has(BlackOO) {
			return -1000
		}
	case SqA8:
		if c == Black && pos.Castling().Has(BlackOOO) {
			return -500
		}
	}
	return 0
}

func hasBishopPair(pos *position.Position, c Color) bool {
	count := 0
	for sq := 0; sq < BoardSize; sq++ {
		s := Square(sq)
		if s.IsOffBoard() {
			continue
		}
		pc := pos.At(s)
		if pc.IsColor(c) && pc.Type() == Bishop {
			count++
		}
	}
	return count >= 2
}

// Order scores and sorts turns in place, highest score first. Scores
// are computed once per turn rather than per comparison.
func Order(pos *position.Position, turns []Turn) {
	scores := make([]int, len(turns))
	for i, t := range turns {
		scores[i] = Score(pos, t)
	}
	sort.Sort(&byScore{turns: turns, scores: scores})
}

type byScore struct {
	turns  []Turn
	scores []int
}

func (b *byScore) Len() int           { return len(b.turns) }
func (b *byScore) Less(i, j int) bool { return b.scores[i] > b.scores[j] }
func (b *byScore) Swap(i, j int) {
	b.turns[i], b.turns[j] = b.turns[j], b.turns[i]
	b.scores[i], b.scores[j] = b.scores[j], b.scores[i]
}
