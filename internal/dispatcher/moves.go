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

package dispatcher

import (
	"github.com/yossior/double-chess-sub000/internal/movegen"
	"github.com/yossior/double-chess-sub000/internal/position"
	"github.com/yossior/double-chess-sub000/internal/turn"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// MoveOut is one move of a best_turn response (spec §6's output shape).
type MoveOut struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	San       string `json:"san"`
}

// buildMoves renders t's moves to the caller-facing shape, playing them
// on pos (the root position the turn was found from) with the same
// second-move fixup the real search used, and restoring pos to its
// original state before returning. Only the final move of the turn can
// legally end the game, so only it is checked for checkmate; an
// intermediate first move is marked with "+" if it merely gives check.
func buildMoves(pos *position.Position, t turn.Turn, gen *movegen.Generator) []MoveOut {
	mover := pos.SideToMove()
	out := make([]MoveOut, 0, t.Len)

	m0 := t.Moves[0]
	san0 := sanCore(pos, m0, gen)
	pos.DoMove(m0)
	san0 += checkSuffix(pos, mover.Opponent(), gen, t.Len == 1)
	out = append(out, moveOutOf(m0, san0))

	if t.Len == 1 {
		pos.UndoMove()
		return out
	}

	prevSide, prevEp := pos.BeginSecondMove()
	m1 := t.Moves[1]
	san1 := sanCore(pos, m1, gen)
	pos.DoMove(m1)
	san1 += checkSuffix(pos, mover.Opponent(), gen, true)
	out = append(out, moveOutOf(m1, san1))

	pos.UndoMove()
	pos.EndSecondMove(prevSide, prevEp)
	pos.UndoMove()
	return out
}

func moveOutOf(m Move, san string) MoveOut {
	mo := MoveOut{From: m.From.String(), To: m.To.String(), San: san}
	if m.IsPromotion() {
		mo.Promotion = m.Promotion.String()
	}
	return mo
}
