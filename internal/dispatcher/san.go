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
	"strconv"
	"strings"

	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/movegen"
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// sanCore renders m in standard algebraic notation, minus any trailing
// check/mate marker. pos is the position immediately before m is
// played; gen supplies the legal-move list used for disambiguation.
func sanCore(pos *position.Position, m Move, gen *movegen.Generator) string {
	if m.Flag == Castle {
		if m.To.File() < m.From.File() {
			return "O-O-O"
		}
		return "O-O"
	}

	mover := pos.At(m.From)
	var sb strings.Builder

	if mover.Type() == Pawn {
		if m.IsCapture() {
			sb.WriteByte('a' + byte(m.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteString(strings.ToUpper(m.Promotion.String()))
		}
		return sb.String()
	}

	sb.WriteString(strings.ToUpper(mover.Type().String()))
	sb.WriteString(disambiguate(pos, m, gen))
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguate returns the minimal file/rank/square qualifier needed
// to distinguish m from any other legal move of the same piece type
// and color landing on the same destination.
func disambiguate(pos *position.Position, m Move, gen *movegen.Generator) string {
	mover := pos.At(m.From)
	legal := gen.GenerateLegal(pos)

	ambiguous, sameFile, sameRank := false, false, false
	for i := 0; i < legal.Len(); i++ {
		other := legal.At(i)
		if other.To != m.To || other.From == m.From {
			continue
		}
		op := pos.At(other.From)
		if op != mover {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return string(rune('a' + m.From.File()))
	case !sameRank:
		return strconv.Itoa(m.From.Rank() + 1)
	default:
		return m.From.String()
	}
}

// checkSuffix reports "+"/"#"/"" for the move just applied to pos,
// where enemy is the color of the king that move may have attacked.
// pos already reflects the move; gen generates enemy's legal replies.
// allowMate must be false for a turn's non-final move: the opponent
// does not actually get to move between a turn's two moves, so "no
// legal replies" there does not mean checkmate.
func checkSuffix(pos *position.Position, enemy Color, gen *movegen.Generator, allowMate bool) string {
	if !attacks.IsInCheck(pos, enemy) {
		return ""
	}
	if allowMate && gen.GenerateLegal(pos).Len() == 0 {
		return "#"
	}
	return "+"
}
