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

package movegen

import (
	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// GameResult classifies pos the way spec §4.7's getGameResult does: no
// legal move means checkmate (if the side to move is in check) or
// stalemate; otherwise a threefold repetition or the 50-move rule can
// still end the game as a draw.
func (g *Generator) GameResult(pos *position.Position) Result {
	if g.GenerateLegal(pos).Len() == 0 {
		if attacks.IsInCheck(pos, pos.SideToMove()) {
			return Checkmate
		}
		return Stalemate
	}
	if pos.RepetitionCount() >= 3 {
		return Repetition
	}
	if pos.HalfmoveClock() >= 100 {
		return FiftyMove
	}
	return NoResult
}
