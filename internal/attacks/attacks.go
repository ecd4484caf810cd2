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

// Package attacks implements the Attack Oracle (spec §4.2): answers
// "is square S attacked by color C" by walking jump offsets (knight,
// king, pawn) and sliding rays (bishop/rook/queen) on the 10x12
// mailbox. Rays terminate at the first non-empty square or at an
// off-board sentinel.
package attacks

import (
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// KnightOffsets, KingOffsets, BishopDirs and RookDirs are the mailbox
// jump/ray tables, exported so the move generator walks the same
// geometry the oracle uses to answer attack queries.
var (
	KnightOffsets = [8]int{-21, -19, -12, -8, 8, 12, 19, 21}
	KingOffsets   = [8]int{-11, -10, -9, -1, 1, 9, 10, 11}
	BishopDirs    = [4]int{-11, -9, 9, 11}
	RookDirs      = [4]int{-10, -1, 1, 10}
)

// IsSquareAttacked reports whether sq is attacked by any piece of
// color by.
func IsSquareAttacked(pos *position.Position, sq Square, by Color) bool {
	// Pawns: look one diagonal step behind sq from the attacker's
	// direction of travel.
	if by == White {
		if isPawn(pos, sq+Square(-9), White) || isPawn(pos, sq+Square(-11), White) {
			return true
		}
	} else {
		if isPawn(pos, sq+Square(9), Black) || isPawn(pos, sq+Square(11), Black) {
			return true
		}
	}

	for _, off := range KnightOffsets {
		t := sq + Square(off)
		if !t.IsOffBoard() && pieceIs(pos, t, by, Knight) {
			return true
		}
	}
	for _, off := range KingOffsets {
		t := sq + Square(off)
		if !t.IsOffBoard() && pieceIs(pos, t, by, King) {
			return true
		}
	}
	for _, dir := range BishopDirs {
		if rayHits(pos, sq, dir, by, Bishop, Queen) {
			return true
		}
	}
	for _, dir := range RookDirs {
		if rayHits(pos, sq, dir, by, Rook, Queen) {
			return true
		}
	}
	return false
}

func isPawn(pos *position.Position, sq Square, by Color) bool {
	return !sq.IsOffBoard() && pieceIs(pos, sq, by, Pawn)
}

func pieceIs(pos *position.Position, sq Square, by Color, pt PieceType) bool {
	pc := pos.At(sq)
	return pc.IsColor(by) && pc.Type() == pt
}

// rayHits walks from sq in direction dir (exclusive of sq itself) until
// it meets an off-board square or a piece. It reports an attack if the
// first piece found belongs to `by` and is either pt or pt2.
func rayHits(pos *position.Position, sq Square, dir int, by Color, pt, pt2 PieceType) bool {
	t := sq + Square(dir)
	for !t.IsOffBoard() {
		pc := pos.At(t)
		if pc != NoPiece {
			return pc.IsColor(by) && (pc.Type() == pt || pc.Type() == pt2)
		}
		t += Square(dir)
	}
	return false
}

// IsInCheck reports whether color c's king is currently attacked.
func IsInCheck(pos *position.Position, c Color) bool {
	return IsSquareAttacked(pos, pos.KingSquare(c), c.Opponent())
}
