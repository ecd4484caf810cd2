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

// Package see implements Static Exchange Evaluation (spec §4.4): the
// material outcome of a capture sequence on one square, ignoring pins
// and absolute legality, used by move ordering to separate winning
// from losing captures without a full search.
package see

import (
	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// Evaluate returns the net material gain (in centipawn-like units, from
// the mover's perspective) of playing m and then letting both sides
// recapture on m.To with their least valuable attacker, alternating
// until no recapture is profitable to continue.
func Evaluate(pos *position.Position, m Move) int {
	if !m.IsCapture() {
		return 0
	}

	to := m.To
	mover := pos.At(m.From).Color()

	var gains [32]int
	depth := 0
	gains[0] = m.Captured.Type().Value()

	// lastValue is the value of whichever piece now sits on `to`, i.e.
	// what the next recapture would win.
	lastValue := pos.At(m.From).Type().Value()
	occupied := newOccupancy(pos)
	occupied.remove(m.From)
	if m.Flag == EnPassant {
		occupied.remove(SquareOf(to.File(), m.From.Rank()))
	}
	side := mover.Opponent()

	for depth < len(gains)-1 {
		from, pt, ok := leastValuableAttacker(occupied, to, side)
		if !ok {
			break
		}
		depth++
		gains[depth] = lastValue - gains[depth-1]
		lastValue = pt.Value()
		occupied.remove(from)
		side = side.Opponent()
	}

	// Fold back to front: each side chooses the better of stopping here
	// or continuing the exchange, so a losing recapture is never forced.
	for depth > 0 {
		if gains[depth] > -gains[depth-1] {
			gains[depth-1] = -gains[depth]
		}
		depth--
	}
	return gains[0]
}

// occupancy is a scratch copy of which squares are occupied, so SEE can
// simulate removing attackers without mutating the real Position.
type occupancy struct {
	present [BoardSize]bool
	pos     *position.Position
}

func newOccupancy(pos *position.Position) *occupancy {
	o := &occupancy{pos: pos}
	for sq := 0; sq < BoardSize; sq++ {
		s := Square(sq)
		if !s.IsOffBoard() {
			o.present[sq] = pos.At(s) != NoPiece
		}
	}
	return o
}

func (o *occupancy) remove(sq Square) {
	if !sq.IsOffBoard() {
		o.present[sq] = false
	}
}

func (o *occupancy) pieceAt(sq Square) Piece {
	if sq.IsOffBoard() || !o.present[sq] {
		return NoPiece
	}
	return o.pos.At(sq)
}

// leastValuableAttacker finds the cheapest piece of color `side` that
// attacks `to` given the current scratch occupancy, walking the same
// geometry the attack oracle uses but against the scratch board instead
// of the live Position.
func leastValuableAttacker(occ *occupancy, to Square, side Color) (Square, PieceType, bool) {
	// Pawns first (cheapest), then knights, bishops, rooks, queens, king.
	if sq, ok := findPawnAttacker(occ, to, side); ok {
		return sq, Pawn, true
	}
	if sq, ok := findJumpAttacker(occ, to, side, attacks.KnightOffsets[:], Knight); ok {
		return sq, Knight, true
	}
	diagSq, diagOk := findSlideAttacker(occ, to, side, attacks.BishopDirs[:], Bishop, Queen)
	if diagOk && occ.pieceAt(diagSq).Type() == Bishop {
		return diagSq, Bishop, true
	}
	if sq, ok := findSlideAttacker(occ, to, side, attacks.RookDirs[:], Rook, Queen); ok && (!diagOk || occ.pieceAt(sq).Type() == Rook) {
		return sq, occ.pieceAt(sq).Type(), true
	}
	if diagOk {
		return diagSq, Queen, true
	}
	if sq, ok := findJumpAttacker(occ, to, side, attacks.KingOffsets[:], King); ok {
		return sq, King, true
	}
	return SquareNone, NoPieceType, false
}

func findPawnAttacker(occ *occupancy, to Square, side Color) (Square, bool) {
	dir := -1
	if side == Black {
		dir = 1
	}
	for _, fileOff := range [2]int{-1, 1} {
		from := to + Square(dir*10+fileOff)
		if from.IsOffBoard() {
			continue
		}
		pc := occ.pieceAt(from)
		if pc.IsColor(side) && pc.Type() == Pawn {
			return from, true
		}
	}
	return SquareNone, false
}

func findJumpAttacker(occ *occupancy, to Square, side Color, offsets []int, pt PieceType) (Square, bool) {
	for _, off := range offsets {
		from := to + Square(off)
		if from.IsOffBoard() {
			continue
		}
		pc := occ.pieceAt(from)
		if pc.IsColor(side) && pc.Type() == pt {
			return from, true
		}
	}
	return SquareNone, false
}

// findSlideAttacker walks each ray outward from `to`, and among every
// ray whose first occupied square holds a `side` piece of type pt or
// pt2, returns the cheapest one -- a bishop is preferred over a queen
// when both attack the same square diagonally.
func findSlideAttacker(occ *occupancy, to Square, side Color, dirs []int, pt, pt2 PieceType) (Square, bool) {
	best := SquareNone
	bestValue := 1 << 30
	for _, dir := range dirs {
		t := to + Square(dir)
		for !t.IsOffBoard() {
			pc := occ.pieceAt(t)
			if pc != NoPiece {
				if pc.IsColor(side) && (pc.Type() == pt || pc.Type() == pt2) {
					if v := pc.Type().Value(); v < bestValue {
						bestValue = v
						best = t
					}
				}
				break
			}
			t += Square(dir)
		}
	}
	return best, best != SquareNone
}
