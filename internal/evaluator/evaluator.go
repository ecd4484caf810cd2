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

// Package evaluator implements the variant-tuned static evaluator
// (spec §4.5): material + PST plus development, king-safety, castling,
// center-control and anti-trade terms, weighted from internal/config,
// with a search-time hanging-piece adjustment layered on top.
package evaluator

import (
	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/config"
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

var centerSquares = [4]Square{SquareOf(3, 3), SquareOf(4, 3), SquareOf(3, 4), SquareOf(4, 4)} // d4 e4 d5 e5

// Static returns the position's material/positional score in
// centipawn-like units from White's perspective, without the
// hanging-piece adjustment (spec §4.5's table).
func Static(pos *position.Position) int {
	score := 0
	for _, c := range [2]Color{White, Black} {
		sign := 1
		if c == Black {
			sign = -1
		}
		score += sign * sideScore(pos, c)
	}
	return score
}

// Evaluate layers the hanging-piece adjustment on top of Static, from
// color's own perspective (positive is good for color). Search calls
// this at leaf nodes (spec §4.7 step 2).
func Evaluate(pos *position.Position, color Color) int {
	score := Static(pos)
	score += hangingAdjustment(pos, White) - hangingAdjustment(pos, Black)
	if color == Black {
		score = -score
	}
	return score
}

func sideScore(pos *position.Position, c Color) int {
	w := &config.Settings.Eval
	score := 0
	developedMinors := 0
	undevelopedMinors := 0
	minorMajorCount := 0
	queenAtHome := true
	castled := false
	piecesTraded := 0

	homeRank := 0
	if c == Black {
		homeRank = 7
	}

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := SquareOf(file, rank)
			pc := pos.At(sq)
			if !pc.IsColor(c) {
				continue
			}
			pt := pc.Type()
			score += pt.Value()
			score += PstValue(pt, c, sq)

			switch pt {
			case Knight, Bishop:
				minorMajorCount++
				if rank != homeRank {
					developedMinors++
				} else {
					undevelopedMinors++
				}
			case Rook, Queen:
				minorMajorCount++
				if pt == Queen && rank != homeRank {
					queenAtHome = false
				}
			}
		}
	}

	if hasBishopPair(pos, c) {
		score += w.BishopPairBonus
	}
	score += developedMinors * w.DevelopmentBonus
	score += minorMajorCount * w.PieceCountBonus

	kingSq := pos.KingSquare(c)
	opp := c.Opponent()
	score -= countKingAttackers(pos, kingSq, opp) * w.KingAttackerMalus
	score += pawnShieldScore(pos, c, kingSq, w)
	score += castlingTermsScore(pos, c, kingSq, homeRank, w, &castled)

	score += centerControlScore(pos, c, w)

	if !queenAtHome && undevelopedMinors >= 2 {
		score -= w.EarlyQueenMalus
	}
	piecesTraded = startingMinorMajorCount - minorMajorCount
	if piecesTraded > 0 && undevelopedMinors >= 2 {
		score += piecesTraded * w.AntiTradeBonus
	}

	return score
}

const startingMinorMajorCount = 7 // 2N+2B+2R+1Q per side

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

// countKingAttackers counts enemy pieces occupying the 8 squares
// around kingSq or a knight-jump away from it (spec §4.5's "8-ring +
// knight-jumps").
func countKingAttackers(pos *position.Position, kingSq Square, enemy Color) int {
	n := 0
	for _, off := range attacks.KingOffsets {
		sq := kingSq + Square(off)
		if !sq.IsOffBoard() && pos.At(sq).IsColor(enemy) {
			n++
		}
	}
	for _, off := range attacks.KnightOffsets {
		sq := kingSq + Square(off)
		if !sq.IsOffBoard() && pos.At(sq).IsColor(enemy) && pos.At(sq).Type() == Knight {
			n++
		}
	}
	return n
}

func pawnShieldScore(pos *position.Position, c Color, kingSq Square, w *config.EvalConfiguration) int {
	if kingSq.File() != 4 && kingSq.File() != 6 { // not on e- or g-file
		return 0
	}
	fPawnRank := 1
	if c == Black {
		fPawnRank = 6
	}
	fFile := 5
	fSq := SquareOf(fFile, fPawnRank)
	fMissing := pos.At(fSq) != MakePiece(c, Pawn)
	if !fMissing {
		return 0
	}
	score := -w.PawnShieldMissingMalus
	if kingSq.File() == 6 { // castled kingside
		gSq := SquareOf(6, fPawnRank)
		if pos.At(gSq) != MakePiece(c, Pawn) {
			score -= w.PawnShieldSecondMissingMalus
		}
	}
	return score
}

func castlingTermsScore(pos *position.Position, c Color, kingSq Square, homeRank int, w *config.EvalConfiguration, castled *bool) int {
	score := 0
	if pos.Castling().Has(KingSide(c)) {
		score += w.CastlingRightsKingSideBonus
	}
	if pos.Castling().Has(QueenSide(c)) {
		score += w.CastlingRightsQueenSideBonus
	}

	homeKingSq := SquareOf(4, homeRank)
	switch {
	case kingSq == SquareOf(6, homeRank):
		score += w.CastledKingSideBonus
		*castled = true
	case kingSq == SquareOf(2, homeRank):
		score += w.CastledQueenSideBonus
		*castled = true
	case kingSq == SquareOf(5, homeRank):
		score -= w.KingOnFFileMalus
	case kingSq != homeKingSq:
		score -= w.KingOnBadSquareMalus
	}
	return score
}

func centerControlScore(pos *position.Position, c Color, w *config.EvalConfiguration) int {
	units := 0
	for _, sq := range centerSquares {
		pc := pos.At(sq)
		if pc.IsColor(c) {
			if pc.Type() == Pawn {
				units += w.CenterPawnWeight
			} else {
				units += w.CenterPieceWeight
			}
		}
	}
	for _, sq := range centerSquares {
		units += attackCount(pos, sq, c) * w.CenterPieceWeight / 2
	}
	return units * w.CenterControlBonus
}

func attackCount(pos *position.Position, sq Square, by Color) int {
	if attacks.IsSquareAttacked(pos, sq, by) {
		return 1
	}
	return 0
}
