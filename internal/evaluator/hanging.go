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

package evaluator

import (
	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/config"
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// hangingAdjustment returns the search-time correction for color's own
// hanging pieces (spec §4.5 second paragraph): a negative number sized
// at HangingPiecePercent of the value of each own piece that is
// attacked and not adequately defended, including pieces only a pawn's
// one-or-two-square advance-then-capture threatens -- the variant's
// signature double-move tactic, since a pawn push and a capture are
// two moves the opponent can play in a single turn.
func hangingAdjustment(pos *position.Position, c Color) int {
	enemy := c.Opponent()
	percent := config.Settings.Eval.HangingPiecePercent
	adjustment := 0

	for sq := 0; sq < BoardSize; sq++ {
		s := Square(sq)
		if s.IsOffBoard() {
			continue
		}
		pc := pos.At(s)
		if !pc.IsColor(c) || pc.Type() == King {
			continue
		}
		if isHanging(pos, s, pc, enemy) {
			adjustment -= pc.Type().Value() * percent / 100
		}
	}
	return adjustment
}

func isHanging(pos *position.Position, sq Square, pc Piece, enemy Color) bool {
	if !attacks.IsSquareAttacked(pos, sq, enemy) {
		return pawnAdvanceThenCaptureThreatens(pos, sq, pc, enemy)
	}
	return !attacks.IsSquareAttacked(pos, sq, pc.Color())
}

// pawnAdvanceThenCaptureThreatens detects the double-move tactic named
// in spec §4.5: an enemy pawn not currently attacking sq could push one
// or two squares this turn and capture on sq with the turn's second
// move.
//
// A pawn capturing onto sq must, immediately before that capture,
// stand at rank sq.Rank()-dir on file sq.File()∓1. This checks whether
// an enemy pawn could reach one of those two squares this turn by a
// single forward push (from one rank further back) or a double push
// from its own start rank, with the squares in between empty.
func pawnAdvanceThenCaptureThreatens(pos *position.Position, sq Square, pc Piece, enemy Color) bool {
	dir := 1
	startRank := 1
	if enemy == Black {
		dir = -1
		startRank = 6
	}

	launchRank := sq.Rank() - dir
	if launchRank < 0 || launchRank > 7 {
		return false
	}

	for _, fileOff := range [2]int{-1, 1} {
		launchFile := sq.File() - fileOff
		if launchFile < 0 || launchFile > 7 {
			continue
		}
		launchSq := SquareOf(launchFile, launchRank)

		// One-square advance then capture: the pawn starts one rank
		// behind launchSq and simply needs launchSq empty.
		oneBack := launchRank - dir
		if oneBack >= 0 && oneBack <= 7 {
			origin := SquareOf(launchFile, oneBack)
			p := pos.At(origin)
			if p.IsColor(enemy) && p.Type() == Pawn && pos.At(launchSq) == NoPiece {
				return true
			}
		}

		// Double-push-then-capture: the pawn starts on its own start
		// rank and must clear both squares of the double push.
		if launchRank == startRank+2*dir {
			origin := SquareOf(launchFile, startRank)
			p := pos.At(origin)
			if p.IsColor(enemy) && p.Type() == Pawn &&
				pos.At(SquareOf(launchFile, startRank+dir)) == NoPiece &&
				pos.At(launchSq) == NoPiece {
				return true
			}
		}
	}
	return false
}
