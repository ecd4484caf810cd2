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

// Package movegen implements the Move Generator (spec §4.3): a
// pseudo-legal generator for all six piece types plus castling and
// en-passant, a legal generator that filters via Make/Undo and the
// Attack Oracle, and a tactical-only generator for pruning.
package movegen

import (
	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/moveslice"
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// Generator owns reusable move buffers so repeated calls during search
// do not allocate (spec §5's allocation discipline).
type Generator struct {
	pseudo   *moveslice.MoveSlice
	legal    *moveslice.MoveSlice
	tactical *moveslice.MoveSlice
}

// New creates a move generator with pre-sized buffers.
func New() *Generator {
	return &Generator{
		pseudo:   moveslice.NewMoveSlice(128),
		legal:    moveslice.NewMoveSlice(128),
		tactical: moveslice.NewMoveSlice(64),
	}
}

// GeneratePseudoLegal produces every pseudo-legal move for the side to
// move: it does not check whether the mover's king ends up attacked.
// Castling is only generated when the king is not in check and the
// squares it crosses are not attacked.
func (g *Generator) GeneratePseudoLegal(pos *position.Position) *moveslice.MoveSlice {
	g.pseudo.Clear()
	g.generateAll(pos, g.pseudo, false)
	return g.pseudo
}

// GenerateLegal filters GeneratePseudoLegal down to moves that do not
// leave the mover's own king attacked.
func (g *Generator) GenerateLegal(pos *position.Position) *moveslice.MoveSlice {
	g.legal.Clear()
	g.generateAll(pos, g.legal, false)
	g.filterLegal(pos, g.legal)
	return g.legal
}

// GenerateTacticalLegal produces only legal captures, en-passant
// captures and promotions -- the generator spec §4.3 and §4.7 use for
// second-move pruning tiers.
func (g *Generator) GenerateTacticalLegal(pos *position.Position) *moveslice.MoveSlice {
	g.tactical.Clear()
	g.generateAll(pos, g.tactical, true)
	g.filterLegal(pos, g.tactical)
	return g.tactical
}

// filterLegal removes any move from ms that leaves the mover's king
// attacked, by making and immediately undoing each candidate.
func (g *Generator) filterLegal(pos *position.Position, ms *moveslice.MoveSlice) {
	mover := pos.SideToMove()
	write := 0
	for i := 0; i < ms.Len(); i++ {
		m := ms.At(i)
		pos.DoMove(m)
		ok := !attacks.IsInCheck(pos, mover)
		pos.UndoMove()
		if ok {
			(*ms)[write] = m
			write++
		}
	}
	*ms = (*ms)[:write]
}

func (g *Generator) generateAll(pos *position.Position, out *moveslice.MoveSlice, tacticalOnly bool) {
	us := pos.SideToMove()
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := SquareOf(file, rank)
			pc := pos.At(sq)
			if !pc.IsColor(us) {
				continue
			}
			switch pc.Type() {
			case Pawn:
				genPawnMoves(pos, sq, us, out, tacticalOnly)
			case Knight:
				genJumpMoves(pos, sq, us, attacks.KnightOffsets[:], out, tacticalOnly)
			case Bishop:
				genSlideMoves(pos, sq, us, attacks.BishopDirs[:], out, tacticalOnly)
			case Rook:
				genSlideMoves(pos, sq, us, attacks.RookDirs[:], out, tacticalOnly)
			case Queen:
				genSlideMoves(pos, sq, us, attacks.BishopDirs[:], out, tacticalOnly)
				genSlideMoves(pos, sq, us, attacks.RookDirs[:], out, tacticalOnly)
			case King:
				genJumpMoves(pos, sq, us, attacks.KingOffsets[:], out, tacticalOnly)
			}
		}
	}
	if pc := pos.At(pos.KingSquare(us)); !tacticalOnly && pc.Type() == King {
		genCastling(pos, us, out)
	}
}

func genJumpMoves(pos *position.Position, from Square, us Color, offsets []int, out *moveslice.MoveSlice, tacticalOnly bool) {
	for _, off := range offsets {
		to := from + Square(off)
		if to.IsOffBoard() {
			continue
		}
		target := pos.At(to)
		if target.IsColor(us) {
			continue
		}
		if target == NoPiece {
			if !tacticalOnly {
				out.PushBack(Move{From: from, To: to})
			}
			continue
		}
		out.PushBack(Move{From: from, To: to, Captured: target})
	}
}

func genSlideMoves(pos *position.Position, from Square, us Color, dirs []int, out *moveslice.MoveSlice, tacticalOnly bool) {
	for _, dir := range dirs {
		to := from + Square(dir)
		for !to.IsOffBoard() {
			target := pos.At(to)
			if target == NoPiece {
				if !tacticalOnly {
					out.PushBack(Move{From: from, To: to})
				}
				to += Square(dir)
				continue
			}
			if !target.IsColor(us) {
				out.PushBack(Move{From: from, To: to, Captured: target})
			}
			break
		}
	}
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func genPawnMoves(pos *position.Position, from Square, us Color, out *moveslice.MoveSlice, tacticalOnly bool) {
	dir := 1
	startRank, promoRank := 1, 7
	if us == Black {
		dir = -1
		startRank, promoRank = 6, 0
	}

	pushOne := from + Square(dir*10)
	if !pushOne.IsOffBoard() && pos.At(pushOne) == NoPiece {
		addPawnAdvance(from, pushOne, promoRank, out, tacticalOnly)
		if from.Rank() == startRank {
			pushTwo := from + Square(dir*20)
			if pos.At(pushTwo) == NoPiece && !tacticalOnly {
				out.PushBack(Move{From: from, To: pushTwo, Flag: DoublePush})
			}
		}
	}

	for _, capOff := range [2]int{dir*10 - 1, dir*10 + 1} {
		to := from + Square(capOff)
		if to.IsOffBoard() {
			continue
		}
		target := pos.At(to)
		if target != NoPiece && !target.IsColor(us) {
			addPawnCapture(from, to, target, promoRank, out)
			continue
		}
		if ep, ok := pos.EnPassant(); ok && to == ep && target == NoPiece {
			captured := MakePiece(us.Opponent(), Pawn)
			out.PushBack(Move{From: from, To: to, Captured: captured, Flag: EnPassant})
		}
	}
}

func addPawnAdvance(from, to Square, promoRank int, out *moveslice.MoveSlice, tacticalOnly bool) {
	if to.Rank() == promoRank {
		for _, pt := range promotionPieces {
			out.PushBack(Move{From: from, To: to, Promotion: pt})
		}
		return
	}
	if !tacticalOnly {
		out.PushBack(Move{From: from, To: to})
	}
}

func addPawnCapture(from, to Square, captured Piece, promoRank int, out *moveslice.MoveSlice) {
	if to.Rank() == promoRank {
		for _, pt := range promotionPieces {
			out.PushBack(Move{From: from, To: to, Captured: captured, Promotion: pt})
		}
		return
	}
	out.PushBack(Move{From: from, To: to, Captured: captured})
}

// genCastling generates castling moves when the right is set, the
// intervening squares are empty, the king is not currently in check,
// and the square the king crosses is not attacked (spec §4.3).
func genCastling(pos *position.Position, us Color, out *moveslice.MoveSlice) {
	if attacks.IsInCheck(pos, us) {
		return
	}
	rank := 0
	if us == Black {
		rank = 7
	}
	kingFrom := SquareOf(4, rank)
	if pos.KingSquare(us) != kingFrom {
		return
	}
	opp := us.Opponent()

	if pos.Castling().Has(KingSide(us)) {
		f, g := SquareOf(5, rank), SquareOf(6, rank)
		if pos.At(f) == NoPiece && pos.At(g) == NoPiece &&
			!attacks.IsSquareAttacked(pos, f, opp) && !attacks.IsSquareAttacked(pos, g, opp) {
			out.PushBack(Move{From: kingFrom, To: g, Flag: Castle})
		}
	}
	if pos.Castling().Has(QueenSide(us)) {
		d, c, b := SquareOf(3, rank), SquareOf(2, rank), SquareOf(1, rank)
		if pos.At(d) == NoPiece && pos.At(c) == NoPiece && pos.At(b) == NoPiece &&
			!attacks.IsSquareAttacked(pos, d, opp) && !attacks.IsSquareAttacked(pos, c, opp) {
			out.PushBack(Move{From: kingFrom, To: c, Flag: Castle})
		}
	}
}
