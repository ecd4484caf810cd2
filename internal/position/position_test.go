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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/yossior/double-chess-sub000/internal/types"
)

func TestNewFENRoundTrip(t *testing.T) {
	p, err := NewFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, StartFEN, p.FEN())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, AllCastling, p.Castling())
}

func TestNewFENRejectsMalformed(t *testing.T) {
	_, err := NewFEN("not a fen")
	assert.Error(t, err)

	_, err = NewFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -")
	assert.Error(t, err)
}

func TestDoUndoMoveRoundTrip(t *testing.T) {
	p := New()
	startFEN := p.FEN()
	startKey := p.Key()

	p.DoMove(Move{From: SquareOf(4, 1), To: SquareOf(4, 3), Flag: DoublePush})
	p.DoMove(Move{From: SquareOf(3, 6), To: SquareOf(3, 4), Flag: DoublePush})
	p.DoMove(Move{From: SquareOf(1, 0), To: SquareOf(2, 2)})

	p.UndoMove()
	p.UndoMove()
	p.UndoMove()

	assert.Equal(t, startFEN, p.FEN())
	assert.Equal(t, startKey, p.Key())
}

func TestZobristIncrementalMatchesFreshComputation(t *testing.T) {
	p := New()
	moves := []Move{
		{From: SquareOf(4, 1), To: SquareOf(4, 3), Flag: DoublePush},
		{From: SquareOf(3, 6), To: SquareOf(3, 4), Flag: DoublePush},
		{From: SquareOf(6, 0), To: SquareOf(5, 2)},
		{From: SquareOf(1, 7), To: SquareOf(2, 5)},
	}
	for _, m := range moves {
		p.DoMove(m)
		assert.Equal(t, p.computeZobrist(), p.Key())
	}
	for range moves {
		p.UndoMove()
		assert.Equal(t, p.computeZobrist(), p.Key())
	}
}

func TestDoMoveCapturePlacesPieceAndClearsHalfmove(t *testing.T) {
	p, err := NewFEN("4k3/8/8/8/4n3/8/4R3/4K3 w - - 5 10")
	assert.NoError(t, err)
	captured := p.At(SquareOf(4, 3))
	p.DoMove(Move{From: SquareOf(4, 1), To: SquareOf(4, 3), Captured: captured})
	assert.Equal(t, MakePiece(White, Rook), p.At(SquareOf(4, 3)))
	assert.Equal(t, 0, p.HalfmoveClock())

	p.UndoMove()
	assert.Equal(t, captured, p.At(SquareOf(4, 3)))
	assert.Equal(t, 5, p.HalfmoveClock())
}

func TestCastlingMovesRookAndClearsRights(t *testing.T) {
	p, err := NewFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	p.DoMove(Move{From: SquareOf(4, 0), To: SquareOf(6, 0), Flag: Castle})
	assert.Equal(t, MakePiece(White, King), p.At(SquareOf(6, 0)))
	assert.Equal(t, MakePiece(White, Rook), p.At(SquareOf(5, 0)))
	assert.False(t, p.Castling().Has(WhiteOO))
	assert.False(t, p.Castling().Has(WhiteOOO))
	assert.True(t, p.Castling().Has(BlackOO))

	p.UndoMove()
	assert.Equal(t, MakePiece(White, King), p.At(SquareOf(4, 0)))
	assert.Equal(t, MakePiece(White, Rook), p.At(SquareOf(7, 0)))
	assert.True(t, p.Castling().Has(WhiteOO))
}

func TestEnPassantCaptureRemovesPawnBehindTarget(t *testing.T) {
	p, err := NewFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	assert.NoError(t, err)
	p.DoMove(Move{From: SquareOf(3, 3), To: SquareOf(4, 2), Captured: MakePiece(White, Pawn), Flag: EnPassant})
	assert.Equal(t, NoPiece, p.At(SquareOf(4, 3)))
	assert.Equal(t, MakePiece(Black, Pawn), p.At(SquareOf(4, 2)))

	p.UndoMove()
	assert.Equal(t, MakePiece(White, Pawn), p.At(SquareOf(4, 3)))
	assert.Equal(t, NoPiece, p.At(SquareOf(4, 2)))
}

func TestBeginEndSecondMoveFixupIsReversible(t *testing.T) {
	p := New()
	p.DoMove(Move{From: SquareOf(4, 1), To: SquareOf(4, 3), Flag: DoublePush})
	keyAfterFirst := p.Key()
	assert.Equal(t, Black, p.SideToMove())
	ep, hasEp := p.EnPassant()
	assert.True(t, hasEp)
	assert.Equal(t, SquareOf(4, 2), ep)

	prevSide, prevEp := p.BeginSecondMove()
	assert.Equal(t, Black, prevSide)
	assert.Equal(t, White, p.SideToMove())
	_, hasEp = p.EnPassant()
	assert.False(t, hasEp)

	p.DoMove(Move{From: SquareOf(3, 1), To: SquareOf(3, 3), Flag: DoublePush})
	p.UndoMove()
	p.EndSecondMove(prevSide, prevEp)

	assert.Equal(t, keyAfterFirst, p.Key())
	assert.Equal(t, Black, p.SideToMove())
	ep, hasEp = p.EnPassant()
	assert.True(t, hasEp)
	assert.Equal(t, SquareOf(4, 2), ep)
}

func TestRepetitionCountTracksOccurrences(t *testing.T) {
	p := New()
	assert.Equal(t, 1, p.RepetitionCount())

	p.DoMove(Move{From: SquareOf(6, 0), To: SquareOf(5, 2)})
	p.DoMove(Move{From: SquareOf(6, 7), To: SquareOf(5, 5)})
	p.DoMove(Move{From: SquareOf(5, 2), To: SquareOf(6, 0)})
	p.DoMove(Move{From: SquareOf(5, 5), To: SquareOf(6, 7)})
	assert.Equal(t, 2, p.RepetitionCount())
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	c := p.Clone()
	c.DoMove(Move{From: SquareOf(4, 1), To: SquareOf(4, 3), Flag: DoublePush})
	assert.NotEqual(t, p.Key(), c.Key())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, Black, c.SideToMove())
}
