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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

func TestStartingPositionMoveCounts(t *testing.T) {
	pos := position.New()
	g := New()

	pseudo := g.GeneratePseudoLegal(pos)
	assert.Equal(t, 20, pseudo.Len())

	legal := g.GenerateLegal(pos)
	assert.Equal(t, 20, legal.Len())
}

func TestLegalIsSubsetOfPseudoLegal(t *testing.T) {
	positions := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
	}
	for _, fen := range positions {
		pos, err := position.NewFEN(fen)
		assert.NoError(t, err)
		g := New()

		pseudoSet := map[Move]bool{}
		pseudo := g.GeneratePseudoLegal(pos)
		for i := 0; i < pseudo.Len(); i++ {
			pseudoSet[pseudo.At(i)] = true
		}

		legal := g.GenerateLegal(pos)
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			assert.True(t, pseudoSet[m], "legal move %v missing from pseudo-legal set", m)

			mover := pos.SideToMove()
			pos.DoMove(m)
			inCheck := attacks.IsInCheck(pos, mover)
			pos.UndoMove()
			assert.False(t, inCheck, "legal move %v leaves mover's king attacked", m)
		}
	}
}

func TestLegalExcludesMovesThatLeaveKingAttacked(t *testing.T) {
	// White king pinned: moving the bishop off the pin line is illegal.
	pos, err := position.NewFEN("4k3/8/8/8/8/4r3/4B3/4K3 w - -")
	assert.NoError(t, err)
	g := New()
	legal := g.GenerateLegal(pos)
	for i := 0; i < legal.Len(); i++ {
		assert.NotEqual(t, SquareOf(4, 1), legal.At(i).From, "bishop must not leave the e-file pin")
	}
}

func TestGenerateTacticalLegalOnlyCapturesAndPromotions(t *testing.T) {
	pos, err := position.NewFEN("4k3/P7/8/3n4/4P3/8/8/4K3 w - -")
	assert.NoError(t, err)
	g := New()
	tactical := g.GenerateTacticalLegal(pos)
	assert.Greater(t, tactical.Len(), 0)
	for i := 0; i < tactical.Len(); i++ {
		m := tactical.At(i)
		assert.True(t, m.IsCapture() || m.IsPromotion())
	}
}

func TestEnPassantGeneratedWhenAvailable(t *testing.T) {
	pos, err := position.NewFEN("4k3/8/8/8/3pP3/8/8/4K3 b - e3")
	assert.NoError(t, err)
	g := New()
	legal := g.GenerateLegal(pos)
	found := false
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.Flag == EnPassant {
			found = true
			assert.Equal(t, SquareOf(4, 2), m.To)
		}
	}
	assert.True(t, found, "expected an en-passant capture to be generated")
}

func TestCastlingNotGeneratedThroughAttackedSquare(t *testing.T) {
	pos, err := position.NewFEN("r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq -")
	assert.NoError(t, err)
	g := New()
	legal := g.GenerateLegal(pos)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.Flag == Castle {
			assert.NotEqual(t, SquareOf(6, 0), m.To, "kingside castling crosses an attacked square")
		}
	}
}
