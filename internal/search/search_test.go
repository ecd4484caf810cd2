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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

func TestFindBestTurnFromInitialPositionPlaysTwoMoves(t *testing.T) {
	pos := position.New()
	e := New()
	best, found := e.FindBestTurn(pos, 1, 2)
	assert.True(t, found)
	assert.Equal(t, 2, best.Len, "no first move from the initial position gives check, so the root turn should use both moves")
}

func TestFindBestTurnRespectsMaxMovesOne(t *testing.T) {
	pos := position.New()
	e := New()
	best, found := e.FindBestTurn(pos, 1, 1)
	assert.True(t, found)
	assert.Equal(t, 1, best.Len)
}

func TestFindBestTurnFindsBackRankMateInOneMove(t *testing.T) {
	// Ra1-a8 checks the black king on the back rank: the rook covers f8
	// and h8 and the white king covers f7, g7 and h7. Checkmate is
	// delivered by a single move, so the turn must stop there rather
	// than expand to a second move. Depth 2 lets the search see that
	// Black has no reply.
	pos, err := position.NewFEN("6k1/8/6K1/8/8/8/8/R7 w - -")
	assert.NoError(t, err)
	e := New()
	best, found := e.FindBestTurn(pos, 2, 2)
	assert.True(t, found)
	assert.Equal(t, 1, best.Len, "a checkmating first move must end the turn immediately")
	assert.Equal(t, SquareOf(0, 7), best.Moves[0].To, "a8 delivers the only mate-in-one here")
}

func TestFindBestTurnNoLegalMovesReturnsNotFound(t *testing.T) {
	// Black is stalemated: no legal move, no check.
	pos, err := position.NewFEN("7k/5Q2/6K1/8/8/8/8/8 b - -")
	assert.NoError(t, err)
	e := New()
	_, found := e.FindBestTurn(pos, 1, 2)
	assert.False(t, found)
}

func TestFindBestTurnFirstMoveIsNotAKingMove(t *testing.T) {
	pos := position.New()
	e := New()
	best, found := e.FindBestTurn(pos, 1, 2)
	assert.True(t, found)

	mover := pos.At(best.Moves[0].From)
	assert.NotEqual(t, King, mover.Type(), "the root tiebreaker penalizes early king moves")
}

func TestStatisticsAccumulateAcrossSearch(t *testing.T) {
	pos := position.New()
	e := New()
	_, found := e.FindBestTurn(pos, 2, 2)
	assert.True(t, found)
	stats := e.Statistics()
	assert.Greater(t, stats.Nodes, uint64(0))
}
