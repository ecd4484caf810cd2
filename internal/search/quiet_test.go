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
	"github.com/yossior/double-chess-sub000/internal/turn"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// TestQuietScorePrefersDevelopmentOverGrabAndRetreat is the motivating
// variant calibration scenario: a turn that captures an undefended
// knight and then retreats the capturing piece home must score lower,
// on the quiet tiebreaker, than a turn that develops two minor pieces
// off the back rank without capturing anything.
func TestQuietScorePrefersDevelopmentOverGrabAndRetreat(t *testing.T) {
	grabAndRetreat, err := position.NewFEN("4k3/8/8/8/8/2n5/8/1NB1K3 w - -")
	assert.NoError(t, err)
	captureTurn := turn.Turn{
		Moves: [2]Move{
			{From: SquareOf(1, 0), To: SquareOf(2, 2), Captured: MakePiece(Black, Knight)},
			{From: SquareOf(2, 2), To: SquareOf(1, 0)},
		},
		Len: 2,
	}
	retreatScore := quietScore(grabAndRetreat, captureTurn, White)

	develop, err := position.NewFEN("4k3/8/8/8/8/8/8/1NB1K3 w - -")
	assert.NoError(t, err)
	developTurn := turn.Turn{
		Moves: [2]Move{
			{From: SquareOf(1, 0), To: SquareOf(2, 2)},
			{From: SquareOf(2, 0), To: SquareOf(5, 3)},
		},
		Len: 2,
	}
	developScore := quietScore(develop, developTurn, White)

	assert.Greater(t, developScore, retreatScore)
}

func TestQuietScoreRewardsCastlingOverKingWander(t *testing.T) {
	pos, err := position.NewFEN("4k3/8/8/8/8/8/8/4K2R w K -")
	assert.NoError(t, err)
	castle := turn.Turn{Moves: [2]Move{{From: SquareOf(4, 0), To: SquareOf(6, 0), Flag: Castle}}, Len: 1}
	wander := turn.Turn{Moves: [2]Move{{From: SquareOf(4, 0), To: SquareOf(4, 1)}}, Len: 1}

	assert.Greater(t, quietScore(pos, castle, White), quietScore(pos, wander, White))
}
