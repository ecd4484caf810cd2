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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

func TestStaticStartingPositionIsSymmetric(t *testing.T) {
	pos := position.New()
	assert.Equal(t, 0, Static(pos))
}

func TestStaticRewardsMaterialAdvantage(t *testing.T) {
	pos, err := position.NewFEN("4k3/8/8/8/8/8/4Q3/4K3 w - -")
	assert.NoError(t, err)
	assert.Greater(t, Static(pos), 0)
}

func TestEvaluateFlipsSignForBlackToMove(t *testing.T) {
	pos, err := position.NewFEN("4k3/8/8/8/8/8/4Q3/4K3 w - -")
	assert.NoError(t, err)
	white := Evaluate(pos, White)
	black := Evaluate(pos, Black)
	assert.Equal(t, white, -black)
	assert.Greater(t, white, 0)
}

func TestEvaluatePenalizesHangingPiece(t *testing.T) {
	// Black rook on d8 attacks the white knight on d4 down the open
	// file; a rook on d1 defends it, removing it leaves it hanging.
	defended, err := position.NewFEN("3rk3/8/8/8/3N4/8/8/3RK3 w - -")
	assert.NoError(t, err)
	hanging, err := position.NewFEN("3rk3/8/8/8/3N4/8/8/4K3 w - -")
	assert.NoError(t, err)

	assert.Greater(t, Evaluate(defended, White), Evaluate(hanging, White))
}

func TestStaticPenalizesEarlyQueenWithTwoMinorsStillHome(t *testing.T) {
	// Both knights developed, both bishops still on their home squares:
	// exactly two minors undeveloped. The queen off its home square
	// must score worse than the same material with the queen at home.
	queenOut, err := position.NewFEN("4k3/8/8/8/3Q4/2N2N2/8/R1B1KB1R w - -")
	assert.NoError(t, err)
	queenHome, err := position.NewFEN("4k3/8/8/8/8/2N2N2/8/R1BQKB1R w - -")
	assert.NoError(t, err)

	assert.Less(t, Static(queenOut), Static(queenHome))
}

func TestEvaluateDetectsDoubleMovePawnThreat(t *testing.T) {
	// A black knight on d5 is not presently attacked, but a white pawn
	// on e2 could push to e4 and capture it on the turn's second move.
	// The threatened black knight counts as hanging, which raises White's
	// score.
	threatened, err := position.NewFEN("4k3/8/8/3n4/8/8/4P3/4K3 w - -")
	assert.NoError(t, err)
	safe, err := position.NewFEN("4k3/8/2n5/8/8/8/4P3/4K3 w - -")
	assert.NoError(t, err)

	assert.Greater(t, Evaluate(threatened, White), Evaluate(safe, White))
}
