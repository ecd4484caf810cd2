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

package see

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

func TestEvaluateQuietMoveIsZero(t *testing.T) {
	pos := position.New()
	m := Move{From: SquareOf(4, 1), To: SquareOf(4, 3)}
	assert.Equal(t, 0, Evaluate(pos, m))
}

func TestEvaluateSimpleWinningCapture(t *testing.T) {
	// White pawn takes an undefended black knight: pure material gain.
	pos, err := position.NewFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - -")
	assert.NoError(t, err)
	m := Move{From: SquareOf(4, 3), To: SquareOf(3, 4), Captured: MakePiece(Black, Knight)}
	gain := Evaluate(pos, m)
	assert.Equal(t, Knight.Value(), gain)
}

func TestEvaluateLosingCaptureIsNegative(t *testing.T) {
	// White queen takes a pawn defended by a black knight: losing the
	// exchange, so SEE must be negative.
	pos, err := position.NewFEN("4k3/8/8/3n4/8/4p3/3Q4/4K3 w - -")
	assert.NoError(t, err)
	m := Move{From: SquareOf(3, 1), To: SquareOf(4, 2), Captured: MakePiece(Black, Pawn)}
	gain := Evaluate(pos, m)
	assert.Less(t, gain, 0)
}

func TestEvaluateLosingExchangeAgainstDefendingQueen(t *testing.T) {
	// Rook takes a pawn that a queen defends along the diagonal; the
	// queen's recapture makes the whole exchange net-losing for white.
	pos, err := position.NewFEN("4k3/7q/8/8/4p3/8/4R3/4K3 w - -")
	assert.NoError(t, err)
	m := Move{From: SquareOf(4, 1), To: SquareOf(4, 3), Captured: MakePiece(Black, Pawn)}
	gain := Evaluate(pos, m)
	assert.Equal(t, Pawn.Value()-Rook.Value(), gain)
}
