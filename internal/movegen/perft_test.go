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

	"github.com/yossior/double-chess-sub000/internal/position"
)

// TestPerftStandardChessCounts checks Perft against the well-known node
// counts for ordinary chess from the starting position, confirming the
// move generator is standard-chess-correct before the turn rules layer
// double-move semantics on top of it.
func TestPerftStandardChessCounts(t *testing.T) {
	pos := position.New()
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		assert.Equal(t, c.nodes, Perft(pos, c.depth), "perft(%d)", c.depth)
	}
}

func TestPerftKiwipetePositionDepthOne(t *testing.T) {
	// The standard "Kiwipete" perft test position, exercising castling,
	// en passant and promotions in the move generator.
	pos, err := position.NewFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(pos, 1))
}
