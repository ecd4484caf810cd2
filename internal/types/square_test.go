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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareOfAndFileRank(t *testing.T) {
	tests := []struct {
		file, rank int
	}{
		{0, 0}, {7, 7}, {3, 4}, {4, 3},
	}
	for _, tt := range tests {
		sq := SquareOf(tt.file, tt.rank)
		assert.Equal(t, tt.file, sq.File())
		assert.Equal(t, tt.rank, sq.Rank())
		assert.False(t, sq.IsOffBoard())
	}
}

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq       Square
		expected string
	}{
		{SquareOf(0, 0), "a1"},
		{SquareOf(7, 7), "h8"},
		{SquareOf(4, 3), "e4"},
		{SquareNone, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.sq.String())
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	assert.NoError(t, err)
	assert.Equal(t, SquareOf(4, 3), sq)

	_, err = ParseSquare("z9")
	assert.Error(t, err)

	_, err = ParseSquare("e")
	assert.Error(t, err)
}

func TestSquareIndex64RoundTrip(t *testing.T) {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := SquareOf(file, rank)
			idx := sq.Index64()
			assert.GreaterOrEqual(t, idx, 0)
			assert.Equal(t, sq, SquareFromIndex64(idx))
		}
	}
}

func TestSquareOffBoardSentinels(t *testing.T) {
	assert.True(t, Square(0).IsOffBoard())
	assert.True(t, Square(119).IsOffBoard())
}
