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

func TestZobristKeysAreDeterministicAcrossCalls(t *testing.T) {
	assert.Equal(t, ZobristSideToMove(), ZobristSideToMove())
	assert.Equal(t, ZobristCastling(AllCastling), ZobristCastling(AllCastling))
	assert.Equal(t, ZobristEpFile(3), ZobristEpFile(3))
}

func TestZobristKeysDistinguishInputs(t *testing.T) {
	assert.NotEqual(t, ZobristPiece(MakePiece(White, Pawn), SquareOf(0, 1)), ZobristPiece(MakePiece(Black, Pawn), SquareOf(0, 1)))
	assert.NotEqual(t, ZobristPiece(MakePiece(White, Pawn), SquareOf(0, 1)), ZobristPiece(MakePiece(White, Pawn), SquareOf(1, 1)))
	assert.NotEqual(t, ZobristEpFile(0), ZobristEpFile(1))
	assert.NotEqual(t, Key(0), ZobristSideToMove())
}

func TestZobristPieceZeroForEmptyOrOffBoard(t *testing.T) {
	assert.Equal(t, Key(0), ZobristPiece(NoPiece, SquareOf(3, 3)))
	assert.Equal(t, Key(0), ZobristPiece(OffBoard, Square(0)))
}
