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

import "math/rand"

// Key is a 64-bit Zobrist fingerprint of a position.
type Key uint64

type zobrist struct {
	pieces    [2][7][64]Key // [colorIndex][pieceType][square64]
	castling  [16]Key       // indexed by the full 4-bit Castling mask
	epFile    [8]Key
	sideToMove Key
}

var zobristBase zobrist

func init() {
	// Fixed seed: reproducible keys across runs and processes, which
	// matters for tests that compare hashes computed independently.
	r := rand.New(rand.NewSource(1070372))
	for c := 0; c < 2; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristBase.pieces[c][pt][sq] = Key(r.Uint64())
			}
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristBase.castling[cr] = Key(r.Uint64())
	}
	for f := 0; f < 8; f++ {
		zobristBase.epFile[f] = Key(r.Uint64())
	}
	zobristBase.sideToMove = Key(r.Uint64())
}

func colorIndex(c Color) int {
	if c == White {
		return 0
	}
	return 1
}

// ZobristPiece returns the key contribution of piece p standing on the
// interior square sq120.
func ZobristPiece(p Piece, sq120 Square) Key {
	idx := sq120.Index64()
	if idx < 0 || p == NoPiece || p == OffBoard {
		return 0
	}
	return zobristBase.pieces[colorIndex(p.Color())][p.Type()][idx]
}

// ZobristCastling returns the key contribution of a full castling mask.
func ZobristCastling(c Castling) Key {
	return zobristBase.castling[c&0xF]
}

// ZobristEpFile returns the key contribution of the en-passant file
// (0..7). It has no "no en-passant" case: callers only XOR this in when
// a target square is actually set.
func ZobristEpFile(file int) Key {
	return zobristBase.epFile[file]
}

// ZobristSideToMove is XORed in on every move to flip the key's parity.
func ZobristSideToMove() Key {
	return zobristBase.sideToMove
}
