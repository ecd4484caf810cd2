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

import "fmt"

// MoveFlag distinguishes the special move kinds that need extra
// handling in Make/Undo beyond "piece moves from A to B".
type MoveFlag uint8

const (
	Normal     MoveFlag = iota
	EnPassant           // pawn capture onto the en-passant square
	Castle              // king move of two squares with its rook
	DoublePush          // pawn push of two squares, sets EnPassant square
)

// Move is a value type describing one ply. Re-architecture guidance:
// the original packs from/to/captured/promotion/flag into a 32-bit
// int; a fixed-size, Copy-able struct is the idiomatic Go equivalent
// and the 32-bit packing is an optional optimization this module does
// not need.
type Move struct {
	From      Square
	To        Square
	Captured  Piece     // NoPiece if not a capture
	Promotion PieceType // NoPieceType if not a promotion
	Flag      MoveFlag
}

// NoMove is the zero value, used as a sentinel for "no move" (e.g. an
// empty TT move slot).
var NoMove = Move{}

// IsCapture reports whether the move removes an enemy piece, including
// en-passant.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsTactical reports whether the move is a capture or promotion -- the
// set the tactical-only generator produces.
func (m Move) IsTactical() bool {
	return m.IsCapture() || m.IsPromotion()
}

// UCI renders the move in pure coordinate notation, e.g. "e2e4" or
// "e7e8q".
func (m Move) UCI() string {
	if m.Promotion != NoPieceType {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

func (m Move) String() string {
	return m.UCI()
}
