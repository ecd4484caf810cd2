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

// Square is an index into the 10x12 mailbox board. Interior squares map
// a1..h8 onto indices 21..98; every other index in [0,120) is a padding
// square that always holds OffBoard. The padding ring lets the move
// generator and attack oracle detect "off the board" with one equality
// check instead of bounds-checking file/rank separately.
type Square int

const (
	BoardSize = 120
	// SquareNone is the sentinel for "no square", used for en-passant
	// and as the "not found" result of square searches.
	SquareNone Square = -1
)

// square120 maps (file, rank) in [0,8)x[0,8) to the mailbox index.
func square120(file, rank int) Square {
	return Square(21 + rank*10 + file)
}

// offBoard120 marks every mailbox index that is not one of the 64
// interior squares.
var offBoard120 [BoardSize]bool

// index64 maps a mailbox index to the interior 0..63 index (rank*8+file),
// or -1 if the mailbox index is a padding square.
var index64 [BoardSize]int

// square120FromIndex64 is the inverse of index64.
var square120FromIndex64 [64]Square

func init() {
	for i := 0; i < BoardSize; i++ {
		offBoard120[i] = true
		index64[i] = -1
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := square120(file, rank)
			offBoard120[sq] = false
			idx := rank*8 + file
			index64[sq] = idx
			square120FromIndex64[idx] = sq
		}
	}
}

// SquareOf returns the mailbox square for a zero-based file and rank.
func SquareOf(file, rank int) Square {
	return square120(file, rank)
}

// IsOffBoard reports whether sq is outside the 64 interior squares.
func (sq Square) IsOffBoard() bool {
	if sq < 0 || int(sq) >= BoardSize {
		return true
	}
	return offBoard120[sq]
}

// File returns the zero-based file (a=0..h=7). Only meaningful for
// interior squares.
func (sq Square) File() int {
	return (int(sq) - 21) % 10
}

// Rank returns the zero-based rank (rank1=0..rank8=7). Only meaningful
// for interior squares.
func (sq Square) Rank() int {
	return (int(sq) - 21) / 10
}

// Index64 returns the 0..63 interior index (rank*8+file) for sq, or -1
// if sq is off-board. Used to size Zobrist and PST tables.
func (sq Square) Index64() int {
	if sq < 0 || int(sq) >= BoardSize {
		return -1
	}
	return index64[sq]
}

// SquareFromIndex64 is the inverse of Index64.
func SquareFromIndex64(idx int) Square {
	return square120FromIndex64[idx]
}

// FlipRank mirrors sq vertically (white <-> black perspective), used to
// index piece-square tables for Black from White's table.
func (sq Square) FlipRank() Square {
	return square120(sq.File(), 7-sq.Rank())
}

// String renders the square in algebraic form, e.g. "e4".
func (sq Square) String() string {
	if sq.IsOffBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// ParseSquare parses algebraic notation, e.g. "e4", into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone, fmt.Errorf("invalid square %q", s)
	}
	return square120(file, rank), nil
}

// Starting king/rook squares, used by castling legality checks.
const (
	SqA1 = Square(21)
	SqE1 = Square(25)
	SqH1 = Square(28)
	SqA8 = Square(91)
	SqE8 = Square(95)
	SqH8 = Square(98)
)
