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

// Package types holds the small value types shared by every layer of the
// engine: colors, piece codes, squares on the 10x12 mailbox, and moves.
package types

import "fmt"

// PieceType is the magnitude of a Piece, independent of color.
type PieceType int8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Value is the material value of a piece type, in centipawn-like units.
// Pawn is intentionally devalued to 80: in double-move play a whole turn
// spent winning a pawn is usually a bad trade against tempo.
func (pt PieceType) Value() int {
	switch pt {
	case Pawn:
		return 80
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 20000
	default:
		return 0
	}
}

// Color is White or Black, encoded so that Piece = Color * PieceType.
type Color int8

const (
	White Color = 1
	Black Color = -1
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return -c
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Piece is a signed small integer: magnitude in {1..6} is the piece type,
// sign is the color. Zero is an empty square. OffBoard marks mailbox
// padding squares and never appears on an interior square.
type Piece int8

const (
	NoPiece  Piece = 0
	OffBoard Piece = 99
)

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c) * Piece(pt)
}

// Color returns the piece's color. Only valid for non-empty, non-OffBoard pieces.
func (p Piece) Color() Color {
	if p < 0 {
		return Black
	}
	return White
}

// Type returns the piece's type, stripping color.
func (p Piece) Type() PieceType {
	if p == NoPiece || p == OffBoard {
		return NoPieceType
	}
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

// IsColor reports whether the piece belongs to color c. Empty/off-board
// squares never match.
func (p Piece) IsColor(c Color) bool {
	if p == NoPiece || p == OffBoard {
		return false
	}
	if c == White {
		return p > 0
	}
	return p < 0
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "."
	case OffBoard:
		return "#"
	}
	s := p.Type().String()
	if p.Color() == White {
		return fmt.Sprintf("%c", []byte(s)[0]-('a'-'A'))
	}
	return s
}
