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

// Castling is a 4-bit mask of the rights {WK,WQ,BK,BQ}, matching the
// FEN castling field order.
type Castling uint8

const (
	NoCastling Castling = 0
	WhiteOO    Castling = 1 << 0
	WhiteOOO   Castling = 1 << 1
	BlackOO    Castling = 1 << 2
	BlackOOO   Castling = 1 << 3
	AllCastling         = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// Has reports whether the mask includes right r.
func (c Castling) Has(r Castling) bool {
	return c&r != 0
}

// Clear returns the mask with right r removed.
func (c Castling) Clear(r Castling) Castling {
	return c &^ r
}

// KingSide returns the kingside right for color c.
func KingSide(c Color) Castling {
	if c == White {
		return WhiteOO
	}
	return BlackOO
}

// QueenSide returns the queenside right for color c.
func QueenSide(c Color) Castling {
	if c == White {
		return WhiteOOO
	}
	return BlackOOO
}

func (c Castling) String() string {
	if c == NoCastling {
		return "-"
	}
	s := ""
	if c.Has(WhiteOO) {
		s += "K"
	}
	if c.Has(WhiteOOO) {
		s += "Q"
	}
	if c.Has(BlackOO) {
		s += "k"
	}
	if c.Has(BlackOOO) {
		s += "q"
	}
	return s
}
