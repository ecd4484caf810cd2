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

package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/yossior/double-chess-sub000/internal/types"
)

var pieceFromFEN = map[rune]Piece{
	'P': MakePiece(White, Pawn), 'N': MakePiece(White, Knight), 'B': MakePiece(White, Bishop),
	'R': MakePiece(White, Rook), 'Q': MakePiece(White, Queen), 'K': MakePiece(White, King),
	'p': MakePiece(Black, Pawn), 'n': MakePiece(Black, Knight), 'b': MakePiece(Black, Bishop),
	'r': MakePiece(Black, Rook), 'q': MakePiece(Black, Queen), 'k': MakePiece(Black, King),
}

// setupFromFEN parses the piece placement / side / castling / ep fields
// required by spec §6, defaulting halfmove to 0 when absent.
func (p *Position) setupFromFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("fen needs at least 4 fields, got %d: %q", len(fields), fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen placement needs 8 ranks, got %d: %q", len(ranks), fields[0])
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pc, ok := pieceFromFEN[ch]
				if !ok {
					return fmt.Errorf("fen: invalid piece char %q", ch)
				}
				if file > 7 {
					return fmt.Errorf("fen: rank %d overflows files", rank+1)
				}
				p.put(pc, SquareOf(file, rank))
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %d has %d files, want 8", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	p.castling = NoCastling
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling |= WhiteOO
			case 'Q':
				p.castling |= WhiteOOO
			case 'k':
				p.castling |= BlackOO
			case 'q':
				p.castling |= BlackOOO
			default:
				return fmt.Errorf("fen: invalid castling char %q", ch)
			}
		}
	}

	p.epSquare = SquareNone
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return fmt.Errorf("fen: invalid en-passant square: %w", err)
		}
		p.epSquare = sq
	}

	p.halfmoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err == nil && n >= 0 {
			p.halfmoveClock = n
		}
	}

	p.fullmoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err == nil && n >= 1 {
			p.fullmoveNumber = n
		}
	}

	return nil
}

// FEN renders the current position back into FEN notation.
func (p *Position) FEN() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board[SquareOf(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())
	b.WriteByte(' ')
	b.WriteString(p.castling.String())
	b.WriteByte(' ')
	if p.epSquare == SquareNone {
		b.WriteByte('-')
	} else {
		b.WriteString(p.epSquare.String())
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.fullmoveNumber))
	return b.String()
}
