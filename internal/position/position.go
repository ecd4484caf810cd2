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

// Package position implements the Board State component (spec §4.1):
// a 10x12 mailbox position with incremental Make/Undo, Zobrist hashing,
// and position-occurrence tracking for repetition detection.
package position

import (
	"fmt"

	"github.com/yossior/double-chess-sub000/internal/assert"
	"github.com/yossior/double-chess-sub000/internal/logging"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

var log = logging.GetLog()

// maxPly bounds the undo history stack. A double-move game realistically
// never approaches this; it exists so Make/Undo never allocates (spec §5's
// allocation discipline).
const maxPly = 1024

// undoEntry is the UndoInfo of spec §3: everything needed to perfectly
// reverse one Make.
type undoEntry struct {
	move            Move
	movedPiece      Piece // piece that stood on move.From before the move (pawn, even for promotions)
	capturedSquare  Square
	prevCastling    Castling
	prevEpSquare    Square
	prevHalfmove    int
	prevZobrist     Key
}

// Position is the mutable board state. Create with New() or NewFEN().
// All mutation happens through DoMove/UndoMove.
type Position struct {
	board [BoardSize]Piece

	whiteKingSq Square
	blackKingSq Square

	castling   Castling
	epSquare   Square
	sideToMove Color

	halfmoveClock  int
	fullmoveNumber int

	zobristKey Key

	history      [maxPly]undoEntry
	historyTop   int

	// positionHistory is the occurrence multiset of spec §3, seeded
	// from the position the dispatcher was given and grown by one
	// entry per ply made since.
	positionHistory map[Key]int
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New returns a Position set up at the standard starting position.
func New() *Position {
	p, err := NewFEN(StartFEN)
	if err != nil {
		panic("position: invalid built-in start FEN: " + err.Error())
	}
	return p
}

// NewFEN parses a FEN string (spec §6: at least the first four fields;
// halfmove defaults to 0 if missing) and returns a ready Position.
func NewFEN(fen string) (*Position, error) {
	p := &Position{
		epSquare:        SquareNone,
		positionHistory: make(map[Key]int, 64),
	}
	for i := range p.board {
		p.board[i] = OffBoard
	}
	for sq := 0; sq < BoardSize; sq++ {
		if !Square(sq).IsOffBoard() {
			p.board[sq] = NoPiece
		}
	}
	if err := p.setupFromFEN(fen); err != nil {
		log.Errorf("fen for position setup not valid: %s", err)
		return nil, err
	}
	p.zobristKey = p.computeZobrist()
	p.positionHistory[p.zobristKey] = 1
	return p, nil
}

// Clone makes a deep copy, the only place spec §9 permits cloning a
// Position (the dispatcher boundary) rather than Make/Undo.
func (p *Position) Clone() *Position {
	c := *p
	c.positionHistory = make(map[Key]int, len(p.positionHistory))
	for k, v := range p.positionHistory {
		c.positionHistory[k] = v
	}
	return &c
}

// At returns the piece standing on sq (NoPiece if empty, OffBoard if
// off the 64 interior squares).
func (p *Position) At(sq Square) Piece {
	return p.board[sq]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// Castling returns the current castling-rights mask.
func (p *Position) Castling() Castling {
	return p.castling
}

// EnPassant returns the en-passant target square and whether one is set.
func (p *Position) EnPassant() (Square, bool) {
	return p.epSquare, p.epSquare != SquareNone
}

// HalfmoveClock returns the number of plies since the last pawn move
// or capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// Key returns the current Zobrist fingerprint.
func (p *Position) Key() Key {
	return p.zobristKey
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	if c == White {
		return p.whiteKingSq
	}
	return p.blackKingSq
}

// RepetitionCount returns how many times the current position has
// occurred in positionHistory (including the current occurrence).
func (p *Position) RepetitionCount() int {
	return p.positionHistory[p.zobristKey]
}

// computeZobrist recomputes the hash from scratch; used only at
// construction time and by the property test that checks incremental
// maintenance against a fresh computation (spec §8).
func (p *Position) computeZobrist() Key {
	var key Key
	for sq := 0; sq < BoardSize; sq++ {
		s := Square(sq)
		if s.IsOffBoard() {
			continue
		}
		if pc := p.board[s]; pc != NoPiece {
			key ^= ZobristPiece(pc, s)
		}
	}
	key ^= ZobristCastling(p.castling)
	if p.epSquare != SquareNone {
		key ^= ZobristEpFile(p.epSquare.File())
	}
	if p.sideToMove == Black {
		key ^= ZobristSideToMove()
	}
	return key
}

func (p *Position) put(pc Piece, sq Square) {
	p.board[sq] = pc
	if pc.Type() == King {
		if pc.Color() == White {
			p.whiteKingSq = sq
		} else {
			p.blackKingSq = sq
		}
	}
}

func (p *Position) remove(sq Square) Piece {
	pc := p.board[sq]
	p.board[sq] = NoPiece
	return pc
}

// DoMove applies move m. m is assumed pseudo-legal; the move generator
// and Make/Undo never validate or report errors (spec §7's propagation
// policy) -- illegality is filtered earlier by the legal generator.
func (p *Position) DoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(p.historyTop < maxPly, "Position DoMove: history overflow")
	}

	from, to := m.From, m.To
	movedPiece := p.board[from]

	e := &p.history[p.historyTop]
	e.move = m
	e.movedPiece = movedPiece
	e.prevCastling = p.castling
	e.prevEpSquare = p.epSquare
	e.prevHalfmove = p.halfmoveClock
	e.prevZobrist = p.zobristKey
	p.historyTop++

	// Remove the departing piece's contribution, replaced below once
	// it (or its promoted form) is placed on `to`.
	p.zobristKey ^= ZobristPiece(movedPiece, from)
	p.remove(from)

	capturedSquare := to
	switch m.Flag {
	case EnPassant:
		capturedSquare = SquareOf(to.File(), from.Rank())
	}
	e.capturedSquare = capturedSquare

	if m.IsCapture() {
		captured := p.board[capturedSquare]
		p.zobristKey ^= ZobristPiece(captured, capturedSquare)
		p.remove(capturedSquare)
	}

	placed := movedPiece
	if m.Promotion != NoPieceType {
		placed = MakePiece(movedPiece.Color(), m.Promotion)
	}
	p.put(placed, to)
	p.zobristKey ^= ZobristPiece(placed, to)

	if m.Flag == Castle {
		p.moveCastlingRook(movedPiece.Color(), to)
	}

	// Castling rights: XOR out the old mask, update, XOR in the new one.
	p.zobristKey ^= ZobristCastling(p.castling)
	p.updateCastlingRights(m, movedPiece, capturedSquare)
	p.zobristKey ^= ZobristCastling(p.castling)

	// En-passant square: XOR out the old file contribution, set the new
	// target (only on a double push), XOR in the new contribution.
	if p.epSquare != SquareNone {
		p.zobristKey ^= ZobristEpFile(p.epSquare.File())
	}
	if m.Flag == DoublePush {
		dir := 1
		if movedPiece.Color() == Black {
			dir = -1
		}
		p.epSquare = SquareOf(to.File(), to.Rank()-dir)
		p.zobristKey ^= ZobristEpFile(p.epSquare.File())
	} else {
		p.epSquare = SquareNone
	}

	if movedPiece.Type() == Pawn || m.IsCapture() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if p.sideToMove == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = p.sideToMove.Opponent()
	p.zobristKey ^= ZobristSideToMove()

	p.positionHistory[p.zobristKey]++
}

// UndoMove reverts the most recent DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyTop > 0, "Position UndoMove: nothing to undo")
	}

	p.positionHistory[p.zobristKey]--
	if p.positionHistory[p.zobristKey] <= 0 {
		delete(p.positionHistory, p.zobristKey)
	}

	p.historyTop--
	e := &p.history[p.historyTop]
	m := e.move

	p.sideToMove = p.sideToMove.Opponent()
	if p.sideToMove == Black {
		p.fullmoveNumber--
	}

	p.remove(m.To)
	if m.Flag == Castle {
		p.undoCastlingRook(e.movedPiece.Color(), m.To)
	}
	p.put(e.movedPiece, m.From)

	if m.IsCapture() {
		p.put(m.Captured, e.capturedSquare)
	}

	p.castling = e.prevCastling
	p.epSquare = e.prevEpSquare
	p.halfmoveClock = e.prevHalfmove
	p.zobristKey = e.prevZobrist
}

// BeginSecondMove implements the variant's "flip turn back" subtlety
// (spec §9): after the first move of a double-move turn, DoMove has
// already flipped the side to move and may have set an en-passant
// target, both standard-chess behaviors that don't apply mid-turn --
// the same side plays again and cannot en-passant-capture its own
// pawn. It returns the pre-fixup side and ep square so the caller can
// reverse the fixup with EndSecondMove once the second move is undone.
func (p *Position) BeginSecondMove() (prevSide Color, prevEp Square) {
	prevSide, prevEp = p.sideToMove, p.epSquare
	p.zobristKey ^= ZobristSideToMove()
	if prevEp != SquareNone {
		p.zobristKey ^= ZobristEpFile(prevEp.File())
	}
	p.sideToMove = prevSide.Opponent()
	p.epSquare = SquareNone
	return prevSide, prevEp
}

// EndSecondMove reverses BeginSecondMove's fixup, given the values it
// returned. Call this after UndoMove has undone the second move.
func (p *Position) EndSecondMove(prevSide Color, prevEp Square) {
	p.zobristKey ^= ZobristSideToMove()
	if prevEp != SquareNone {
		p.zobristKey ^= ZobristEpFile(prevEp.File())
	}
	p.sideToMove = prevSide
	p.epSquare = prevEp
}

func (p *Position) moveCastlingRook(c Color, kingTo Square) {
	rookFrom, rookTo := castlingRookSquares(c, kingTo)
	rook := p.board[rookFrom]
	p.zobristKey ^= ZobristPiece(rook, rookFrom)
	p.remove(rookFrom)
	p.put(rook, rookTo)
	p.zobristKey ^= ZobristPiece(rook, rookTo)
}

func (p *Position) undoCastlingRook(c Color, kingTo Square) {
	rookFrom, rookTo := castlingRookSquares(c, kingTo)
	rook := p.remove(rookTo)
	p.put(rook, rookFrom)
}

// castlingRookSquares returns the rook's (from,to) for a king castling
// move ending on kingTo.
func castlingRookSquares(c Color, kingTo Square) (Square, Square) {
	rank := 0
	if c == Black {
		rank = 7
	}
	if kingTo.File() == 6 { // g-file: kingside
		return SquareOf(7, rank), SquareOf(5, rank)
	}
	return SquareOf(0, rank), SquareOf(3, rank) // c-file: queenside
}

func (p *Position) updateCastlingRights(m Move, movedPiece Piece, capturedSquare Square) {
	if movedPiece.Type() == King {
		p.castling = p.castling.Clear(KingSide(movedPiece.Color())).Clear(QueenSide(movedPiece.Color()))
		return
	}
	if movedPiece.Type() == Rook {
		p.clearRookRight(movedPiece.Color(), m.From)
	}
	// A captured rook on its home square removes that side's right,
	// regardless of which piece captured it.
	if m.IsCapture() {
		p.clearRookRightIfHome(capturedSquare)
	}
}

func (p *Position) clearRookRight(c Color, from Square) {
	rank := 0
	if c == Black {
		rank = 7
	}
	switch from {
	case SquareOf(7, rank):
		p.castling = p.castling.Clear(KingSide(c))
	case SquareOf(0, rank):
		p.castling = p.castling.Clear(QueenSide(c))
	}
}

func (p *Position) clearRookRightIfHome(sq Square) {
	switch sq {
	case SqH1:
		p.castling = p.castling.Clear(WhiteOO)
	case SqA1:
		p.castling = p.castling.Clear(WhiteOOO)
	case SqH8:
		p.castling = p.castling.Clear(BlackOO)
	case SqA8:
		p.castling = p.castling.Clear(BlackOOO)
	}
}

// String renders a human-readable board, rank 8 at the top.
func (p *Position) String() string {
	s := ""
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			s += p.board[SquareOf(file, rank)].String() + " "
		}
		s += "\n"
	}
	s += "   a b c d e f g h\n"
	s += fmt.Sprintf("side=%v castling=%v ep=%v halfmove=%d key=%x\n",
		p.sideToMove, p.castling, p.epSquare, p.halfmoveClock, p.zobristKey)
	return s
}
