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

// Package turn implements the double-move Turn Generator (spec §4.7):
// a turn is one or two consecutive moves by the same side, built on top
// of the single-move Move Generator and the variant's "flip turn back"
// fixup in internal/position.
package turn

import (
	"sort"

	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/config"
	"github.com/yossior/double-chess-sub000/internal/movegen"
	"github.com/yossior/double-chess-sub000/internal/moveslice"
	"github.com/yossior/double-chess-sub000/internal/position"
	"github.com/yossior/double-chess-sub000/internal/see"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// Turn is one or two moves played consecutively by the same side.
type Turn struct {
	Moves [2]Move
	Len   int
}

// FirstMove returns the turn's first (and possibly only) move.
func (t Turn) FirstMove() Move { return t.Moves[0] }

// IsSingle reports whether the turn is a single move.
func (t Turn) IsSingle() bool { return t.Len == 1 }

// Apply makes every move of t on pos, in order, applying the
// second-move fixup between them when Len == 2. It returns the state
// needed to Undo the turn.
type applied struct {
	prevSide Color
	prevEp   Square
}

// Apply makes the turn's moves on pos and returns a handle to undo it.
func (t Turn) Apply(pos *position.Position) applied {
	pos.DoMove(t.Moves[0])
	if t.Len == 1 {
		return applied{}
	}
	prevSide, prevEp := pos.BeginSecondMove()
	pos.DoMove(t.Moves[1])
	return applied{prevSide: prevSide, prevEp: prevEp}
}

// Undo reverses Apply, given the handle it returned.
func (t Turn) Undo(pos *position.Position, a applied) {
	if t.Len == 2 {
		pos.UndoMove()
		pos.EndSecondMove(a.prevSide, a.prevEp)
	}
	pos.UndoMove()
}

// Generator produces turns for a position, reusing the underlying move
// generator's buffers (spec §5's allocation discipline).
type Generator struct {
	moves *movegen.Generator
	turns []Turn
	order []scoredFirstMove
}

// New creates a turn generator.
func New() *Generator {
	return &Generator{
		moves: movegen.New(),
		turns: make([]Turn, 0, 256),
		order: make([]scoredFirstMove, 0, 64),
	}
}

// Moves exposes the underlying move generator, e.g. for GameResult.
func (g *Generator) Moves() *movegen.Generator { return g.moves }

type scoredFirstMove struct {
	move  Move
	score int
}

// Generate produces every turn available to the side to move, honoring
// maxMoves (1 forces single-move turns; 2 allows double-move turns with
// the pruning tiers of spec §4.7).
func (g *Generator) Generate(pos *position.Position, maxMoves int) []Turn {
	g.turns = g.turns[:0]

	firstMoves := g.moves.GenerateLegal(pos)
	n := firstMoves.Len()
	if n == 0 {
		return g.turns
	}

	if maxMoves == 1 {
		for i := 0; i < n; i++ {
			g.turns = append(g.turns, Turn{Moves: [2]Move{firstMoves.At(i)}, Len: 1})
		}
		return g.turns
	}

	g.order = g.order[:0]
	for i := 0; i < n; i++ {
		m := firstMoves.At(i)
		g.order = append(g.order, scoredFirstMove{move: m, score: scoreFirstMove(pos, m)})
	}
	sort.SliceStable(g.order, func(i, j int) bool { return g.order[i].score > g.order[j].score })

	fullTier := config.Settings.Search.FullExpansionTier
	tacticalTier := config.Settings.Search.TacticalExpansionTier

	for idx, sfm := range g.order {
		g.expandFirstMove(pos, sfm.move, idx, fullTier, tacticalTier)
	}
	return g.turns
}

func (g *Generator) expandFirstMove(pos *position.Position, m Move, idx, fullTier, tacticalTier int) {
	pos.DoMove(m)
	givesCheck := attacks.IsInCheck(pos, pos.SideToMove())

	switch {
	case idx < fullTier:
		if givesCheck {
			g.turns = append(g.turns, Turn{Moves: [2]Move{m}, Len: 1})
		} else {
			before := len(g.turns)
			g.appendSecondMoves(pos, m, false)
			if len(g.turns) == before {
				g.turns = append(g.turns, Turn{Moves: [2]Move{m}, Len: 1})
			}
		}
	case idx < tacticalTier:
		if givesCheck {
			g.turns = append(g.turns, Turn{Moves: [2]Move{m}, Len: 1})
			break
		}
		before := len(g.turns)
		g.appendSecondMoves(pos, m, true)
		if len(g.turns) == before {
			g.turns = append(g.turns, Turn{Moves: [2]Move{m}, Len: 1})
		}
	default:
		g.turns = append(g.turns, Turn{Moves: [2]Move{m}, Len: 1})
	}
	pos.UndoMove()
}

// appendSecondMoves enumerates legal (or, if tacticalOnly, legal
// tactical) second moves for the side that just played first, using
// the variant's side-to-move fixup, and appends one two-move turn per
// second move found.
func (g *Generator) appendSecondMoves(pos *position.Position, first Move, tacticalOnly bool) {
	prevSide, prevEp := pos.BeginSecondMove()
	var ms *moveslice.MoveSlice
	if tacticalOnly {
		ms = g.moves.GenerateTacticalLegal(pos)
	} else {
		ms = g.moves.GenerateLegal(pos)
	}
	for i := 0; i < ms.Len(); i++ {
		g.turns = append(g.turns, Turn{Moves: [2]Move{first, ms.At(i)}, Len: 2})
	}
	pos.EndSecondMove(prevSide, prevEp)
}

// scoreFirstMove ranks a candidate first move for pruning-tier
// selection (spec §4.7's first-move scoring paragraph): good captures
// by SEE, promotions, central destination, development, PST, and an
// enable-capture lookahead; king moves losing castling rights are
// penalized heavily, castling is boosted.
func scoreFirstMove(pos *position.Position, m Move) int {
	score := 0
	mover := pos.At(m.From)

	if m.IsCapture() {
		gain := see.Evaluate(pos, m)
		score += 50 + gain/4
	}
	if m.IsPromotion() {
		score += 400 + m.Promotion.Value()/2
	}
	if isCentralSquare(m.To) {
		score += 30
	}
	if (mover.Type() == Knight || mover.Type() == Bishop) && isHomeRank(m.From, mover.Color()) {
		score += 40
	}
	score += PstValue(mover.Type(), mover.Color(), m.To) / 4

	score += enableCaptureLookahead(pos, m)

	if mover.Type() == King {
		if m.Flag == Castle {
			score += 5000
		} else if pos.Castling().Has(KingSide(mover.Color())) || pos.Castling().Has(QueenSide(mover.Color())) {
			score -= 8000
		} else {
			score -= 2000
		}
	}
	return score
}

func isCentralSquare(sq Square) bool {
	f, r := sq.File(), sq.Rank()
	return (f == 3 || f == 4) && (r == 3 || r == 4)
}

func isHomeRank(sq Square, c Color) bool {
	if c == White {
		return sq.Rank() == 0
	}
	return sq.Rank() == 7
}

// enableCaptureLookahead bonuses a first move after which the same
// piece, or a freshly pushed pawn, threatens to capture a valuable
// target on the turn's second move -- the single strongest signal for
// which first moves deserve full second-move expansion.
func enableCaptureLookahead(pos *position.Position, m Move) int {
	pos.DoMove(m)
	defer pos.UndoMove()

	mover := pos.At(m.To)
	bonus := 0
	best := 0
	for sq := 0; sq < BoardSize; sq++ {
		s := Square(sq)
		if s.IsOffBoard() {
			continue
		}
		target := pos.At(s)
		if target == NoPiece || target.IsColor(mover.Color()) {
			continue
		}
		if canAttackAfterFixup(pos, m.To, s, mover) && target.Type().Value() > best {
			best = target.Type().Value()
		}
	}
	if best > 0 {
		bonus = 20 + best/20
	}
	return bonus
}

// canAttackAfterFixup reports whether the piece now on `from` attacks
// `to`, evaluated the way the attack oracle would for the pushed
// piece's own geometry.
func canAttackAfterFixup(pos *position.Position, from, to Square, mover Piece) bool {
	switch mover.Type() {
	case Knight:
		return jumpsTo(from, to, attacks.KnightOffsets[:])
	case King:
		return jumpsTo(from, to, attacks.KingOffsets[:])
	case Bishop:
		return slidesTo(pos, from, to, attacks.BishopDirs[:])
	case Rook:
		return slidesTo(pos, from, to, attacks.RookDirs[:])
	case Queen:
		return slidesTo(pos, from, to, attacks.BishopDirs[:]) || slidesTo(pos, from, to, attacks.RookDirs[:])
	case Pawn:
		return pawnCouldReach(pos, from, to, mover.Color())
	}
	return false
}

func jumpsTo(from, to Square, offsets []int) bool {
	for _, off := range offsets {
		if from+Square(off) == to {
			return true
		}
	}
	return false
}

func slidesTo(pos *position.Position, from, to Square, dirs []int) bool {
	for _, dir := range dirs {
		t := from + Square(dir)
		for !t.IsOffBoard() {
			if t == to {
				return true
			}
			if pos.At(t) != NoPiece {
				break
			}
			t += Square(dir)
		}
	}
	return false
}

// pawnCouldReach checks whether a pawn on `from` attacks `to`
// diagonally, i.e. could capture there with the turn's second move.
func pawnCouldReach(pos *position.Position, from, to Square, c Color) bool {
	dir := 1
	if c == Black {
		dir = -1
	}
	for _, fileOff := range [2]int{-1, 1} {
		if from+Square(dir*10+fileOff) == to {
			return true
		}
	}
	return false
}
