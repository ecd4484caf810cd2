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

// Package search implements search_turn (spec §4.7): turn-level
// negamax with alpha-beta, a transposition table, killer/history
// tables updated on beta cutoffs, contempt-adjusted draw scoring, and
// 50-move proximity blending. Turn ordering does not consult the
// killer/history tables.
package search

import (
	"github.com/yossior/double-chess-sub000/internal/attacks"
	"github.com/yossior/double-chess-sub000/internal/config"
	"github.com/yossior/double-chess-sub000/internal/evaluator"
	"github.com/yossior/double-chess-sub000/internal/history"
	"github.com/yossior/double-chess-sub000/internal/logging"
	"github.com/yossior/double-chess-sub000/internal/position"
	"github.com/yossior/double-chess-sub000/internal/transpositiontable"
	"github.com/yossior/double-chess-sub000/internal/turn"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// MateScore is the mate score magnitude; a found mate is reported as
// MateScore minus the ply it was found at, so shallower mates score
// higher (spec §4.7 step 4).
const MateScore = 1_000_000

var log = logging.GetSearchLog()

// Engine owns everything one search request needs: the transposition
// table, the turn generator (and through it, the move generator's
// reusable buffers), and the killer/history tables. Create one per
// dispatcher instance and reuse it across requests, or per-request for
// a clean TT (spec §5's "Shared resources" either choice).
type Engine struct {
	tt      *transpositiontable.Table
	turns   *turn.Generator
	killers *history.Table
	stats   Statistics
}

// New creates a search engine sized from the current configuration.
func New() *Engine {
	return &Engine{
		tt:      transpositiontable.NewSizedMB(config.Settings.Search.TTSizeMB),
		turns:   turn.New(),
		killers: history.New(),
	}
}

// Statistics returns the node counters accumulated by the most recent
// FindBestTurn call.
func (e *Engine) Statistics() Statistics { return e.stats }

// FindBestTurn runs the root search of spec §4.7: it scores every
// legal turn without alpha-beta pruning and picks the best by
// (main_score, quiet_score). maxMoves selects single-move
// (balanced-first-turn) or double-move turns at the root only --
// deeper plies always search full double-move turns.
func (e *Engine) FindBestTurn(pos *position.Position, depth, maxMoves int) (turn.Turn, bool) {
	e.stats.reset()

	turns := e.turns.Generate(pos, maxMoves)
	if len(turns) == 0 {
		return turn.Turn{}, false
	}
	turn.Order(pos, turns)

	color := pos.SideToMove()
	var best turn.Turn
	bestMain := -MateScore * 2
	bestQuiet := -MateScore * 2

	for i, t := range turns {
		quiet := quietScore(pos, t, color)
		a := t.Apply(pos)
		score := -e.searchTurn(pos, depth-1, -MateScore*2, MateScore*2, color.Opponent(), 1)
		t.Undo(pos, a)

		if i == 0 || score > bestMain || (score == bestMain && quiet > bestQuiet) {
			best, bestMain, bestQuiet = t, score, quiet
		}
	}
	log.Debugf("search complete: nodes=%d leaves=%d tt_hits=%d cutoffs=%d", e.stats.Nodes, e.stats.Leaves, e.stats.TTHits, e.stats.BetaCutoffs)
	return best, true
}

// searchTurn is the recursive negamax of spec §4.7's numbered
// algorithm, returning a score from `color`'s perspective. color is
// always the side to move on entry.
func (e *Engine) searchTurn(pos *position.Position, depth, alpha, beta int, color Color, ply int) int {
	e.stats.Nodes++

	if pos.RepetitionCount() >= 3 || pos.HalfmoveClock() >= 100 {
		return e.drawScoreFor(pos, color)
	}
	if depth <= 0 {
		e.stats.Leaves++
		return e.leafScore(pos, color)
	}

	originalAlpha := alpha
	useTT := config.Settings.Search.UseTT
	if useTT {
		if entry, ok := e.tt.Probe(pos.Key()); ok && entry.Depth >= depth {
			e.stats.TTHits++
			if usable(entry, alpha, beta) {
				e.stats.TTCutoffs++
				return entry.Score
			}
		}
	}

	turns := e.turns.Generate(pos, 2)
	if len(turns) == 0 {
		if attacks.IsInCheck(pos, color) {
			e.stats.Checkmates++
			return -MateScore + ply
		}
		e.stats.Stalemates++
		return e.drawScoreFor(pos, color)
	}
	turn.Order(pos, turns)

	best := -MateScore * 2
	var bestMove Move
	for _, t := range turns {
		a := t.Apply(pos)
		score := e.scoreChild(pos, t, depth, alpha, beta, color, ply)
		t.Undo(pos, a)

		if score > best {
			best = score
			bestMove = t.FirstMove()
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			e.stats.BetaCutoffs++
			if config.Settings.Search.UseKillers && !t.FirstMove().IsTactical() {
				e.killers.AddKiller(ply, t.FirstMove())
			}
			if config.Settings.Search.UseHistory && !t.FirstMove().IsTactical() {
				mover := pos.At(t.FirstMove().From)
				e.killers.Bump(mover.Color(), mover.Type(), t.FirstMove().To, depth)
			}
			break
		}
	}

	if useTT {
		bound := transpositiontable.Exact
		switch {
		case best <= originalAlpha:
			bound = transpositiontable.UpperBound
		case best >= beta:
			bound = transpositiontable.LowerBound
		}
		e.tt.Store(pos.Key(), best, depth, bound, bestMove)
	}
	return best
}

// scoreChild applies the repetition-aware recursion rule of spec §4.7
// step 6: a third occurrence is scored as the negated draw score
// outright; a second occurrence recurses normally but is clamped
// toward the draw score when the side about to move appears to be
// losing, since a losing side facing a repetition will simply take it.
func (e *Engine) scoreChild(pos *position.Position, t turn.Turn, depth, alpha, beta int, color Color, ply int) int {
	switch pos.RepetitionCount() {
	case 3:
		return -e.drawScoreFor(pos, color.Opponent())
	case 2:
		child := -e.searchTurn(pos, depth-1, -beta, -alpha, color.Opponent(), ply+1)
		if materialFavors(pos, color) {
			draw := e.drawScoreFor(pos, color)
			child = (child + draw) / 2
		}
		return child
	default:
		return -e.searchTurn(pos, depth-1, -beta, -alpha, color.Opponent(), ply+1)
	}
}

// leafScore is search_turn step 2: the evaluator's score (with the
// hanging-piece adjustment), blended toward the contempt-adjusted draw
// score as the halfmove clock nears the 50-move boundary.
func (e *Engine) leafScore(pos *position.Position, color Color) int {
	raw := evaluator.Evaluate(pos, color)
	draw := e.drawScoreFor(pos, color)
	return blendTowardDraw(raw, draw, pos.HalfmoveClock())
}

// drawScoreFor returns the contempt-adjusted draw score (spec §4.5)
// from color's perspective.
func (e *Engine) drawScoreFor(pos *position.Position, color Color) int {
	draw := contemptDrawScore(evaluator.Static(pos))
	if color == Black {
		draw = -draw
	}
	return draw
}

// materialFavors reports whether color is ahead by more than the
// contempt threshold, the signal spec §4.7 step 6 uses to predict that
// the opponent about to move would welcome a repetition.
func materialFavors(pos *position.Position, color Color) bool {
	eval := evaluator.Static(pos)
	if color == Black {
		eval = -eval
	}
	return eval > config.Settings.Search.ContemptThreshold
}

// usable reports whether a TT entry's stored bound permits returning
// its score directly under the current alpha-beta window (spec §4.6).
func usable(e transpositiontable.Entry, alpha, beta int) bool {
	switch e.Bound {
	case transpositiontable.Exact:
		return true
	case transpositiontable.LowerBound:
		return e.Score >= beta
	case transpositiontable.UpperBound:
		return e.Score <= alpha
	default:
		return false
	}
}
