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

package movegen

import (
	"github.com/yossior/double-chess-sub000/internal/history"
	"github.com/yossior/double-chess-sub000/internal/moveslice"
	"github.com/yossior/double-chess-sub000/internal/position"
	"github.com/yossior/double-chess-sub000/internal/see"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// Ordering score bands (spec §4.3's table), highest first: the TT move
// always leads, then winning captures, promotions, killers and equal
// captures. Losing captures score 5000 plus MVV-LVA, so they order
// ahead of quiet moves whose history score is below that and behind
// those whose history score is above it.
const (
	scoreTT           = 2_000_000
	scoreWinningBase  = 100_000
	scorePromoBase    = 90_000
	scoreKiller1      = 80_000
	scoreKiller2      = 70_000
	scoreEqualBase    = 60_000
	scoreLosingBase   = 5_000
)

// mvvLva approximates "most valuable victim, least valuable attacker":
// victim value dominates, attacker value breaks ties in the attacker's
// favor (cheaper attacker orders first).
func mvvLva(pos *position.Position, m Move) int {
	return m.Captured.Type().Value()*16 - pos.At(m.From).Type().Value()
}

// order builds ms with one score per pseudo-legal candidate already
// filtered to legal moves, ready for moveslice.ScoredList.SortDescending.
//
// killers and hist may be nil, in which case those bands contribute
// nothing and killer-scored moves fall through to history scoring.
func order(pos *position.Position, legal *moveslice.MoveSlice, ttMove Move, killer1, killer2 Move, hist *history.Table, out *moveslice.ScoredList) {
	out.Clear()
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		out.PushBack(m, scoreOf(pos, m, ttMove, killer1, killer2, hist))
	}
	out.SortDescending()
}

func scoreOf(pos *position.Position, m Move, ttMove, killer1, killer2 Move, hist *history.Table) int {
	if m == ttMove {
		return scoreTT
	}
	if m.IsPromotion() {
		return scorePromoBase + m.Promotion.Value()
	}
	if m.IsCapture() {
		gain := see.Evaluate(pos, m)
		switch {
		case gain > 0:
			return scoreWinningBase + mvvLva(pos, m)
		case gain == 0:
			return scoreEqualBase + mvvLva(pos, m)
		default:
			return scoreLosingBase + mvvLva(pos, m)
		}
	}
	if m == killer1 {
		return scoreKiller1
	}
	if m == killer2 {
		return scoreKiller2
	}
	if hist != nil {
		mover := pos.At(m.From)
		return hist.Score(mover.Color(), mover.Type(), m.To)
	}
	return 0
}

// OrderedLegal generates every legal move for pos and scores it per
// spec §4.3, ready for the search to visit in descending order. killers
// and hist are supplied by the search, which owns them per-ply.
func (g *Generator) OrderedLegal(pos *position.Position, ttMove Move, killer1, killer2 Move, hist *history.Table, out *moveslice.ScoredList) *moveslice.ScoredList {
	legal := g.GenerateLegal(pos)
	order(pos, legal, ttMove, killer1, killer2, hist, out)
	return out
}
