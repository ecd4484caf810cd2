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

// Package dispatcher implements the Request Dispatcher (spec §4.8): the
// stable entry point that parses a FEN, runs the search, and returns a
// response or error tagged with the caller's request id. One request
// is in flight per Dispatcher at a time, enforced with a weighted
// semaphore the way a worker-pool gate would be built against
// golang.org/x/sync in the rest of this pack.
package dispatcher

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/yossior/double-chess-sub000/internal/config"
	"github.com/yossior/double-chess-sub000/internal/logging"
	"github.com/yossior/double-chess-sub000/internal/movegen"
	"github.com/yossior/double-chess-sub000/internal/position"
	"github.com/yossior/double-chess-sub000/internal/search"
)

var log = logging.GetDispatchLog()

// Kinds accepted on Request.Kind and returned on Response.Kind.
const (
	KindInit         = "init"
	KindFindBestTurn = "find_best_turn"
	KindReady        = "ready"
	KindBestTurn     = "best_turn"
	KindError        = "error"
)

// Request is the single input message shape of spec §6, plus Balanced
// (spec §9 supplement): the FEN alone cannot tell the engine "this is
// the game's very first turn", which is what the optional balanced
// opening rule (spec §1) needs to force a single-move turn regardless
// of max_moves. Callers replaying a balanced game set it only on that
// first request.
type Request struct {
	Kind      string `json:"kind"`
	Fen       string `json:"fen"`
	Skill     int    `json:"skill"`
	MaxMoves  int    `json:"max_moves"`
	RequestID int64  `json:"request_id"`
	Balanced  bool   `json:"balanced,omitempty"`
}

// Response is the single output message shape of spec §6. Fields not
// meaningful for a given Kind are omitted by the json tags.
type Response struct {
	Kind      string    `json:"kind"`
	RequestID int64     `json:"request_id,omitempty"`
	Moves     []MoveOut `json:"moves,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// Dispatcher owns one search engine and admits one in-flight request at
// a time (spec §5's single-threaded cooperative model; spec §4.8's
// "at-most-one in-flight request per dispatcher instance").
type Dispatcher struct {
	engine *search.Engine
	sanGen *movegen.Generator
	sem    *semaphore.Weighted
}

// New creates a dispatcher with a fresh search engine.
func New() *Dispatcher {
	return &Dispatcher{
		engine: search.New(),
		sanGen: movegen.New(),
		sem:    semaphore.NewWeighted(1),
	}
}

// HandleRequest processes one request to completion, blocking until any
// request already in flight on this dispatcher finishes. ctx governs
// only the wait for that slot, not the search itself: spec §5 assigns
// cancellation-during-search to the caller's wall-clock timeout policy,
// not to the engine.
func (d *Dispatcher) HandleRequest(ctx context.Context, req Request) Response {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return errorResponse(req.RequestID, "request queue wait canceled: "+err.Error())
	}
	defer d.sem.Release(1)

	return d.handle(req)
}

// handle dispatches by kind and is the recover() boundary of spec §7's
// "internal invariant violation" tier: a panic from a programmer bug
// deep in search or move generation becomes a generic error response
// instead of taking down the caller's process.
func (d *Dispatcher) handle(req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("internal invariant violation handling request %d: %v", req.RequestID, r)
			resp = errorResponse(req.RequestID, "internal error")
		}
	}()

	switch req.Kind {
	case KindInit:
		config.Setup()
		return Response{Kind: KindReady}
	case KindFindBestTurn:
		return d.handleFindBestTurn(req)
	default:
		return errorResponse(req.RequestID, fmt.Sprintf("unknown request kind %q", req.Kind))
	}
}

func (d *Dispatcher) handleFindBestTurn(req Request) Response {
	if req.MaxMoves != 1 && req.MaxMoves != 2 {
		return errorResponse(req.RequestID, fmt.Sprintf("max_moves must be 1 or 2, got %d", req.MaxMoves))
	}
	depth, ok := config.Settings.Search.SkillDepth[req.Skill]
	if !ok {
		return errorResponse(req.RequestID, fmt.Sprintf("skill must be one of %v, got %d", skillLevels(), req.Skill))
	}

	pos, err := position.NewFEN(req.Fen)
	if err != nil {
		return errorResponse(req.RequestID, "invalid fen: "+err.Error())
	}

	maxMoves := req.MaxMoves
	if req.Balanced {
		maxMoves = 1
	}
	best, found := d.engine.FindBestTurn(pos, depth, maxMoves)
	if !found {
		return errorResponse(req.RequestID, "no legal moves")
	}

	moves := buildMoves(pos, best, d.sanGen)
	log.Debugf("request %d: best turn %v", req.RequestID, moves)
	return Response{Kind: KindBestTurn, RequestID: req.RequestID, Moves: moves}
}

func skillLevels() []int {
	levels := make([]int, 0, len(config.Settings.Search.SkillDepth))
	for k := range config.Settings.Search.SkillDepth {
		levels = append(levels, k)
	}
	return levels
}

func errorResponse(requestID int64, message string) Response {
	return Response{Kind: KindError, RequestID: requestID, Message: message}
}
