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
	"github.com/yossior/double-chess-sub000/internal/position"
	. "github.com/yossior/double-chess-sub000/internal/types"
)

// Perft counts the leaf nodes reachable in depth plies of ordinary
// (single-move) chess from pos, the classic move-generator correctness
// check. It is not turn-aware -- it exercises Position and Generator
// independently of the double-move turn rules.
func Perft(pos *position.Position, depth int) uint64 {
	return perft(pos, depth)
}

// perft uses a fresh Generator per recursion depth rather than one
// shared instance: GenerateLegal returns a slice owned by the
// generator, and a shared instance would have that slice overwritten
// by the recursive call before the loop below finishes reading it.
func perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	g := New()
	legal := g.GenerateLegal(pos)
	if depth == 1 {
		return uint64(legal.Len())
	}
	moves := make([]Move, legal.Len())
	for i := range moves {
		moves[i] = legal.At(i)
	}
	var nodes uint64
	for _, m := range moves {
		pos.DoMove(m)
		nodes += perft(pos, depth-1)
		pos.UndoMove()
	}
	return nodes
}
