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

package search

import (
	"github.com/yossior/double-chess-sub000/internal/config"
)

// blendTowardDraw blends rawScore toward the contempt-adjusted draw
// score as the halfmove clock approaches the 50-move boundary (spec
// §4.5's final paragraph). Both scores are from the same perspective
// as rawScore.
func blendTowardDraw(rawScore, drawScore, halfmoveClock int) int {
	pliesToDraw := 100 - halfmoveClock
	w := &config.Settings.Search

	var weight int
	switch {
	case pliesToDraw <= w.BlendNear5Plies:
		weight = w.BlendNear5Weight
	case pliesToDraw <= w.BlendNear10Plies:
		weight = w.BlendNear10Weight
	case pliesToDraw <= w.BlendNear20Plies:
		weight = w.BlendNear20Weight
	default:
		return rawScore
	}
	return (rawScore*(100-weight) + drawScore*weight) / 100
}
