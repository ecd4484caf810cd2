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

// contemptDrawScore returns the contempt-adjusted draw score (spec
// §4.5's "Contempt" subsection) from White's perspective, given the
// material evaluation (also White's perspective): a side materially
// ahead is steered away from repeating, a side materially behind is
// steered toward it.
func contemptDrawScore(materialEval int) int {
	w := &config.Settings.Search
	threshold := w.ContemptThreshold
	base := w.ContemptBase
	max := w.ContemptMax

	switch {
	case materialEval > threshold:
		scaled := materialEval / 10
		if scaled > max {
			scaled = max
		}
		return -(50 + scaled)
	case materialEval < -threshold:
		scaled := -materialEval / 10
		if scaled > max {
			scaled = max
		}
		return 50 + scaled
	default:
		return -base
	}
}
