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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContemptDrawScoreStronglyNegativeWhenAhead(t *testing.T) {
	// White far ahead on material must see a negative (unattractive)
	// draw score, steering the search away from repeating.
	assert.Less(t, contemptDrawScore(500), 0)
}

func TestContemptDrawScorePositiveWhenBehind(t *testing.T) {
	// White far behind must see a positive (attractive) draw score,
	// steering the search toward repeating.
	assert.Greater(t, contemptDrawScore(-500), 0)
}

func TestContemptDrawScoreFlatNearEqual(t *testing.T) {
	assert.Less(t, contemptDrawScore(0), 0)
	assert.Equal(t, contemptDrawScore(0), contemptDrawScore(50))
}

func TestContemptDrawScoreSymmetric(t *testing.T) {
	assert.Equal(t, contemptDrawScore(500), -contemptDrawScore(-500))
}
