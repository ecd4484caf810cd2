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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/yossior/double-chess-sub000/internal/types"
)

func TestStoreAndProbeRoundTrip(t *testing.T) {
	tt := New(16)
	m := Move{From: SquareOf(4, 1), To: SquareOf(4, 3)}
	tt.Store(Key(42), 100, 5, Exact, m)

	e, ok := tt.Probe(Key(42))
	assert.True(t, ok)
	assert.Equal(t, 100, e.Score)
	assert.Equal(t, 5, e.Depth)
	assert.Equal(t, Exact, e.Bound)
	assert.Equal(t, m, e.Move)

	_, ok = tt.Probe(Key(99))
	assert.False(t, ok)
}

func TestStoreKeepsDeeperEntry(t *testing.T) {
	tt := New(16)
	tt.Store(Key(1), 100, 8, Exact, Move{})
	tt.Store(Key(1), 200, 3, Exact, Move{})

	e, ok := tt.Probe(Key(1))
	assert.True(t, ok)
	assert.Equal(t, 8, e.Depth)
	assert.Equal(t, 100, e.Score)
}

func TestStoreOverwritesShallowerOrEqualEntry(t *testing.T) {
	tt := New(16)
	tt.Store(Key(1), 100, 3, Exact, Move{})
	tt.Store(Key(1), 200, 3, LowerBound, Move{})

	e, ok := tt.Probe(Key(1))
	assert.True(t, ok)
	assert.Equal(t, 200, e.Score)
	assert.Equal(t, LowerBound, e.Bound)
}

func TestStoreEvictsHalfOnOverflow(t *testing.T) {
	tt := New(4)
	for i := 0; i < 4; i++ {
		tt.Store(Key(i), i, 1, Exact, Move{})
	}
	assert.Equal(t, 4, tt.Len())

	tt.Store(Key(100), 100, 1, Exact, Move{})
	assert.Equal(t, 3, tt.Len())
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(16)
	tt.Store(Key(1), 1, 1, Exact, Move{})
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	_, ok := tt.Probe(Key(1))
	assert.False(t, ok)
}

func TestNewSizedMBProducesPositiveCapacity(t *testing.T) {
	tt := NewSizedMB(1)
	assert.NotNil(t, tt)
	tt.Store(Key(1), 1, 1, Exact, Move{})
	_, ok := tt.Probe(Key(1))
	assert.True(t, ok)
}
