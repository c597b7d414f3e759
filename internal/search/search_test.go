/*
 * shatranj - a bitboard chess engine core
 *
 * MIT License
 *
 * Copyright (c) 2026 shatranj contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stannous/shatranj/internal/attacks"
	"github.com/stannous/shatranj/internal/config"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	attacks.Init()
	m.Run()
}

func newTestSearch() *Search {
	config.Settings.Search.UseBook = false
	config.Settings.Search.MateJitterSeed = 1
	return NewSearch()
}

func TestSearchFindsTheOnlyLegalMove(t *testing.T) {
	config.Setup()
	// White king on a1 in check from the rook on h1 along the first rank;
	// the black king on c3 covers b2, so Ka2 is the single escape.
	p, err := position.NewFromFEN("8/8/8/8/8/2k5/8/K6r w - -")
	require.NoError(t, err)

	s := newTestSearch()
	result := s.StartSearch(*p, Limits{Depth: 2})

	require.True(t, result.BestMove.IsValid())
	assert.Equal(t, SqA1, result.BestMove.From)
}

func TestSearchReportsForcedMate(t *testing.T) {
	config.Setup()
	// Classic back-rank mate: black king boxed in by its own pawns,
	// white rook delivering check along the open rank with no block or
	// capture available.
	p, err := position.NewFromFEN("4R1k1/5ppp/8/8/8/8/4K3/8 b - -")
	require.NoError(t, err)
	require.True(t, p.InCheck())

	s := newTestSearch()
	result := s.StartSearch(*p, Limits{Depth: 3})

	assert.True(t, result.BestValue.IsMate())
	assert.Less(t, int(result.BestValue), 0)
	assert.Equal(t, uint64(1), s.Statistics().Checkmates)
}

func TestSearchReportsStalemate(t *testing.T) {
	config.Setup()
	// Classic K+Q vs K stalemate: black to move, not in check, no move.
	p, err := position.NewFromFEN("k7/8/1QK5/8/8/8/8/8 b - -")
	require.NoError(t, err)
	require.False(t, p.InCheck())

	s := newTestSearch()
	result := s.StartSearch(*p, Limits{Depth: 3})

	assert.Equal(t, Value(config.Settings.Eval.StalemateScore), result.BestValue)
	assert.Equal(t, uint64(1), s.Statistics().Stalemates)
}

func TestSearchRespectsDepthLimit(t *testing.T) {
	config.Setup()
	p, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	s := newTestSearch()
	result := s.StartSearch(*p, Limits{Depth: 1})

	assert.Equal(t, 1, result.SearchDepth)
	require.True(t, result.BestMove.IsValid())
}

func TestSearchStopsAtNodeLimit(t *testing.T) {
	config.Setup()
	p, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	s := newTestSearch()
	result := s.StartSearch(*p, Limits{Depth: 10, Nodes: 50})

	// The node check only happens at search-tree boundaries, so a short
	// overshoot past the limit is expected; what matters is that it
	// stopped nowhere near an unbounded depth-10 search from the start
	// position.
	assert.Less(t, s.NodesVisited(), uint64(5000))
	require.True(t, result.BestMove.IsValid())
}

func TestSearchRoundTripsThroughTranspositionTable(t *testing.T) {
	config.Setup()
	config.Settings.Search.UseTT = true
	p, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	s := newTestSearch()
	first := s.StartSearch(*p, Limits{Depth: 3})
	require.True(t, first.BestMove.IsValid())

	second := s.StartSearch(*p, Limits{Depth: 3})
	assert.Equal(t, first.BestValue, second.BestValue)
	assert.Greater(t, s.Statistics().TTHits, uint64(0))
}

func TestStartSearchDoesNotMutateCaller(t *testing.T) {
	config.Setup()
	p, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)
	before := p.ZobristKey()

	s := newTestSearch()
	s.StartSearch(*p, Limits{Depth: 2})

	assert.Equal(t, before, p.ZobristKey())
}
