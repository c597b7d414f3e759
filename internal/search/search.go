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

// Package search implements the iterative-deepening, negamax/PVS
// alpha-beta searcher. The core itself is single-threaded
// and synchronous: StartSearch runs to completion on the
// caller's goroutine and stack before returning; the semaphore only
// makes a second concurrent StartSearch call against the same
// instance wait for the first, it does not background the search.
package search

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/stannous/shatranj/internal/config"
	"github.com/stannous/shatranj/internal/evaluator"
	myLogging "github.com/stannous/shatranj/internal/logging"
	"github.com/stannous/shatranj/internal/movegen"
	"github.com/stannous/shatranj/internal/moveslice"
	"github.com/stannous/shatranj/internal/openingbook"
	"github.com/stannous/shatranj/internal/position"
	"github.com/stannous/shatranj/internal/transpositiontable"
	. "github.com/stannous/shatranj/internal/types"
)

// Result is what a search call returns: the move to play, a move to
// ponder on if one is known, and the score and depth behind it.
type Result struct {
	BestMove    Move
	PonderMove  Move
	BestValue   Value
	SearchDepth int
	Nodes       uint64
	SearchTime  time.Duration
	Pv          moveslice.MoveSlice
	BookMove    bool
}

// Search holds the state one search call needs: move generators and PV
// buffers per ply, the transposition table, opening book and
// evaluator, and the mate-jitter RNG. Create with NewSearch.
type Search struct {
	log *logging.Logger

	running *semaphore.Weighted

	tt   *transpositiontable.TtTable
	book *openingbook.Book
	eval *evaluator.Evaluator
	rnd  *rand.Rand

	stopFlag     int32
	nodesVisited uint64
	nodeLimit    uint64

	mg        []*movegen.Movegen
	pv        []*moveslice.MoveSlice
	rootMoves *moveslice.MoveSlice

	statistics Statistics
	lastResult *Result
}

// NewSearch creates a ready-to-use Search. The transposition table and
// opening book are created lazily on first use, per config.
func NewSearch() *Search {
	return &Search{
		log:     myLogging.GetLog(),
		running: semaphore.NewWeighted(1),
		eval:    evaluator.NewEvaluator(),
		rnd:     newMateJitterRand(),
	}
}

func newMateJitterRand() *rand.Rand {
	seed := config.Settings.Search.MateJitterSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// StartSearch runs a complete iterative-deepening search on a copy of
// pos and returns the result. It blocks until the search finishes;
// rules out suspension points inside the core, so there is no
// asynchronous variant. The semaphore exists only to serialize callers
// that invoke StartSearch concurrently on the same Search instance.
func (s *Search) StartSearch(pos position.Position, sl Limits) *Result {
	_ = s.running.Acquire(context.Background(), 1)
	defer s.running.Release(1)
	return s.run(&pos, &sl)
}

// StopSearch requests that a concurrently running search (from another
// goroutine calling StartSearch) stop at the next node boundary.
func (s *Search) StopSearch() {
	atomic.StoreInt32(&s.stopFlag, 1)
}

// IsSearching reports whether a search is currently in flight.
func (s *Search) IsSearching() bool {
	if !s.running.TryAcquire(1) {
		return true
	}
	s.running.Release(1)
	return false
}

// NewGame clears the transposition table and is called between games
// so stale entries from a previous game cannot leak in.
func (s *Search) NewGame() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

// ClearHash discards the transposition table contents without resizing.
func (s *Search) ClearHash() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

// LastResult returns the result of the most recently completed search,
// or nil if none has completed yet.
func (s *Search) LastResult() *Result {
	return s.lastResult
}

// NodesVisited returns the node count of the last search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns the statistics of the last (or currently running)
// search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

func (s *Search) run(pos *position.Position, sl *Limits) *Result {
	startTime := time.Now()
	atomic.StoreInt32(&s.stopFlag, 0)
	s.nodesVisited = 0
	s.nodeLimit = sl.Nodes
	s.statistics = Statistics{}
	s.initialize()

	if s.tt != nil {
		s.tt.AgeEntries()
	}

	maxDepth := config.Settings.Search.MaxDepth
	if sl.Depth > 0 {
		maxDepth = sl.Depth
	}
	if maxDepth < 1 {
		maxDepth = 1
	}

	s.mg = make([]*movegen.Movegen, maxDepth+2)
	s.pv = make([]*moveslice.MoveSlice, maxDepth+2)
	for i := range s.mg {
		s.mg[i] = movegen.NewMoveGen()
		s.pv[i] = moveslice.NewMoveSlice(maxDepth + 2)
	}

	var result *Result
	if bookMove, ok := s.probeBook(pos); ok {
		result = &Result{BestMove: bookMove, BookMove: true}
	} else {
		result = s.iterativeDeepening(pos, maxDepth)
	}

	result.SearchTime = time.Since(startTime)
	result.Nodes = s.nodesVisited
	s.statistics.NodesVisited = s.nodesVisited
	s.lastResult = result
	s.log.Infof("search finished: %s", s.statistics.String())
	return result
}

// initialize sets up the transposition table and opening book on
// first use. Safe to call repeatedly.
func (s *Search) initialize() {
	if config.Settings.Search.UseBook && s.book == nil {
		book := openingbook.NewBook()
		if err := book.Load(config.Settings.Search.BookFile); err != nil {
			s.log.Warningf("opening book not loaded from %s: %s", config.Settings.Search.BookFile, err)
		} else {
			s.book = book
		}
	}
	if config.Settings.Search.UseTT && s.tt == nil {
		s.tt = transpositiontable.New(config.Settings.Search.TTSizeMB)
	}
}

// probeBook looks up the current position in the opening book and
// picks one of the candidate moves at random.
func (s *Search) probeBook(pos *position.Position) (Move, bool) {
	if s.book == nil || !config.Settings.Search.UseBook {
		return MoveNone, false
	}
	return s.book.Probe(pos.ZobristKey(), s.rnd)
}

// stopConditions reports whether the search should stop before
// searching another node: an external StopSearch call, or the node
// limit from Limits.
func (s *Search) stopConditions() bool {
	if atomic.LoadInt32(&s.stopFlag) != 0 {
		return true
	}
	if s.nodeLimit > 0 && s.nodesVisited >= s.nodeLimit {
		atomic.StoreInt32(&s.stopFlag, 1)
	}
	return atomic.LoadInt32(&s.stopFlag) != 0
}

// drawByRepetitionOrFifty reports a draw claim as checked during
// search: a position repeated once already, or the 50-move rule.
func drawByRepetitionOrFifty(p *position.Position) bool {
	return p.RepetitionCount() >= 2 || p.HalfMoveClock() >= 100
}

// savePV makes move the head of a new principal variation for dest,
// followed by the continuation already found at src (one ply deeper).
func savePV(move Move, src, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move.MoveOf())
	*dest = append(*dest, src.Slice()...)
}
