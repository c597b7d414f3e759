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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/stannous/shatranj/internal/types"
)

var out = message.NewPrinter(language.English)

// Statistics are counters describing one search call. Not needed to
// produce a result, useful for tuning move ordering and TT behavior.
type Statistics struct {
	NodesVisited uint64

	TTHits   uint64
	TTMisses uint64
	TTCuts   uint64

	BetaCuts      uint64
	PvsResearches uint64

	Checkmates uint64
	Stalemates uint64

	CurrentIterationDepth int
	CurrentSearchDepth    int

	BestRootMove      Move
	BestRootMoveValue Value
}

func (s *Statistics) String() string {
	return out.Sprintf(
		"depth=%d nodes=%d ttHits=%d ttCuts=%d betaCuts=%d pvsResearches=%d checkmates=%d stalemates=%d bestMove=%s bestValue=%d",
		s.CurrentSearchDepth, s.NodesVisited, s.TTHits, s.TTCuts, s.BetaCuts, s.PvsResearches,
		s.Checkmates, s.Stalemates, s.BestRootMove.StringUci(), s.BestRootMoveValue)
}
