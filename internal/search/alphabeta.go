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
	"github.com/stannous/shatranj/internal/config"
	"github.com/stannous/shatranj/internal/evaluator"
	"github.com/stannous/shatranj/internal/movegen"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

// iterativeDeepening runs depth StartDepth..maxDepth, starting at
// config.Settings.Search.StartDepth (clamped to 1..maxDepth), stopping
// early on a decisive score or a stop condition.
// Before each iteration the root move list is left sorted by the
// previous iteration's values, so the previous best move leads.
func (s *Search) iterativeDeepening(pos *position.Position, maxDepth int) *Result {
	if drawByRepetitionOrFifty(pos) {
		return &Result{BestValue: ValueDraw}
	}

	s.rootMoves = s.mg[0].GenerateLegalMoves(pos, movegen.GenAll)
	if s.rootMoves.Len() == 0 {
		if pos.InCheck() {
			s.statistics.Checkmates++
			return &Result{BestValue: s.mateScore()}
		}
		s.statistics.Stalemates++
		return &Result{BestValue: evaluator.StalemateScore()}
	}

	startDepth := config.Settings.Search.StartDepth
	if startDepth < 1 {
		startDepth = 1
	}
	if startDepth > maxDepth {
		startDepth = maxDepth
	}

	bestValue := ValueNA
	for depth := startDepth; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentSearchDepth = depth

		bestValue = s.rootSearch(pos, depth, -ValueInfinite, ValueInfinite)

		if s.stopConditions() {
			break
		}

		s.statistics.BestRootMove = s.pv[0].At(0).MoveOf()
		s.statistics.BestRootMoveValue = bestValue
		s.rootMoves.Sort()

		// Termination: depth cap reached or a decisive score found
		// (|score| > MATE/2).
		if bestValue.IsMate() {
			break
		}
	}

	result := &Result{
		BestMove:    s.pv[0].At(0).MoveOf(),
		BestValue:   bestValue,
		SearchDepth: s.statistics.CurrentIterationDepth,
		Pv:          *s.pv[0],
	}
	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1).MoveOf()
	}
	return result
}

// rootSearch searches every root move at depth, PVS-style: the first
// move (after sorting, the strongest candidate from the previous
// iteration) gets the full window, every other move first a null
// window with a full re-search only if it actually improved alpha.
func (s *Search) rootSearch(pos *position.Position, depth int, alpha, beta Value) Value {
	bestValue := ValueNA

	for i := 0; i < s.rootMoves.Len(); i++ {
		m := s.rootMoves.At(i)
		pos.DoMove(m)
		s.nodesVisited++

		var value Value
		switch {
		case drawByRepetitionOrFifty(pos):
			value = ValueDraw
		case !config.Settings.Search.UsePVS || i == 0:
			value = -s.search(pos, depth-1, 1, -beta, -alpha, true)
		default:
			value = -s.search(pos, depth-1, 1, -alpha-1, -alpha, false)
			if value > alpha && value < beta && !s.stopConditions() {
				s.statistics.PvsResearches++
				value = -s.search(pos, depth-1, 1, -beta, -alpha, true)
			}
		}

		pos.UndoMove()

		if s.stopConditions() && depth > 1 {
			return bestValue
		}

		m.Value = value
		s.rootMoves.Set(i, m)

		if value > bestValue {
			bestValue = value
			savePV(m, s.pv[1], s.pv[0])
			if value > alpha {
				alpha = value
			}
		}
	}
	return bestValue
}

// search is the non-root negamax node: at depth 0 it
// returns the static evaluation directly (no quiescence extension —
// the source's horizon-effect mitigation is not part of this
// algorithm); otherwise it generates the legal move list, consults the
// transposition table, and searches each move with the same PVS window
// discipline as rootSearch.
func (s *Search) search(p *position.Position, depth, ply int, alpha, beta Value, isPV bool) Value {
	if s.stopConditions() {
		return ValueNA
	}

	if depth == 0 {
		return s.eval.Evaluate(p)
	}

	var ttMove Move
	if config.Settings.Search.UseTT {
		if entry, ok := s.tt.Probe(p.ZobristKey()); ok {
			s.statistics.TTHits++
			ttMove = entry.Move()
			if int(entry.Depth()) >= depth {
				v := entry.Value()
				cut := false
				switch entry.Vtype() {
				case Exact:
					cut = true
				case Alpha:
					cut = v <= alpha
				case Beta:
					cut = v >= beta
				}
				if cut {
					s.statistics.TTCuts++
					return v
				}
			}
		} else {
			s.statistics.TTMisses++
		}
	}

	mg := s.mg[ply]
	mg.SetPvMove(ttMove)
	moves := mg.GenerateLegalMoves(p, movegen.GenAll)
	s.pv[ply].Clear()

	if moves.Len() == 0 {
		if p.InCheck() {
			s.statistics.Checkmates++
			return s.mateScore()
		}
		s.statistics.Stalemates++
		return evaluator.StalemateScore()
	}

	bestValue := ValueNA
	bestMove := MoveNone
	ttType := Alpha

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		s.nodesVisited++

		var value Value
		switch {
		case drawByRepetitionOrFifty(p):
			value = ValueDraw
		case !config.Settings.Search.UsePVS || i == 0:
			value = -s.search(p, depth-1, ply+1, -beta, -alpha, true)
		default:
			value = -s.search(p, depth-1, ply+1, -alpha-1, -alpha, false)
			if value > alpha && value < beta && !s.stopConditions() {
				s.statistics.PvsResearches++
				value = -s.search(p, depth-1, ply+1, -beta, -alpha, true)
			}
		}

		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				ttType = Exact
				savePV(m, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					ttType = Beta
					break
				}
			}
		}
	}

	if config.Settings.Search.UseTT {
		s.tt.Put(p.ZobristKey(), bestMove.MoveOf(), int8(depth), bestValue, ValueNA, ttType)
	}

	return bestValue
}

// mateScore returns a jittered mate score: a small random addend keeps
// equally-deep mating lines from always resolving the same way, seeded
// via config.Settings.Search.MateJitterSeed for test reproducibility.
func (s *Search) mateScore() Value {
	return evaluator.MateScore(s.rnd.Intn(10))
}
