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

// Package evaluator scores a position from the side-to-move's
// perspective (negamax convention): material balance, plus an optional
// piece-square term gated by config.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/stannous/shatranj/internal/config"
	myLogging "github.com/stannous/shatranj/internal/logging"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

// pieceTypes lists the six kinds material is summed over.
var pieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// Evaluator holds no per-call state beyond a logger; create with
// NewEvaluator and reuse across positions.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate returns a signed score for pos from the side-to-move's
// perspective. A position with insufficient mating material on both
// sides is scored as a draw regardless of material balance.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	if pos.HasInsufficientMaterial() {
		return ValueDraw
	}

	white := material(pos, White)
	black := material(pos, Black)
	score := white - black

	if config.Settings.Eval.UsePST {
		score += pieceSquareValue(pos, White) - pieceSquareValue(pos, Black)
	}

	if pos.NextPlayer() == Black {
		score = -score
	}
	return score
}

// material sums the values (P=100, N=322, B=344, R=561,
// Q=891, K=40000) of every piece c still has on the board.
func material(pos *position.Position, c Color) Value {
	var total Value
	for _, pt := range pieceTypes {
		total += Value(pos.PiecesOf(c, pt).PopCount()) * pt.Value()
	}
	return total
}

// pieceSquareValue is a reserved, config-gated positional term.
// Disabled by default via config.Settings.Eval.UsePST; returns 0 until
// tuned weights are added.
func pieceSquareValue(pos *position.Position, c Color) Value {
	_ = pos
	_ = c
	return 0
}

// MateScore returns the sentinel score for "no legal move, in check":
// -(MATE + small-random-jitter), seen from the mated side's
// perspective, i.e. as a search return value at that node.
func MateScore(jitter int) Value {
	return -(ValueMate + Value(jitter))
}

// StalemateScore returns the configured, deliberately non-zero,
// non-draw stalemate sentinel (DESIGN.md records the default chosen).
func StalemateScore() Value {
	return Value(config.Settings.Eval.StalemateScore)
}
