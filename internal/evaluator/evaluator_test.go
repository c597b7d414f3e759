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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stannous/shatranj/internal/config"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	config.Setup()
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	e := NewEvaluator()
	assert.Equal(t, ValueDraw, e.Evaluate(pos))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	config.Setup()
	pos, err := position.NewFromFEN("4k3/8/8/8/8/8/8/3QK3 w - -")
	require.NoError(t, err)

	e := NewEvaluator()
	assert.Equal(t, Queen.Value(), e.Evaluate(pos))
}

func TestEvaluateIsFromSideToMovePerspective(t *testing.T) {
	config.Setup()
	pos, err := position.NewFromFEN("4k3/8/8/8/8/8/8/3QK3 b - -")
	require.NoError(t, err)

	e := NewEvaluator()
	assert.Equal(t, -Queen.Value(), e.Evaluate(pos))
}

func TestEvaluateInsufficientMaterialIsDraw(t *testing.T) {
	config.Setup()
	pos, err := position.NewFromFEN("4k3/8/8/8/8/8/8/2B1K3 w - -")
	require.NoError(t, err)

	e := NewEvaluator()
	assert.Equal(t, ValueDraw, e.Evaluate(pos))
}

func TestMateAndStalemateScores(t *testing.T) {
	config.Setup()
	assert.Equal(t, -(ValueMate + 3), MateScore(3))
	assert.Equal(t, Value(config.Settings.Eval.StalemateScore), StalemateScore())
}
