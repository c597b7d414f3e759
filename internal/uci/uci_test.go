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

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stannous/shatranj/internal/attacks"
	"github.com/stannous/shatranj/internal/config"
)

func TestMain(m *testing.M) {
	config.Setup()
	attacks.Init()
	m.Run()
}

func newHandler() *Handler {
	return NewHandler(strings.NewReader(""), &strings.Builder{})
}

func TestPositionFromFenStartpos(t *testing.T) {
	h := newHandler()
	assert.Equal(t, "ok", h.Command("position_from_fen startpos"))
}

func TestPositionFromFenRejectsGarbage(t *testing.T) {
	h := newHandler()
	out := h.Command("position_from_fen not a fen")
	assert.True(t, strings.HasPrefix(out, "error"))
}

func TestGenerateMovesBeforePositionErrors(t *testing.T) {
	h := newHandler()
	out := h.Command("generate_moves")
	assert.Equal(t, "error no position loaded, use position_from_fen first", out)
}

func TestGenerateMovesListsTwentyStartingMoves(t *testing.T) {
	h := newHandler()
	h.Command("position_from_fen startpos")
	out := h.Command("generate_moves")
	lines := strings.Split(out, "\n")
	assert.Equal(t, "done", lines[len(lines)-1])
	assert.Equal(t, 21, len(lines))
}

func TestMakeAndUnmakeRoundTrip(t *testing.T) {
	h := newHandler()
	h.Command("position_from_fen startpos")
	assert.Equal(t, "ok", h.Command("make e2e4"))
	assert.Equal(t, "e2e4", h.Command("move_history"))
	assert.Equal(t, "ok", h.Command("unmake"))
	assert.Equal(t, "", h.Command("move_history"))
}

func TestMakeRejectsIllegalMove(t *testing.T) {
	h := newHandler()
	h.Command("position_from_fen startpos")
	out := h.Command("make e2e5")
	assert.True(t, strings.HasPrefix(out, "error illegal move"))
}

func TestInCheckAndWinnerOnStartpos(t *testing.T) {
	h := newHandler()
	h.Command("position_from_fen startpos")
	assert.Equal(t, "false", h.Command("in_check"))
	assert.Equal(t, "none", h.Command("winner"))
}

func TestEvaluateStartposIsBalanced(t *testing.T) {
	h := newHandler()
	h.Command("position_from_fen startpos")
	assert.Equal(t, "0", h.Command("evaluate"))
}

func TestSearchReturnsABestMove(t *testing.T) {
	h := newHandler()
	h.Command("position_from_fen startpos")
	out := h.Command("search depth 2")
	assert.True(t, strings.HasPrefix(out, "bestmove "))
}

func TestUnknownCommand(t *testing.T) {
	h := newHandler()
	out := h.Command("frobnicate")
	assert.Equal(t, "error unknown command: frobnicate", out)
}
