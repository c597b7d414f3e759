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

// Package uci is a line-oriented external driver over the core's
// documented operations: position_from_fen, generate_moves, make,
// unmake, search, evaluate, and read-only access to in_check, winner
// and move_history. It is a thin CLI surface, not part of the core
// itself.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/stannous/shatranj/internal/evaluator"
	myLogging "github.com/stannous/shatranj/internal/logging"
	"github.com/stannous/shatranj/internal/movegen"
	"github.com/stannous/shatranj/internal/position"
	"github.com/stannous/shatranj/internal/search"
	. "github.com/stannous/shatranj/internal/types"
)

// Handler reads commands line by line and writes each command's
// response lines (one line for most commands; generate_moves writes one
// per move followed by "done"). Create with NewHandler and either call Loop to drive it
// from an io.Reader/io.Writer pair, or Command to run a single line
// (handy for tests and embedding).
type Handler struct {
	in  *bufio.Scanner
	out *bufio.Writer

	log *logging.Logger

	pos    *position.Position
	mg     *movegen.Movegen
	search *search.Search
	eval   *evaluator.Evaluator
}

// NewHandler creates a Handler with no position loaded yet; issue
// position_from_fen before generate_moves/make/search/evaluate.
func NewHandler(r io.Reader, w io.Writer) *Handler {
	return &Handler{
		in:     bufio.NewScanner(r),
		out:    bufio.NewWriter(w),
		log:    myLogging.GetLog(),
		mg:     movegen.NewMoveGen(),
		search: search.NewSearch(),
		eval:   evaluator.NewEvaluator(),
	}
}

// Loop reads commands until the input is exhausted or "quit" is seen.
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.handle(h.in.Text()) {
			return
		}
	}
}

// Command runs a single line and returns everything it wrote, with no
// trailing newline. Useful for tests and for embedding the driver
// without owning a real input stream.
func (h *Handler) Command(cmd string) string {
	var buf bytes.Buffer
	saved := h.out
	h.out = bufio.NewWriter(&buf)
	h.handle(cmd)
	_ = h.out.Flush()
	h.out = saved
	return strings.TrimRight(buf.String(), "\n")
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handle dispatches one command line, returning true only for "quit".
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.log.Debugf("received command: %s", cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "position_from_fen":
		h.positionFromFen(tokens[1:])
	case "generate_moves":
		h.generateMoves()
	case "make":
		h.make(tokens[1:])
	case "unmake":
		h.unmake()
	case "search":
		h.search_(tokens[1:])
	case "evaluate":
		h.evaluate()
	case "in_check":
		h.inCheck()
	case "winner":
		h.winner()
	case "move_history":
		h.moveHistory()
	default:
		h.send("error unknown command: %s", tokens[0])
	}
	return false
}

func (h *Handler) send(format string, args ...interface{}) {
	fmt.Fprintf(h.out, format+"\n", args...)
	_ = h.out.Flush()
}

func (h *Handler) positionFromFen(tokens []string) {
	fen := position.StartFEN
	if len(tokens) > 0 && tokens[0] != "startpos" {
		fen = strings.Join(tokens, " ")
	}
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		h.send("error %s", err)
		return
	}
	h.pos = pos
	h.send("ok")
}

func (h *Handler) requirePosition() bool {
	if h.pos == nil {
		h.send("error no position loaded, use position_from_fen first")
		return false
	}
	return true
}

// generateMoves lists every legal move as "uci san" pairs, one per
// line, terminated by "done" ("List<Move> plus
// {regular_move_name -> Move} and {regular_move_name -> SAN_name}").
func (h *Handler) generateMoves() {
	if !h.requirePosition() {
		return
	}
	moves := h.mg.GenerateLegalMoves(h.pos, movegen.GenAll)
	legal := moves.Slice()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		h.send("%s %s", m.StringUci(), movegen.SAN(h.pos, m, legal))
	}
	h.send("done")
}

func (h *Handler) make(tokens []string) {
	if !h.requirePosition() {
		return
	}
	if len(tokens) == 0 {
		h.send("error make requires a uci move")
		return
	}
	moves := h.mg.GenerateLegalMoves(h.pos, movegen.GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.StringUci() == tokens[0] {
			h.pos.DoMove(m)
			h.send("ok")
			return
		}
	}
	h.send("error illegal move: %s", tokens[0])
}

func (h *Handler) unmake() {
	if !h.requirePosition() {
		return
	}
	if len(h.pos.MoveHistory()) == 0 {
		h.send("error no move to unmake")
		return
	}
	h.pos.UndoMove()
	h.send("ok")
}

func (h *Handler) search_(tokens []string) {
	if !h.requirePosition() {
		return
	}
	var limits search.Limits
	for i := 0; i+1 < len(tokens); i += 2 {
		switch tokens[i] {
		case "depth":
			if d, err := strconv.Atoi(tokens[i+1]); err == nil {
				limits.Depth = d
			}
		case "nodes":
			if n, err := strconv.ParseUint(tokens[i+1], 10, 64); err == nil {
				limits.Nodes = n
			}
		}
	}
	result := h.search.StartSearch(*h.pos, limits)
	if result.BookMove {
		h.send("bestmove %s book", result.BestMove.StringUci())
		return
	}
	h.send("bestmove %s value %d depth %d nodes %d", result.BestMove.StringUci(), result.BestValue, result.SearchDepth, result.Nodes)
}

// evaluate reports the static evaluation from the side-to-move's
// perspective ("evaluate(position, side) -> int"; side is
// always the position's own side to move here, since Evaluate is
// defined relative to it).
func (h *Handler) evaluate() {
	if !h.requirePosition() {
		return
	}
	h.send("%d", h.eval.Evaluate(h.pos))
}

func (h *Handler) inCheck() {
	if !h.requirePosition() {
		return
	}
	h.send("%t", h.pos.InCheck())
}

func (h *Handler) winner() {
	if !h.requirePosition() {
		return
	}
	color, ok := h.pos.Winner()
	if !ok {
		h.send("none")
		return
	}
	h.send("%s", color.String())
}

func (h *Handler) moveHistory() {
	if !h.requirePosition() {
		return
	}
	moves := h.pos.MoveHistory()
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.StringUci()
	}
	h.send("%s", strings.Join(parts, " "))
}
