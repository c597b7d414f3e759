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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft counts leaf nodes of the legal move tree to a fixed depth, used
// to cross-check move generation against known node counts.
// Since GenerateLegalMoves never emits an illegal move, perft needs no
// post-move legality filter; every generated move is simply played.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates an empty Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running perft (typically started in a goroutine)
// abandon its search at the next opportunity.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs StartPerft for every depth from startDepth to
// endDepth in turn, stopping early if Stop is called.
func (perft *Perft) StartPerftMulti(fen string, startDepth, endDepth int) {
	perft.stopFlag = false
	for d := startDepth; d <= endDepth; d++ {
		if perft.stopFlag {
			out.Print("perft multi-depth run stopped\n")
			return
		}
		perft.StartPerft(fen, d)
	}
}

// StartPerft runs a single perft at depth from the position described
// by fen, printing a summary to stdout.
func (perft *Perft) StartPerft(fen string, depth int) {
	perft.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	perft.reset()

	pos, err := position.NewFromFEN(fen)
	if err != nil {
		out.Printf("invalid FEN %q: %v\n", fen, err)
		return
	}
	gens := make([]*Movegen, depth+1)
	for i := range gens {
		gens[i] = NewMoveGen()
	}

	out.Printf("perft depth %d\n", depth)
	out.Printf("fen: %s\n", fen)

	start := time.Now()
	nodes := perft.search(depth, pos, gens)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("perft stopped\n")
		return
	}
	perft.Nodes = nodes

	out.Printf("time: %s\n", elapsed)
	out.Printf("nps: %d\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("nodes: %d captures: %d enpassant: %d checks: %d checkmates: %d castles: %d promotions: %d\n",
		perft.Nodes, perft.CaptureCounter, perft.EnpassantCounter, perft.CheckCounter,
		perft.CheckMateCounter, perft.CastleCounter, perft.PromotionCounter)
}

func (perft *Perft) search(depth int, pos *position.Position, gens []*Movegen) uint64 {
	var total uint64
	moves := gens[depth].GenerateLegalMoves(pos, GenAll)
	for i := 0; i < moves.Len(); i++ {
		if perft.stopFlag {
			return 0
		}
		m := moves.At(i)
		if depth > 1 {
			pos.DoMove(m)
			total += perft.search(depth-1, pos, gens)
			pos.UndoMove()
			continue
		}

		capture := m.IsCapture()
		enpassant := m.Kind == EnPassant
		castling := m.Kind == Castling
		promotion := m.Kind == Promotion

		pos.DoMove(m)
		total++
		if enpassant {
			perft.EnpassantCounter++
			perft.CaptureCounter++
		} else if capture {
			perft.CaptureCounter++
		}
		if castling {
			perft.CastleCounter++
		}
		if promotion {
			perft.PromotionCounter++
		}
		if pos.InCheck() {
			perft.CheckCounter++
			if !gens[0].HasLegalMove(pos) {
				perft.CheckMateCounter++
			}
		}
		pos.UndoMove()
	}
	return total
}

func (perft *Perft) reset() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
