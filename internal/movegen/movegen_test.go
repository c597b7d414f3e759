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

func sanSet(t *testing.T, pos *position.Position, moves []Move) map[string]bool {
	t.Helper()
	out := make(map[string]bool, len(moves))
	for _, m := range moves {
		out[SAN(pos, m, moves)] = true
	}
	return out
}

func TestGenerateLegalMovesInitialPosition(t *testing.T) {
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 20, moves.Len())

	pawnMoves, knightMoves := 0, 0
	for i := 0; i < moves.Len(); i++ {
		switch pos.PieceOn(moves.At(i).From).TypeOf() {
		case Pawn:
			pawnMoves++
		case Knight:
			knightMoves++
		}
	}
	assert.Equal(t, 16, pawnMoves)
	assert.Equal(t, 4, knightMoves)
}

func TestGenerateLegalMovesPinnedPiece(t *testing.T) {
	pos, err := position.NewFromFEN("4r1k1/p4pp1/3q3p/5P2/4b2Q/7P/P1r3PK/4RR2 w - -")
	require.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	got := sanSet(t, pos, moves.Slice())

	want := []string{"Qf4", "Rf4", "Qg3", "Kg1", "Kh1"}
	for _, san := range want {
		assert.Truef(t, got[san], "expected %s among legal moves, got %v", san, got)
	}
}

func TestGenerateLegalMovesDeepPin(t *testing.T) {
	pos, err := position.NewFromFEN("rnbqk2r/ppp2ppp/4p3/8/6n1/6P1/PbPQ1PBP/RNBK2NR w kq -")
	require.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if pos.PieceOn(m.From).TypeOf() == Queen {
			assert.Equal(t, m.From.FileOf(), m.To.FileOf(), "pinned queen must stay on the d-file")
		}
	}
}

func TestGenerateLegalMovesCastlingAvailability(t *testing.T) {
	pos, err := position.NewFromFEN("1rb2rk1/6p1/1pqn1pBp/3p4/5Q2/1NP3PP/8/R3K2R w KQ -")
	require.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	got := sanSet(t, pos, moves.Slice())
	assert.True(t, got["O-O"])
	assert.True(t, got["O-O-O"])
}

func TestGenerateLegalMovesCheckmateHasNoMoves(t *testing.T) {
	pos, err := position.NewFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq -")
	require.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	assert.Equal(t, 0, moves.Len())
	assert.Equal(t, position.OutcomeCheckmate, pos.Outcome())
}

func TestGenerateLegalMovesDoubleCheckOnlyKingMoves(t *testing.T) {
	// white king on e1 double-checked by the bishop on h4 (diagonal) and
	// the knight on d3 (contact): only a king move can answer.
	pos, err := position.NewFromFEN("4k3/8/8/8/7b/3n4/8/4K3 w - -")
	require.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	for i := 0; i < moves.Len(); i++ {
		assert.Equal(t, King, pos.PieceOn(moves.At(i).From).TypeOf())
	}
}

func TestGenerateLegalMovesGenModeFiltersCaptures(t *testing.T) {
	pos, err := position.NewFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - -")
	require.NoError(t, err)

	mg := NewMoveGen()
	captures := mg.GenerateLegalMoves(pos, GenCap)
	for i := 0; i < captures.Len(); i++ {
		assert.True(t, captures.At(i).IsCapture())
	}

	quiet := mg.GenerateLegalMoves(pos, GenNonCap)
	for i := 0; i < quiet.Len(); i++ {
		assert.False(t, quiet.At(i).IsCapture())
	}
}

func TestSANPromotion(t *testing.T) {
	pos, err := position.NewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - -")
	require.NoError(t, err)

	mg := NewMoveGen()
	moves := mg.GenerateLegalMoves(pos, GenAll)
	got := sanSet(t, pos, moves.Slice())
	assert.True(t, got["a8=Q"])
	assert.True(t, got["a8=R"])
	assert.True(t, got["a8=B"])
	assert.True(t, got["a8=N"])
}

func TestStoreKillerPromotesToFrontSlot(t *testing.T) {
	mg := NewMoveGen()
	m1 := Move{From: SqE2, To: SqE4, Kind: Quiet}
	m2 := Move{From: SqD2, To: SqD4, Kind: Quiet}

	mg.StoreKiller(m1)
	assert.Equal(t, m1, mg.KillerMoves()[0])

	mg.StoreKiller(m2)
	assert.Equal(t, m2, mg.KillerMoves()[0])
	assert.Equal(t, m1, mg.KillerMoves()[1])

	mg.StoreKiller(m1)
	assert.Equal(t, m1, mg.KillerMoves()[0])
	assert.Equal(t, m2, mg.KillerMoves()[1])
}
