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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stannous/shatranj/internal/attacks"
	. "github.com/stannous/shatranj/internal/types"
)

func TestMain(m *testing.M) {
	attacks.Init()
	m.Run()
}

func TestNewFromFENRoundTrip(t *testing.T) {
	p := New()
	assert.Equal(t, StartFEN, p.StringFEN())
}

func TestNewFromFENPartial(t *testing.T) {
	p, err := NewFromFEN("8/8/8/4k3/8/8/8/4K3")
	assert.NoError(t, err)
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingNone, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
}

func TestNewFromFENRejectsGarbage(t *testing.T) {
	_, err := NewFromFEN("not a fen")
	assert.Error(t, err)
}

func TestDoUndoMoveRoundTrip(t *testing.T) {
	p := New()
	startKey := p.ZobristKey()

	p.DoMove(Move{From: SqE2, To: SqE4, Kind: PawnDouble})
	p.DoMove(Move{From: SqD7, To: SqD5, Kind: PawnDouble})
	p.DoMove(Move{From: SqE4, To: SqD5, Kind: Capture, Captured: Pawn})
	p.DoMove(Move{From: SqD8, To: SqD5, Kind: Capture, Captured: Pawn})
	p.DoMove(Move{From: SqB1, To: SqC3, Kind: Quiet})

	for i := 0; i < 5; i++ {
		p.UndoMove()
	}

	assert.Equal(t, StartFEN, p.StringFEN())
	assert.Equal(t, startKey, p.ZobristKey())
}

func TestDoMoveNormalQuiet(t *testing.T) {
	p, _ := NewFromFEN("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(Move{From: SqC4, To: SqD4, Kind: Quiet})
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/3qPp2/B5R1/p1p2PPP/1R4K1 w kq - 1 2", p.StringFEN())
}

func TestDoMoveCapture(t *testing.T) {
	p, _ := NewFromFEN("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w kq - 0 1")
	p.DoMove(Move{From: SqG3, To: SqG6, Kind: Capture, Captured: Knight})
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1R1/8/2q1Pp2/B7/p1p2PPP/1R4K1 b kq - 0 1", p.StringFEN())
}

func TestDoMoveCastlingKingSide(t *testing.T) {
	p, _ := NewFromFEN("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(Move{From: SqE8, To: SqG8, Kind: Castling})
	assert.Equal(t, "r4rk1/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w - - 1 2", p.StringFEN())
}

func TestDoMoveCastlingQueenSide(t *testing.T) {
	p, _ := NewFromFEN("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(Move{From: SqE8, To: SqC8, Kind: Castling})
	assert.Equal(t, "2kr3r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w - - 1 2", p.StringFEN())
}

func TestDoUndoMoveCastling(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1"
	p, _ := NewFromFEN(fen)
	key := p.ZobristKey()
	p.DoMove(Move{From: SqE8, To: SqC8, Kind: Castling})
	p.UndoMove()
	assert.Equal(t, fen, p.StringFEN())
	assert.Equal(t, key, p.ZobristKey())
}

func TestDoMoveEnPassant(t *testing.T) {
	p, _ := NewFromFEN("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(Move{From: SqF4, To: SqE3, Kind: EnPassant})
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q5/B3p1R1/p1p2PPP/1R4K1 w kq - 0 2", p.StringFEN())
}

func TestDoUndoMoveEnPassant(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1"
	p, _ := NewFromFEN(fen)
	key := p.ZobristKey()
	p.DoMove(Move{From: SqF4, To: SqE3, Kind: EnPassant})
	p.UndoMove()
	assert.Equal(t, fen, p.StringFEN())
	assert.Equal(t, key, p.ZobristKey())
}

func TestDoMovePromotion(t *testing.T) {
	p, _ := NewFromFEN("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(Move{From: SqA2, To: SqA1, Kind: Promotion, Promoted: Queen})
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/2p2PPP/qR4K1 w kq - 0 2", p.StringFEN())
}

func TestDoUndoMovePromotionWithCapture(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1"
	p, _ := NewFromFEN(fen)
	key := p.ZobristKey()
	p.DoMove(Move{From: SqA2, To: SqB1, Kind: Promotion, Promoted: Rook, Captured: Rook})
	p.UndoMove()
	assert.Equal(t, fen, p.StringFEN())
	assert.Equal(t, key, p.ZobristKey())
}

func TestInCheck(t *testing.T) {
	p, _ := NewFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.True(t, p.InCheck())
}

func TestNotInCheck(t *testing.T) {
	p := New()
	assert.False(t, p.InCheck())
}

func TestCastlingRightsLostByKingMove(t *testing.T) {
	p := New()
	p.DoMove(Move{From: SqE2, To: SqE4, Kind: PawnDouble})
	p.DoMove(Move{From: SqE7, To: SqE5, Kind: PawnDouble})
	p.DoMove(Move{From: SqE1, To: SqE2, Kind: Quiet})
	assert.False(t, p.CastlingRights().Has(WhiteOO))
	assert.False(t, p.CastlingRights().Has(WhiteOOO))
	assert.True(t, p.CastlingRights().Has(BlackOO))
}

func TestCastlingRightsLostByRookCapture(t *testing.T) {
	p, _ := NewFromFEN("r3k3/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	p.DoMove(Move{From: SqA1, To: SqA8, Kind: Capture, Captured: Rook})
	assert.False(t, p.CastlingRights().Has(BlackOOO))
}

// TestThreefoldRepetition plays Nc3 Nc6 Nf3 Nf6 Nb1 Nb8 Nc3 Nc6 from the
// starting position: the knight shuffle on the queenside brings the
// position after the 4th move (both knight pairs developed) back
// exactly once, so the repetition count is 2, not yet a claim. One more
// Nb1 Nb8 Nc3 Nc6 cycle brings it a third time.
func TestThreefoldRepetition(t *testing.T) {
	p := New()

	p.DoMove(Move{From: SqB1, To: SqC3, Kind: Quiet})
	p.DoMove(Move{From: SqB8, To: SqC6, Kind: Quiet})
	p.DoMove(Move{From: SqG1, To: SqF3, Kind: Quiet})
	p.DoMove(Move{From: SqG8, To: SqF6, Kind: Quiet})
	p.DoMove(Move{From: SqC3, To: SqB1, Kind: Quiet})
	p.DoMove(Move{From: SqC6, To: SqB8, Kind: Quiet})
	p.DoMove(Move{From: SqB1, To: SqC3, Kind: Quiet})
	p.DoMove(Move{From: SqB8, To: SqC6, Kind: Quiet})

	assert.Equal(t, 2, p.RepetitionCount())
	assert.False(t, p.ThreefoldClaim())

	p.DoMove(Move{From: SqC3, To: SqB1, Kind: Quiet})
	p.DoMove(Move{From: SqC6, To: SqB8, Kind: Quiet})
	p.DoMove(Move{From: SqB1, To: SqC3, Kind: Quiet})
	p.DoMove(Move{From: SqB8, To: SqC6, Kind: Quiet})

	assert.Equal(t, 3, p.RepetitionCount())
	assert.True(t, p.ThreefoldClaim())
}

func TestFiftyMoveClaim(t *testing.T) {
	p := New()
	assert.False(t, p.FiftyMoveClaim())
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	p, _ := NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())
}

func TestInsufficientMaterialKingAndMinor(t *testing.T) {
	p, _ := NewFromFEN("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())
}

func TestSufficientMaterialWithRook(t *testing.T) {
	p, _ := NewFromFEN("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	assert.False(t, p.HasInsufficientMaterial())
}
