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
	"github.com/stannous/shatranj/internal/attacks"
	"github.com/stannous/shatranj/internal/moveslice"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// generatePawnMoves emits pushes, double pushes, diagonal captures and
// en-passant for every pawn of the side to move, allowed
// restricts destination squares (used during check-block evasion to the
// squares between king and checker; BbAll outside of check).
func generatePawnMoves(pos *position.Position, mode GenMode, moves *moveslice.MoveSlice, allowed Bitboard) {
	us := pos.NextPlayer()
	them := us.Flip()
	forward := us.MoveDirection()
	occ := pos.Occupied()
	enemyOcc := pos.OccupiedBy(them)
	kingSq := pos.KingSquare(us)

	pawns := pos.PiecesOf(us, Pawn)
	for pawns != BbZero {
		s := pawns.PopLsb()
		mask := pinnedMask(pos, s, kingSq, us) & allowed

		if push := s.To(forward); push != SqNone && occ&push.Bb() == 0 && mask.Has(push) {
			emitPawnTo(mode, moves, s, push, PtNone)
			if s.RankOf() == us.PawnRank() {
				if dbl := push.To(forward); dbl != SqNone && occ&dbl.Bb() == 0 && mask.Has(dbl) {
					emit(moves, mode, Move{From: s, To: dbl, Kind: PawnDouble})
				}
			}
		}

		for caps := attacks.PawnAttacks(us, s) & enemyOcc & mask; caps != BbZero; {
			t := caps.PopLsb()
			emitPawnTo(mode, moves, s, t, pos.PieceOn(t).TypeOf())
		}

		if ep := pos.EnPassantSquare(); ep != SqNone && attacks.PawnAttacks(us, s).Has(ep) && allowed.Has(ep) {
			if enPassantLegal(pos, s, ep, us) {
				emit(moves, mode, Move{From: s, To: ep, Kind: EnPassant, Captured: Pawn})
			}
		}
	}
}

// emitPawnTo emits either a single move (non-promoting) or the four
// promotion choices (Q default, R/B/N for a consumer-selected
// under-promotion) for a pawn moving from s to t. captured is PtNone
// for a push, the captured piece's kind for a diagonal capture.
func emitPawnTo(mode GenMode, moves *moveslice.MoveSlice, s, t Square, captured PieceType) {
	if t.RankOf() != Rank1 && t.RankOf() != Rank8 {
		kind := Quiet
		if captured != PtNone {
			kind = Capture
		}
		emit(moves, mode, Move{From: s, To: t, Kind: kind, Captured: captured})
		return
	}
	for _, promo := range promotionPieces {
		emit(moves, mode, Move{From: s, To: t, Kind: Promotion, Promoted: promo, Captured: captured})
	}
}

// enPassantLegal implements the pin edge case flags: removing
// both the capturing pawn (from its origin) and the captured pawn can
// expose the king along a rank even though neither pawn individually
// was pinned. Simulated directly against a hypothetical occupancy
// rather than derived from the ordinary pin mask.
func enPassantLegal(pos *position.Position, from, to Square, us Color) bool {
	capSq := to.To(us.Flip().MoveDirection())
	occ := (pos.Occupied() &^ from.Bb() &^ capSq.Bb()) | to.Bb()
	kingSq := pos.KingSquare(us)
	attackers := attacks.AttacksTo(kingSq, occ, pos.PieceOn)
	return attackers&pos.OccupiedBy(us.Flip()) == BbZero
}
