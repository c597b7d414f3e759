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

// generateEvasions generates the check-evasion branch for a single
// checker: capture the checker, move the king, or (if the checker is a
// slider) block the line between it and the king.
func (mg *Movegen) generateEvasions(pos *position.Position, checkerSq Square, moves *moveslice.MoveSlice) {
	us := pos.NextPlayer()
	kingSq := pos.KingSquare(us)

	generateOfficerMoves(pos, GenAll, moves, checkerSq.Bb())
	generatePawnMoves(pos, GenAll, moves, checkerSq.Bb())
	generateEnPassantCapturingChecker(pos, checkerSq, moves)

	mg.generateKingMoves(pos, GenAll, moves, false)

	checkerType := pos.PieceOn(checkerSq).TypeOf()
	if checkerType.IsSliding() {
		between := attacks.Between(kingSq, checkerSq)
		if between != BbZero {
			generateOfficerMoves(pos, GenAll, moves, between)
			generatePawnMoves(pos, GenAll, moves, between)
		}
	}
}

// generateEnPassantCapturingChecker handles the one evasion shape the
// shared pawn generator can't: the checker is a pawn that just double
// pushed, and the only way to remove it is an en-passant capture whose
// destination square is not the checker's square.
func generateEnPassantCapturingChecker(pos *position.Position, checkerSq Square, moves *moveslice.MoveSlice) {
	us := pos.NextPlayer()
	ep := pos.EnPassantSquare()
	if ep == SqNone || pos.PieceOn(checkerSq).TypeOf() != Pawn {
		return
	}
	// the checker must be exactly the pawn the en-passant target refers to.
	if checkerSq.To(us.MoveDirection()) != ep {
		return
	}
	pawns := pos.PiecesOf(us, Pawn) & attacks.PawnAttacks(us.Flip(), ep)
	for pawns != BbZero {
		s := pawns.PopLsb()
		if enPassantLegal(pos, s, ep, us) {
			moves.PushBack(Move{From: s, To: ep, Kind: EnPassant, Captured: Pawn})
		}
	}
}
