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
	"github.com/stannous/shatranj/internal/moveslice"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

// generateCastling emits O-O/O-O-O when still available: the relevant
// king and rook have never moved (castlingRights), the squares between
// them are empty, and neither the king's start square, the squares it
// crosses, nor its destination are attacked ("castling out
// of, through, or into check is forbidden"). Castling is never a
// capture, so it is only emitted for GenNonCap.
func generateCastling(pos *position.Position, mode GenMode, moves *moveslice.MoveSlice) {
	if mode&GenNonCap == 0 {
		return
	}
	us := pos.NextPlayer()
	them := us.Flip()
	occ := pos.Occupied()
	cr := pos.CastlingRights()

	if us == White {
		if cr.Has(WhiteOO) && occ&(SqF1.Bb()|SqG1.Bb()) == 0 &&
			!pos.IsAttacked(SqE1, them) && !pos.IsAttacked(SqF1, them) && !pos.IsAttacked(SqG1, them) {
			moves.PushBack(Move{From: SqE1, To: SqG1, Kind: Castling})
		}
		if cr.Has(WhiteOOO) && occ&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == 0 &&
			!pos.IsAttacked(SqE1, them) && !pos.IsAttacked(SqD1, them) && !pos.IsAttacked(SqC1, them) {
			moves.PushBack(Move{From: SqE1, To: SqC1, Kind: Castling})
		}
		return
	}
	if cr.Has(BlackOO) && occ&(SqF8.Bb()|SqG8.Bb()) == 0 &&
		!pos.IsAttacked(SqE8, them) && !pos.IsAttacked(SqF8, them) && !pos.IsAttacked(SqG8, them) {
		moves.PushBack(Move{From: SqE8, To: SqG8, Kind: Castling})
	}
	if cr.Has(BlackOOO) && occ&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == 0 &&
		!pos.IsAttacked(SqE8, them) && !pos.IsAttacked(SqD8, them) && !pos.IsAttacked(SqC8, them) {
		moves.PushBack(Move{From: SqE8, To: SqC8, Kind: Castling})
	}
}
