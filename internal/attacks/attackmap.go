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

package attacks

import (
	. "github.com/stannous/shatranj/internal/types"
)

// Map is the attacks-from/attacks-to pair, rebuilt once per
// move-generation call from the current board. From[sq] is every
// square the piece standing on sq attacks; To[sq] is the set of
// squares from which sq is attacked, i.e. the transpose of From.
type Map struct {
	From [SqLength]Bitboard
	To   [SqLength]Bitboard
}

// Board is the minimal read access Compute needs into a position: the
// piece standing on a square (PieceNone if empty) and the combined
// occupancy of all pieces. Position implements this; keeping the
// dependency this way round means attacks never imports position.
type Board interface {
	PieceOn(sq Square) Piece
	Occupied() Bitboard
}

// Compute rebuilds the attack map for the current occupancy of b. Pawn
// entries in From only carry the diagonal capture squares, never the
// forward push, since those are the only squares a pawn on sq attacks.
func Compute(b Board) *Map {
	m := &Map{}
	occ := b.Occupied()
	for sq := SqA1; sq <= SqH8; sq++ {
		p := b.PieceOn(sq)
		if !p.IsValid() {
			continue
		}
		from := AttacksFrom(p.TypeOf(), p.ColorOf(), sq, occ)
		m.From[sq] = from
		to := from
		for to != BbZero {
			t := to.PopLsb()
			m.To[t].PushSquare(sq)
		}
	}
	return m
}

// AttacksTo reports every square attacking target, regardless of side,
// recomputed fresh against occ rather than read from a stale map. Used
// by check/pin logic that needs the attack picture after hypothetically
// removing a blocker (e.g. the king's own square) from occupancy.
func AttacksTo(target Square, occ Bitboard, pieceOn func(Square) Piece) Bitboard {
	var attackers Bitboard
	if b := KnightMoves(target) & occ; b != BbZero {
		for bb := b; bb != BbZero; {
			s := bb.PopLsb()
			if p := pieceOn(s); p.TypeOf() == Knight {
				attackers.PushSquare(s)
			}
		}
	}
	if b := KingMoves(target) & occ; b != BbZero {
		for bb := b; bb != BbZero; {
			s := bb.PopLsb()
			if p := pieceOn(s); p.TypeOf() == King {
				attackers.PushSquare(s)
			}
		}
	}
	for _, c := range [2]Color{White, Black} {
		if b := PawnAttacks(c.Flip(), target) & occ; b != BbZero {
			for bb := b; bb != BbZero; {
				s := bb.PopLsb()
				if p := pieceOn(s); p.TypeOf() == Pawn && p.ColorOf() == c {
					attackers.PushSquare(s)
				}
			}
		}
	}
	rookRay := rookAttacks(target, occ)
	for bb := rookRay & occ; bb != BbZero; {
		s := bb.PopLsb()
		pt := pieceOn(s).TypeOf()
		if pt == Rook || pt == Queen {
			attackers.PushSquare(s)
		}
	}
	bishopRay := bishopAttacks(target, occ)
	for bb := bishopRay & occ; bb != BbZero; {
		s := bb.PopLsb()
		pt := pieceOn(s).TypeOf()
		if pt == Bishop || pt == Queen {
			attackers.PushSquare(s)
		}
	}
	return attackers
}
