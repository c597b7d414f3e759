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

// Package attacks builds the static, read-only board-geometry tables
// (leaper move sets, magic-bitboard slider attack tables, rank/file/
// diagonal masks) and, from those, the per-position attacks-from/
// attacks-to map. Tables are built once by Init and are safe to share
// by address with any future concurrent searcher.
package attacks

import (
	"sync"

	. "github.com/stannous/shatranj/internal/types"
)

var (
	knightMoves [SqLength]Bitboard
	kingMoves   [SqLength]Bitboard
	pawnAttacks [ColorLength][SqLength]Bitboard

	// lineMask[a][b] is the full rank/file/diagonal line through a and
	// b if they share one, else 0. Used by movegen's pin-mask
	// construction.
	lineMask [SqLength][SqLength]Bitboard
	// between[a][b] is the set of squares strictly between a and b
	// (exclusive) if they share a line, else 0. Used for check-block
	// generation ("Block").
	between [SqLength][SqLength]Bitboard

	initOnce sync.Once
)

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

// Init builds every static table. Safe to call more than once; only the
// first call does any work.
func Init() {
	initOnce.Do(func() {
		initLeaperTables()
		initPawnTables()
		initSliderMagics()
		initLineTables()
	})
}

func onBoard(f, r int) bool { return f >= 0 && f < int(FileLength) && r >= 0 && r < int(RankLength) }

func initLeaperTables() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		var kn, ki Bitboard
		for _, d := range knightDeltas {
			if nf, nr := f+d[0], r+d[1]; onBoard(nf, nr) {
				kn.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		for _, d := range kingDeltas {
			if nf, nr := f+d[0], r+d[1]; onBoard(nf, nr) {
				ki.PushSquare(SquareOf(File(nf), Rank(nr)))
			}
		}
		knightMoves[sq] = kn
		kingMoves[sq] = ki
	}
}

func initPawnTables() {
	for sq := SqA1; sq <= SqH8; sq++ {
		b := sq.Bb()
		pawnAttacks[White][sq] = ShiftBitboard(b, Northeast) | ShiftBitboard(b, Northwest)
		pawnAttacks[Black][sq] = ShiftBitboard(b, Southeast) | ShiftBitboard(b, Southwest)
	}
}

// initLineTables derives the rank/file/diagonal line and between masks
// from the slider attack tables themselves: two squares share a line
// exactly when a rook (rank/file) or bishop (diagonal) on one attacks
// the other on an empty board.
func initLineTables() {
	for a := SqA1; a <= SqH8; a++ {
		rookRay := rookAttacks(a, BbZero)
		bishopRay := bishopAttacks(a, BbZero)
		for b := SqA1; b <= SqH8; b++ {
			if a == b {
				continue
			}
			switch {
			case rookRay.Has(b):
				full := (rookAttacks(a, BbZero) & rookAttacks(b, BbZero)) | a.Bb() | b.Bb()
				lineMask[a][b] = full
				between[a][b] = rookAttacks(a, b.Bb()) & rookAttacks(b, a.Bb())
			case bishopRay.Has(b):
				full := (bishopAttacks(a, BbZero) & bishopAttacks(b, BbZero)) | a.Bb() | b.Bb()
				lineMask[a][b] = full
				between[a][b] = bishopAttacks(a, b.Bb()) & bishopAttacks(b, a.Bb())
			}
		}
	}
}

// KnightMoves returns the knight attack pattern from sq.
func KnightMoves(sq Square) Bitboard { return knightMoves[sq] }

// KingMoves returns the king attack pattern from sq.
func KingMoves(sq Square) Bitboard { return kingMoves[sq] }

// PawnAttacks returns the diagonal-forward attack squares of a pawn of
// color c standing on sq.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// SliderAttacks returns the sliding-piece attack bitboard from sq for
// the given piece type (Bishop, Rook or Queen) given the current
// occupancy, via O(1) magic bitboard lookup.
func SliderAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopAttacks(sq, occupied)
	case Rook:
		return rookAttacks(sq, occupied)
	case Queen:
		return queenAttacks(sq, occupied)
	default:
		return BbZero
	}
}

// AttacksFrom returns the attack bitboard for a piece of kind pt and
// color c standing on sq, given the current occupancy. Pawns are
// special cased to their diagonal captures.
func AttacksFrom(pt PieceType, c Color, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return PawnAttacks(c, sq)
	case Knight:
		return KnightMoves(sq)
	case King:
		return KingMoves(sq)
	default:
		return SliderAttacks(pt, sq, occupied)
	}
}

// LineThrough returns the full rank/file/diagonal line containing both
// a and b, or 0 if they do not share one. Used to build a pin mask: the
// squares a pinned piece may still move along.
func LineThrough(a, b Square) Bitboard {
	return lineMask[a][b]
}

// Between returns the squares strictly between a and b along their
// shared rank/file/diagonal, or 0 if they don't share one. Used to
// enumerate block squares during check evasion.
func Between(a, b Square) Bitboard {
	return between[a][b]
}
