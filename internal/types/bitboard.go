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

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit set of squares, bit i corresponding to Square(i).
type Bitboard uint64

// Useful constant bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
)

// File and rank bitboards, indexed by File/Rank.
var (
	FileBb [FileLength]Bitboard
	RankBb [RankLength]Bitboard
)

func init() {
	for f := FileA; f < FileLength; f++ {
		var b Bitboard
		for r := Rank1; r < RankLength; r++ {
			b |= SquareOf(f, r).Bb()
		}
		FileBb[f] = b
	}
	for r := Rank1; r < RankLength; r++ {
		var b Bitboard
		for f := FileA; f < FileLength; f++ {
			b |= SquareOf(f, r).Bb()
		}
		RankBb[r] = b
	}
}

// Bb returns the single-bit bitboard for sq, or 0 if sq is not valid
// (keeps "attacks_from[0]" style 0-entries well defined ).
func (sq Square) Bb() Bitboard {
	if !sq.IsValid() {
		return BbZero
	}
	return Bitboard(1) << uint(sq)
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare sets sq's bit.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

// PopSquare clears sq's bit.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bb()
}

// Lsb returns the lowest set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns and clears the lowest set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		b.PopSquare(sq)
	}
	return sq
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts every set square one step in direction d,
// dropping any square that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileBb[FileH]) << 1
	case West:
		return (b &^ FileBb[FileA]) >> 1
	case Northeast:
		return (b &^ FileBb[FileH]) << 9
	case Southeast:
		return (b &^ FileBb[FileH]) >> 7
	case Northwest:
		return (b &^ FileBb[FileA]) << 7
	case Southwest:
		return (b &^ FileBb[FileA]) >> 9
	default:
		return BbZero
	}
}

// String renders the bitboard as an 8x8 grid, see StringBoard.
func (b Bitboard) String() string {
	return b.StringBoard()
}

// StringBoard renders the bitboard as an 8x8 grid of '1'/'.' with rank 8
// on top, the conventional way to eyeball a bitboard in logs/tests.
func (b Bitboard) StringBoard() string {
	var s strings.Builder
	for r := Rank8; r.IsValid(); r-- {
		for f := FileA; f < FileLength; f++ {
			if b.Has(SquareOf(f, r)) {
				s.WriteByte('1')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return s.String()
}
