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

// Magic holds the fancy-magic-bitboard lookup for one square of one
// sliding piece type (bishop or rook). Implements the classic
// "fancy magic bitboards" technique, adapted to this project's Square
// bijection.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

var (
	bishopTable [0x1480]Bitboard
	rookTable   [0x19000]Bitboard
	bishopMagics [SqLength]Magic
	rookMagics   [SqLength]Magic
)

var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = [4]Direction{North, East, South, West}

// slidingAttack walks each of the four directions from sq on an empty
// or partially occupied board, stopping (inclusive) at the first
// occupied square.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

type prng struct{ s uint64 }

func newPrng(seed uint64) *prng { return &prng{s: seed} }

func (r *prng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a random value with roughly 1/8th of its bits set
// on average, which converges to valid magics much faster than a
// uniformly random 64 bit value.
func (r *prng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

var magicSeeds = [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// initMagics computes the magic numbers and attack tables for all 64
// squares of one sliding piece type.
func initMagics(table []Bitboard, magics *[SqLength]Magic, dirs [4]Direction) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((RankBb[Rank1] | RankBb[Rank8]) &^ RankBb[sq.RankOf()]) |
			((FileBb[FileA] | FileBb[FileH]) &^ FileBb[sq.FileOf()])

		m := &magics[sq]
		m.Mask = slidingAttack(dirs, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = table
		} else {
			// The previous square's subtable spans exactly
			// 2^popcount(mask) slots - one per subset of its mask -
			// so the next square's subtable starts right after it.
			prevSize := 1 << uint(magics[sq-1].Mask.PopCount())
			m.Attacks = magics[sq-1].Attacks[prevSize:]
		}

		var b Bitboard
		size := 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrng(magicSeeds[sq.RankOf()])
		for i := 0; i < size; {
			// Keep drawing sparse random candidates until one spreads
			// the mask's high byte across at least 6 bits - a cheap
			// filter that rejects most bad magics before the
			// expensive full verification below.
			for {
				m.Magic = Bitboard(rng.sparseRand())
				if (((m.Magic * m.Mask) >> 56) & 0xFF).PopCount() >= 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func initSliderMagics() {
	initMagics(bishopTable[:], &bishopMagics, bishopDirs)
	initMagics(rookTable[:], &rookMagics, rookDirs)
}

// bishopAttacks returns the bishop attack bitboard from sq given the
// current board occupancy, via magic-bitboard lookup (O(1)).
func bishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// rookAttacks returns the rook attack bitboard from sq given the
// current board occupancy.
func rookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// queenAttacks is the union of a rook and bishop from the same square.
func queenAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopAttacks(sq, occupied) | rookAttacks(sq, occupied)
}
