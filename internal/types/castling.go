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

// CastlingRights encodes which castling moves are still available.
type CastlingRights uint8

// Castling bit flags.
const (
	CastlingNone CastlingRights = 0

	WhiteOO  CastlingRights = 1 << 0
	WhiteOOO CastlingRights = 1 << 1
	BlackOO  CastlingRights = 1 << 2
	BlackOOO CastlingRights = 1 << 3

	CastlingWhite CastlingRights = WhiteOO | WhiteOOO
	CastlingBlack CastlingRights = BlackOO | BlackOOO
	CastlingAll   CastlingRights = CastlingWhite | CastlingBlack
)

// Has reports whether all bits in mask are set.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// Add sets the given bits.
func (cr *CastlingRights) Add(mask CastlingRights) { *cr |= mask }

// Remove clears the given bits.
func (cr *CastlingRights) Remove(mask CastlingRights) { *cr &^= mask }

// rightsLostOn maps the four corner squares (and both kings' home
// squares) to the castling rights forfeited when a piece leaves or
// arrives on them - moving the king or a rook, or capturing a rook in
// place, all permanently remove the corresponding right.
var rightsLostOn = map[Square]CastlingRights{
	SqE1: CastlingWhite,
	SqA1: WhiteOOO,
	SqH1: WhiteOO,
	SqE8: CastlingBlack,
	SqA8: BlackOOO,
	SqH8: BlackOO,
}

// RightsLostOn returns the castling rights forfeited when sq is
// vacated or occupied by a capture (moving the king or
// either rook, or having a rook captured on its home square,
// permanently loses the corresponding right).
func RightsLostOn(sq Square) CastlingRights {
	return rightsLostOn[sq]
}

// String renders castling rights in FEN style, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(WhiteOO) {
		s += "K"
	}
	if cr.Has(WhiteOOO) {
		s += "Q"
	}
	if cr.Has(BlackOO) {
		s += "k"
	}
	if cr.Has(BlackOOO) {
		s += "q"
	}
	return s
}
