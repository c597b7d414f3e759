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
	"strings"

	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

// SAN renders m in standard algebraic notation: piece letter
// (omitted for pawns) plus a disambiguator only when another legal move
// of the same piece type reaches the same square, "x" for captures,
// the destination square, and "=" plus the promoted piece letter for
// promotions. Castling renders as O-O/O-O-O. legalMoves is the full
// legal move list at pos, used only to compute disambiguation.
func SAN(pos *position.Position, m Move, legalMoves []Move) string {
	if m.Kind == Castling {
		if m.To.FileOf() == FileG {
			return "O-O"
		}
		return "O-O-O"
	}

	pt := pos.PieceOn(m.From).TypeOf()
	var b strings.Builder

	if pt == Pawn {
		if m.IsCapture() {
			b.WriteString(m.From.FileOf().String())
		}
	} else {
		b.WriteString(pt.Char())
		b.WriteString(disambiguate(pos, m, pt, legalMoves))
	}

	if m.IsCapture() {
		b.WriteByte('x')
	}
	b.WriteString(m.To.String())

	if m.Kind == Promotion {
		b.WriteByte('=')
		b.WriteString(m.Promoted.Char())
	}
	return b.String()
}

// disambiguate returns the minimal SAN disambiguator needed to tell m
// apart from other legal moves of the same piece type landing on the
// same square: nothing if unambiguous, the origin file if no rival
// shares it, the origin rank if no rival shares that instead, or both.
func disambiguate(pos *position.Position, m Move, pt PieceType, legalMoves []Move) string {
	sameFile, sameRank, any := false, false, false
	for _, o := range legalMoves {
		if o.From == m.From || o.To != m.To {
			continue
		}
		if pos.PieceOn(o.From).TypeOf() != pt {
			continue
		}
		any = true
		if o.From.FileOf() == m.From.FileOf() {
			sameFile = true
		}
		if o.From.RankOf() == m.From.RankOf() {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	if !sameFile {
		return m.From.FileOf().String()
	}
	if !sameRank {
		return m.From.RankOf().String()
	}
	return m.From.String()
}
