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

import "fmt"

// MoveKind distinguishes the six move shapes lists: quiet,
// capture, castle, en-passant, pawn-double, promotion.
type MoveKind uint8

// MoveKind constants.
const (
	Quiet MoveKind = iota
	Capture
	Castling
	EnPassant
	PawnDouble
	Promotion
)

func (k MoveKind) String() string {
	switch k {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case Castling:
		return "castle"
	case EnPassant:
		return "en-passant"
	case PawnDouble:
		return "pawn-double"
	case Promotion:
		return "promotion"
	default:
		return "?"
	}
}

// Move is the immutable move record: from, to, kind, the captured
// piece (if any) and the promoted piece (if the kind is Promotion,
// possibly combined with a capture).
//
// This is a small value struct rather than a packed integer. Value
// carries a move-ordering sort key, set and read only by
// movegen/search; it is not part of move identity (Equal ignores it).
type Move struct {
	From      Square
	To        Square
	Kind      MoveKind
	Captured  PieceType
	Promoted  PieceType
	Value     Value
}

// MoveNone marks "no move": both squares are SqNone, so it is
// distinguishable from any real move because From==To is never a
// legal move.
var MoveNone = Move{From: SqNone, To: SqNone}

// IsValid reports whether m looks like a real move: both squares on the
// board and distinct. Piece types are not checked.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid() && m.From != m.To
}

// IsCapture reports whether m removes an enemy piece, including
// en-passant and capturing promotions.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant || (m.Kind == Promotion && m.Captured != PtNone)
}

// MoveOf strips the sort value, returning a move with equal identity.
func (m Move) MoveOf() Move {
	m.Value = 0
	return m
}

// Equal compares move identity, ignoring Value.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Kind == o.Kind && m.Promoted == o.Promoted
}

// StringUci renders the move as a UCI-style long algebraic string, e.g.
// "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += toLower(m.Promoted.Char())
	}
	return s
}

func (m Move) String() string {
	if !m.IsValid() {
		return "Move{none}"
	}
	return fmt.Sprintf("Move{%s %s}", m.StringUci(), m.Kind)
}
