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

// PieceType is a piece kind independent of color.
type PieceType int8

// PieceType constants.
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid reports whether pt is one of the 6 piece kinds.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsSliding reports whether pieces of this kind use the magic-bitboard
// ray attack tables (bishop/rook/queen) rather than a fixed leaper
// pattern.
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeChars = [PtLength]string{"", "K", "P", "N", "B", "R", "Q"}

// Char returns the uppercase SAN/FEN letter for the piece type ("" for
// pawn, matching SAN's convention of omitting the pawn letter).
func (pt PieceType) Char() string {
	if pt == Pawn {
		return ""
	}
	if !pt.IsValid() {
		return "-"
	}
	return pieceTypeChars[pt]
}

// String renders the piece type letter (K/P/N/B/R/Q), unlike Char this
// does print "P" for pawns.
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "-"
	}
	return pieceTypeChars[pt]
}

// Value returns the material value of the piece type:
// P=100, N=322, B=344, R=561, Q=891, K=40000.
func (pt PieceType) Value() Value {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 322
	case Bishop:
		return 344
	case Rook:
		return 561
	case Queen:
		return 891
	case King:
		return 40000
	default:
		return 0
	}
}

// Piece is a PieceType bound to a Color, e.g. WhiteKnight.
type Piece int8

// PieceNone is the absence of a piece on a square.
const PieceNone Piece = 0

// Piece constants, laid out as (color<<3 | pieceType) so ColorOf/TypeOf
// are cheap bit operations.
const (
	WhiteKing Piece = iota + 1
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
)

const (
	BlackKing Piece = iota + 9
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
)

// MakePiece builds a Piece from a color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(uint8(c)<<3 | uint8(pt))
}

// TypeOf returns the piece type component.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// ColorOf returns the color component. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// IsValid reports whether p is a real piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// Char returns the FEN letter for the piece (uppercase for white,
// lowercase for black).
func (p Piece) Char() string {
	c := p.TypeOf().String()
	if p.ColorOf() == Black {
		return toLower(c)
	}
	return c
}

func toLower(s string) string {
	if s == "" || s == "-" {
		return s
	}
	r := rune(s[0])
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return string(r)
}

// String renders the piece for debugging.
func (p Piece) String() string {
	if p == PieceNone {
		return "."
	}
	if !p.IsValid() {
		return fmt.Sprintf("Piece(%d)", p)
	}
	return p.Char()
}
