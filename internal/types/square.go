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

// Package types contains the small, widely shared value types the rest
// of the engine is built on: squares, bitboards, pieces, colors, moves.
// Most of these would be enum candidates in another language; Go has no
// enums, so they are typed integers with a const block and methods.
package types

import "fmt"

// Square is one of the 64 board squares, numbered 0..63. The bijection
// used here places a1 at 0 and h8 at 63, ascending by rank (a1..h1,
// a2..h2, ...). Any consistent bijection works as long as every table
// is built against it.
type Square uint8

// SqNone is a sentinel for "no square".
const SqNone Square = 64

//nolint:golint
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// SqLength is the number of valid squares.
const SqLength = 64

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < SqLength
}

// FileOf returns the file (a..h, 0..7) of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank (1..8, 0..7) of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and rank.
func SquareOf(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

// MakeSquare parses a two character algebraic square name ("e4") and
// returns SqNone if it is not well formed.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String renders the square in algebraic notation, or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.FileOf()), '1'+byte(sq.RankOf()))
}

// To returns the square reached by moving one step in Direction d, or
// SqNone if that would leave the board.
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	t := int(sq) + int(d)
	if t < 0 || t >= SqLength {
		return SqNone
	}
	// guard against file wrap: a step must change file by at most 1.
	if fd := fileDelta(sq.FileOf(), Square(t).FileOf()); fd > 1 {
		return SqNone
	}
	return Square(t)
}

func fileDelta(a, b File) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	fd := int(a.FileOf()) - int(b.FileOf())
	if fd < 0 {
		fd = -fd
	}
	rd := int(a.RankOf()) - int(b.RankOf())
	if rd < 0 {
		rd = -rd
	}
	if fd > rd {
		return fd
	}
	return rd
}
