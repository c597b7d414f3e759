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

// Package moveslice is a thin []Move wrapper used on the hot move
// generation and search path, where types.MoveList's deque indirection
// is unwarranted overhead. It is also the type movegen's
// GenerateLegalMoves returns and the CLI driver consumes; types.MoveList
// exists alongside it but no package uses it.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/stannous/shatranj/internal/types"
)

// MoveSlice is a []Move with the handful of operations movegen/search
// need on it.
type MoveSlice []Move

// NewMoveSlice creates an empty MoveSlice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	s := make([]Move, 0, cap)
	return (*MoveSlice)(&s)
}

// Len returns the number of moves in the slice.
func (ms *MoveSlice) Len() int { return len(*ms) }

// PushBack appends a move.
func (ms *MoveSlice) PushBack(m Move) { *ms = append(*ms, m) }

// At returns the move at index i.
func (ms *MoveSlice) At(i int) Move { return (*ms)[i] }

// Set replaces the move at index i.
func (ms *MoveSlice) Set(i int, m Move) { (*ms)[i] = m }

// Clear empties the slice, keeping its backing array.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

// FilterCopy appends every element of ms for which f returns true to
// dest, leaving ms untouched.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, f func(index int) bool) {
	for i, m := range *ms {
		if f(i) {
			*dest = append(*dest, m)
		}
	}
}

// ForEach calls f once per index in order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for i := range *ms {
		f(i)
	}
}

// Slice returns the moves as a plain []Move, sharing the backing array.
func (ms *MoveSlice) Slice() []Move { return *ms }

// Sort orders moves from highest Value to lowest via a stable insertion
// sort: move lists are mostly already close to sorted (PV/killer moves
// nudged to the front) and short, so insertion sort beats a general
// sort here.
func (ms *MoveSlice) Sort() {
	s := *ms
	for i := 1; i < len(s); i++ {
		tmp := s[i]
		j := i
		for j > 0 && tmp.Value > s[j-1].Value {
			s[j] = s[j-1]
			j--
		}
		s[j] = tmp
	}
}

func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveSlice: [%d] { ", len(*ms))
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}
