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
	"sort"
	"strings"

	"github.com/gammazero/deque"
)

// MoveList is a deque-backed move list, so that pushing a move to the
// front is cheap. Movegen, search and the CLI driver do not use it:
// they pass moves as moveslice.MoveSlice, a plain []Move.
type MoveList struct {
	d deque.Deque[Move]
}

// NewMoveList creates an empty MoveList.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Len returns the number of moves.
func (ml *MoveList) Len() int { return ml.d.Len() }

// At returns the i-th move.
func (ml *MoveList) At(i int) Move { return ml.d.At(i) }

// PushBack appends a move.
func (ml *MoveList) PushBack(m Move) { ml.d.PushBack(m) }

// PushFront prepends a move.
func (ml *MoveList) PushFront(m Move) { ml.d.PushFront(m) }

// Clear empties the list, keeping the backing storage.
func (ml *MoveList) Clear() {
	for ml.d.Len() > 0 {
		ml.d.PopBack()
	}
}

// Slice copies the list out as a plain slice, in order.
func (ml *MoveList) Slice() []Move {
	out := make([]Move, ml.d.Len())
	for i := range out {
		out[i] = ml.d.At(i)
	}
	return out
}

// SortBySortValueDesc orders moves by descending Value, keeping the
// order of moves with equal Value.
func (ml *MoveList) SortBySortValueDesc() {
	s := ml.Slice()
	sort.SliceStable(s, func(i, j int) bool { return s[i].Value > s[j].Value })
	ml.Clear()
	for _, m := range s {
		ml.d.PushBack(m)
	}
}

// PromoteToFront moves the first occurrence of target (compared by
// Equal, ignoring sort Value) to the front of the list.
func (ml *MoveList) PromoteToFront(target Move) {
	n := ml.d.Len()
	for i := 0; i < n; i++ {
		if ml.d.At(i).Equal(target) {
			if i == 0 {
				return
			}
			m := ml.d.At(i)
			for j := i; j > 0; j-- {
				ml.d.Set(j, ml.d.At(j-1))
			}
			ml.d.Set(0, m)
			return
		}
	}
}

// StringUci renders a space separated list of UCI-style move strings.
func (ml *MoveList) StringUci() string {
	var b strings.Builder
	for i := 0; i < ml.d.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ml.d.At(i).StringUci())
	}
	return b.String()
}
