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

package transpositiontable

import (
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

// TtEntry is one transposition table slot. Move here is already a
// small value struct rather than a packed uint32, so the entry just
// holds it directly instead of bit-packing a smaller slot.
type TtEntry struct {
	key   position.Key
	move  Move
	eval  Value
	value Value
	depth int8
	vtype ValueType
	age   int8
}

func (e *TtEntry) decreaseAge() {
	if e.age > 0 {
		e.age--
	}
}

func (e *TtEntry) increaseAge() {
	if e.age < 7 {
		e.age++
	}
}

// Key returns the zobrist signature this entry was stored under.
func (e *TtEntry) Key() position.Key { return e.key }

// Move returns the best move found the last time this entry was
// stored, or MoveNone.
func (e *TtEntry) Move() Move { return e.move }

// Value returns the search score stored for this position.
func (e *TtEntry) Value() Value { return e.value }

// Eval returns the static evaluation stored alongside the search score.
func (e *TtEntry) Eval() Value { return e.eval }

// Depth returns the search depth the stored value was computed at.
func (e *TtEntry) Depth() int8 { return e.depth }

// Age returns the entry's age: 0 when Put writes or refreshes it,
// raised by one per AgeEntries sweep (up to 7) and lowered by one per
// Probe hit.
func (e *TtEntry) Age() int8 { return e.age }

// Vtype returns whether Value is exact or a bound.
func (e *TtEntry) Vtype() ValueType { return e.vtype }
