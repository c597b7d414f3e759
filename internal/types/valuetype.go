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

// ValueType classifies a search score as stored in the transposition
// table: an exact value, or a bound produced by a cutoff.
type ValueType int8

// ValueType constants.
const (
	Vnone ValueType = iota
	Exact
	Alpha // upper bound, from a fail-low node
	Beta  // lower bound, from a fail-high (beta cutoff) node
	vlength
)

// IsValid reports whether vt is one of the defined constants.
func (vt ValueType) IsValid() bool {
	return vt >= Vnone && vt < vlength
}

var valueTypeNames = [vlength]string{"none", "exact", "alpha", "beta"}

func (vt ValueType) String() string {
	if !vt.IsValid() {
		return "?"
	}
	return valueTypeNames[vt]
}
