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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stannous/shatranj/internal/attacks"
	"github.com/stannous/shatranj/internal/config"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	attacks.Init()
	m.Run()
}

func TestNewSizesToPowerOfTwoEntries(t *testing.T) {
	tt := New(2)
	assert.Equal(t, uint64(65_536), tt.maxEntries)
	assert.Equal(t, 65_536, cap(tt.data))

	tt = New(64)
	assert.Equal(t, uint64(2_097_152), tt.maxEntries)

	tt = New(4_096)
	assert.Equal(t, uint64(134_217_728), tt.maxEntries)
}

func TestProbeMiss(t *testing.T) {
	tt := New(1)
	pos, err := position.NewFromFEN(position.StartFEN)
	require.NoError(t, err)

	_, ok := tt.Probe(pos.ZobristKey())
	assert.False(t, ok)
	assert.EqualValues(t, 1, tt.Stats.Misses)
}

func TestPutThenProbeHit(t *testing.T) {
	tt := New(1)
	move := Move{From: SqE2, To: SqE4, Kind: PawnDouble}

	tt.Put(111, move, 4, Value(111), ValueNA, Alpha)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.Puts)

	e, ok := tt.Probe(111)
	require.True(t, ok)
	assert.EqualValues(t, 111, e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, Alpha, e.Vtype())
	assert.EqualValues(t, 0, e.Age())
}

func TestPutUpdatesSameKey(t *testing.T) {
	tt := New(1)
	move := Move{From: SqE2, To: SqE4, Kind: PawnDouble}

	tt.Put(111, move, 4, Value(111), ValueNA, Alpha)
	tt.Put(111, move, 5, Value(112), ValueNA, Beta)

	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.Puts)
	assert.EqualValues(t, 1, tt.Stats.Updates)
	assert.EqualValues(t, 0, tt.Stats.Collisions)

	e, ok := tt.Probe(111)
	require.True(t, ok)
	assert.EqualValues(t, 112, e.Value())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, Beta, e.Vtype())
}

func TestPutCollisionReplacesOnlyWhenDeeperOrStale(t *testing.T) {
	tt := New(1)
	move := Move{From: SqE2, To: SqE4, Kind: PawnDouble}

	tt.Put(111, move, 6, Value(10), ValueNA, Exact)

	collisionKey := position.Key(111 + tt.maxEntries)
	tt.Put(collisionKey, move, 4, Value(20), ValueNA, Beta)

	assert.EqualValues(t, 1, tt.Stats.Collisions)
	assert.EqualValues(t, 0, tt.Stats.Overwrites)

	_, ok := tt.Probe(collisionKey)
	assert.False(t, ok, "shallower collision must not evict a deeper entry")

	e, ok := tt.Probe(111)
	require.True(t, ok)
	assert.EqualValues(t, 10, e.Value())
}

func TestClear(t *testing.T) {
	tt := New(1)
	move := Move{From: SqE2, To: SqE4, Kind: PawnDouble}

	tt.Put(111, move, 4, Value(1), ValueNA, Exact)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	_, ok := tt.Probe(111)
	assert.False(t, ok)
}

func TestAgeEntries(t *testing.T) {
	tt := New(1)
	move := Move{From: SqE2, To: SqE4, Kind: PawnDouble}
	tt.Put(111, move, 4, Value(1), ValueNA, Exact)

	e, ok := tt.Probe(111)
	require.True(t, ok)
	assert.EqualValues(t, 0, e.Age())

	tt.AgeEntries()
	assert.EqualValues(t, 1, tt.data[tt.hash(111)].Age())
}
