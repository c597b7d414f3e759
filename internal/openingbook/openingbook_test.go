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

package openingbook

import (
	"encoding/gob"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/stannous/shatranj/internal/types"
)

func writeTestBook(t *testing.T, entries map[uint64]BookEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gob.NewEncoder(f).Encode(entries))
	return path
}

func TestLoadAndProbeHit(t *testing.T) {
	e1 := Move{From: 12, To: 28}
	entries := map[uint64]BookEntry{
		1: {ZobristKey: 1, Counter: 3, Moves: []Successor{{Move: e1, NextEntry: 2}}},
	}
	path := writeTestBook(t, entries)

	b := NewBook()
	require.NoError(t, b.Load(path))
	assert.Equal(t, 1, b.NumberOfEntries())

	move, ok := b.Probe(1, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	assert.True(t, move.Equal(e1))
}

func TestProbeMiss(t *testing.T) {
	path := writeTestBook(t, map[uint64]BookEntry{})
	b := NewBook()
	require.NoError(t, b.Load(path))

	_, ok := b.Probe(42, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestProbeEntryWithNoMoves(t *testing.T) {
	entries := map[uint64]BookEntry{5: {ZobristKey: 5, Counter: 1}}
	path := writeTestBook(t, entries)
	b := NewBook()
	require.NoError(t, b.Load(path))

	_, ok := b.Probe(5, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	b := NewBook()
	err := b.Load(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	assert.Error(t, err)
}

func TestProbePicksAmongSuccessors(t *testing.T) {
	m1 := Move{From: 12, To: 28}
	m2 := Move{From: 11, To: 27}
	entries := map[uint64]BookEntry{
		1: {ZobristKey: 1, Moves: []Successor{{Move: m1, NextEntry: 2}, {Move: m2, NextEntry: 3}}},
	}
	path := writeTestBook(t, entries)
	b := NewBook()
	require.NoError(t, b.Load(path))

	seen := map[Square]bool{}
	for seed := int64(0); seed < 20; seed++ {
		move, ok := b.Probe(1, rand.New(rand.NewSource(seed)))
		require.True(t, ok)
		seen[move.From] = true
	}
	assert.True(t, len(seen) >= 1)
}
