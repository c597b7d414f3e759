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

// Package openingbook is the consumer side of an opening book: a
// zobrist-keyed map of known positions to candidate next moves,
// persisted as gob and consulted before search. Building a
// book from a game database is a separate concern handled by
// cmd/bookgen; Book here only loads the persisted result and serves
// lookups.
package openingbook

import (
	"encoding/gob"
	"math/rand"
	"os"

	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

// Successor pairs a candidate move with the zobrist key of the
// position it leads to.
type Successor struct {
	Move      Move
	NextEntry uint64
}

// BookEntry describes one position: how often the book-building data
// reached it, and the moves known to follow from it.
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []Successor
}

// Book is a loaded opening book. Create with NewBook, then Load.
type Book struct {
	entries map[uint64]BookEntry
}

// NewBook creates an empty, unloaded book.
func NewBook() *Book {
	return &Book{}
}

// Load reads a gob-encoded map[uint64]BookEntry from path, as written
// by cmd/bookgen.
func (b *Book) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries := make(map[uint64]BookEntry)
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return err
	}
	b.entries = entries
	return nil
}

// NumberOfEntries reports how many positions the loaded book knows.
func (b *Book) NumberOfEntries() int {
	return len(b.entries)
}

// Probe looks up key and, if it has known successor moves, returns one
// chosen at random via rnd. Returns MoveNone, false on a miss or a
// position recorded with no known continuation.
func (b *Book) Probe(key position.Key, rnd *rand.Rand) (Move, bool) {
	entry, ok := b.entries[uint64(key)]
	if !ok || len(entry.Moves) == 0 {
		return MoveNone, false
	}
	return entry.Moves[rnd.Intn(len(entry.Moves))].Move, true
}
