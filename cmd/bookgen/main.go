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

// bookgen builds an opening book for the core searcher: it reads a
// text file of games (one per line, as space-separated UCI moves from
// the starting position) and writes a gob-encoded
// map[uint64]openingbook.BookEntry that internal/openingbook.Book can
// load. This ingestion step is an external collaborator to the core,
// not part of it; the core only ever consumes the gob file this
// produces.
package main

import (
	"bufio"
	"encoding/gob"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stannous/shatranj/internal/movegen"
	"github.com/stannous/shatranj/internal/moveslice"
	"github.com/stannous/shatranj/internal/openingbook"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

var out = message.NewPrinter(language.English)

var regexUciMove = regexp.MustCompile(`[a-h][1-8][a-h][1-8][nbrq]?`)

func main() {
	inPath := flag.String("in", "", "input file, one game per line as space separated UCI moves")
	outPath := flag.String("out", "book.bin", "output path for the gob-encoded book")
	workers := flag.Int("workers", 8, "number of games to process in parallel")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: bookgen -in games.txt -out book.bin")
		os.Exit(1)
	}

	lines, err := readLines(*inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	book := newBookBuilder()
	book.processLines(lines, *workers)

	if err := book.save(*outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out.Printf("wrote %d positions to %s from %d games\n", book.size(), *outPath, len(lines))
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// bookBuilder accumulates BookEntry records under a mutex while
// multiple goroutines each replay one game against their own
// Position/Movegen pair.
type bookBuilder struct {
	lock    sync.Mutex
	entries map[uint64]openingbook.BookEntry
}

func newBookBuilder() *bookBuilder {
	return &bookBuilder{entries: make(map[uint64]openingbook.BookEntry)}
}

func (b *bookBuilder) size() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.entries)
}

// processLines replays every line's move list in parallel, limited to
// workers concurrent games at a time.
func (b *bookBuilder) processLines(lines []string, workers int) {
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	wg.Add(len(lines))
	for _, line := range lines {
		sem <- struct{}{}
		go func(line string) {
			defer wg.Done()
			defer func() { <-sem }()
			b.processLine(line)
		}(line)
	}
	wg.Wait()
}

// processLine replays one game's UCI move list from the starting
// position, recording every position reached and the move that led to
// it. Movegen is not safe to share across goroutines, so each line
// gets its own.
func (b *bookBuilder) processLine(line string) {
	matches := regexUciMove.FindAllString(line, -1)
	if len(matches) == 0 {
		return
	}

	pos, err := position.NewFromFEN(position.StartFEN)
	if err != nil {
		return
	}
	mg := movegen.NewMoveGen()

	b.bumpCounter(uint64(pos.ZobristKey()))

	for _, uci := range matches {
		legal := mg.GenerateLegalMoves(pos, movegen.GenAll)
		move, found := findByUci(legal, uci)
		if !found {
			break
		}
		fromKey := uint64(pos.ZobristKey())
		pos.DoMove(move)
		toKey := uint64(pos.ZobristKey())
		b.addSuccessor(fromKey, toKey, move.MoveOf())
		b.bumpCounter(toKey)
	}
}

func (b *bookBuilder) bumpCounter(key uint64) {
	b.lock.Lock()
	defer b.lock.Unlock()
	e := b.entries[key]
	e.ZobristKey = key
	e.Counter++
	b.entries[key] = e
}

func (b *bookBuilder) addSuccessor(fromKey, toKey uint64, move Move) {
	b.lock.Lock()
	defer b.lock.Unlock()

	e := b.entries[fromKey]
	for _, s := range e.Moves {
		if s.Move.Equal(move) {
			return
		}
	}
	e.Moves = append(e.Moves, openingbook.Successor{Move: move, NextEntry: toKey})
	b.entries[fromKey] = e
}

func findByUci(moves *moveslice.MoveSlice, uci string) (Move, bool) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.StringUci() == uci {
			return m, true
		}
	}
	return MoveNone, false
}

func (b *bookBuilder) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b.lock.Lock()
	defer b.lock.Unlock()
	return gob.NewEncoder(f).Encode(b.entries)
}
