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

// Package transpositiontable implements a fixed-size, power-of-two
// entry count cache keyed by zobrist signature, used to skip re-search
// of transposed positions. Not thread safe; Resize and Clear must not
// be called while a search is using the table.
package transpositiontable

import (
	"math"
	"sync"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/stannous/shatranj/internal/logging"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

const (
	// MaxSizeMB bounds how large a table Resize will honor.
	MaxSizeMB = 65_536
	mb        = 1 << 20
)

// TtTable is the transposition table. Create with New.
type TtTable struct {
	log             *logging.Logger
	data            []TtEntry
	sizeBytes       uint64
	hashMask        uint64
	maxEntries      uint64
	numberOfEntries uint64
	Stats           TtStats
}

// TtStats holds running counters on table usage.
type TtStats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// New creates a table sized to the largest power of two entry count
// fitting within sizeMB megabytes.
func New(sizeMB int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeMB)
	return tt
}

// Resize rebuilds the table to the largest power-of-two entry count
// fitting in sizeMB, discarding all entries.
func (tt *TtTable) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		tt.log.Warningf("requested TT size %d MB reduced to max %d MB", sizeMB, MaxSizeMB)
		sizeMB = MaxSizeMB
	}

	tt.sizeBytes = uint64(sizeMB) * mb
	entrySize := uint64(entrySizeBytes)
	if tt.sizeBytes < entrySize {
		tt.maxEntries = 0
	} else {
		tt.maxEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeBytes/entrySize))))
	}
	tt.hashMask = tt.maxEntries - 1
	tt.sizeBytes = tt.maxEntries * entrySize
	tt.data = make([]TtEntry, tt.maxEntries)

	tt.log.Infof("TT resized to %d MB, %d entries", tt.sizeBytes/mb, tt.maxEntries)
}

// entrySizeBytes is an estimate used only for sizing the table; Go
// doesn't guarantee a packed struct layout, so this is a generous
// round number rather than unsafe.Sizeof(TtEntry{}).
const entrySizeBytes = 32

// Probe looks up key, returning the entry and true on a hit. A hit
// lowers the entry's age by one (not below 0), offsetting one
// AgeEntries sweep.
func (tt *TtTable) Probe(key position.Key) (*TtEntry, bool) {
	tt.Stats.Probes++
	if tt.maxEntries == 0 {
		tt.Stats.Misses++
		return nil, false
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		e.decreaseAge()
		tt.Stats.Hits++
		return e, true
	}
	tt.Stats.Misses++
	return nil, false
}

// Put stores a search result. A different position sharing the slot is
// replaced only when the new result is deeper, or equally deep and the
// occupant's age is above 1.
func (tt *TtTable) Put(key position.Key, move Move, depth int8, value, eval Value, vtype ValueType) {
	if tt.maxEntries == 0 {
		return
	}
	tt.Stats.Puts++
	e := &tt.data[tt.hash(key)]

	if e.key == 0 {
		tt.numberOfEntries++
		tt.store(e, key, move, depth, value, eval, vtype)
		return
	}

	if e.key != key {
		tt.Stats.Collisions++
		if depth > e.depth || (depth == e.depth && e.age > 1) {
			tt.Stats.Overwrites++
			tt.store(e, key, move, depth, value, eval, vtype)
		}
		return
	}

	// same position: refresh, but don't clobber a known move with
	// MoveNone or a known value with ValueNA.
	tt.Stats.Updates++
	if move != MoveNone {
		e.move = move
	}
	if eval != ValueNA {
		e.eval = eval
	}
	if value != ValueNA {
		e.value = value
		e.depth = depth
		e.vtype = vtype
		e.age = 0
	}
}

func (tt *TtTable) store(e *TtEntry, key position.Key, move Move, depth int8, value, eval Value, vtype ValueType) {
	e.key = key
	e.move = move
	e.eval = eval
	e.value = value
	e.depth = depth
	e.vtype = vtype
	e.age = 0
}

// Clear discards every entry without resizing.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull reports how full the table is, in permille, as UCI expects.
func (tt *TtTable) Hashfull() int {
	if tt.maxEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxEntries)
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 { return tt.numberOfEntries }

// AgeEntries increments every occupied entry's age by one, called
// between searches so Put's replacement policy can tell a fresh entry
// from a stale one. Parallelized across the backing array since this
// runs outside of (never concurrently with) the single-threaded search
// itself.
func (tt *TtTable) AgeEntries() {
	if tt.numberOfEntries == 0 {
		return
	}
	start := time.Now()
	const workers = 32
	var wg sync.WaitGroup
	chunk := tt.maxEntries / workers
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i uint64) {
			defer wg.Done()
			lo := i * chunk
			hi := lo + chunk
			if i == workers-1 {
				hi = tt.maxEntries
			}
			for n := lo; n < hi; n++ {
				if tt.data[n].key != 0 {
					tt.data[n].increaseAge()
				}
			}
		}(uint64(i))
	}
	wg.Wait()
	tt.log.Debugf("aged %d entries in %s", tt.numberOfEntries, time.Since(start))
}

func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashMask
}
