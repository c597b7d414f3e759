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

package position

import (
	. "github.com/stannous/shatranj/internal/types"
)

// Key is the zobrist signature of a position, used to index the
// transposition table and to recognize repeated positions.
type Key uint64

// zobristTable holds one random 64 bit number per (piece, square) pair,
// per castling-rights combination, per en-passant file, plus one for
// side to move. XOR-ing the relevant entries in as pieces move and
// state changes keeps zobristKey incrementally correct without ever
// recomputing it from scratch.
type zobristTable struct {
	pieces         [15][SqLength]Key
	castlingRights [16]Key
	enPassantFile  [FileLength]Key
	sideToMove     Key
}

var zobristBase zobristTable

// zobristRand is a small xorshift64* generator, seeded with a fixed
// constant so zobrist keys (and therefore any hash collisions) are
// reproducible from run to run - handy when a perft or search
// discrepancy needs to be replayed.
type zobristRand struct{ s uint64 }

func (r *zobristRand) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	r := &zobristRand{s: 1070372}
	for pc := Piece(0); pc < 15; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.next())
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristBase.castlingRights[cr] = Key(r.next())
	}
	for f := FileA; f < FileLength; f++ {
		zobristBase.enPassantFile[f] = Key(r.next())
	}
	zobristBase.sideToMove = Key(r.next())
}
