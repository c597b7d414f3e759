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

package attacks

import (
	"encoding/gob"
	"os"

	"github.com/stannous/shatranj/internal/logging"
	. "github.com/stannous/shatranj/internal/types"
)

// cacheImage is the gob-serializable snapshot of every table Init
// builds. The shared bishopTable/rookTable arrays are stored whole, and
// each Magic.Attacks slice is stored as an offset and length into its
// table; LoadTables copies the arrays back in and re-slices them, so
// the in-memory layout after a cache load is identical to one built
// live.
type cacheImage struct {
	KnightMoves [64]uint64
	KingMoves   [64]uint64
	PawnAttacks [2][64]uint64
	LineMask    [64][64]uint64
	Between     [64][64]uint64

	BishopTable  []uint64
	RookTable    []uint64
	BishopMagics [64]magicImage
	RookMagics   [64]magicImage
}

type magicImage struct {
	Mask   uint64
	Magic  uint64
	Offset int
	Size   int
	Shift  uint
}

// SaveTables persists the tables Init built to path, the on-disk
// cache ("shatranj-data.bin"): a pure optimization, the core never
// requires the file to be present.
func SaveTables(path string) error {
	initOnce.Do(func() {
		initLeaperTables()
		initPawnTables()
		initSliderMagics()
		initLineTables()
	})

	img := buildCacheImage()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(img); err != nil {
		return err
	}
	logging.GetLog().Infof("wrote attack table cache to %s", path)
	return nil
}

// LoadTables attempts to populate every table from the cache file at
// path. It returns false (with no error) if the file is simply absent,
// in which case the caller should fall back to Init.
func LoadTables(path string) (bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	var img cacheImage
	if err := gob.NewDecoder(f).Decode(&img); err != nil {
		return false, err
	}
	applyCacheImage(&img)
	logging.GetLog().Infof("loaded attack table cache from %s", path)
	return true, nil
}

func buildCacheImage() cacheImage {
	var img cacheImage
	for sq := 0; sq < 64; sq++ {
		img.KnightMoves[sq] = uint64(knightMoves[sq])
		img.KingMoves[sq] = uint64(kingMoves[sq])
		img.PawnAttacks[0][sq] = uint64(pawnAttacks[0][sq])
		img.PawnAttacks[1][sq] = uint64(pawnAttacks[1][sq])
		for sq2 := 0; sq2 < 64; sq2++ {
			img.LineMask[sq][sq2] = uint64(lineMask[sq][sq2])
			img.Between[sq][sq2] = uint64(between[sq][sq2])
		}
	}

	img.BishopTable = bitboardsToUint64(bishopTable[:])
	img.RookTable = bitboardsToUint64(rookTable[:])
	for sq := 0; sq < 64; sq++ {
		img.BishopMagics[sq] = magicToImage(&bishopMagics[sq], bishopTable[:])
		img.RookMagics[sq] = magicToImage(&rookMagics[sq], rookTable[:])
	}
	return img
}

func magicToImage(m *Magic, table []Bitboard) magicImage {
	offset := len(table) - len(m.Attacks)
	return magicImage{
		Mask:   uint64(m.Mask),
		Magic:  uint64(m.Magic),
		Offset: offset,
		Size:   len(m.Attacks),
		Shift:  m.Shift,
	}
}

func applyCacheImage(img *cacheImage) {
	for sq := 0; sq < 64; sq++ {
		knightMoves[sq] = Bitboard(img.KnightMoves[sq])
		kingMoves[sq] = Bitboard(img.KingMoves[sq])
		pawnAttacks[0][sq] = Bitboard(img.PawnAttacks[0][sq])
		pawnAttacks[1][sq] = Bitboard(img.PawnAttacks[1][sq])
		for sq2 := 0; sq2 < 64; sq2++ {
			lineMask[sq][sq2] = Bitboard(img.LineMask[sq][sq2])
			between[sq][sq2] = Bitboard(img.Between[sq][sq2])
		}
	}

	uint64sToBitboards(img.BishopTable, bishopTable[:])
	uint64sToBitboards(img.RookTable, rookTable[:])
	for sq := 0; sq < 64; sq++ {
		imageToMagic(&img.BishopMagics[sq], &bishopMagics[sq], bishopTable[:])
		imageToMagic(&img.RookMagics[sq], &rookMagics[sq], rookTable[:])
	}

	initOnce.Do(func() {}) // mark Init as already satisfied
}

func imageToMagic(src *magicImage, dst *Magic, table []Bitboard) {
	dst.Mask = Bitboard(src.Mask)
	dst.Magic = Bitboard(src.Magic)
	dst.Shift = src.Shift
	dst.Attacks = table[src.Offset : src.Offset+src.Size]
}

func bitboardsToUint64(b []Bitboard) []uint64 {
	out := make([]uint64, len(b))
	for i, v := range b {
		out[i] = uint64(v)
	}
	return out
}

func uint64sToBitboards(in []uint64, dst []Bitboard) {
	for i, v := range in {
		dst[i] = Bitboard(v)
	}
}
