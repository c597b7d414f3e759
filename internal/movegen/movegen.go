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

// Package movegen generates the legal move list for a position: pin
// masks, check evasion, castling, en-passant, and promotion, built
// directly on the attacks package's attack map rather than a
// generate-then-filter approach.
package movegen

import (
	"github.com/stannous/shatranj/internal/attacks"
	"github.com/stannous/shatranj/internal/moveslice"
	"github.com/stannous/shatranj/internal/position"
	. "github.com/stannous/shatranj/internal/types"
)

// MaxMoves bounds the move list capacity; no reachable chess position
// has anywhere near this many legal moves.
const MaxMoves = 256

// GenMode selects which move categories to emit.
type GenMode int

// GenMode values.
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// Movegen holds move-ordering state (PV move, killer moves) that
// persists across calls on the same search thread. Create with
// NewMoveGen; the zero value is not usable.
type Movegen struct {
	pvMove      Move
	killerMoves [2]Move
}

// NewMoveGen creates a move generator with no PV or killer moves set.
func NewMoveGen() *Movegen {
	return &Movegen{pvMove: MoveNone, killerMoves: [2]Move{MoveNone, MoveNone}}
}

// SetPvMove sets the move GenerateLegalMoves should order first.
func (mg *Movegen) SetPvMove(m Move) { mg.pvMove = m.MoveOf() }

// StoreKiller records m as a killer move for this ply, bumping any
// previous killer to the second slot.
func (mg *Movegen) StoreKiller(m Move) {
	mo := m.MoveOf()
	if mg.killerMoves[0] == mo {
		return
	}
	if mg.killerMoves[1] == mo {
		mg.killerMoves[0], mg.killerMoves[1] = mo, mg.killerMoves[0]
		return
	}
	mg.killerMoves[1] = mg.killerMoves[0]
	mg.killerMoves[0] = mo
}

// PvMove returns the move last set via SetPvMove.
func (mg *Movegen) PvMove() Move { return mg.pvMove }

// KillerMoves returns the two killer-move slots.
func (mg *Movegen) KillerMoves() [2]Move { return mg.killerMoves }

// GenerateLegalMoves is the move generator's entry point: it refreshes
// the attack map, branches on whether the side to move is in check,
// and on an empty result classifies the position as checkmate or
// stalemate via Position.SetTerminal.
func (mg *Movegen) GenerateLegalMoves(pos *position.Position, mode GenMode) *moveslice.MoveSlice {
	moves := moveslice.NewMoveSlice(MaxMoves)

	us := pos.NextPlayer()
	them := us.Flip()
	kingSq := pos.KingSquare(us)
	amap := attacks.Compute(pos)
	checkers := amap.To[kingSq] & pos.OccupiedBy(them)

	switch checkers.PopCount() {
	case 0:
		mg.generateNormal(pos, mode, moves)
	case 1:
		mg.generateEvasions(pos, checkers.Lsb(), moves)
	default:
		mg.generateKingMoves(pos, mode, moves, true)
	}

	mg.orderMoves(moves)

	if moves.Len() == 0 {
		if pos.InCheck() {
			pos.SetTerminal(position.OutcomeCheckmate, them)
		} else {
			pos.SetTerminal(position.OutcomeStalemate, White)
		}
	} else {
		pos.ClearTerminal()
	}
	return moves
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building or ordering the full list.
func (mg *Movegen) HasLegalMove(pos *position.Position) bool {
	moves := mg.GenerateLegalMoves(pos, GenAll)
	return moves.Len() > 0
}

func emit(moves *moveslice.MoveSlice, mode GenMode, m Move) {
	if m.IsCapture() {
		if mode&GenCap != 0 {
			moves.PushBack(m)
		}
		return
	}
	if mode&GenNonCap != 0 {
		moves.PushBack(m)
	}
}

// orderMoves promotes the PV move to the front, then captures (sorted
// by the value of the captured piece), then killer moves, then plain
// quiet moves last.
func (mg *Movegen) orderMoves(moves *moveslice.MoveSlice) {
	moves.ForEach(func(i int) {
		m := moves.At(i)
		switch {
		case m.MoveOf().Equal(mg.pvMove):
			m.Value = ValueInfinite
		case m.MoveOf().Equal(mg.killerMoves[0]):
			m.Value = 50
		case m.MoveOf().Equal(mg.killerMoves[1]):
			m.Value = 49
		case m.IsCapture():
			m.Value = m.Captured.Value()
		}
		moves.Set(i, m)
	})
	moves.Sort()
}

// pinnedMask computes the set of squares the piece on s (belonging to
// us, with king on kingSq) may still move to without exposing kingSq.
// Unpinned pieces get BbAll.
func pinnedMask(pos *position.Position, s, kingSq Square, us Color) Bitboard {
	line := attacks.LineThrough(s, kingSq)
	if line == BbZero {
		return BbAll
	}

	occWithoutS := pos.Occupied() &^ s.Bb()
	var pinnerType PieceType
	var ray Bitboard
	if onDiagonal(s, kingSq) {
		pinnerType = Bishop
		ray = attacks.SliderAttacks(Bishop, kingSq, occWithoutS)
	} else {
		pinnerType = Rook
		ray = attacks.SliderAttacks(Rook, kingSq, occWithoutS)
	}

	enemy := pos.OccupiedBy(us.Flip())
	for bb := ray & line & enemy; bb != BbZero; {
		sq := bb.PopLsb()
		pt := pos.PieceOn(sq).TypeOf()
		if pt == Queen || pt == pinnerType {
			return line
		}
	}
	return BbAll
}

// onDiagonal reports whether a and b are aligned on a diagonal rather
// than sharing a rank or file. Only meaningful when the two squares are
// already known to share a line.
func onDiagonal(a, b Square) bool {
	return a.FileOf() != b.FileOf() && a.RankOf() != b.RankOf()
}

// generateNormal generates the normal branch, used when the side to
// move is not in check.
func (mg *Movegen) generateNormal(pos *position.Position, mode GenMode, moves *moveslice.MoveSlice) {
	generateOfficerMoves(pos, mode, moves, BbAll)
	mg.generateKingMoves(pos, mode, moves, false)
	generatePawnMoves(pos, mode, moves, BbAll)
	generateCastling(pos, mode, moves)
}

// generateOfficerMoves emits knight/bishop/rook/queen moves whose
// destination lies in allowed (BbAll outside of check; the checker's
// square or the block squares between king and checker during
// evasion), honoring each piece's pin mask.
func generateOfficerMoves(pos *position.Position, mode GenMode, moves *moveslice.MoveSlice, allowed Bitboard) {
	us := pos.NextPlayer()
	ownOcc := pos.OccupiedBy(us)
	occ := pos.Occupied()
	kingSq := pos.KingSquare(us)

	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		pieces := pos.PiecesOf(us, pt)
		for pieces != BbZero {
			s := pieces.PopLsb()
			mask := pinnedMask(pos, s, kingSq, us) & allowed
			targets := attacks.AttacksFrom(pt, us, s, occ) &^ ownOcc & mask
			for targets != BbZero {
				t := targets.PopLsb()
				emitQuietOrCapture(pos, mode, moves, s, t)
			}
		}
	}
}

// generateKingMoves emits legal king moves: any step to a square not
// occupied by a friendly piece and not attacked by the enemy. When
// doubleCheck is true only this function is called ("double
// check admits only king moves").
func (mg *Movegen) generateKingMoves(pos *position.Position, mode GenMode, moves *moveslice.MoveSlice, doubleCheck bool) {
	us := pos.NextPlayer()
	them := us.Flip()
	kingSq := pos.KingSquare(us)
	ownOcc := pos.OccupiedBy(us)
	occWithoutKing := pos.Occupied() &^ kingSq.Bb()

	targets := attacks.KingMoves(kingSq) &^ ownOcc
	for targets != BbZero {
		t := targets.PopLsb()
		if attacks.AttacksTo(t, occWithoutKing, pos.PieceOn)&pos.OccupiedBy(them) != BbZero {
			continue
		}
		emitQuietOrCapture(pos, mode, moves, kingSq, t)
	}
}

func emitQuietOrCapture(pos *position.Position, mode GenMode, moves *moveslice.MoveSlice, from, to Square) {
	if target := pos.PieceOn(to); target != PieceNone {
		m := Move{From: from, To: to, Kind: Capture, Captured: target.TypeOf()}
		m.Value = target.TypeOf().Value()
		emit(moves, mode, m)
		return
	}
	emit(moves, mode, Move{From: from, To: to, Kind: Quiet})
}
