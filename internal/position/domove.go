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

// DoMove applies m to the position. It performs no legality check: m
// is assumed to come from the movegen package, which only ever emits
// legal moves. History is pushed before anything changes, castling
// rights/en-passant target/half-move clock are updated, the board and
// zobrist key are brought in line with the new state, and the
// repetition trail records the resulting signature.
func (p *Position) DoMove(m Move) {
	fromPiece := p.board[m.From]
	color := fromPiece.ColorOf()

	p.history = append(p.history, historyEntry{
		zobristKey:      p.zobristKey,
		move:            m,
		captured:        p.capturedPieceFor(m),
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
	})

	switch m.Kind {
	case Castling:
		p.doCastling(m, color)
	case EnPassant:
		p.doEnPassant(m, color)
	case Promotion:
		p.doPromotion(m, color)
	default:
		p.doNormal(m, fromPiece, color)
	}

	p.outcome = OutcomeNone
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.sideToMove
	p.plyCount++

	p.repetitionCounts[p.zobristKey]++
	p.repetitionJournal = append(p.repetitionJournal, p.zobristKey)
}

// UndoMove rewinds the most recent DoMove. Board state is reconstructed
// move by move; the zobrist key and every other scalar field are
// instead restored verbatim from the history entry, which is simpler
// and cheaper than unwinding each XOR individually.
func (p *Position) UndoMove() {
	n := len(p.history)
	h := p.history[n-1]
	p.history = p.history[:n-1]

	key := p.repetitionJournal[len(p.repetitionJournal)-1]
	p.repetitionJournal = p.repetitionJournal[:len(p.repetitionJournal)-1]
	p.repetitionCounts[key]--
	if p.repetitionCounts[key] == 0 {
		delete(p.repetitionCounts, key)
	}

	p.nextPlayer = p.nextPlayer.Flip()
	color := p.nextPlayer
	m := h.move

	switch m.Kind {
	case Castling:
		p.undoCastling(m)
	case EnPassant:
		p.undoEnPassant(m, color, h.captured)
	case Promotion:
		p.undoPromotion(m, color, h.captured)
	default:
		p.movePiece(m.To, m.From)
		if h.captured != PieceNone {
			p.putPiece(h.captured, m.To)
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
	p.plyCount--
	p.outcome = OutcomeNone
}

// capturedPieceFor returns the piece m's execution will remove from the
// board, which for en-passant sits on a different square than m.To.
func (p *Position) capturedPieceFor(m Move) Piece {
	if m.Kind == EnPassant {
		color := p.board[m.From].ColorOf()
		capSq := m.To.To(color.Flip().MoveDirection())
		return p.board[capSq]
	}
	return p.board[m.To]
}

func (p *Position) doNormal(m Move, fromPiece Piece, color Color) {
	if cr := RightsLostOn(m.From) | RightsLostOn(m.To); cr != CastlingNone {
		p.setCastlingRights(cr)
	}
	p.clearEnPassant()

	captured := p.board[m.To]
	switch {
	case captured != PieceNone:
		p.removePiece(m.To)
		p.halfMoveClock = 0
	case fromPiece.TypeOf() == Pawn:
		p.halfMoveClock = 0
		if m.Kind == PawnDouble {
			epSq := m.To.To(color.Flip().MoveDirection())
			p.enPassantSquare = epSq
			p.zobristKey ^= zobristBase.enPassantFile[epSq.FileOf()]
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(m.From, m.To)
}

func (p *Position) doCastling(m Move, color Color) {
	p.movePiece(m.From, m.To)
	switch m.To {
	case SqG1:
		p.movePiece(SqH1, SqF1)
	case SqC1:
		p.movePiece(SqA1, SqD1)
	case SqG8:
		p.movePiece(SqH8, SqF8)
	case SqC8:
		p.movePiece(SqA8, SqD8)
	}
	if color == White {
		p.setCastlingRights(CastlingWhite)
	} else {
		p.setCastlingRights(CastlingBlack)
	}
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) undoCastling(m Move) {
	p.movePiece(m.To, m.From)
	switch m.To {
	case SqG1:
		p.movePiece(SqF1, SqH1)
	case SqC1:
		p.movePiece(SqD1, SqA1)
	case SqG8:
		p.movePiece(SqF8, SqH8)
	case SqC8:
		p.movePiece(SqD8, SqA8)
	}
}

func (p *Position) doEnPassant(m Move, color Color) {
	capSq := m.To.To(color.Flip().MoveDirection())
	p.removePiece(capSq)
	p.movePiece(m.From, m.To)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) undoEnPassant(m Move, color Color, captured Piece) {
	p.movePiece(m.To, m.From)
	capSq := m.To.To(color.Flip().MoveDirection())
	p.putPiece(captured, capSq)
}

func (p *Position) doPromotion(m Move, color Color) {
	if cr := RightsLostOn(m.From) | RightsLostOn(m.To); cr != CastlingNone {
		p.setCastlingRights(cr)
	}
	if p.board[m.To] != PieceNone {
		p.removePiece(m.To)
	}
	p.removePiece(m.From)
	p.putPiece(MakePiece(color, m.Promoted), m.To)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) undoPromotion(m Move, color Color, captured Piece) {
	p.removePiece(m.To)
	p.putPiece(MakePiece(color, Pawn), m.From)
	if captured != PieceNone {
		p.putPiece(captured, m.To)
	}
}
