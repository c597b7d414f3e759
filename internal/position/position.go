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

// Package position represents a chess position: board, bitboards,
// castling/en-passant/half-move state, zobrist signature and the
// repetition trail, plus the reversible DoMove/UndoMove pair that
// mutates it.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stannous/shatranj/internal/attacks"
	"github.com/stannous/shatranj/internal/logging"
	. "github.com/stannous/shatranj/internal/types"
)

// StartFEN is the FEN for the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Outcome records a terminal result once the caller (movegen, finding
// an empty legal move list) has classified it. A Position never infers
// this itself: computing it requires full legal move generation, which
// would make this package depend on movegen.
type Outcome uint8

// Outcome values.
const (
	OutcomeNone Outcome = iota
	OutcomeCheckmate
	OutcomeStalemate
)

type historyEntry struct {
	zobristKey      Key
	move            Move
	captured        Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position is the full mutable chess state. Create one with New or
// NewFromFEN; mutate only through DoMove/UndoMove.
type Position struct {
	board      [SqLength]Piece
	piecesBb   [ColorLength][PtLength]Bitboard
	occupiedBb [ColorLength]Bitboard
	kingSquare [ColorLength]Square

	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color
	plyCount        int

	zobristKey Key

	history []historyEntry

	repetitionCounts  map[Key]int
	repetitionJournal []Key

	outcome Outcome
	winner  Color
}

// New returns a Position set up at the standard starting array.
func New() *Position {
	p, err := NewFromFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("position: start FEN failed to parse: %v", err))
	}
	return p
}

// NewFromFEN parses a (possibly partial) FEN string into a Position.
// Only the piece-placement field is mandatory. When omitted, side to
// move defaults to white, castling rights to none, the en-passant
// target to none, the half-move clock to 0 and the full-move number to
// 1, matching how engines commonly accept abbreviated test FENs.
func NewFromFEN(fen string) (*Position, error) {
	p := &Position{
		enPassantSquare:  SqNone,
		nextPlayer:       White,
		plyCount:         1,
		repetitionCounts: make(map[Key]int),
	}
	if err := p.setupFromFEN(fen); err != nil {
		logging.GetLog().Errorf("position: fen %q rejected: %v", fen, err)
		return nil, err
	}
	p.repetitionCounts[p.zobristKey] = 1
	p.repetitionJournal = append(p.repetitionJournal, p.zobristKey)
	return p, nil
}

var (
	fenPieces  = regexp.MustCompile(`^[pnbrqkPNBRQK1-8/]+$`)
	fenSide    = regexp.MustCompile(`^[wb]$`)
	fenCastle  = regexp.MustCompile(`^(-|K?Q?k?q?)$`)
	fenEnPass  = regexp.MustCompile(`^(-|[a-h][36])$`)
)

func (p *Position) setupFromFEN(fen string) error {
	fen = strings.TrimSpace(fen)
	parts := strings.Split(fen, " ")
	if len(parts) == 0 || parts[0] == "" {
		return errors.New("position: empty fen")
	}
	if !fenPieces.MatchString(parts[0]) {
		return errors.New("position: fen board field has invalid characters")
	}

	sq := SqA8
	for _, c := range parts[0] {
		switch {
		case c == '/':
			sq = Square(int(sq) - 16)
		case c >= '1' && c <= '8':
			sq += Square(c - '0')
		default:
			piece := pieceFromChar(c)
			if piece == PieceNone {
				return fmt.Errorf("position: invalid piece character %q", c)
			}
			p.putPiece(piece, sq)
			sq++
		}
	}

	p.nextPlayer = White
	if len(parts) >= 2 {
		if !fenSide.MatchString(parts[1]) {
			return errors.New("position: fen side-to-move field invalid")
		}
		if parts[1] == "b" {
			p.nextPlayer = Black
			p.zobristKey ^= zobristBase.sideToMove
			p.plyCount++
		}
	}

	if len(parts) >= 3 {
		if !fenCastle.MatchString(parts[2]) {
			return errors.New("position: fen castling field invalid")
		}
		for _, c := range parts[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(WhiteOO)
			case 'Q':
				p.castlingRights.Add(WhiteOOO)
			case 'k':
				p.castlingRights.Add(BlackOO)
			case 'q':
				p.castlingRights.Add(BlackOOO)
			}
		}
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(parts) >= 4 {
		if !fenEnPass.MatchString(parts[3]) {
			return errors.New("position: fen en-passant field invalid")
		}
		if parts[3] != "-" {
			p.enPassantSquare = MakeSquare(parts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil {
			return fmt.Errorf("position: fen half-move clock invalid: %w", err)
		}
		p.halfMoveClock = n
	}

	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil {
			return fmt.Errorf("position: fen full-move number invalid: %w", err)
		}
		if n == 0 {
			n = 1
		}
		p.plyCount = 2*n - (1 - int(p.nextPlayer))
	}

	return nil
}

func pieceFromChar(c rune) Piece {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	var pt PieceType
	switch c {
	case 'K':
		pt = King
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	default:
		return PieceNone
	}
	return MakePiece(color, pt)
}

func (p *Position) putPiece(piece Piece, sq Square) {
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = piece
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}
	p.zobristKey ^= zobristBase.pieces[piece][sq]
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.zobristKey ^= zobristBase.pieces[piece][sq]
	return piece
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

func (p *Position) setCastlingRights(cr CastlingRights) {
	if cr == CastlingNone {
		return
	}
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights.Remove(cr)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
}

// PieceOn returns the piece standing on sq, or PieceNone.
func (p *Position) PieceOn(sq Square) Piece { return p.board[sq] }

// Occupied returns the combined occupancy of both sides.
func (p *Position) Occupied() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// OccupiedBy returns the occupancy of one side.
func (p *Position) OccupiedBy(c Color) Bitboard { return p.occupiedBb[c] }

// PiecesOf returns the bitboard of pieces of kind pt and color c.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// CastlingRights returns the castling rights still available.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the fifty-move-rule half-move counter.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// PlyCount returns the number of half-moves played so far plus one,
// mirroring a FEN's full-move-number field translated to ply.
func (p *Position) PlyCount() int { return p.plyCount }

// ZobristKey returns the current position signature.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// LastMove returns the most recently made move, or MoveNone at the
// starting position.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return MoveNone
	}
	return p.history[len(p.history)-1].move
}

// MoveHistory returns every move made so far, oldest first.
func (p *Position) MoveHistory() []Move {
	out := make([]Move, len(p.history))
	for i, h := range p.history {
		out[i] = h.move
	}
	return out
}

// InCheck reports whether the side to move's king is currently
// attacked.
func (p *Position) InCheck() bool {
	return p.isAttackedBy(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
}

// isAttackedBy reports whether sq is attacked by any piece of color by,
// recomputed directly from the current occupancy.
func (p *Position) isAttackedBy(sq Square, by Color) bool {
	occ := p.Occupied()
	attackers := attacks.AttacksTo(sq, occ, p.PieceOn)
	return attackers&p.occupiedBb[by] != BbZero
}

// IsAttacked exposes isAttackedBy for the movegen/evaluator packages.
func (p *Position) IsAttacked(sq Square, by Color) bool { return p.isAttackedBy(sq, by) }

// SetTerminal records a terminal classification reached by the caller
// after generating legal moves and finding none. winner is ignored for
// OutcomeStalemate.
func (p *Position) SetTerminal(outcome Outcome, winner Color) {
	p.outcome = outcome
	p.winner = winner
}

// ClearTerminal resets any recorded terminal classification, used when
// the position is about to be mutated again (e.g. a new search root).
func (p *Position) ClearTerminal() { p.outcome = OutcomeNone }

// Outcome returns the terminal classification last recorded via
// SetTerminal, or OutcomeNone if the position hasn't been classified
// (or isn't terminal).
func (p *Position) Outcome() Outcome { return p.outcome }

// Winner returns the winning color and true, when Outcome is
// OutcomeCheckmate.
func (p *Position) Winner() (Color, bool) {
	return p.winner, p.outcome == OutcomeCheckmate
}

// FiftyMoveClaim reports whether a fifty-move draw claim is available
// (half-move clock >= 100).
func (p *Position) FiftyMoveClaim() bool { return p.halfMoveClock >= 100 }

// ThreefoldClaim reports whether the current position signature has
// occurred at least three times in the repetition trail.
func (p *Position) ThreefoldClaim() bool { return p.repetitionCounts[p.zobristKey] >= 3 }

// RepetitionCount returns how many times the current signature has
// occurred so far, including the current occurrence.
func (p *Position) RepetitionCount() int { return p.repetitionCounts[p.zobristKey] }

// HasInsufficientMaterial reports whether neither side retains enough
// material to force checkmate (K vs K, K+N vs K, K+B vs K).
func (p *Position) HasInsufficientMaterial() bool {
	for _, c := range [2]Color{White, Black} {
		if p.piecesBb[c][Pawn] != BbZero || p.piecesBb[c][Rook] != BbZero || p.piecesBb[c][Queen] != BbZero {
			return false
		}
	}
	minorCount := func(c Color) int {
		return p.piecesBb[c][Knight].PopCount() + p.piecesBb[c][Bishop].PopCount()
	}
	return minorCount(White) <= 1 && minorCount(White)+minorCount(Black) <= 1
}

// StringFEN renders the position back out as a full FEN string.
func (p *Position) StringFEN() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f < FileLength; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteByte('/')
	}
	b.WriteByte(' ')
	b.WriteString(p.nextPlayer.String())
	b.WriteByte(' ')
	b.WriteString(p.castlingRights.String())
	b.WriteByte(' ')
	b.WriteString(p.enPassantSquare.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa((p.plyCount + (1 - int(p.nextPlayer))) / 2))
	return b.String()
}

func (p *Position) String() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f < FileLength; f++ {
			b.WriteString(p.board[SquareOf(f, r)].String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	b.WriteString(p.StringFEN())
	return b.String()
}
