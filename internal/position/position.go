/*
 * minishogi - a Minishogi (5x5 Shogi) engine and PUCT MCTS search library in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 minishogi contributors
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

// Package position holds the Minishogi board representation: bitboards,
// hand counts, pawn-file flags, Zobrist hash and move history, plus legal
// move generation and make/unmake. It is the single mutable piece of state
// the rest of the library (attacks, zobrist) is built to serve.
package position

import (
	"fmt"

	"github.com/frankkopp/minishogi/internal/attacks"
	. "github.com/frankkopp/minishogi/internal/types"
	"github.com/frankkopp/minishogi/internal/zobrist"
)

// MaxPly bounds the length of a single game's move history; large enough
// for any self-play game or tactical search the host will run, small
// enough to keep history a fixed-size array with no heap churn.
const MaxPly = 1024

// historyEntry records everything DoMove needs UndoMove to restore
// in O(1): the move itself (which already carries the captured piece) plus
// the hash and pawn flags from immediately before the move, since both are
// cheaper to snapshot than to re-derive by reversing XORs.
type historyEntry struct {
	move          Move
	prevHash      uint64
	prevPawnFlags [ColorLength]uint8
	prevHand      Hand
	givesCheck    bool
}

// Position is the value-typed Minishogi board state described by the
// library's data model: board, hand, pawn flags, per-piece and per-color
// bitboards, ply counter, move history and incremental Zobrist hash.
type Position struct {
	board      [NumSquares]Piece
	hand       Hand
	pawnFlags  [ColorLength]uint8
	pieceBb    [PieceLength]Bitboard
	playerBb   [ColorLength]Bitboard
	sideToMove Color
	ply        int
	hash       uint64

	history [MaxPly]historyEntry
}

// New returns a Position set up at the Minishogi start position.
func New() *Position {
	p := &Position{}
	if err := p.SetSFEN(StartSFEN); err != nil {
		panic(fmt.Sprintf("position: start SFEN must always parse: %v", err))
	}
	return p
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// PieceOn returns the piece occupying sq, or PieceNone.
func (p *Position) PieceOn(sq Square) Piece {
	return p.board[sq]
}

// Ply returns the number of half-moves played since the last SFEN reset.
func (p *Position) Ply() int {
	return p.ply
}

// Hash returns the Zobrist hash of the current board occupancy (hand
// state is deliberately excluded; see RepetitionKey for the hash used by
// repetition detection).
func (p *Position) Hash() uint64 {
	return p.hash
}

// HandCount returns how many pieces of hpt color c holds in hand.
func (p *Position) HandCount(c Color, hpt HandPieceType) uint8 {
	return p.hand.Count(c, hpt)
}

// Occupied returns the combined occupancy of both colors.
func (p *Position) Occupied() Bitboard {
	return p.playerBb[White] | p.playerBb[Black]
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieceBb[NewPiece(c, King)].Lsb()
}

func (p *Position) place(sq Square, piece Piece) {
	p.board[sq] = piece
	p.pieceBb[piece].Push(sq)
	p.playerBb[piece.ColorOf()].Push(sq)
	p.hash ^= zobrist.PieceSquare(sq, piece)
	if piece.TypeOf() == Pawn {
		p.pawnFlags[piece.ColorOf()] |= 1 << uint(sq.FileOf())
	}
}

func (p *Position) remove(sq Square) Piece {
	piece := p.board[sq]
	p.board[sq] = PieceNone
	p.pieceBb[piece].Pop(sq)
	p.playerBb[piece.ColorOf()].Pop(sq)
	p.hash ^= zobrist.PieceSquare(sq, piece)
	if piece.TypeOf() == Pawn {
		p.pawnFlags[piece.ColorOf()] &^= 1 << uint(sq.FileOf())
	}
	return piece
}

// DoMove commits m to the board: the caller is trusted to have obtained m
// from GenerateMoves against this exact position (no legality re-check is
// performed, matching the move generator's own contract). Runs in O(1) and
// preserves every invariant in the data model.
func (p *Position) DoMove(m Move) {
	entry := &p.history[p.ply]
	entry.move = m
	entry.prevHash = p.hash
	entry.prevPawnFlags = p.pawnFlags
	entry.prevHand = p.hand

	us := p.sideToMove
	piece := m.Piece()

	if m.IsDrop() {
		p.hand.Remove(us, m.DropHand())
		p.place(m.To(), piece)
	} else {
		p.remove(m.From())
		if cap := m.CapturePiece(); cap != PieceNone {
			p.remove(m.To())
			p.hand.Add(us, HandPieceTypeOf(cap.TypeOf().Raw()))
		}
		placed := piece
		if m.IsPromotion() {
			placed = piece.Promoted()
		}
		p.place(m.To(), placed)
	}

	p.sideToMove = us.Flip()
	entry.givesCheck = p.InCheck(p.sideToMove)
	p.ply++
}

// UndoMove reverses the most recently played move. Calling it with
// Ply() == 0 is a programmer error and panics, per the error-handling
// contract: precondition violations terminate rather than recover.
func (p *Position) UndoMove() {
	if p.ply == 0 {
		panic("position: UndoMove called with no move to undo")
	}
	p.ply--
	entry := &p.history[p.ply]
	m := entry.move
	us := p.sideToMove.Flip()
	p.sideToMove = us

	if m.IsDrop() {
		p.remove(m.To())
		p.hand.Add(us, m.DropHand())
	} else {
		p.remove(m.To())
		p.place(m.From(), m.Piece())
		if cap := m.CapturePiece(); cap != PieceNone {
			p.place(m.To(), cap)
			p.hand.Remove(us, HandPieceTypeOf(cap.TypeOf().Raw()))
		}
	}

	p.hash = entry.prevHash
	p.pawnFlags = entry.prevPawnFlags
}

// InCheck reports whether c's king is currently attacked by the opponent.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if !ksq.IsValid() {
		return false
	}
	return p.isAttacked(ksq, c.Flip(), p.Occupied())
}

// stepAttackers is the set of piece types whose attack on an empty-board
// step table (attacks.AdjacentAttack) fully captures their one-step
// reach, including Horse/Dragon's one-step bonus on top of their ray.
var stepAttackers = [8]PieceType{King, Gold, Silver, PromSilver, Pawn, PromPawn, Horse, Dragon}

// isAttacked reports whether sq is attacked by color by, given a
// (possibly hypothetical) board occupancy. Used both for InCheck and for
// the per-move legality filter, where occupied reflects the position
// after a candidate move rather than the position currently on the board.
func (p *Position) isAttacked(sq Square, by Color, occupied Bitboard) bool {
	for _, pt := range stepAttackers {
		piece := NewPiece(by, pt)
		// Gold/Silver/Pawn (and their promoted forms) have color-biased,
		// non-self-symmetric move sets: whether a by-colored piece on some
		// square reaches sq is answered by by.Flip()'s table rooted at sq,
		// not by's own (King/Horse/Dragon's bonus step is full 8-direction
		// and color-independent, so either color's table agrees there).
		tableColor := by
		if pt != King && pt != Horse && pt != Dragon {
			tableColor = by.Flip()
		}
		if attacks.AdjacentAttack(NewPiece(tableColor, pt), sq)&p.pieceBb[piece] != 0 {
			return true
		}
	}
	diagRay := p.pieceBb[NewPiece(by, Bishop)] | p.pieceBb[NewPiece(by, Horse)]
	if attacks.BishopAttack(sq, occupied)&diagRay != 0 {
		return true
	}
	orthoRay := p.pieceBb[NewPiece(by, Rook)] | p.pieceBb[NewPiece(by, Dragon)]
	if attacks.RookAttack(sq, occupied)&orthoRay != 0 {
		return true
	}
	return false
}
