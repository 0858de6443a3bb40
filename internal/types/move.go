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

package types

import "fmt"

// Move packs one board move or drop into a single 32 bit value:
//
//	bits  0- 4: from square (0..24), or the dropped hand slot for drops
//	bits  5- 9: to square (0..24)
//	bits 10-12: direction (0..7), unused for drops
//	bits 13-16: amount, 0 encodes a drop, 1..4 a board move
//	bit     17: promotion flag
//	bits 18-22: moving piece (pre-promotion)
//	bits 23-27: captured piece, PieceNone if none
//
// A Move is a small value type, freely copied and stored by the MCTS arena
// and the move list.
type Move uint32

const (
	moveFromShift   = 0
	moveToShift     = 5
	moveDirShift    = 10
	moveAmountShift = 13
	movePromoShift  = 17
	movePieceShift  = 18
	moveCapShift    = 23

	moveFromMask   = 0x1F
	moveToMask     = 0x1F
	moveDirMask    = 0x07
	moveAmountMask = 0x0F
	movePieceMask  = 0x1F
	moveCapMask    = 0x1F
)

// MoveNone has every bit set: an invalid move, never produced by the move
// generator, useful as a "no move yet" sentinel (e.g. best move before a
// search has run).
const MoveNone Move = 0xFFFFFFFF

// NewBoardMove builds a non-drop move.
func NewBoardMove(piece Piece, from, to Square, dir Direction, amount int, promotion bool, capture Piece) Move {
	var promo Move
	if promotion {
		promo = 1
	}
	return Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(dir)<<moveDirShift |
		Move(amount)<<moveAmountShift |
		promo<<movePromoShift |
		Move(uint8(piece))<<movePieceShift |
		Move(uint8(capture))<<moveCapShift
}

// NewDrop builds a drop move: a piece from hand placed on to. From carries
// the hand slot ordinal instead of a board square; direction and amount are
// zero (amount==0 is exactly what marks a move as a drop).
func NewDrop(piece Piece, hpt HandPieceType, to Square) Move {
	return Move(hpt)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(uint8(piece))<<movePieceShift
}

// IsDrop reports whether m places a piece from hand rather than moving one
// already on the board.
func (m Move) IsDrop() bool {
	return m.Amount() == 0
}

// From returns the origin square of a board move. For a drop it returns the
// dropped piece's hand slot reinterpreted as a Square; callers must check
// IsDrop first.
func (m Move) From() Square {
	return Square(m >> moveFromShift & moveFromMask)
}

// DropHand returns the hand slot a drop move takes its piece from. Callers
// must check IsDrop first.
func (m Move) DropHand() HandPieceType {
	return HandPieceType(m >> moveFromShift & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m >> moveToShift & moveToMask)
}

// Direction returns the compass direction of a board move; meaningless for
// drops.
func (m Move) Direction() Direction {
	return Direction(m >> moveDirShift & moveDirMask)
}

// Amount returns the number of squares moved; 0 marks a drop.
func (m Move) Amount() int {
	return int(m >> moveAmountShift & moveAmountMask)
}

// IsPromotion reports whether the move promotes the moving piece.
func (m Move) IsPromotion() bool {
	return m>>movePromoShift&1 != 0
}

// Piece returns the moving piece, pre-promotion.
func (m Move) Piece() Piece {
	return Piece(m >> movePieceShift & movePieceMask)
}

// CapturePiece returns the piece captured on To, or PieceNone.
func (m Move) CapturePiece() Piece {
	return Piece(m >> moveCapShift & moveCapMask)
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return m.CapturePiece() != PieceNone
}

func (m Move) String() string {
	if m == MoveNone {
		return "none"
	}
	piece := m.Piece()
	if m.IsDrop() {
		return fmt.Sprintf("%s*%s", piece.TypeOf().String(), m.To())
	}
	promo := ""
	if m.IsPromotion() {
		promo = "+"
	}
	return fmt.Sprintf("%s%s%s", m.From(), m.To(), promo)
}

// policyBoardPlanes and policyDropPlanes count the move "planes" used by ToPolicyIndex: one
// plane per compass direction for board moves (capped at the longest
// possible slide, 4 squares, giving 8*4 = 32 board-move planes) plus one
// plane per hand piece type for drops (HandLength planes). Each plane
// covers all 25 origin/destination squares, giving a dense, stable,
// total index space shared between Move and any external evaluator.
const (
	policyBoardPlanes = int(DirectionLength) * 4
	policyDropPlanes  = HandLength
	PolicyIndexCount  = NumSquares * (policyBoardPlanes + policyDropPlanes)
)

// ToPolicyIndex returns the canonical, stable index of m into a dense
// policy vector of size PolicyIndexCount, as required by the evaluator
// contract: a total, deterministic mapping shared between Move and every
// external policy head. Board moves are indexed by (from square, direction,
// amount-1); drops are indexed by (to square, hand slot) in the planes
// following all board-move planes.
func (m Move) ToPolicyIndex() int {
	if m.IsDrop() {
		plane := policyBoardPlanes + int(m.DropHand())
		return int(m.To())*(policyBoardPlanes+policyDropPlanes) + plane
	}
	plane := int(m.Direction())*4 + (m.Amount() - 1)
	return int(m.From())*(policyBoardPlanes+policyDropPlanes) + plane
}
