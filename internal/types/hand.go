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

// HandPieceType indexes the five droppable piece kinds a captured piece
// reverts to. Ordinal is stable and used directly as an array index into
// Hand.
type HandPieceType uint8

const (
	HandGold   HandPieceType = 0
	HandSilver HandPieceType = 1
	HandBishop HandPieceType = 2
	HandRook   HandPieceType = 3
	HandPawn   HandPieceType = 4
	HandLength int           = 5
)

var handOfPieceType = [PtLength]HandPieceType{
	Gold: HandGold, Silver: HandSilver, PromSilver: HandSilver,
	Bishop: HandBishop, Horse: HandBishop,
	Rook: HandRook, Dragon: HandRook,
	Pawn: HandPawn, PromPawn: HandPawn,
}

// HandPieceTypeOf returns the hand slot a captured piece of type pt reverts
// to. pt must not be King or PtNone.
func HandPieceTypeOf(pt PieceType) HandPieceType {
	return handOfPieceType[pt]
}

var pieceTypeOfHand = [HandLength]PieceType{Gold, Silver, Bishop, Rook, Pawn}

// PieceType returns the raw piece type a hand slot represents.
func (h HandPieceType) PieceType() PieceType {
	return pieceTypeOfHand[h]
}

var handChar = [HandLength]byte{'g', 's', 'b', 'r', 'p'}

// Char returns the lowercase SFEN letter for the hand slot.
func (h HandPieceType) Char() byte {
	return handChar[h]
}

// Hand holds, per color, the count of each droppable piece type currently
// captured and off the board.
type Hand [ColorLength][HandLength]uint8

// Count returns the number of pieces of hpt in c's hand.
func (h *Hand) Count(c Color, hpt HandPieceType) uint8 {
	return h[c][hpt]
}

// Add increments the count of hpt in c's hand (a piece was captured).
func (h *Hand) Add(c Color, hpt HandPieceType) {
	h[c][hpt]++
}

// Remove decrements the count of hpt in c's hand (a piece was dropped).
// Removing from an empty slot is a programmer error.
func (h *Hand) Remove(c Color, hpt HandPieceType) {
	if h[c][hpt] == 0 {
		panic("hand: removing from an empty slot")
	}
	h[c][hpt]--
}

// IsEmpty reports whether c's hand holds no pieces at all.
func (h *Hand) IsEmpty(c Color) bool {
	for _, n := range h[c] {
		if n > 0 {
			return false
		}
	}
	return true
}
