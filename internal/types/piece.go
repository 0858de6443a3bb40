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

import "strings"

// Piece packs a Color and a PieceType into a single small value:
//
//	bit 4:   color (0 = White, 1 = Black)
//	bits 0-3: piece type ordinal
//
// PieceNone (0) represents an empty square and is the zero value.
type Piece int8

const (
	pieceColorShift = 4
	pieceTypeMask   = 0x0F

	PieceNone   Piece = 0
	PieceLength Piece = 1 << (pieceColorShift + 1)
)

// NewPiece packs a color and piece type into a Piece.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int(c)<<pieceColorShift | int(pt))
}

// ColorOf returns the color of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> pieceColorShift)
}

// TypeOf returns the piece type of p (PtNone for PieceNone).
func (p Piece) TypeOf() PieceType {
	return PieceType(p & pieceTypeMask)
}

// IsNone reports whether p represents an empty square.
func (p Piece) IsNone() bool {
	return p == PieceNone
}

// IsRaw reports whether p is an un-promoted piece.
func (p Piece) IsRaw() bool {
	return p.TypeOf().IsRaw()
}

// IsPromotable reports whether p is a raw piece that can promote.
func (p Piece) IsPromotable() bool {
	return p.TypeOf().IsPromotable()
}

// Promoted returns p with its piece type promoted, keeping the color.
func (p Piece) Promoted() Piece {
	return NewPiece(p.ColorOf(), p.TypeOf().Promoted())
}

// Raw returns p with its piece type demoted to the un-promoted form,
// keeping the color; used when a captured piece reverts to hand.
func (p Piece) Raw() Piece {
	return NewPiece(p.ColorOf(), p.TypeOf().Raw())
}

func (p Piece) String() string {
	if p.IsNone() {
		return "-"
	}
	return p.ColorOf().String() + " " + p.TypeOf().String()
}

// SfenChar returns the single- or double-character SFEN representation of
// p: uppercase for White, lowercase for Black, with a leading '+' for
// promoted pieces.
func (p Piece) SfenChar() string {
	if p.IsNone() {
		return ""
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == White {
		c = c - ('a' - 'A')
	}
	s := string(c)
	if !p.IsRaw() {
		s = "+" + s
	}
	return s
}

// pieceTypeFromChar maps a lowercase SFEN piece letter to its raw piece
// type (Black-side letters and White-side letters share this table after
// case-folding).
var pieceTypeFromChar = map[byte]PieceType{
	'k': King, 'g': Gold, 's': Silver, 'b': Bishop, 'r': Rook, 'p': Pawn,
}

// PieceTypeFromSfenChar parses one raw SFEN piece letter in either case (it
// lowercases c itself); the caller reads the piece's color from the case.
func PieceTypeFromSfenChar(c byte) (PieceType, bool) {
	pt, ok := pieceTypeFromChar[strings.ToLower(string(c))[0]]
	return pt, ok
}
