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

// PieceType enumerates the raw and promoted Minishogi piece kinds, color
// independent. The ordinal is stable and used directly as an array index
// by the attack tables and Zobrist table.
//
//	PtNone      = 0
//	King        = 1   // non sliding, never promotes
//	Gold        = 2   // non sliding, never promotes
//	Silver      = 3   // non sliding, promotable
//	PromSilver  = 4   // non sliding, moves like Gold
//	Bishop      = 5   // sliding, promotable
//	Horse       = 6   // sliding (bishop rays) + one step orthogonally
//	Rook        = 7   // sliding, promotable
//	Dragon      = 8   // sliding (rook rays) + one step diagonally
//	Pawn        = 9   // non sliding, promotable
//	PromPawn    = 10  // non sliding, moves like Gold
//	PtLength    = 11
type PieceType uint8

const (
	PtNone     PieceType = 0
	King       PieceType = 1
	Gold       PieceType = 2
	Silver     PieceType = 3
	PromSilver PieceType = 4
	Bishop     PieceType = 5
	Horse      PieceType = 6
	Rook       PieceType = 7
	Dragon     PieceType = 8
	Pawn       PieceType = 9
	PromPawn   PieceType = 10
	PtLength   PieceType = 11
)

// IsValid reports whether pt is one of the defined piece types (PtNone
// included).
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// IsSliding reports whether pt moves along rays (Bishop/Horse/Rook/Dragon)
// rather than stepping a single square.
func (pt PieceType) IsSliding() bool {
	switch pt {
	case Bishop, Horse, Rook, Dragon:
		return true
	default:
		return false
	}
}

// promotedOf maps a raw piece type to its promoted form, or PtNone if the
// type cannot promote (King, Gold) or is already promoted.
var promotedOf = [PtLength]PieceType{
	PtNone:     PtNone,
	King:       PtNone,
	Gold:       PtNone,
	Silver:     PromSilver,
	PromSilver: PtNone,
	Bishop:     Horse,
	Horse:      PtNone,
	Rook:       Dragon,
	Dragon:     PtNone,
	Pawn:       PromPawn,
	PromPawn:   PtNone,
}

// IsPromotable reports whether pt is a raw piece type that can promote.
func (pt PieceType) IsPromotable() bool {
	return promotedOf[pt] != PtNone
}

// Promoted returns the promoted form of pt. Calling it on a type that
// cannot promote is a programmer error and panics.
func (pt PieceType) Promoted() PieceType {
	if p := promotedOf[pt]; p != PtNone {
		return p
	}
	panic("piece type cannot promote")
}

// rawOf maps every piece type to its un-promoted form (identity for raw
// types); used when a captured piece reverts to hand.
var rawOf = [PtLength]PieceType{
	PtNone:     PtNone,
	King:       King,
	Gold:       Gold,
	Silver:     Silver,
	PromSilver: Silver,
	Bishop:     Bishop,
	Horse:      Bishop,
	Rook:       Rook,
	Dragon:     Rook,
	Pawn:       Pawn,
	PromPawn:   Pawn,
}

// Raw returns the un-promoted form of pt.
func (pt PieceType) Raw() PieceType {
	return rawOf[pt]
}

// IsRaw reports whether pt is already an un-promoted piece type.
func (pt PieceType) IsRaw() bool {
	return rawOf[pt] == pt
}

var pieceTypeChar = [PtLength]byte{'.', 'k', 'g', 's', 's', 'b', 'b', 'r', 'r', 'p', 'p'}

// Char returns the lowercase SFEN letter for pt (promoted pieces share the
// raw piece's letter; callers add the leading '+').
func (pt PieceType) Char() byte {
	return pieceTypeChar[pt]
}

var pieceTypeNames = [PtLength]string{
	"None", "King", "Gold", "Silver", "+Silver",
	"Bishop", "Horse", "Rook", "Dragon", "Pawn", "+Pawn",
}

func (pt PieceType) String() string {
	return pieceTypeNames[pt]
}
