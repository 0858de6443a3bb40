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

// Square identifies one of the 25 squares of a Minishogi board, indexed
// 0..24 in row-major order with 0 at the top-left from White's point of
// view: square = 5*rank + file. Rank 0 is the opponent's (Black's) back
// rank at the start position; rank 4 is White's back rank.
//
//	a1 .. e1  (rank 0, Black's back rank; names as printed by String)
//	a2 .. e2
//	a3 .. e3
//	a4 .. e4
//	a5 .. e5  (rank 4, White's back rank)
//	SqNone        (sentinel, 25)
type Square int8

const (
	BoardSize  = 5
	NumSquares = BoardSize * BoardSize

	SqNone Square = NumSquares
)

// NewSquare builds a Square from a 0-based rank and file, or SqNone if
// either is out of range.
func NewSquare(rank, file int) Square {
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		return SqNone
	}
	return Square(rank*BoardSize + file)
}

// IsValid reports whether sq is one of the 25 board squares.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SqNone
}

// RankOf returns the 0-based rank (0 = Black's back rank).
func (sq Square) RankOf() int {
	return int(sq) / BoardSize
}

// FileOf returns the 0-based file.
func (sq Square) FileOf() int {
	return int(sq) % BoardSize
}

// Bb returns the single-bit Bitboard of sq.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// To returns the square reached by stepping one square in direction d from
// sq, and false if that step would leave the board (including wrap-around
// across a file boundary).
func (sq Square) To(d Direction) (Square, bool) {
	dr, df := d.delta()
	r, f := sq.RankOf()+dr, sq.FileOf()+df
	ns := NewSquare(r, f)
	return ns, ns.IsValid()
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.FileOf(), sq.RankOf()+1)
}

// SquareFromString parses the lowercase algebraic-ish notation produced by
// String (e.g. "c3"); used for SFEN move round-tripping in tests/CLI.
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq := NewSquare(rank, file)
	if !sq.IsValid() {
		return SqNone, fmt.Errorf("invalid square %q", s)
	}
	return sq, nil
}

// Direction is one of the eight compass step directions.
type Direction int8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	DirectionLength
)

// delta returns the (rank, file) step for the direction.  Rank grows
// downward (towards Black's... no, towards White's back rank) so North
// decreases rank.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case NorthEast:
		return -1, 1
	case East:
		return 0, 1
	case SouthEast:
		return 1, 1
	case South:
		return 1, 0
	case SouthWest:
		return 1, -1
	case West:
		return 0, -1
	case NorthWest:
		return -1, -1
	default:
		panic("invalid direction")
	}
}

// orthogonalDirs and diagonalDirs are used by promoted Bishop/Rook (Horse
// and Dragon) which slide like their raw piece but additionally step one
// square in the directions their raw piece cannot slide in.
var orthogonalDirs = [4]Direction{North, East, South, West}
var diagonalDirs = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
