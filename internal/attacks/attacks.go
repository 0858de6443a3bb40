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

// Package attacks holds the process-wide, immutable attack tables: a single
// step table for king/gold/silver/pawn/promoted-silver/promoted-pawn plus
// the Horse/Dragon one-step bonus, and four PEXT-indexed sliding tables for
// bishop/rook rays. Every table is built once by Init and is read-only
// afterwards, so concurrent MCTS workers share it without locking.
package attacks

import (
	. "github.com/frankkopp/minishogi/internal/types"
)

var (
	adjacentAttack [PieceLength][NumSquares]Bitboard

	bishopNESW [NumSquares]rayTable
	bishopNWSE [NumSquares]rayTable
	rookH      [NumSquares]rayTable
	rookV      [NumSquares]rayTable

	initialized bool
)

// rayTable holds, for one square and one pair of opposite ray directions,
// the full-ray mask and the attack bitboard for every occupancy subset of
// that mask, indexed by pext(occupied, mask).
type rayTable struct {
	mask    Bitboard
	attacks []Bitboard
}

func (t *rayTable) lookup(occupied Bitboard) Bitboard {
	return t.attacks[pext32(uint32(occupied), uint32(t.mask))]
}

var (
	diagNESW = [2]Direction{NorthEast, SouthWest}
	diagNWSE = [2]Direction{NorthWest, SouthEast}
	lineH    = [2]Direction{East, West}
	lineV    = [2]Direction{North, South}
)

// rayAttack walks both directions of dirs from sq over occupied, stopping
// at (and including) the first blocker in each direction. Called both to
// build the empty-board mask (occupied == 0) and, during table
// construction, to fill in every blocker subset.
func rayAttack(sq Square, dirs [2]Direction, occupied Bitboard) Bitboard {
	var bb Bitboard
	for _, d := range dirs {
		s := sq
		for {
			ns, ok := s.To(d)
			if !ok {
				break
			}
			bb.Push(ns)
			if occupied.Has(ns) {
				break
			}
			s = ns
		}
	}
	return bb
}

// buildRayTable enumerates every subset of the empty-board ray mask for
// each square using the Carry-Rippler trick, the same enumeration the
// teacher's initMagics uses to populate its fancy-magic attack arrays.
func buildRayTable(dirs [2]Direction) [NumSquares]rayTable {
	var out [NumSquares]rayTable
	for sq := 0; sq < NumSquares; sq++ {
		mask := rayAttack(Square(sq), dirs, 0)
		size := 1 << mask.PopCount()
		out[sq].mask = mask
		out[sq].attacks = make([]Bitboard, size)
		var b Bitboard
		for {
			idx := pext32(uint32(b), uint32(mask))
			out[sq].attacks[idx] = rayAttack(Square(sq), dirs, b)
			b = (b - mask) & mask
			if b == 0 {
				break
			}
		}
	}
	return out
}

// oneStepDirs returns every direction from which a piece of type pt,
// standing still, can reach an adjacent square in a single step: the
// non-sliding pieces' ordinary step directions, or - for Bishop/Rook and
// their promoted forms - the amount==1 case of their ray plus, for
// Horse/Dragon, the orthogonal/diagonal bonus step. This mirrors the
// original engine building its adjacent-attack table generically across
// every piece variant by collecting amount==1 pseudo-legal moves.
func oneStepDirs(c Color, pt PieceType) []Direction {
	switch pt {
	case Bishop:
		return diagonalDirsSlice
	case Rook:
		return orthogonalDirsSlice
	case Horse, Dragon:
		return allDirsSlice
	default:
		return MoveDirs(c, pt)
	}
}

var (
	diagonalDirsSlice   = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	orthogonalDirsSlice = []Direction{North, East, South, West}
	allDirsSlice        = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
)

// Init builds every attack table. Idempotent; safe to call more than once.
func Init() {
	if initialized {
		return
	}
	bishopNESW = buildRayTable(diagNESW)
	bishopNWSE = buildRayTable(diagNWSE)
	rookH = buildRayTable(lineH)
	rookV = buildRayTable(lineV)

	for c := Color(0); c < Color(ColorLength); c++ {
		for pt := PieceType(0); pt < PtLength; pt++ {
			if pt == PtNone {
				continue
			}
			p := NewPiece(c, pt)
			for sq := Square(0); sq < NumSquares; sq++ {
				var reach Bitboard
				for _, d := range oneStepDirs(c, pt) {
					if ns, ok := sq.To(d); ok {
						reach.Push(ns)
					}
				}
				adjacentAttack[p][sq] = reach
			}
		}
	}
	initialized = true
}

// AdjacentAttack returns the bitboard of squares reachable in one step by
// piece p standing on sq, clipped to the board.
func AdjacentAttack(p Piece, sq Square) Bitboard {
	return adjacentAttack[p][sq]
}

// BishopAttack returns the squares a bishop on sq attacks given the full
// board occupancy (both colors), via the two diagonal PEXT lookups.
func BishopAttack(sq Square, occupied Bitboard) Bitboard {
	return bishopNESW[sq].lookup(occupied) | bishopNWSE[sq].lookup(occupied)
}

// RookAttack returns the squares a rook on sq attacks given the full board
// occupancy, via the horizontal/vertical PEXT lookups.
func RookAttack(sq Square, occupied Bitboard) Bitboard {
	return rookH[sq].lookup(occupied) | rookV[sq].lookup(occupied)
}

// HorseAttack returns a promoted bishop's attack: its diagonal rays plus
// the one-step orthogonal bonus.
func HorseAttack(c Color, sq Square, occupied Bitboard) Bitboard {
	return BishopAttack(sq, occupied) | adjacentAttack[NewPiece(c, Horse)][sq]
}

// DragonAttack returns a promoted rook's attack: its orthogonal rays plus
// the one-step diagonal bonus.
func DragonAttack(c Color, sq Square, occupied Bitboard) Bitboard {
	return RookAttack(sq, occupied) | adjacentAttack[NewPiece(c, Dragon)][sq]
}
