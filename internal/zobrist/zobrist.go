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

// Package zobrist holds the process-wide incremental hashing table used by
// internal/position to keep Position.Hash up to date on every make/unmake
// without rescanning the board.
package zobrist

import (
	"sync"

	. "github.com/frankkopp/minishogi/internal/types"
)

// pieceSquare[sq][piece] is XORed into a position's hash for every piece
// currently occupying sq. Only the White/Black raw and promoted piece types
// ever appear on the board, but the table is sized by PieceLength so Piece
// values can index it directly without remapping.
var pieceSquare [NumSquares][PieceLength]uint64

// sideToMove is XORed in when it is Black's turn, so White-to-move and
// Black-to-move positions that are otherwise identical never collide.
var sideToMove uint64

// handPiece[color][handSlot][count] is XORed in for the current count of
// each droppable piece type in each color's hand, used by RepetitionKey
// (board-only Hash deliberately excludes hand state, see DESIGN.md).
var handPiece [ColorLength][HandLength][5]uint64

var once sync.Once

// seed is fixed so Init is reproducible across runs and processes; any
// fixed seed is acceptable per the hashing contract.
const seed uint64 = 0x9E3779B97F4A7C15

// rng is the xorshift64star generator, the same construction the teacher
// uses to seed magic-bitboard tables: no warm-up required, single 64-bit
// state word.
type rng struct{ s uint64 }

func newRng(s uint64) *rng { return &rng{s: s} }

func (r *rng) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Init fills the Zobrist tables. Safe to call more than once; only the
// first call has effect.
func Init() {
	once.Do(func() {
		g := newRng(seed)
		for sq := 0; sq < NumSquares; sq++ {
			for p := 0; p < int(PieceLength); p++ {
				pieceSquare[sq][p] = g.next()
			}
		}
		sideToMove = g.next()
		for c := 0; c < ColorLength; c++ {
			for h := 0; h < HandLength; h++ {
				for n := 0; n < 5; n++ {
					handPiece[c][h][n] = g.next()
				}
			}
		}
	})
}

// PieceSquare returns the constant XORed in/out when p occupies sq.
func PieceSquare(sq Square, p Piece) uint64 {
	return pieceSquare[sq][p]
}

// SideToMove returns the constant XORed in when it is Black's turn.
func SideToMove() uint64 {
	return sideToMove
}

// HandCount returns the constant for holding exactly count pieces of hpt in
// c's hand, used to build the repetition key. count is clamped to 4 (in a
// game played from the start position no hand holds more than two of a
// kind, since each side starts with one Gold, Silver, Bishop, Rook and
// Pawn; a SFEN can still set larger counts).
func HandCount(c Color, hpt HandPieceType, count uint8) uint64 {
	if count > 4 {
		count = 4
	}
	return handPiece[c][hpt][count]
}
