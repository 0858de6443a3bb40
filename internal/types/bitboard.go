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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 32 bit unsigned int with one bit per board square; only the
// low 25 bits are ever meaningful.
type Bitboard uint32

const FullBoard Bitboard = (1 << NumSquares) - 1

// Has reports whether the bit for sq is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Push sets the bit for sq in place.
func (b *Bitboard) Push(sq Square) {
	*b |= sq.Bb()
}

// Pop clears the bit for sq in place.
func (b *Bitboard) Pop(sq Square) {
	*b &^= sq.Bb()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount32(uint32(b))
}

// Lsb returns the lowest-indexed set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros32(uint32(b)))
}

// PopLsb returns the lowest-indexed set square and clears it from *b.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq.IsValid() {
		*b &^= sq.Bb()
	}
	return sq
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for f := 0; f < BoardSize; f++ {
			if b.Has(NewSquare(r, f)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
