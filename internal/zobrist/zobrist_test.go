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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/minishogi/internal/types"
)

func TestInitIsDeterministicAndIdempotent(t *testing.T) {
	Init()
	a := PieceSquare(NewSquare(0, 0), NewPiece(White, King))
	b := SideToMove()
	Init()
	assert.Equal(t, a, PieceSquare(NewSquare(0, 0), NewPiece(White, King)))
	assert.Equal(t, b, SideToMove())
}

func TestPieceSquareConstantsAreDistinct(t *testing.T) {
	Init()
	seen := map[uint64]bool{}
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		for pt := PieceType(1); pt < PtLength; pt++ {
			for _, c := range []Color{White, Black} {
				v := PieceSquare(sq, NewPiece(c, pt))
				assert.False(t, seen[v], "collision at square %v piece %v/%v", sq, c, pt)
				seen[v] = true
			}
		}
	}
}

func TestHandCountClampsAboveFour(t *testing.T) {
	Init()
	assert.Equal(t, HandCount(White, HandPawn, 4), HandCount(White, HandPawn, 5))
	assert.Equal(t, HandCount(White, HandPawn, 4), HandCount(White, HandPawn, 200))
}

func TestSideToMoveNonZero(t *testing.T) {
	Init()
	assert.NotEqual(t, uint64(0), SideToMove())
}
