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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoardMoveFields(t *testing.T) {
	from := NewSquare(3, 2)
	to := NewSquare(2, 2)
	piece := NewPiece(White, Silver)
	capture := NewPiece(Black, Pawn)

	m := NewBoardMove(piece, from, to, North, 1, true, capture)

	assert.False(t, m.IsDrop())
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, North, m.Direction())
	assert.Equal(t, 1, m.Amount())
	assert.True(t, m.IsPromotion())
	assert.Equal(t, piece, m.Piece())
	assert.Equal(t, capture, m.CapturePiece())
	assert.True(t, m.IsCapture())
}

func TestNewDropFields(t *testing.T) {
	to := NewSquare(2, 2)
	piece := NewPiece(Black, Gold)

	m := NewDrop(piece, HandGold, to)

	assert.True(t, m.IsDrop())
	assert.Equal(t, HandGold, m.DropHand())
	assert.Equal(t, to, m.To())
	assert.Equal(t, piece, m.Piece())
	assert.False(t, m.IsCapture())
}

func TestMoveStringFormat(t *testing.T) {
	assert.Equal(t, "none", MoveNone.String())

	m := NewBoardMove(NewPiece(White, Pawn), NewSquare(3, 0), NewSquare(2, 0), North, 1, true, PieceNone)
	assert.Equal(t, "a4a3+", m.String())

	d := NewDrop(NewPiece(Black, Gold), HandGold, NewSquare(2, 2))
	assert.Equal(t, "Gold*c3", d.String())
}

// Every board-move and drop index stays within [0, PolicyIndexCount), and
// two board moves with different (from, direction, amount) keys never share
// an index. Drop indices are checked for range only here.
func TestToPolicyIndexBounds(t *testing.T) {
	seen := map[int]Move{}
	for from := Square(0); int(from) < NumSquares; from++ {
		for dir := Direction(0); dir < DirectionLength; dir++ {
			for amount := 1; amount <= 4; amount++ {
				to, ok := from.To(dir)
				if !ok {
					continue
				}
				m := NewBoardMove(NewPiece(White, Rook), from, to, dir, amount, false, PieceNone)
				idx := m.ToPolicyIndex()
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, PolicyIndexCount)
				if prev, ok := seen[idx]; ok {
					assert.Equal(t, prev.From(), m.From())
					assert.Equal(t, prev.Direction(), m.Direction())
					assert.Equal(t, prev.Amount(), m.Amount())
				}
				seen[idx] = m
			}
		}
	}

	for to := Square(0); int(to) < NumSquares; to++ {
		for hpt := HandPieceType(0); int(hpt) < HandLength; hpt++ {
			d := NewDrop(NewPiece(Black, hpt.PieceType()), hpt, to)
			idx := d.ToPolicyIndex()
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, PolicyIndexCount)
		}
	}
}

func TestToPolicyIndexDropsDontCollideWithBoardMoves(t *testing.T) {
	boardIdx := NewBoardMove(NewPiece(White, Rook), NewSquare(2, 2), NewSquare(1, 2), North, 1, false, PieceNone).ToPolicyIndex()
	dropIdx := NewDrop(NewPiece(White, Gold), HandGold, NewSquare(2, 2)).ToPolicyIndex()
	assert.NotEqual(t, boardIdx, dropIdx)
}
