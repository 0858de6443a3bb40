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
	"fmt"
	"strings"
)

// maxMoves bounds the largest legal move count reachable in Minishogi; used
// to preallocate move lists so move generation never triggers a slice
// reallocation mid-search. Minishogi's branching factor is far below
// chess's ~218, 128 is a comfortable margin.
const maxMoves = 128

// MoveList is a slice of Move with constructors that preallocate capacity,
// so repeated move generation during search does not churn the allocator.
type MoveList []Move

// NewMoveList returns an empty MoveList with capacity for the largest
// practical move count.
func NewMoveList() *MoveList {
	ml := make(MoveList, 0, maxMoves)
	return &ml
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return len(*ml)
}

// PushBack appends m.
func (ml *MoveList) PushBack(m Move) {
	*ml = append(*ml, m)
}

// At returns the move at index i.
func (ml *MoveList) At(i int) Move {
	return (*ml)[i]
}

// Clear empties the list while retaining its backing array, so the next
// move generation call reuses the same allocation.
func (ml *MoveList) Clear() {
	*ml = (*ml)[:0]
}

// Filter rebuilds the list in place, keeping only moves for which keep
// returns true. Reuses the underlying array.
func (ml *MoveList) Filter(keep func(m Move) bool) {
	b := (*ml)[:0]
	for _, m := range *ml {
		if keep(m) {
			b = append(b, m)
		}
	}
	*ml = b
}

// ForEach calls f with every move in stored order.
func (ml *MoveList) ForEach(f func(m Move)) {
	for _, m := range *ml {
		f(m)
	}
}

func (ml *MoveList) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MoveList: [%d] { ", len(*ml))
	for i, m := range *ml {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
