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

package mcts

import (
	"math"

	"github.com/frankkopp/minishogi/internal/position"
)

// PUCT exploration constants, as specified: CBase and CInit shape how
// quickly the exploration term grows with parent visit count.
const (
	CBase = 19652.0
	CInit = 1.25
)

// SelectLeaf descends from root choosing, at each node, the child
// maximizing the PUCT score, applying a virtual loss of +1.0 to every
// node on the path as it is visited (discouraging concurrent traversers
// from repeating the same path before this one backpropagates). pos is
// advanced in lockstep via DoMove so that on return it reflects the
// board at the returned leaf. The descent stops at an unexpanded node
// (NumChildren == 0) or a terminal node.
func (a *Arena) SelectLeaf(root NodeIndex, pos *position.Position) NodeIndex {
	idx := root
	a.Node(idx).VirtualLoss += 1.0
	for !a.IsTerminal(idx) && a.NumChildren(idx) > 0 {
		idx = a.selectChild(idx)
		pos.DoMove(a.IncomingMove(idx))
		a.Node(idx).VirtualLoss += 1.0
	}
	return idx
}

// selectChild returns the child of parent maximizing PUCT, breaking ties
// in favor of the first strict improvement encountered (stable by
// insertion order, i.e. by move-generation order).
func (a *Arena) selectChild(parent NodeIndex) NodeIndex {
	p := a.Node(parent)
	nParentEff := float64(p.N) + float64(p.VirtualLoss)
	c := math.Log2((1+nParentEff+CBase)/CBase) + CInit
	sqrtParent := math.Sqrt(nParentEff)

	best := NoNode
	bestScore := -1.0
	for i := 0; i < int(p.NumChildren); i++ {
		childIdx := a.ChildAt(parent, i)
		child := a.Node(childIdx)
		nEff := float64(child.N) + float64(child.VirtualLoss)
		var q float64
		if nEff != 0 {
			q = 1 - (float64(child.W)+float64(child.VirtualLoss))/nEff
		}
		u := c * float64(child.P) * sqrtParent / (1 + nEff)
		score := q + u
		if score > bestScore {
			bestScore = score
			best = childIdx
		}
	}
	return best
}
