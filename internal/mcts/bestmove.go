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

import . "github.com/frankkopp/minishogi/internal/types"

// BestMove returns the move attached to root's child with the largest
// visit count, ties broken by insertion (move-generation) order - the
// first maximum encountered wins. Returns MoveNone if root has no
// children (never expanded, or terminal).
func (a *Arena) BestMove(root NodeIndex) Move {
	n := a.Node(root)
	if n.NumChildren == 0 {
		return MoveNone
	}
	best := a.ChildAt(root, 0)
	bestN := a.Node(best).N
	for i := 1; i < int(n.NumChildren); i++ {
		c := a.ChildAt(root, i)
		if a.Node(c).N > bestN {
			best = c
			bestN = a.Node(c).N
		}
	}
	return a.IncomingMove(best)
}
