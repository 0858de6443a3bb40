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

// Backpropagate walks from leaf to root via Parent, alternating
// perspective at each hop: value is added to W on even hops (0, 2, ...)
// and 1-value on odd hops, n is incremented, and the virtual loss applied
// during SelectLeaf's descent is removed. Stops at the sentinel node
// (Parent == NoNode), i.e. after crediting the root itself.
func (a *Arena) Backpropagate(leaf NodeIndex, value float32) {
	idx := leaf
	hop := 0
	for {
		n := a.Node(idx)
		if hop%2 == 0 {
			n.W += value
		} else {
			n.W += 1 - value
		}
		n.N++
		n.VirtualLoss -= 1.0

		if idx == a.root {
			break
		}
		idx = n.Parent
		hop++
	}
}
