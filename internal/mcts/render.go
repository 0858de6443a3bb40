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
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Render produces a directed-graph textual rendering of the top-k
// most-visited subtree rooted at root: one line per node, each labeled
// with its visit count N, prior P, last-observed value V and
// Q = W/N, and each edge annotated with the move that led to the child
// in SFEN-ish notation (Move.String already produces that form). Purely
// diagnostic - has no effect on search semantics.
func (a *Arena) Render(root NodeIndex, topK int) string {
	var sb strings.Builder
	a.renderNode(&sb, root, topK, 0)
	return sb.String()
}

func (a *Arena) renderNode(sb *strings.Builder, idx NodeIndex, topK, depth int) {
	n := a.Node(idx)
	q := float32(0)
	if n.N > 0 {
		q = n.W / float32(n.N)
	}
	indent := strings.Repeat("  ", depth)
	if depth == 0 {
		out.Fprintf(sb, "%sroot N=%d P=%.3f V=%.3f Q=%.3f\n", indent, n.N, n.P, n.V, q)
	} else {
		out.Fprintf(sb, "%s-%s-> N=%d P=%.3f V=%.3f Q=%.3f\n", indent, n.Move.String(), n.N, n.P, n.V, q)
	}

	numChildren := int(n.NumChildren)
	if numChildren == 0 {
		return
	}
	order := make([]int, numChildren)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return a.Node(a.ChildAt(idx, order[i])).N > a.Node(a.ChildAt(idx, order[j])).N
	})
	if topK > 0 && topK < len(order) {
		order = order[:topK]
	}
	for _, i := range order {
		a.renderNode(sb, a.ChildAt(idx, i), topK, depth+1)
	}
}
