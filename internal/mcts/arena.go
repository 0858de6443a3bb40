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

// Package mcts implements a PUCT-guided Monte Carlo Tree Search over a
// preallocated node arena, driven by an externally supplied policy/value
// evaluator (AlphaZero-style). The arena never frees a node individually;
// a search is reset wholesale by re-running SetRoot, which rewinds the
// bump-pointer allocator rather than walking and releasing the old tree.
package mcts

import (
	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/minishogi/internal/logging"
	. "github.com/frankkopp/minishogi/internal/types"
)

var log *logging.Logger

// NodeIndex addresses a Node within an Arena. Index 0 is the sentinel
// "no parent" value; NoNode is its exported name.
type NodeIndex uint32

// NoNode is the sentinel index: the root's parent, and the zero value of
// a not-yet-allocated node reference.
const NoNode NodeIndex = 0

// Node is one vertex of the search tree. A node's children, once
// expanded, occupy the contiguous index range
// [FirstChild, FirstChild+NumChildren) - expansion always allocates every
// legal move's child in one batch, so the bump allocator hands out a
// contiguous run and no separate child-index list needs to be kept.
type Node struct {
	N           uint32 // visit count
	W           float32 // value sum, from this node's own side-to-move perspective
	V           float32 // last-observed leaf value, for inspection/debugging
	P           float32 // prior probability assigned by the parent's expansion
	Move        Move    // the move that led from Parent to this node
	Parent      NodeIndex
	FirstChild  NodeIndex // 0 (NoNode) until expanded
	NumChildren uint16
	IsTerminal  bool
	VirtualLoss float32
}

// Arena is a single preallocated sequence of Node, allocated by bump
// pointer (count) with no free list: resetting a search means calling
// SetRoot again, not releasing individual nodes. This mirrors the
// teacher's transposition table - one flat preallocated slice, resized
// rather than grown node by node - applied to a tree instead of a hash
// table.
type Arena struct {
	nodes []Node
	root  NodeIndex
}

// NewArena preallocates an arena with room for capacity nodes (tens of
// thousands to a million, per the data model). Index 0 is reserved as the
// sentinel and is never handed out as a real node.
func NewArena(capacity int) *Arena {
	if log == nil {
		log = myLogging.GetMctsLog()
	}
	a := &Arena{
		nodes: make([]Node, 1, capacity+1),
	}
	log.Infof("mcts: arena allocated for %d nodes", capacity)
	return a
}

// Capacity returns the number of real (non-sentinel) nodes the arena can
// hold before exhaustion.
func (a *Arena) Capacity() int {
	return cap(a.nodes) - 1
}

// Count returns the number of real nodes currently allocated.
func (a *Arena) Count() int {
	return len(a.nodes) - 1
}

// SetRoot resets the bump pointer to empty and allocates a fresh root at
// index 1, attached to no move and no parent. Call this once per new
// search; it does not touch the caller's Position.
func (a *Arena) SetRoot() NodeIndex {
	a.nodes = a.nodes[:1]
	a.root = a.alloc(NoNode, MoveNone, 1.0)
	return a.root
}

// Root returns the index most recently returned by SetRoot.
func (a *Arena) Root() NodeIndex {
	return a.root
}

// Node returns a pointer to the node at idx for direct field access by
// the selection/expansion/backpropagation routines in this package.
func (a *Arena) Node(idx NodeIndex) *Node {
	return &a.nodes[idx]
}

// alloc appends one node to the arena and returns its index. Panics on
// exhaustion: per the error-handling contract, arena exhaustion is fatal
// and the host must SetRoot before continuing.
func (a *Arena) alloc(parent NodeIndex, move Move, prior float32) NodeIndex {
	if len(a.nodes) >= cap(a.nodes) {
		panic("mcts: arena exhausted, call SetRoot to reset before further traversal")
	}
	a.nodes = append(a.nodes, Node{Parent: parent, Move: move, P: prior})
	return NodeIndex(len(a.nodes) - 1)
}

// allocChildren allocates exactly len(moves) consecutive child nodes of
// parent and returns the index of the first one. Must be called at most
// once per node - re-expansion is rejected by Evaluate's n_leaf>0 check
// before this is ever reached.
func (a *Arena) allocChildren(parent NodeIndex, moves []Move, priors []float32) NodeIndex {
	first := NodeIndex(len(a.nodes))
	for i, m := range moves {
		a.alloc(parent, m, priors[i])
	}
	p := a.Node(parent)
	p.FirstChild = first
	p.NumChildren = uint16(len(moves))
	return first
}

// VisitCount, ValueSum, Prior and IncomingMove are read-only accessors for
// callers outside the package (e.g. selfplay reporting) that should not
// hold a mutable *Node.
func (a *Arena) VisitCount(idx NodeIndex) uint32 { return a.nodes[idx].N }
func (a *Arena) ValueSum(idx NodeIndex) float32  { return a.nodes[idx].W }
func (a *Arena) Prior(idx NodeIndex) float32     { return a.nodes[idx].P }
func (a *Arena) IncomingMove(idx NodeIndex) Move { return a.nodes[idx].Move }
func (a *Arena) IsTerminal(idx NodeIndex) bool   { return a.nodes[idx].IsTerminal }

// ChildAt returns the i'th child's index (0 <= i < NumChildren(parent)).
func (a *Arena) ChildAt(parent NodeIndex, i int) NodeIndex {
	n := &a.nodes[parent]
	return n.FirstChild + NodeIndex(i)
}

// NumChildren returns how many children idx has allocated, 0 if not yet
// expanded.
func (a *Arena) NumChildren(idx NodeIndex) int {
	return int(a.nodes[idx].NumChildren)
}
