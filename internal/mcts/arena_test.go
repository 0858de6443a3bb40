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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/minishogi/internal/attacks"
	"github.com/frankkopp/minishogi/internal/position"
	. "github.com/frankkopp/minishogi/internal/types"
	"github.com/frankkopp/minishogi/internal/zobrist"
)

func TestMain(m *testing.M) {
	zobrist.Init()
	attacks.Init()
	m.Run()
}

// uniformEvaluator hands back an equal prior for every policy slot and a
// fixed value, so tree shape in these tests is driven entirely by PUCT
// exploration rather than by a trained network's preferences.
type uniformEvaluator struct{ value float32 }

func (u uniformEvaluator) Evaluate(pos *position.Position) ([]float32, float32) {
	policy := make([]float32, PolicyIndexCount)
	for i := range policy {
		policy[i] = 1
	}
	return policy, u.value
}

func TestSetRootAllocatesSentinelAndRoot(t *testing.T) {
	a := NewArena(64)
	assert.Equal(t, 0, a.Count())
	root := a.SetRoot()
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, root, a.Root())
	assert.Equal(t, NoNode, a.Node(root).Parent)
	assert.Equal(t, float32(1.0), a.Node(root).P)
}

func TestSetRootRewindsBumpPointer(t *testing.T) {
	a := NewArena(64)
	root := a.SetRoot()
	pos := position.New()
	eval := uniformEvaluator{value: 0.5}
	a.Evaluate(a.SelectLeaf(root, pos), pos, eval)
	assert.Greater(t, a.Count(), 1)

	a.SetRoot()
	assert.Equal(t, 1, a.Count())
}

// Property 7: after running simulations, the root's visit count equals
// the number of simulations run (every simulation credits the root on
// its final backpropagation hop), and the sum of the immediate
// children's visit counts equals simulations-1 (every simulation but the
// very first, which expands the still-childless root itself rather than
// descending into a child).
func TestVisitCountAccounting(t *testing.T) {
	a := NewArena(1 << 16)
	root := a.SetRoot()
	eval := uniformEvaluator{value: 0.5}
	rootPos := *position.New()

	const simulations = 30
	for i := 0; i < simulations; i++ {
		simPos := rootPos
		leaf := a.SelectLeaf(root, &simPos)
		value := a.Evaluate(leaf, &simPos, eval)
		a.Backpropagate(leaf, value)
	}

	assert.EqualValues(t, simulations, a.Node(root).N)

	childSum := 0
	nc := a.NumChildren(root)
	assert.Greater(t, nc, 0)
	for i := 0; i < nc; i++ {
		childSum += int(a.Node(a.ChildAt(root, i)).N)
	}
	assert.Equal(t, simulations-1, childSum)

	for i := 0; i < nc; i++ {
		assert.EqualValues(t, 0, a.Node(a.ChildAt(root, i)).VirtualLoss)
	}
	assert.EqualValues(t, 0, a.Node(root).VirtualLoss)
}

func TestBestMovePicksMostVisitedChild(t *testing.T) {
	a := NewArena(64)
	root := a.SetRoot()
	assert.Equal(t, MoveNone, a.BestMove(root))

	pos := position.New()
	moves := pos.GenerateMoves()
	priors := make([]float32, moves.Len())
	var ms []Move
	for i := 0; i < moves.Len(); i++ {
		priors[i] = 1.0 / float32(moves.Len())
		ms = append(ms, moves.At(i))
	}
	a.allocChildren(root, ms, priors)

	winner := a.ChildAt(root, 1)
	a.Node(winner).N = 100

	assert.Equal(t, a.IncomingMove(winner), a.BestMove(root))
}
