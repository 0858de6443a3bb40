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
	"github.com/frankkopp/minishogi/internal/position"
	. "github.com/frankkopp/minishogi/internal/types"
)

// drawValueForSideToMove encodes the plain-repetition draw convention:
// 0 for White to move, 1 for Black to move, in the canonical
// side-to-move-relative perspective Evaluate works in throughout. Kept as
// a single function so a host that disagrees with this convention (see
// DESIGN.md open-question resolution) can fork just this decision.
func drawValueForSideToMove(stm Color) float32 {
	if stm == Black {
		return 1
	}
	return 0
}

// Evaluate expands leaf (if not already expanded) using eval, and returns
// the value to propagate - from the perspective of the side to move at
// leaf. pos must be the position reached by the SelectLeaf call that
// produced leaf.
//
// On re-entry to an already-expanded node (N > 0), this returns the
// cached V without calling eval or allocating anything, per the
// specified "re-entry on previously expanded node" short circuit.
func (a *Arena) Evaluate(leaf NodeIndex, pos *position.Position, eval Evaluator) float32 {
	n := a.Node(leaf)
	if n.N > 0 {
		return n.V
	}

	legal := pos.GenerateMoves()
	repeated, perpetualCheck := pos.IsRepetition()

	if legal.Len() == 0 || repeated {
		n.IsTerminal = true
		var v float32
		switch {
		case legal.Len() == 0:
			v = 0 // checkmate or stalemate: loss for the side to move
		case perpetualCheck:
			v = 0 // perpetual-check repetition: loss for the side to move
		default:
			v = drawValueForSideToMove(pos.SideToMove())
		}
		n.V = v
		return v
	}

	policy, value := eval.Evaluate(pos)
	priors := make([]float32, legal.Len())
	var sum float32
	for i := 0; i < legal.Len(); i++ {
		p := policy[legal.At(i).ToPolicyIndex()]
		priors[i] = p
		sum += p
	}
	if sum > 0 {
		for i := range priors {
			priors[i] /= sum
		}
	} else {
		// Degenerate policy (e.g. a host-side bug or cold evaluator):
		// fall back to a uniform prior rather than dividing by zero.
		uniform := 1.0 / float32(len(priors))
		for i := range priors {
			priors[i] = uniform
		}
	}

	moves := make([]Move, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		moves[i] = legal.At(i)
	}
	a.allocChildren(leaf, moves, priors)

	n.V = value
	return value
}
