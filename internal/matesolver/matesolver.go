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

// Package matesolver implements a depth-limited alternating AND/OR search
// for forced mate, reusing the position package's move generator. It is
// intended for short tactical checks (depth up to roughly 9 plies), not as
// a gameplay search - it proves or disproves forced mate, it does not
// evaluate quiet positions.
package matesolver

import (
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/frankkopp/minishogi/internal/position"
	. "github.com/frankkopp/minishogi/internal/types"
)

var log = logging.GetLog()

// Solve runs the DFS mate solver from pos's current side to move, searching
// at most depth plies (an "attack" ply followed by a "defense" reply counts
// as two plies of the budget). It reports whether a forced mate exists and,
// if so, the first move of the mating line.
func Solve(pos *position.Position, depth int) (mate bool, move Move) {
	log.Debugf("matesolver: searching depth %d from ply %d", depth, pos.Ply())
	return attack(pos, depth)
}

// attack tries every pseudo-legal move of the side to move. A move that
// does not give check cannot be the start of a forced mate at this ply (the
// search only follows checking lines), so it is skipped. A move that gives
// check is explored: if the resulting defense finds no escape, attack
// reports the mate and the move that delivers it.
func attack(pos *position.Position, d int) (bool, Move) {
	if d <= 0 {
		return false, MoveNone
	}

	moves := pos.GenerateMovesWithOption(true)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.DoMove(m)
		givesCheck := pos.InCheck(pos.SideToMove())
		var mated bool
		if givesCheck {
			mated = defense(pos, d-1)
		}
		pos.UndoMove()
		if givesCheck && mated {
			return true, m
		}
	}
	return false, MoveNone
}

// defense tries every legal reply of the side under attack. If any reply
// escapes the mate (attack finds no continuation from it), the defender has
// a way out and this position is not forced mate. A position with no legal
// replies at all is checkmate - a winning leaf for the attacker.
func defense(pos *position.Position, d int) bool {
	moves := pos.GenerateMoves()
	if moves.Len() == 0 {
		return true
	}
	if d <= 0 {
		return false
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		pos.DoMove(m)
		mated, _ := attack(pos, d-1)
		pos.UndoMove()
		if !mated {
			return false
		}
	}
	return true
}
