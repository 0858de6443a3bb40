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

// Package selfplay drives concurrent self-play games against the mcts
// package using an Evaluator, for exercising and smoke-testing the search
// without a trained network (see MaterialEvaluator).
package selfplay

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/minishogi/internal/config"
	"github.com/frankkopp/minishogi/internal/logging"
	"github.com/frankkopp/minishogi/internal/mcts"
	"github.com/frankkopp/minishogi/internal/position"
	. "github.com/frankkopp/minishogi/internal/types"
)

var log = logging.GetLog()

// GameResult records one completed self-play game: the moves played, in
// order, and the final value from White's perspective (1 win, 0 loss, 0.5
// draw - following the same side-to-move-relative convention as the
// search, collapsed to White's view here for reporting).
type GameResult struct {
	Moves       []Move
	WhiteResult float32
}

// Runner drives one or more concurrent self-play games. It caps
// concurrency with a weighted semaphore the same way the teacher's search
// package guards its single running search - here generalized from "at
// most one" to "at most Workers".
type Runner struct {
	eval  mcts.Evaluator
	sem   *semaphore.Weighted
	plies int
}

// NewRunner builds a Runner using the given Evaluator, capping simultaneous
// games at config.Settings.MCTS.Workers and each game at maxPlies moves
// (a safety bound against non-terminating lines; 0 means use a generous
// built-in default).
func NewRunner(eval mcts.Evaluator, maxPlies int) *Runner {
	if maxPlies <= 0 {
		maxPlies = 512
	}
	return &Runner{
		eval:  eval,
		sem:   semaphore.NewWeighted(int64(config.Settings.MCTS.Workers)),
		plies: maxPlies,
	}
}

// PlayGames runs n self-play games concurrently (bounded by Workers) and
// returns their results once all have finished.
func (r *Runner) PlayGames(n int) []GameResult {
	results := make([]GameResult, n)
	done := make(chan int, n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			_ = r.sem.Acquire(context.Background(), 1)
			defer r.sem.Release(1)
			results[i] = r.playOne()
			done <- i
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
	return results
}

// playOne plays a single game to completion (terminal node reached at the
// root, or the ply cap) using config.Settings.MCTS.Simulations simulations
// per move, always taking the move with the most visits.
func (r *Runner) playOne() GameResult {
	pos := position.New()
	arena := mcts.NewArena(config.Settings.MCTS.ArenaCapacity)
	var moves []Move

	for ply := 0; ply < r.plies; ply++ {
		root := arena.SetRoot()
		rootPos := *pos

		for sim := 0; sim < config.Settings.MCTS.Simulations; sim++ {
			simPos := rootPos
			leaf := arena.SelectLeaf(root, &simPos)
			value := arena.Evaluate(leaf, &simPos, r.eval)
			arena.Backpropagate(leaf, value)
		}

		if arena.IsTerminal(root) && arena.NumChildren(root) == 0 {
			break
		}
		m := arena.BestMove(root)
		if m == MoveNone {
			break
		}
		pos.DoMove(m)
		moves = append(moves, m)
	}

	legal := pos.GenerateMoves()
	var result float32 = 0.5
	if legal.Len() == 0 {
		// side to move is checkmated: the other color won.
		if pos.SideToMove() == White {
			result = 0
		} else {
			result = 1
		}
	}
	log.Debugf("selfplay: game finished after %d plies, white result %.1f", len(moves), result)
	return GameResult{Moves: moves, WhiteResult: result}
}
