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

package config

// mctsConfiguration holds the knobs a driver (selfplay, matesolve) uses to
// size and bound a search; the PUCT formula constants themselves (CBase,
// CInit) are part of the search algorithm, not runtime configuration, and
// stay as constants in the mcts package.
type mctsConfiguration struct {
	ArenaCapacity int
	Simulations   int
	Workers       int
}

func init() {
	Settings.MCTS.ArenaCapacity = 1 << 20
	Settings.MCTS.Simulations = 800
	Settings.MCTS.Workers = 4
}

func setupMcts() {
	if Settings.MCTS.ArenaCapacity <= 0 {
		Settings.MCTS.ArenaCapacity = 1 << 20
	}
	if Settings.MCTS.Simulations <= 0 {
		Settings.MCTS.Simulations = 800
	}
	if Settings.MCTS.Workers <= 0 {
		Settings.MCTS.Workers = 4
	}
}
