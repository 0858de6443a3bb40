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

package matesolver

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

func mustPosition(t *testing.T, sfen string) *position.Position {
	t.Helper()
	p := position.New()
	assert.NoError(t, p.SetSFEN(sfen))
	return p
}

func TestSolveFindsMateInOne(t *testing.T) {
	p := mustPosition(t, "2k2/5/2P2/5/2K2 b G 1")
	mate, move := Solve(p, 7)
	assert.True(t, mate)
	assert.NotEqual(t, MoveNone, move)
}

func TestSolveFindsDeeperForcedMate(t *testing.T) {
	p := mustPosition(t, "5/5/2k2/5/2K2 b 3G 1")
	mate, _ := Solve(p, 7)
	assert.True(t, mate)
}

func TestSolveReportsNoMateWithInsufficientMaterial(t *testing.T) {
	p := mustPosition(t, "5/5/2k2/5/2K2 b 2G 1")
	mate, _ := Solve(p, 7)
	assert.False(t, mate)
}

func TestNoLegalMoveMeansCheckmate(t *testing.T) {
	p := mustPosition(t, "5/5/2p2/2g2/2K2 b P 1")
	assert.Equal(t, 0, p.GenerateMoves().Len())
}

func TestNonCheckmatePositionHasLegalMoves(t *testing.T) {
	p := mustPosition(t, "rb1gk/1s2R/5/P1B2/KGS2 w P 1")
	assert.Greater(t, p.GenerateMoves().Len(), 0)
}

func TestSolveWithZeroDepthFindsNothing(t *testing.T) {
	p := mustPosition(t, "2k2/5/2P2/5/2K2 b G 1")
	mate, move := Solve(p, 0)
	assert.False(t, mate)
	assert.Equal(t, MoveNone, move)
}
