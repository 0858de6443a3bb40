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

package selfplay

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

func TestMaterialEvaluatorStartPositionIsBalanced(t *testing.T) {
	p := position.New()
	_, value := MaterialEvaluator{}.Evaluate(p)
	assert.InDelta(t, 0.5, value, 1e-6)
}

func TestMaterialEvaluatorFavorsSideWithExtraPiece(t *testing.T) {
	p := &position.Position{}
	assert.NoError(t, p.SetSFEN("4k/5/5/5/RB2K b - 1"))
	_, value := MaterialEvaluator{}.Evaluate(p)
	assert.Greater(t, value, float32(0.5))
}

func TestMaterialEvaluatorPolicyIsUniformOverLegalMoves(t *testing.T) {
	p := position.New()
	policy, _ := MaterialEvaluator{}.Evaluate(p)
	assert.Len(t, policy, PolicyIndexCount)

	legal := p.GenerateMoves()
	assert.Greater(t, legal.Len(), 0)
	want := float32(1) / float32(legal.Len())
	for i := 0; i < legal.Len(); i++ {
		assert.InDelta(t, want, policy[legal.At(i).ToPolicyIndex()], 1e-6)
	}
}

func TestMaterialEvaluatorPolicySumsToOne(t *testing.T) {
	p := position.New()
	policy, _ := MaterialEvaluator{}.Evaluate(p)
	var sum float32
	for _, v := range policy {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-4)
}
