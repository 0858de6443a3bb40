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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/minishogi/internal/types"
)

// findMove scans legal board moves (drops are skipped) for one whose From/To match,
// used to shuttle a single piece back and forth without depending on move
// generation order.
func findMove(t *testing.T, p *Position, from, to Square) Move {
	t.Helper()
	moves := p.GenerateMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !m.IsDrop() && m.From() == from && m.To() == to {
			return m
		}
	}
	t.Fatalf("no legal move %v->%v found", from, to)
	return MoveNone
}

// Shuttling both kings back and forth between two squares apiece returns
// to the exact same board/hand/side-to-move every four plies, with no
// check involved anywhere in the line, and must eventually trip the
// repetition threshold.
func TestIsRepetitionDetectsShuttlingNonCheckingLine(t *testing.T) {
	p := &Position{}
	err := p.SetSFEN("4k/5/5/5/4K b - 1")
	assert.NoError(t, err)

	whiteHome, whiteAway := NewSquare(4, 4), NewSquare(4, 3)
	blackHome, blackAway := NewSquare(0, 4), NewSquare(0, 3)

	step := []struct{ from, to Square }{
		{whiteHome, whiteAway},
		{blackHome, blackAway},
		{whiteAway, whiteHome},
		{blackAway, blackHome},
	}

	repeated := false
	for i := 0; i < 32 && !repeated; i++ {
		s := step[i%len(step)]
		m := findMove(t, p, s.from, s.to)
		p.DoMove(m)
		rep, _ := p.IsRepetition()
		if rep {
			repeated = true
		}
	}
	assert.True(t, repeated, "expected shuttling king moves to trigger repetition")
}

// Two positions with identical board occupancy but different hand
// contents must not be treated as the same position for repetition
// purposes, since RepetitionKey folds in hand counts.
func TestRepetitionKeyDistinguishesDifferentHands(t *testing.T) {
	a := &Position{}
	assert.NoError(t, a.SetSFEN("4k/5/5/5/4K b P 1"))

	b := &Position{}
	assert.NoError(t, b.SetSFEN("4k/5/5/5/4K b 2P 1"))

	assert.NotEqual(t, a.RepetitionKey(), b.RepetitionKey())
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestIsRepetitionFalseEarlyInGame(t *testing.T) {
	p := New()
	rep, _ := p.IsRepetition()
	assert.False(t, rep)
}
