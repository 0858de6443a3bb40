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
	. "github.com/frankkopp/minishogi/internal/types"
	"github.com/frankkopp/minishogi/internal/zobrist"
)

// RepetitionThreshold is how many occurrences of the same position
// (including hand) count as a repetition. Four is the conventional
// Shogi-family threshold; see DESIGN.md for why the simplified rule below
// is kept rather than a full authoritative Minishogi rulebook check.
const RepetitionThreshold = 4

// repetitionKeyOf mixes a board-only hash with hand counts and side to
// move: two positions with identical board occupancy but different hands,
// or different side to move, are not the same position for repetition
// purposes even though they could share Hash. Hash itself stays
// board-only per the data model's invariant 5; this wider key exists
// solely for repetition bookkeeping.
func repetitionKeyOf(hash uint64, hand Hand, stm Color) uint64 {
	key := hash
	if stm == Black {
		key ^= zobrist.SideToMove()
	}
	for c := Color(0); c < Color(ColorLength); c++ {
		for hpt := HandPieceType(0); hpt < HandPieceType(HandLength); hpt++ {
			key ^= zobrist.HandCount(c, hpt, hand.Count(c, hpt))
		}
	}
	return key
}

// RepetitionKey returns the current position's repetition key.
func (p *Position) RepetitionKey() uint64 {
	return repetitionKeyOf(p.hash, p.hand, p.sideToMove)
}

// IsRepetition scans history for prior occurrences of the current
// position (board, hand and side to move all matching). It returns
// (repeated, perpetualCheck): repeated is true once RepetitionThreshold
// occurrences, including the current one, are found. perpetualCheck is
// true when every move the side now to move played to reach each of
// those occurrences was itself a checking move - the simplified rule
// this implements treats that case as a loss for the side to move rather
// than a draw. A full Minishogi rulebook may draw a finer distinction
// here; see DESIGN.md's open-question resolution.
func (p *Position) IsRepetition() (repeated bool, perpetualCheck bool) {
	if p.ply < 2 {
		return false, false
	}
	target := p.RepetitionKey()
	us := p.sideToMove
	count := 1
	allChecks := true
	for ply := p.ply - 2; ply >= 0; ply -= 2 {
		e := &p.history[ply]
		if repetitionKeyOf(e.prevHash, e.prevHand, us) != target {
			continue
		}
		count++
		allChecks = allChecks && e.givesCheck
		if count >= RepetitionThreshold {
			return true, allChecks
		}
	}
	return false, false
}
