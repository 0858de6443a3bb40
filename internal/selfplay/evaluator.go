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
	"math"

	"github.com/frankkopp/minishogi/internal/position"
	. "github.com/frankkopp/minishogi/internal/types"
)

// pieceValue gives each raw/promoted piece type a standard Minishogi
// material weight. King is excluded from material sums - its presence is
// what checkmate already governs.
var pieceValue = [PtLength]float64{
	PtNone:     0,
	King:       0,
	Gold:       6,
	Silver:     5,
	PromSilver: 6,
	Bishop:     8,
	Horse:      10,
	Rook:       10,
	Dragon:     12,
	Pawn:       1,
	PromPawn:   6,
}

// MaterialEvaluator is a placeholder Evaluator that has no learned
// parameters: it scores a position by material balance (board pieces plus
// pieces held in hand) and hands out a uniform prior over the legal moves
// it's given, not an informative policy. It exists to exercise self-play
// end to end without depending on a trained network.
type MaterialEvaluator struct{}

// Evaluate implements mcts.Evaluator. The returned policy is a full-length
// slice indexed by Move.ToPolicyIndex with a uniform prior over legal
// moves; callers are expected to mask it down to the actually legal moves
// during expansion, which internal/mcts.Evaluate already does.
func (MaterialEvaluator) Evaluate(pos *position.Position) (policy []float32, value float32) {
	policy = make([]float32, PolicyIndexCount)
	legal := pos.GenerateMoves()
	if legal.Len() > 0 {
		p := float32(1) / float32(legal.Len())
		for i := 0; i < legal.Len(); i++ {
			policy[legal.At(i).ToPolicyIndex()] = p
		}
	}

	var balance float64
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		piece := pos.PieceOn(sq)
		if piece.IsNone() {
			continue
		}
		v := pieceValue[piece.TypeOf()]
		if piece.ColorOf() == pos.SideToMove() {
			balance += v
		} else {
			balance -= v
		}
	}
	for hpt := HandPieceType(0); int(hpt) < HandLength; hpt++ {
		balance += float64(pos.HandCount(pos.SideToMove(), hpt)) * pieceValue[hpt.PieceType()]
		balance -= float64(pos.HandCount(pos.SideToMove().Flip(), hpt)) * pieceValue[hpt.PieceType()]
	}

	// Squash into (0, 1) from the side-to-move's perspective, matching the
	// value convention Evaluate/Backpropagate use throughout: 1 is a won
	// position, 0 is lost, 0.5 is balanced.
	value = float32(1 / (1 + math.Exp(-balance/20)))
	return policy, value
}
