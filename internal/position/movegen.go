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
	"github.com/frankkopp/minishogi/internal/attacks"
	. "github.com/frankkopp/minishogi/internal/types"
)

// GenerateMoves returns the legal moves available to the side to move.
// Equivalent to GenerateMovesWithOption(false).
func (p *Position) GenerateMoves() *MoveList {
	return p.GenerateMovesWithOption(false)
}

// GenerateMovesWithOption returns pseudo-legal moves when allowIllegal is
// true (geometric legality only - no king-safety check), or exactly the
// legal moves when false.
func (p *Position) GenerateMovesWithOption(allowIllegal bool) *MoveList {
	moves := NewMoveList()
	us := p.sideToMove
	them := us.Flip()
	occupied := p.Occupied()

	adjacentCheckCount, adjacentCheckBb := 0, Bitboard(0)
	if !allowIllegal {
		adjacentCheckCount, adjacentCheckBb = p.adjacentCheckers(us)
	}

	for sq := Square(0); sq < NumSquares; sq++ {
		piece := p.board[sq]
		if piece == PieceNone || piece.ColorOf() != us {
			continue
		}
		p.generateBoardMovesFrom(moves, sq, piece)
	}
	if allowIllegal || adjacentCheckCount == 0 {
		p.generateDrops(moves, us)
	}

	if allowIllegal {
		return moves
	}

	filtered := NewMoveList()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if p.isLegal(m, us, them, occupied, adjacentCheckCount, adjacentCheckBb) {
			filtered.PushBack(m)
		}
	}
	return filtered
}

// generateBoardMovesFrom appends every geometrically legal board move (and
// drop-free promotion variant) a piece standing on sq can make.
func (p *Position) generateBoardMovesFrom(moves *MoveList, from Square, piece Piece) {
	us := piece.ColorOf()
	pt := piece.TypeOf()

	appendDestination := func(dir Direction, to Square, amount int) bool {
		capture := p.board[to]
		if capture != PieceNone && capture.ColorOf() == us {
			return false
		}
		p.appendBoardMove(moves, piece, from, to, dir, amount, capture)
		return capture == PieceNone
	}

	if pt.IsSliding() {
		rayDirs := orthogonalDirsFor(pt)
		for _, dir := range rayDirs {
			to := from
			amount := 0
			for {
				next, ok := to.To(dir)
				if !ok {
					break
				}
				to = next
				amount++
				if !appendDestination(dir, to, amount) {
					break
				}
			}
		}
		for _, dir := range bonusDirsFor(pt) {
			to, ok := from.To(dir)
			if !ok {
				continue
			}
			appendDestination(dir, to, 1)
		}
		return
	}

	for _, dir := range MoveDirs(us, pt) {
		to, ok := from.To(dir)
		if !ok {
			continue
		}
		appendDestination(dir, to, 1)
	}
}

// orthogonalDirsFor/bonusDirsFor pick the ray family and bonus steps for a
// sliding piece type: Bishop/Horse slide diagonally, Rook/Dragon slide
// orthogonally, and Horse/Dragon additionally get the opposite family's
// one-step bonus.
func orthogonalDirsFor(pt PieceType) []Direction {
	switch pt {
	case Bishop, Horse:
		return []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	default:
		return []Direction{North, East, South, West}
	}
}

func bonusDirsFor(pt PieceType) []Direction {
	switch pt {
	case Horse:
		return []Direction{North, East, South, West}
	case Dragon:
		return []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	default:
		return nil
	}
}

// appendBoardMove emits the non-promoting and/or promoting variants of a
// move landing on to, per the stranded-piece-prevention rule: a raw,
// promotable piece must promote if it would otherwise be left with no
// future move (a pawn reaching the last rank), and may promote
// whenever either end of the move lies in its promotion zone.
func (p *Position) appendBoardMove(moves *MoveList, piece Piece, from, to Square, dir Direction, amount int, capture Piece) {
	us := piece.ColorOf()
	pt := piece.TypeOf()

	inZone := from.RankOf() == us.PromotionRank() || to.RankOf() == us.PromotionRank()
	// Only the Pawn can be stranded: it steps straight forward only, so
	// reaching the last rank leaves it with no legal move unless it
	// promotes. Silver always keeps a backward-diagonal step and is never
	// stranded.
	mustPromote := pt == Pawn && to.RankOf() == us.LastRank()

	if !mustPromote {
		moves.PushBack(NewBoardMove(piece, from, to, dir, amount, false, capture))
	}
	if pt.IsRaw() && pt.IsPromotable() && inZone {
		moves.PushBack(NewBoardMove(piece, from, to, dir, amount, true, capture))
	}
}

// generateDrops appends every legal drop for us: an empty destination, no
// nifu violation, and no pawn drop on the last rank.
func (p *Position) generateDrops(moves *MoveList, us Color) {
	empty := ^p.Occupied() & FullBoard
	for hpt := HandPieceType(0); hpt < HandPieceType(HandLength); hpt++ {
		if p.hand.Count(us, hpt) == 0 {
			continue
		}
		pt := hpt.PieceType()
		piece := NewPiece(us, pt)
		dest := empty
		for dest != 0 {
			to := dest.PopLsb()
			if pt == Pawn {
				if to.RankOf() == us.LastRank() {
					continue
				}
				if p.pawnFlags[us]&(1<<uint(to.FileOf())) != 0 {
					continue
				}
			}
			moves.PushBack(NewDrop(piece, hpt, to))
		}
	}
}

// adjacentCheckers returns how many one-step attackers currently check
// us's king, and the bitboard of their square(s); computed once per
// GenerateMovesWithOption call per the legality-filter recipe, rather than
// per candidate move.
func (p *Position) adjacentCheckers(us Color) (int, Bitboard) {
	ksq := p.KingSquare(us)
	if !ksq.IsValid() {
		return 0, 0
	}
	them := us.Flip()
	var bb Bitboard
	count := 0
	for _, pt := range stepAttackers {
		piece := NewPiece(them, pt)
		tableColor := them
		if pt != King && pt != Horse && pt != Dragon {
			tableColor = them.Flip()
		}
		attackers := attacks.AdjacentAttack(NewPiece(tableColor, pt), ksq) & p.pieceBb[piece]
		for a := attackers; a != 0; {
			sq := a.PopLsb()
			bb.Push(sq)
			count++
		}
	}
	return count, bb
}

// isLegal applies the per-move legality filter described in the data
// model: drops can only ever expose the king to a sliding check (adding a
// friendly stone cannot create a stepping-piece check), king moves are
// tested against the fully recomputed occupancy, and all other moves are
// tested against the precomputed adjacent-checker state plus a sliding-ray
// recheck against the post-move occupancy, with the destination square
// masked out of the opponent's ray pieces (a slider captured there no
// longer attacks).
func (p *Position) isLegal(m Move, us, them Color, occupied Bitboard, adjacentCheckCount int, adjacentCheckBb Bitboard) bool {
	if m.IsDrop() {
		occ := occupied | m.To().Bb()
		return !p.isAttacked(p.KingSquare(us), them, occ)
	}

	piece := m.Piece()
	if piece.TypeOf() == King {
		occ := (occupied &^ m.From().Bb()) | m.To().Bb()
		return !p.isAttacked(m.To(), them, occ)
	}

	if adjacentCheckCount >= 2 {
		return false
	}
	if adjacentCheckCount == 1 && !adjacentCheckBb.Has(m.To()) {
		return false
	}

	// Stepping checks are settled by the adjacent-checker test above, so
	// only the opponent's rays remain to be checked.
	ksq := p.KingSquare(us)
	occ := (occupied &^ m.From().Bb()) | m.To().Bb()
	notTo := ^m.To().Bb()
	diagRay := (p.pieceBb[NewPiece(them, Bishop)] | p.pieceBb[NewPiece(them, Horse)]) & notTo
	if attacks.BishopAttack(ksq, occ)&diagRay != 0 {
		return false
	}
	orthoRay := (p.pieceBb[NewPiece(them, Rook)] | p.pieceBb[NewPiece(them, Dragon)]) & notTo
	return attacks.RookAttack(ksq, occ)&orthoRay == 0
}
