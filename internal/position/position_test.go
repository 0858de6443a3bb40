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

	"github.com/frankkopp/minishogi/internal/attacks"
	. "github.com/frankkopp/minishogi/internal/types"
	"github.com/frankkopp/minishogi/internal/zobrist"
)

func TestMain(m *testing.M) {
	zobrist.Init()
	attacks.Init()
	m.Run()
}

func TestSetSFENStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, 0, p.Ply())
	assert.Equal(t, NewPiece(Black, Rook), p.PieceOn(NewSquare(0, 0)))
	assert.Equal(t, NewPiece(Black, King), p.PieceOn(NewSquare(0, 4)))
	assert.Equal(t, NewPiece(White, King), p.PieceOn(NewSquare(4, 0)))
	assert.Equal(t, NewPiece(White, Pawn), p.PieceOn(NewSquare(3, 0)))
	assert.True(t, p.PieceOn(NewSquare(2, 2)).IsNone())
}

func TestSetSFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"rbsgk/4p/5/P4/KGSBR",        // board field only
		"rbsgk/4p/5/P4 b - 1",        // only 4 ranks
		"rbsgk/4p/5/P4/KGSBRX b - 1", // unknown letter / overflow
		"rbsgk/4p/5/P4/KGSBR x - 1",  // invalid side to move
		"rbsgk/4p/5/P4/KGSBR b 2 1",  // invalid hand field (no piece letter)
	}
	for _, sfen := range cases {
		p := &Position{}
		err := p.SetSFEN(sfen)
		assert.Error(t, err, "expected error for %q", sfen)
	}
}

func TestSetSFENHandField(t *testing.T) {
	p := &Position{}
	err := p.SetSFEN("2k2/5/5/5/2K2 b 2P1g 1")
	assert.NoError(t, err)
	assert.Equal(t, uint8(2), p.HandCount(White, HandPawn))
	assert.Equal(t, uint8(1), p.HandCount(Black, HandGold))
}

// A Black Gold's own step directions are {S,SE,E,N,W,SW} - its forward
// diagonals are SE/SW, not NE/NW - so the square from which it checks an
// enemy king diagonally is only found by looking up the reverse (White)
// table at the king's square, per isAttacked's reverse-attack technique.
// A Black Gold at b2 delivers check to a White king at c3 via SE, which a
// same-color (Black-table) lookup at c3 does not reach.
func TestInCheckDetectsGoldForwardDiagonalCheck(t *testing.T) {
	p := &Position{}
	assert.NoError(t, p.SetSFEN("5/1g3/2K2/5/4k b - 1"))
	assert.True(t, p.InCheck(White))
}

// Mirror case for White: a White Gold at d4 delivers check to a Black
// king at c3 via NW, one of White's forward diagonals; the lookup at c3
// uses the opposite-color (Black) table, whose SE step reaches d4.
func TestInCheckDetectsGoldForwardDiagonalCheckOtherColor(t *testing.T) {
	p := &Position{}
	assert.NoError(t, p.SetSFEN("5/5/2k2/3G1/4K b - 1"))
	assert.True(t, p.InCheck(Black))
}

// Property 3 — hash coherence: the incrementally maintained hash must equal
// the hash recomputed from scratch by XOR-ing every occupied square.
func recomputeHash(p *Position) uint64 {
	var h uint64
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		if piece := p.PieceOn(sq); !piece.IsNone() {
			h ^= zobrist.PieceSquare(sq, piece)
		}
	}
	return h
}

func TestHashCoherenceAcrossRandomPlayouts(t *testing.T) {
	p := New()
	assert.Equal(t, recomputeHash(p), p.Hash())

	playRandomLine(t, p, 40, func() {
		assert.Equal(t, recomputeHash(p), p.Hash())
	})
}

// Property 2 — bitboard coherence: piece_bb[board[s]] and the owning
// color's player_bb both have bit s set for every occupied square.
func assertBitboardCoherent(t *testing.T, p *Position) {
	t.Helper()
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		piece := p.PieceOn(sq)
		if piece.IsNone() {
			continue
		}
		assert.True(t, p.pieceBb[piece].Has(sq))
		assert.True(t, p.playerBb[piece.ColorOf()].Has(sq))
	}
}

func TestBitboardCoherenceAcrossRandomPlayouts(t *testing.T) {
	p := New()
	assertBitboardCoherent(t, p)
	playRandomLine(t, p, 40, func() {
		assertBitboardCoherent(t, p)
	})
}

// Property 4 — pawn-flag coherence.
func assertPawnFlagsCoherent(t *testing.T, p *Position) {
	t.Helper()
	for _, c := range []Color{White, Black} {
		for file := 0; file < BoardSize; file++ {
			want := false
			for rank := 0; rank < BoardSize; rank++ {
				sq := NewSquare(rank, file)
				piece := p.PieceOn(sq)
				if piece.TypeOf() == Pawn && piece.ColorOf() == c {
					want = true
				}
			}
			got := p.pawnFlags[c]&(1<<uint(file)) != 0
			assert.Equal(t, want, got, "color %v file %d", c, file)
		}
	}
}

func TestPawnFlagCoherenceAcrossRandomPlayouts(t *testing.T) {
	p := New()
	assertPawnFlagsCoherent(t, p)
	playRandomLine(t, p, 40, func() {
		assertPawnFlagsCoherent(t, p)
	})
}

// Property 1 — make/unmake round-trip: DoMove followed by UndoMove
// restores every field bit-for-bit.
func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	p := New()
	moves := p.GenerateMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.CapturePiece().TypeOf() == King {
			continue
		}
		before := *p
		p.DoMove(m)
		p.UndoMove()
		assert.Equal(t, before, *p, "round-trip mismatch for move %s", m.String())
	}
}

// Property 6 — no king captures in legal play: scanning several plies of
// legal-only play from the start position never yields a king-capturing
// move.
func TestNoKingCapturesInLegalPlay(t *testing.T) {
	p := New()
	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		moves := p.GenerateMoves()
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			assert.NotEqual(t, King, m.CapturePiece().TypeOf())
			p.DoMove(m)
			walk(depth - 1)
			p.UndoMove()
		}
	}
	walk(3)
}

// playRandomLine plays up to n legal moves (stopping early at a terminal
// position), taking move i mod the legal-move count at step i, so the line
// is fixed rather than random. It calls check after every move and unwinds
// back to the starting position before returning.
func playRandomLine(t *testing.T, p *Position, n int, check func()) {
	t.Helper()
	played := 0
	for i := 0; i < n; i++ {
		moves := p.GenerateMoves()
		if moves.Len() == 0 {
			break
		}
		m := moves.At(i % moves.Len())
		p.DoMove(m)
		played++
		check()
	}
	for i := 0; i < played; i++ {
		p.UndoMove()
	}
}
