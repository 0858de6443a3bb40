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
	"fmt"
	"strconv"
	"strings"

	. "github.com/frankkopp/minishogi/internal/types"
	"github.com/frankkopp/minishogi/internal/zobrist"
)

// StartSFEN is the Minishogi starting position.
const StartSFEN = "rbsgk/4p/5/P4/KGSBR b - 1"

// SetSFEN (re-)initializes the position from the standard three (or four,
// counting the tolerated trailing move number) field SFEN notation.
// Parsing is strict: any malformed field is rejected rather than silently
// patched, per the error-handling contract - a caller must not be able to
// leave a Position with invariants half-applied.
func (p *Position) SetSFEN(sfen string) error {
	fields := strings.Fields(strings.TrimSpace(sfen))
	if len(fields) < 3 || len(fields) > 4 {
		return fmt.Errorf("position: invalid SFEN %q: expected 3-4 fields, got %d", sfen, len(fields))
	}

	var board [NumSquares]Piece
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardSize {
		return fmt.Errorf("position: invalid SFEN board %q: expected %d ranks, got %d", fields[0], BoardSize, len(ranks))
	}
	for r, rank := range ranks {
		file := 0
		promote := false
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c == '+':
				if promote {
					return fmt.Errorf("position: invalid SFEN rank %q: repeated '+'", rank)
				}
				promote = true
			case c >= '1' && c <= '9':
				if promote {
					return fmt.Errorf("position: invalid SFEN rank %q: '+' before empty run", rank)
				}
				file += int(c - '0')
			default:
				pt, ok := PieceTypeFromSfenChar(c)
				if !ok {
					return fmt.Errorf("position: invalid SFEN rank %q: unknown piece letter %q", rank, string(c))
				}
				if promote {
					if !pt.IsPromotable() {
						return fmt.Errorf("position: invalid SFEN rank %q: %q cannot promote", rank, string(c))
					}
					pt = pt.Promoted()
				}
				if file >= BoardSize {
					return fmt.Errorf("position: invalid SFEN rank %q: overflows board width", rank)
				}
				col := White
				if c >= 'a' && c <= 'z' {
					col = Black
				}
				sq := NewSquare(r, file)
				board[sq] = NewPiece(col, pt)
				file++
				promote = false
			}
		}
		if file != BoardSize {
			return fmt.Errorf("position: invalid SFEN rank %q: covers %d files, want %d", rank, file, BoardSize)
		}
	}

	stm, err := ColorFromSfen(fields[1])
	if err != nil {
		return fmt.Errorf("position: invalid SFEN: %w", err)
	}

	var hand Hand
	if len(fields) >= 3 && fields[2] != "-" {
		h := fields[2]
		for i := 0; i < len(h); {
			start := i
			for i < len(h) && h[i] >= '0' && h[i] <= '9' {
				i++
			}
			count := 1
			if i > start {
				n, err := strconv.Atoi(h[start:i])
				if err != nil {
					return fmt.Errorf("position: invalid SFEN hand %q: %w", h, err)
				}
				count = n
			}
			if i >= len(h) {
				return fmt.Errorf("position: invalid SFEN hand %q: trailing count with no piece", h)
			}
			pt, ok := PieceTypeFromSfenChar(h[i])
			if !ok || pt == King {
				return fmt.Errorf("position: invalid SFEN hand %q: unknown piece letter %q", h, string(h[i]))
			}
			col := White
			if h[i] >= 'a' && h[i] <= 'z' {
				col = Black
			}
			hpt := HandPieceTypeOf(pt)
			for n := 0; n < count; n++ {
				hand.Add(col, hpt)
			}
			i++
		}
	}

	*p = Position{board: board, hand: hand, sideToMove: stm}
	for sq := Square(0); sq < NumSquares; sq++ {
		if piece := board[sq]; piece != PieceNone {
			p.pieceBb[piece].Push(sq)
			p.playerBb[piece.ColorOf()].Push(sq)
			p.hash ^= zobrist.PieceSquare(sq, piece)
			if piece.TypeOf() == Pawn {
				p.pawnFlags[piece.ColorOf()] |= 1 << uint(sq.FileOf())
			}
		}
	}
	return nil
}
