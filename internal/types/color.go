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

// Package types contains the small, cheaply copyable value types shared by
// every other package: colors, squares, piece (types), directions, hands and
// the packed Move representation.
package types

import "fmt"

// Color represents one of the two sides. White moves first (SFEN "b"),
// Black moves second (SFEN "w") - the SFEN letters are inherited from
// standard Shogi notation and intentionally do not match the color names.
type Color uint8

const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < 2
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// SfenChar returns the SFEN side-to-move letter for c.
func (c Color) SfenChar() string {
	if c == White {
		return "b"
	}
	return "w"
}

// ColorFromSfen parses a SFEN side-to-move letter.
func ColorFromSfen(s string) (Color, error) {
	switch s {
	case "b":
		return White, nil
	case "w":
		return Black, nil
	default:
		return White, fmt.Errorf("invalid SFEN side to move: %q", s)
	}
}

// forwardDir is the one-step direction a pawn/silver/gold of this color
// considers "forward" (i.e. towards the opponent's back rank).
var forwardDir = [ColorLength]Direction{North, South}

// Forward returns the forward direction for the color.
func (c Color) Forward() Direction {
	return forwardDir[c]
}

// promotionRank is the single-rank promotion zone for each color.
var promotionRank = [ColorLength]int{0, 4}

// PromotionRank returns the rank index (0-4) of the color's promotion zone.
func (c Color) PromotionRank() int {
	return promotionRank[c]
}

// lastRank is the rank beyond which a pawn of this color can no longer move
// (used to forbid stranded pawn drops/non-promoting pawn moves).
var lastRank = [ColorLength]int{0, 4}

// LastRank returns the back rank a pawn of this color cannot be moved past.
func (c Color) LastRank() int {
	return lastRank[c]
}
