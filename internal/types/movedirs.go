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

package types

// stepDirs lists, per color and piece type, the directions a non-sliding
// piece steps exactly one square in. Bishop, Horse, Rook and Dragon are
// absent here: their diagonal/orthogonal rays are handled structurally by
// the sliding attack tables. Horse and Dragon still carry a one-step bonus
// on top of their ray, recorded separately in bonusStepDirs.
var stepDirs = [ColorLength][PtLength][]Direction{
	White: {
		King:       {North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest},
		Gold:       {North, NorthEast, East, South, West, NorthWest},
		Silver:     {North, NorthEast, SouthEast, SouthWest, NorthWest},
		PromSilver: {North, NorthEast, East, South, West, NorthWest},
		Pawn:       {North},
		PromPawn:   {North, NorthEast, East, South, West, NorthWest},
	},
	Black: {
		King:       {North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest},
		Gold:       {South, SouthEast, East, North, West, SouthWest},
		Silver:     {South, SouthEast, NorthEast, NorthWest, SouthWest},
		PromSilver: {South, SouthEast, East, North, West, SouthWest},
		Pawn:       {South},
		PromPawn:   {South, SouthEast, East, North, West, SouthWest},
	},
}

// MoveDirs returns the directions a non-sliding piece of type pt and color c
// steps exactly one square in, clipped to the board by the caller via
// Square.To. Undefined (empty) for Bishop/Horse/Rook/Dragon and PtNone.
func MoveDirs(c Color, pt PieceType) []Direction {
	return stepDirs[c][pt]
}

// bonusStepDirs gives Horse (promoted Bishop) its four orthogonal one-step
// moves and Dragon (promoted Rook) its four diagonal one-step moves, on top
// of their raw piece's sliding ray. Color independent: orthogonal/diagonal
// directions are symmetric, unlike Gold/Silver's forward-biased steps.
var bonusStepDirs = [PtLength][]Direction{
	Horse:  orthogonalDirs[:],
	Dragon: diagonalDirs[:],
}

// BonusStepDirs returns the one-step bonus directions a promoted sliding
// piece adds to its ray, or nil for every other piece type.
func BonusStepDirs(pt PieceType) []Direction {
	return bonusStepDirs[pt]
}
