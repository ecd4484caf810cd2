//
// double-chess-sub000 - Double-Move (Marseillais) chess engine in GO
//
// MIT License
//
// Copyright (c) 2026 double-chess-sub000 contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// EvalConfiguration holds the weights of the variant-tuned static
// evaluator (spec §4.5) and the hanging-piece adjustment.
type EvalConfiguration struct {
	DevelopmentBonus int // per developed minor piece

	BishopPairBonus int

	PieceCountBonus int // per minor/major piece on board, per side

	KingAttackerMalus int // per enemy attacker in the king ring

	PawnShieldMissingMalus      int // f-pawn missing with king on e/g-file
	PawnShieldSecondMissingMalus int // additional, g-pawn also missing for a castled king

	CastlingRightsKingSideBonus  int
	CastlingRightsQueenSideBonus int

	CastledKingSideBonus  int
	CastledQueenSideBonus int

	KingOnFFileMalus      int
	KingOnBadSquareMalus  int

	CenterControlBonus   int // per unit of central control
	CenterPawnWeight     int
	CenterPieceWeight    int

	EarlyQueenMalus int

	AntiTradeBonus int // per piece already traded while minors undeveloped

	// Hanging-piece adjustment (spec §4.5 second paragraph).
	HangingPiecePercent int // percent of a hanging piece's value applied
}

func init() {
	Settings.Eval.DevelopmentBonus = 60
	Settings.Eval.BishopPairBonus = 150
	Settings.Eval.PieceCountBonus = 25
	Settings.Eval.KingAttackerMalus = 30
	Settings.Eval.PawnShieldMissingMalus = 150
	Settings.Eval.PawnShieldSecondMissingMalus = 80
	Settings.Eval.CastlingRightsKingSideBonus = 40
	Settings.Eval.CastlingRightsQueenSideBonus = 20
	Settings.Eval.CastledKingSideBonus = 150
	Settings.Eval.CastledQueenSideBonus = 120
	Settings.Eval.KingOnFFileMalus = 200
	Settings.Eval.KingOnBadSquareMalus = 120
	Settings.Eval.CenterControlBonus = 15
	Settings.Eval.CenterPawnWeight = 2
	Settings.Eval.CenterPieceWeight = 1
	Settings.Eval.EarlyQueenMalus = 50
	Settings.Eval.AntiTradeBonus = 40
	Settings.Eval.HangingPiecePercent = 80
}
