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

// SearchConfiguration holds the tunable constants of the Turn Generator
// & Search component (spec §4.7) and the skill->depth map spec §9
// leaves to the caller's UX.
type SearchConfiguration struct {
	// Second-move expansion pruning tiers (spec §4.7).
	FullExpansionTier    int // top N first moves: expand all second moves
	TacticalExpansionTier int // next N (up to this index): tactical-only second moves

	// Transposition table.
	UseTT      bool
	TTSizeMB   int

	// Killer/history heuristics (optional per spec §3).
	UseKillers bool
	UseHistory bool

	// Contempt (spec §4.5's "Contempt" subsection).
	ContemptThreshold int // |eval| above which contempt scales with eval
	ContemptBase      int // flat contempt when |eval| <= threshold
	ContemptMax       int // cap on the eval-scaled component

	// Fifty-move proximity blending (spec §4.5 final paragraph).
	BlendNear5Plies   int
	BlendNear5Weight  int // percent
	BlendNear10Plies  int
	BlendNear10Weight int // percent
	BlendNear20Plies  int
	BlendNear20Weight int // percent

	// SkillDepth maps the caller's skill {1,2,3} to a search depth in
	// plies (turns). Concrete numbers are UX-dependent per spec §9;
	// these are the defaults shipped with the engine.
	SkillDepth map[int]int
}

func init() {
	Settings.Search.FullExpansionTier = 15
	Settings.Search.TacticalExpansionTier = 25

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64

	Settings.Search.UseKillers = true
	Settings.Search.UseHistory = true

	Settings.Search.ContemptThreshold = 150
	Settings.Search.ContemptBase = 25
	Settings.Search.ContemptMax = 200

	Settings.Search.BlendNear5Plies = 5
	Settings.Search.BlendNear5Weight = 70
	Settings.Search.BlendNear10Plies = 10
	Settings.Search.BlendNear10Weight = 40
	Settings.Search.BlendNear20Plies = 20
	Settings.Search.BlendNear20Weight = 20

	Settings.Search.SkillDepth = map[int]int{1: 1, 2: 2, 3: 3}
}
