// Copyright 2021-2026 the Lindera-Go authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lindera

import (
	"github.com/lindera/lindera-go/internal/lerr"
)

// Penalty parameterizes the decompose-mode length penalty. A node of n
// characters costs an extra
//
//	0                                  if n <= KanjiThreshold
//	(n - KanjiThreshold) * KanjiCost   if every character is kanji
//	(n - OtherThreshold) * OtherCost   if n > OtherThreshold
//	0                                  otherwise
//
// so a long compound costs more than its decomposition and the search
// prefers splits.
type Penalty struct {
	KanjiThreshold int
	KanjiCost      int32
	OtherThreshold int
	OtherCost      int32
}

// DefaultPenalty returns the conventional decompose parameters.
func DefaultPenalty() Penalty {
	return Penalty{
		KanjiThreshold: 2,
		KanjiCost:      3000,
		OtherThreshold: 7,
		OtherCost:      1700,
	}
}

func (p Penalty) cost(numChars int, kanjiOnly bool) int32 {
	if numChars <= p.KanjiThreshold {
		return 0
	}
	if kanjiOnly {
		return int32(numChars-p.KanjiThreshold) * p.KanjiCost
	}
	if numChars > p.OtherThreshold {
		return int32(numChars-p.OtherThreshold) * p.OtherCost
	}
	return 0
}

// Mode is the cost model applied by the Viterbi search. The zero value is
// [Normal].
type Mode struct {
	decompose bool
	penalty   Penalty
}

// Normal selects the dictionary's natural minimum-cost segmentation with
// no extra penalties.
var Normal = Mode{}

// Decompose returns the decompose (a.k.a. search) mode with the default
// penalty parameters.
func Decompose() Mode {
	return DecomposeWith(DefaultPenalty())
}

// DecomposeWith returns the decompose mode with custom penalty
// parameters.
func DecomposeWith(p Penalty) Mode {
	return Mode{decompose: true, penalty: p}
}

// ParseMode resolves a mode name, either "normal" or "decompose".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "normal":
		return Normal, nil
	case "decompose":
		return Decompose(), nil
	default:
		return Mode{}, lerr.Mode.Errorf("invalid mode: %q", s)
	}
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	if m.decompose {
		return "decompose"
	}
	return "normal"
}

// penaltyCost is the extra cost this mode charges for entering a node.
func (m Mode) penaltyCost(numChars int, kanjiOnly bool) int32 {
	if !m.decompose {
		return 0
	}
	return m.penalty.cost(numChars, kanjiOnly)
}
