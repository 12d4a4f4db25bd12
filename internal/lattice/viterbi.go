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

package lattice

import (
	"math"

	"github.com/lindera/lindera-go/internal/dict"
)

// PenaltyFunc is the mode-specific extra cost added to a node when it is
// entered. Normal mode contributes zero; decompose mode penalizes long
// spans to bias the search toward shorter tokens.
type PenaltyFunc func(numChars int, kanjiOnly bool) int32

// Node is one element of the selected path, with BOS and EOS dropped.
type Node struct {
	Start     int
	End       int
	Entry     dict.WordEntry
	Kind      Kind
	NumChars  int
	KanjiOnly bool
}

// Viterbi selects the minimum-cost path from BOS to EOS and returns it
// together with its total cost. Edge cost from a node A ending at p to a
// node B starting at p is
//
//	matrix.Cost(A.rightID, B.leftID) + B.wordCost + penalty(B)
//
// accumulated in 32-bit integers. Cost ties keep the earlier-inserted
// predecessor. When no path reaches EOS — possible only with a dictionary
// whose unknown rules leave gaps or whose context ids fall outside the
// matrix — the result is nil.
//
// Viterbi consumes the lattice's search state and must be called at most
// once per [Build].
func (l *Lattice) Viterbi(matrix *dict.ConnectionMatrix, penalty PenaltyFunc) ([]Node, int32) {
	for p := 0; p < len(l.startsAt); p++ {
		ends := l.endsAt[p]
		if len(ends) == 0 {
			continue
		}
		for _, bi := range l.startsAt[p] {
			b := &l.nodes[bi]
			pen := int32(0)
			if b.kind == KindKnown || b.kind == KindUnknown {
				pen = penalty(int(b.numChars), b.kanjiOnly)
			}
			enter := int32(b.entry.WordCost) + pen
			for _, ai := range ends {
				a := &l.nodes[ai]
				if a.cost == unreached {
					continue
				}
				trans := matrix.Cost(a.entry.RightID, b.entry.LeftID)
				if trans == math.MaxInt32 {
					// Out-of-range context id; the edge is impossible.
					continue
				}
				cand := a.cost + trans + enter
				if cand < b.cost {
					b.cost = cand
					b.prev = ai
				}
			}
		}
	}

	eos := &l.nodes[l.eos]
	if eos.cost == unreached {
		return nil, 0
	}

	var path []Node
	for idx := eos.prev; idx >= 0; idx = l.nodes[idx].prev {
		n := &l.nodes[idx]
		if n.kind == KindBOS {
			break
		}
		path = append(path, Node{
			Start:     int(n.start),
			End:       int(n.end),
			Entry:     n.entry,
			Kind:      n.kind,
			NumChars:  int(n.numChars),
			KanjiOnly: n.kanjiOnly,
		})
	}
	// The chain was collected back to front.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, eos.cost
}
