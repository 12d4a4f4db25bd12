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

// Package lattice builds the tokenization lattice over an input string and
// runs the Viterbi minimum-cost search over it.
//
// The lattice is an arena of nodes addressed by int32 indices, with
// per-byte-position lists of the nodes starting and ending there. A node's
// back-pointer and accumulated cost live in the arena itself, so the
// structure is a flat DAG with no pointer cycles. Lattices are transient:
// one is built per segmentation call and dropped afterwards.
package lattice

import (
	"math"
	"unicode/utf8"

	"github.com/lindera/lindera-go/internal/dict"
)

// Kind distinguishes how a lattice node came to be.
type Kind uint8

const (
	// KindKnown is a node backed by a prefix-dictionary hit, from either
	// the system dictionary or the user overlay.
	KindKnown Kind = iota
	// KindUnknown is a node synthesized by the character-category rules.
	KindUnknown
	// KindBOS is the virtual beginning-of-string anchor.
	KindBOS
	// KindEOS is the virtual end-of-string anchor.
	KindEOS
)

// KanjiCategoryName is the category consulted for the decompose-mode
// kanji-only penalty. Dictionaries without it never mark a node kanji-only.
const KanjiCategoryName = "KANJI"

const unreached = math.MaxInt32

// node is one arena slot. Cost and prev are the Viterbi state: the best
// cumulative cost reaching this node and the arena index of its best
// predecessor.
type node struct {
	start     int32
	end       int32
	entry     dict.WordEntry
	kind      Kind
	kanjiOnly bool
	numChars  int32
	cost      int32
	prev      int32
}

// Lattice is the candidate graph for one input string. Every path from BOS
// to EOS covers the input byte range exactly once with no overlap.
type Lattice struct {
	text  string
	nodes []node

	// startsAt[p] and endsAt[p] list arena indices of nodes starting and
	// ending at byte position p. BOS appears only in endsAt[0] and EOS
	// only in startsAt[len(text)].
	startsAt [][]int32
	endsAt   [][]int32

	eos int32

	defs        *dict.CharacterDefinitions
	kanjiCat    dict.CategoryID
	hasKanjiCat bool
}

// Build enumerates every candidate tokenization of text against the system
// dictionary and optional user overlay. Construction never fails: invalid
// UTF-8 sequences are treated as the replacement character and categorized
// like any other codepoint.
func Build(text string, sys *dict.Dictionary, user *dict.UserDictionary) *Lattice {
	l := &Lattice{
		text:     text,
		nodes:    make([]node, 0, len(text)/2+4),
		startsAt: make([][]int32, len(text)+1),
		endsAt:   make([][]int32, len(text)+1),
		defs:     sys.CharDefs,
	}
	l.kanjiCat, l.hasKanjiCat = sys.CharDefs.CategoryIDByName(KanjiCategoryName)

	// BOS anchors the search with right context id 0.
	bos := l.alloc(0, 0, dict.WordEntry{WordID: dict.WordID{ID: dict.UnknownWordID, System: true}}, KindBOS)
	l.nodes[bos].cost = 0
	l.endsAt[0] = append(l.endsAt[0], bos)

	for p := 0; p < len(text); p++ {
		// Positions no path reaches contribute nothing.
		if len(l.endsAt[p]) == 0 {
			continue
		}
		suffix := text[p:]

		known := false
		if user != nil {
			user.Prefix.CommonPrefix(suffix, func(length int, e dict.WordEntry) bool {
				l.add(p, p+length, e, KindKnown)
				known = true
				return true
			})
		}
		sys.Prefix.CommonPrefix(suffix, func(length int, e dict.WordEntry) bool {
			l.add(p, p+length, e, KindKnown)
			known = true
			return true
		})

		r, _ := utf8.DecodeRuneInString(suffix)
		cats := sys.CharDefs.LookupCategories(r)
		// Secondary categories contribute their own candidates, but span
		// boundaries are always computed against the position's primary
		// category.
		primary := cats[0]
		for _, cat := range cats {
			data := sys.CharDefs.Category(cat)
			if known && !data.Invoke {
				continue
			}
			entries := sys.Unknown.Candidates(cat)
			if len(entries) == 0 {
				continue
			}
			for _, end := range unknownSpans(sys.CharDefs, text, p, primary, data) {
				for _, e := range entries {
					l.add(p, end, e, KindUnknown)
				}
			}
		}
	}

	// EOS anchors the other end with left context id 0.
	l.eos = l.alloc(len(text), len(text), dict.WordEntry{WordID: dict.WordID{ID: dict.UnknownWordID, System: true}}, KindEOS)
	l.startsAt[len(text)] = append(l.startsAt[len(text)], l.eos)
	return l
}

// alloc appends a node to the arena with Viterbi state cleared.
func (l *Lattice) alloc(start, end int, e dict.WordEntry, kind Kind) int32 {
	idx := int32(len(l.nodes))
	l.nodes = append(l.nodes, node{
		start: int32(start),
		end:   int32(end),
		entry: e,
		kind:  kind,
		cost:  unreached,
		prev:  -1,
	})
	return idx
}

// add inserts a Known or Unknown node spanning text[start:end] and indexes
// it by both endpoints.
func (l *Lattice) add(start, end int, e dict.WordEntry, kind Kind) {
	idx := l.alloc(start, end, e, kind)
	n := &l.nodes[idx]
	n.numChars, n.kanjiOnly = l.spanShape(start, end)
	l.startsAt[start] = append(l.startsAt[start], idx)
	l.endsAt[end] = append(l.endsAt[end], idx)
}

// spanShape counts the characters of a span and reports whether every one
// of them belongs to the kanji category.
func (l *Lattice) spanShape(start, end int) (numChars int32, kanjiOnly bool) {
	kanjiOnly = l.hasKanjiCat
	for q := start; q < end; {
		r, size := utf8.DecodeRuneInString(l.text[q:end])
		if size == 0 {
			break
		}
		numChars++
		if kanjiOnly && !l.inCategory(r, l.kanjiCat) {
			kanjiOnly = false
		}
		q += size
	}
	return numChars, kanjiOnly
}

func (l *Lattice) inCategory(r rune, cat dict.CategoryID) bool {
	for _, c := range l.defs.LookupCategories(r) {
		if c == cat {
			return true
		}
	}
	return false
}

// unknownSpans returns the byte offsets just past each unknown-word span
// starting at start under one category's policy: the maximal run when the
// policy groups, plus spans of 1..Length characters. Run membership is
// decided against primary — the starting position's primary category —
// even when the policy belongs to a secondary category: the starting
// character always belongs to its span, and every character after it must
// have primary as its own primary category. Duplicate ends are merged.
func unknownSpans(defs *dict.CharacterDefinitions, text string, start int, primary dict.CategoryID, data dict.CategoryData) []int {
	_, size := utf8.DecodeRuneInString(text[start:])
	if size == 0 {
		return nil
	}

	var ends []int
	if data.Group {
		q := start + size
		for q < len(text) {
			r, sz := utf8.DecodeRuneInString(text[q:])
			if defs.PrimaryCategory(r) != primary {
				break
			}
			q += sz
		}
		ends = append(ends, q)
	}
	if data.Length > 0 {
		q := start
		for count := 0; count < int(data.Length) && q < len(text); count++ {
			r, sz := utf8.DecodeRuneInString(text[q:])
			if count > 0 && defs.PrimaryCategory(r) != primary {
				break
			}
			q += sz
			found := false
			for _, e := range ends {
				if e == q {
					found = true
					break
				}
			}
			if !found {
				ends = append(ends, q)
			}
		}
	}
	return ends
}
