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

package dict

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/lindera/lindera-go/internal/lerr"
)

// UnknownDictionary holds the candidate word entries generated for
// unknown-word spans, grouped by character category.
//
// Every entry carries the reserved unknown word id; its surface is the
// spanning text decided at lattice-build time.
type UnknownDictionary struct {
	categoryRefs [][]uint32
	entries      []WordEntry
	perCategory  [][]WordEntry
}

// NewUnknownDictionary assembles an unknown dictionary from per-category
// entry-index lists and the shared entries array.
func NewUnknownDictionary(categoryRefs [][]uint32, entries []WordEntry) (*UnknownDictionary, error) {
	perCategory := make([][]WordEntry, len(categoryRefs))
	for cat, refs := range categoryRefs {
		list := make([]WordEntry, 0, len(refs))
		for _, ref := range refs {
			if int(ref) >= len(entries) {
				return nil, lerr.Content.Errorf("unknown dictionary: category %d references entry %d of %d", cat, ref, len(entries))
			}
			list = append(list, entries[ref])
		}
		perCategory[cat] = list
	}
	return &UnknownDictionary{categoryRefs: categoryRefs, entries: entries, perCategory: perCategory}, nil
}

// Candidates returns the entries registered for a category, in storage
// order. A category with no entries yields nil, which degrades to "no
// unknown nodes for that category". The slice is shared and must not be
// mutated.
func (u *UnknownDictionary) Candidates(cat CategoryID) []WordEntry {
	if int(cat) >= len(u.perCategory) {
		return nil
	}
	return u.perCategory[cat]
}

// Marshal serializes to the unk.bin artifact form: per-category reference
// lists followed by the 10-byte entry records, all little-endian.
func (u *UnknownDictionary) Marshal() []byte {
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(u.categoryRefs)))
	for _, refs := range u.categoryRefs {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(refs)))
		for _, ref := range refs {
			buf = binary.LittleEndian.AppendUint32(buf, ref)
		}
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(u.entries)))
	for _, e := range u.entries {
		buf = AppendEntry(buf, e)
	}
	return buf
}

// UnmarshalUnknownDictionary decodes an unk.bin blob.
func UnmarshalUnknownDictionary(data []byte) (*UnknownDictionary, error) {
	r := reader{data: data}
	numCats := int(r.uint32())
	if r.err != nil || numCats < 0 || numCats > 1<<16 {
		return nil, lerr.Deserialize.Errorf("unknown dictionary: bad category count")
	}
	categoryRefs := make([][]uint32, 0, numCats)
	for i := 0; i < numCats; i++ {
		n := int(r.uint32())
		if r.err != nil || n < 0 || n > 1<<16 {
			return nil, lerr.Deserialize.Errorf("unknown dictionary: bad reference count for category %d", i)
		}
		refs := make([]uint32, 0, n)
		for j := 0; j < n; j++ {
			refs = append(refs, r.uint32())
		}
		categoryRefs = append(categoryRefs, refs)
	}
	numEntries := int(r.uint32())
	if r.err != nil || numEntries < 0 || r.rest() != numEntries*WordEntryLen {
		return nil, lerr.Deserialize.Errorf("unknown dictionary: entry table size mismatch")
	}
	entries := make([]WordEntry, 0, numEntries)
	for i := 0; i < numEntries; i++ {
		entries = append(entries, DecodeEntry(r.bytes(WordEntryLen), true))
	}
	return NewUnknownDictionary(categoryRefs, entries)
}

// ParseUnkDef builds an unknown dictionary from unk.def CSV content. Each
// row is `category,left_id,right_id,word_cost,features...`; the category
// column names the character category the row belongs to. expectedFields
// is the row width declared by the dictionary metadata.
func ParseUnkDef(categories []string, content string, expectedFields int) (*UnknownDictionary, error) {
	type row struct {
		category string
		entry    WordEntry
	}
	var rows []row
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != expectedFields {
			return nil, lerr.Content.Errorf("unk.def line %d: expected %d fields, got %d", i+1, expectedFields, len(fields))
		}
		leftID, err := strconv.ParseUint(fields[1], 10, 16)
		if err != nil {
			return nil, lerr.Parse.Errorf("unk.def line %d: left id: %v", i+1, err)
		}
		rightID, err := strconv.ParseUint(fields[2], 10, 16)
		if err != nil {
			return nil, lerr.Parse.Errorf("unk.def line %d: right id: %v", i+1, err)
		}
		cost, err := strconv.ParseInt(fields[3], 10, 16)
		if err != nil {
			return nil, lerr.Parse.Errorf("unk.def line %d: word cost: %v", i+1, err)
		}
		rows = append(rows, row{
			category: fields[0],
			entry: WordEntry{
				WordID:   WordID{ID: UnknownWordID, System: true},
				WordCost: int16(cost),
				LeftID:   uint16(leftID),
				RightID:  uint16(rightID),
			},
		})
	}

	categoryRefs := make([][]uint32, len(categories))
	entries := make([]WordEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.entry)
	}
	for cat, name := range categories {
		for i, r := range rows {
			if r.category == name {
				categoryRefs[cat] = append(categoryRefs[cat], uint32(i))
			}
		}
	}
	return NewUnknownDictionary(categoryRefs, entries)
}
