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
	"bytes"
	"encoding/binary"
	"sort"
	"strconv"
	"strings"

	"github.com/lindera/lindera-go/internal/dart"
	"github.com/lindera/lindera-go/internal/lerr"
)

// UserDictionary overlays the system dictionary with user-supplied
// entries: the same prefix-dictionary shape plus a details store. At
// lattice-build time it is consulted in addition to the system dictionary;
// conflicting surfaces produce competing candidates and Viterbi decides.
type UserDictionary struct {
	Prefix *PrefixDictionary

	wordsIdx []byte
	words    []byte
}

// WordDetails resolves the feature strings of a user word id.
func (d *UserDictionary) WordDetails(wordID uint32) []string {
	if wordID == UnknownWordID {
		return UnknownDetails()
	}
	return wordDetails(d.wordsIdx, d.words, wordID)
}

var userDictMagic = [4]byte{'L', 'D', 'U', 'D'}

// MarshalUserDictionary serializes a compiled user dictionary: a magic
// followed by four length-prefixed sections (trie units, values blob,
// details index, details blob), little-endian.
func MarshalUserDictionary(d *UserDictionary) []byte {
	var buf []byte
	buf = append(buf, userDictMagic[:]...)
	for _, section := range [][]byte{d.Prefix.trie.Bytes(), d.Prefix.vals, d.wordsIdx, d.words} {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(section)))
		buf = append(buf, section...)
	}
	return buf
}

// UnmarshalUserDictionary decodes a compiled user dictionary blob.
func UnmarshalUserDictionary(data []byte) (*UserDictionary, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], userDictMagic[:]) {
		return nil, lerr.Deserialize.Errorf("user dictionary: missing magic")
	}
	r := reader{data: data, pos: 4}
	sections := make([][]byte, 4)
	for i := range sections {
		sections[i] = r.bytes(int(r.uint32()))
	}
	if r.err != nil {
		return nil, lerr.Deserialize.Errorf("user dictionary: truncated section table")
	}
	if r.rest() != 0 {
		return nil, lerr.Deserialize.Errorf("user dictionary: %d trailing bytes", r.rest())
	}
	prefix, err := NewPrefixDictionary(sections[0], sections[1], false)
	if err != nil {
		return nil, err
	}
	return &UserDictionary{Prefix: prefix, wordsIdx: sections[2], words: sections[3]}, nil
}

// userRow is one parsed user-dictionary CSV line.
type userRow struct {
	surface string
	entry   WordEntry
	details []string
}

// BuildUserDictionary compiles user CSV content into a UserDictionary.
//
// Two row shapes are accepted, validated against the metadata widths:
//
//   - simple (SimpleUserdicFieldsNum columns): surface, part-of-speech,
//     reading. The entry gets the conventional SimpleWordCost and
//     SimpleContextID from the metadata.
//   - detailed (DetailedUserdicFieldsNum columns): surface, left_id,
//     right_id, word_cost, then the user schema's feature columns.
//
// Lines starting with '#' and blank lines are ignored. Word ids are
// assigned in storage order; rows sharing a surface keep their input
// order.
func BuildUserDictionary(content string, meta *Metadata) (*UserDictionary, error) {
	simpleWidth := meta.SimpleUserdicFieldsNum
	detailedWidth := meta.DetailedUserdicFieldsNum

	var rows []userRow
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		switch len(fields) {
		case simpleWidth:
			rows = append(rows, userRow{
				surface: fields[0],
				entry: WordEntry{
					WordCost: meta.SimpleWordCost,
					LeftID:   meta.SimpleContextID,
					RightID:  meta.SimpleContextID,
				},
				details: append([]string(nil), fields[1:]...),
			})
		case detailedWidth:
			leftID, err := strconv.ParseUint(fields[1], 10, 16)
			if err != nil {
				return nil, lerr.Parse.Errorf("user dictionary line %d: left id: %v", i+1, err)
			}
			rightID, err := strconv.ParseUint(fields[2], 10, 16)
			if err != nil {
				return nil, lerr.Parse.Errorf("user dictionary line %d: right id: %v", i+1, err)
			}
			cost, err := strconv.ParseInt(fields[3], 10, 16)
			if err != nil {
				return nil, lerr.Parse.Errorf("user dictionary line %d: word cost: %v", i+1, err)
			}
			rows = append(rows, userRow{
				surface: fields[0],
				entry: WordEntry{
					WordCost: int16(cost),
					LeftID:   uint16(leftID),
					RightID:  uint16(rightID),
				},
				details: append([]string(nil), fields[4:]...),
			})
		default:
			return nil, lerr.Content.Errorf(
				"user dictionary line %d: %d fields match neither the simple width %d nor the detailed width %d",
				i+1, len(fields), simpleWidth, detailedWidth)
		}
	}
	if len(rows) == 0 {
		return nil, lerr.Content.Errorf("user dictionary has no entries")
	}

	// Storage order: sorted by surface, input order within a surface, so
	// each surface's records pack contiguously in the values blob.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].surface < rows[j].surface })

	var (
		keys     []string
		values   []uint32
		vals     []byte
		wordsIdx []byte
		words    []byte
	)
	for i := 0; i < len(rows); {
		j := i
		for j < len(rows) && rows[j].surface == rows[i].surface {
			j++
		}
		value, err := PackValue(i, j-i)
		if err != nil {
			return nil, lerr.Content.Errorf("surface %q: %v", rows[i].surface, err)
		}
		keys = append(keys, rows[i].surface)
		values = append(values, value)
		i = j
	}
	for id, row := range rows {
		row.entry.WordID = WordID{ID: uint32(id), System: false}
		vals = AppendEntry(vals, row.entry)
		wordsIdx, words = AppendWordDetails(wordsIdx, words, row.details)
	}

	daData, err := dart.Build(keys, values)
	if err != nil {
		return nil, err
	}
	prefix, err := NewPrefixDictionary(daData, vals, false)
	if err != nil {
		return nil, err
	}
	return &UserDictionary{Prefix: prefix, wordsIdx: wordsIdx, words: words}, nil
}
