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
	"github.com/lindera/lindera-go/internal/dart"
	"github.com/lindera/lindera-go/internal/lerr"
)

// valueCountBits is the width of the entry count packed into the low bits
// of a trie value; the remaining high bits are the record offset into the
// values blob. A surface can therefore carry at most 31 homographs.
const valueCountBits = 5

// PrefixDictionary maps surface forms to their word entries through a
// double-array trie.
//
// The trie's value for an accepting surface packs (offset<<5 | count):
// count entries of [WordEntryLen] bytes each, stored contiguously in the
// values blob starting at byte offset*WordEntryLen. Homographs keep their
// storage order.
type PrefixDictionary struct {
	trie   dart.Trie
	vals   []byte
	system bool
}

// NewPrefixDictionary wraps raw trie units and a values blob. system marks
// the origin of every decoded entry.
func NewPrefixDictionary(daData, valsData []byte, system bool) (*PrefixDictionary, error) {
	trie, err := dart.New(daData)
	if err != nil {
		return nil, err
	}
	if len(valsData)%WordEntryLen != 0 {
		return nil, lerr.Deserialize.Errorf("values blob size %d is not a multiple of %d", len(valsData), WordEntryLen)
	}
	return &PrefixDictionary{trie: trie, vals: valsData, system: system}, nil
}

// CommonPrefix calls fn for every word entry whose surface is a prefix of
// s, shortest surface first, homographs in storage order. Iteration stops
// when fn returns false. The walk allocates nothing.
func (d *PrefixDictionary) CommonPrefix(s string, fn func(length int, entry WordEntry) bool) {
	d.trie.CommonPrefixSearch(s, func(prefixLen int, value uint32) bool {
		offset, count := unpackValue(value)
		data := d.vals[offset*WordEntryLen:]
		for i := 0; i < count; i++ {
			if !fn(prefixLen, DecodeEntry(data[i*WordEntryLen:], d.system)) {
				return false
			}
		}
		return true
	})
}

// FindSurface returns every entry registered for exactly the given
// surface, in storage order, or nil when the surface is absent.
func (d *PrefixDictionary) FindSurface(surface string) []WordEntry {
	value, ok := d.trie.ExactMatchSearch(surface)
	if !ok {
		return nil
	}
	offset, count := unpackValue(value)
	data := d.vals[offset*WordEntryLen:]
	entries := make([]WordEntry, count)
	for i := range entries {
		entries[i] = DecodeEntry(data[i*WordEntryLen:], d.system)
	}
	return entries
}

func unpackValue(value uint32) (offset, count int) {
	return int(value >> valueCountBits), int(value & (1<<valueCountBits - 1))
}

// PackValue packs a record offset and entry count into a trie value.
// Used by the user-dictionary builder and by tests.
func PackValue(offset, count int) (uint32, error) {
	if count <= 0 || count >= 1<<valueCountBits {
		return 0, lerr.Content.Errorf("entry count %d out of range [1, %d]", count, 1<<valueCountBits-1)
	}
	packed := uint32(offset)<<valueCountBits | uint32(count)
	if int(packed>>valueCountBits) != offset {
		return 0, lerr.Content.Errorf("values offset %d overflows packed representation", offset)
	}
	return packed, nil
}
