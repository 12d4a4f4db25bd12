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
	"github.com/edsrzf/mmap-go"
)

// Dictionary is a compiled system dictionary: the prefix dictionary,
// connection cost matrix, character definitions, unknown-word dictionary,
// word details store, and metadata.
//
// A Dictionary is immutable once loaded. Segmenters hold references, not
// copies, and any number of goroutines may query one concurrently.
type Dictionary struct {
	Prefix   *PrefixDictionary
	Matrix   *ConnectionMatrix
	CharDefs *CharacterDefinitions
	Unknown  *UnknownDictionary
	Metadata *Metadata

	wordsIdx []byte
	words    []byte

	// Mappings retained for the dictionary's lifetime when loaded via mmap.
	mappings []mmap.MMap
}

// WordDetails returns the ordered feature strings of wordID, resolving
// lazily from the details store. Unknown or unresolvable ids yield the
// ["UNK"] sentinel; the call never fails.
func (d *Dictionary) WordDetails(wordID uint32) []string {
	if wordID == UnknownWordID {
		return UnknownDetails()
	}
	return wordDetails(d.wordsIdx, d.words, wordID)
}

// Close releases any memory mappings held by the dictionary. It is a no-op
// for dictionaries loaded into the heap. The dictionary must not be used
// after Close.
func (d *Dictionary) Close() error {
	var first error
	for _, m := range d.mappings {
		if err := m.Unmap(); err != nil && first == nil {
			first = err
		}
	}
	d.mappings = nil
	return first
}
