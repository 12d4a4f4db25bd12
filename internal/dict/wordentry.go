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

// Package dict holds the compiled dictionary artifacts the segmentation
// core consumes: the prefix dictionary, connection cost matrix, character
// definitions, unknown-word dictionary, word details store, and the loaders
// that assemble them from a directory, byte slices, or a memory-mapped
// file.
//
// Everything in this package is immutable after construction and safe to
// share across goroutines without synchronization.
package dict

import (
	"encoding/binary"
	"math"
)

// UnknownWordID is the reserved numeric word id for unknown words.
const UnknownWordID = math.MaxUint32

// WordEntryLen is the serialized size of a [WordEntry], in bytes.
const WordEntryLen = 10

// WordID identifies a word by numeric id and originating dictionary.
// Entries from the system dictionary and a user dictionary may share
// numeric ids without collision.
type WordID struct {
	ID     uint32
	System bool
}

// IsUnknown reports whether the id denotes an unknown word.
func (w WordID) IsUnknown() bool {
	return w.ID == UnknownWordID
}

// WordEntry is one dictionary entry: the word id plus the cost and
// connection-matrix context ids used by the Viterbi search.
type WordEntry struct {
	WordID   WordID
	WordCost int16
	LeftID   uint16
	RightID  uint16
}

// AppendEntry appends the 10-byte little-endian encoding of e to buf.
// The origin flag is not part of the encoding; it is a property of the
// containing dictionary.
func AppendEntry(buf []byte, e WordEntry) []byte {
	var rec [WordEntryLen]byte
	binary.LittleEndian.PutUint32(rec[0:4], e.WordID.ID)
	binary.LittleEndian.PutUint16(rec[4:6], uint16(e.WordCost))
	binary.LittleEndian.PutUint16(rec[6:8], e.LeftID)
	binary.LittleEndian.PutUint16(rec[8:10], e.RightID)
	return append(buf, rec[:]...)
}

// DecodeEntry decodes one 10-byte record. data must hold at least
// [WordEntryLen] bytes; system sets the origin flag of the decoded id.
func DecodeEntry(data []byte, system bool) WordEntry {
	return WordEntry{
		WordID:   WordID{ID: binary.LittleEndian.Uint32(data[0:4]), System: system},
		WordCost: int16(binary.LittleEndian.Uint16(data[4:6])),
		LeftID:   binary.LittleEndian.Uint16(data[6:8]),
		RightID:  binary.LittleEndian.Uint16(data[8:10]),
	}
}
