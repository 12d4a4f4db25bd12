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
	"unicode/utf8"
)

// UnknownDetails is the conventional detail list for a word without
// resolvable features.
func UnknownDetails() []string {
	return []string{"UNK"}
}

// wordDetails resolves the feature strings of wordID from an offset table
// and a words blob: wordsIdx[4*id] is a little-endian u32 byte offset into
// words, where a u32 length prefix is followed by NUL-separated UTF-8
// feature strings.
//
// Any out-of-range id, invalid length, or invalid UTF-8 degrades to the
// ["UNK"] sentinel; details resolution never fails.
func wordDetails(wordsIdx, words []byte, wordID uint32) []string {
	idxOffset := 4 * int64(wordID)
	if idxOffset+4 > int64(len(wordsIdx)) {
		return UnknownDetails()
	}
	offset := int64(binary.LittleEndian.Uint32(wordsIdx[idxOffset:]))
	if offset+4 > int64(len(words)) {
		return UnknownDetails()
	}
	length := int64(binary.LittleEndian.Uint32(words[offset:]))
	if offset+4+length > int64(len(words)) {
		return UnknownDetails()
	}
	joined := words[offset+4 : offset+4+length]
	if !utf8.Valid(joined) {
		return UnknownDetails()
	}
	fields := bytes.Split(joined, []byte{0})
	details := make([]string, len(fields))
	for i, f := range fields {
		details[i] = string(f)
	}
	return details
}

// AppendWordDetails appends one detail record to a words blob and its
// offset to the index, returning the updated slices. It is the writer half
// of wordDetails, used by the user-dictionary builder and fixtures.
func AppendWordDetails(wordsIdx, words []byte, details []string) (idx, blob []byte) {
	wordsIdx = binary.LittleEndian.AppendUint32(wordsIdx, uint32(len(words)))
	joined := []byte(joinNUL(details))
	words = binary.LittleEndian.AppendUint32(words, uint32(len(joined)))
	words = append(words, joined...)
	return wordsIdx, words
}

func joinNUL(fields []string) string {
	var sb bytes.Buffer
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(0)
		}
		sb.WriteString(f)
	}
	return sb.String()
}
