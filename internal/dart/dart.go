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

// Package dart implements a double-array trie keyed by raw bytes.
//
// The trie is stored as a flat array of fixed-width units so that it can be
// searched directly over a memory-mapped file without deserialization. Unit
// i occupies 12 bytes, little-endian:
//
//	base  uint32 — transition base of the state
//	check uint32 — parent state, or 0xffffffff for a free unit
//	value uint32 — the state's value, or [NoValue] when not accepting
//
// A transition from state s on byte c leads to unit base(s)+c+1; the
// transition is valid iff that unit's check equals s. State 0 is the root.
package dart

import (
	"encoding/binary"

	"github.com/lindera/lindera-go/internal/lerr"
)

// NoValue marks a non-accepting state in the value slot.
const NoValue = ^uint32(0)

const (
	unitSize  = 12
	freeCheck = ^uint32(0)
)

// Trie is a read-only double-array trie over a raw unit array.
//
// The zero Trie is empty and matches nothing. A Trie never copies or
// mutates its backing bytes, so it may be shared freely across goroutines
// and may point directly into a memory-mapped file.
type Trie struct {
	data []byte
}

// New wraps raw unit bytes produced by [Build].
func New(data []byte) (Trie, error) {
	if len(data)%unitSize != 0 {
		return Trie{}, lerr.Deserialize.Errorf("double-array size %d is not a multiple of %d", len(data), unitSize)
	}
	return Trie{data: data}, nil
}

// Bytes returns the backing unit array.
func (t Trie) Bytes() []byte {
	return t.data
}

func (t Trie) units() int {
	return len(t.data) / unitSize
}

func (t Trie) base(i int) int {
	return int(binary.LittleEndian.Uint32(t.data[i*unitSize:]))
}

func (t Trie) check(i int) uint32 {
	return binary.LittleEndian.Uint32(t.data[i*unitSize+4:])
}

func (t Trie) value(i int) uint32 {
	return binary.LittleEndian.Uint32(t.data[i*unitSize+8:])
}

// CommonPrefixSearch walks key from the root and calls fn once for every
// accepting prefix, in increasing length order, with the prefix's byte
// length and stored value. Traversal stops early when fn returns false.
//
// The walk performs no allocation.
func (t Trie) CommonPrefixSearch(key string, fn func(prefixLen int, value uint32) bool) {
	if t.units() == 0 {
		return
	}
	s := 0
	for i := 0; i < len(key); i++ {
		next := t.base(s) + int(key[i]) + 1
		if next >= t.units() || t.check(next) != uint32(s) {
			return
		}
		s = next
		if v := t.value(s); v != NoValue {
			if !fn(i+1, v) {
				return
			}
		}
	}
}

// ExactMatchSearch returns the value stored for key, if any.
func (t Trie) ExactMatchSearch(key string) (uint32, bool) {
	if t.units() == 0 || len(key) == 0 {
		return 0, false
	}
	s := 0
	for i := 0; i < len(key); i++ {
		next := t.base(s) + int(key[i]) + 1
		if next >= t.units() || t.check(next) != uint32(s) {
			return 0, false
		}
		s = next
	}
	if v := t.value(s); v != NoValue {
		return v, true
	}
	return 0, false
}
