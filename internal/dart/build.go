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

package dart

import (
	"encoding/binary"
	"strings"

	"github.com/lindera/lindera-go/internal/lerr"
)

// Build constructs the unit array for the given keys and values.
//
// Keys must be non-empty, strictly ascending in byte order, and free of
// duplicates; values[i] is stored for keys[i] and must not be [NoValue].
// The builder favors simplicity over packing speed: it is used for user
// dictionaries and fixtures, not for full system dictionaries, which are
// compiled offline.
func Build(keys []string, values []uint32) ([]byte, error) {
	if len(keys) != len(values) {
		return nil, lerr.Content.Errorf("double-array: %d keys but %d values", len(keys), len(values))
	}
	for i, k := range keys {
		if k == "" {
			return nil, lerr.Content.Errorf("double-array: empty key at index %d", i)
		}
		if i > 0 && strings.Compare(keys[i-1], k) >= 0 {
			return nil, lerr.Content.Errorf("double-array: keys not strictly sorted at index %d (%q >= %q)", i, keys[i-1], k)
		}
		if values[i] == NoValue {
			return nil, lerr.Content.Errorf("double-array: reserved value for key %q", k)
		}
	}

	b := &builder{}
	b.ensure(1)
	b.check[0] = 0 // root claims unit 0
	if len(keys) > 0 {
		b.insert(keys, values, 0, len(keys), 0, 0)
	}

	data := make([]byte, (b.high+1)*unitSize)
	for i := 0; i <= b.high; i++ {
		binary.LittleEndian.PutUint32(data[i*unitSize:], uint32(b.base[i]))
		binary.LittleEndian.PutUint32(data[i*unitSize+4:], b.check[i])
		binary.LittleEndian.PutUint32(data[i*unitSize+8:], b.value[i])
	}
	return data, nil
}

type builder struct {
	base  []int
	check []uint32
	value []uint32
	high  int // highest claimed unit index
}

// span is one child edge of a trie node: the label byte and the half-open
// key range that continues through it.
type span struct {
	c      byte
	lo, hi int
}

func (b *builder) ensure(n int) {
	for len(b.base) < n {
		b.base = append(b.base, 0)
		b.check = append(b.check, freeCheck)
		b.value = append(b.value, NoValue)
	}
}

// insert places keys[lo:hi], which all share a prefix of depth bytes, under
// the given state.
func (b *builder) insert(keys []string, values []uint32, lo, hi, depth, state int) {
	if len(keys[lo]) == depth {
		b.value[state] = values[lo]
		lo++
	}
	if lo == hi {
		return
	}

	// Children are contiguous because keys are sorted.
	var children []span
	for i := lo; i < hi; {
		c := keys[i][depth]
		j := i + 1
		for j < hi && keys[j][depth] == c {
			j++
		}
		children = append(children, span{c: c, lo: i, hi: j})
		i = j
	}

	base := b.findBase(children)
	b.base[state] = base
	// Claim every child before recursing so sibling subtrees cannot steal
	// the slots.
	for _, ch := range children {
		t := base + int(ch.c) + 1
		b.ensure(t + 1)
		b.check[t] = uint32(state)
		if t > b.high {
			b.high = t
		}
	}
	for _, ch := range children {
		b.insert(keys, values, ch.lo, ch.hi, depth+1, base+int(ch.c)+1)
	}
}

// findBase returns the smallest base whose child slots are all free.
func (b *builder) findBase(children []span) int {
	for base := 0; ; base++ {
		ok := true
		for _, ch := range children {
			t := base + int(ch.c) + 1
			if t < len(b.check) && b.check[t] != freeCheck {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}
