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
	"sort"
	"unicode/utf8"

	"github.com/lindera/lindera-go/internal/lerr"
)

// DefaultCategoryName is the category every dictionary must define; it
// applies to codepoints no other category claims.
const DefaultCategoryName = "DEFAULT"

// CategoryID indexes a character category within its dictionary.
type CategoryID uint32

// CategoryData is the unknown-word policy of one category.
type CategoryData struct {
	// Invoke generates unknown-word candidates even when known words match
	// at the position.
	Invoke bool
	// Group emits one candidate spanning the maximal run of characters
	// sharing this primary category.
	Group bool
	// Length additionally emits candidates of 1..Length characters.
	Length uint32
}

// CharacterDefinitions maps codepoints to their ordered category lists and
// holds per-category unknown-word policy.
//
// The codepoint mapping is piecewise constant: a sorted boundary array with
// parallel category lists, searched for the largest boundary not exceeding
// the codepoint.
type CharacterDefinitions struct {
	categories  []CategoryData
	names       []string
	boundaries  []uint32
	mapping     [][]CategoryID
	defaultCats []CategoryID
}

// NewCharacterDefinitions assembles a table from its parts. boundaries must
// be sorted ascending, start at 0, and pair with mapping element-wise; a
// category named DEFAULT must exist.
func NewCharacterDefinitions(categories []CategoryData, names []string, boundaries []uint32, mapping [][]CategoryID) (*CharacterDefinitions, error) {
	if len(categories) != len(names) {
		return nil, lerr.Content.Errorf("%d categories but %d names", len(categories), len(names))
	}
	if len(boundaries) != len(mapping) {
		return nil, lerr.Content.Errorf("%d boundaries but %d mapping rows", len(boundaries), len(mapping))
	}
	if len(boundaries) == 0 || boundaries[0] != 0 {
		return nil, lerr.Content.Errorf("boundary table must start at codepoint 0")
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i-1] >= boundaries[i] {
			return nil, lerr.Content.Errorf("boundaries not strictly sorted at index %d", i)
		}
	}
	for _, row := range mapping {
		for _, id := range row {
			if int(id) >= len(categories) {
				return nil, lerr.Content.Errorf("category id %d out of range", id)
			}
		}
	}
	d := &CharacterDefinitions{
		categories: categories,
		names:      names,
		boundaries: boundaries,
		mapping:    mapping,
	}
	def, ok := d.CategoryIDByName(DefaultCategoryName)
	if !ok {
		return nil, lerr.Content.Errorf("character definitions lack the %s category", DefaultCategoryName)
	}
	d.defaultCats = []CategoryID{def}
	return d, nil
}

// NumCategories returns the number of defined categories.
func (d *CharacterDefinitions) NumCategories() int {
	return len(d.categories)
}

// Category returns the unknown-word policy of id.
func (d *CharacterDefinitions) Category(id CategoryID) CategoryData {
	return d.categories[id]
}

// CategoryName returns the name of id.
func (d *CharacterDefinitions) CategoryName(id CategoryID) string {
	return d.names[id]
}

// CategoryNames returns the category names in id order.
func (d *CharacterDefinitions) CategoryNames() []string {
	return d.names
}

// CategoryIDByName resolves a category by name.
func (d *CharacterDefinitions) CategoryIDByName(name string) (CategoryID, bool) {
	for i, n := range d.names {
		if n == name {
			return CategoryID(i), true
		}
	}
	return 0, false
}

// LookupCategories returns the ordered category list of r; the first
// element is the primary category. Codepoints no range claims resolve to
// DEFAULT. The returned slice is shared and must not be mutated.
func (d *CharacterDefinitions) LookupCategories(r rune) []CategoryID {
	cp := uint32(r)
	if r < 0 || r > utf8.MaxRune {
		cp = uint32(utf8.RuneError)
	}
	idx := sort.Search(len(d.boundaries), func(i int) bool { return d.boundaries[i] > cp }) - 1
	cats := d.mapping[idx]
	if len(cats) == 0 {
		return d.defaultCats
	}
	return cats
}

// PrimaryCategory returns the first category of r.
func (d *CharacterDefinitions) PrimaryCategory(r rune) CategoryID {
	return d.LookupCategories(r)[0]
}

// Marshal serializes the table to its binary artifact form (char_def.bin):
// little-endian, category policies, names, then the boundary table.
func (d *CharacterDefinitions) Marshal() []byte {
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(d.categories)))
	for i, c := range d.categories {
		buf = append(buf, boolByte(c.Invoke), boolByte(c.Group))
		buf = binary.LittleEndian.AppendUint32(buf, c.Length)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(d.names[i])))
		buf = append(buf, d.names[i]...)
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(d.boundaries)))
	for i, b := range d.boundaries {
		buf = binary.LittleEndian.AppendUint32(buf, b)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(d.mapping[i])))
		for _, id := range d.mapping[i] {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(id))
		}
	}
	return buf
}

// UnmarshalCharacterDefinitions decodes a char_def.bin blob.
func UnmarshalCharacterDefinitions(data []byte) (*CharacterDefinitions, error) {
	r := reader{data: data}
	numCats := int(r.uint32())
	if r.err != nil || numCats < 0 || numCats > 1<<16 {
		return nil, lerr.Deserialize.Errorf("character definitions: bad category count")
	}
	categories := make([]CategoryData, 0, numCats)
	names := make([]string, 0, numCats)
	for i := 0; i < numCats; i++ {
		invoke, group := r.byte(), r.byte()
		length := r.uint32()
		name := string(r.bytes(int(r.uint32())))
		if r.err != nil {
			return nil, lerr.Deserialize.Errorf("character definitions: truncated category %d", i)
		}
		categories = append(categories, CategoryData{Invoke: invoke != 0, Group: group != 0, Length: length})
		names = append(names, name)
	}
	numBounds := int(r.uint32())
	if r.err != nil || numBounds < 0 || numBounds > 1<<24 {
		return nil, lerr.Deserialize.Errorf("character definitions: bad boundary count")
	}
	boundaries := make([]uint32, 0, numBounds)
	mapping := make([][]CategoryID, 0, numBounds)
	for i := 0; i < numBounds; i++ {
		boundaries = append(boundaries, r.uint32())
		n := int(r.uint32())
		if r.err != nil || n < 0 || n > numCats {
			return nil, lerr.Deserialize.Errorf("character definitions: bad mapping row %d", i)
		}
		row := make([]CategoryID, 0, n)
		for j := 0; j < n; j++ {
			row = append(row, CategoryID(r.uint32()))
		}
		mapping = append(mapping, row)
	}
	if r.err != nil {
		return nil, lerr.Deserialize.Errorf("character definitions: truncated boundary table")
	}
	if r.rest() != 0 {
		return nil, lerr.Deserialize.Errorf("character definitions: %d trailing bytes", r.rest())
	}
	return NewCharacterDefinitions(categories, names, boundaries, mapping)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// reader is a cursor over a binary blob that latches the first error.
type reader struct {
	data []byte
	pos  int
	err  error
}

func (r *reader) uint32() uint32 {
	if r.err != nil {
		return 0
	}
	if r.pos+4 > len(r.data) {
		r.err = lerr.Deserialize.Errorf("unexpected end of data at offset %d", r.pos)
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v
}

func (r *reader) byte() byte {
	if r.err != nil {
		return 0
	}
	if r.pos >= len(r.data) {
		r.err = lerr.Deserialize.Errorf("unexpected end of data at offset %d", r.pos)
		return 0
	}
	b := r.data[r.pos]
	r.pos++
	return b
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.err = lerr.Deserialize.Errorf("unexpected end of data at offset %d", r.pos)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) rest() int {
	if r.err != nil {
		return 0
	}
	return len(r.data) - r.pos
}
