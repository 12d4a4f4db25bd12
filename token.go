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

package lindera

import (
	"encoding/json"

	"github.com/lindera/lindera-go/internal/dict"
)

// Token is one segment of the input.
//
// Feature details are resolved lazily from the owning dictionary on the
// first call to [Token.Details], so callers that only need surfaces pay
// no detail-lookup cost.
type Token struct {
	// Surface is the literal substring of the input the token covers.
	Surface string
	// ByteStart and ByteEnd delimit the surface within the input,
	// half-open, in bytes.
	ByteStart int
	ByteEnd   int
	// Position is the 0-based index of the token in the emitted sequence.
	Position int
	// PositionLength is the number of positions the token occupies. The
	// core always emits 1; larger values are reserved for token-merging
	// filters.
	PositionLength int
	// WordID is the numeric dictionary id, [IsUnknown] for synthesized
	// unknown words.
	WordID uint32

	system   bool
	dict     *dict.Dictionary
	userDict *dict.UserDictionary
	details  []string
}

// IsUnknown reports whether the token was synthesized by the unknown-word
// rules rather than matched from a dictionary.
func (t *Token) IsUnknown() bool {
	return t.WordID == dict.UnknownWordID
}

// IsSystem reports whether the token's entry originates from the system
// dictionary rather than the user overlay.
func (t *Token) IsSystem() bool {
	return t.system
}

// Details returns the token's ordered feature strings, resolving and
// caching them on first use. Unknown words and unresolvable ids yield the
// ["UNK"] sentinel. The returned slice must not be mutated.
func (t *Token) Details() []string {
	if t.details != nil {
		return t.details
	}
	switch {
	case t.IsUnknown() || t.dict == nil && t.userDict == nil:
		t.details = dict.UnknownDetails()
	case t.system:
		t.details = t.dict.WordDetails(t.WordID)
	default:
		t.details = t.userDict.WordDetails(t.WordID)
	}
	return t.details
}

// tokenJSON is the wire shape of a token in JSON output.
type tokenJSON struct {
	Surface        string   `json:"surface"`
	ByteStart      int      `json:"byte_start"`
	ByteEnd        int      `json:"byte_end"`
	Position       int      `json:"position"`
	PositionLength int      `json:"position_length"`
	WordID         uint32   `json:"word_id"`
	Details        []string `json:"details"`
}

// MarshalJSON implements [json.Marshaler], resolving details.
func (t *Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenJSON{
		Surface:        t.Surface,
		ByteStart:      t.ByteStart,
		ByteEnd:        t.ByteEnd,
		Position:       t.Position,
		PositionLength: t.PositionLength,
		WordID:         t.WordID,
		Details:        t.Details(),
	})
}
