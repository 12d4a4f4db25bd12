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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	m, err := ParseMode("normal")
	require.NoError(t, err)
	assert.Equal(t, "normal", m.String())

	m, err = ParseMode("decompose")
	require.NoError(t, err)
	assert.Equal(t, "decompose", m.String())

	_, err = ParseMode("search")
	require.Error(t, err)
	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrMode, le.Kind())
}

func TestPenaltyCost(t *testing.T) {
	t.Parallel()

	p := DefaultPenalty()
	tests := []struct {
		name      string
		numChars  int
		kanjiOnly bool
		want      int32
	}{
		{"at kanji threshold", 2, true, 0},
		{"one past kanji threshold", 3, true, 3000},
		{"long kanji", 6, true, 12000},
		{"short mixed", 3, false, 0},
		{"at other threshold", 7, false, 0},
		{"past other threshold", 9, false, 3400},
		{"long kanji uses kanji rate", 9, true, 21000},
		{"single char", 1, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.cost(tt.numChars, tt.kanjiOnly))
		})
	}
}

func TestModePenalty(t *testing.T) {
	t.Parallel()

	// Normal charges nothing regardless of shape.
	assert.Equal(t, int32(0), Normal.penaltyCost(100, true))

	assert.Equal(t, int32(3000), Decompose().penaltyCost(3, true))

	custom := DecomposeWith(Penalty{KanjiThreshold: 1, KanjiCost: 10, OtherThreshold: 2, OtherCost: 5})
	assert.Equal(t, int32(20), custom.penaltyCost(3, true))
	assert.Equal(t, int32(5), custom.penaltyCost(3, false))
}
