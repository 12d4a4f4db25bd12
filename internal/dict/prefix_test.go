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

package dict_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindera/lindera-go/internal/dart"
	"github.com/lindera/lindera-go/internal/dict"
)

// buildPrefix compiles a prefix dictionary where surfaces[i] carries
// counts[i] homographs with ascending costs.
func buildPrefix(t *testing.T, surfaces []string, counts []int) *dict.PrefixDictionary {
	t.Helper()
	require.Len(t, counts, len(surfaces))

	var (
		keys   []string
		values []uint32
		vals   []byte
	)
	id, offset := uint32(0), 0
	for i, s := range surfaces {
		value, err := dict.PackValue(offset, counts[i])
		require.NoError(t, err)
		keys = append(keys, s)
		values = append(values, value)
		for j := 0; j < counts[i]; j++ {
			vals = dict.AppendEntry(vals, dict.WordEntry{
				WordID:   dict.WordID{ID: id, System: true},
				WordCost: int16(100 * (j + 1)),
				LeftID:   1,
				RightID:  1,
			})
			id++
			offset++
		}
	}
	daData, err := dart.Build(keys, values)
	require.NoError(t, err)
	pd, err := dict.NewPrefixDictionary(daData, vals, true)
	require.NoError(t, err)
	return pd
}

func TestCommonPrefixYieldsOnlyPrefixes(t *testing.T) {
	t.Parallel()

	surfaces := []string{"東", "東京", "東京都", "関西"}
	pd := buildPrefix(t, surfaces, []int{1, 1, 1, 1})

	input := "東京都庁"
	var lengths []int
	pd.CommonPrefix(input, func(length int, e dict.WordEntry) bool {
		lengths = append(lengths, length)
		assert.True(t, strings.HasPrefix(input, input[:length]))
		return true
	})
	assert.Equal(t, []int{len("東"), len("東京"), len("東京都")}, lengths)
}

func TestCommonPrefixHomographOrder(t *testing.T) {
	t.Parallel()

	// Two entries packed under the same surface must come out in storage
	// order every time.
	pd := buildPrefix(t, []string{"が"}, []int{2})
	for run := 0; run < 3; run++ {
		var costs []int16
		pd.CommonPrefix("が", func(length int, e dict.WordEntry) bool {
			assert.Equal(t, len("が"), length)
			costs = append(costs, e.WordCost)
			return true
		})
		assert.Equal(t, []int16{100, 200}, costs)
	}
}

func TestCommonPrefixNoMatch(t *testing.T) {
	t.Parallel()

	pd := buildPrefix(t, []string{"東京"}, []int{1})
	called := false
	pd.CommonPrefix("大阪", func(length int, e dict.WordEntry) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestFindSurface(t *testing.T) {
	t.Parallel()

	pd := buildPrefix(t, []string{"駅", "駅前"}, []int{2, 1})

	entries := pd.FindSurface("駅")
	require.Len(t, entries, 2)
	assert.Equal(t, int16(100), entries[0].WordCost)
	assert.Equal(t, int16(200), entries[1].WordCost)

	assert.Nil(t, pd.FindSurface("駅員"))
	assert.Len(t, pd.FindSurface("駅前"), 1)
}

func TestPackValueBounds(t *testing.T) {
	t.Parallel()

	_, err := dict.PackValue(0, 0)
	assert.Error(t, err)
	_, err = dict.PackValue(0, 32)
	assert.Error(t, err)
	v, err := dict.PackValue(3, 31)
	require.NoError(t, err)
	assert.Equal(t, uint32(3<<5|31), v)
}

func TestNewPrefixDictionaryRejectsRaggedVals(t *testing.T) {
	t.Parallel()

	daData, err := dart.Build([]string{"a"}, []uint32{1})
	require.NoError(t, err)
	_, err = dict.NewPrefixDictionary(daData, make([]byte, 7), true)
	assert.Error(t, err)
}
