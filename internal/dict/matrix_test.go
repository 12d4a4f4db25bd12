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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindera/lindera-go/internal/dict"
)

func TestMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	// Lookup must reproduce the raw cells exactly, including negatives.
	const forward, backward = 3, 4
	cells := []int16{
		0, 1, -2, 3,
		100, -200, 300, -400,
		32767, -32768, 7, 0,
	}
	data, err := dict.EncodeConnectionMatrix(forward, backward, cells)
	require.NoError(t, err)

	m, err := dict.NewConnectionMatrix(data)
	require.NoError(t, err)
	assert.Equal(t, forward, m.Forward())
	assert.Equal(t, backward, m.Backward())

	for r := 0; r < forward; r++ {
		for l := 0; l < backward; l++ {
			assert.Equal(t, int32(cells[r*backward+l]), m.Cost(uint16(r), uint16(l)), "cell (%d,%d)", r, l)
		}
	}
}

func TestMatrixHeaderLayout(t *testing.T) {
	t.Parallel()

	data, err := dict.EncodeConnectionMatrix(2, 1, []int16{5, -5})
	require.NoError(t, err)
	// Header is (forward, backward) as little-endian i16.
	assert.Equal(t, []byte{2, 0, 1, 0}, data[:4])
	// Cells follow row-major: M[right*backward+left].
	assert.Equal(t, []byte{5, 0, 0xFB, 0xFF}, data[4:])
}

func TestMatrixOutOfRangeSentinel(t *testing.T) {
	t.Parallel()

	data, err := dict.EncodeConnectionMatrix(2, 2, []int16{1, 2, 3, 4})
	require.NoError(t, err)
	m, err := dict.NewConnectionMatrix(data)
	require.NoError(t, err)

	assert.Equal(t, int32(math.MaxInt32), m.Cost(2, 0))
	assert.Equal(t, int32(math.MaxInt32), m.Cost(0, 2))
}

func TestMatrixRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := dict.NewConnectionMatrix([]byte{1, 0})
	assert.Error(t, err)

	// Declared 2x2 but only one cell present.
	_, err = dict.NewConnectionMatrix([]byte{2, 0, 2, 0, 1, 0})
	assert.Error(t, err)
}
