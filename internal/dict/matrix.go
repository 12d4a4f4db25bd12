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
	"math"

	"github.com/lindera/lindera-go/internal/lerr"
)

// ConnectionMatrix is the dense table of transition costs between adjacent
// tokens, indexed by (right context id of the left token, left context id
// of the right token).
//
// On disk the matrix is a 4-byte header holding forward and backward sizes
// as little-endian i16, followed by forward*backward little-endian i16
// cells in row-major order. Cells are read in place, so the matrix can sit
// directly on a memory-mapped file.
type ConnectionMatrix struct {
	forward  int
	backward int
	cells    []byte
}

// NewConnectionMatrix wraps a raw matrix blob.
func NewConnectionMatrix(data []byte) (*ConnectionMatrix, error) {
	if len(data) < 4 {
		return nil, lerr.Deserialize.Errorf("connection matrix blob too short: %d bytes", len(data))
	}
	forward := int(int16(binary.LittleEndian.Uint16(data[0:2])))
	backward := int(int16(binary.LittleEndian.Uint16(data[2:4])))
	if forward < 0 || backward < 0 {
		return nil, lerr.Content.Errorf("negative connection matrix dimensions %dx%d", forward, backward)
	}
	if len(data)-4 != forward*backward*2 {
		return nil, lerr.Content.Errorf("connection matrix %dx%d needs %d cell bytes, found %d",
			forward, backward, forward*backward*2, len(data)-4)
	}
	return &ConnectionMatrix{forward: forward, backward: backward, cells: data[4:]}, nil
}

// Forward returns the number of right-context classes.
func (m *ConnectionMatrix) Forward() int {
	return m.forward
}

// Backward returns the number of left-context classes.
func (m *ConnectionMatrix) Backward() int {
	return m.backward
}

// Cost returns the transition cost from a token with right context id
// rightID to an adjacent token with left context id leftID. Ids outside
// the matrix dimensions yield [math.MaxInt32], which no minimum-cost path
// will choose.
func (m *ConnectionMatrix) Cost(rightID, leftID uint16) int32 {
	r, l := int(rightID), int(leftID)
	if r >= m.forward || l >= m.backward {
		return math.MaxInt32
	}
	cell := (r*m.backward + l) * 2
	return int32(int16(binary.LittleEndian.Uint16(m.cells[cell:])))
}

// EncodeConnectionMatrix serializes a matrix given in row-major order.
// It is the writer half of [NewConnectionMatrix], used by the builder
// tooling and by tests.
func EncodeConnectionMatrix(forward, backward int, costs []int16) ([]byte, error) {
	if forward < 0 || forward > math.MaxInt16 || backward < 0 || backward > math.MaxInt16 {
		return nil, lerr.Content.Errorf("connection matrix dimensions %dx%d out of i16 range", forward, backward)
	}
	if len(costs) != forward*backward {
		return nil, lerr.Content.Errorf("connection matrix %dx%d needs %d cells, got %d",
			forward, backward, forward*backward, len(costs))
	}
	data := make([]byte, 4+len(costs)*2)
	binary.LittleEndian.PutUint16(data[0:2], uint16(int16(forward)))
	binary.LittleEndian.PutUint16(data[2:4], uint16(int16(backward)))
	for i, c := range costs {
		binary.LittleEndian.PutUint16(data[4+i*2:], uint16(c))
	}
	return data, nil
}
