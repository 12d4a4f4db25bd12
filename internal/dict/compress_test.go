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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindera/lindera-go/internal/dict"
)

func TestCompressRoundTrip(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("形態素解析abc\x00\x01\x02"), 500)
	for _, algorithm := range []dict.Algorithm{dict.Deflate, dict.Zlib, dict.Gzip, dict.Raw} {
		t.Run(algorithm.String(), func(t *testing.T) {
			t.Parallel()
			blob, err := dict.Compress(payload, algorithm)
			require.NoError(t, err)
			assert.True(t, dict.IsEnveloped(blob))

			out, err := dict.Decompress(blob)
			require.NoError(t, err)
			assert.Equal(t, payload, out)
		})
	}
}

func TestDecompressBarePayload(t *testing.T) {
	t.Parallel()

	// Bytes without the envelope magic pass through untouched.
	raw := []byte("not an envelope")
	out, err := dict.Decompress(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, out)

	out, err = dict.Decompress(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecompressRejectsCorruptEnvelope(t *testing.T) {
	t.Parallel()

	blob, err := dict.Compress([]byte("payload"), dict.Gzip)
	require.NoError(t, err)

	// Truncating the payload breaks the declared size.
	_, err = dict.Decompress(blob[:len(blob)-1])
	assert.Error(t, err)

	// An unknown algorithm tag is rejected.
	bad := append([]byte(nil), blob...)
	bad[4] = 0xFF
	_, err = dict.Decompress(bad)
	assert.Error(t, err)
}

func TestAlgorithmNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"deflate", "zlib", "gzip", "raw"} {
		a, err := dict.ParseAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, name, a.String())

		text, err := a.MarshalText()
		require.NoError(t, err)
		var back dict.Algorithm
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, a, back)
	}
	_, err := dict.ParseAlgorithm("lzma")
	assert.Error(t, err)
}
