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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMecab(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	out := FormatMecab(seg.Segment("日本語です"))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "日本語\t名詞,一般,日本語,ニホンゴ", lines[0])
	assert.Equal(t, "です\t助動詞,*,です,デス", lines[1])
	assert.Equal(t, "EOS", lines[2])

	// Empty input still terminates with EOS.
	assert.Equal(t, "EOS", FormatMecab(nil))
}

func TestFormatWakati(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	assert.Equal(t, "日本語 の 解析", FormatWakati(seg.Segment("日本語の解析")))
	assert.Equal(t, "", FormatWakati(nil))
}

func TestFormatJSON(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	out, err := FormatJSON(seg.Segment("Rust"))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Rust", decoded[0]["surface"])
	assert.Equal(t, float64(0), decoded[0]["byte_start"])
	assert.Equal(t, float64(4), decoded[0]["byte_end"])
	assert.Equal(t, float64(1), decoded[0]["position_length"])
	assert.Equal(t, []any{"UNK"}, decoded[0]["details"])

	out, err = FormatJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"mecab", "wakati", "json"} {
		f, err := ParseOutputFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())

		_, err = Format(nil, f)
		assert.NoError(t, err)
	}
	_, err := ParseOutputFormat("tsv")
	assert.Error(t, err)
}
