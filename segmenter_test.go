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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindera/lindera-go/internal/dict"
	"github.com/lindera/lindera-go/internal/dicttest"
)

// fixtureDictionary wraps the shared fixture in the public handle.
func fixtureDictionary(tb testing.TB) *Dictionary {
	return &Dictionary{impl: dicttest.Load(tb)}
}

func surfaces(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i := range tokens {
		out[i] = tokens[i].Surface
	}
	return out
}

func checkInvariants(t *testing.T, input string, tokens []Token) {
	t.Helper()
	covered := 0
	for i := range tokens {
		tok := &tokens[i]
		assert.Equal(t, i, tok.Position)
		assert.Equal(t, 1, tok.PositionLength)
		assert.Equal(t, covered, tok.ByteStart, "token %d overlaps or gaps", i)
		assert.Greater(t, tok.ByteEnd, tok.ByteStart)
		assert.Equal(t, input[tok.ByteStart:tok.ByteEnd], tok.Surface)
		covered = tok.ByteEnd
	}
	assert.Equal(t, len(input), covered, "tokens must tile the input")
}

func TestSegmentJapaneseNormal(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	input := "日本語の形態素解析を行うことができます。"
	tokens := seg.Segment(input)

	assert.Equal(t,
		[]string{"日本語", "の", "形態素", "解析", "を", "行う", "こと", "が", "でき", "ます", "。"},
		surfaces(tokens))
	checkInvariants(t, input, tokens)

	require.NotEmpty(t, tokens)
	first := tokens[0]
	assert.True(t, first.IsSystem())
	assert.False(t, first.IsUnknown())
	details := first.Details()
	require.Len(t, details, 4)
	assert.Equal(t, "名詞", details[0])
	assert.Equal(t, "ニホンゴ", details[3])
}

func TestSegmentDecomposeVsNormal(t *testing.T) {
	t.Parallel()

	d := fixtureDictionary(t)
	input := "関西国際空港"

	normal := NewSegmenter(Normal, d, nil).Segment(input)
	assert.Equal(t, []string{"関西国際空港"}, surfaces(normal))

	decompose := NewSegmenter(Decompose(), d, nil).Segment(input)
	assert.Equal(t, []string{"関西", "国際", "空港"}, surfaces(decompose))
	checkInvariants(t, input, decompose)
}

func TestSegmentUserDictionaryOverride(t *testing.T) {
	t.Parallel()

	d := fixtureDictionary(t)
	user, err := d.UserDictionaryFromCSV(dicttest.SimpleUserCSV)
	require.NoError(t, err)

	input := "東京スカイツリーの最寄り駅はとうきょうスカイツリー駅です"
	tokens := NewSegmenter(Normal, d, user).Segment(input)
	checkInvariants(t, input, tokens)

	got := surfaces(tokens)
	assert.Contains(t, got, "東京スカイツリー")
	assert.Contains(t, got, "とうきょうスカイツリー駅")

	for i := range tokens {
		if tokens[i].Surface == "東京スカイツリー" {
			assert.False(t, tokens[i].IsSystem())
			assert.Equal(t, []string{"カスタム名詞", "トウキョウスカイツリー"}, tokens[i].Details())
		}
	}
}

func TestSegmentKorean(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	input := "한국어의형태해석을실시할수있습니다."
	tokens := seg.Segment(input)

	assert.Len(t, tokens, 9)
	assert.Equal(t,
		[]string{"한국어", "의", "형태해석", "을", "실시", "할", "수", "있습니다", "."},
		surfaces(tokens))
	checkInvariants(t, input, tokens)
}

func TestSegmentChinese(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	input := "可以进行中文形态学分析。"
	tokens := seg.Segment(input)

	assert.Equal(t, []string{"可以", "进行", "中文", "形态学", "分析", "。"}, surfaces(tokens))
	checkInvariants(t, input, tokens)
}

func TestSegmentUnknownWord(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	tokens := seg.Segment("Rust")

	require.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, "Rust", tok.Surface)
	assert.Equal(t, 0, tok.ByteStart)
	assert.Equal(t, 4, tok.ByteEnd)
	assert.True(t, tok.IsUnknown())
	assert.Equal(t, []string{"UNK"}, tok.Details())
}

func TestSegmentEmptyInput(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	assert.Empty(t, seg.Segment(""))
}

func TestSegmentDeterminism(t *testing.T) {
	t.Parallel()

	seg := NewSegmenter(Normal, fixtureDictionary(t), nil)
	input := "日本語の形態素解析を行うことができます。"
	first := seg.Segment(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, surfaces(first), surfaces(seg.Segment(input)))
	}
}

func TestSegmentConcurrent(t *testing.T) {
	t.Parallel()

	// One dictionary, many segmenters, many goroutines: no synchronization
	// is required because dictionaries are immutable.
	d := fixtureDictionary(t)
	inputs := []string{
		"日本語の形態素解析を行うことができます。",
		"関西国際空港",
		"한국어의형태해석을실시할수있습니다.",
		"可以进行中文形态学分析。",
		"Rust",
	}
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seg := NewSegmenter(Normal, d, nil)
			for i := 0; i < 50; i++ {
				input := inputs[i%len(inputs)]
				tokens := seg.Segment(input)
				if len(tokens) == 0 {
					t.Error("empty segmentation")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLoadDictionaryFromDirectory(t *testing.T) {
	dir := t.TempDir()
	dicttest.WriteDir(t, dir, dict.Deflate)

	d, err := LoadDictionary(dir)
	require.NoError(t, err)
	assert.Equal(t, "fixture", d.Name())
	assert.Equal(t, []string{"pos", "sub_pos", "base_form", "reading"}, d.Schema())

	tokens := NewSegmenter(Normal, d, nil).Segment("関西国際空港")
	assert.Equal(t, []string{"関西国際空港"}, surfaces(tokens))
}

func TestLoadDictionaryMmap(t *testing.T) {
	dir := t.TempDir()
	dicttest.WriteDir(t, dir, dict.Raw)

	d, err := LoadDictionary(dir, WithMmap())
	require.NoError(t, err)
	defer d.Close()

	tokens := NewSegmenter(Normal, d, nil).Segment("日本語")
	assert.Equal(t, []string{"日本語"}, surfaces(tokens))
}

func TestLoadDictionaryEnvFallback(t *testing.T) {
	dir := t.TempDir()
	dicttest.WriteDir(t, dir, dict.Deflate)
	t.Setenv(EnvDictPath, dir)

	d, err := LoadDictionary("")
	require.NoError(t, err)
	assert.Equal(t, "fixture", d.Name())
}

func TestLoadDictionaryMissing(t *testing.T) {
	t.Setenv(EnvDictPath, "")
	_, err := LoadDictionary("")
	require.Error(t, err)
	var le *Error
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrDictionaryNotFound, le.Kind())
}

func BenchmarkSegment(b *testing.B) {
	seg := NewSegmenter(Normal, fixtureDictionary(b), nil)
	input := "日本語の形態素解析を行うことができます。"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seg.Segment(input)
	}
}
