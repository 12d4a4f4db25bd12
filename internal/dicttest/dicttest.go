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

// Package dicttest builds a small fixture dictionary used across the test
// suites: a mixed Japanese/Korean/Chinese vocabulary with hand-set costs,
// IPA-style character categories, and unknown-word entries per category.
// The fixture goes through the same codecs as a real dictionary, so
// loading it exercises every artifact format.
package dicttest

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/lindera/lindera-go/internal/dart"
	"github.com/lindera/lindera-go/internal/dict"
)

// Fixture category ids, in table order.
const (
	CatDefault dict.CategoryID = iota
	CatAlpha
	CatHiragana
	CatKatakana
	CatKanji
	CatHangul
)

// SimpleUserCSV is a user dictionary in the simple 3-column shape.
const SimpleUserCSV = "# custom nouns\n" +
	"東京スカイツリー,カスタム名詞,トウキョウスカイツリー\n" +
	"東武スカイツリーライン,カスタム名詞,トウブスカイツリーライン\n" +
	"\n" +
	"とうきょうスカイツリー駅,カスタム名詞,トウキョウスカイツリーエキ\n"

// DetailedUserCSV is a user dictionary in the detailed 8-column shape
// (surface, left_id, right_id, word_cost, then the 4 user schema fields).
const DetailedUserCSV = "東京スカイツリー,1,1,-9000,カスタム名詞,*,東京スカイツリー,トウキョウスカイツリー\n"

type row struct {
	surface string
	cost    int16
	details []string
}

func noun(surface string, cost int16, reading string) row {
	return row{surface: surface, cost: cost, details: []string{"名詞", "一般", surface, reading}}
}

func particle(surface string, cost int16) row {
	return row{surface: surface, cost: cost, details: []string{"助詞", "*", surface, surface}}
}

func symbol(surface string, cost int16) row {
	return row{surface: surface, cost: cost, details: []string{"記号", "*", surface, surface}}
}

// vocab is the fixture vocabulary. Rows sharing a surface are homographs
// and keep this order in the compiled values blob.
var vocab = []row{
	// Japanese.
	noun("日本語", 3000, "ニホンゴ"),
	particle("の", 500),
	noun("形態素", 3000, "ケイタイソ"),
	noun("解析", 2500, "カイセキ"),
	particle("を", 500),
	{surface: "行う", cost: 2500, details: []string{"動詞", "自立", "行う", "オコナウ"}},
	noun("こと", 1500, "コト"),
	particle("が", 500),
	{surface: "が", cost: 900, details: []string{"接続詞", "*", "が", "ガ"}},
	{surface: "でき", cost: 2000, details: []string{"動詞", "自立", "できる", "デキ"}},
	{surface: "ます", cost: 1000, details: []string{"助動詞", "*", "ます", "マス"}},
	symbol("。", 500),
	symbol("、", 500),
	symbol(".", 500),
	noun("関西国際空港", 4000, "カンサイコクサイクウコウ"),
	noun("関西", 2000, "カンサイ"),
	noun("国際", 2000, "コクサイ"),
	noun("空港", 2000, "クウコウ"),
	noun("東京", 2000, "トウキョウ"),
	noun("最寄り", 2500, "モヨリ"),
	noun("駅", 1500, "エキ"),
	particle("は", 500),
	{surface: "です", cost: 1000, details: []string{"助動詞", "*", "です", "デス"}},
	// Korean.
	noun("한국어", 2000, "한국어"),
	particle("의", 800),
	noun("형태해석", 3000, "형태해석"),
	noun("형태", 2000, "형태"),
	noun("해석", 2000, "해석"),
	particle("을", 800),
	noun("실시", 2000, "실시"),
	noun("할", 1200, "할"),
	noun("수", 1000, "수"),
	{surface: "있습니다", cost: 2500, details: []string{"동사", "*", "있다", "있습니다"}},
	// Chinese.
	noun("可以", 1500, "kěyǐ"),
	noun("进行", 1500, "jìnxíng"),
	noun("中文", 1500, "zhōngwén"),
	noun("形态学", 2500, "xíngtàixué"),
	noun("分析", 1500, "fēnxī"),
}

// Artifacts is the full set of compiled dictionary blobs, uncompressed.
type Artifacts struct {
	Da       []byte
	Vals     []byte
	WordsIdx []byte
	Words    []byte
	Matrix   []byte
	CharDef  []byte
	Unk      []byte
	Metadata []byte
}

// Build compiles the fixture vocabulary into artifact blobs.
func Build() (*Artifacts, error) {
	rows := make([]row, len(vocab))
	copy(rows, vocab)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].surface < rows[j].surface })

	var (
		keys     []string
		values   []uint32
		vals     []byte
		wordsIdx []byte
		words    []byte
	)
	for i := 0; i < len(rows); {
		j := i
		for j < len(rows) && rows[j].surface == rows[i].surface {
			j++
		}
		value, err := dict.PackValue(i, j-i)
		if err != nil {
			return nil, err
		}
		keys = append(keys, rows[i].surface)
		values = append(values, value)
		i = j
	}
	for id, r := range rows {
		vals = dict.AppendEntry(vals, dict.WordEntry{
			WordID:   dict.WordID{ID: uint32(id), System: true},
			WordCost: r.cost,
			LeftID:   1,
			RightID:  1,
		})
		wordsIdx, words = dict.AppendWordDetails(wordsIdx, words, r.details)
	}
	daData, err := dart.Build(keys, values)
	if err != nil {
		return nil, err
	}

	matrix, err := dict.EncodeConnectionMatrix(4, 4, make([]int16, 16))
	if err != nil {
		return nil, err
	}

	charDefs, err := buildCharDefs()
	if err != nil {
		return nil, err
	}

	unk, err := buildUnknown()
	if err != nil {
		return nil, err
	}

	metadata, err := dict.EncodeMetadata(fixtureMetadata())
	if err != nil {
		return nil, err
	}

	return &Artifacts{
		Da:       daData,
		Vals:     vals,
		WordsIdx: wordsIdx,
		Words:    words,
		Matrix:   matrix,
		CharDef:  charDefs.Marshal(),
		Unk:      unk.Marshal(),
		Metadata: metadata,
	}, nil
}

func buildCharDefs() (*dict.CharacterDefinitions, error) {
	categories := []dict.CategoryData{
		CatDefault:  {Invoke: false, Group: true, Length: 0},
		CatAlpha:    {Invoke: true, Group: true, Length: 0},
		CatHiragana: {Invoke: false, Group: true, Length: 2},
		CatKatakana: {Invoke: true, Group: true, Length: 2},
		CatKanji:    {Invoke: false, Group: false, Length: 2},
		CatHangul:   {Invoke: false, Group: true, Length: 2},
	}
	names := []string{"DEFAULT", "ALPHA", "HIRAGANA", "KATAKANA", "KANJI", "HANGUL"}
	boundaries := []uint32{
		0x0, 0x41, 0x5B, 0x61, 0x7B,
		0x3041, 0x30A0, 0x3100,
		0x4E00, 0xA000,
		0xAC00, 0xD7B0,
	}
	mapping := [][]dict.CategoryID{
		{CatDefault},
		{CatAlpha}, {CatDefault}, {CatAlpha}, {CatDefault},
		{CatHiragana}, {CatKatakana}, {CatDefault},
		{CatKanji}, {CatDefault},
		{CatHangul}, {CatDefault},
	}
	return dict.NewCharacterDefinitions(categories, names, boundaries, mapping)
}

func buildUnknown() (*dict.UnknownDictionary, error) {
	costs := []int16{
		CatDefault:  3500,
		CatAlpha:    2500,
		CatHiragana: 3000,
		CatKatakana: 3000,
		CatKanji:    4000,
		CatHangul:   3500,
	}
	refs := make([][]uint32, len(costs))
	entries := make([]dict.WordEntry, len(costs))
	for i, c := range costs {
		refs[i] = []uint32{uint32(i)}
		entries[i] = dict.WordEntry{
			WordID:   dict.WordID{ID: dict.UnknownWordID, System: true},
			WordCost: c,
			LeftID:   1,
			RightID:  1,
		}
	}
	return dict.NewUnknownDictionary(refs, entries)
}

func fixtureMetadata() *dict.Metadata {
	m := dict.DefaultMetadata()
	m.Name = "fixture"
	m.DetailedUserdicFieldsNum = 8
	m.UnkFieldsNum = 4
	m.DictionarySchema = dict.Schema{
		Name:    "fixture",
		Version: "1.0.0",
		Fields:  []string{"pos", "sub_pos", "base_form", "reading"},
	}
	m.UserDictionarySchema = dict.Schema{
		Name:    "fixture-user",
		Version: "1.0.0",
		Fields:  []string{"pos", "sub_pos", "base_form", "reading"},
	}
	return m
}

// Load builds the fixture and assembles it through the in-memory loader.
func Load(tb testing.TB) *dict.Dictionary {
	tb.Helper()
	a, err := Build()
	if err != nil {
		tb.Fatalf("building fixture dictionary: %v", err)
	}
	d, err := dict.FromBytes(a.Da, a.Vals, a.WordsIdx, a.Words, a.Matrix, a.CharDef, a.Unk, a.Metadata)
	if err != nil {
		tb.Fatalf("assembling fixture dictionary: %v", err)
	}
	return d
}

// WriteDir writes the fixture artifacts into dir using the well-known file
// names, wrapping the binary blobs in a compression envelope with the
// given algorithm; with [dict.Raw] the blobs are written bare, without an
// envelope. metadata.json is always written bare.
func WriteDir(tb testing.TB, dir string, algorithm dict.Algorithm) {
	tb.Helper()
	a, err := Build()
	if err != nil {
		tb.Fatalf("building fixture dictionary: %v", err)
	}
	files := map[string][]byte{
		dict.TrieFile:     a.Da,
		dict.ValsFile:     a.Vals,
		dict.WordsIdxFile: a.WordsIdx,
		dict.WordsFile:    a.Words,
		dict.MatrixFile:   a.Matrix,
		dict.CharDefFile:  a.CharDef,
		dict.UnkFile:      a.Unk,
	}
	for name, data := range files {
		blob, err := dict.Compress(data, algorithm)
		if err != nil {
			tb.Fatalf("compressing %s: %v", name, err)
		}
		if algorithm == dict.Raw {
			// Raw fixture directories exercise the bare-payload path.
			blob = data
		}
		if err := os.WriteFile(filepath.Join(dir, name), blob, 0o644); err != nil {
			tb.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, dict.MetadataFile), a.Metadata, 0o644); err != nil {
		tb.Fatalf("writing metadata: %v", err)
	}
}
