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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindera/lindera-go/internal/dict"
	"github.com/lindera/lindera-go/internal/dicttest"
)

func checkLoaded(t *testing.T, d *dict.Dictionary) {
	t.Helper()
	assert.Equal(t, "fixture", d.Metadata.Name)

	entries := d.Prefix.FindSurface("日本語")
	require.Len(t, entries, 1)
	assert.Equal(t, int16(3000), entries[0].WordCost)
	assert.True(t, entries[0].WordID.System)

	details := d.WordDetails(entries[0].WordID.ID)
	require.Len(t, details, 4)
	assert.Equal(t, "名詞", details[0])
	assert.Equal(t, "ニホンゴ", details[3])

	kanji, ok := d.CharDefs.CategoryIDByName("KANJI")
	require.True(t, ok)
	assert.Equal(t, kanji, d.CharDefs.PrimaryCategory('語'))
	assert.NotEmpty(t, d.Unknown.Candidates(kanji))
	assert.Equal(t, int32(0), d.Matrix.Cost(1, 1))
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	for _, algorithm := range []dict.Algorithm{dict.Deflate, dict.Zlib, dict.Gzip, dict.Raw} {
		t.Run(algorithm.String(), func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			dicttest.WriteDir(t, dir, algorithm)

			d, err := dict.LoadDir(dir)
			require.NoError(t, err)
			checkLoaded(t, d)
		})
	}
}

func TestLoadDirMmap(t *testing.T) {
	t.Parallel()

	for _, algorithm := range []dict.Algorithm{dict.Raw, dict.Deflate} {
		t.Run(algorithm.String(), func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			dicttest.WriteDir(t, dir, algorithm)

			d, err := dict.LoadDirMmap(dir)
			require.NoError(t, err)
			checkLoaded(t, d)
			assert.NoError(t, d.Close())
		})
	}
}

func TestLoadDirMissing(t *testing.T) {
	t.Parallel()

	_, err := dict.LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dictionary not found")
}

func TestLoadDirTruncatedArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dicttest.WriteDir(t, dir, dict.Raw)
	require.NoError(t, os.WriteFile(filepath.Join(dir, dict.MatrixFile), []byte{1}, 0o644))

	_, err := dict.LoadDir(dir)
	assert.Error(t, err)
}

func TestWordDetailsDegradesToUnk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dicttest.WriteDir(t, dir, dict.Raw)
	d, err := dict.LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"UNK"}, d.WordDetails(dict.UnknownWordID))
	assert.Equal(t, []string{"UNK"}, d.WordDetails(1 << 20))
}
