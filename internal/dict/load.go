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
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/lindera/lindera-go/internal/lerr"
)

// Well-known artifact file names inside a dictionary directory.
const (
	TrieFile     = "dict.da"
	ValsFile     = "dict.vals"
	WordsIdxFile = "dict.wordsidx"
	WordsFile    = "dict.words"
	MatrixFile   = "matrix.mtx"
	CharDefFile  = "char_def.bin"
	UnkFile      = "unk.bin"
	MetadataFile = "metadata.json"
)

// LoadDir loads a dictionary from a directory of well-known file names,
// reading every blob into the heap. Each blob may be wrapped in the
// compression envelope.
func LoadDir(dir string) (*Dictionary, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, lerr.DictionaryNotFound.Errorf("dictionary directory %q: %v", dir, err)
	}
	read := func(name string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, lerr.Io.Wrap(err)
		}
		return Decompress(data)
	}

	blobs := make(map[string][]byte, 8)
	for _, name := range []string{TrieFile, ValsFile, WordsIdxFile, WordsFile, MatrixFile, CharDefFile, UnkFile, MetadataFile} {
		data, err := read(name)
		if err != nil {
			return nil, err
		}
		blobs[name] = data
	}
	return FromBytes(
		blobs[TrieFile], blobs[ValsFile], blobs[WordsIdxFile], blobs[WordsFile],
		blobs[MatrixFile], blobs[CharDefFile], blobs[UnkFile], blobs[MetadataFile],
	)
}

// LoadDirMmap loads a dictionary with the large immutable blobs memory
// mapped instead of copied. Enveloped (compressed) blobs cannot be used in
// place and are decompressed into the heap; bare blobs stay on the
// mapping. The returned dictionary retains its mappings until Close.
func LoadDirMmap(dir string) (*Dictionary, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, lerr.DictionaryNotFound.Errorf("dictionary directory %q: %v", dir, err)
	}

	var mappings []mmap.MMap
	closeAll := func() {
		for _, m := range mappings {
			_ = m.Unmap()
		}
	}
	read := func(name string) ([]byte, error) {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, lerr.Io.Wrap(err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return nil, lerr.Io.Wrap(err)
		}
		if info.Size() == 0 {
			return nil, nil
		}
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, lerr.Io.Wrap(err)
		}
		if IsEnveloped(m) {
			defer m.Unmap()
			data, err := Decompress(m)
			if err != nil {
				return nil, err
			}
			// A raw envelope's payload aliases the mapping released above.
			return bytes.Clone(data), nil
		}
		mappings = append(mappings, m)
		return m, nil
	}

	blobs := make(map[string][]byte, 8)
	for _, name := range []string{TrieFile, ValsFile, WordsIdxFile, WordsFile, MatrixFile, CharDefFile, UnkFile, MetadataFile} {
		data, err := read(name)
		if err != nil {
			closeAll()
			return nil, err
		}
		blobs[name] = data
	}
	d, err := FromBytes(
		blobs[TrieFile], blobs[ValsFile], blobs[WordsIdxFile], blobs[WordsFile],
		blobs[MatrixFile], blobs[CharDefFile], blobs[UnkFile], blobs[MetadataFile],
	)
	if err != nil {
		closeAll()
		return nil, err
	}
	d.mappings = mappings
	return d, nil
}

// FromBytes assembles a dictionary from in-memory artifact blobs, for
// example data embedded in the binary. The blobs must already be
// decompressed. The dictionary references the slices without copying.
func FromBytes(daData, valsData, wordsIdxData, wordsData, matrixData, charDefData, unkData, metadataData []byte) (*Dictionary, error) {
	metadata, err := DecodeMetadata(metadataData)
	if err != nil {
		return nil, err
	}
	prefix, err := NewPrefixDictionary(daData, valsData, true)
	if err != nil {
		return nil, err
	}
	matrix, err := NewConnectionMatrix(matrixData)
	if err != nil {
		return nil, err
	}
	charDefs, err := UnmarshalCharacterDefinitions(charDefData)
	if err != nil {
		return nil, err
	}
	unknown, err := UnmarshalUnknownDictionary(unkData)
	if err != nil {
		return nil, err
	}
	return &Dictionary{
		Prefix:   prefix,
		Matrix:   matrix,
		CharDefs: charDefs,
		Unknown:  unknown,
		Metadata: metadata,
		wordsIdx: wordsIdxData,
		words:    wordsData,
	}, nil
}

// LoadUserDictionaryFile loads a user dictionary from path. Files ending
// in .csv are compiled on the fly against the system dictionary's
// metadata; anything else is read as a compiled binary user dictionary.
func LoadUserDictionaryFile(path string, meta *Metadata) (*UserDictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lerr.Io.Wrap(err)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return BuildUserDictionary(string(data), meta)
	}
	data, err = Decompress(data)
	if err != nil {
		return nil, err
	}
	return UnmarshalUserDictionary(data)
}
