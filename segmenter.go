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
	"os"

	"github.com/lindera/lindera-go/internal/dict"
	"github.com/lindera/lindera-go/internal/lattice"
	"github.com/lindera/lindera-go/internal/lerr"
)

// EnvDictPath is the environment variable consulted when [LoadDictionary]
// is called with an empty path.
const EnvDictPath = "LINDERA_DICT_PATH"

// EnvUserDictPath is the environment variable consulted when
// [Dictionary.LoadUserDictionary] is called with an empty path.
const EnvUserDictPath = "LINDERA_USERDIC_PATH"

// Dictionary is a handle to a loaded system dictionary. It is immutable
// and safe for concurrent use; segmenters hold references, not copies.
type Dictionary struct {
	impl *dict.Dictionary
}

// UserDictionary is a handle to a loaded user dictionary overlay.
type UserDictionary struct {
	impl *dict.UserDictionary
}

// LoadOption is a configuration setting for [LoadDictionary].
type LoadOption struct{ apply func(*loadOptions) }

type loadOptions struct {
	mmap bool
}

// WithMmap memory-maps the large immutable dictionary blobs instead of
// copying them into the heap. Compressed blobs are still decompressed into
// memory; bare blobs are used in place. Call [Dictionary.Close] to release
// the mappings.
func WithMmap() LoadOption {
	return LoadOption{func(o *loadOptions) { o.mmap = true }}
}

// LoadDictionary loads a compiled dictionary from a directory of artifact
// files. An empty path falls back to the LINDERA_DICT_PATH environment
// variable; when that is unset too, the error kind is
// [ErrDictionaryNotFound].
func LoadDictionary(path string, opts ...LoadOption) (*Dictionary, error) {
	var options loadOptions
	for _, opt := range opts {
		opt.apply(&options)
	}
	if path == "" {
		path = os.Getenv(EnvDictPath)
	}
	if path == "" {
		return nil, lerr.DictionaryNotFound.Errorf("no dictionary path given and %s is unset", EnvDictPath)
	}
	var (
		impl *dict.Dictionary
		err  error
	)
	if options.mmap {
		impl, err = dict.LoadDirMmap(path)
	} else {
		impl, err = dict.LoadDir(path)
	}
	if err != nil {
		return nil, err
	}
	return &Dictionary{impl: impl}, nil
}

// DictionaryFromBytes assembles a dictionary from in-memory artifact
// blobs, in the same order as the on-disk files: trie units, values,
// details index, details, matrix, character definitions, unknown
// dictionary, metadata JSON. The blobs must be decompressed and are
// referenced without copying; embedding packages typically guard the call
// behind [sync.OnceValues].
func DictionaryFromBytes(da, vals, wordsIdx, words, matrix, charDef, unk, metadata []byte) (*Dictionary, error) {
	impl, err := dict.FromBytes(da, vals, wordsIdx, words, matrix, charDef, unk, metadata)
	if err != nil {
		return nil, err
	}
	return &Dictionary{impl: impl}, nil
}

// Close releases any memory mappings held by the dictionary. It is a
// no-op for heap-loaded dictionaries.
func (d *Dictionary) Close() error {
	return d.impl.Close()
}

// Name returns the dictionary's metadata name.
func (d *Dictionary) Name() string {
	return d.impl.Metadata.Name
}

// Schema returns the ordered feature-column names of the dictionary.
func (d *Dictionary) Schema() []string {
	return d.impl.Metadata.DictionarySchema.Fields
}

// LoadUserDictionary loads a user dictionary overlay. Files ending in
// .csv are compiled on the fly, validated against this dictionary's
// metadata; anything else is read as a compiled binary. An empty path
// falls back to LINDERA_USERDIC_PATH.
func (d *Dictionary) LoadUserDictionary(path string) (*UserDictionary, error) {
	if path == "" {
		path = os.Getenv(EnvUserDictPath)
	}
	if path == "" {
		return nil, lerr.DictionaryNotFound.Errorf("no user dictionary path given and %s is unset", EnvUserDictPath)
	}
	impl, err := dict.LoadUserDictionaryFile(path, d.impl.Metadata)
	if err != nil {
		return nil, err
	}
	return &UserDictionary{impl: impl}, nil
}

// UserDictionaryFromCSV compiles user CSV content against this
// dictionary's metadata without touching the filesystem.
func (d *Dictionary) UserDictionaryFromCSV(content string) (*UserDictionary, error) {
	impl, err := dict.BuildUserDictionary(content, d.impl.Metadata)
	if err != nil {
		return nil, err
	}
	return &UserDictionary{impl: impl}, nil
}

// Segmenter ties a cost model, a system dictionary, and an optional user
// dictionary into a tokenizer. It holds references to its dictionaries
// and is itself immutable, so a single Segmenter may serve any number of
// goroutines; per-call state lives on the stack of [Segmenter.Segment].
type Segmenter struct {
	mode Mode
	d    *Dictionary
	user *UserDictionary
}

// NewSegmenter builds a segmenter. user may be nil.
func NewSegmenter(mode Mode, d *Dictionary, user *UserDictionary) *Segmenter {
	return &Segmenter{mode: mode, d: d, user: user}
}

// Mode returns the segmenter's cost model.
func (s *Segmenter) Mode() Mode {
	return s.mode
}

// Segment tokenizes text. It is a pure function of (dictionaries, mode,
// text): it never fails, allocates its lattice per call, and returns
// tokens whose byte ranges tile the input exactly. Invalid UTF-8 is
// handled by categorizing the offending bytes as the replacement
// character.
func (s *Segmenter) Segment(text string) []Token {
	var user *dict.UserDictionary
	if s.user != nil {
		user = s.user.impl
	}
	l := lattice.Build(text, s.d.impl, user)
	path, _ := l.Viterbi(s.d.impl.Matrix, s.mode.penaltyCost)

	tokens := make([]Token, len(path))
	for i, n := range path {
		tokens[i] = Token{
			Surface:        text[n.Start:n.End],
			ByteStart:      n.Start,
			ByteEnd:        n.End,
			Position:       i,
			PositionLength: 1,
			WordID:         n.Entry.WordID.ID,
			system:         n.Entry.WordID.System,
			dict:           s.d.impl,
		}
		if user != nil && !n.Entry.WordID.System {
			tokens[i].userDict = user
		}
	}
	return tokens
}
