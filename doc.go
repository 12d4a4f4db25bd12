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

// Package lindera is a morphological analyzer for Japanese, Korean, and
// Mandarin Chinese: it segments a string into tokens annotated with
// dictionary-derived features such as part of speech, reading, and base
// form.
//
// To use this package, load a compiled dictionary with [LoadDictionary]
// (or assemble one from embedded bytes), then build a [Segmenter]:
//
//	d, err := lindera.LoadDictionary("/path/to/ipadic")
//	if err != nil { ... }
//	seg := lindera.NewSegmenter(lindera.Normal, d, nil)
//	tokens := seg.Segment("日本語の形態素解析を行うことができます。")
//
// Dictionaries are immutable after loading and freely shareable: any
// number of segmenters, across any number of goroutines, may query the
// same dictionary concurrently without synchronization. Segmentation
// itself is total — once a dictionary is held, [Segmenter.Segment] never
// fails, and unresolvable word features degrade to the ["UNK"] sentinel.
//
// # Segmentation modes
//
// Two cost models are available. [Normal] selects the dictionary's
// minimum-cost path as-is. [Decompose] adds a length penalty that makes a
// long compound cost more than its parts, biasing the search toward
// shorter tokens; this is the conventional choice for search indexing.
//
// # User dictionaries
//
// A user dictionary overlays the system dictionary with custom entries,
// loaded from a compiled binary or a CSV file via
// [Dictionary.LoadUserDictionary]. Its matches are inserted alongside the
// system dictionary's; the Viterbi search decides between them by cost.
package lindera
