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
	"encoding/json"

	"github.com/lindera/lindera-go/internal/lerr"
)

// Schema is an ordered list of feature-column names. The core does not
// interpret individual columns; filters and downstream consumers do.
type Schema struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Fields  []string `json:"fields"`
}

// Metadata is the header carried alongside a dictionary's binary
// artifacts (metadata.json). It names the dictionary, records how its
// blobs are encoded, and declares the row widths loaders validate against.
type Metadata struct {
	Name                     string    `json:"name"`
	Encoding                 string    `json:"encoding"`
	CompressAlgorithm        Algorithm `json:"compress_algorithm"`
	SimpleUserdicFieldsNum   int       `json:"simple_userdic_fields_num"`
	SimpleWordCost           int16     `json:"simple_word_cost"`
	SimpleContextID          uint16    `json:"simple_context_id"`
	DetailedUserdicFieldsNum int       `json:"detailed_userdic_fields_num"`
	UnkFieldsNum             int       `json:"unk_fields_num"`
	NormalizeDetails         bool      `json:"normalize_details"`
	DictionarySchema         Schema    `json:"dictionary_schema"`
	UserDictionarySchema     Schema    `json:"user_dictionary_schema"`
}

// DefaultMetadata returns conventional values: UTF-8 encoding, deflate
// compression, 3-column simple user entries at cost -10000 with context
// id 0.
func DefaultMetadata() *Metadata {
	return &Metadata{
		Name:                     "unnamed",
		Encoding:                 "UTF-8",
		CompressAlgorithm:        Deflate,
		SimpleUserdicFieldsNum:   3,
		SimpleWordCost:           -10000,
		SimpleContextID:          0,
		DetailedUserdicFieldsNum: 13,
		UnkFieldsNum:             11,
	}
}

// EncodeMetadata serializes metadata to its on-disk JSON form.
func EncodeMetadata(m *Metadata) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, lerr.Content.Wrap(err)
	}
	return append(data, '\n'), nil
}

// DecodeMetadata parses a metadata.json blob.
func DecodeMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, lerr.Deserialize.Wrap(err)
	}
	return &m, nil
}
