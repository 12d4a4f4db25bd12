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

	"github.com/lindera/lindera-go/internal/lerr"
)

// OutputFormat names a token rendering.
type OutputFormat uint8

const (
	// MeCab renders one token per line as "surface\tdetails,…", terminated
	// by an EOS line.
	MeCab OutputFormat = iota
	// Wakati renders surfaces separated by single spaces.
	Wakati
	// JSON renders the token list as indented JSON with resolved details.
	JSON
)

// ParseOutputFormat resolves a format name: "mecab", "wakati", or "json".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "mecab":
		return MeCab, nil
	case "wakati":
		return Wakati, nil
	case "json":
		return JSON, nil
	default:
		return 0, lerr.Args.Errorf("invalid output format: %q", s)
	}
}

// String implements [fmt.Stringer].
func (f OutputFormat) String() string {
	switch f {
	case MeCab:
		return "mecab"
	case Wakati:
		return "wakati"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// Format renders tokens in the given output format.
func Format(tokens []Token, format OutputFormat) (string, error) {
	switch format {
	case MeCab:
		return FormatMecab(tokens), nil
	case Wakati:
		return FormatWakati(tokens), nil
	case JSON:
		return FormatJSON(tokens)
	default:
		return "", lerr.Args.Errorf("invalid output format: %d", format)
	}
}

// FormatMecab renders tokens in the MeCab style, one per line, with an
// EOS terminator.
func FormatMecab(tokens []Token) string {
	var sb strings.Builder
	for i := range tokens {
		sb.WriteString(tokens[i].Surface)
		sb.WriteByte('\t')
		sb.WriteString(strings.Join(tokens[i].Details(), ","))
		sb.WriteByte('\n')
	}
	sb.WriteString("EOS")
	return sb.String()
}

// FormatWakati renders surfaces separated by spaces.
func FormatWakati(tokens []Token) string {
	surfaces := make([]string, len(tokens))
	for i := range tokens {
		surfaces[i] = tokens[i].Surface
	}
	return strings.Join(surfaces, " ")
}

// FormatJSON renders the token list as indented JSON.
func FormatJSON(tokens []Token) (string, error) {
	if tokens == nil {
		tokens = []Token{}
	}
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return "", lerr.Content.Wrap(err)
	}
	return string(data), nil
}
