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

// Package lerr defines the error kinds shared by every package in this
// module.
//
// The core follows a strict policy: errors are produced only while loading
// or building dictionaries. Once a dictionary handle exists, segmentation
// is total and never returns an error.
package lerr

import "fmt"

const (
	// Io is an operating-system level I/O failure.
	Io Kind = iota
	// Decode is a text-encoding failure (invalid UTF-8 where it is required).
	Decode
	// Deserialize is a binary artifact that does not match its format.
	Deserialize
	// Compression is a failure to compress or decompress a blob.
	Compression
	// Content is structurally valid data that is semantically invalid, such
	// as a field-count mismatch or an out-of-range context id.
	Content
	// Parse is a CSV or numeric parse failure.
	Parse
	// Args is an invalid command-line argument.
	Args
	// DictionaryNotFound reports that no dictionary could be located: no
	// path was given and no fallback could supply one, or the given
	// dictionary directory does not exist.
	DictionaryNotFound
	// Mode is an unrecognized segmentation-mode name.
	Mode
)

// Kind classifies an [Error].
type Kind int

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Io:
		return "io"
	case Decode:
		return "decode"
	case Deserialize:
		return "deserialize"
	case Compression:
		return "compression"
	case Content:
		return "content"
	case Parse:
		return "parse"
	case Args:
		return "args"
	case DictionaryNotFound:
		return "dictionary not found"
	case Mode:
		return "mode"
	default:
		return fmt.Sprintf("lerr.Kind(%d)", int(k))
	}
}

// Wrap attaches kind k to a cause.
func (k Kind) Wrap(err error) *Error {
	return &Error{kind: k, err: err}
}

// Errorf builds an [Error] of kind k from a format string.
func (k Kind) Errorf(format string, args ...any) *Error {
	return &Error{kind: k, err: fmt.Errorf(format, args...)}
}

// Error is an error with a [Kind] and a wrapped cause.
type Error struct {
	kind Kind
	err  error
}

// Kind returns the error's classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.err
}

// Error implements [error].
func (e *Error) Error() string {
	return fmt.Sprintf("lindera: %v error: %v", e.kind, e.err)
}
