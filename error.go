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
	"github.com/lindera/lindera-go/internal/lerr"
)

// Error is the error type returned by dictionary loading and building.
// It carries an [ErrorKind] and wraps its cause viz [errors.Unwrap].
type Error = lerr.Error

// ErrorKind classifies an [Error].
type ErrorKind = lerr.Kind

const (
	// ErrIO is an operating-system level I/O failure.
	ErrIO ErrorKind = lerr.Io
	// ErrDecode is a text-encoding failure.
	ErrDecode ErrorKind = lerr.Decode
	// ErrDeserialize is a binary artifact that does not match its format.
	ErrDeserialize ErrorKind = lerr.Deserialize
	// ErrCompression is a failed compression or decompression.
	ErrCompression ErrorKind = lerr.Compression
	// ErrContent is structurally valid data that is semantically invalid.
	ErrContent ErrorKind = lerr.Content
	// ErrParse is a CSV or numeric parse failure.
	ErrParse ErrorKind = lerr.Parse
	// ErrArgs is an invalid command-line argument.
	ErrArgs ErrorKind = lerr.Args
	// ErrDictionaryNotFound reports that no dictionary could be located.
	ErrDictionaryNotFound ErrorKind = lerr.DictionaryNotFound
	// ErrMode is an unrecognized segmentation-mode name.
	ErrMode ErrorKind = lerr.Mode
)
