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
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/lindera/lindera-go/internal/lerr"
)

// Algorithm names a compression algorithm for dictionary blobs.
type Algorithm uint8

const (
	// Deflate is raw DEFLATE with no wrapper.
	Deflate Algorithm = iota
	// Zlib is DEFLATE in a zlib wrapper.
	Zlib
	// Gzip is DEFLATE in a gzip wrapper.
	Gzip
	// Raw stores the payload uncompressed.
	Raw
)

// String implements [fmt.Stringer].
func (a Algorithm) String() string {
	switch a {
	case Deflate:
		return "deflate"
	case Zlib:
		return "zlib"
	case Gzip:
		return "gzip"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseAlgorithm resolves an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "deflate":
		return Deflate, nil
	case "zlib":
		return Zlib, nil
	case "gzip":
		return Gzip, nil
	case "raw":
		return Raw, nil
	default:
		return 0, lerr.Content.Errorf("invalid compression algorithm: %q", s)
	}
}

// MarshalText implements [encoding.TextMarshaler] so the algorithm appears
// by name in metadata.json.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Every compressed blob is framed by a self-describing envelope so loaders
// never have to guess: magic, a one-byte algorithm tag, the compressed
// payload size as little-endian u64, then the payload. Bytes that do not
// begin with the magic are a bare payload.
var envelopeMagic = [4]byte{'L', 'D', 'C', '1'}

const envelopeHeaderLen = 4 + 1 + 8

// Compress wraps data in a framed envelope using the given algorithm.
// Raw frames carry the payload verbatim, still behind the envelope header,
// so the choice is recorded on disk.
func Compress(data []byte, algorithm Algorithm) ([]byte, error) {
	var payload []byte
	switch algorithm {
	case Deflate:
		var buf bytes.Buffer
		w, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		if err := w.Close(); err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		payload = buf.Bytes()
	case Zlib:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		if err := w.Close(); err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		payload = buf.Bytes()
	case Gzip:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		if err := w.Close(); err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		payload = buf.Bytes()
	case Raw:
		payload = data
	default:
		return nil, lerr.Compression.Errorf("invalid compression algorithm: %d", algorithm)
	}

	out := make([]byte, 0, envelopeHeaderLen+len(payload))
	out = append(out, envelopeMagic[:]...)
	out = append(out, byte(algorithm))
	out = binary.LittleEndian.AppendUint64(out, uint64(len(payload)))
	return append(out, payload...), nil
}

// Decompress unwraps a blob. Enveloped data is decompressed per its tag;
// anything without the envelope magic is returned as-is.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < envelopeHeaderLen || !bytes.Equal(data[:4], envelopeMagic[:]) {
		return data, nil
	}
	algorithm := Algorithm(data[4])
	size := binary.LittleEndian.Uint64(data[5:13])
	payload := data[envelopeHeaderLen:]
	if uint64(len(payload)) != size {
		return nil, lerr.Compression.Errorf("envelope declares %d payload bytes, found %d", size, len(payload))
	}

	var r io.Reader
	switch algorithm {
	case Deflate:
		r = flate.NewReader(bytes.NewReader(payload))
	case Zlib:
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		defer zr.Close()
		r = zr
	case Gzip:
		gr, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, lerr.Compression.Wrap(err)
		}
		defer gr.Close()
		r = gr
	case Raw:
		return payload, nil
	default:
		return nil, lerr.Compression.Errorf("envelope names unknown algorithm %d", algorithm)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, lerr.Compression.Wrap(err)
	}
	return out, nil
}

// IsEnveloped reports whether data begins with the compression envelope.
// Memory-mapped loaders use this to decide between pointing at the mapping
// and decompressing into the heap.
func IsEnveloped(data []byte) bool {
	return len(data) >= envelopeHeaderLen && bytes.Equal(data[:4], envelopeMagic[:])
}
