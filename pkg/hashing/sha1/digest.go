// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sha1

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Size is the length of a SHA-1 digest in bytes.
const Size = 20

// Words is the five-word SHA-1 hash state. After Finalize it holds the
// digest words h0..h4.
type Words [5]uint32

// initialWords seeds every new message.
var initialWords = Words{
	0x67452301,
	0xEFCDAB89,
	0x98BADCFE,
	0x10325476,
	0xC3D2E1F0,
}

// Bytes returns the canonical 160-bit digest, the big-endian concatenation of
// the five words.
func (w Words) Bytes() [Size]byte {
	var out [Size]byte
	for i, v := range w {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Hex returns the digest as 40 lowercase hex digits.
func (w Words) Hex() string {
	b := w.Bytes()
	return hex.EncodeToString(b[:])
}

// String renders the words as eight lowercase hex digits each, separated by
// single spaces (e.g. "03de6c57 0bfe24bf c328ccd7 ca46b76e adaf4334").
func (w Words) String() string {
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = fmt.Sprintf("%08x", v)
	}
	return strings.Join(parts, " ")
}

// ParseWords parses either the space-separated word form produced by String
// or the 40-digit form produced by Hex.
func ParseWords(s string) (Words, error) {
	var w Words

	fields := strings.Fields(s)
	if len(fields) == 1 && len(fields[0]) == Size*2 {
		raw, err := hex.DecodeString(fields[0])
		if err != nil {
			return w, fmt.Errorf("invalid digest %q: %w", s, err)
		}
		for i := range w {
			w[i] = binary.BigEndian.Uint32(raw[i*4:])
		}
		return w, nil
	}

	if len(fields) != len(w) {
		return w, fmt.Errorf("invalid digest %q: want %d words, got %d", s, len(w), len(fields))
	}
	for i, field := range fields {
		if len(field) != 8 {
			return w, fmt.Errorf("invalid digest word %q: want 8 hex digits", field)
		}
		v, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return w, fmt.Errorf("invalid digest word %q: %w", field, err)
		}
		w[i] = uint32(v)
	}
	return w, nil
}
