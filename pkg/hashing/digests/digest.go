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

// Package digests provides the value type handed out by hash engines.
//
// A Digest pairs the engine name with the raw digest bytes. Fields are
// unexported and the byte slice is copied on the way in and out, so a
// Digest can be shared freely once created.
package digests

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/momori256/sha1/pkg/hashing/sha1"
)

// Digest is a computed digest tagged with the name of the engine that
// produced it.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest. value is copied.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// FromWords creates a Digest from SHA-1 digest words, using their canonical
// big-endian byte form.
func FromWords(algorithm string, w sha1.Words) Digest {
	b := w.Bytes()
	return NewDigest(algorithm, b[:])
}

// Algorithm returns the name of the engine that computed this digest.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal encoding of the digest bytes.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Words returns the digest as SHA-1 words. It fails unless the digest is
// exactly sha1.Size bytes long.
func (d Digest) Words() (sha1.Words, error) {
	var w sha1.Words
	if len(d.value) != sha1.Size {
		return w, fmt.Errorf("digest is %d bytes, want %d", len(d.value), sha1.Size)
	}
	for i := range w {
		j := i * 4
		w[i] = uint32(d.value[j])<<24 | uint32(d.value[j+1])<<16 | uint32(d.value[j+2])<<8 | uint32(d.value[j+3])
	}
	return w, nil
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns "algorithm:hexvalue" (e.g. "sha1:a9993e36...").
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether both digests have the same algorithm and value.
func (d Digest) Equal(other Digest) bool {
	return d.algorithm == other.algorithm && bytes.Equal(d.value, other.value)
}
