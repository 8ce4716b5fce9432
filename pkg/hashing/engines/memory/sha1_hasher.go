//
// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memory

import (
	"fmt"

	"github.com/momori256/sha1/pkg/hashing/digests"
	hashengines "github.com/momori256/sha1/pkg/hashing/engines"
	"github.com/momori256/sha1/pkg/hashing/sha1"
)

var _ hashengines.StreamingHashEngine = (*SHA1Engine)(nil)

// AlgorithmName is the registry and digest name of SHA1Engine.
const AlgorithmName = "sha1"

func init() {
	hashengines.MustRegister(AlgorithmName, func(chunkSize int) (hashengines.StreamingHashEngine, error) {
		e, err := NewSHA1Engine(chunkSize, nil)
		if err != nil {
			return nil, err
		}
		return e, nil
	})
}

// SHA1Engine is a StreamingHashEngine over sha1.Engine.
//
// Update splits its input into appends of at most ChunkSize bytes. Compute
// consumes the underlying engine and starts a fresh message, so the same
// SHA1Engine can hash any number of messages one after another.
type SHA1Engine struct {
	e         *sha1.Engine
	chunkSize int
	// pending is true once Update or Reset supplied the first append.
	pending bool
}

// NewSHA1Engine constructs an engine that appends in chunkSize pieces.
// chunkSize must be in [1, sha1.BlockSize].
// If initialData is non-nil it is written into the message immediately;
// a non-nil empty slice starts an empty message.
func NewSHA1Engine(chunkSize int, initialData []byte) (*SHA1Engine, error) {
	if chunkSize < 1 || chunkSize > sha1.BlockSize {
		return nil, fmt.Errorf("chunk size must be in [1, %d], got %d", sha1.BlockSize, chunkSize)
	}

	s := &SHA1Engine{e: sha1.New(), chunkSize: chunkSize}
	if initialData != nil {
		if err := s.Update(initialData); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Update appends data to the current message.
func (s *SHA1Engine) Update(data []byte) error {
	// The first call always reaches the engine, even when empty, so that an
	// explicitly empty message hashes instead of failing with EmptyInput.
	for !s.pending || len(data) > 0 {
		n := min(len(data), s.chunkSize)
		if err := s.e.Append(data[:n]); err != nil {
			return err
		}
		data = data[n:]
		s.pending = true
	}
	return nil
}

// Reset discards the current message and optionally seeds a new one.
func (s *SHA1Engine) Reset(data []byte) error {
	s.e.Reset()
	s.pending = false
	if data != nil {
		return s.Update(data)
	}
	return nil
}

// Compute finalizes the current message and returns its digest. It fails
// with sha1.ErrEmptyInput when nothing was written since the last Reset or
// Compute. The engine is ready for a new message afterwards.
func (s *SHA1Engine) Compute() (digests.Digest, error) {
	w, err := s.e.Finalize()
	s.e.Reset()
	s.pending = false
	if err != nil {
		return digests.Digest{}, err
	}
	return digests.FromWords(s.DigestName(), w), nil
}

// Len returns the number of bytes in the current message.
func (s *SHA1Engine) Len() uint64 {
	return s.e.Len()
}

// DigestName returns the algorithm identifier.
func (s *SHA1Engine) DigestName() string {
	return AlgorithmName
}

// DigestSize returns the byte length of the produced digest.
func (s *SHA1Engine) DigestSize() int {
	return sha1.Size
}
