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

// Package config wires the hashing engines into a file-level pipeline.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/momori256/sha1/pkg/hashing/digests"
	hashengines "github.com/momori256/sha1/pkg/hashing/engines"
	hashio "github.com/momori256/sha1/pkg/hashing/engines/io"
	"github.com/momori256/sha1/pkg/hashing/engines/memory"
	"github.com/momori256/sha1/pkg/hashing/sha1"
	"github.com/momori256/sha1/pkg/logging"
	"github.com/momori256/sha1/pkg/tracing"
)

const (
	// DefaultBufferSize is the number of bytes read from a file at a time.
	DefaultBufferSize = 8192
	// DefaultChunkSize is the largest append the engine accepts.
	DefaultChunkSize = sha1.BlockSize
)

// ErrDigestMismatch is wrapped by MismatchError.
var ErrDigestMismatch = errors.New("digest mismatch")

// MismatchError reports a computed digest that differs from the expected one.
type MismatchError struct {
	Name string
	Got  sha1.Words
	Want sha1.Words
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: digest mismatch: got %s, want %s", e.Name, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrDigestMismatch
}

// FileDigest is the digest of one named input.
type FileDigest struct {
	Name   string
	Digest digests.Digest
}

// HashingConfig holds how inputs are read and fed to the engine.
type HashingConfig struct {
	// Registered engine name
	algorithm string

	// Bytes per Append call, 1..sha1.BlockSize
	chunkSize int

	// Bytes per read from the input
	bufferSize int

	// Expected digest; nil when no check is requested
	expected *sha1.Words

	logger logging.Logger
}

// NewHashingConfig returns a config for SHA-1 with full-block appends and
// 8 KiB reads.
func NewHashingConfig() *HashingConfig {
	return &HashingConfig{
		algorithm:  memory.AlgorithmName,
		chunkSize:  DefaultChunkSize,
		bufferSize: DefaultBufferSize,
		logger:     logging.Default(),
	}
}

// SetChunkSize sets the size of each append into the engine.
func (c *HashingConfig) SetChunkSize(size int) *HashingConfig {
	c.chunkSize = size
	return c
}

// SetBufferSize sets the read size.
func (c *HashingConfig) SetBufferSize(size int) *HashingConfig {
	c.bufferSize = size
	return c
}

// SetLogger sets the logger handed to file hashers. nil selects the default.
func (c *HashingConfig) SetLogger(l logging.Logger) *HashingConfig {
	c.logger = logging.EnsureLogger(l)
	return c
}

// SetExpected parses s with sha1.ParseWords and enables Check.
func (c *HashingConfig) SetExpected(s string) (*HashingConfig, error) {
	w, err := sha1.ParseWords(s)
	if err != nil {
		return c, fmt.Errorf("invalid expected digest: %w", err)
	}
	c.expected = &w
	return c, nil
}

// ChunkSize returns the configured append size.
func (c *HashingConfig) ChunkSize() int {
	return c.chunkSize
}

// BufferSize returns the configured read size.
func (c *HashingConfig) BufferSize() int {
	return c.bufferSize
}

// Expected returns the expected digest, if one was set.
func (c *HashingConfig) Expected() (sha1.Words, bool) {
	if c.expected == nil {
		return sha1.Words{}, false
	}
	return *c.expected, true
}

// Validate checks the sizes and the engine name.
func (c *HashingConfig) Validate() error {
	var errs []error
	if c.chunkSize < 1 || c.chunkSize > sha1.BlockSize {
		errs = append(errs, fmt.Errorf("chunk size must be in [1, %d], got %d", sha1.BlockSize, c.chunkSize))
	}
	if c.bufferSize < 1 {
		errs = append(errs, fmt.Errorf("buffer size must be positive, got %d", c.bufferSize))
	}
	if !hashengines.IsSupported(c.algorithm) {
		errs = append(errs, fmt.Errorf("unsupported hash engine %q", c.algorithm))
	}
	return errors.Join(errs...)
}

// Hash digests each path in order. It stops at the first failure.
func (c *HashingConfig) Hash(ctx context.Context, paths []string) ([]FileDigest, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	results := make([]FileDigest, 0, len(paths))
	for _, path := range paths {
		var d digests.Digest
		err := tracing.Run(ctx, "hash-file", map[string]interface{}{
			"path":       path,
			"chunk_size": c.chunkSize,
		}, func(ctx context.Context) error {
			hasher, err := c.createFileHasher(path)
			if err != nil {
				return err
			}
			d, err = hasher.ComputeContext(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}
		results = append(results, FileDigest{Name: path, Digest: d})
	}
	return results, nil
}

// HashReader digests everything read from r and reports it under name.
func (c *HashingConfig) HashReader(ctx context.Context, name string, r io.Reader) (FileDigest, error) {
	if err := c.Validate(); err != nil {
		return FileDigest{}, err
	}

	var d digests.Digest
	err := tracing.Run(ctx, "hash-reader", map[string]interface{}{
		"name":       name,
		"chunk_size": c.chunkSize,
	}, func(ctx context.Context) error {
		hasher, err := c.createFileHasher(name)
		if err != nil {
			return err
		}
		d, err = hasher.HashReader(ctx, r)
		return err
	})
	if err != nil {
		return FileDigest{}, fmt.Errorf("hash %s: %w", name, err)
	}
	return FileDigest{Name: name, Digest: d}, nil
}

// Check compares fd with the expected digest. Without an expected digest it
// always succeeds.
func (c *HashingConfig) Check(fd FileDigest) error {
	if c.expected == nil {
		return nil
	}
	got, err := fd.Digest.Words()
	if err != nil {
		return fmt.Errorf("%s: %w", fd.Name, err)
	}
	if got != *c.expected {
		return &MismatchError{Name: fd.Name, Got: got, Want: *c.expected}
	}
	return nil
}

// RootDigest combines the digests of results, in order, into one digest.
func RootDigest(results []FileDigest) (digests.Digest, error) {
	list := make([]digests.Digest, len(results))
	for i, r := range results {
		list[i] = r.Digest
	}
	return memory.ComputeRootDigest(list)
}

func (c *HashingConfig) createFileHasher(path string) (*hashio.SimpleFileHasher, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	contentHasher, err := hashengines.Create(c.algorithm, c.chunkSize)
	if err != nil {
		return nil, err
	}

	hasher, err := hashio.NewSimpleFileHasher(path, contentHasher, c.bufferSize, "")
	if err != nil {
		return nil, err
	}
	hasher.SetLogger(c.logger)
	return hasher, nil
}
