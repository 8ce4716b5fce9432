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

package io

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/momori256/sha1/pkg/hashing/digests"
	hashengines "github.com/momori256/sha1/pkg/hashing/engines"
	"github.com/momori256/sha1/pkg/logging"
)

var _ FileHasher = (*SimpleFileHasher)(nil)

// SimpleFileHasher hashes an entire file by streaming it into an inner
// StreamingHashEngine, bufferSize bytes per read.
type SimpleFileHasher struct {
	filePath           string
	contentHasher      hashengines.StreamingHashEngine
	bufferSize         int
	digestNameOverride string
	logger             logging.Logger
}

// NewSimpleFileHasher constructs a SimpleFileHasher.
//
//   - filePath: path to the file to hash
//   - contentHasher: the StreamingHashEngine used to hash file contents
//   - bufferSize: number of bytes to read at a time; must be positive
//   - digestNameOverride: if non-empty, overrides the underlying engine's name
func NewSimpleFileHasher(
	filePath string,
	contentHasher hashengines.StreamingHashEngine,
	bufferSize int,
	digestNameOverride string,
) (*SimpleFileHasher, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("buffer size must be positive, got %d", bufferSize)
	}

	if filePath == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}

	if contentHasher == nil {
		return nil, fmt.Errorf("content hasher must not be nil")
	}

	return &SimpleFileHasher{
		filePath:           filePath,
		contentHasher:      contentHasher,
		bufferSize:         bufferSize,
		digestNameOverride: digestNameOverride,
		logger:             logging.Default(),
	}, nil
}

// SetLogger replaces the logger used for progress messages.
func (h *SimpleFileHasher) SetLogger(l logging.Logger) {
	h.logger = logging.EnsureLogger(l)
}

// SetFile changes the file that will be hashed on the next Compute call.
func (h *SimpleFileHasher) SetFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path must be non-empty")
	}
	h.filePath = filePath
	return nil
}

// DigestName returns either the override or the underlying content hasher's name.
func (h *SimpleFileHasher) DigestName() string {
	if h.digestNameOverride != "" {
		return h.digestNameOverride
	}
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the inner content hasher.
func (h *SimpleFileHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute hashes the entire file and returns a Digest.
func (h *SimpleFileHasher) Compute() (digests.Digest, error) {
	return h.ComputeContext(context.Background())
}

// ComputeContext is Compute with cancellation between reads.
func (h *SimpleFileHasher) ComputeContext(ctx context.Context) (digests.Digest, error) {
	f, err := os.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file %q: %w", h.filePath, err)
	}
	//nolint:errcheck
	defer f.Close()

	d, err := h.HashReader(ctx, f)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("hash file %q: %w", h.filePath, err)
	}
	return d, nil
}

// HashReader streams r into the content hasher until EOF and returns the
// digest. An empty stream yields the digest of the empty message.
func (h *SimpleFileHasher) HashReader(ctx context.Context, r io.Reader) (digests.Digest, error) {
	if err := h.contentHasher.Reset([]byte{}); err != nil {
		return digests.Digest{}, fmt.Errorf("reset hasher: %w", err)
	}

	var total int64
	buf := make([]byte, h.bufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return digests.Digest{}, err
		}

		n, err := r.Read(buf)
		if n > 0 {
			if uerr := h.contentHasher.Update(buf[:n]); uerr != nil {
				return digests.Digest{}, fmt.Errorf("update digest: %w", uerr)
			}
			total += int64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return digests.Digest{}, fmt.Errorf("read: %w", err)
		}
	}

	d, err := h.contentHasher.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest: %w", err)
	}
	h.logger.WithFields(map[string]interface{}{
		"path":  h.filePath,
		"bytes": total,
		"size":  humanize.Bytes(uint64(total)),
	}).Debug("hashed %d bytes", total)

	// Override algorithm name to match this engine's digest name.
	return digests.NewDigest(h.DigestName(), d.Value()), nil
}
