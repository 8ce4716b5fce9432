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

// Package hashengines defines the engine interfaces used by the file and
// command-line layers.
//
// The SHA-1 engine in pkg/hashing/sha1 only accepts block-sized appends and
// hashes exactly one message. The interfaces here describe the friendlier
// shape callers want: feed arbitrary byte slices, compute, start over.
package hashengines

import (
	"github.com/momori256/sha1/pkg/hashing/digests"
)

// HashEngine computes a digest.
type HashEngine interface {
	// Compute finalizes the current message and returns its digest.
	Compute() (digests.Digest, error)

	// DigestName returns the name recorded in digests produced by Compute.
	// It must include every parameter that changes the output.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this engine.
	DigestSize() int
}

// Streaming feeds a hash engine incrementally.
type Streaming interface {
	// Update appends data of any length to the current message.
	Update(data []byte) error

	// Reset discards the current message and starts a new one seeded
	// with data, which may be nil.
	Reset(data []byte) error
}

// StreamingHashEngine combines HashEngine and Streaming.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
