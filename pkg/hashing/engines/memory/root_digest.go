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
	"errors"
	"fmt"

	"github.com/momori256/sha1/pkg/hashing/digests"
	"github.com/momori256/sha1/pkg/hashing/sha1"
)

// ComputeRootDigest computes one SHA-1 digest over a sequence of digests by
// feeding each digest's raw bytes, in order, into a single message.
//
//	root, err := memory.ComputeRootDigest([]digests.Digest{d1, d2, d3})
func ComputeRootDigest(digestList []digests.Digest) (digests.Digest, error) {
	if len(digestList) == 0 {
		return digests.Digest{}, errors.New("no digests to combine")
	}

	hasher, err := NewSHA1Engine(sha1.BlockSize, nil)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("failed to create SHA1 hasher: %w", err)
	}

	for _, d := range digestList {
		if err := hasher.Update(d.Value()); err != nil {
			return digests.Digest{}, fmt.Errorf("failed to add %s: %w", d, err)
		}
	}

	rootDigest, err := hasher.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("failed to compute root digest: %w", err)
	}
	return rootDigest, nil
}
