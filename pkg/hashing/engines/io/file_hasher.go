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

// Package io hashes files and other byte streams with a streaming engine.
package io

import (
	hashengines "github.com/momori256/sha1/pkg/hashing/engines"
)

// FileHasher is a HashEngine whose input is a file rather than bytes
// pushed by the caller.
type FileHasher interface {
	hashengines.HashEngine
}
