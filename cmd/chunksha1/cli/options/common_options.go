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

package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/momori256/sha1/pkg/config"
	"github.com/momori256/sha1/pkg/logging"
)

// FlagAdder is implemented by every flag group.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// AddAllFlags adds each flag group to cmd.
func AddAllFlags(cmd *cobra.Command, flagGroups ...FlagAdder) {
	for _, fg := range flagGroups {
		fg.AddFlags(cmd)
	}
}

// HashingFlags controls how input is fed to the engine.
type HashingFlags struct {
	// ChunkSize is the number of bytes per append, 1..64.
	ChunkSize int
	// BufferSize is the number of bytes read from the input at a time.
	BufferSize int
}

func (o *HashingFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", config.DefaultChunkSize,
		"bytes per append into the engine (1-64)")
	cmd.Flags().IntVar(&o.BufferSize, "buffer-size", config.DefaultBufferSize,
		"bytes read from the input at a time")
}

// HashingConfig builds a validated config from the flags.
func (o *HashingFlags) HashingConfig(logger logging.Logger) (*config.HashingConfig, error) {
	c := config.NewHashingConfig().
		SetChunkSize(o.ChunkSize).
		SetBufferSize(o.BufferSize).
		SetLogger(logger)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hashing flags: %w", err)
	}
	return c, nil
}
