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

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/momori256/sha1/cmd/chunksha1/cli/options"
	"github.com/momori256/sha1/pkg/config"
	"github.com/momori256/sha1/pkg/hashing/digests"
	"github.com/momori256/sha1/pkg/tracing"
	"github.com/momori256/sha1/pkg/utils"
)

// Digest returns the digest command.
func Digest(ro *options.RootOptions) *cobra.Command {
	o := &options.DigestOptions{}

	long := `Compute the SHA-1 digest of each FILE.

With no FILE, or when FILE is -, standard input is read. Input is fed to the
engine in appends of --chunk-size bytes (at most 64); the digest does not
depend on the chunk size.

The default output is the five 32-bit words of the digest followed by the
file name. --format hex prints the 40-digit form used by sha1sum.`

	cmd := &cobra.Command{
		Use:   "digest [OPTIONS] [FILE...]",
		Short: "Compute SHA-1 digests of files or standard input.",
		Long:  long,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			obs := ro.NewObservability(cmd.ErrOrStderr())
			c, err := o.HashingConfig(obs.Logger)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{utils.StdinPath}
			}
			if err := utils.ValidateInputs("FILE", args); err != nil {
				return err
			}

			attrs := map[string]interface{}{
				"chunksha1.files":       len(args),
				"chunksha1.chunk_size":  o.ChunkSize,
				"chunksha1.buffer_size": o.BufferSize,
				"chunksha1.format":      o.Format,
			}
			return tracing.Run(cmd.Context(), "Digest", attrs, func(ctx context.Context) error {
				results, err := hashInputs(ctx, c, args, cmd.InOrStdin())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for _, r := range results {
					if err := printDigest(w, o.Format, r.Digest, r.Name); err != nil {
						return err
					}
				}
				if !o.Root {
					return nil
				}
				root, err := config.RootDigest(results)
				if err != nil {
					return err
				}
				return printDigest(w, o.Format, root, "(root)")
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}

// hashInputs digests each name in order, reading stdin for "-".
func hashInputs(ctx context.Context, c *config.HashingConfig, names []string, stdin io.Reader) ([]config.FileDigest, error) {
	results := make([]config.FileDigest, 0, len(names))
	for _, name := range names {
		if name == utils.StdinPath {
			fd, err := c.HashReader(ctx, utils.StdinPath, stdin)
			if err != nil {
				return nil, err
			}
			results = append(results, fd)
			continue
		}
		fds, err := c.Hash(ctx, []string{name})
		if err != nil {
			return nil, err
		}
		results = append(results, fds...)
	}
	return results, nil
}

func printDigest(w io.Writer, format string, d digests.Digest, name string) error {
	if format == options.FormatHex {
		_, err := fmt.Fprintf(w, "%s  %s\n", d.Hex(), name)
		return err
	}
	words, err := d.Words()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s\n", words, name)
	return err
}
