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
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/markkurossi/tabulate"
	"github.com/spf13/cobra"

	"github.com/momori256/sha1/cmd/chunksha1/cli/options"
	hashengines "github.com/momori256/sha1/pkg/hashing/engines"
	"github.com/momori256/sha1/pkg/hashing/engines/memory"
	"github.com/momori256/sha1/pkg/hashing/sha1"
	"github.com/momori256/sha1/pkg/tracing"
)

type knownAnswer struct {
	name  string
	input []byte
	want  string
}

var knownAnswers = []knownAnswer{
	{"empty", []byte{}, "da39a3ee 5e6b4b0d 3255bfef 95601890 afd80709"},
	{"abc", []byte("abc"), "a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d"},
	{"abcde", []byte("abcde"), "03de6c57 0bfe24bf c328ccd7 ca46b76e adaf4334"},
	{
		"two-block",
		[]byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
		"84983e44 1c3bd26e baae4aa1 f95129e5 e54670f1",
	},
	{
		"quick brown fox",
		[]byte("The quick brown fox jumps over the lazy dog"),
		"2fd4e1c6 7a2d28fc ed849ee1 bb76e739 1b93eb12",
	},
	{
		"3x64 hex digits",
		bytes.Repeat([]byte("0123456789abcdef"), 12),
		"bcade9db 60c287f0 249db02e fb35cfef 5b07e54f",
	},
	{
		"million a",
		bytes.Repeat([]byte("a"), 1_000_000),
		"34aa973c d4c4daa4 f61eeb2b dbad2731 6534016f",
	},
}

// vectorChunkSizes are the append sizes every vector is run with.
var vectorChunkSizes = []int{1, 13, sha1.BlockSize}

// Vectors returns the vectors command.
func Vectors(ro *options.RootOptions) *cobra.Command {
	long := `Run the built-in known-answer vectors and print the results as a table.

Every vector is hashed with appends of 1, 13 and 64 bytes; all three must
produce the expected digest.`

	return &cobra.Command{
		Use:   "vectors",
		Short: "Run known-answer self tests.",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := ro.NewObservability(cmd.ErrOrStderr()).Logger
			return tracing.Run(cmd.Context(), "Vectors", nil, func(ctx context.Context) error {
				tab := tabulate.New(tabulate.UnicodeLight)
				tab.Header("Vector").SetAlign(tabulate.ML)
				tab.Header("Size").SetAlign(tabulate.MR)
				tab.Header("Chunks").SetAlign(tabulate.MR)
				tab.Header("Digest").SetAlign(tabulate.ML)
				tab.Header("Result").SetAlign(tabulate.ML)

				failed := 0
				for _, ka := range knownAnswers {
					if err := ctx.Err(); err != nil {
						return err
					}
					got, ok, err := runVector(ka)
					if err != nil {
						return withExitCode(ExitTrouble, fmt.Errorf("vector %s: %w", ka.name, err))
					}
					result := "ok"
					if !ok {
						failed++
						result = "FAIL"
						logger.WithField("want", ka.want).Error("vector %s: got %s", ka.name, got)
					}

					row := tab.Row()
					row.Column(ka.name)
					row.Column(humanize.Bytes(uint64(len(ka.input))))
					row.Column(chunkList())
					row.Column(got)
					col := row.Column(result)
					if !ok {
						col.SetFormat(tabulate.FmtBold)
					}
				}
				tab.Print(cmd.OutOrStdout())

				if failed > 0 {
					return exitf(ExitMismatch, "%d of %d vectors failed", failed, len(knownAnswers))
				}
				return nil
			})
		},
	}
}

// runVector hashes ka once per chunk size. It returns the first digest that
// disagrees with the expected one, or the expected digest when all agree.
func runVector(ka knownAnswer) (string, bool, error) {
	for _, n := range vectorChunkSizes {
		engine, err := hashengines.Create(memory.AlgorithmName, n)
		if err != nil {
			return "", false, err
		}
		if err := engine.Update(ka.input); err != nil {
			return "", false, err
		}
		d, err := engine.Compute()
		if err != nil {
			return "", false, err
		}
		words, err := d.Words()
		if err != nil {
			return "", false, err
		}
		if got := words.String(); got != ka.want {
			return got, false, nil
		}
	}
	return ka.want, true, nil
}

func chunkList() string {
	parts := make([]string, len(vectorChunkSizes))
	for i, n := range vectorChunkSizes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
