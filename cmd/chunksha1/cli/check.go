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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/momori256/sha1/cmd/chunksha1/cli/options"
	"github.com/momori256/sha1/pkg/config"
	"github.com/momori256/sha1/pkg/tracing"
	"github.com/momori256/sha1/pkg/utils"
)

// Check returns the check command.
func Check(ro *options.RootOptions) *cobra.Command {
	o := &options.CheckOptions{}

	long := `Check that FILE (or standard input) has the digest given by --expect.

The expected digest may be written as five space-separated hex words, as
printed by "chunksha1 digest", or as 40 hex digits.

Exits with status 1 when the digest differs and 2 when the input cannot be
hashed.`

	cmd := &cobra.Command{
		Use:   "check --expect DIGEST [FILE]",
		Short: "Compare a digest against an expected value.",
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obs := ro.NewObservability(cmd.ErrOrStderr())
			c, err := o.HashingConfig(obs.Logger)
			if err != nil {
				return withExitCode(ExitTrouble, err)
			}
			if _, err := c.SetExpected(o.Expect); err != nil {
				return withExitCode(ExitTrouble, err)
			}

			name := utils.StdinPath
			if len(args) == 1 {
				name = args[0]
			}
			if err := utils.NewInputValidator("FILE", name).Validate(); err != nil {
				return withExitCode(ExitTrouble, err)
			}

			attrs := map[string]interface{}{
				"chunksha1.file":       name,
				"chunksha1.chunk_size": o.ChunkSize,
			}
			return tracing.Run(cmd.Context(), "Check", attrs, func(ctx context.Context) error {
				results, err := hashInputs(ctx, c, []string{name}, cmd.InOrStdin())
				if err != nil {
					return withExitCode(ExitTrouble, err)
				}
				fd := results[0]

				err = c.Check(fd)
				var mismatch *config.MismatchError
				switch {
				case err == nil:
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", fd.Name)
					return err
				case errors.As(err, &mismatch):
					obs.Logger.WithFields(map[string]interface{}{
						"got":  mismatch.Got.String(),
						"want": mismatch.Want.String(),
					}).Debug("digest mismatch for %s", fd.Name)
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", fd.Name)
					return withExitCode(ExitMismatch, err)
				default:
					return withExitCode(ExitTrouble, err)
				}
			})
		},
	}

	o.AddFlags(cmd)
	return cmd
}
