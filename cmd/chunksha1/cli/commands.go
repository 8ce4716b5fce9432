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

// Package cli implements the chunksha1 command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cobracompletefig "github.com/withfig/autocomplete-tools/integrations/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/momori256/sha1/cmd/chunksha1/cli/options"
)

// New returns the root command.
func New() *cobra.Command {
	var (
		ro     = &options.RootOptions{}
		out    *os.File
		cancel context.CancelFunc
	)

	cmd := &cobra.Command{
		Use:               "chunksha1",
		Short:             "SHA-1 digests computed from chunks of at most 64 bytes.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := options.ApplyEnv(cmd); err != nil {
				return err
			}
			if err := ro.Validate(); err != nil {
				return err
			}

			if ro.OutputFile != "" {
				var err error
				out, err = os.Create(ro.OutputFile)
				if err != nil {
					return fmt.Errorf("error creating output file %s: %w", ro.OutputFile, err)
				}
				cmd.SetOut(out)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel = context.WithTimeout(ctx, ro.Timeout)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cancel != nil {
				cancel()
			}
			if out != nil {
				_ = out.Close()
			}
		},
	}
	ro.AddFlags(cmd)

	cmd.AddCommand(Digest(ro))
	cmd.AddCommand(Check(ro))
	cmd.AddCommand(Vectors(ro))
	cmd.AddCommand(version.WithFont("starwars"))
	cmd.AddCommand(cobracompletefig.CreateCompletionSpecCommand())
	return cmd
}
