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
)

const (
	// FormatWords prints five space-separated 8-digit hex words.
	FormatWords = "words"
	// FormatHex prints 40 hex digits, as sha1sum does.
	FormatHex = "hex"
)

// DigestOptions holds the flags of the digest command.
type DigestOptions struct {
	HashingFlags
	// Format is FormatWords or FormatHex.
	Format string
	// Root also prints the digest of all file digests combined.
	Root bool
}

var _ FlagAdder = (*DigestOptions)(nil)

func (o *DigestOptions) AddFlags(cmd *cobra.Command) {
	o.HashingFlags.AddFlags(cmd)
	cmd.Flags().StringVar(&o.Format, "format", FormatWords,
		"output format ("+FormatWords+", "+FormatHex+")")
	cmd.Flags().BoolVar(&o.Root, "root", false,
		"also print a root digest over all file digests, in argument order")
}

// Validate rejects unknown formats.
func (o *DigestOptions) Validate() error {
	switch o.Format {
	case FormatWords, FormatHex:
		return nil
	default:
		return fmt.Errorf("invalid --format %q (want %s or %s)", o.Format, FormatWords, FormatHex)
	}
}

// CheckOptions holds the flags of the check command.
type CheckOptions struct {
	HashingFlags
	// Expect is the expected digest in words or hex form.
	Expect string
}

var _ FlagAdder = (*CheckOptions)(nil)

func (o *CheckOptions) AddFlags(cmd *cobra.Command) {
	o.HashingFlags.AddFlags(cmd)
	cmd.Flags().StringVar(&o.Expect, "expect", "",
		"expected digest, as five hex words or 40 hex digits [required]")
	_ = cmd.MarkFlagRequired("expect")
}
