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
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/momori256/sha1/pkg/logging"
)

// EnvPrefix is the prefix of environment variables that set flag defaults,
// e.g. CHUNKSHA1_LOG_LEVEL for --log-level.
const EnvPrefix = "CHUNKSHA1"

// DefaultTimeout bounds a whole command run.
const DefaultTimeout = 3 * time.Minute

// ValidLogLevels lists the accepted --log-level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the accepted --log-format values.
var ValidLogFormats = []string{"text", "json"}

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	// OutputFile redirects command output (digests, tables) to a file.
	OutputFile string
	// LogLevel sets the minimum log level.
	LogLevel string
	// LogFormat sets the log output format.
	LogFormat string
	// Timeout bounds the command run.
	Timeout time.Duration
}

var _ FlagAdder = (*RootOptions)(nil)

// AddFlags adds the root-level persistent flags to cmd.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write command output to a file instead of stdout")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"minimum log level ("+strings.Join(ValidLogLevels, ", ")+")")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"log output format ("+strings.Join(ValidLogFormats, ", ")+")")

	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", DefaultTimeout,
		"timeout for commands")
}

// Validate rejects unknown log levels and formats.
func (o *RootOptions) Validate() error {
	if !contains(ValidLogLevels, strings.ToLower(o.LogLevel)) {
		return fmt.Errorf("invalid --log-level %q (want one of %s)", o.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
	if !contains(ValidLogFormats, strings.ToLower(o.LogFormat)) {
		return fmt.Errorf("invalid --log-format %q (want one of %s)", o.LogFormat, strings.Join(ValidLogFormats, ", "))
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("--timeout must be positive, got %s", o.Timeout)
	}
	return nil
}

// GetLogLevel returns the parsed log level.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// GetLogFormat returns the parsed log format.
func (o *RootOptions) GetLogFormat() logging.LogFormat {
	return logging.ParseLogFormat(o.LogFormat)
}

// NewLogger creates a logger writing to w, or stderr when w is nil.
func (o *RootOptions) NewLogger(w io.Writer) logging.Logger {
	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:  o.GetLogLevel(),
		Format: o.GetLogFormat(),
		Output: w,
	})
}

// EnvName returns the environment variable consulted for flag name.
func EnvName(name string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// ApplyEnv sets every flag of cmd that was not given on the command line
// from its CHUNKSHA1_* environment variable, if present.
func ApplyEnv(cmd *cobra.Command) error {
	var errs []string
	flags := cmd.Flags()
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		v, ok := os.LookupEnv(EnvName(f.Name))
		if !ok {
			return
		}
		if err := flags.Set(f.Name, v); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", EnvName(f.Name), err))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(errs, "; "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
