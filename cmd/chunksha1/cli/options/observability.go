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
	"io"

	"github.com/momori256/sha1/pkg/logging"
)

// Observability bundles the logger handed to commands. Tracing is global
// and set up in main via tracing.InitFromEnv.
type Observability struct {
	Logger logging.Logger
}

// NewObservability builds an Observability from the root flags. Logs go
// to logOut.
func (o *RootOptions) NewObservability(logOut io.Writer) Observability {
	return Observability{
		Logger: o.NewLogger(logOut),
	}
}
