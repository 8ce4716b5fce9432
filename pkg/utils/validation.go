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

// Package utils holds small helpers shared by the command layer.
package utils

import (
	"fmt"
	"os"
)

// StdinPath names standard input in argument lists.
const StdinPath = "-"

// InputValidator checks that one command-line input can be hashed.
type InputValidator struct {
	fieldName string
	path      string
}

// NewInputValidator returns a validator for path, reported as fieldName.
func NewInputValidator(fieldName, path string) *InputValidator {
	return &InputValidator{
		fieldName: fieldName,
		path:      path,
	}
}

// Validate accepts StdinPath and existing regular files or devices; it
// rejects empty paths, missing paths and directories.
func (v *InputValidator) Validate() error {
	if v.path == "" {
		return fmt.Errorf("%s is required", v.fieldName)
	}
	if v.path == StdinPath {
		return nil
	}

	info, err := os.Stat(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q does not exist", v.fieldName, v.path)
		}
		return fmt.Errorf("checking %s %q: %w", v.fieldName, v.path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %q is a directory, expected file", v.fieldName, v.path)
	}
	return nil
}

// ValidateInputs validates every path and reports the first failure.
// StdinPath may appear at most once.
func ValidateInputs(fieldName string, paths []string) error {
	stdin := 0
	for i, path := range paths {
		if path == StdinPath {
			stdin++
			if stdin > 1 {
				return fmt.Errorf("%s: standard input given more than once", fieldName)
			}
		}
		if err := NewInputValidator(fmt.Sprintf("%s[%d]", fieldName, i), path).Validate(); err != nil {
			return err
		}
	}
	return nil
}
