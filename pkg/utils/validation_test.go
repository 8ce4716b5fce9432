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

package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInputValidator(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.bin")
	if err := os.WriteFile(file, []byte("abc"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"regular file", file, ""},
		{"stdin", StdinPath, ""},
		{"empty path", "", "is required"},
		{"missing", filepath.Join(dir, "missing"), "does not exist"},
		{"directory", dir, "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInputValidator("FILE", tt.path).Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, nil, 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{"none", nil, false},
		{"files and stdin", []string{a, StdinPath, b}, false},
		{"stdin twice", []string{StdinPath, StdinPath}, true},
		{"second missing", []string{a, filepath.Join(dir, "c")}, true},
		{"empty entry", []string{a, ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateInputs("FILE", tt.paths); (err != nil) != tt.wantErr {
				t.Errorf("ValidateInputs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateInputsReportsIndex(t *testing.T) {
	err := ValidateInputs("FILE", []string{StdinPath, filepath.Join(t.TempDir(), "x")})
	if err == nil || !strings.Contains(err.Error(), "FILE[1]") {
		t.Errorf("ValidateInputs() error = %v, want index FILE[1]", err)
	}
}
