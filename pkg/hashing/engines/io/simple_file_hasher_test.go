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

package io

import (
	"bytes"
	"context"
	stdsha1 "crypto/sha1"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/momori256/sha1/pkg/hashing/engines/memory"
	"github.com/momori256/sha1/pkg/logging"
)

func newContentHasher(t *testing.T) *memory.SHA1Engine {
	t.Helper()
	h, err := memory.NewSHA1Engine(64, nil)
	if err != nil {
		t.Fatalf("NewSHA1Engine() error = %v", err)
	}
	return h
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestSimpleFileHasher_Compute(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		bufferSize int
	}{
		{"empty file", 0, 8},
		{"smaller than buffer", 10, 4096},
		{"odd buffer", 1000, 7},
		{"block multiple", 640, 64},
		{"large", 100_000, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bytes.Repeat([]byte("0123456789abcdef"), tt.size/16+1)[:tt.size]
			path := writeFile(t, data)

			h, err := NewSimpleFileHasher(path, newContentHasher(t), tt.bufferSize, "")
			if err != nil {
				t.Fatalf("NewSimpleFileHasher() error = %v", err)
			}

			d, err := h.Compute()
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			want := stdsha1.Sum(data)
			if d.Hex() != hex.EncodeToString(want[:]) {
				t.Errorf("Compute() = %s, want %x", d.Hex(), want)
			}
			if d.Algorithm() != "sha1" {
				t.Errorf("Algorithm() = %q, want sha1", d.Algorithm())
			}
		})
	}
}

func TestSimpleFileHasher_RecomputeIsStable(t *testing.T) {
	path := writeFile(t, []byte("abcde"))
	h, err := NewSimpleFileHasher(path, newContentHasher(t), 2, "")
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	first, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	second, err := h.Compute()
	if err != nil {
		t.Fatalf("second Compute() error = %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("Compute() not stable: %s vs %s", first, second)
	}
}

func TestSimpleFileHasher_NameOverride(t *testing.T) {
	path := writeFile(t, []byte("abc"))
	h, err := NewSimpleFileHasher(path, newContentHasher(t), 16, "sha1-file")
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if d.Algorithm() != "sha1-file" || h.DigestName() != "sha1-file" {
		t.Errorf("Algorithm() = %q, DigestName() = %q, want sha1-file", d.Algorithm(), h.DigestName())
	}
	if h.DigestSize() != 20 {
		t.Errorf("DigestSize() = %d, want 20", h.DigestSize())
	}
}

func TestSimpleFileHasher_Errors(t *testing.T) {
	content := newContentHasher(t)

	if _, err := NewSimpleFileHasher("", content, 16, ""); err == nil {
		t.Error("empty path should fail")
	}
	if _, err := NewSimpleFileHasher("x", content, 0, ""); err == nil {
		t.Error("zero buffer size should fail")
	}
	if _, err := NewSimpleFileHasher("x", nil, 16, ""); err == nil {
		t.Error("nil content hasher should fail")
	}

	h, err := NewSimpleFileHasher(filepath.Join(t.TempDir(), "missing"), content, 16, "")
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}
	if _, err := h.Compute(); err == nil {
		t.Error("Compute() on a missing file should fail")
	}
	if err := h.SetFile(""); err == nil {
		t.Error("SetFile(\"\") should fail")
	}
}

func TestSimpleFileHasher_HashReaderCanceled(t *testing.T) {
	h, err := NewSimpleFileHasher("stdin", newContentHasher(t), 16, "")
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := h.HashReader(ctx, strings.NewReader("abc")); !errors.Is(err, context.Canceled) {
		t.Errorf("HashReader() error = %v, want %v", err, context.Canceled)
	}
}

func TestSimpleFileHasher_LogsDebug(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewSimpleFileHasher("stdin", newContentHasher(t), 16, "")
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}
	h.SetLogger(logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:  logging.LevelDebug,
		Format: logging.FormatText,
		Output: &buf,
	}))

	if _, err := h.HashReader(context.Background(), strings.NewReader("abcde")); err != nil {
		t.Fatalf("HashReader() error = %v", err)
	}
	if !strings.Contains(buf.String(), "hashed 5 bytes") || !strings.Contains(buf.String(), "size=5 B") {
		t.Errorf("expected debug log, got %q", buf.String())
	}
}
