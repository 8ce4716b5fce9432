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

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func newBufferLogger(level LogLevel, format LogFormat) (*DefaultLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLoggerWithOptions(LoggerOptions{
		Level:  level,
		Format: format,
		Output: &buf,
	}), &buf
}

func TestDefaultLoggerWritesToStderr(t *testing.T) {
	l, ok := Default().(*DefaultLogger)
	if !ok {
		t.Fatalf("Default() returned %T, want *DefaultLogger", Default())
	}
	if l.out != os.Stderr {
		t.Error("Default() should write to os.Stderr")
	}
	if l.GetLevel() != LevelInfo {
		t.Errorf("Default().GetLevel() = %v, want %v", l.GetLevel(), LevelInfo)
	}
}

func TestNewLoggerWithOptionsNilOutput(t *testing.T) {
	l := NewLoggerWithOptions(LoggerOptions{Level: LevelDebug})
	if l.out != os.Stderr {
		t.Error("nil Output should fall back to os.Stderr")
	}
}

func TestEnsureLogger(t *testing.T) {
	if EnsureLogger(nil) == nil {
		t.Fatal("EnsureLogger(nil) returned nil")
	}
	l, _ := newBufferLogger(LevelWarn, FormatText)
	if EnsureLogger(l) != Logger(l) {
		t.Error("EnsureLogger() should return a non-nil logger unchanged")
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level LogLevel
		want  []string
		skip  []string
	}{
		{"debug", LevelDebug, []string{"d-msg", "i-msg", "w-msg", "e-msg"}, nil},
		{"info", LevelInfo, []string{"i-msg", "w-msg", "e-msg"}, []string{"d-msg"}},
		{"warn", LevelWarn, []string{"w-msg", "e-msg"}, []string{"d-msg", "i-msg"}},
		{"error", LevelError, []string{"e-msg"}, []string{"d-msg", "i-msg", "w-msg"}},
		{"silent", LevelSilent, nil, []string{"d-msg", "i-msg", "w-msg", "e-msg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferLogger(tt.level, FormatText)
			l.Debug("d-msg")
			l.Info("i-msg")
			l.Warn("w-msg")
			l.Error("e-msg")

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("output %q missing %q", out, s)
				}
			}
			for _, s := range tt.skip {
				if strings.Contains(out, s) {
					t.Errorf("output %q should not contain %q", out, s)
				}
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	l, buf := newBufferLogger(LevelError, FormatText)
	l.Info("hidden")
	l.SetLevel(LevelInfo)
	l.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("message below level was written")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("message at level was not written")
	}
	if !l.IsLevelEnabled(LevelWarn) || l.IsLevelEnabled(LevelDebug) || l.IsLevelEnabled(LevelSilent) {
		t.Error("IsLevelEnabled() disagrees with SetLevel(LevelInfo)")
	}
}

func TestSetOutput(t *testing.T) {
	l, first := newBufferLogger(LevelInfo, FormatText)
	var second bytes.Buffer
	l.SetOutput(&second)
	l.Info("moved")

	if first.Len() != 0 {
		t.Errorf("old output received %q", first.String())
	}
	if !strings.Contains(second.String(), "moved") {
		t.Errorf("new output = %q, want it to contain %q", second.String(), "moved")
	}
}

func TestTextFieldsAreSorted(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo, FormatText)
	l.WithFields(map[string]interface{}{
		"path":  "a.bin",
		"bytes": 5,
		"chunk": 64,
	}).Info("hashed")

	want := "hashed bytes=5 chunk=64 path=a.bin\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo, FormatText)
	child := l.WithField("file", "x").WithField("n", 1)
	child.Info("child")
	l.Info("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "child file=x n=1" {
		t.Errorf("child line = %q", lines[0])
	}
	if lines[1] != "parent" {
		t.Errorf("parent line = %q, want no fields", lines[1])
	}
}

func TestShowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithOptions(LoggerOptions{
		Level:     LevelInfo,
		Format:    FormatText,
		Output:    &buf,
		ShowLevel: true,
	})
	l.Warn("careful %d", 2)

	if buf.String() != "[WARN] careful 2\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	l, buf := newBufferLogger(LevelDebug, FormatJSON)
	l.WithField("bytes", 5).Debug("hashed %d bytes", 5)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["level"] != "debug" {
		t.Errorf("level = %v, want debug", entry["level"])
	}
	if entry["message"] != "hashed 5 bytes" {
		t.Errorf("message = %v", entry["message"])
	}
	if _, err := time.Parse(time.RFC3339, entry["timestamp"].(string)); err != nil {
		t.Errorf("timestamp not RFC 3339: %v", err)
	}
	fields, ok := entry["fields"].(map[string]interface{})
	if !ok || fields["bytes"] != float64(5) {
		t.Errorf("fields = %v", entry["fields"])
	}
}

func TestJSONFormatOmitsEmptyFields(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo, FormatJSON)
	l.Info("plain")
	if strings.Contains(buf.String(), "fields") {
		t.Errorf("output %q should omit fields", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		" error ": LevelError,
		"silent":  LevelSilent,
		"off":     LevelSilent,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := map[string]LogFormat{
		"json":  FormatJSON,
		"JSON":  FormatJSON,
		"text":  FormatText,
		"other": FormatText,
	}
	for in, want := range tests {
		if got := ParseLogFormat(in); got != want {
			t.Errorf("ParseLogFormat(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLevelAndFormatStrings(t *testing.T) {
	if LevelWarn.String() != "warn" || LogLevel(42).String() != "unknown" {
		t.Error("unexpected LogLevel.String()")
	}
	if FormatJSON.String() != "json" || LogFormat(9).String() != "unknown" {
		t.Error("unexpected LogFormat.String()")
	}
}
