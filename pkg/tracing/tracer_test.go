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

package tracing

import (
	"context"
	"errors"
	"testing"
)

type recordingSpan struct {
	name  string
	attrs map[string]interface{}
	ended bool
}

func (s *recordingSpan) SetAttribute(k string, v interface{}) { s.attrs[k] = v }
func (s *recordingSpan) End()                                 { s.ended = true }

type recordingTracer struct {
	spans []*recordingSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	s := &recordingSpan{name: name, attrs: map[string]interface{}{}}
	r.spans = append(r.spans, s)
	return ctx, s
}

func TestNoopByDefault(t *testing.T) {
	SetTracer(nil)
	if Enabled() {
		t.Fatal("Enabled() = true with no tracer installed")
	}

	called := false
	err := Run(context.Background(), "digest", nil, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Errorf("Run() = %v, called = %v", err, called)
	}
}

func TestRunRecordsSpan(t *testing.T) {
	rec := &recordingTracer{}
	SetTracer(rec)
	t.Cleanup(func() { SetTracer(nil) })

	if !Enabled() {
		t.Fatal("Enabled() = false after SetTracer")
	}

	err := Run(context.Background(), "digest", map[string]interface{}{"files": 2}, func(context.Context) error {
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(rec.spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(rec.spans))
	}
	s := rec.spans[0]
	if s.name != "digest" || !s.ended || s.attrs["files"] != 2 {
		t.Errorf("span = %+v", s)
	}
	if _, ok := s.attrs["error"]; ok {
		t.Error("successful run should not set error attribute")
	}
}

func TestRunRecordsError(t *testing.T) {
	rec := &recordingTracer{}
	SetTracer(rec)
	t.Cleanup(func() { SetTracer(nil) })

	boom := errors.New("boom")
	err := Run(context.Background(), "check", nil, func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	s := rec.spans[0]
	if s.attrs["error"] != true || s.attrs["error.message"] != "boom" || !s.ended {
		t.Errorf("span attrs = %v, ended = %v", s.attrs, s.ended)
	}
}

func TestInitFromEnvAndShutdownNoop(t *testing.T) {
	t.Setenv("OTEL_TRACES_EXPORTER", "none")
	if err := InitFromEnv(); err != nil {
		t.Fatalf("InitFromEnv() error = %v", err)
	}
	if err := Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
