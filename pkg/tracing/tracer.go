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

// Package tracing wraps hashing operations in spans. The default build uses a
// no-op tracer. Building with -tags=otel enables export over OTLP/HTTP,
// configured from the standard OTEL_* environment variables.
package tracing

import (
	"context"
	"sync"
)

// Span is a single timed operation in a trace.
type Span interface {
	SetAttribute(key string, value interface{})
	End()
}

// Tracer starts spans.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}

var (
	mu           sync.RWMutex
	globalTracer Tracer = NoopTracer{}
)

// SetTracer installs t as the global tracer. A nil t restores the no-op tracer.
func SetTracer(t Tracer) {
	mu.Lock()
	defer mu.Unlock()
	if t == nil {
		globalTracer = NoopTracer{}
		return
	}
	globalTracer = t
}

// GetTracer returns the current global tracer (never nil).
func GetTracer() Tracer {
	mu.RLock()
	defer mu.RUnlock()
	return globalTracer
}

// Start starts a span on the global tracer.
func Start(ctx context.Context, name string) (context.Context, Span) {
	return GetTracer().Start(ctx, name)
}

// Enabled reports whether a non-noop tracer is installed.
func Enabled() bool {
	_, noop := GetTracer().(NoopTracer)
	return !noop
}

// Run calls fn inside a span named name carrying attrs. A non-nil error from
// fn is recorded on the span as "error" and "error.message" before End.
// With the no-op tracer fn is called directly.
func Run(ctx context.Context, name string, attrs map[string]interface{}, fn func(context.Context) error) error {
	if !Enabled() {
		return fn(ctx)
	}
	ctx, span := Start(ctx, name)
	defer span.End()
	for k, v := range attrs {
		span.SetAttribute(k, v)
	}
	err := fn(ctx)
	if err != nil {
		span.SetAttribute("error", true)
		span.SetAttribute("error.message", err.Error())
	}
	return err
}
