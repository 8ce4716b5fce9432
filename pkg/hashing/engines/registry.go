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

package hashengines

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// HashEngineFactory creates a streaming engine that feeds its input to the
// underlying hash in appends of at most chunkSize bytes.
type HashEngineFactory func(chunkSize int) (StreamingHashEngine, error)

var (
	registry = make(map[string]HashEngineFactory)
	mu       sync.RWMutex
)

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register registers factory under name. Names are case-insensitive;
// registering the same name twice is an error.
func Register(name string, factory HashEngineFactory) error {
	name = normalize(name)
	if name == "" {
		return fmt.Errorf("engine name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		return fmt.Errorf("hash engine %q already registered", name)
	}
	registry[name] = factory
	return nil
}

// MustRegister is Register for package init; it panics on error.
func MustRegister(name string, factory HashEngineFactory) {
	if err := Register(name, factory); err != nil {
		panic(fmt.Sprintf("register hash engine %q: %v", name, err))
	}
}

// Create builds the engine registered under name with the given chunk size.
func Create(name string, chunkSize int) (StreamingHashEngine, error) {
	mu.RLock()
	factory, exists := registry[normalize(name)]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unsupported hash engine %q (supported: %s)",
			name, strings.Join(SupportedAlgorithms(), ", "))
	}

	engine, err := factory(chunkSize)
	if err != nil {
		return nil, fmt.Errorf("create hash engine %q: %w", name, err)
	}
	return engine, nil
}

// SupportedAlgorithms returns the registered names, sorted.
func SupportedAlgorithms() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSupported reports whether name is registered.
func IsSupported(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, exists := registry[normalize(name)]
	return exists
}

// Unregister removes name from the registry. Used by tests.
func Unregister(name string) error {
	name = normalize(name)

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; !exists {
		return fmt.Errorf("hash engine %q not registered", name)
	}
	delete(registry, name)
	return nil
}
