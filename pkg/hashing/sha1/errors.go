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

package sha1

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of an engine usage error.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeOversizedChunk indicates a single append carried more than one
	// block of data.
	ErrTypeOversizedChunk

	// ErrTypeEmptyInput indicates finalize was called before any append.
	ErrTypeEmptyInput

	// ErrTypeFinalized indicates the engine was used after it produced a
	// digest or after it was closed.
	ErrTypeFinalized
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeOversizedChunk:
		return "OversizedChunk"
	case ErrTypeEmptyInput:
		return "EmptyInput"
	case ErrTypeFinalized:
		return "Finalized"
	default:
		return "UnknownError"
	}
}

// HashError is returned by Engine operations when the caller breaks the
// append-then-finalize contract. None of these errors are retryable.
//
//	if err := e.Append(p); err != nil {
//	    var herr *sha1.HashError
//	    if errors.As(err, &herr) && herr.Type == sha1.ErrTypeOversizedChunk {
//	        log.Printf("chunk of %d bytes rejected", herr.Size)
//	    }
//	}
type HashError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType

	// Message is a human-readable description of what went wrong.
	Message string

	// Size is the offending chunk length for ErrTypeOversizedChunk, zero otherwise.
	Size int
}

// Error implements the error interface.
func (e *HashError) Error() string {
	if e.Size > 0 {
		return fmt.Sprintf("%s: %s (got %d bytes)", e.Type, e.Message, e.Size)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Is reports whether target is a *HashError of the same type, so callers can
// compare against the sentinel values with errors.Is.
func (e *HashError) Is(target error) bool {
	var t *HashError
	if !errors.As(target, &t) {
		return false
	}
	return t.Type == e.Type
}

// Sentinel errors. Errors returned by the engine match these via errors.Is.
var (
	ErrOversizedChunk = &HashError{Type: ErrTypeOversizedChunk, Message: "can not append more than 64 bytes at once"}
	ErrEmptyInput     = &HashError{Type: ErrTypeEmptyInput, Message: "no data was appended"}
	ErrFinalized      = &HashError{Type: ErrTypeFinalized, Message: "engine already finalized"}
)

func newOversizedChunkError(size int) *HashError {
	return &HashError{
		Type:    ErrTypeOversizedChunk,
		Message: ErrOversizedChunk.Message,
		Size:    size,
	}
}

// IsType checks if err is a HashError of the given type.
func IsType(err error, errType ErrorType) bool {
	var herr *HashError
	if errors.As(err, &herr) {
		return herr.Type == errType
	}
	return false
}
