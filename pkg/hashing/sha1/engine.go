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

// Package sha1 computes SHA-1 digests (RFC 3174) of messages supplied
// incrementally in chunks of at most one block.
//
// An Engine buffers every appended chunk and does all of the hashing in
// Finalize: the buffered blocks are padded, expanded into message schedules
// and compressed in order. An Engine hashes exactly one message; Finalize
// consumes it.
//
// SHA-1 is cryptographically broken. No side-channel guarantees are made.
package sha1

// Engine accumulates one message and produces its SHA-1 digest.
//
// The zero value is not usable; create engines with New. An Engine must be
// used by a single owner: zero or more Append calls followed by one Finalize.
// Independent engines share no state.
type Engine struct {
	buf       chunkBuffer
	h         Words
	finalized bool
}

// New creates an engine with an empty buffer and the initial hash state.
func New() *Engine {
	return &Engine{h: initialWords}
}

// Append buffers p. It fails with ErrOversizedChunk when len(p) exceeds
// BlockSize; callers split larger inputs themselves. No hashing happens until
// Finalize.
func (e *Engine) Append(p []byte) error {
	if e.finalized {
		return ErrFinalized
	}
	return e.buf.append(p)
}

// Finalize pads the buffered message, hashes every block in append order and
// returns the digest words. It fails with ErrEmptyInput when Append was never
// called. The engine is consumed: later calls return ErrFinalized.
func (e *Engine) Finalize() (Words, error) {
	if e.finalized {
		return Words{}, ErrFinalized
	}
	if e.buf.empty() {
		return Words{}, ErrEmptyInput
	}

	chunks := e.buf.chunks
	for _, c := range chunks[:len(chunks)-1] {
		block(&e.h, &c.m)
	}
	for _, m := range pad(e.buf.tail(), e.buf.bitLength()) {
		block(&e.h, &m)
	}

	digest := e.h
	e.finalized = true
	e.buf.release()
	return digest, nil
}

// Len returns the number of bytes appended so far.
func (e *Engine) Len() uint64 {
	return e.buf.length
}

// Reset discards the buffered message and prepares the engine for a new one.
func (e *Engine) Reset() {
	e.buf.release()
	e.h = initialWords
	e.finalized = false
}

// Close releases the buffered chunks. The engine can not be used afterwards
// unless Reset is called.
func (e *Engine) Close() error {
	e.buf.release()
	e.finalized = true
	return nil
}

// Sum returns the digest of data, feeding it to a fresh engine one block at
// a time. An empty data slice yields the digest of the empty message.
func Sum(data []byte) (Words, error) {
	e := New()
	defer e.Close()

	for {
		n := min(len(data), BlockSize)
		if err := e.Append(data[:n]); err != nil {
			return Words{}, err
		}
		data = data[n:]
		if len(data) == 0 {
			break
		}
	}
	return e.Finalize()
}
