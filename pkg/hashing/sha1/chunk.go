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

// BlockSize is the SHA-1 block size in bytes and the largest chunk a single
// Append accepts.
const BlockSize = 64

// chunk is one block worth of buffered input. Bytes past n are always zero.
type chunk struct {
	m [BlockSize]byte
	n int
}

// chunkBuffer holds the accumulated message as a sequence of chunks in append
// order. Only the last chunk may be partially occupied.
type chunkBuffer struct {
	chunks []*chunk
	length uint64
}

// append copies p onto the end of the buffer. A partial tail chunk is topped
// up first, the remainder (if any) goes into a fresh zero-filled chunk. The
// first call always creates the head chunk, even for an empty p.
func (b *chunkBuffer) append(p []byte) error {
	if len(p) > BlockSize {
		return newOversizedChunkError(len(p))
	}

	b.length += uint64(len(p))
	if b.empty() {
		b.chunks = append(b.chunks, &chunk{})
	}

	t := b.tail()
	n := copy(t.m[t.n:], p)
	t.n += n
	p = p[n:]

	if len(p) > 0 {
		c := &chunk{}
		c.n = copy(c.m[:], p)
		b.chunks = append(b.chunks, c)
	}
	return nil
}

// tail returns the last chunk, or nil when nothing was appended yet.
func (b *chunkBuffer) tail() *chunk {
	if len(b.chunks) == 0 {
		return nil
	}
	return b.chunks[len(b.chunks)-1]
}

func (b *chunkBuffer) empty() bool {
	return len(b.chunks) == 0
}

// bitLength returns the total number of appended bits.
func (b *chunkBuffer) bitLength() uint64 {
	return b.length << 3
}

// release drops every chunk.
func (b *chunkBuffer) release() {
	for i := range b.chunks {
		b.chunks[i] = nil
	}
	b.chunks = nil
	b.length = 0
}
