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

import "math/bits"

// Round constants, one per group of 20 rounds (RFC 3174 section 5).
const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// schedule is the 80-word message schedule of one block.
type schedule [80]uint32

// expand fills w from block m: 16 big-endian words followed by 64 derived ones.
func expand(m *[BlockSize]byte, w *schedule) {
	for i := 0; i < 16; i++ {
		j := i * 4
		w[i] = uint32(m[j])<<24 | uint32(m[j+1])<<16 | uint32(m[j+2])<<8 | uint32(m[j+3])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
}

// f is the round function for round t.
func f(t int, b, c, d uint32) uint32 {
	switch {
	case t < 20:
		return (b & c) | (^b & d)
	case t < 40:
		return b ^ c ^ d
	case t < 60:
		return (b & c) | (b & d) | (c & d)
	default:
		return b ^ c ^ d
	}
}

// k is the additive constant for round t.
func k(t int) uint32 {
	switch {
	case t < 20:
		return k0
	case t < 40:
		return k1
	case t < 60:
		return k2
	default:
		return k3
	}
}

// compress runs the 80 rounds over w and folds the result into h.
func compress(h *Words, w *schedule) {
	a := *h
	for t := 0; t < 80; t++ {
		temp := bits.RotateLeft32(a[0], 5) + f(t, a[1], a[2], a[3]) + a[4] + w[t] + k(t)
		a[4] = a[3]
		a[3] = a[2]
		a[2] = bits.RotateLeft32(a[1], 30)
		a[1] = a[0]
		a[0] = temp
	}
	for i := range h {
		h[i] += a[i]
	}
}

// block hashes one 64-byte block into h.
func block(h *Words, m *[BlockSize]byte) {
	var w schedule
	expand(m, &w)
	compress(h, &w)
}
