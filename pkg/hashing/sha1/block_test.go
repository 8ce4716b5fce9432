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
	"math/bits"
	"testing"
)

func TestExpand(t *testing.T) {
	var m [BlockSize]byte
	for i := range m {
		m[i] = byte(i)
	}

	var w schedule
	expand(&m, &w)

	if w[0] != 0x00010203 {
		t.Errorf("w[0] = %#08x, want 0x00010203", w[0])
	}
	if w[15] != 0x3c3d3e3f {
		t.Errorf("w[15] = %#08x, want 0x3c3d3e3f", w[15])
	}
	for i := 16; i < 80; i++ {
		want := bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		if w[i] != want {
			t.Fatalf("w[%d] = %#08x, want %#08x", i, w[i], want)
		}
	}
}

func TestRoundFunctions(t *testing.T) {
	const b, c, d = 0xF0F0F0F0, 0xCCCCCCCC, 0xAAAAAAAA

	tests := []struct {
		t     int
		wantF uint32
		wantK uint32
	}{
		{0, (b & c) | (^uint32(b) & d), k0},
		{19, (b & c) | (^uint32(b) & d), k0},
		{20, b ^ c ^ d, k1},
		{39, b ^ c ^ d, k1},
		{40, (b & c) | (b & d) | (c & d), k2},
		{59, (b & c) | (b & d) | (c & d), k2},
		{60, b ^ c ^ d, k3},
		{79, b ^ c ^ d, k3},
	}

	for _, tt := range tests {
		if got := f(tt.t, b, c, d); got != tt.wantF {
			t.Errorf("f(%d) = %#08x, want %#08x", tt.t, got, tt.wantF)
		}
		if got := k(tt.t); got != tt.wantK {
			t.Errorf("k(%d) = %#08x, want %#08x", tt.t, got, tt.wantK)
		}
	}
}

func TestBlock_SinglePaddedBlock(t *testing.T) {
	// "abc" padded by hand into one block.
	var m [BlockSize]byte
	copy(m[:], "abc")
	m[3] = 0x80
	m[BlockSize-1] = 24

	h := initialWords
	block(&h, &m)

	want := Words{0xa9993e36, 0x4706816a, 0xba3e2571, 0x7850c26c, 0x9cd0d89d}
	if h != want {
		t.Errorf("block() = %s, want %s", h, want)
	}
}
