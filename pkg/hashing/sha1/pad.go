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

// lengthOffset is where the 64-bit message length starts in the final block.
const lengthOffset = BlockSize - 8

// pad returns the final one or two blocks of the message: the tail chunk
// followed by the 0x80 marker, zero fill and the big-endian bit length.
// The tail chunk itself is left untouched.
func pad(tail *chunk, bits uint64) [][BlockSize]byte {
	last := tail.m
	for i := tail.n; i < BlockSize; i++ {
		last[i] = 0
	}

	if tail.n < lengthOffset {
		last[tail.n] = 0x80
		putLength(&last, bits)
		return [][BlockSize]byte{last}
	}

	// No room for both the marker and the length; spill into an extra block.
	var extra [BlockSize]byte
	if tail.n < BlockSize {
		last[tail.n] = 0x80
	} else {
		extra[0] = 0x80
	}
	putLength(&extra, bits)
	return [][BlockSize]byte{last, extra}
}

// putLength writes bits most-significant byte first at offsets 56..63.
func putLength(block *[BlockSize]byte, bits uint64) {
	for i := 0; i < 8; i++ {
		block[lengthOffset+i] = byte(bits >> ((7 - i) * 8))
	}
}
