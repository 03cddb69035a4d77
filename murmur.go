// Copyright 2026 The nutsdb Author. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nutshash

const (
	murmurMul   uint64 = 0xc6a4a7935bd1e995
	murmurShift        = 47
)

// Murmur64A returns the MurmurHash64A digest of key with the given seed.
// Full words are read in native byte order.
func Murmur64A(key []byte, seed uint64) uint64 {
	h := seed ^ (uint64(len(key)) * murmurMul)

	for ; len(key) >= 8; key = key[8:] {
		k := readWord(key)
		k *= murmurMul
		k ^= k >> murmurShift
		k *= murmurMul

		h ^= k
		h *= murmurMul
	}

	switch len(key) {
	case 7:
		h ^= uint64(key[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(key[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(key[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(key[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(key[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(key[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(key[0])
		h *= murmurMul
	}

	h ^= h >> murmurShift
	h *= murmurMul
	h ^= h >> murmurShift
	return h
}

// Murmur64 is a streaming MurmurHash64A Hasher.
//
// Every Write hashes its argument using the current state as the seed and
// keeps the result, so writing "ab" then "cd" is not the same as writing
// "abcd".
type Murmur64 struct {
	seed  uint64
	state uint64
}

// NewMurmur64 returns a Murmur64 hasher seeded with seed.
func NewMurmur64(seed uint64) *Murmur64 {
	return &Murmur64{seed: seed, state: seed}
}

// Write folds p into the state. It never fails.
func (h *Murmur64) Write(p []byte) (int, error) {
	h.state = Murmur64A(p, h.state)
	return len(p), nil
}

// WriteString is Write for a string.
func (h *Murmur64) WriteString(s string) (int, error) {
	return h.Write([]byte(s))
}

// Sum64 returns the current state.
func (h *Murmur64) Sum64() uint64 { return h.state }

// Sum appends the big-endian digest to b.
func (h *Murmur64) Sum(b []byte) []byte { return appendSum(b, h.state) }

// Reset restores the seed the hasher was created with.
func (h *Murmur64) Reset() { h.state = h.seed }

// Size returns the digest size in bytes.
func (h *Murmur64) Size() int { return Size }

// BlockSize returns the word size Murmur64A consumes per round.
func (h *Murmur64) BlockSize() int { return 8 }

// Config returns a Murmur2_64A config seeded with the current state.
func (h *Murmur64) Config() Config {
	return Config{Algorithm: Murmur2_64A, Seed: h.state}
}
