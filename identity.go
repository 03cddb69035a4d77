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

// Identity is a Hasher for keys that are already well distributed 64-bit
// integers. The digest is the last 8-byte key written, unchanged.
type Identity struct {
	seed  uint64
	state uint64
}

// NewIdentity returns an Identity hasher whose digest is seed until the first
// Write.
func NewIdentity(seed uint64) *Identity {
	return &Identity{seed: seed, state: seed}
}

// Write stores p, read as a native-endian uint64, as the new state.
// It panics with an error wrapping ErrInvalidKeyLength if len(p) != 8.
func (h *Identity) Write(p []byte) (int, error) {
	mustBeWord(Identity64, p)
	h.state = readWord(p)
	return len(p), nil
}

// WriteUint64 stores v as the new state.
func (h *Identity) WriteUint64(v uint64) {
	h.state = v
}

// Sum64 returns the current state.
func (h *Identity) Sum64() uint64 { return h.state }

// Sum appends the big-endian digest to b.
func (h *Identity) Sum(b []byte) []byte { return appendSum(b, h.state) }

// Reset restores the seed the hasher was created with.
func (h *Identity) Reset() { h.state = h.seed }

// Size returns the digest size in bytes.
func (h *Identity) Size() int { return Size }

// BlockSize returns the write block size.
func (h *Identity) BlockSize() int { return Size }

// Config returns an Identity config seeded with the current state.
func (h *Identity) Config() Config {
	return Config{Algorithm: Identity64, Seed: h.state}
}

func mustBeWord(alg Algorithm, p []byte) {
	if len(p) != Size {
		panic(invalidKeyLength(alg, len(p)))
	}
}
