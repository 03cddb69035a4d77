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

// U64 is a Hasher for sequential or low-entropy 64-bit integer keys. The
// digest is Fibonacci applied to the last 8-byte key written.
type U64 struct {
	seed  uint64
	state uint64
}

// NewU64 returns a U64 hasher whose digest is seed until the first Write.
func NewU64(seed uint64) *U64 {
	return &U64{seed: seed, state: seed}
}

// Write stores Fibonacci of p, read as a native-endian uint64, as the new
// state. It panics with an error wrapping ErrInvalidKeyLength if len(p) != 8.
func (h *U64) Write(p []byte) (int, error) {
	mustBeWord(U64Mixer, p)
	h.state = Fibonacci(readWord(p))
	return len(p), nil
}

// WriteUint64 stores Fibonacci(v) as the new state.
func (h *U64) WriteUint64(v uint64) {
	h.state = Fibonacci(v)
}

func (h *U64) Sum64() uint64       { return h.state }
func (h *U64) Sum(b []byte) []byte { return appendSum(b, h.state) }
func (h *U64) Reset()              { h.state = h.seed }
func (h *U64) Size() int           { return Size }
func (h *U64) BlockSize() int      { return Size }

// Config returns a U64 config seeded with the current state.
func (h *U64) Config() Config {
	return Config{Algorithm: U64Mixer, Seed: h.state}
}
