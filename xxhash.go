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

import (
	"github.com/cespare/xxhash/v2"
)

// XXHash is a Hasher backed by xxHash64. It is the general purpose baseline
// the other algorithms are measured against.
//
// Like Murmur64 it chains writes: each Write hashes its argument with the
// current state as the xxHash seed.
type XXHash struct {
	seed  uint64
	state uint64
	d     xxhash.Digest
}

// NewXXHash returns an XXHash hasher seeded with seed.
func NewXXHash(seed uint64) *XXHash {
	return &XXHash{seed: seed, state: seed}
}

// Write folds p into the state. It never fails.
func (h *XXHash) Write(p []byte) (int, error) {
	h.d.ResetWithSeed(h.state)
	_, _ = h.d.Write(p)
	h.state = h.d.Sum64()
	return len(p), nil
}

// WriteString is Write for a string.
func (h *XXHash) WriteString(s string) (int, error) {
	h.d.ResetWithSeed(h.state)
	_, _ = h.d.WriteString(s)
	h.state = h.d.Sum64()
	return len(s), nil
}

func (h *XXHash) Sum64() uint64       { return h.state }
func (h *XXHash) Sum(b []byte) []byte { return appendSum(b, h.state) }
func (h *XXHash) Reset()              { h.state = h.seed }
func (h *XXHash) Size() int           { return Size }
func (h *XXHash) BlockSize() int      { return 32 }

// Config returns an XXHash64 config seeded with the current state.
func (h *XXHash) Config() Config {
	return Config{Algorithm: XXHash64, Seed: h.state}
}
