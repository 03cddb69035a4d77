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
	"encoding/binary"
	"hash"
)

// Size is the digest size of every Hasher, in bytes.
const Size = 8

// Hasher is a seeded 64-bit accumulator.
//
// Bytes are absorbed with Write and the digest is read with Sum64, which may be
// called any number of times. Config returns a factory seeded with the current
// state, so a fresh Hasher can carry the state forward.
type Hasher interface {
	hash.Hash64

	// Config returns a Config for the same algorithm whose seed is the
	// current state of the Hasher.
	Config() Config
}

// Compile-time interface assertions.
var (
	_ Hasher = (*Identity)(nil)
	_ Hasher = (*U64)(nil)
	_ Hasher = (*Murmur64)(nil)
	_ Hasher = (*XXHash)(nil)
)

// New returns a Hasher for alg seeded with seed.
func New(alg Algorithm, seed uint64) (Hasher, error) {
	switch alg {
	case Identity64:
		return NewIdentity(seed), nil
	case U64Mixer:
		return NewU64(seed), nil
	case Murmur2_64A:
		return NewMurmur64(seed), nil
	case XXHash64:
		return NewXXHash(seed), nil
	default:
		return nil, unknownAlgorithm(alg)
	}
}

// appendSum appends the big-endian encoding of v to b, like the hash/fnv
// family does.
func appendSum(b []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(b, v)
}

// readWord reads the native-endian word at the start of p.
func readWord(p []byte) uint64 {
	return binary.NativeEndian.Uint64(p)
}

// PutUint64 encodes v in native byte order, the layout Identity and U64
// expect from Write.
func PutUint64(p []byte, v uint64) {
	binary.NativeEndian.PutUint64(p, v)
}
