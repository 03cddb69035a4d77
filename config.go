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

// Config records the algorithm and seed used to mint Hashers.
//
// A Config is an immutable value and is safe to share between goroutines;
// the Hashers it mints are not.
type Config struct {
	Algorithm Algorithm
	Seed      uint64
}

// DefaultConfig hashes with MurmurHash64A and seed 0.
var DefaultConfig = Config{
	Algorithm: Murmur2_64A,
	Seed:      0,
}

// Validate returns an error if the algorithm is unknown.
func (c Config) Validate() error {
	if !c.Algorithm.Valid() {
		return unknownAlgorithm(c.Algorithm)
	}
	return nil
}

// New returns a fresh Hasher seeded with c.Seed.
// It panics if c.Algorithm is unknown; call Validate first on untrusted input.
func (c Config) New() Hasher {
	h, err := New(c.Algorithm, c.Seed)
	if err != nil {
		panic(err)
	}
	return h
}

// WithSeed returns a copy of c with the seed replaced.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = seed
	return c
}

// Sum64 hashes p with a fresh Hasher and returns the digest.
func (c Config) Sum64(p []byte) uint64 {
	switch c.Algorithm {
	case Murmur2_64A:
		return Murmur64A(p, c.Seed)
	case U64Mixer:
		mustBeWord(U64Mixer, p)
		return Fibonacci(readWord(p))
	case Identity64:
		mustBeWord(Identity64, p)
		return readWord(p)
	}
	h := c.New()
	_, _ = h.Write(p)
	return h.Sum64()
}

// SumUint64 hashes the native-endian encoding of v.
func (c Config) SumUint64(v uint64) uint64 {
	switch c.Algorithm {
	case Identity64:
		return v
	case U64Mixer:
		return Fibonacci(v)
	}
	var buf [Size]byte
	PutUint64(buf[:], v)
	return c.Sum64(buf[:])
}
