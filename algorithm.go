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
	"fmt"
	"strings"
)

// Algorithm names one of the hash functions in this package.
type Algorithm uint8

const (
	// Identity64 returns 8-byte keys unchanged.
	Identity64 Algorithm = iota + 1

	// U64Mixer multiplies 8-byte keys by the 64-bit Fibonacci constant.
	U64Mixer

	// Murmur2_64A is MurmurHash2, 64-bit version A.
	Murmur2_64A //nolint:revive,stylecheck

	// XXHash64 is xxHash64.
	XXHash64
)

// Algorithms lists every supported algorithm in declaration order.
var Algorithms = []Algorithm{Identity64, U64Mixer, Murmur2_64A, XXHash64}

var algorithmNames = map[Algorithm]string{
	Identity64:  "identity",
	U64Mixer:    "u64",
	Murmur2_64A: "murmur2_64a",
	XXHash64:    "xxhash",
}

// String returns the name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// FixedWidth reports whether the algorithm only accepts 8-byte writes.
func (a Algorithm) FixedWidth() bool {
	return a == Identity64 || a == U64Mixer
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// ParseAlgorithm returns the Algorithm with the given name. Matching is case
// insensitive and "murmur" is accepted as a short form of "murmur2_64a".
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "murmur" {
		return Murmur2_64A, nil
	}
	for alg, n := range algorithmNames {
		if n == name {
			return alg, nil
		}
	}
	return 0, unknownAlgorithmName(name)
}

// UnmarshalText implements encoding.TextUnmarshaler, which lets flag and env
// decoders fill in an Algorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, unknownAlgorithm(a)
	}
	return []byte(a.String()), nil
}
