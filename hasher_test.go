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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutsdb/nutshash/internal/testutils"
)

func word(v uint64) []byte {
	buf := make([]byte, Size)
	PutUint64(buf, v)
	return buf
}

// recoverError runs fn and returns the error it panicked with, if any.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestNew(t *testing.T) {
	for _, alg := range Algorithms {
		h, err := New(alg, 99)
		require.NoError(t, err)
		assert.Equal(t, uint64(99), h.Sum64(), alg.String())
		assert.Equal(t, Config{Algorithm: alg, Seed: 99}, h.Config(), alg.String())
		assert.Equal(t, Size, h.Size())
	}

	_, err := New(Algorithm(0), 0)
	require.True(t, IsUnknownAlgorithm(err))

	_, err = New(Algorithm(200), 0)
	require.True(t, IsUnknownAlgorithm(err))
}

func TestFreshHasherReturnsSeed(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("zero writes leave the seed as the digest", prop.ForAll(
		func(seed uint64) bool {
			for _, alg := range Algorithms {
				if (Config{Algorithm: alg, Seed: seed}).New().Sum64() != seed {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestIdentity(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		properties := gopter.NewProperties(gopter.DefaultTestParameters())

		properties.Property("identity returns the written word", prop.ForAll(
			func(v uint64) bool {
				h := NewIdentity(0)
				_, _ = h.Write(word(v))
				return h.Sum64() == v
			},
			gen.UInt64(),
		))

		properties.TestingRun(t)
	})

	t.Run("last write wins", func(t *testing.T) {
		h := NewIdentity(5)
		_, _ = h.Write(word(1))
		_, _ = h.Write(word(2))
		require.Equal(t, uint64(2), h.Sum64())

		h.WriteUint64(3)
		require.Equal(t, uint64(3), h.Sum64())

		h.Reset()
		require.Equal(t, uint64(5), h.Sum64())
	})

	t.Run("config carries the state", func(t *testing.T) {
		h := NewIdentity(0)
		_, _ = h.Write(word(1234))
		next := h.Config().New()
		require.Equal(t, uint64(1234), next.Sum64())
	})

	t.Run("native byte order", func(t *testing.T) {
		testutils.SkipIfBigEndian(t)
		h := NewIdentity(0)
		_, _ = h.Write([]byte{1, 0, 0, 0, 0, 0, 0, 0})
		require.Equal(t, uint64(1), h.Sum64())
	})
}

func TestU64(t *testing.T) {
	h := NewU64(0)
	n, err := h.Write(word(1))
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, uint64(0x9e3779b97f4a7c55), h.Sum64())

	_, _ = h.Write(word(42))
	require.Equal(t, uint64(0xf519f86ee23865f2), h.Sum64())

	h.WriteUint64(0)
	require.Equal(t, uint64(0), h.Sum64())

	require.Equal(t, Config{Algorithm: U64Mixer, Seed: 0}, h.Config())
}

func TestFixedWidthPrecondition(t *testing.T) {
	testCases := []struct {
		name string
		h    Hasher
	}{
		{"identity", NewIdentity(77)},
		{"u64", NewU64(77)},
	}

	for _, tc := range testCases {
		for _, n := range []int{0, 4, 7, 9, 16} {
			err := recoverError(func() {
				_, _ = tc.h.Write(make([]byte, n))
			})
			require.Error(t, err, "%s with %d bytes", tc.name, n)
			require.True(t, IsInvalidKeyLength(err), "%s with %d bytes", tc.name, n)
			require.Equal(t, uint64(77), tc.h.Sum64(), "state must be untouched")
		}
	}

	require.PanicsWithError(t,
		"identity is only valid for 8-byte keys, got 4 bytes: invalid key length",
		func() { _, _ = NewIdentity(0).Write(make([]byte, 4)) },
	)
	require.PanicsWithError(t,
		"u64 is only valid for 8-byte keys, got 16 bytes: invalid key length",
		func() { _, _ = NewU64(0).Write(make([]byte, 16)) },
	)
}

func TestXXHash(t *testing.T) {
	h := NewXXHash(0)
	_, _ = h.Write([]byte("Hello world"))
	first := h.Sum64()
	require.NotZero(t, first)

	again := NewXXHash(0)
	_, _ = again.WriteString("Hello world")
	require.Equal(t, first, again.Sum64())

	// Writes are chained through the seed like Murmur64.
	_, _ = h.Write([]byte("!"))
	chained := NewXXHash(first)
	_, _ = chained.Write([]byte("!"))
	require.Equal(t, chained.Sum64(), h.Sum64())

	h.Reset()
	require.Equal(t, uint64(0), h.Sum64())

	require.NotEqual(t, Config{Algorithm: XXHash64, Seed: 1}.Sum64([]byte("k")),
		Config{Algorithm: XXHash64, Seed: 2}.Sum64([]byte("k")))
}

func TestDeterminism(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("same bytes and seed give the same digest", prop.ForAll(
		func(data []byte, seed uint64) bool {
			for _, alg := range []Algorithm{Murmur2_64A, XXHash64} {
				cfg := Config{Algorithm: alg, Seed: seed}
				if cfg.Sum64(data) != cfg.Sum64(data) {
					return false
				}
				h := cfg.New()
				_, _ = h.Write(data)
				if h.Sum64() != cfg.Sum64(data) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
		gen.UInt64(),
	))

	properties.Property("fixed-width config shortcut matches the hasher", prop.ForAll(
		func(v uint64) bool {
			for _, alg := range Algorithms {
				cfg := Config{Algorithm: alg}
				h := cfg.New()
				_, _ = h.Write(word(v))
				if cfg.Sum64(word(v)) != h.Sum64() || cfg.SumUint64(v) != h.Sum64() {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestConfig(t *testing.T) {
	require.NoError(t, DefaultConfig.Validate())
	require.Equal(t, Murmur2_64A, DefaultConfig.Algorithm)

	bad := Config{Algorithm: 0}
	require.True(t, IsUnknownAlgorithm(bad.Validate()))
	require.Panics(t, func() { bad.New() })

	cfg := DefaultConfig.WithSeed(10)
	require.Equal(t, uint64(10), cfg.Seed)
	require.Equal(t, uint64(0), DefaultConfig.Seed)

	// Re-deriving a config keeps state across hashers.
	h := cfg.New()
	_, _ = h.Write([]byte("a"))
	next := h.Config().New()
	_, _ = next.Write([]byte("b"))

	whole := cfg.New()
	_, _ = whole.Write([]byte("a"))
	_, _ = whole.Write([]byte("b"))
	require.Equal(t, whole.Sum64(), next.Sum64())
}

func TestAlgorithm(t *testing.T) {
	for _, alg := range Algorithms {
		parsed, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, parsed)

		text, err := alg.MarshalText()
		require.NoError(t, err)

		var decoded Algorithm
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, alg, decoded)
	}

	alg, err := ParseAlgorithm("  Murmur ")
	require.NoError(t, err)
	require.Equal(t, Murmur2_64A, alg)

	_, err = ParseAlgorithm("sha256")
	require.True(t, IsUnknownAlgorithm(err))

	require.Equal(t, "Algorithm(9)", Algorithm(9).String())
	require.True(t, Identity64.FixedWidth())
	require.True(t, U64Mixer.FixedWidth())
	require.False(t, Murmur2_64A.FixedWidth())
	require.False(t, XXHash64.FixedWidth())
}
