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

// Package keystream generates the key sets hash tables are benchmarked with.
// Every stream except Snowflake is reproducible.
package keystream

import (
	"math/rand"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tidwall/btree"
)

const (
	// RandomRangeSeed seeds RandomRange.
	RandomRangeSeed int64 = 0x04020402

	// RandomOrderSeed seeds RandomOrder.
	RandomOrderSeed int64 = 0x04020102

	// UUIDSeed seeds UUIDs.
	UUIDSeed int64 = 0x04020104
)

// Kind names a key stream.
type Kind string

const (
	KindRandom      Kind = "random"
	KindRange       Kind = "range"
	KindRandomOrder Kind = "random_order"
	KindSnowflake   Kind = "snowflake"

	// KindUUID is a string stream; use GenerateStrings.
	KindUUID Kind = "uuid"
)

var (
	// Kinds lists the uint64 streams in the order benchmarks run them.
	Kinds = []Kind{KindRandom, KindRange, KindRandomOrder, KindSnowflake}

	// StringKinds lists the string streams.
	StringKinds = []Kind{KindUUID}
)

// ErrUnknownKind is returned by Generate and GenerateStrings for a Kind they
// cannot produce.
var ErrUnknownKind = errors.New("unknown key stream")

// IsString reports whether the stream yields string keys.
func (k Kind) IsString() bool {
	return k == KindUUID
}

// Generate returns n keys of the given kind. n is a request; RandomRange may
// return fewer keys after dropping duplicates.
func Generate(kind Kind, n int) ([]uint64, error) {
	switch kind {
	case KindRandom:
		return RandomRange(n), nil
	case KindRange:
		return Range(n), nil
	case KindRandomOrder:
		return RandomOrder(n), nil
	case KindSnowflake:
		return Snowflake(n, 1)
	case KindUUID:
		return nil, errors.Wrapf(ErrUnknownKind, "%q is a string stream", kind)
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}

// GenerateStrings returns n string keys of the given kind.
func GenerateStrings(kind Kind, n int) ([]string, error) {
	if kind != KindUUID {
		return nil, errors.Wrapf(ErrUnknownKind, "%q is not a string stream", kind)
	}
	return UUIDs(n)
}

// RandomRange draws n pseudo-random uint64 values from a source seeded with
// RandomRangeSeed and returns them sorted with duplicates removed.
func RandomRange(n int) []uint64 {
	rng := rand.New(rand.NewSource(RandomRangeSeed))
	set := btree.NewBTreeG(func(a, b uint64) bool { return a < b })
	for i := 0; i < n; i++ {
		set.Set(rng.Uint64())
	}
	return set.Items()
}

// Range returns 0..n-1.
func Range(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = uint64(i)
	}
	return keys
}

// RandomOrder returns 0..n-1 shuffled by one pass of swaps: position i is
// swapped with a uniform index in [0, n-1), using a source seeded with
// RandomOrderSeed. The last position is never picked as a swap target.
func RandomOrder(n int) []uint64 {
	keys := Range(n)
	if n < 2 {
		return keys
	}
	rng := rand.New(rand.NewSource(RandomOrderSeed))
	for i := range keys {
		j := rng.Intn(n - 1)
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}

// Snowflake returns n increasing snowflake IDs from the given node. The IDs
// are clustered in their high bits, which is the kind of key a Fibonacci mixer
// is meant for. They depend on the clock and are not reproducible.
func Snowflake(n int, node int64) ([]uint64, error) {
	gen, err := snowflake.NewNode(node)
	if err != nil {
		return nil, errors.Wrapf(err, "snowflake node %d", node)
	}
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = uint64(gen.Generate().Int64())
	}
	return keys, nil
}

// UUIDs returns n version 4 UUID strings drawn from a source seeded with
// UUIDSeed.
func UUIDs(n int) ([]string, error) {
	rng := rand.New(rand.NewSource(UUIDSeed))
	keys := make([]string, n)
	for i := range keys {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, errors.Wrap(err, "generate uuid")
		}
		keys[i] = id.String()
	}
	return keys, nil
}
