// Copyright 2021 The nutsdb Author. All rights reserved.
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

// Package hashmap provides a sharded hash table whose bucket placement is
// driven by a nutshash.Config.
package hashmap

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/nutsdb/nutshash"
	"github.com/nutsdb/nutshash/internal/utils"
	"github.com/nutsdb/nutshash/metrics"
)

// ErrInvalidOptions is returned by New when Options cannot describe a map.
var ErrInvalidOptions = errors.New("invalid hashmap options")

type (
	Options struct {
		// ShardsCount is the number of independently locked shards.
		ShardsCount uint64

		// BucketsPerShard is the initial bucket count of every shard.
		BucketsPerShard uint64

		// MaxLoadFactor is the entries per bucket above which a shard doubles
		// its buckets.
		MaxLoadFactor float64

		// Hasher mints one Hasher per key operation.
		Hasher nutshash.Config

		// LogResize logs every shard resize through nutshash.GetLogger.
		LogResize bool
	}

	// Map is a hash table from K to V. It is safe for concurrent use; every
	// operation mints its own Hasher from Options.Hasher.
	Map[K comparable, V any] struct {
		opts   Options
		enc    KeyEncoder[K]
		shards []*shard[K, V]
	}
)

// DefaultOptions default options
var DefaultOptions = Options{
	ShardsCount:     16,
	BucketsPerShard: 8,
	MaxLoadFactor:   0.75,
	Hasher:          nutshash.DefaultConfig,
}

func (opts Options) validate() error {
	switch {
	case opts.ShardsCount == 0:
		return pkgerrors.Wrap(ErrInvalidOptions, "ShardsCount must be positive")
	case opts.BucketsPerShard == 0:
		return pkgerrors.Wrap(ErrInvalidOptions, "BucketsPerShard must be positive")
	case !(opts.MaxLoadFactor > 0):
		return pkgerrors.Wrapf(ErrInvalidOptions, "MaxLoadFactor must be positive, got %v", opts.MaxLoadFactor)
	}
	if err := opts.Hasher.Validate(); err != nil {
		return pkgerrors.Wrap(ErrInvalidOptions, err.Error())
	}
	return nil
}

// New returns an empty Map that encodes keys with enc.
func New[K comparable, V any](opts Options, enc KeyEncoder[K]) (*Map[K, V], error) {
	if enc == nil {
		return nil, pkgerrors.Wrap(ErrInvalidOptions, "nil key encoder")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	m := &Map[K, V]{
		opts:   opts,
		enc:    enc,
		shards: make([]*shard[K, V], opts.ShardsCount),
	}
	for i := range m.shards {
		m.shards[i] = newShard[K, V](opts.BucketsPerShard)
	}
	return m, nil
}

// NewUint64 returns a Map keyed by uint64.
func NewUint64[V any](opts Options) (*Map[uint64, V], error) {
	return New[uint64, V](opts, Uint64Key)
}

// NewString returns a Map keyed by string.
func NewString[V any](opts Options) (*Map[string, V], error) {
	return New[string, V](opts, StringKey)
}

// Digest returns the digest the map places key by.
func (m *Map[K, V]) Digest(key K) uint64 {
	var buf [64]byte
	h := m.opts.Hasher.New()
	_, _ = h.Write(m.enc(buf[:0], key))
	return h.Sum64()
}

func (m *Map[K, V]) slot(digest uint64) uint64 {
	return digest / m.opts.ShardsCount
}

// managed runs fn on the shard owning digest with the shard locked.
func (m *Map[K, V]) managed(digest uint64, writable bool, fn func(s *shard[K, V])) {
	s := m.shards[digest%m.opts.ShardsCount]
	s.Lock(writable)
	defer s.Unlock(writable)
	fn(s)
}

// Put sets the value for key and reports whether an existing value was
// replaced.
func (m *Map[K, V]) Put(key K, value V) (replaced bool) {
	digest := m.Digest(key)
	m.managed(digest, true, func(s *shard[K, V]) {
		replaced = s.put(digest, m.slot(digest), key, value)
		if !replaced && float64(s.count) > float64(len(s.buckets))*m.opts.MaxLoadFactor {
			s.grow(m.slot)
			if m.opts.LogResize {
				utils.GetLogger().Printf("hashmap: shard %d grew to %d buckets (%d entries)",
					digest%m.opts.ShardsCount, len(s.buckets), s.count)
			}
		}
	})
	return
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	digest := m.Digest(key)
	m.managed(digest, false, func(s *shard[K, V]) {
		value, ok = s.get(m.slot(digest), key)
	})
	return
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) (deleted bool) {
	digest := m.Digest(key)
	m.managed(digest, true, func(s *shard[K, V]) {
		deleted = s.delete(m.slot(digest), key)
	})
	return
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	n := 0
	for _, s := range m.shards {
		s.Lock(false)
		n += s.count
		s.Unlock(false)
	}
	return n
}

// Clear removes every entry and shrinks shards back to their initial size.
func (m *Map[K, V]) Clear() {
	for _, s := range m.shards {
		s.Lock(true)
		s.clear(m.opts.BucketsPerShard)
		s.Unlock(true)
	}
}

// Range calls f for every entry, shard by shard, until f returns false.
// f runs with the shard read-locked and must not modify the map.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	for _, s := range m.shards {
		if !m.rangeShard(s, f) {
			return
		}
	}
}

func (m *Map[K, V]) rangeShard(s *shard[K, V], f func(key K, value V) bool) bool {
	s.Lock(false)
	defer s.Unlock(false)
	for _, chain := range s.buckets {
		for _, e := range chain {
			if !f(e.key, e.value) {
				return false
			}
		}
	}
	return true
}

// Stats reports how the entries are spread over all buckets of all shards.
func (m *Map[K, V]) Stats() metrics.Distribution {
	var d metrics.Distribution
	for _, s := range m.shards {
		s.Lock(false)
		d.Merge(s.distribution())
		s.Unlock(false)
	}
	return d
}

// Options returns the options the map was created with.
func (m *Map[K, V]) Options() Options {
	return m.opts
}
