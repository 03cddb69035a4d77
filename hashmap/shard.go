package hashmap

import (
	"sync"

	"github.com/nutsdb/nutshash/metrics"
)

type entry[K comparable, V any] struct {
	digest uint64
	key    K
	value  V
}

// shard is one independently locked slice of the map. Entries are chained in
// buckets chosen by the digest; the digest is kept so growing never rehashes.
type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	buckets [][]entry[K, V]
	count   int
}

func newShard[K comparable, V any](buckets uint64) *shard[K, V] {
	return &shard[K, V]{
		buckets: make([][]entry[K, V], buckets),
	}
}

func (s *shard[K, V]) Lock(writable bool) {
	if writable {
		s.mu.Lock()
	} else {
		s.mu.RLock()
	}
}

func (s *shard[K, V]) Unlock(writable bool) {
	if writable {
		s.mu.Unlock()
	} else {
		s.mu.RUnlock()
	}
}

func (s *shard[K, V]) bucket(slot uint64) uint64 {
	return slot % uint64(len(s.buckets))
}

func (s *shard[K, V]) find(slot uint64, key K) (uint64, int) {
	b := s.bucket(slot)
	for i := range s.buckets[b] {
		if s.buckets[b][i].key == key {
			return b, i
		}
	}
	return b, -1
}

func (s *shard[K, V]) get(slot uint64, key K) (V, bool) {
	b, i := s.find(slot, key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return s.buckets[b][i].value, true
}

func (s *shard[K, V]) put(digest, slot uint64, key K, value V) bool {
	b, i := s.find(slot, key)
	if i >= 0 {
		s.buckets[b][i].value = value
		return true
	}
	s.buckets[b] = append(s.buckets[b], entry[K, V]{digest: digest, key: key, value: value})
	s.count++
	return false
}

func (s *shard[K, V]) delete(slot uint64, key K) bool {
	b, i := s.find(slot, key)
	if i < 0 {
		return false
	}
	chain := s.buckets[b]
	last := len(chain) - 1
	chain[i] = chain[last]
	chain[last] = entry[K, V]{}
	s.buckets[b] = chain[:last]
	s.count--
	return true
}

// grow doubles the bucket array and moves every entry to its new bucket.
func (s *shard[K, V]) grow(slotOf func(digest uint64) uint64) {
	old := s.buckets
	s.buckets = make([][]entry[K, V], 2*len(old))
	for _, chain := range old {
		for _, e := range chain {
			b := s.bucket(slotOf(e.digest))
			s.buckets[b] = append(s.buckets[b], e)
		}
	}
}

func (s *shard[K, V]) clear(buckets uint64) {
	s.buckets = make([][]entry[K, V], buckets)
	s.count = 0
}

func (s *shard[K, V]) distribution() metrics.Distribution {
	d := metrics.Distribution{Buckets: uint64(len(s.buckets))}
	for _, chain := range s.buckets {
		d.Add(uint64(len(chain)))
	}
	return d
}
