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

package hashmap

import "github.com/nutsdb/nutshash/metrics"

// Set is a hash set backed by a Map with empty values.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet returns an empty Set that encodes members with enc.
func NewSet[K comparable](opts Options, enc KeyEncoder[K]) (*Set[K], error) {
	m, err := New[K, struct{}](opts, enc)
	if err != nil {
		return nil, err
	}
	return &Set[K]{m: m}, nil
}

// SAdd adds the specified members and returns how many were not present yet.
func (s *Set[K]) SAdd(items ...K) (added int) {
	for _, item := range items {
		if !s.m.Put(item, struct{}{}) {
			added++
		}
	}
	return
}

// SRem removes the specified members and returns how many were present.
func (s *Set[K]) SRem(items ...K) (removed int) {
	for _, item := range items {
		if s.m.Delete(item) {
			removed++
		}
	}
	return
}

// SIsMember returns if item is a member of the set.
func (s *Set[K]) SIsMember(item K) bool {
	return s.m.Contains(item)
}

// SAreMembers returns if all the specified items are members of the set.
func (s *Set[K]) SAreMembers(items ...K) bool {
	for _, item := range items {
		if !s.m.Contains(item) {
			return false
		}
	}
	return true
}

// SMembers returns all the members of the set, in no particular order.
func (s *Set[K]) SMembers() []K {
	list := make([]K, 0, s.m.Len())
	s.m.Range(func(key K, _ struct{}) bool {
		list = append(list, key)
		return true
	})
	return list
}

// SCard returns the set cardinality (number of elements).
func (s *Set[K]) SCard() int {
	return s.m.Len()
}

// SDiff returns the members of s that are not members of other.
func (s *Set[K]) SDiff(other *Set[K]) []K {
	var list []K
	for _, key := range s.SMembers() {
		if !other.SIsMember(key) {
			list = append(list, key)
		}
	}
	return list
}

// SInter returns the members present in both s and other.
func (s *Set[K]) SInter(other *Set[K]) []K {
	var list []K
	for _, key := range s.SMembers() {
		if other.SIsMember(key) {
			list = append(list, key)
		}
	}
	return list
}

// Stats reports the bucket distribution of the members.
func (s *Set[K]) Stats() metrics.Distribution {
	return s.m.Stats()
}
