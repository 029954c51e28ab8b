// Copyright (C) 2026 FedForum Project
//
// This file is part of fedcore-go.
//
// fedcore-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fedcore-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fedcore-go.  If not, see <https://www.gnu.org/licenses/>.

package store

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory ObjectStore for tests and single-binary
// deployments. Safe for concurrent use.
type MemStore struct {
	mu       sync.RWMutex
	objects  map[string]map[string]string
	sets     map[string]map[string]float64
	counters map[string]int64
}

var _ ObjectStore = (*MemStore)(nil)

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		objects:  make(map[string]map[string]string),
		sets:     make(map[string]map[string]float64),
		counters: make(map[string]int64),
	}
}

func (s *MemStore) SetObject(_ context.Context, key string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	if !ok {
		obj = make(map[string]string, len(fields))
		s.objects[key] = obj
	}
	for k, v := range fields {
		obj[k] = v
	}
	return nil
}

func (s *MemStore) GetObject(_ context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.objects[key]))
	for k, v := range s.objects[key] {
		out[k] = v
	}
	return out, nil
}

func (s *MemStore) ObjectFieldsExist(_ context.Context, key string, fields []string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return false, nil
	}
	for _, field := range fields {
		if _, ok := obj[field]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *MemStore) SortedSetAdd(_ context.Context, set string, score float64, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	members, ok := s.sets[set]
	if !ok {
		members = make(map[string]float64)
		s.sets[set] = members
	}
	members[member] = score
	return nil
}

func (s *MemStore) SortedSetMembers(_ context.Context, set string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]string, 0, len(s.sets[set]))
	for member := range s.sets[set] {
		members = append(members, member)
	}
	scores := s.sets[set]
	sort.Slice(members, func(i, j int) bool {
		if scores[members[i]] != scores[members[j]] {
			return scores[members[i]] < scores[members[j]]
		}
		return members[i] < members[j]
	})
	return members, nil
}

func (s *MemStore) IncrementCounters(_ context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		s.counters[key]++
	}
	return nil
}

// Counter returns the current value of a counter. Test helper.
func (s *MemStore) Counter(key string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[key]
}
