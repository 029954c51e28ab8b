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

// Package cache wraps hashicorp's expirable LRU behind the small surface
// the federation caches need: bounded size, fixed TTL, least-recently-used
// overflow, and an eviction hook that sees the original key. The hook
// fires for TTL expiry, capacity overflow and explicit Delete alike, which
// is exactly the contract the retry queue's cancellation path relies on.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a bounded TTL'd LRU map. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

// New builds a cache holding at most size entries for at most ttl each.
// onEvict may be nil; when set it runs for every removal, whatever the
// cause.
func New[K comparable, V any](size int, ttl time.Duration, onEvict func(key K, value V)) *Cache[K, V] {
	var cb expirable.EvictCallback[K, V]
	if onEvict != nil {
		cb = func(key K, value V) { onEvict(key, value) }
	}
	return &Cache[K, V]{lru: expirable.NewLRU[K, V](size, cb, ttl)}
}

// Get returns the cached value and whether it was present and fresh.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

// Set stores a value, evicting the least-recently-used entry on overflow.
func (c *Cache[K, V]) Set(key K, value V) {
	c.lru.Add(key, value)
}

// Delete removes an entry, firing the eviction hook when it existed.
func (c *Cache[K, V]) Delete(key K) bool {
	return c.lru.Remove(key)
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

// Keys returns the live keys, oldest first.
func (c *Cache[K, V]) Keys() []K {
	return c.lru.Keys()
}
