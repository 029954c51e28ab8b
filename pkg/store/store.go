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

// Package store defines the object-store collaborator the federation core
// persists through: string-keyed hashes, sorted sets and counters. Two
// implementations ship with it: RedisStore for production clusters and
// MemStore for tests and single-binary setups.
package store

import "context"

// ObjectStore is the persistence surface consumed by the federation core.
// Keys are flat strings ("uid:7:keys", "activities:datetime"); the core
// never assumes anything about layout beyond that.
type ObjectStore interface {
	// SetObject merges fields into the hash at key, creating it if absent.
	SetObject(ctx context.Context, key string, fields map[string]string) error

	// GetObject returns the hash at key. A missing key yields an empty
	// map and no error.
	GetObject(ctx context.Context, key string) (map[string]string, error)

	// ObjectFieldsExist reports whether every named field is present on
	// the hash at key.
	ObjectFieldsExist(ctx context.Context, key string, fields []string) (bool, error)

	// SortedSetAdd inserts member into the sorted set with the given
	// score, updating the score when the member already exists.
	SortedSetAdd(ctx context.Context, set string, score float64, member string) error

	// SortedSetMembers returns all members of the sorted set in score
	// order.
	SortedSetMembers(ctx context.Context, set string) ([]string, error)

	// IncrementCounters adds one to each named counter.
	IncrementCounters(ctx context.Context, keys []string) error
}
