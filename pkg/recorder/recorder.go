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

// Package recorder keeps the audit trail of federated activity: a global
// chronological index, per-host last-seen timestamps, and counters by
// activity type and origin host.
package recorder

import (
	"context"
	"fmt"
	"net/url"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/store"
)

// Entry is the metadata recorded for one activity.
type Entry struct {
	ID    string
	Type  string
	Actor string
}

// Recorder writes activity metadata to the object store.
type Recorder struct {
	store store.ObjectStore
	clock clock.Clock
	log   zerolog.Logger
}

// New builds a Recorder. A nil clk uses the wall clock.
func New(st store.ObjectStore, clk clock.Clock, log zerolog.Logger) *Recorder {
	if clk == nil {
		clk = clock.New()
	}
	return &Recorder{store: st, clock: clk, log: log.With().Str("component", "recorder").Logger()}
}

// Record indexes one activity under a single logical timestamp.
func (r *Recorder) Record(ctx context.Context, e Entry) error {
	now := float64(r.clock.Now().UnixMilli())

	hostname := ""
	if u, err := url.Parse(e.Actor); err == nil {
		hostname = u.Hostname()
	}

	if err := r.store.SortedSetAdd(ctx, "activities:datetime", now, e.ID); err != nil {
		return fmt.Errorf("record activity %s: %w", e.ID, err)
	}
	if hostname != "" {
		if err := r.store.SortedSetAdd(ctx, "domains:lastSeen", now, hostname); err != nil {
			return fmt.Errorf("record domain %s: %w", hostname, err)
		}
	}

	counters := []string{"activities", "activities:byType:" + e.Type}
	if hostname != "" {
		counters = append(counters, "activities:byHost:"+hostname)
	}
	if err := r.store.IncrementCounters(ctx, counters); err != nil {
		return fmt.Errorf("increment activity counters: %w", err)
	}
	return nil
}

// LastSeen returns the recorded origin hosts, oldest first. Exposed for
// maintenance jobs that prune dead instances.
func (r *Recorder) LastSeen(ctx context.Context) ([]string, error) {
	return r.store.SortedSetMembers(ctx, "domains:lastSeen")
}
