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

package resolver

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/fedforum/fedcore-go/pkg/batch"
	"github.com/fedforum/fedcore-go/pkg/protocol"
)

// ResolveObject returns the canonical representation of one identifier:
// a synthesized activity when the identifier's fragment encodes one, a
// serialized local entity when the identifier is ours, or the remote
// object fetched as the sentinel actor otherwise.
func (r *Resolver) ResolveObject(ctx context.Context, id string) (protocol.Object, error) {
	local, err := r.ResolveLocalID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A fragment-embedded activity short-circuits object lookup.
	if local.Activity != "" {
		return r.ResolveActivity(ctx, local.Activity, local.Data, r.newActivityID(), local)
	}

	if local.IsLocal() {
		return r.localObject(ctx, local)
	}

	return r.fetcher.Get(ctx, protocol.ActorTypeUser, protocol.SentinelUID, id, nil)
}

// ResolveObjects resolves many identifiers concurrently in bounded
// batches, returning representations aligned to input order. Any single
// failure fails the whole call; callers wanting partial tolerance should
// resolve ids individually.
func (r *Resolver) ResolveObjects(ctx context.Context, ids []string) ([]protocol.Object, error) {
	type slot struct {
		pos int
		id  string
	}
	slots := make([]slot, len(ids))
	for i, id := range ids {
		slots[i] = slot{pos: i, id: id}
	}

	results := make([]protocol.Object, len(ids))
	err := batch.ProcessArray(ctx, slots, func(ctx context.Context, chunk []slot) error {
		g, ctx := errgroup.WithContext(ctx)
		for _, s := range chunk {
			s := s
			g.Go(func() error {
				obj, err := r.ResolveObject(ctx, s.id)
				if err != nil {
					return err
				}
				results[s.pos] = obj
				return nil
			})
		}
		return g.Wait()
	}, batch.Options{Batch: r.cfg.LookupBatchSize})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ResolveID fetches a remote id as uid and returns the response's own
// canonical id, or "" when the response id's host differs from the
// queried host or the fetch fails. Fail-closed; used to confirm a remote
// object actually lives where it claims to.
func (r *Resolver) ResolveID(ctx context.Context, uid int64, id string) string {
	query, err := url.Parse(id)
	if err != nil {
		return ""
	}
	body, err := r.fetcher.Get(ctx, protocol.ActorTypeUser, uid, id, nil)
	if err != nil {
		return ""
	}
	response, err := url.Parse(body.ID())
	if err != nil {
		return ""
	}
	if query.Host != response.Host {
		r.log.Warn().Str("query", query.String()).Str("response", response.String()).
			Msg("id resolution domain mismatch")
		return ""
	}
	return body.ID()
}

// localObject serializes a resolved local entity into its wire
// representation, existence-checked.
func (r *Resolver) localObject(ctx context.Context, local *LocalID) (protocol.Object, error) {
	switch local.Type {
	case KindUser:
		exists, err := r.users.Exists(ctx, local.ID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: uid %d", protocol.ErrInvalidReference, local.ID)
		}
		return r.mocker.Actor(ctx, local.ID)

	case KindPost:
		summaries, err := r.posts.PostSummaries(ctx, []int64{local.ID}, protocol.SentinelUID)
		if err != nil {
			return nil, err
		}
		if len(summaries) == 0 {
			return nil, fmt.Errorf("%w: post %d", protocol.ErrInvalidReference, local.ID)
		}
		return r.mocker.Note(ctx, summaries[0])

	case KindCategory:
		exists, err := r.categories.Exists(ctx, local.ID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: cid %d", protocol.ErrInvalidReference, local.ID)
		}
		return r.mocker.Group(ctx, local.ID)

	default:
		return nil, fmt.Errorf("%w: %q", protocol.ErrInvalidReference, local.Type)
	}
}
