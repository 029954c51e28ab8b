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

// Package directory declares the platform collaborators the federation
// core consumes but does not own: the local user, post and category
// domain model, the remote-actor directory, and the serializer that turns
// local entities into wire representations. The hosting platform provides
// implementations; tests use fakes.
package directory

import (
	"context"

	"github.com/fedforum/fedcore-go/pkg/protocol"
)

// UserDirectory looks up local users.
type UserDirectory interface {
	// UIDByUserslug maps a user slug to a uid, 0 when unknown.
	UIDByUserslug(ctx context.Context, slug string) (int64, error)

	// Exists reports whether a local uid exists.
	Exists(ctx context.Context, uid int64) (bool, error)

	// UsersFields returns the requested fields for each id, aligned to
	// ids. Ids may be local uids or remote actor URIs; unknown ids yield
	// an empty map in their slot.
	UsersFields(ctx context.Context, ids []string, fields []string) ([]map[string]string, error)
}

// PostDirectory looks up local posts.
type PostDirectory interface {
	// PostSummaries returns summarized posts for pids as seen by
	// viewerUID. Missing pids are simply absent from the result.
	PostSummaries(ctx context.Context, pids []int64, viewerUID int64) ([]map[string]any, error)
}

// CategoryDirectory looks up local categories.
type CategoryDirectory interface {
	Exists(ctx context.Context, cid int64) (bool, error)
}

// ActorDirectory maintains the local cache of remote actor records.
type ActorDirectory interface {
	// Assert ensures records exist and are fresh for each remote actor
	// URI, fetching them when needed.
	Assert(ctx context.Context, actorURIs []string) error
}

// Mocker serializes local entities into their ActivityStreams wire
// representations.
type Mocker interface {
	// Actor renders a local user as an actor object.
	Actor(ctx context.Context, uid int64) (protocol.Object, error)

	// Group renders a local category as a group actor object.
	Group(ctx context.Context, cid int64) (protocol.Object, error)

	// Note renders a summarized post (as returned by
	// PostDirectory.PostSummaries) as a note object.
	Note(ctx context.Context, post map[string]any) (protocol.Object, error)
}
