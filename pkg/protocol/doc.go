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

// Package protocol holds the wire-level vocabulary shared by every
// federation component: ActivityStreams constants and media types, the
// schemaless Object representation for remote payloads, WebFinger resource
// shapes, and the error taxonomy (ErrInvalidReference,
// ErrInvalidActorReference, ErrNotImplemented, ErrKeyNotFound, FetchError).
//
// Downstream packages match errors with errors.Is/errors.As:
//
//	obj, err := fetcher.Get(ctx, protocol.ActorTypeUser, protocol.SentinelUID, uri, nil)
//	var fe *protocol.FetchError
//	if errors.As(err, &fe) && fe.StatusCode == http.StatusGone {
//	    // remote object deleted
//	}
package protocol
