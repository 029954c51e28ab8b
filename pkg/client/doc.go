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

// Package client is the signed-fetch side of federation: authenticated
// GETs of remote objects with a bounded, TTL'd response cache.
//
//	fetcher := client.New(cfg, keys, logger)
//	obj, err := fetcher.Get(ctx, protocol.ActorTypeUser, 7,
//	    "https://remote.example/users/bob", nil)
//
// Fetches as the sentinel actor (protocol.SentinelUID) go out unsigned;
// any non-negative actor id signs the request with that actor's keypair.
// The Accept header is pinned to the ActivityStreams ld+json profile and
// requests time out after the configured fetch timeout.
package client
