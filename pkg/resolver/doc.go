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

// Package resolver translates identifiers between the local object graph
// and the global URI namespace, and materializes canonical object
// representations.
//
// Identifiers come in three shapes, discriminated once at the boundary:
// absolute URIs (IsURI), WebFinger handles (IsWebfingerHandle), and
// everything else. URIs under the local origin map to entity references
// through their path prefix:
//
//	/uid/7        → user 7
//	/post/42      → post 42
//	/cid/3        → category 3  (also /category/3)
//	/user/alice   → user, via slug lookup
//
// A #activity/... fragment rides along on any of these and makes
// ResolveObject synthesize an activity envelope instead of looking the
// object up. Foreign hosts and unknown prefixes resolve to a zero-Type
// LocalID ("not ours") which sends resolution down the remote
// signed-fetch path as the sentinel actor.
package resolver
