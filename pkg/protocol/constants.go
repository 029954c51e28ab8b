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

package protocol

const (
	// SentinelUID is the reserved local actor id used for anonymous and
	// system-level fetches. It never owns a real user account.
	SentinelUID int64 = -2

	// ContextURI is the ActivityStreams JSON-LD context
	ContextURI = "https://www.w3.org/ns/activitystreams"

	// PublicAddress is the special addressing URI meaning "everyone"
	PublicAddress = ContextURI + "#Public"

	// ContentTypeActivityJSON is the bare ActivityPub media type
	ContentTypeActivityJSON = "application/activity+json"

	// ContentTypeLDJSON is the profiled ld+json media type used on signed
	// GET/POST exchanges
	ContentTypeLDJSON = `application/ld+json; profile="https://www.w3.org/ns/activitystreams"`
)

// ActorTypeUser and ActorTypeCategory are the two recognized local actor
// kinds. Keypairs, actor URIs and key ids are only issued for these.
const (
	ActorTypeUser     = "uid"
	ActorTypeCategory = "cid"
)

// AcceptableTypes lists the media types accepted for ActivityPub payloads,
// both on inbound requests and when filtering WebFinger self links.
var AcceptableTypes = []string{
	ContentTypeActivityJSON,
	ContentTypeLDJSON,
}

// AcceptedPostTypes are the remote object types that map onto local posts.
var AcceptedPostTypes = []string{"Note", "Page", "Article", "Question"}

// AcceptableActorTypes are the ActivityStreams types recognized as actors.
var AcceptableActorTypes = map[string]struct{}{
	"Application":  {},
	"Group":        {},
	"Organization": {},
	"Person":       {},
	"Service":      {},
}

// RequiredActorProps must be present on a fetched object for it to be
// asserted as an actor.
var RequiredActorProps = []string{"inbox", "outbox"}

// IsAcceptableType reports whether a media type is one of the two accepted
// ActivityPub content types.
func IsAcceptableType(mediaType string) bool {
	for _, t := range AcceptableTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}
