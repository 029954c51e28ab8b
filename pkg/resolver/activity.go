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
	"strings"

	"github.com/google/uuid"

	"github.com/fedforum/fedcore-go/pkg/protocol"
)

// ResolveActivity synthesizes a wire activity envelope for an activity
// kind embedded in a local URI fragment.
//
// "follow" wraps the resolved target actor following a WebFinger-queried
// object actor named by data. "announce" and "create" wrap the target's
// own local representation, attributing the activity to that object's
// attribution. Anything else fails with ErrNotImplemented.
func (r *Resolver) ResolveActivity(ctx context.Context, name, data, activityID string, target *LocalID) (protocol.Object, error) {
	switch strings.ToLower(name) {
	case "follow":
		actorURI, err := r.localActorURI(target)
		if err != nil {
			return nil, err
		}
		rec, err := r.finger.Query(ctx, data)
		if err != nil {
			return nil, err
		}
		if rec == nil || rec.ActorURI == "" {
			return nil, fmt.Errorf("%w: cannot discover %q", protocol.ErrInvalidReference, data)
		}
		return protocol.Object{
			"@context": protocol.ContextURI,
			"id":       activityID,
			"type":     "Follow",
			"actor":    actorURI,
			"object":   rec.ActorURI,
		}, nil

	case "announce", "create":
		object, err := r.localObject(ctx, target)
		if err != nil {
			return nil, err
		}
		kind := strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
		return protocol.Object{
			"@context": protocol.ContextURI,
			"id":       activityID,
			"type":     kind,
			"actor":    object.Attribution(),
			"object":   object,
		}, nil

	default:
		return nil, fmt.Errorf("%w: activity %q", protocol.ErrNotImplemented, name)
	}
}

// localActorURI maps a resolved local entity onto its actor URI.
func (r *Resolver) localActorURI(target *LocalID) (string, error) {
	switch target.Type {
	case KindUser:
		return r.ResolveActor(protocol.ActorTypeUser, target.ID)
	case KindCategory:
		return r.ResolveActor(protocol.ActorTypeCategory, target.ID)
	default:
		return "", fmt.Errorf("%w: %s is not an actor kind", protocol.ErrInvalidActorReference, target.Type)
	}
}

// newActivityID mints a URI for a synthesized activity.
func (r *Resolver) newActivityID() string {
	return r.cfg.BaseURL + "/activity/" + uuid.NewString()
}
