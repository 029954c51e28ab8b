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
	"regexp"
	"strconv"
	"strings"

	"github.com/fedforum/fedcore-go/pkg/protocol"
)

// activityMarker introduces a synthesized-activity reference in a URI
// fragment: #activity/follow/bob@remote.example
const activityMarker = "activity"

var handlePattern = regexp.MustCompile(`^[^@\s/]+@[^@\s/]+$`)

// IsURI reports whether value parses as an absolute URI under an
// accepted scheme. Classification never fails; a malformed value is
// simply not a URI.
func (r *Resolver) IsURI(value string) bool {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return false
	}
	for _, scheme := range r.cfg.AcceptedSchemes() {
		if u.Scheme == scheme {
			return true
		}
	}
	return false
}

// IsWebfingerHandle returns the local name of a [@|acct:]name@host handle,
// or "" when value is not a handle. URIs take precedence: anything that
// parses as an accepted URI is not a handle. Callers treat "" as falsy
// and any other value as truthy-with-payload.
func (r *Resolver) IsWebfingerHandle(value string) string {
	if r.IsURI(value) {
		return ""
	}
	handle := strings.TrimPrefix(strings.TrimPrefix(value, "acct:"), "@")
	if !handlePattern.MatchString(handle) {
		return ""
	}
	name, _, _ := strings.Cut(handle, "@")
	return name
}

// ResolveLocalID maps an identifier, a URI under our origin or a
// WebFinger handle naming a local user, to a local entity reference.
// Foreign hosts and unrecognized path prefixes yield a zero-Type LocalID,
// signalling "not ours, try remote resolution".
func (r *Resolver) ResolveLocalID(ctx context.Context, input string) (*LocalID, error) {
	if r.IsURI(input) {
		return r.resolveLocalURI(ctx, input)
	}

	decoded, err := url.QueryUnescape(input)
	if err != nil {
		decoded = input
	}
	if strings.Contains(decoded, "@") {
		handle := strings.TrimPrefix(strings.TrimPrefix(decoded, "acct:"), "@")
		slug, _, _ := strings.Cut(handle, "@")
		uid, err := r.users.UIDByUserslug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("resolve userslug %q: %w", slug, err)
		}
		if uid > 0 {
			return &LocalID{Type: KindUser, ID: uid}, nil
		}
	}

	return &LocalID{}, nil
}

func (r *Resolver) resolveLocalURI(ctx context.Context, input string) (*LocalID, error) {
	u, err := url.Parse(input)
	if err != nil {
		return &LocalID{}, nil
	}

	result := &LocalID{}
	if marked, ok := strings.CutPrefix(u.Fragment, activityMarker); ok {
		rest := strings.TrimPrefix(marked, "/")
		result.Activity, result.Data, _ = strings.Cut(rest, "/")
	}

	if u.Host != r.cfg.Host() {
		return result, nil
	}

	path := strings.TrimPrefix(u.Path, r.cfg.RelativePath())
	parts := splitPath(path)
	if len(parts) < 2 {
		return result, nil
	}
	prefix, value := parts[0], parts[1]

	switch prefix {
	case "uid":
		if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			result.Type, result.ID = KindUser, id
		}
	case "post":
		if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			result.Type, result.ID = KindPost, id
		}
	case "cid", "category":
		if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			result.Type, result.ID = KindCategory, id
		}
	case "user":
		uid, err := r.users.UIDByUserslug(ctx, value)
		if err != nil {
			return nil, fmt.Errorf("resolve userslug %q: %w", value, err)
		}
		if uid > 0 {
			result.Type, result.ID = KindUser, uid
		}
	}
	return result, nil
}

// ResolveActor builds the canonical actor URI for a local entity. Uids at
// or below zero map to the reserved instance-actor path.
func (r *Resolver) ResolveActor(actorType string, id int64) (string, error) {
	switch actorType {
	case protocol.ActorTypeUser:
		if id > 0 {
			return fmt.Sprintf("%s/uid/%d", r.cfg.BaseURL, id), nil
		}
		return r.cfg.BaseURL + "/actor", nil
	case protocol.ActorTypeCategory:
		return fmt.Sprintf("%s/category/%d", r.cfg.BaseURL, id), nil
	default:
		return "", fmt.Errorf("%w: %s:%d", protocol.ErrInvalidActorReference, actorType, id)
	}
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
