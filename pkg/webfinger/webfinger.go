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

// Package webfinger discovers routing metadata for remote identities: the
// actor URI behind a user@host handle, the canonical subject, and any
// published public key. Results live in a bounded 24-hour cache; there is
// no invalidation protocol, staleness is accepted.
package webfinger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/cache"
	"github.com/fedforum/fedcore-go/pkg/config"
	"github.com/fedforum/fedcore-go/pkg/protocol"
)

// Record is the routing metadata discovered for one identity.
type Record struct {
	Subject   string
	Username  string
	Hostname  string
	ActorURI  string
	PublicKey *protocol.PublicKey
}

// Client performs WebFinger discovery with caching.
type Client struct {
	cfg   *config.Config
	http  *resty.Client
	cache *cache.Cache[string, *Record]
	log   zerolog.Logger
}

// NewClient builds a WebFinger client.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		cfg:   cfg,
		http:  resty.New().SetTimeout(cfg.FetchTimeout),
		cache: cache.New[string, *Record](cfg.WebfingerCacheSize, cfg.WebfingerCacheTTL, nil),
		log:   log.With().Str("component", "webfinger").Logger(),
	}
}

// Query resolves id, either a user@host handle (with optional @ or
// acct: prefix) or an actor URI, to a Record.
//
// Discovery is fail-closed: a malformed id, transport failure, non-2xx
// response or a response without links all yield (nil, nil). A nil record
// means "discovery unavailable"; the caller cannot distinguish that from
// "not found", which is deliberate.
func (c *Client) Query(ctx context.Context, id string) (*Record, error) {
	if rec, ok := c.cache.Get(id); ok {
		return rec, nil
	}

	username, hostname, resource := classify(id, c.cfg.AcceptedSchemes())
	if hostname == "" {
		return nil, nil
	}

	scheme := "https"
	if c.cfg.AllowInsecureHTTP {
		scheme = "http"
	}
	endpoint := fmt.Sprintf("%s://%s/.well-known/webfinger", scheme, hostname)

	c.log.Debug().Str("resource", resource).Str("host", hostname).Msg("query")
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("resource", resource).
		Get(endpoint)
	if err != nil || !resp.IsSuccess() {
		return nil, nil
	}

	var body protocol.WebFingerResource
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Links == nil {
		return nil, nil
	}

	// Multiple self links are legal; the last acceptable one wins.
	actorURI := ""
	for _, link := range body.Links {
		if link.Rel == "self" && protocol.IsAcceptableType(link.Type) {
			actorURI = link.Href
		}
	}

	rec := &Record{
		Subject:   body.Subject,
		Username:  username,
		Hostname:  hostname,
		ActorURI:  actorURI,
		PublicKey: body.PublicKey,
	}

	// Alias the entry under the canonical subject so a later query via
	// either string is a hit.
	c.cache.Set(id, rec)
	if rec.Subject != "" && rec.Subject != id {
		c.cache.Set(rec.Subject, rec)
	}
	return rec, nil
}

// classify splits an identifier into (username, hostname, resource).
// hostname is "" when the identifier is neither a URI with an accepted
// scheme nor a name@host handle.
func classify(id string, schemes []string) (username, hostname, resource string) {
	if u, err := url.Parse(id); err == nil && u.Host != "" {
		for _, s := range schemes {
			if u.Scheme == s {
				return "", u.Host, id
			}
		}
	}

	handle := strings.TrimPrefix(strings.TrimPrefix(id, "acct:"), "@")
	name, host, found := strings.Cut(handle, "@")
	if !found || name == "" || host == "" || strings.Contains(host, "@") {
		return "", "", ""
	}
	return name, host, "acct:" + handle
}
