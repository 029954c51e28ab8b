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

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/cache"
	"github.com/fedforum/fedcore-go/pkg/config"
	"github.com/fedforum/fedcore-go/pkg/keystore"
	"github.com/fedforum/fedcore-go/pkg/protocol"
	"github.com/fedforum/fedcore-go/pkg/signer"
)

// GetOptions tweaks a single fetch.
type GetOptions struct {
	// NoCache bypasses the response cache for this call, both on read
	// and on write.
	NoCache bool

	// Headers are merged into the request after the standard set.
	Headers map[string]string
}

// Fetcher performs authenticated GETs of remote ActivityPub objects with
// a bounded response cache. Real actors sign their fetches; the sentinel
// actor fetches anonymously.
type Fetcher struct {
	cfg    *config.Config
	keys   *keystore.KeyStore
	signer signer.RequestSigner
	http   *resty.Client
	cache  *cache.Cache[string, protocol.Object]
	log    zerolog.Logger
}

// New builds a Fetcher with its own resty client bounded by the
// configured fetch timeout.
func New(cfg *config.Config, keys *keystore.KeyStore, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		keys:   keys,
		signer: signer.NewCavageSigner(),
		http:   resty.New().SetTimeout(cfg.FetchTimeout),
		cache:  cache.New[string, protocol.Object](cfg.FetchCacheSize, cfg.FetchCacheTTL, nil),
		log:    log.With().Str("component", "fetch").Logger(),
	}
}

// Get retrieves uri as the given actor. Responses are cached per
// (actorID, uri); a non-2xx response or any transport/parse failure
// raises a *protocol.FetchError.
func (f *Fetcher) Get(ctx context.Context, actorType string, actorID int64, uri string, opts *GetOptions) (protocol.Object, error) {
	if opts == nil {
		opts = &GetOptions{}
	}
	cacheKey := fmt.Sprintf("%d;%s", actorID, uri)
	if !opts.NoCache {
		if cached, ok := f.cache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	req := f.http.R().SetContext(ctx)
	if actorID >= 0 {
		key, err := f.keys.PrivateKey(ctx, actorType, actorID)
		if err != nil {
			return nil, err
		}
		hdrs, err := f.signer.Sign(key, uri, nil)
		if err != nil {
			return nil, err
		}
		req.SetHeader("Date", hdrs.Date)
		req.SetHeader("Signature", hdrs.Signature)
	}
	for name, value := range opts.Headers {
		req.SetHeader(name, value)
	}
	req.SetHeader("Accept", protocol.ContentTypeLDJSON)

	f.log.Debug().Str("uri", uri).Int64("actor", actorID).Msg("get")
	resp, err := req.Get(uri)
	if err != nil {
		return nil, protocol.NewFetchError(0, err)
	}
	if !resp.IsSuccess() {
		f.log.Debug().Str("uri", uri).Int("status", resp.StatusCode()).Msg("get failed")
		return nil, protocol.NewFetchError(resp.StatusCode(), nil)
	}

	var body protocol.Object
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, protocol.NewFetchError(0, err)
	}

	if !opts.NoCache {
		f.cache.Set(cacheKey, body)
	}
	return body, nil
}

// FetchPublicKey dereferences a keyId URI as the instance actor and
// extracts the embedded PEM public key. Satisfies verifier.KeyFetcher.
func (f *Fetcher) FetchPublicKey(ctx context.Context, keyID string) (string, error) {
	body, err := f.Get(ctx, protocol.ActorTypeUser, 0, keyID, nil)
	if err != nil {
		return "", err
	}
	pem, ok := body.PublicKeyPem()
	if !ok {
		return "", fmt.Errorf("%w: %s", protocol.ErrKeyNotFound, keyID)
	}
	return pem, nil
}

// CacheLen reports the number of cached responses. Test helper.
func (f *Fetcher) CacheLen() int { return f.cache.Len() }
