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

	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/client"
	"github.com/fedforum/fedcore-go/pkg/config"
	"github.com/fedforum/fedcore-go/pkg/directory"
	"github.com/fedforum/fedcore-go/pkg/protocol"
	"github.com/fedforum/fedcore-go/pkg/webfinger"
)

// Local entity kinds a URI under our origin can resolve to.
const (
	KindUser     = "user"
	KindPost     = "post"
	KindCategory = "category"
)

// LocalID is the result of resolving an identifier against the local
// object graph. A zero Type means "not locally resolvable"; not an
// error, the caller should try remote resolution.
type LocalID struct {
	Type string
	ID   int64

	// Activity and Data carry a synthesized-activity reference when the
	// URI fragment encoded one (e.g. #activity/follow/bob@remote).
	Activity string
	Data     string
}

// IsLocal reports whether the identifier resolved to a local entity.
func (l *LocalID) IsLocal() bool { return l.Type != "" }

// RemoteGetter fetches remote objects; satisfied by client.Fetcher.
type RemoteGetter interface {
	Get(ctx context.Context, actorType string, actorID int64, uri string, opts *client.GetOptions) (protocol.Object, error)
}

// Finger performs WebFinger discovery; satisfied by webfinger.Client.
type Finger interface {
	Query(ctx context.Context, id string) (*webfinger.Record, error)
}

// Deps are the collaborators a Resolver works through.
type Deps struct {
	Config     *config.Config
	Users      directory.UserDirectory
	Posts      directory.PostDirectory
	Categories directory.CategoryDirectory
	Mocker     directory.Mocker
	Fetcher    RemoteGetter
	WebFinger  Finger
	Logger     zerolog.Logger
}

// Resolver translates between local ids, URIs and WebFinger handles, and
// materializes canonical object representations from any of them.
type Resolver struct {
	cfg        *config.Config
	users      directory.UserDirectory
	posts      directory.PostDirectory
	categories directory.CategoryDirectory
	mocker     directory.Mocker
	fetcher    RemoteGetter
	finger     Finger
	log        zerolog.Logger
}

// New builds a Resolver.
func New(deps Deps) *Resolver {
	return &Resolver{
		cfg:        deps.Config,
		users:      deps.Users,
		posts:      deps.Posts,
		categories: deps.Categories,
		mocker:     deps.Mocker,
		fetcher:    deps.Fetcher,
		finger:     deps.WebFinger,
		log:        deps.Logger.With().Str("component", "resolver").Logger(),
	}
}
