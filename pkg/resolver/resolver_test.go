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
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/fedforum/fedcore-go/pkg/client"
	"github.com/fedforum/fedcore-go/pkg/config"
	"github.com/fedforum/fedcore-go/pkg/protocol"
	"github.com/fedforum/fedcore-go/pkg/webfinger"
)

// fakeUsers is an in-memory UserDirectory
type fakeUsers struct {
	slugs map[string]int64
	uids  map[int64]bool
}

func (f *fakeUsers) UIDByUserslug(_ context.Context, slug string) (int64, error) {
	return f.slugs[slug], nil
}

func (f *fakeUsers) Exists(_ context.Context, uid int64) (bool, error) {
	return f.uids[uid], nil
}

func (f *fakeUsers) UsersFields(_ context.Context, ids []string, _ []string) ([]map[string]string, error) {
	out := make([]map[string]string, len(ids))
	for i := range ids {
		out[i] = map[string]string{}
	}
	return out, nil
}

type fakePosts struct {
	posts map[int64]map[string]any
}

func (f *fakePosts) PostSummaries(_ context.Context, pids []int64, _ int64) ([]map[string]any, error) {
	var out []map[string]any
	for _, pid := range pids {
		if p, ok := f.posts[pid]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCategories struct {
	cids map[int64]bool
}

func (f *fakeCategories) Exists(_ context.Context, cid int64) (bool, error) {
	return f.cids[cid], nil
}

// fakeMocker renders minimal wire objects tagged with their source kind
type fakeMocker struct{}

func (fakeMocker) Actor(_ context.Context, uid int64) (protocol.Object, error) {
	return protocol.Object{
		"id":   fmt.Sprintf("https://forum.example.org/uid/%d", uid),
		"type": "Person",
	}, nil
}

func (fakeMocker) Group(_ context.Context, cid int64) (protocol.Object, error) {
	return protocol.Object{
		"id":   fmt.Sprintf("https://forum.example.org/category/%d", cid),
		"type": "Group",
	}, nil
}

func (fakeMocker) Note(_ context.Context, post map[string]any) (protocol.Object, error) {
	id, _ := post["uri"].(string)
	author, _ := post["author"].(string)
	return protocol.Object{"id": id, "type": "Note", "attributedTo": author}, nil
}

// fakeGetter serves canned remote objects and records the fetching actor
type fakeGetter struct {
	mu      sync.Mutex
	objects map[string]protocol.Object
	actors  []int64
}

func (f *fakeGetter) Get(_ context.Context, _ string, actorID int64, uri string, _ *client.GetOptions) (protocol.Object, error) {
	f.mu.Lock()
	f.actors = append(f.actors, actorID)
	f.mu.Unlock()

	obj, ok := f.objects[uri]
	if !ok {
		return nil, protocol.NewFetchError(404, nil)
	}
	return obj, nil
}

type fakeFinger struct {
	records map[string]*webfinger.Record
}

func (f *fakeFinger) Query(_ context.Context, id string) (*webfinger.Record, error) {
	return f.records[id], nil
}

func wfRecord(actorURI string) *webfinger.Record {
	return &webfinger.Record{ActorURI: actorURI}
}

type testFixture struct {
	resolver *Resolver
	users    *fakeUsers
	getter   *fakeGetter
	finger   *fakeFinger
}

func newFixture(t *testing.T, baseURL string) *testFixture {
	t.Helper()
	cfg, err := config.New(config.Config{BaseURL: baseURL})
	require.NoError(t, err)

	users := &fakeUsers{
		slugs: map[string]int64{"alice": 7},
		uids:  map[int64]bool{5: true, 7: true},
	}
	getter := &fakeGetter{objects: map[string]protocol.Object{}}
	finger := &fakeFinger{records: map[string]*webfinger.Record{}}

	r := New(Deps{
		Config: cfg,
		Users:  users,
		Posts: &fakePosts{posts: map[int64]map[string]any{
			11: {"uri": baseURL + "/post/11", "author": baseURL + "/uid/5"},
		}},
		Categories: &fakeCategories{cids: map[int64]bool{3: true}},
		Mocker:     fakeMocker{},
		Fetcher:    getter,
		WebFinger:  finger,
		Logger:     zerolog.Nop(),
	})
	return &testFixture{resolver: r, users: users, getter: getter, finger: finger}
}
