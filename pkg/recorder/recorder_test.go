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

package recorder

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedforum/fedcore-go/pkg/store"
)

func TestRecord(t *testing.T) {
	st := store.NewMemStore()
	mock := clock.NewMock()
	r := New(st, mock, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, Entry{
		ID:    "https://remote.example/activities/1",
		Type:  "Follow",
		Actor: "https://remote.example/users/bob",
	}))
	require.NoError(t, r.Record(ctx, Entry{
		ID:    "https://other.example/activities/2",
		Type:  "Create",
		Actor: "https://other.example/users/carol",
	}))
	require.NoError(t, r.Record(ctx, Entry{
		ID:    "https://remote.example/activities/3",
		Type:  "Follow",
		Actor: "https://remote.example/users/bob",
	}))

	assert.Equal(t, int64(3), st.Counter("activities"))
	assert.Equal(t, int64(2), st.Counter("activities:byType:Follow"))
	assert.Equal(t, int64(1), st.Counter("activities:byType:Create"))
	assert.Equal(t, int64(2), st.Counter("activities:byHost:remote.example"))
	assert.Equal(t, int64(1), st.Counter("activities:byHost:other.example"))

	activities, err := st.SortedSetMembers(ctx, "activities:datetime")
	require.NoError(t, err)
	assert.Len(t, activities, 3)
}

// Test last-seen tracks hosts with their latest timestamp
func TestLastSeen(t *testing.T) {
	st := store.NewMemStore()
	mock := clock.NewMock()
	r := New(st, mock, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, Entry{
		ID: "a1", Type: "Follow", Actor: "https://first.example/users/x",
	}))
	mock.Add(time.Hour)
	require.NoError(t, r.Record(ctx, Entry{
		ID: "a2", Type: "Follow", Actor: "https://second.example/users/y",
	}))
	mock.Add(time.Hour)
	require.NoError(t, r.Record(ctx, Entry{
		ID: "a3", Type: "Follow", Actor: "https://first.example/users/x",
	}))

	hosts, err := r.LastSeen(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"second.example", "first.example"}, hosts)
}

// Test actors without a parseable host skip the host bookkeeping
func TestRecordHostlessActor(t *testing.T) {
	st := store.NewMemStore()
	r := New(st, nil, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, Entry{ID: "a1", Type: "Like", Actor: ""}))

	assert.Equal(t, int64(1), st.Counter("activities"))
	hosts, err := r.LastSeen(ctx)
	require.NoError(t, err)
	assert.Empty(t, hosts)
}
