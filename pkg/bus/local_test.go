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

package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBusRoundTrip(t *testing.T) {
	b := NewLocalBus()
	defer b.Close()

	var got [][]byte
	require.NoError(t, b.Subscribe("ch", func(payload []byte) {
		got = append(got, payload)
	}))

	require.NoError(t, b.Publish(context.Background(), "ch", []byte("one")))
	require.NoError(t, b.Publish(context.Background(), "ch", []byte("two")))

	assert.Equal(t, [][]byte{[]byte("one"), []byte("two")}, got)
}

// Test channels are isolated from each other
func TestLocalBusChannelIsolation(t *testing.T) {
	b := NewLocalBus()
	defer b.Close()

	var calls int
	require.NoError(t, b.Subscribe("a", func([]byte) { calls++ }))

	require.NoError(t, b.Publish(context.Background(), "b", []byte("x")))
	assert.Equal(t, 0, calls)
}

func TestLocalBusFanOut(t *testing.T) {
	b := NewLocalBus()
	defer b.Close()

	var first, second int
	require.NoError(t, b.Subscribe("ch", func([]byte) { first++ }))
	require.NoError(t, b.Subscribe("ch", func([]byte) { second++ }))

	require.NoError(t, b.Publish(context.Background(), "ch", []byte("x")))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

// Test Close detaches all handlers
func TestLocalBusClose(t *testing.T) {
	b := NewLocalBus()

	var calls int
	require.NoError(t, b.Subscribe("ch", func([]byte) { calls++ }))
	require.NoError(t, b.Close())

	require.NoError(t, b.Publish(context.Background(), "ch", []byte("x")))
	assert.Equal(t, 0, calls)
}
