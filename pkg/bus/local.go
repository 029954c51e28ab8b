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
	"sync"

	evbus "github.com/asaskevich/EventBus"
)

// LocalBus implements Bus inside one process on top of EventBus. Used by
// default when no cluster transport is configured, and throughout tests.
type LocalBus struct {
	bus evbus.Bus

	mu       sync.Mutex
	handlers map[string][]func(payload []byte)
}

var _ Bus = (*LocalBus)(nil)

// NewLocalBus returns an in-process Bus.
func NewLocalBus() *LocalBus {
	return &LocalBus{
		bus:      evbus.New(),
		handlers: make(map[string][]func(payload []byte)),
	}
}

func (b *LocalBus) Publish(_ context.Context, channel string, payload []byte) error {
	b.bus.Publish(channel, payload)
	return nil
}

func (b *LocalBus) Subscribe(channel string, handler Handler) error {
	fn := func(payload []byte) { handler(payload) }
	if err := b.bus.Subscribe(channel, fn); err != nil {
		return err
	}
	b.mu.Lock()
	b.handlers[channel] = append(b.handlers[channel], fn)
	b.mu.Unlock()
	return nil
}

func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for channel, fns := range b.handlers {
		for _, fn := range fns {
			// Unsubscribe of an already-removed handler only returns an
			// error, which Close has nothing useful to do with.
			_ = b.bus.Unsubscribe(channel, fn)
		}
	}
	b.handlers = make(map[string][]func(payload []byte))
	return nil
}
