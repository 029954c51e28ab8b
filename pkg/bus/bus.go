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

// Package bus is the publish/subscribe channel used to broadcast
// retry-queue evictions across every process sharing the queue. LocalBus
// serves a single process; RedisBus fans the same messages out to a
// cluster. Handlers receive the raw payload and must not block.
package bus

import "context"

// Handler consumes one published message.
type Handler func(payload []byte)

// Bus is a minimal at-most-once broadcast channel. Publishers do not learn
// who, if anyone, received a message.
type Bus interface {
	// Publish sends payload to every subscriber of channel, the local
	// process included.
	Publish(ctx context.Context, channel string, payload []byte) error

	// Subscribe registers a handler for a channel. Multiple handlers per
	// channel are allowed.
	Subscribe(channel string, handler Handler) error

	// Close releases subscriptions and any underlying connections.
	Close() error
}
