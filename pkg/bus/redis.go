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
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisBus implements Bus on Redis pub/sub so that messages reach every
// process in the cluster. Each Subscribe opens one Redis subscription and
// pumps messages to the handler from a background goroutine.
type RedisBus struct {
	client *redis.Client
	log    zerolog.Logger

	mu   sync.Mutex
	subs []*redis.PubSub
	wg   sync.WaitGroup
}

var _ Bus = (*RedisBus)(nil)

// NewRedisBus wraps an existing go-redis client. The caller owns the
// client's lifecycle; Close only tears down subscriptions.
func NewRedisBus(client *redis.Client, log zerolog.Logger) *RedisBus {
	return &RedisBus{client: client, log: log}
}

func (b *RedisBus) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}

func (b *RedisBus) Subscribe(channel string, handler Handler) error {
	sub := b.client.Subscribe(context.Background(), channel)
	// Force the SUBSCRIBE round-trip so a bad connection surfaces here
	// rather than as a silent dead channel.
	if _, err := sub.Receive(context.Background()); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe %s: %w", channel, err)
	}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for msg := range sub.Channel() {
			handler([]byte(msg.Payload))
		}
		b.log.Debug().Str("channel", channel).Msg("bus subscription closed")
	}()
	return nil
}

func (b *RedisBus) Close() error {
	b.mu.Lock()
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	var firstErr error
	for _, sub := range subs {
		if err := sub.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	b.wg.Wait()
	return firstErr
}
