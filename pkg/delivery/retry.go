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

package delivery

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// pendingRetry is one scheduled retransmission tracked in the retry
// queue.
type pendingRetry struct {
	timer    *clock.Timer
	inboxURI string
	attempts int
	due      time.Time

	// external marks an entry whose removal was commanded by an
	// eviction broadcast; its own eviction must not re-broadcast.
	external atomic.Bool
}

func (p *pendingRetry) stop() {
	if p.timer != nil {
		p.timer.Stop()
	}
}

// RetryInfo describes one pending retransmission for inspection.
type RetryInfo struct {
	Key      string
	InboxURI string
	Attempts int
	Due      time.Time
}

// scheduleRetry books the next attempt for a failed delivery, unless the
// attempt ceiling is reached, in which case the destination is abandoned
// for this payload.
func (m *Manager) scheduleRetry(inboxURI string, msg *message, attempt int) {
	if attempt >= m.cfg.MaxDeliveryAttempts {
		m.log.Warn().Str("inbox", inboxURI).Str("type", msg.payloadType).
			Msg("max delivery attempts reached, giving up")
		return
	}

	delay := backoff(m.cfg.BackoffBase, attempt)
	key := m.queueKey(msg, inboxURI)

	// A prior entry under the same key means a newer send superseded an
	// older schedule; its timer must not fire twice.
	m.clearRetry(key)

	p := &pendingRetry{
		inboxURI: inboxURI,
		attempts: attempt,
		due:      m.clock.Now().Add(delay),
	}
	p.timer = m.clock.AfterFunc(delay, func() {
		m.sendMessage(inboxURI, msg, attempt+1)
	})
	m.queue.Set(key, p)

	m.log.Debug().Str("key", key).Dur("delay", delay).Msg("scheduled retry")
}

// backoff is base^attempt seconds.
func backoff(base, attempt int) time.Duration {
	seconds := 1
	for i := 0; i < attempt; i++ {
		seconds *= base
	}
	return time.Duration(seconds) * time.Second
}

// clearRetry removes a queue entry without broadcasting, stopping its
// timer via the eviction hook.
func (m *Manager) clearRetry(key string) {
	if p, ok := m.queue.Get(key); ok {
		p.external.Store(true)
		m.queue.Delete(key)
	}
}

// onEvict runs for every queue removal: TTL expiry, capacity overflow
// or explicit deletion. The timer dies with the bookkeeping entry, and
// unless the removal itself came over the bus, every other process
// sharing the queue is told to kill its own timer for the key.
func (m *Manager) onEvict(key string, p *pendingRetry) {
	p.stop()
	if p.external.Load() {
		return
	}
	payload, err := json.Marshal([]string{key})
	if err != nil {
		return
	}
	// The queue's internal lock is held while eviction hooks run. A
	// synchronous publish would let our own subscription re-enter the
	// queue under that lock, so the broadcast leaves on a goroutine.
	go func() {
		if err := m.bus.Publish(context.Background(), EvictionChannel, payload); err != nil {
			m.log.Warn().Err(err).Str("key", key).Msg("eviction broadcast failed")
		}
	}()
}

// onEvictionBroadcast cancels local timers for keys evicted elsewhere.
func (m *Manager) onEvictionBroadcast(payload []byte) {
	var keys []string
	if err := json.Unmarshal(payload, &keys); err != nil {
		m.log.Warn().Err(err).Msg("malformed eviction broadcast")
		return
	}
	for _, key := range keys {
		m.clearRetry(key)
	}
}

// PendingRetries lists the queue's scheduled retransmissions, oldest
// entry first.
func (m *Manager) PendingRetries() []RetryInfo {
	keys := m.queue.Keys()
	infos := make([]RetryInfo, 0, len(keys))
	for _, key := range keys {
		if p, ok := m.queue.Get(key); ok {
			infos = append(infos, RetryInfo{
				Key:      key,
				InboxURI: p.inboxURI,
				Attempts: p.attempts,
				Due:      p.due,
			})
		}
	}
	return infos
}

// Close stops every pending timer without broadcasting. The bus itself
// belongs to the caller.
func (m *Manager) Close() {
	for _, key := range m.queue.Keys() {
		m.clearRetry(key)
	}
}
