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
	"fmt"
	"net/url"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/batch"
	"github.com/fedforum/fedcore-go/pkg/bus"
	"github.com/fedforum/fedcore-go/pkg/cache"
	"github.com/fedforum/fedcore-go/pkg/config"
	"github.com/fedforum/fedcore-go/pkg/directory"
	"github.com/fedforum/fedcore-go/pkg/keystore"
	"github.com/fedforum/fedcore-go/pkg/protocol"
	"github.com/fedforum/fedcore-go/pkg/signer"
)

// EvictionChannel is the bus channel carrying retry-queue eviction
// broadcasts. The payload is a JSON array of evicted queue keys.
const EvictionChannel = "federation:retry-queue:evict"

// ActorResolver maps a local actor reference to its URI; satisfied by
// resolver.Resolver.
type ActorResolver interface {
	ResolveActor(actorType string, id int64) (string, error)
}

// Deps are the collaborators a Manager is built from. Clock defaults to
// the wall clock and Bus to a process-local one when left nil.
type Deps struct {
	Config *config.Config
	Keys   *keystore.KeyStore
	Signer signer.RequestSigner
	Users  directory.UserDirectory
	Actors directory.ActorDirectory
	Actor  ActorResolver
	Bus    bus.Bus
	Clock  clock.Clock
	Logger zerolog.Logger
}

// Manager delivers activities to remote inboxes: inbox resolution with
// shared-inbox preference, signed fan-out in paced batches, and a
// bounded, cluster-aware retry queue with exponential backoff.
type Manager struct {
	cfg    *config.Config
	keys   *keystore.KeyStore
	signer signer.RequestSigner
	users  directory.UserDirectory
	actors directory.ActorDirectory
	actor  ActorResolver
	bus    bus.Bus
	clock  clock.Clock
	http   *resty.Client
	log    zerolog.Logger

	queue *cache.Cache[string, *pendingRetry]
}

// New builds a Manager and subscribes it to the eviction channel so that
// evictions performed anywhere in the cluster cancel local retry timers.
func New(deps Deps) (*Manager, error) {
	if deps.Signer == nil {
		deps.Signer = signer.NewCavageSigner()
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.Bus == nil {
		deps.Bus = bus.NewLocalBus()
	}

	m := &Manager{
		cfg:    deps.Config,
		keys:   deps.Keys,
		signer: deps.Signer,
		users:  deps.Users,
		actors: deps.Actors,
		actor:  deps.Actor,
		bus:    deps.Bus,
		clock:  deps.Clock,
		http:   resty.New(),
		log:    deps.Logger.With().Str("component", "delivery").Logger(),
	}
	m.queue = cache.New[string, *pendingRetry](deps.Config.RetryQueueSize, deps.Config.RetryQueueTTL, m.onEvict)

	if err := m.bus.Subscribe(EvictionChannel, m.onEvictionBroadcast); err != nil {
		return nil, fmt.Errorf("subscribe eviction channel: %w", err)
	}
	return m, nil
}

// ResolveInboxes maps target actor URIs to the set of inboxes to deliver
// to. Self-hosted actors are excluded unless loopback delivery is
// configured; each remaining actor's shared inbox is preferred over its
// personal one, and duplicates collapse.
func (m *Manager) ResolveInboxes(ctx context.Context, actorURIs []string) ([]string, error) {
	if !m.cfg.AllowLoopback {
		kept := actorURIs[:0:0]
		for _, id := range actorURIs {
			u, err := url.Parse(id)
			if err != nil || u.Hostname() == m.cfg.Hostname() {
				continue
			}
			kept = append(kept, id)
		}
		actorURIs = kept
	}
	if len(actorURIs) == 0 {
		return nil, nil
	}

	if err := m.actors.Assert(ctx, actorURIs); err != nil {
		return nil, fmt.Errorf("assert actors: %w", err)
	}

	var inboxes []string
	seen := make(map[string]struct{})
	err := batch.ProcessArray(ctx, actorURIs, func(ctx context.Context, chunk []string) error {
		fields, err := m.users.UsersFields(ctx, chunk, []string{"inbox", "sharedInbox"})
		if err != nil {
			return err
		}
		for _, u := range fields {
			inbox := u["sharedInbox"]
			if inbox == "" {
				inbox = u["inbox"]
			}
			if inbox == "" {
				continue
			}
			if _, dup := seen[inbox]; !dup {
				seen[inbox] = struct{}{}
				inboxes = append(inboxes, inbox)
			}
		}
		return nil
	}, batch.Options{Batch: m.cfg.LookupBatchSize})
	if err != nil {
		return nil, err
	}
	return inboxes, nil
}

// Send wraps payload with the ActivityStreams context and the sending
// actor's URI, then delivers it to every resolved inbox in paced batches.
// Per-destination failures never surface here; they feed the retry queue
// and are observable only through logs and PendingRetries.
func (m *Manager) Send(ctx context.Context, actorType string, actorID int64, targets []string, payload protocol.Object) error {
	inboxes, err := m.ResolveInboxes(ctx, targets)
	if err != nil {
		return err
	}

	actorURI, err := m.actor.ResolveActor(actorType, actorID)
	if err != nil {
		return err
	}

	envelope := protocol.Object{"@context": protocol.ContextURI, "actor": actorURI}
	for k, v := range payload {
		envelope[k] = v
	}
	if envelope.ID() == "" {
		envelope["id"] = m.cfg.BaseURL + "/activity/" + uuid.NewString()
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal activity: %w", err)
	}
	msg := &message{
		actorType:   actorType,
		actorID:     actorID,
		body:        body,
		payloadType: envelope.Type(),
		payloadID:   envelope.ID(),
	}

	return batch.ProcessArray(ctx, inboxes, func(_ context.Context, chunk []string) error {
		var wg sync.WaitGroup
		for _, inbox := range chunk {
			inbox := inbox
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.sendMessage(inbox, msg, 1)
			}()
		}
		wg.Wait()
		return nil
	}, batch.Options{Batch: m.cfg.DeliveryBatchSize, Interval: m.cfg.DeliveryBatchInterval})
}

// message is one signed payload in flight to many inboxes.
type message struct {
	actorType   string
	actorID     int64
	body        []byte
	payloadType string
	payloadID   string
}

// sendMessage signs and POSTs one payload to one inbox, feeding the
// retry queue on failure. It deliberately returns nothing.
func (m *Manager) sendMessage(inboxURI string, msg *message, attempt int) {
	err := m.post(inboxURI, msg)
	if err == nil {
		m.log.Debug().Str("inbox", inboxURI).Str("type", msg.payloadType).Msg("delivered")
		m.clearRetry(m.queueKey(msg, inboxURI))
		return
	}

	m.log.Warn().Err(err).Str("inbox", inboxURI).Str("type", msg.payloadType).
		Int("attempt", attempt).Msg("delivery failed")
	m.scheduleRetry(inboxURI, msg, attempt)
}

func (m *Manager) post(inboxURI string, msg *message) error {
	key, err := m.keys.PrivateKey(context.Background(), msg.actorType, msg.actorID)
	if err != nil {
		return err
	}
	hdrs, err := m.signer.Sign(key, inboxURI, msg.body)
	if err != nil {
		return err
	}

	resp, err := m.http.R().
		SetHeader("Content-Type", protocol.ContentTypeLDJSON).
		SetHeader("Date", hdrs.Date).
		SetHeader("Digest", hdrs.Digest).
		SetHeader("Signature", hdrs.Signature).
		SetBody(msg.body).
		Post(inboxURI)
	if err != nil {
		return protocol.NewFetchError(0, err)
	}
	if !resp.IsSuccess() {
		return protocol.NewFetchError(resp.StatusCode(), nil)
	}
	return nil
}

func (m *Manager) queueKey(msg *message, inboxURI string) string {
	host := ""
	if u, err := url.Parse(inboxURI); err == nil {
		host = u.Hostname()
	}
	return fmt.Sprintf("%s:%s:%s", msg.payloadType, msg.payloadID, host)
}
