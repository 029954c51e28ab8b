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

// Package delivery fans activities out to remote inboxes and keeps
// retrying destinations that fail.
//
//	mgr, _ := delivery.New(delivery.Deps{
//	    Config: cfg, Keys: keys, Users: users, Actors: actors,
//	    Actor: res, Bus: clusterBus, Logger: logger,
//	})
//	err := mgr.Send(ctx, protocol.ActorTypeUser, 7,
//	    []string{"https://remote.example/users/bob"},
//	    protocol.Object{"type": "Follow", "object": "https://remote.example/users/bob"})
//
// Send resolves target inboxes (shared inbox preferred, loopback
// excluded unless configured), signs the payload per destination and
// POSTs in batches of 50 with 100 ms pacing. A failed destination goes
// into the retry queue under "{type}:{id}:{host}" and is retried
// 4^attempt seconds later, up to 12 attempts (roughly two months), then
// abandoned. Callers never see per-destination outcomes; the queue and
// the logs are the record.
//
// The retry queue is a bounded LRU with a 60-day TTL. Evicting an entry,
// for any reason, cancels its scheduled retransmission and broadcasts
// the key over the bus so every other process sharing the queue cancels
// its own timer too; without the broadcast, one process's eviction
// would leave zombie timers on its peers and produce duplicate sends.
package delivery
