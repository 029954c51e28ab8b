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

// Example: deliver a signed Follow activity to a remote actor.
//
// Usage:
//
//	federated-send https://remote.example/users/bob
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/config"
	"github.com/fedforum/fedcore-go/pkg/delivery"
	"github.com/fedforum/fedcore-go/pkg/keystore"
	"github.com/fedforum/fedcore-go/pkg/protocol"
	"github.com/fedforum/fedcore-go/pkg/resolver"
	"github.com/fedforum/fedcore-go/pkg/store"
)

// staticDirectory is a toy user/actor directory for the example: one
// local user, and every remote actor URI doubles as its own inbox.
type staticDirectory struct{}

func (staticDirectory) UIDByUserslug(_ context.Context, slug string) (int64, error) {
	if slug == "alice" {
		return 7, nil
	}
	return 0, nil
}

func (staticDirectory) Exists(_ context.Context, uid int64) (bool, error) { return uid == 7, nil }

func (staticDirectory) UsersFields(_ context.Context, ids []string, _ []string) ([]map[string]string, error) {
	fields := make([]map[string]string, len(ids))
	for i, id := range ids {
		fields[i] = map[string]string{"inbox": id + "/inbox"}
	}
	return fields, nil
}

func (staticDirectory) Assert(_ context.Context, _ []string) error { return nil }

func main() {
	fmt.Println("fedcore-go - Federated Send Example")
	fmt.Println("===================================")

	if len(os.Args) < 2 {
		fmt.Println("usage: federated-send <remote-actor-uri>")
		os.Exit(1)
	}
	target := os.Args[1]

	logger := zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	fmt.Println("\n1. Configuring local instance...")
	cfg, err := config.New(config.Config{BaseURL: "https://forum.example.org"})
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	fmt.Println("2. Opening in-memory object store and keystore...")
	st := store.NewMemStore()
	keys := keystore.New(st, cfg, logger)

	dir := staticDirectory{}
	res := resolver.New(resolver.Deps{
		Config: cfg,
		Users:  dir,
		Logger: logger,
	})

	fmt.Println("3. Building delivery manager...")
	mgr, err := delivery.New(delivery.Deps{
		Config: cfg,
		Keys:   keys,
		Users:  dir,
		Actors: dir,
		Actor:  res,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("delivery")
	}
	defer mgr.Close()

	fmt.Printf("4. Sending Follow to %s...\n", target)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = mgr.Send(ctx, protocol.ActorTypeUser, 7, []string{target}, protocol.Object{
		"type":   "Follow",
		"object": target,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("send")
	}

	pending := mgr.PendingRetries()
	if len(pending) == 0 {
		fmt.Println("\n✅ Delivered (no retries pending)")
		return
	}
	fmt.Println("\n⏳ Delivery queued for retry:")
	for _, p := range pending {
		fmt.Printf("   %s (attempt %d, due %s)\n", p.Key, p.Attempts, p.Due.Format(time.RFC3339))
	}
}
