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

// Example: run an inbox endpoint that rejects unsigned or tampered
// requests using HTTP signature verification.
//
// Every incoming POST must carry a draft-cavage signature; the signer's
// public key is fetched from its actor document and the request is
// rejected with 401 when verification fails.
//
// Usage:
//
//	verify-inbox            # listens on :8080
//	verify-inbox :9000      # custom listen address
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/client"
	"github.com/fedforum/fedcore-go/pkg/config"
	"github.com/fedforum/fedcore-go/pkg/keystore"
	"github.com/fedforum/fedcore-go/pkg/protocol"
	"github.com/fedforum/fedcore-go/pkg/server"
	"github.com/fedforum/fedcore-go/pkg/store"
	"github.com/fedforum/fedcore-go/pkg/verifier"
)

func main() {
	fmt.Println("fedcore-go - Inbox Verification Example")
	fmt.Println("=======================================")

	addr := ":8080"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	logger := zerolog.New(os.Stderr).Level(zerolog.DebugLevel).With().Timestamp().Logger()

	cfg, err := config.New(config.Config{BaseURL: "https://forum.example.org"})
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	st := store.NewMemStore()
	keys := keystore.New(st, cfg, logger)
	fetcher := client.New(cfg, keys, logger)

	ver := verifier.New(fetcher, logger)
	mw := server.NewSignatureMiddleware(ver, logger)

	inbox := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		var activity protocol.Object
		if err := json.Unmarshal(body, &activity); err != nil {
			http.Error(w, "malformed activity", http.StatusBadRequest)
			return
		}
		logger.Info().
			Str("id", activity.ID()).
			Str("type", activity.Type()).
			Msg("accepted activity")
		w.WriteHeader(http.StatusAccepted)
	})

	mux := http.NewServeMux()
	mux.Handle("/inbox", mw.Wrap(inbox))

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	fmt.Printf("\nListening on %s (POST /inbox)\n", addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server")
	}
}
