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

// Package keystore owns the per-actor RSA keypair lifecycle: lazy
// generation on first access, persistence in the object store, and keyId
// URI computation. Keys are never rotated; once a keypair is persisted
// for an actor it must keep being served, because remote instances cache
// the public half indefinitely.
package keystore

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/config"
	"github.com/fedforum/fedcore-go/pkg/protocol"
	"github.com/fedforum/fedcore-go/pkg/store"
)

const keyBits = 2048

// SigningKey bundles a parsed private key with the keyId URI remote
// verifiers will dereference.
type SigningKey struct {
	Key   *rsa.PrivateKey
	KeyID string
}

// KeyStore issues and serves actor keypairs.
type KeyStore struct {
	store store.ObjectStore
	cfg   *config.Config
	log   zerolog.Logger
}

// New builds a KeyStore on the given object store.
func New(st store.ObjectStore, cfg *config.Config, log zerolog.Logger) *KeyStore {
	return &KeyStore{store: st, cfg: cfg, log: log.With().Str("component", "keystore").Logger()}
}

// PublicKey returns the PEM public key for an actor, generating and
// persisting a keypair on first access.
func (k *KeyStore) PublicKey(ctx context.Context, actorType string, id int64) (string, error) {
	pair, err := k.loadOrGenerate(ctx, actorType, id)
	if err != nil {
		return "", err
	}
	return pair["publicKey"], nil
}

// PrivateKey returns the actor's parsed private key together with its
// keyId URI. Only the two local actor kinds with non-negative ids may
// sign; anything else fails with ErrInvalidActorReference.
func (k *KeyStore) PrivateKey(ctx context.Context, actorType string, id int64) (*SigningKey, error) {
	if (actorType != protocol.ActorTypeUser && actorType != protocol.ActorTypeCategory) || id < 0 {
		return nil, fmt.Errorf("%w: %s:%d", protocol.ErrInvalidActorReference, actorType, id)
	}

	pair, err := k.loadOrGenerate(ctx, actorType, id)
	if err != nil {
		return nil, err
	}
	key, err := parsePrivatePEM(pair["privateKey"])
	if err != nil {
		return nil, fmt.Errorf("parse stored private key for %s:%d: %w", actorType, id, err)
	}

	return &SigningKey{Key: key, KeyID: k.KeyID(actorType, id)}, nil
}

// KeyID computes the key resource URI for a local actor. Uid 0 is the
// instance actor and lives under the reserved /actor path.
func (k *KeyStore) KeyID(actorType string, id int64) string {
	base := k.cfg.BaseURL
	if actorType == protocol.ActorTypeCategory {
		return fmt.Sprintf("%s/category/%d#key", base, id)
	}
	if id > 0 {
		return fmt.Sprintf("%s/uid/%d#key", base, id)
	}
	return base + "/actor#key"
}

func storageKey(actorType string, id int64) string {
	return fmt.Sprintf("%s:%d:keys", actorType, id)
}

// loadOrGenerate reads the persisted keypair, generating one on a miss.
// There is no lock around the generate-then-persist window; a concurrent
// first access can waste a keypair, but signing always re-reads the
// persisted value so both flows stay consistent.
func (k *KeyStore) loadOrGenerate(ctx context.Context, actorType string, id int64) (map[string]string, error) {
	key := storageKey(actorType, id)
	pair, err := k.store.GetObject(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load keypair %s: %w", key, err)
	}
	if pair["publicKey"] != "" && pair["privateKey"] != "" {
		return pair, nil
	}

	k.log.Debug().Str("actor", key).Msg("generating RSA keypair")
	pair, err = generatePair()
	if err != nil {
		return nil, fmt.Errorf("generate keypair %s: %w", key, err)
	}
	if err := k.store.SetObject(ctx, key, pair); err != nil {
		return nil, fmt.Errorf("persist keypair %s: %w", key, err)
	}
	return pair, nil
}

func generatePair() (map[string]string, error) {
	priv, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, err
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, err
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"publicKey":  string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})),
		"privateKey": string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})),
	}, nil
}

func parsePrivatePEM(pemStr string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("no PEM block")
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA key")
	}
	return key, nil
}
