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

// Package verifier authenticates inbound federation requests carrying
// draft-cavage Signature headers.
//
//	keys := client.New(cfg, keyStore, logger) // satisfies verifier.KeyFetcher
//	v := verifier.New(keys, logger)
//
//	if !v.Verify(r.Context(), r) {
//	    http.Error(w, "unauthorized", http.StatusUnauthorized)
//	    return
//	}
//
// Verification resolves the signer's public key by dereferencing the
// header's keyId as a remote ActivityPub object and reading its embedded
// publicKey.publicKeyPem. The result is a bare boolean: this is a
// security gate, so every failure mode collapses to false and the cause
// is visible only in debug logs.
package verifier
