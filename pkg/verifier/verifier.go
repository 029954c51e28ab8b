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

package verifier

import (
	"context"
	"net/http"
)

// KeyFetcher resolves a keyId URI to the signer's PEM public key. The
// client package's Fetcher satisfies this by dereferencing the URI as a
// remote object and extracting its embedded key.
type KeyFetcher interface {
	FetchPublicKey(ctx context.Context, keyID string) (string, error)
}

// SignatureVerifier checks the Signature header on an inbound request.
//
// Verify is fail-closed and never returns an error: a missing header, an
// unreachable key, a malformed signature and a cryptographic mismatch all
// come back false. The only valid caller reactions are "proceed" and
// "deny", so the reasons stay in the logs.
type SignatureVerifier interface {
	Verify(ctx context.Context, req *http.Request) bool
}
