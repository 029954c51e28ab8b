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

package signer

import "github.com/fedforum/fedcore-go/pkg/keystore"

// SignedHeaders is the header set Sign produces for one request. Apply
// all non-empty fields verbatim; Digest is empty for body-less requests.
type SignedHeaders struct {
	Date      string
	Digest    string
	Signature string
}

// RequestSigner produces the Signature header (and its supporting Date
// and Digest headers) for an outbound request.
//
// A nil body signs a GET; a non-nil body signs a POST of exactly those
// bytes. The caller must send the same bytes it signed; re-serializing
// the payload afterwards would break the digest.
type RequestSigner interface {
	Sign(key *keystore.SigningKey, targetURL string, body []byte) (*SignedHeaders, error)
}
