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

// Package signer produces draft-cavage HTTP signatures for outbound
// federation requests.
//
// # Signing a request
//
//	s := signer.NewCavageSigner()
//	key, _ := keys.PrivateKey(ctx, protocol.ActorTypeUser, 7)
//	body, _ := json.Marshal(activity)
//
//	hdrs, err := s.Sign(key, "https://remote.example/inbox", body)
//	// apply hdrs.Date, hdrs.Digest, hdrs.Signature to the request
//
// GET requests sign (request-target), host and date. POST requests
// additionally sign a digest line holding the base64 SHA-256 of the body,
// so the signed bytes and the sent bytes must be identical.
//
// # Wire format
//
//	Signature: keyId="https://local.example/uid/7#key",
//	           headers="(request-target) host date digest",
//	           signature="base64…",algorithm="hs2019"
//
// The algorithm is advertised as the abstract hs2019 marker; peers derive
// the real algorithm from the key, which for this library is always
// RSA-SHA256. The verifier package implements the receiving side.
package signer
