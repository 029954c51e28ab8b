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

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fedforum/fedcore-go/pkg/keystore"
)

// CavageSigner implements RequestSigner in the draft-cavage header form
// still spoken across the fediverse: the canonical string covers
// (request-target), host and date, plus a SHA-256 digest line when a body
// is present, and the header advertises the abstract hs2019 algorithm.
type CavageSigner struct {
	// now is swappable for deterministic tests.
	now func() time.Time
}

var _ RequestSigner = (*CavageSigner)(nil)

// NewCavageSigner creates a signer using the wall clock.
func NewCavageSigner() *CavageSigner {
	return &CavageSigner{now: time.Now}
}

// Sign builds the canonical signing string for targetURL, signs it with
// the actor's RSA key (PKCS#1 v1.5, SHA-256) and returns the headers to
// apply to the request.
func (s *CavageSigner) Sign(key *keystore.SigningKey, targetURL string, body []byte) (*SignedHeaders, error) {
	if key == nil || key.Key == nil {
		return nil, fmt.Errorf("sign: nil key")
	}
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("sign: parse target: %w", err)
	}

	date := s.now().UTC().Format(time.RFC1123)
	// RFC1123 in Go renders "UTC"; the header convention is "GMT".
	date = strings.Replace(date, "UTC", "GMT", 1)

	method := "get"
	if body != nil {
		method = "post"
	}
	path := u.Path
	if path == "" {
		path = "/"
	}

	headerList := "(request-target) host date"
	var lines []string
	lines = append(lines,
		fmt.Sprintf("(request-target): %s %s", method, path),
		fmt.Sprintf("host: %s", u.Host),
		fmt.Sprintf("date: %s", date),
	)

	digest := ""
	if body != nil {
		sum := sha256.Sum256(body)
		digest = "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:])
		headerList += " digest"
		lines = append(lines, fmt.Sprintf("digest: %s", digest))
	}

	signingString := strings.Join(lines, "\n")
	hashed := sha256.Sum256([]byte(signingString))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key.Key, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	header := fmt.Sprintf(`keyId="%s",headers="%s",signature="%s",algorithm="hs2019"`,
		key.KeyID, headerList, base64.StdEncoding.EncodeToString(sig))

	return &SignedHeaders{Date: date, Digest: digest, Signature: header}, nil
}
