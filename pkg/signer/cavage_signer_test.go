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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedforum/fedcore-go/pkg/keystore"
)

func testSigningKey(t *testing.T) *keystore.SigningKey {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &keystore.SigningKey{Key: priv, KeyID: "https://forum.example.org/uid/1#key"}
}

func fixedSigner(at time.Time) *CavageSigner {
	s := NewCavageSigner()
	s.now = func() time.Time { return at }
	return s
}

func parseHeader(header string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(part, `="`)
		if found {
			fields[key] = strings.TrimSuffix(value, `"`)
		}
	}
	return fields
}

// Test GET signatures cover (request-target) host date and no digest
func TestSignGet(t *testing.T) {
	key := testSigningKey(t)
	s := fixedSigner(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))

	hdrs, err := s.Sign(key, "https://remote.example/users/bob", nil)
	require.NoError(t, err)

	assert.Equal(t, "Sat, 14 Mar 2026 09:26:53 GMT", hdrs.Date)
	assert.Empty(t, hdrs.Digest)

	fields := parseHeader(hdrs.Signature)
	assert.Equal(t, key.KeyID, fields["keyId"])
	assert.Equal(t, "(request-target) host date", fields["headers"])
	assert.Equal(t, "hs2019", fields["algorithm"])
	assert.NotEmpty(t, fields["signature"])
}

// Test POST signatures add a verifiable SHA-256 digest line
func TestSignPost(t *testing.T) {
	key := testSigningKey(t)
	s := fixedSigner(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	body := []byte(`{"type":"Follow"}`)

	hdrs, err := s.Sign(key, "https://remote.example/inbox", body)
	require.NoError(t, err)

	sum := sha256.Sum256(body)
	assert.Equal(t, "SHA-256="+base64.StdEncoding.EncodeToString(sum[:]), hdrs.Digest)

	fields := parseHeader(hdrs.Signature)
	assert.Equal(t, "(request-target) host date digest", fields["headers"])
}

// Test the produced signature checks out against the canonical string
func TestSignatureVerifiesAgainstCanonicalString(t *testing.T) {
	key := testSigningKey(t)
	s := fixedSigner(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	body := []byte(`{"type":"Create"}`)

	hdrs, err := s.Sign(key, "https://remote.example/inbox", body)
	require.NoError(t, err)
	fields := parseHeader(hdrs.Signature)

	canonical := strings.Join([]string{
		"(request-target): post /inbox",
		"host: remote.example",
		fmt.Sprintf("date: %s", hdrs.Date),
		fmt.Sprintf("digest: %s", hdrs.Digest),
	}, "\n")

	sig, err := base64.StdEncoding.DecodeString(fields["signature"])
	require.NoError(t, err)
	hashed := sha256.Sum256([]byte(canonical))
	assert.NoError(t, rsa.VerifyPKCS1v15(&key.Key.PublicKey, crypto.SHA256, hashed[:], sig))
}

// Test an empty path signs as /
func TestSignRootPath(t *testing.T) {
	key := testSigningKey(t)
	s := fixedSigner(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))

	hdrs, err := s.Sign(key, "https://remote.example", nil)
	require.NoError(t, err)
	fields := parseHeader(hdrs.Signature)

	canonical := strings.Join([]string{
		"(request-target): get /",
		"host: remote.example",
		fmt.Sprintf("date: %s", hdrs.Date),
	}, "\n")

	sig, err := base64.StdEncoding.DecodeString(fields["signature"])
	require.NoError(t, err)
	hashed := sha256.Sum256([]byte(canonical))
	assert.NoError(t, rsa.VerifyPKCS1v15(&key.Key.PublicKey, crypto.SHA256, hashed[:], sig))
}

func TestSignNilKey(t *testing.T) {
	s := NewCavageSigner()
	_, err := s.Sign(nil, "https://remote.example/inbox", nil)
	assert.Error(t, err)

	_, err = s.Sign(&keystore.SigningKey{}, "https://remote.example/inbox", nil)
	assert.Error(t, err)
}
