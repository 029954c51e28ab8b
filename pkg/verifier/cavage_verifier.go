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
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// CavageVerifier implements SignatureVerifier for draft-cavage signature
// headers. Field order in the header is not significant; the signed
// string is reconstructed strictly in the order the headers field
// declares.
type CavageVerifier struct {
	keys KeyFetcher
	log  zerolog.Logger
}

var _ SignatureVerifier = (*CavageVerifier)(nil)

// New builds a verifier resolving signer keys through keys.
func New(keys KeyFetcher, log zerolog.Logger) *CavageVerifier {
	return &CavageVerifier{keys: keys, log: log.With().Str("component", "verifier").Logger()}
}

// digestAlgorithms are the locally supported hashes a peer may declare.
// Anything else, the abstract hs2019 marker included, falls back to
// sha256.
var digestAlgorithms = map[string]crypto.Hash{
	"sha256": crypto.SHA256,
	"sha512": crypto.SHA512,
	"sha1":   crypto.SHA1,
}

// Verify checks the request's Signature header against the signer's
// published public key.
func (v *CavageVerifier) Verify(ctx context.Context, req *http.Request) bool {
	header := req.Header.Get("Signature")
	if header == "" {
		v.log.Debug().Msg("verify failed: no signature header")
		return false
	}

	fields := parseSignatureHeader(header)
	keyID := fields["keyId"]
	headerList := fields["headers"]
	signatureB64 := fields["signature"]
	if keyID == "" || headerList == "" || signatureB64 == "" {
		v.log.Debug().Msg("verify failed: incomplete signature header")
		return false
	}

	hash, ok := digestAlgorithms[fields["algorithm"]]
	if !ok {
		hash = crypto.SHA256
	}

	signingString := reconstructSigningString(req, headerList, fields["created"], fields["expires"])

	v.log.Debug().Str("keyId", keyID).Msg("retrieving public key")
	pemKey, err := v.keys.FetchPublicKey(ctx, keyID)
	if err != nil {
		v.log.Debug().Err(err).Str("keyId", keyID).Msg("verify failed: key retrieval")
		return false
	}
	pub, err := parsePublicPEM(pemKey)
	if err != nil {
		v.log.Debug().Err(err).Str("keyId", keyID).Msg("verify failed: key parse")
		return false
	}

	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		v.log.Debug().Msg("verify failed: signature not base64")
		return false
	}

	hasher := hash.New()
	hasher.Write([]byte(signingString))
	if err := rsa.VerifyPKCS1v15(pub, hash, hasher.Sum(nil), signature); err != nil {
		v.log.Debug().Str("keyId", keyID).Msg("verify failed: signature mismatch")
		return false
	}
	return true
}

// parseSignatureHeader splits `k1="v1",k2="v2",…` into a map. Values may
// themselves contain `="` (base64 padding followed by nothing is fine,
// but header lists contain spaces and keyIds contain URIs), so only the
// first `="` of each segment separates key from value.
func parseSignatureHeader(header string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(part, `="`)
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSuffix(value, `"`)
	}
	return fields
}

// reconstructSigningString rebuilds the canonical string in the declared
// header order, substituting pseudo-headers from request metadata and
// everything else from the literal incoming header values.
func reconstructSigningString(req *http.Request, headerList, created, expires string) string {
	var lines []string
	for _, name := range strings.Split(headerList, " ") {
		switch name {
		case "(request-target)":
			lines = append(lines, fmt.Sprintf("%s: %s %s", name, strings.ToLower(req.Method), req.URL.Path))
		case "(created)":
			lines = append(lines, fmt.Sprintf("%s: %s", name, created))
		case "(expires)":
			lines = append(lines, fmt.Sprintf("%s: %s", name, expires))
		case "host":
			host := req.Header.Get("Host")
			if host == "" {
				host = req.Host
			}
			lines = append(lines, fmt.Sprintf("host: %s", host))
		default:
			lines = append(lines, fmt.Sprintf("%s: %s", name, req.Header.Get(name)))
		}
	}
	return strings.Join(lines, "\n")
}

func parsePublicPEM(pemStr string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("no PEM block")
	}
	// SPKI is what this library issues; some older peers publish PKCS#1.
	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		if pub, ok := parsed.(*rsa.PublicKey); ok {
			return pub, nil
		}
		return nil, fmt.Errorf("not an RSA key")
	}
	return x509.ParsePKCS1PublicKey(block.Bytes)
}
