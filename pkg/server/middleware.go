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

package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fedforum/fedcore-go/pkg/verifier"
)

// ErrorHandler responds to a request that failed signature verification.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// SignatureMiddleware gates inbox endpoints behind HTTP-signature
// verification. Verification is fail-closed: any failure denies the
// request unless the middleware is marked optional.
type SignatureMiddleware struct {
	verifier     verifier.SignatureVerifier
	errorHandler ErrorHandler
	optional     bool
	log          zerolog.Logger
}

// NewSignatureMiddleware builds middleware around a verifier.
func NewSignatureMiddleware(v verifier.SignatureVerifier, log zerolog.Logger) *SignatureMiddleware {
	return &SignatureMiddleware{
		verifier:     v,
		errorHandler: defaultErrorHandler,
		log:          log.With().Str("component", "server").Logger(),
	}
}

// SetErrorHandler replaces the default 401 response.
func (m *SignatureMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional lets unsigned requests through. Signed-but-invalid
// requests are still denied.
func (m *SignatureMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap returns a handler that verifies the Signature header before
// invoking next. The request body is preserved for the next handler.
func (m *SignatureMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if r.Header.Get("Signature") == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("missing signature header"))
			return
		}

		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		// The signature only covers the Digest header value, so the
		// body must be checked against it separately.
		if digest := r.Header.Get("Digest"); digest != "" && !digestMatches(digest, bodyBytes) {
			m.log.Debug().Str("path", r.URL.Path).Msg("body digest mismatch denied request")
			m.errorHandler(w, r, fmt.Errorf("body digest mismatch"))
			return
		}

		if !m.verifier.Verify(r.Context(), r) {
			m.log.Debug().Str("path", r.URL.Path).Msg("signature verification denied request")
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			m.errorHandler(w, r, fmt.Errorf("signature verification failed"))
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r)
	})
}

// digestMatches recomputes the body hash for a Digest header. Only
// SHA-256 is spoken locally; a digest in any other algorithm fails.
func digestMatches(header string, body []byte) bool {
	algo, value, found := strings.Cut(header, "=")
	if !found || !strings.EqualFold(algo, "SHA-256") {
		return false
	}
	sum := sha256.Sum256(body)
	return value == base64.StdEncoding.EncodeToString(sum[:])
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
