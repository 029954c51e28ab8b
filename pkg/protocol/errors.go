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

package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference marks a malformed or non-existent local/remote
	// identifier.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidActorReference marks a bad actor type/id pair passed to a
	// key or actor-URI operation.
	ErrInvalidActorReference = errors.New("invalid actor reference")

	// ErrNotImplemented marks an unsupported embedded activity kind.
	ErrNotImplemented = errors.New("not implemented")

	// ErrKeyNotFound is returned when a fetched remote object lacks the
	// expected embedded public key.
	ErrKeyNotFound = errors.New("public key not found")

	// ErrFetchFailed is the sentinel all FetchError values unwrap to.
	ErrFetchFailed = errors.New("fetch failed")
)

// FetchError reports a failed remote GET. StatusCode is the HTTP status
// when the remote answered with a non-2xx response, and zero when the
// failure happened below HTTP (transport, parse).
type FetchError struct {
	StatusCode int
	cause      error
}

// NewFetchError builds a FetchError. Either status or cause may be zero.
func NewFetchError(status int, cause error) *FetchError {
	return &FetchError{StatusCode: status, cause: cause}
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed: status %d", e.StatusCode)
	}
	if e.cause != nil {
		return fmt.Sprintf("fetch failed: %v", e.cause)
	}
	return "fetch failed"
}

// Unwrap lets errors.Is(err, ErrFetchFailed) and errors.As both work.
func (e *FetchError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return ErrFetchFailed
}

// Is reports true for ErrFetchFailed regardless of the wrapped cause.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
