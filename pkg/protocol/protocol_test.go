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
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Object accessors against a wire-shaped payload
func TestObjectAccessors(t *testing.T) {
	raw := `{
		"id": "https://remote.example/notes/1",
		"type": "Note",
		"attributedTo": "https://remote.example/users/bob",
		"actor": "https://remote.example/users/ignored",
		"content": 42
	}`
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))

	assert.Equal(t, "https://remote.example/notes/1", obj.ID())
	assert.Equal(t, "Note", obj.Type())
	assert.Equal(t, "https://remote.example/users/bob", obj.Attribution())

	// Non-string fields read as ""
	assert.Equal(t, "", obj.Str("content"))
	assert.Equal(t, "", obj.Str("missing"))
}

// Test Attribution falls back to actor when attributedTo is absent
func TestObjectAttributionFallback(t *testing.T) {
	obj := Object{"actor": "https://remote.example/users/carol"}
	assert.Equal(t, "https://remote.example/users/carol", obj.Attribution())

	assert.Equal(t, "", Object{}.Attribution())
}

func TestObjectPublicKeyPem(t *testing.T) {
	t.Run("embedded key", func(t *testing.T) {
		var obj Object
		raw := `{"publicKey": {"id": "https://r.example/u/1#key", "publicKeyPem": "-----BEGIN PUBLIC KEY-----"}}`
		require.NoError(t, json.Unmarshal([]byte(raw), &obj))

		pem, ok := obj.PublicKeyPem()
		assert.True(t, ok)
		assert.Equal(t, "-----BEGIN PUBLIC KEY-----", pem)
	})

	t.Run("no key object", func(t *testing.T) {
		_, ok := Object{"type": "Person"}.PublicKeyPem()
		assert.False(t, ok)
	})

	t.Run("empty pem", func(t *testing.T) {
		obj := Object{"publicKey": map[string]any{"publicKeyPem": ""}}
		_, ok := obj.PublicKeyPem()
		assert.False(t, ok)
	})
}

// Test media type acceptance covers exactly the two ActivityPub types
func TestIsAcceptableType(t *testing.T) {
	assert.True(t, IsAcceptableType(ContentTypeActivityJSON))
	assert.True(t, IsAcceptableType(ContentTypeLDJSON))

	assert.False(t, IsAcceptableType("application/json"))
	assert.False(t, IsAcceptableType("text/html"))
	assert.False(t, IsAcceptableType(""))
}

func TestFetchError(t *testing.T) {
	t.Run("status error", func(t *testing.T) {
		err := NewFetchError(404, nil)
		assert.Equal(t, "fetch failed: status 404", err.Error())
		assert.True(t, errors.Is(err, ErrFetchFailed))

		var fe *FetchError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, 404, fe.StatusCode)
	})

	t.Run("transport error", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := NewFetchError(0, cause)
		assert.True(t, errors.Is(err, ErrFetchFailed))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, 0, err.StatusCode)
	})

	t.Run("wrapped still matches", func(t *testing.T) {
		wrapped := fmt.Errorf("resolve object: %w", NewFetchError(410, nil))
		assert.True(t, errors.Is(wrapped, ErrFetchFailed))
	})
}
