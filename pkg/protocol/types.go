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

// Object is a generic ActivityStreams object as received off the wire or
// produced by a serializer. Remote servers attach vocabulary we do not
// model, so the representation stays schemaless; the accessors below cover
// the fields the federation core actually dispatches on.
type Object map[string]any

// Str returns the string value of a top-level field, or "" when the field
// is absent or not a string.
func (o Object) Str(key string) string {
	v, _ := o[key].(string)
	return v
}

// ID returns the object's canonical id.
func (o Object) ID() string { return o.Str("id") }

// Type returns the object's ActivityStreams type.
func (o Object) Type() string { return o.Str("type") }

// Attribution returns attributedTo when present, falling back to actor.
// Some implementations attribute objects one way, some the other.
func (o Object) Attribution() string {
	if v := o.Str("attributedTo"); v != "" {
		return v
	}
	return o.Str("actor")
}

// PublicKeyPem extracts publicKey.publicKeyPem from a fetched actor
// object. The second return is false when no embedded key exists.
func (o Object) PublicKeyPem() (string, bool) {
	nested, ok := o["publicKey"].(map[string]any)
	if !ok {
		return "", false
	}
	pem, ok := nested["publicKeyPem"].(string)
	return pem, ok && pem != ""
}

// PublicKey is the key object embedded in actor representations.
type PublicKey struct {
	// ID is the URI of the key resource, conventionally the actor URI
	// with a #key fragment
	ID string `json:"id"`

	// Owner is the actor URI this key belongs to
	Owner string `json:"owner"`

	// PublicKeyPem is the SPKI-encoded public key
	PublicKeyPem string `json:"publicKeyPem"`
}

// WebFingerLink is one entry of a WebFinger resource's links collection.
type WebFingerLink struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"`
}

// WebFingerResource is the JSON body returned by a
// /.well-known/webfinger query.
type WebFingerResource struct {
	Subject   string          `json:"subject"`
	Aliases   []string        `json:"aliases,omitempty"`
	Links     []WebFingerLink `json:"links"`
	PublicKey *PublicKey      `json:"publicKey,omitempty"`
}
