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

// Package fedcore provides version information for fedcore-go and the
// federation protocols it speaks.
package fedcore

const (
	// Version is the current version of fedcore-go
	Version = "1.0.0-beta"

	// SignatureDraft is the HTTP-signature draft this library implements
	// on the wire.
	// See: https://datatracker.ietf.org/doc/html/draft-cavage-http-signatures-12
	SignatureDraft = "draft-cavage-http-signatures-12"

	// WebFingerPath is the well-known discovery endpoint queried on remote hosts
	WebFingerPath = "/.well-known/webfinger"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	FedcoreVersion string
	SignatureDraft string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		FedcoreVersion: Version,
		SignatureDraft: SignatureDraft,
	}
}
