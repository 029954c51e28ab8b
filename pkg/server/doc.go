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

// Package server provides the inbound HTTP glue: middleware that gates
// inbox endpoints behind HTTP-signature verification.
//
//	v := verifier.New(fetcher, logger)
//	mw := server.NewSignatureMiddleware(v, logger)
//	mux.Handle("/inbox", mw.Wrap(inboxHandler))
//
// The middleware reads and restores the request body so the wrapped
// handler sees it intact.
package server
