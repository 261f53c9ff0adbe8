// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the outbound API client of the bus schedule admin
// client.
//
// [APIClient] sends one request against the configured base URL, attaches
// the bearer token of the current session when there is one, and returns the
// raw response body for 2xx answers. Any other outcome is an [*APIError]:
// StatusCode 0 for transport failures, the HTTP status otherwise. Callers
// match failures with [errors.Is] against the sentinels in errors.go or
// extract the typed error with [errors.As].
//
// [DecodeEnvelope] and [Call] decode the {success, message, data} envelope
// shared by every endpoint.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient sends HTTP requests to the bus schedule API.
type APIClient interface {
	// Do sends method to path (relative to the base URL) with an optional
	// JSON body and returns the response body text unmodified when the
	// status is 2xx. A nil body sends no payload.
	//
	// Do blocks until the response arrives, the timeout elapses or ctx is
	// done. It never retries and never modifies the session.
	Do(ctx context.Context, method, path string, body []byte) (string, error)
}

// TokenSource provides the bearer token attached to outgoing requests. An
// empty token means the request is sent without an Authorization header.
type TokenSource interface {
	Token() string
}
