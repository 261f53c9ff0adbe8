// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models against the rules declared in
// their `validate` struct tags before they are sent to, or accepted by, the
// API.
//
// Rules come from the models package: required names, well-formed e-mail
// addresses, passwords of at least six characters, roles and statuses drawn
// from their fixed sets. Failures are returned as a [*ValidationError] that
// matches [ErrInvalidInput] and lists every offending field by its JSON name.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates obj and optionally restricts the reported failures
	// to the named JSON fields.
	Validate(ctx context.Context, obj any, fields ...string) error
}
