// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the repositories for buses, schedules and users.
//
// Every repository interface has two implementations:
//   - an HTTP implementation that talks to the API through
//     [adapter.APIClient] and is used by the client;
//   - an in-memory implementation that is seeded with fixture data, backs the
//     fixture API server and serves as a test double.
//
// Both report a missing record as [ErrNotFound] and a duplicate as
// [ErrAlreadyExists].
package store

import (
	"context"

	"github.com/MKhiriev/go-bus-schedule/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BusRepository manages the bus fleet.
type BusRepository interface {
	List(ctx context.Context, filter models.BusFilter) ([]models.Bus, error)
	Get(ctx context.Context, id int64) (models.Bus, error)
	Create(ctx context.Context, bus models.Bus) (models.Bus, error)
	Update(ctx context.Context, id int64, bus models.Bus) (models.Bus, error)
	UpdateStatus(ctx context.Context, id int64, status models.BusStatus) (models.Bus, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository manages trips.
type ScheduleRepository interface {
	List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, error)
	// Search lists schedules by route endpoints and departure date. Empty
	// arguments do not constrain the result.
	Search(ctx context.Context, from, to, date string) ([]models.Schedule, error)
	Get(ctx context.Context, id int64) (models.Schedule, error)
	Create(ctx context.Context, schedule models.Schedule) (models.Schedule, error)
	Update(ctx context.Context, id int64, schedule models.Schedule) (models.Schedule, error)
	// UpdateStatus changes the status. Reason and DelayMinutes of update are
	// only meaningful for the delayed status.
	UpdateStatus(ctx context.Context, id int64, update models.ScheduleStatusUpdate) (models.Schedule, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository manages accounts.
type UserRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	// Drivers lists the accounts with the driver role.
	Drivers(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	// Create adds an account with the password carried by req.
	Create(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Update(ctx context.Context, id int64, user models.User) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// CredentialRepository is the server-side view of accounts used to
// authenticate logins.
type CredentialRepository interface {
	UserRepository
	// FindByEmail returns the account registered under email, matched
	// case-insensitively, together with its password hash.
	FindByEmail(ctx context.Context, email string) (user models.User, passwordHash string, err error)
}

// ActivityRepository keeps the audit trail shown on the admin dashboard.
type ActivityRepository interface {
	Record(ctx context.Context, activity models.Activity) error
	// Recent returns up to limit activities, newest first.
	Recent(ctx context.Context, limit int) ([]models.Activity, error)
}
