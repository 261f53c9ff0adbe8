package service

import (
	"context"

	"github.com/MKhiriev/go-bus-schedule/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the authentication gate of the client. It is the only
// component that writes the session.
type ClientAuthService interface {
	// Login validates the credentials, posts them to /auth/login and, on
	// success, replaces the session with the returned token and user.
	//
	// Every failure (invalid input, transport, non-2xx status, unreadable
	// answer, "success": false) is reported as an unsuccessful response
	// with a human-readable message, and leaves the session untouched.
	Login(ctx context.Context, email, password string) models.AuthResponse

	// Register is Login for /auth/register: the new account is signed in
	// on success.
	Register(ctx context.Context, req models.RegisterRequest) models.AuthResponse

	// Logout clears the session unconditionally. It never fails and may be
	// called any number of times.
	Logout()

	// Me reloads the signed-in user from /auth/me and stores it in the
	// session next to the current token. It returns [ErrNotAuthenticated]
	// without calling the API when there is no session.
	Me(ctx context.Context) (models.User, error)
}

// ClientDashboardService loads the admin dashboard.
type ClientDashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
	Activities(ctx context.Context) ([]models.Activity, error)
	// Overview loads stats and activities concurrently. It fails when
	// either call fails.
	Overview(ctx context.Context) (models.DashboardOverview, error)
}
