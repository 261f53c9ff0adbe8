package service

import (
	"context"

	"github.com/MKhiriev/go-bus-schedule/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates accounts of the fixture API and issues their
// tokens.
type AuthService interface {
	// RegisterUser validates req, defaulting an empty role to client, and
	// creates the account. A taken email yields [ErrUserAlreadyExists].
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login returns the account matching the credentials. Unknown emails and
	// wrong passwords both yield [ErrWrongPassword].
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies tokenString. Expired tokens yield
	// [ErrTokenIsExpired], any other defect [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// CurrentUser loads the account a verified token belongs to.
	CurrentUser(ctx context.Context, userID int64) (models.User, error)
}

// DashboardService computes the admin dashboard.
type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
	// Activities returns up to limit recent activities, newest first.
	Activities(ctx context.Context, limit int) ([]models.Activity, error)
}
