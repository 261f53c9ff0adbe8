package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/config"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
	"github.com/MKhiriev/go-bus-schedule/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes kept by the credential
// repository and issues HS256 JWTs whose subject is the user ID.
type authService struct {
	// users creates accounts; it may record the registration as an activity.
	users store.UserRepository

	// credentials looks accounts up by email together with their password
	// hash.
	credentials store.CredentialRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. Accounts are created through
// users and looked up through credentials, which may be the same repository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, credentials store.CredentialRepository, validator validators.Validator, cfg config.FakeAPIAuth, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		credentials:   credentials,
		validator:     validator,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided wrapping the validation failure.
//   - ErrUserAlreadyExists if the email is taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Role == "" {
		req.Role = models.RoleClient
	}
	if err := validate(ctx, a.validator, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	registeredUser, err := a.users.Create(ctx, req)
	if errors.Is(err, store.ErrAlreadyExists) {
		log.Debug().Str("email", req.Email).Msg("email already registered")
		return models.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided wrapping the validation failure.
//   - ErrWrongPassword if no account has the email or the password does not
//     match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, a.validator, req); err != nil {
		log.Debug().Err(err).Msg("invalid login data provided")
		return models.User{}, err
	}

	foundUser, hash, err := a.credentials.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("email", req.Email).Msg("unknown email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(hash, req.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("stored password hash is unusable")
		return models.User{}, err
	}
	if !ok {
		log.Debug().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string, verifying the signature
// and the issuer claim. Low-level JWT errors are normalised so that callers
// only need to tell an expired token from any other invalid one.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.credentials.Get(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("load user %d: %w", userID, err)
	}
	return user, nil
}
