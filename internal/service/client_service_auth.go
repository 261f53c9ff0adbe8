package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/session"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
	"github.com/MKhiriev/go-bus-schedule/models"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	mePath       = "/auth/me"
)

type clientAuthService struct {
	api       adapter.APIClient
	session   *session.Store
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(api adapter.APIClient, sess *session.Store, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{api: api, session: sess, validator: validator, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) models.AuthResponse {
	req := models.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := a.validator.Validate(ctx, req); err != nil {
		a.logger.Debug().Err(err).Msg("login input rejected")
		return models.FailedAuth(authFailureMessage(err))
	}

	return a.authenticate(ctx, loginPath, req)
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) models.AuthResponse {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Role == "" {
		req.Role = models.RoleClient
	}

	if err := a.validator.Validate(ctx, req); err != nil {
		a.logger.Debug().Err(err).Msg("registration input rejected")
		return models.FailedAuth(authFailureMessage(err))
	}

	return a.authenticate(ctx, registerPath, req)
}

// authenticate posts payload to path and installs the answer as the new
// session when it is a complete success.
func (a *clientAuthService) authenticate(ctx context.Context, path string, payload any) models.AuthResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.FailedAuth(fmt.Sprintf("encode request: %v", err))
	}

	raw, err := a.api.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		a.logger.Err(err).Str("path", path).Msg("authentication request failed")
		return models.FailedAuth(authFailureMessage(err))
	}

	resp, err := adapter.DecodeAuthResponse(raw)
	if err != nil {
		a.logger.Err(err).Str("path", path).Msg("authentication answer rejected")
		return models.FailedAuth(authFailureMessage(err))
	}

	if err = a.session.Set(resp.Token, *resp.User); err != nil {
		return models.FailedAuth(authFailureMessage(err))
	}

	a.logger.Info().Int64("user_id", resp.User.ID).Str("role", string(resp.User.Role)).Msg("signed in")
	return resp
}

func (a *clientAuthService) Logout() {
	if user, ok := a.session.CurrentUser(); ok {
		a.logger.Info().Int64("user_id", user.ID).Msg("signed out")
	}
	a.session.Clear()
}

type meResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

func (a *clientAuthService) Me(ctx context.Context) (models.User, error) {
	token := a.session.Token()
	if token == "" {
		return models.User{}, ErrNotAuthenticated
	}

	raw, err := a.api.Do(ctx, http.MethodGet, mePath, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("load current user: %w", err)
	}

	var resp meResponse
	if err = json.Unmarshal([]byte(raw), &resp); err != nil {
		return models.User{}, &adapter.DecodeError{Body: raw, Err: err}
	}
	if !resp.Success || resp.User == nil {
		return models.User{}, &adapter.UnsuccessfulError{Message: resp.Message}
	}

	// A concurrent logout or re-login wins over this refresh.
	if a.session.Token() == token {
		if err = a.session.Set(token, *resp.User); err != nil {
			return models.User{}, err
		}
	}
	return *resp.User, nil
}
