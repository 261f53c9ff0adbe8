package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/app"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/MKhiriev/go-bus-schedule/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and loads the account it belongs to.
// On success the account is stored in the request context with
// [utils.WithUser] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent or malformed, when the token has expired or is otherwise invalid,
// and when the account no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token")
			writeMessage(w, r, app.MsgNoToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Debug().Err(err).Msg("token expired")
				writeMessage(w, r, app.MsgTokenExpired, http.StatusUnauthorized)
				return
			}
			log.Debug().Err(err).Msg("error occurred during parsing token")
			writeMessage(w, r, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.CurrentUser(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Debug().Int64("user_id", token.UserID).Msg("token of a removed account")
				writeMessage(w, r, app.MsgInvalidToken, http.StatusUnauthorized)
				return
			}
			writeError(w, r, err, userResource)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// authorize lets through only accounts holding one of roles. It must run
// after auth.
func authorize(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if ok {
				for _, role := range roles {
					if user.Role.Is(role) {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			logger.FromRequest(r).Debug().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("access denied")
			writeMessage(w, r, app.MsgAccessDenied, http.StatusForbidden)
		})
	}
}
