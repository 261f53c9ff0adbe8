package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/models"
)

const usersPath = "/users"

type httpUserRepository struct {
	api adapter.APIClient
}

// NewHTTPUserRepository returns a [UserRepository] backed by the /users
// endpoints. Listing all users requires an admin session; listing drivers
// only requires an authenticated one.
func NewHTTPUserRepository(api adapter.APIClient) UserRepository {
	return &httpUserRepository{api: api}
}

func (r *httpUserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := adapter.Call[[]models.User](ctx, r.api, http.MethodGet, withQuery(usersPath, filter.Query()), nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", mapAPIError(err))
	}
	return keep(users, filter.Match), nil
}

func (r *httpUserRepository) Drivers(ctx context.Context) ([]models.User, error) {
	users, err := adapter.Call[[]models.User](ctx, r.api, http.MethodGet, usersPath+"/drivers", nil)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", mapAPIError(err))
	}
	return users, nil
}

func (r *httpUserRepository) Get(ctx context.Context, id int64) (models.User, error) {
	if err := checkID(id); err != nil {
		return models.User{}, err
	}
	user, err := adapter.Call[models.User](ctx, r.api, http.MethodGet, itemPath(usersPath, id), nil)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, mapAPIError(err))
	}
	return user, nil
}

// Create registers a new account through /auth/register, the only endpoint
// that accepts a password. The session is not touched.
func (r *httpUserRepository) Create(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.User{}, fmt.Errorf("encode user: %w", err)
	}

	raw, err := r.api.Do(ctx, http.MethodPost, "/auth/register", body)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", mapAPIError(err))
	}

	resp, err := adapter.DecodeAuthResponse(raw)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return *resp.User, nil
}

func (r *httpUserRepository) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	if err := checkID(id); err != nil {
		return models.User{}, err
	}
	updated, err := adapter.Call[models.User](ctx, r.api, http.MethodPut, itemPath(usersPath, id), user)
	if err != nil {
		return models.User{}, fmt.Errorf("update user %d: %w", id, mapAPIError(err))
	}
	return updated, nil
}

func (r *httpUserRepository) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, err := adapter.Exec(ctx, r.api, http.MethodDelete, itemPath(usersPath, id), nil); err != nil {
		return fmt.Errorf("delete user %d: %w", id, mapAPIError(err))
	}
	return nil
}
