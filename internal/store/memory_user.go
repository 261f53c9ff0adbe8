package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/MKhiriev/go-bus-schedule/models"
)

type userRecord struct {
	user         models.User
	passwordHash string
}

// MemoryUserRepository is the in-memory [CredentialRepository]. Emails are
// unique, compared case-insensitively. Passwords are kept as bcrypt hashes.
type MemoryUserRepository struct {
	users *table[userRecord]
}

// NewMemoryUserRepository returns an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: newTable[userRecord]()}
}

func (r *MemoryUserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	r.users.mu.RLock()
	defer r.users.mu.RUnlock()

	return toUsers(r.users.list(func(rec userRecord) bool { return filter.Match(rec.user) })), nil
}

func (r *MemoryUserRepository) Drivers(ctx context.Context) ([]models.User, error) {
	return r.List(ctx, models.UserFilter{Role: string(models.RoleDriver)})
}

func (r *MemoryUserRepository) Get(ctx context.Context, id int64) (models.User, error) {
	if err := checkID(id); err != nil {
		return models.User{}, err
	}

	r.users.mu.RLock()
	defer r.users.mu.RUnlock()

	rec, ok := r.users.rows[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return rec.user, nil
}

// Create hashes req.Password and stores the account. An empty role becomes
// client and an empty status becomes active.
func (r *MemoryUserRepository) Create(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	user := models.User{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Status: models.UserStatusActive,
	}
	if user.Role == "" {
		user.Role = models.RoleClient
	}

	return r.insert(user, hash)
}

func (r *MemoryUserRepository) insert(user models.User, hash string) (models.User, error) {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	if r.emailTaken(0, user.Email) {
		return models.User{}, ErrAlreadyExists
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	rec := r.users.insert(userRecord{user: user, passwordHash: hash}, func(rec *userRecord, id int64) { rec.user.ID = id })
	return rec.user, nil
}

// Update replaces the profile of the account. The password is kept.
func (r *MemoryUserRepository) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	if err := checkID(id); err != nil {
		return models.User{}, err
	}

	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	rec, ok := r.users.rows[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	if r.emailTaken(id, user.Email) {
		return models.User{}, ErrAlreadyExists
	}

	user.ID = id
	user.Password = ""
	if user.Status == "" {
		user.Status = rec.user.Status
	}
	rec.user = user
	r.users.rows[id] = rec
	return user, nil
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}

	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	if _, ok := r.users.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.users.rows, id)
	return nil
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (models.User, string, error) {
	r.users.mu.RLock()
	defer r.users.mu.RUnlock()

	for _, rec := range r.users.rows {
		if strings.EqualFold(rec.user.Email, email) {
			return rec.user, rec.passwordHash, nil
		}
	}
	return models.User{}, "", ErrNotFound
}

func (r *MemoryUserRepository) emailTaken(exclude int64, email string) bool {
	return r.users.exists(exclude, func(rec userRecord) bool {
		return strings.EqualFold(rec.user.Email, email)
	})
}

func toUsers(recs []userRecord) []models.User {
	users := make([]models.User, len(recs))
	for i, rec := range recs {
		users[i] = rec.user
	}
	return users
}
