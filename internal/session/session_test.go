package session

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/MKhiriev/go-bus-schedule/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin  = models.User{ID: 1, Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin}
	driver = models.User{ID: 2, Name: "Driver One", Email: "driver1@example.com", Role: models.RoleDriver}
	client = models.User{ID: 3, Name: "Client One", Email: "client1@example.com", Role: models.RoleClient}
)

func TestStore_ZeroValueIsAnonymous(t *testing.T) {
	var s Store

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, Snapshot{}, s.Snapshot())
}

func TestStore_SetAndRead(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Set("token-1", admin))

	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, admin, user)
	assert.Equal(t, "token-1", s.Token())
	assert.True(t, s.IsAuthenticated())

	snap := s.Snapshot()
	assert.Equal(t, "token-1", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, admin, *snap.User)
}

func TestStore_SetRejectsEmptyToken(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set("token-1", admin))

	assert.ErrorIs(t, s.Set("", driver), ErrEmptyToken)

	user, _ := s.CurrentUser()
	assert.Equal(t, admin, user, "a rejected Set must leave the session untouched")
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set("token-1", admin))

	snap := s.Snapshot()
	snap.User.Name = "changed"

	user, _ := s.CurrentUser()
	assert.Equal(t, "Admin User", user.Name)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set("token-1", admin))

	s.Clear()
	s.Clear()

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.Token())
	assert.False(t, s.IsAdmin())
}

func TestStore_RolePredicates(t *testing.T) {
	tests := []struct {
		name                    string
		user                    *models.User
		admin, operator, client bool
	}{
		{name: "anonymous"},
		{name: "admin", user: &admin, admin: true},
		{name: "driver", user: &driver, operator: true},
		{name: "client", user: &client, client: true},
		{name: "mixed case role", user: &models.User{ID: 9, Role: "ADMIN"}, admin: true},
		{name: "unknown role", user: &models.User{ID: 9, Role: "auditor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			if tt.user != nil {
				require.NoError(t, s.Set("token", *tt.user))
			}

			assert.Equal(t, tt.admin, s.IsAdmin())
			assert.Equal(t, tt.operator, s.IsOperator())
			assert.Equal(t, tt.client, s.IsClient())

			trueCount := 0
			for _, b := range []bool{s.IsAdmin(), s.IsOperator(), s.IsClient()} {
				if b {
					trueCount++
				}
			}
			assert.LessOrEqual(t, trueCount, 1, "role predicates are mutually exclusive")
		})
	}
}

func TestStore_ExpiresAt(t *testing.T) {
	s := NewStore()

	_, ok := s.ExpiresAt()
	assert.False(t, ok, "anonymous store has no expiry")

	token, err := utils.GenerateJWTToken("issuer", admin.ID, time.Hour, "key")
	require.NoError(t, err)
	require.NoError(t, s.Set(token.SignedString, admin))

	expiresAt, ok := s.ExpiresAt()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	require.NoError(t, s.Set("opaque-token", admin))
	_, ok = s.ExpiresAt()
	assert.False(t, ok)
}

// TestStore_WriteVisibleFromOtherGoroutine verifies that a session set on one
// goroutine is observed by a later read on another.
func TestStore_WriteVisibleFromOtherGoroutine(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set("token-1", admin))

	done := make(chan string)
	go func() { done <- s.Token() }()

	assert.Equal(t, "token-1", <-done)
}

// TestStore_ConcurrentReadersSeeConsistentSnapshots hammers the store with
// writers and readers and checks that token and user always travel together.
func TestStore_ConcurrentReadersSeeConsistentSnapshots(t *testing.T) {
	s := NewStore()
	users := map[string]models.User{"token-admin": admin, "token-driver": driver}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for token, user := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_ = s.Set(token, user)
					s.Clear()
				}
			}
		}()
	}

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				snap := s.Snapshot()
				if snap.Token == "" {
					assert.Nil(t, snap.User)
					continue
				}
				if assert.NotNil(t, snap.User) {
					assert.Equal(t, users[snap.Token], *snap.User)
				}
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(stop)
	wg.Wait()
}
