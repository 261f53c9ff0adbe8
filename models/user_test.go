package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PasswordIsNeverSerialized(t *testing.T) {
	u := User{
		ID:       7,
		Name:     "Admin User",
		Email:    "admin@example.com",
		Phone:    "+1234567890",
		Role:     RoleAdmin,
		Status:   UserStatusActive,
		Password: "secret-password",
	}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "secret-password")

	var back User
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Empty(t, back.Password)

	u.Password = ""
	assert.Equal(t, u, back)
}

func TestUser_PasswordInInputIsIgnored(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"A","email":"a@b.c","password":"x"}`), &u))
	assert.Empty(t, u.Password)
}

func TestUser_String(t *testing.T) {
	u := User{Name: "Jane", Email: "jane@example.com"}
	assert.Equal(t, "Jane (jane@example.com)", u.String())
}

func TestRole_Is(t *testing.T) {
	assert.True(t, Role("ADMIN").Is(RoleAdmin))
	assert.True(t, Role("Driver").Is(RoleDriver))
	assert.False(t, Role("client").Is(RoleAdmin))
	assert.False(t, Role("").Is(RoleClient))
}

func TestRegisterRequest_SerializesPassword(t *testing.T) {
	req := RegisterRequest{Name: "N", Email: "n@example.com", Password: "secret1", Phone: "1", Role: RoleClient}

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"N","email":"n@example.com","password":"secret1","phone":"1","role":"client"}`, string(b))
}

func TestAuthResponse_Decode(t *testing.T) {
	body := `{"success":true,"message":"Login successful","token":"tkn","user":{"id":1,"name":"Admin User","email":"admin@example.com","phone":"+1","role":"admin"}}`

	var resp AuthResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.True(t, resp.Authenticated())
	assert.Equal(t, "tkn", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, RoleAdmin, resp.User.Role)
}

func TestAuthResponse_FailedIsNotAuthenticated(t *testing.T) {
	resp := FailedAuth("Invalid credentials")
	assert.False(t, resp.Authenticated())
	assert.Nil(t, resp.User)
	assert.Empty(t, resp.Token)
	assert.Equal(t, "Invalid credentials", resp.Message)
}
