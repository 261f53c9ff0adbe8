package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role" validate:"required,oneof=admin client driver"`
}

// AuthResponse is returned by the login and registration endpoints and by
// the client auth service.
//
// User and Token are present if and only if Success is true.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

// FailedAuth builds an unsuccessful [AuthResponse] carrying message.
func FailedAuth(message string) AuthResponse {
	return AuthResponse{Success: false, Message: message}
}

// Authenticated reports whether the response carries a usable identity.
func (r AuthResponse) Authenticated() bool {
	return r.Success && r.User != nil && r.Token != ""
}
