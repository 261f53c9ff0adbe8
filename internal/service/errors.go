package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserAlreadyExists   = errors.New("user already exists")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotAuthenticated is returned by client calls that need a session
	// when there is none.
	ErrNotAuthenticated = errors.New("not authenticated")
)
