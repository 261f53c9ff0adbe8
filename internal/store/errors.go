package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
)

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when a record collides with an existing
	// one on a unique attribute (user email, bus number, license plate).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrInvalidID is returned for ids below 1.
	ErrInvalidID = errors.New("invalid id")
)

// mapAPIError translates API failures into repository sentinels while
// keeping the original error in the chain.
func mapAPIError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	default:
		return err
	}
}
