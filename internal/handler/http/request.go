package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/go-chi/chi/v5"
)

func decodeBody(r *http.Request, v any) error {
	if err := utils.DecodeJSON(r, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// idParam parses the {id} path segment.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, store.ErrInvalidID
	}
	return id, nil
}
