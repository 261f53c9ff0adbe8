package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/models"
)

const busesPath = "/buses"

// httpBusRepository is the [BusRepository] backed by the /buses endpoints.
type httpBusRepository struct {
	api adapter.APIClient
}

// NewHTTPBusRepository returns a [BusRepository] that sends every call
// through api.
func NewHTTPBusRepository(api adapter.APIClient) BusRepository {
	return &httpBusRepository{api: api}
}

// List asks the API for the filtered fleet and applies filter again to the
// answer, so servers that ignore query parameters still yield a filtered
// list.
func (r *httpBusRepository) List(ctx context.Context, filter models.BusFilter) ([]models.Bus, error) {
	buses, err := adapter.Call[[]models.Bus](ctx, r.api, http.MethodGet, withQuery(busesPath, filter.Query()), nil)
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", mapAPIError(err))
	}
	return keep(buses, filter.Match), nil
}

func (r *httpBusRepository) Get(ctx context.Context, id int64) (models.Bus, error) {
	if err := checkID(id); err != nil {
		return models.Bus{}, err
	}
	bus, err := adapter.Call[models.Bus](ctx, r.api, http.MethodGet, itemPath(busesPath, id), nil)
	if err != nil {
		return models.Bus{}, fmt.Errorf("get bus %d: %w", id, mapAPIError(err))
	}
	return bus, nil
}

func (r *httpBusRepository) Create(ctx context.Context, bus models.Bus) (models.Bus, error) {
	created, err := adapter.Call[models.Bus](ctx, r.api, http.MethodPost, busesPath, bus)
	if err != nil {
		return models.Bus{}, fmt.Errorf("create bus: %w", mapAPIError(err))
	}
	return created, nil
}

func (r *httpBusRepository) Update(ctx context.Context, id int64, bus models.Bus) (models.Bus, error) {
	if err := checkID(id); err != nil {
		return models.Bus{}, err
	}
	updated, err := adapter.Call[models.Bus](ctx, r.api, http.MethodPut, itemPath(busesPath, id), bus)
	if err != nil {
		return models.Bus{}, fmt.Errorf("update bus %d: %w", id, mapAPIError(err))
	}
	return updated, nil
}

func (r *httpBusRepository) UpdateStatus(ctx context.Context, id int64, status models.BusStatus) (models.Bus, error) {
	if err := checkID(id); err != nil {
		return models.Bus{}, err
	}
	updated, err := adapter.Call[models.Bus](ctx, r.api, http.MethodPatch, itemPath(busesPath, id)+"/status", models.BusStatusUpdate{Status: status})
	if err != nil {
		return models.Bus{}, fmt.Errorf("update bus %d status: %w", id, mapAPIError(err))
	}
	return updated, nil
}

func (r *httpBusRepository) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, err := adapter.Exec(ctx, r.api, http.MethodDelete, itemPath(busesPath, id), nil); err != nil {
		return fmt.Errorf("delete bus %d: %w", id, mapAPIError(err))
	}
	return nil
}
