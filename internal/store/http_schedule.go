package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/models"
)

const schedulesPath = "/schedules"

type httpScheduleRepository struct {
	api adapter.APIClient
}

// NewHTTPScheduleRepository returns a [ScheduleRepository] backed by the
// /schedules endpoints.
func NewHTTPScheduleRepository(api adapter.APIClient) ScheduleRepository {
	return &httpScheduleRepository{api: api}
}

func (r *httpScheduleRepository) List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, error) {
	schedules, err := adapter.Call[[]models.Schedule](ctx, r.api, http.MethodGet, withQuery(schedulesPath, filter.Query()), nil)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", mapAPIError(err))
	}
	return keep(schedules, filter.Match), nil
}

func (r *httpScheduleRepository) Search(ctx context.Context, from, to, date string) ([]models.Schedule, error) {
	return r.List(ctx, models.ScheduleFilter{From: from, To: to, Date: date})
}

func (r *httpScheduleRepository) Get(ctx context.Context, id int64) (models.Schedule, error) {
	if err := checkID(id); err != nil {
		return models.Schedule{}, err
	}
	s, err := adapter.Call[models.Schedule](ctx, r.api, http.MethodGet, itemPath(schedulesPath, id), nil)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("get schedule %d: %w", id, mapAPIError(err))
	}
	return s, nil
}

func (r *httpScheduleRepository) Create(ctx context.Context, schedule models.Schedule) (models.Schedule, error) {
	created, err := adapter.Call[models.Schedule](ctx, r.api, http.MethodPost, schedulesPath, schedule)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("create schedule: %w", mapAPIError(err))
	}
	return created, nil
}

func (r *httpScheduleRepository) Update(ctx context.Context, id int64, schedule models.Schedule) (models.Schedule, error) {
	if err := checkID(id); err != nil {
		return models.Schedule{}, err
	}
	updated, err := adapter.Call[models.Schedule](ctx, r.api, http.MethodPut, itemPath(schedulesPath, id), schedule)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("update schedule %d: %w", id, mapAPIError(err))
	}
	return updated, nil
}

// UpdateStatus drops Reason and DelayMinutes unless the new status is
// delayed.
func (r *httpScheduleRepository) UpdateStatus(ctx context.Context, id int64, update models.ScheduleStatusUpdate) (models.Schedule, error) {
	if err := checkID(id); err != nil {
		return models.Schedule{}, err
	}
	if update.Status != models.ScheduleStatusDelayed {
		update.Reason, update.DelayMinutes = "", 0
	}
	updated, err := adapter.Call[models.Schedule](ctx, r.api, http.MethodPatch, itemPath(schedulesPath, id)+"/status", update)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("update schedule %d status: %w", id, mapAPIError(err))
	}
	return updated, nil
}

func (r *httpScheduleRepository) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, err := adapter.Exec(ctx, r.api, http.MethodDelete, itemPath(schedulesPath, id), nil); err != nil {
		return fmt.Errorf("delete schedule %d: %w", id, mapAPIError(err))
	}
	return nil
}
