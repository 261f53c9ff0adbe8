package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/internal/workers"
	"github.com/MKhiriev/go-bus-schedule/models"
)

const (
	dashboardStatsPath      = "/admin/dashboard/stats"
	dashboardActivitiesPath = "/admin/dashboard/activities"
)

type clientDashboardService struct {
	api adapter.APIClient
}

func NewClientDashboardService(api adapter.APIClient) ClientDashboardService {
	return &clientDashboardService{api: api}
}

func (d *clientDashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	stats, err := adapter.Call[models.DashboardStats](ctx, d.api, http.MethodGet, dashboardStatsPath, nil)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("load dashboard stats: %w", err)
	}
	return stats, nil
}

func (d *clientDashboardService) Activities(ctx context.Context) ([]models.Activity, error) {
	activities, err := adapter.Call[[]models.Activity](ctx, d.api, http.MethodGet, dashboardActivitiesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("load dashboard activities: %w", err)
	}
	return activities, nil
}

func (d *clientDashboardService) Overview(ctx context.Context) (models.DashboardOverview, error) {
	statsTask := workers.Go(ctx, d.Stats)
	activitiesTask := workers.Go(ctx, d.Activities)

	stats, statsErr := statsTask.Wait(ctx)
	activities, activitiesErr := activitiesTask.Wait(ctx)
	if err := errors.Join(statsErr, activitiesErr); err != nil {
		return models.DashboardOverview{}, err
	}

	return models.DashboardOverview{Stats: stats, Activities: activities}, nil
}
