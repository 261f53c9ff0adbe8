package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/models"
)

// DefaultActivitiesLimit is the number of activities returned when the
// caller does not ask for a specific amount.
const DefaultActivitiesLimit = 20

type dashboardService struct {
	users      store.UserRepository
	buses      store.BusRepository
	schedules  store.ScheduleRepository
	activities store.ActivityRepository
	now        func() time.Time
}

func NewDashboardService(users store.UserRepository, buses store.BusRepository, schedules store.ScheduleRepository, activities store.ActivityRepository) DashboardService {
	return &dashboardService{
		users:      users,
		buses:      buses,
		schedules:  schedules,
		activities: activities,
		now:        time.Now,
	}
}

// Stats counts users, buses and schedules. Active schedules are those still
// in the scheduled status; today's trips are the schedules departing on the
// current local date.
func (d *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	users, err := d.users.List(ctx, models.UserFilter{})
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("count users: %w", err)
	}
	buses, err := d.buses.List(ctx, models.BusFilter{})
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("count buses: %w", err)
	}
	schedules, err := d.schedules.List(ctx, models.ScheduleFilter{})
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("count schedules: %w", err)
	}

	totals := models.DashboardTotals{
		Users:     len(users),
		Buses:     len(buses),
		Schedules: len(schedules),
	}
	today := d.now().Format(time.DateOnly)
	for _, s := range schedules {
		if s.Status == models.ScheduleStatusScheduled {
			totals.ActiveSchedules++
		}
		if s.DepartureDate() == today {
			totals.TodaysTrips++
		}
	}

	return models.DashboardStats{Totals: totals}, nil
}

func (d *dashboardService) Activities(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivitiesLimit
	}
	activities, err := d.activities.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	return activities, nil
}
