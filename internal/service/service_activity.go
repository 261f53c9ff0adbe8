package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/utils"
	"github.com/MKhiriev/go-bus-schedule/models"
)

// systemActor names the author of changes made outside an authenticated
// request, such as self-registration.
const systemActor = "System"

// activityRecorder appends dashboard activities. A failed write is logged
// and never fails the change that triggered it.
type activityRecorder struct {
	activities store.ActivityRepository
	now        func() time.Time
}

func (r activityRecorder) record(ctx context.Context, text string) {
	actor := systemActor
	if user, ok := utils.GetUserFromContext(ctx); ok {
		actor = user.Name
	}

	activity := models.Activity{
		Timestamp: r.now().UTC().Format(time.RFC3339),
		Activity:  text,
		User:      actor,
	}
	if err := r.activities.Record(ctx, activity); err != nil {
		logger.FromContext(ctx).Err(err).Str("activity", text).Msg("activity was not recorded")
	}
}

type busActivityService struct {
	store.BusRepository
	recorder activityRecorder
}

// NewBusActivityService records "Bus <number> added to fleet" and similar
// entries for every successful change made through inner.
func NewBusActivityService(inner store.BusRepository, activities store.ActivityRepository) store.BusRepository {
	return &busActivityService{BusRepository: inner, recorder: activityRecorder{activities: activities, now: time.Now}}
}

func (s *busActivityService) Create(ctx context.Context, bus models.Bus) (models.Bus, error) {
	created, err := s.BusRepository.Create(ctx, bus)
	if err == nil {
		s.recorder.record(ctx, "Bus "+created.BusNumber+" added to fleet")
	}
	return created, err
}

func (s *busActivityService) Update(ctx context.Context, id int64, bus models.Bus) (models.Bus, error) {
	updated, err := s.BusRepository.Update(ctx, id, bus)
	if err == nil {
		s.recorder.record(ctx, "Bus "+updated.BusNumber+" updated")
	}
	return updated, err
}

func (s *busActivityService) UpdateStatus(ctx context.Context, id int64, status models.BusStatus) (models.Bus, error) {
	updated, err := s.BusRepository.UpdateStatus(ctx, id, status)
	if err == nil {
		s.recorder.record(ctx, "Bus "+updated.BusNumber+" is now "+string(status))
	}
	return updated, err
}

func (s *busActivityService) Delete(ctx context.Context, id int64) error {
	bus, err := s.BusRepository.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.BusRepository.Delete(ctx, id); err == nil {
		s.recorder.record(ctx, "Bus "+bus.BusNumber+" removed from fleet")
	}
	return err
}

type scheduleActivityService struct {
	store.ScheduleRepository
	recorder activityRecorder
}

// NewScheduleActivityService records schedule changes made through inner.
func NewScheduleActivityService(inner store.ScheduleRepository, activities store.ActivityRepository) store.ScheduleRepository {
	return &scheduleActivityService{ScheduleRepository: inner, recorder: activityRecorder{activities: activities, now: time.Now}}
}

func (s *scheduleActivityService) Create(ctx context.Context, schedule models.Schedule) (models.Schedule, error) {
	created, err := s.ScheduleRepository.Create(ctx, schedule)
	if err == nil {
		s.recorder.record(ctx, "New schedule created for "+created.RouteDisplay())
	}
	return created, err
}

func (s *scheduleActivityService) Update(ctx context.Context, id int64, schedule models.Schedule) (models.Schedule, error) {
	updated, err := s.ScheduleRepository.Update(ctx, id, schedule)
	if err == nil {
		s.recorder.record(ctx, "Schedule "+updated.RouteDisplay()+" updated")
	}
	return updated, err
}

func (s *scheduleActivityService) UpdateStatus(ctx context.Context, id int64, update models.ScheduleStatusUpdate) (models.Schedule, error) {
	updated, err := s.ScheduleRepository.UpdateStatus(ctx, id, update)
	if err == nil {
		s.recorder.record(ctx, "Schedule "+updated.RouteDisplay()+" is now "+string(update.Status))
	}
	return updated, err
}

func (s *scheduleActivityService) Delete(ctx context.Context, id int64) error {
	schedule, err := s.ScheduleRepository.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.ScheduleRepository.Delete(ctx, id); err == nil {
		s.recorder.record(ctx, "Schedule "+schedule.RouteDisplay()+" deleted")
	}
	return err
}

type userActivityService struct {
	store.UserRepository
	recorder activityRecorder
}

// NewUserActivityService records account changes made through inner.
func NewUserActivityService(inner store.UserRepository, activities store.ActivityRepository) store.UserRepository {
	return &userActivityService{UserRepository: inner, recorder: activityRecorder{activities: activities, now: time.Now}}
}

func (s *userActivityService) Create(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	created, err := s.UserRepository.Create(ctx, req)
	if err == nil {
		s.recorder.record(ctx, "User "+created.Name+" registered")
	}
	return created, err
}

func (s *userActivityService) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	updated, err := s.UserRepository.Update(ctx, id, user)
	if err == nil {
		s.recorder.record(ctx, "User "+updated.Name+" updated")
	}
	return updated, err
}

func (s *userActivityService) Delete(ctx context.Context, id int64) error {
	user, err := s.UserRepository.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.UserRepository.Delete(ctx, id); err == nil {
		s.recorder.record(ctx, "User "+user.Name+" deleted")
	}
	return err
}
