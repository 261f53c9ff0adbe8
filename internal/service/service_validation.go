package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
	"github.com/MKhiriev/go-bus-schedule/models"
)

// The validation services check input before it reaches the wrapped
// repository. Failures match [ErrInvalidDataProvided] and
// [validators.ErrInvalidInput]; reads pass through unchanged.

type busValidationService struct {
	store.BusRepository
	validator validators.Validator
}

func NewBusValidationService(inner store.BusRepository, validator validators.Validator) store.BusRepository {
	return &busValidationService{BusRepository: inner, validator: validator}
}

func (v *busValidationService) Create(ctx context.Context, bus models.Bus) (models.Bus, error) {
	if err := validate(ctx, v.validator, bus); err != nil {
		return models.Bus{}, err
	}
	return v.BusRepository.Create(ctx, bus)
}

func (v *busValidationService) Update(ctx context.Context, id int64, bus models.Bus) (models.Bus, error) {
	if err := validate(ctx, v.validator, bus); err != nil {
		return models.Bus{}, err
	}
	return v.BusRepository.Update(ctx, id, bus)
}

func (v *busValidationService) UpdateStatus(ctx context.Context, id int64, status models.BusStatus) (models.Bus, error) {
	if err := validate(ctx, v.validator, models.BusStatusUpdate{Status: status}); err != nil {
		return models.Bus{}, err
	}
	return v.BusRepository.UpdateStatus(ctx, id, status)
}

type scheduleValidationService struct {
	store.ScheduleRepository
	validator validators.Validator
}

func NewScheduleValidationService(inner store.ScheduleRepository, validator validators.Validator) store.ScheduleRepository {
	return &scheduleValidationService{ScheduleRepository: inner, validator: validator}
}

func (v *scheduleValidationService) Create(ctx context.Context, schedule models.Schedule) (models.Schedule, error) {
	if err := validate(ctx, v.validator, schedule); err != nil {
		return models.Schedule{}, err
	}
	return v.ScheduleRepository.Create(ctx, schedule)
}

func (v *scheduleValidationService) Update(ctx context.Context, id int64, schedule models.Schedule) (models.Schedule, error) {
	if err := validate(ctx, v.validator, schedule); err != nil {
		return models.Schedule{}, err
	}
	return v.ScheduleRepository.Update(ctx, id, schedule)
}

func (v *scheduleValidationService) UpdateStatus(ctx context.Context, id int64, update models.ScheduleStatusUpdate) (models.Schedule, error) {
	if err := validate(ctx, v.validator, update); err != nil {
		return models.Schedule{}, err
	}
	return v.ScheduleRepository.UpdateStatus(ctx, id, update)
}

type userValidationService struct {
	store.UserRepository
	validator validators.Validator
}

func NewUserValidationService(inner store.UserRepository, validator validators.Validator) store.UserRepository {
	return &userValidationService{UserRepository: inner, validator: validator}
}

func (v *userValidationService) Create(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := validate(ctx, v.validator, req); err != nil {
		return models.User{}, err
	}
	return v.UserRepository.Create(ctx, req)
}

func (v *userValidationService) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	if err := validate(ctx, v.validator, user); err != nil {
		return models.User{}, err
	}
	return v.UserRepository.Update(ctx, id, user)
}

func validate(ctx context.Context, validator validators.Validator, obj any) error {
	if err := validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
