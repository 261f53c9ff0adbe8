package service

import (
	"github.com/MKhiriev/go-bus-schedule/internal/config"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
)

// Services is the business layer of the fixture API. Every repository is
// wrapped so that input is validated first and successful changes are
// recorded as dashboard activities.
type Services struct {
	AuthService      AuthService
	BusService       store.BusRepository
	ScheduleService  store.ScheduleRepository
	UserService      store.UserRepository
	DashboardService DashboardService
}

func NewServices(memory *store.Memory, cfg config.FakeAPIConfig, validator validators.Validator, logger *logger.Logger) *Services {
	users := NewUserValidationService(NewUserActivityService(memory.Users, memory.Activities), validator)

	return &Services{
		AuthService:      NewAuthService(users, memory.Users, validator, cfg.Auth, logger),
		BusService:       NewBusValidationService(NewBusActivityService(memory.Buses, memory.Activities), validator),
		ScheduleService:  NewScheduleValidationService(NewScheduleActivityService(memory.Schedules, memory.Activities), validator),
		UserService:      users,
		DashboardService: NewDashboardService(memory.Users, memory.Buses, memory.Schedules, memory.Activities),
	}
}
