package service

import (
	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/session"
	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/internal/validators"
)

// ClientServices is what a front-end needs: the session to read identity
// and roles from, the auth gate that writes it, and the resource services.
type ClientServices struct {
	Session   *session.Store
	Auth      ClientAuthService
	Buses     store.BusRepository
	Schedules store.ScheduleRepository
	Users     store.UserRepository
	Dashboard ClientDashboardService
}

// NewClientServices wires every client service to api. api must read its
// bearer token from sess.
func NewClientServices(api adapter.APIClient, sess *session.Store, validator validators.Validator, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Session:   sess,
		Auth:      NewClientAuthService(api, sess, validator, logger),
		Buses:     NewBusValidationService(store.NewHTTPBusRepository(api), validator),
		Schedules: NewScheduleValidationService(store.NewHTTPScheduleRepository(api), validator),
		Users:     NewUserValidationService(store.NewHTTPUserRepository(api), validator),
		Dashboard: NewClientDashboardService(api),
	}
}
