package http

import (
	"github.com/MKhiriev/go-bus-schedule/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// set before mounting so sub-routers inherit them
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/me", h.me)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			admin := authorize(models.RoleAdmin)

			r.Route("/buses", func(r chi.Router) {
				r.Get("/", h.listBuses)
				r.Get("/{id}", h.getBus)
				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Post("/", h.createBus)
					r.Put("/{id}", h.updateBus)
					r.Patch("/{id}/status", h.updateBusStatus)
					r.Delete("/{id}", h.deleteBus)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", h.listSchedules)
				r.Get("/{id}", h.getSchedule)
				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Post("/", h.createSchedule)
					r.Put("/{id}", h.updateSchedule)
					r.Patch("/{id}/status", h.updateScheduleStatus)
					r.Delete("/{id}", h.deleteSchedule)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/drivers", h.listDrivers)
				r.Get("/{id}", h.getUser)
				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Get("/", h.listUsers)
					r.Put("/{id}", h.updateUser)
					r.Delete("/{id}", h.deleteUser)
				})
			})

			r.Route("/admin/dashboard", func(r chi.Router) {
				r.Use(admin)
				r.Get("/stats", h.dashboardStats)
				r.Get("/activities", h.dashboardActivities)
			})
		})
	})

	return router
}
