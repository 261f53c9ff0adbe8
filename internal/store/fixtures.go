package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bus-schedule/models"
)

// FixturePassword is the password of every seeded account.
const FixturePassword = "password123"

// Memory groups the in-memory repositories served by the fixture API.
type Memory struct {
	Buses      *MemoryBusRepository
	Schedules  *MemoryScheduleRepository
	Users      *MemoryUserRepository
	Activities *MemoryActivityRepository
}

// NewMemory returns empty repositories.
func NewMemory() *Memory {
	return &Memory{
		Buses:      NewMemoryBusRepository(),
		Schedules:  NewMemoryScheduleRepository(),
		Users:      NewMemoryUserRepository(),
		Activities: NewMemoryActivityRepository(DefaultActivityCapacity),
	}
}

// NewSeededMemory returns repositories holding the fixture fleet: three
// accounts (one per role, all with [FixturePassword]), three buses and two
// schedules.
func NewSeededMemory(ctx context.Context) (*Memory, error) {
	m := NewMemory()
	if err := m.Seed(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Seed inserts the fixture records.
func (m *Memory) Seed(ctx context.Context) error {
	users := make(map[models.Role]models.User, len(fixtureUsers))
	for _, u := range fixtureUsers {
		created, err := m.Users.Create(ctx, models.RegisterRequest{
			Name:     u.Name,
			Email:    u.Email,
			Password: FixturePassword,
			Phone:    u.Phone,
			Role:     u.Role,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		users[u.Role] = created
	}

	buses := make([]models.Bus, 0, len(fixtureBuses))
	for _, b := range fixtureBuses {
		created, err := m.Buses.Create(ctx, b)
		if err != nil {
			return fmt.Errorf("seed bus %s: %w", b.BusNumber, err)
		}
		buses = append(buses, created)
	}

	driver := users[models.RoleDriver]
	for i, s := range fixtureSchedules {
		s.Bus = &buses[i]
		s.Driver = &driver
		if _, err := m.Schedules.Create(ctx, s); err != nil {
			return fmt.Errorf("seed schedule %s: %w", s.RouteDisplay(), err)
		}
	}

	return nil
}

var fixtureUsers = []models.User{
	{Name: "Admin User", Email: "admin@example.com", Phone: "+1234567890", Role: models.RoleAdmin},
	{Name: "Client User", Email: "client@example.com", Phone: "+1234567891", Role: models.RoleClient},
	{Name: "Driver User", Email: "driver@example.com", Phone: "+1234567892", Role: models.RoleDriver},
}

var fixtureBuses = []models.Bus{
	{
		BusNumber:    "BUS001",
		LicensePlate: "ABC123",
		Model:        "Mercedes Tourismo",
		Capacity:     50,
		Type:         "Luxury",
		FuelType:     "diesel",
		Year:         2022,
		Status:       models.BusStatusActive,
		Amenities:    []string{"wifi", "ac", "charging_ports", "toilet"},
		DriverName:   "John Doe",
	},
	{
		BusNumber:    "BUS002",
		LicensePlate: "DEF456",
		Model:        "Volvo 9700",
		Capacity:     45,
		Type:         "Standard",
		FuelType:     "diesel",
		Year:         2021,
		Status:       models.BusStatusActive,
		Amenities:    []string{"ac", "charging_ports"},
		DriverName:   "Jane Smith",
	},
	{
		BusNumber:    "BUS003",
		LicensePlate: "GHI789",
		Model:        "Scania Interlink",
		Capacity:     40,
		Type:         "Standard",
		FuelType:     "hybrid",
		Year:         2023,
		Status:       models.BusStatusMaintenance,
		Amenities:    []string{"wifi", "ac"},
		DriverName:   "Mike Johnson",
	},
}

var fixtureSchedules = []models.Schedule{
	{
		Route:          models.Route{From: "City A", To: "City B"},
		DepartureTime:  "2024-12-20T08:00:00",
		ArrivalTime:    "2024-12-20T10:00:00",
		Frequency:      "daily",
		Price:          25.50,
		AvailableSeats: 50,
		Status:         models.ScheduleStatusScheduled,
	},
	{
		Route:          models.Route{From: "City B", To: "City C"},
		DepartureTime:  "2024-12-20T09:00:00",
		ArrivalTime:    "2024-12-20T11:30:00",
		Frequency:      "daily",
		Price:          20.00,
		AvailableSeats: 40,
		Status:         models.ScheduleStatusScheduled,
	},
}
