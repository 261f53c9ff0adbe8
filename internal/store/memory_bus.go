package store

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/models"
)

// MemoryBusRepository is the in-memory [BusRepository]. Bus numbers and
// license plates are unique, compared case-insensitively.
type MemoryBusRepository struct {
	buses *table[models.Bus]
}

// NewMemoryBusRepository returns an empty repository.
func NewMemoryBusRepository() *MemoryBusRepository {
	return &MemoryBusRepository{buses: newTable[models.Bus]()}
}

func (r *MemoryBusRepository) List(ctx context.Context, filter models.BusFilter) ([]models.Bus, error) {
	r.buses.mu.RLock()
	defer r.buses.mu.RUnlock()

	out := r.buses.list(filter.Match)
	for i := range out {
		out[i] = cloneBus(out[i])
	}
	return out, nil
}

func (r *MemoryBusRepository) Get(ctx context.Context, id int64) (models.Bus, error) {
	if err := checkID(id); err != nil {
		return models.Bus{}, err
	}

	r.buses.mu.RLock()
	defer r.buses.mu.RUnlock()

	bus, ok := r.buses.rows[id]
	if !ok {
		return models.Bus{}, ErrNotFound
	}
	return cloneBus(bus), nil
}

func (r *MemoryBusRepository) Create(ctx context.Context, bus models.Bus) (models.Bus, error) {
	r.buses.mu.Lock()
	defer r.buses.mu.Unlock()

	if r.duplicate(0, bus) {
		logger.FromContext(ctx).Debug().Str("bus_number", bus.BusNumber).Msg("bus already exists")
		return models.Bus{}, ErrAlreadyExists
	}
	if bus.Status == "" {
		bus.Status = models.BusStatusActive
	}

	created := r.buses.insert(cloneBus(bus), func(b *models.Bus, id int64) { b.ID = id })
	return cloneBus(created), nil
}

func (r *MemoryBusRepository) Update(ctx context.Context, id int64, bus models.Bus) (models.Bus, error) {
	if err := checkID(id); err != nil {
		return models.Bus{}, err
	}

	r.buses.mu.Lock()
	defer r.buses.mu.Unlock()

	if _, ok := r.buses.rows[id]; !ok {
		return models.Bus{}, ErrNotFound
	}
	if r.duplicate(id, bus) {
		return models.Bus{}, ErrAlreadyExists
	}

	bus.ID = id
	r.buses.rows[id] = cloneBus(bus)
	return cloneBus(bus), nil
}

func (r *MemoryBusRepository) UpdateStatus(ctx context.Context, id int64, status models.BusStatus) (models.Bus, error) {
	if err := checkID(id); err != nil {
		return models.Bus{}, err
	}

	r.buses.mu.Lock()
	defer r.buses.mu.Unlock()

	bus, ok := r.buses.rows[id]
	if !ok {
		return models.Bus{}, ErrNotFound
	}
	bus.Status = status
	r.buses.rows[id] = bus
	return cloneBus(bus), nil
}

func (r *MemoryBusRepository) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}

	r.buses.mu.Lock()
	defer r.buses.mu.Unlock()

	if _, ok := r.buses.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.buses.rows, id)
	return nil
}

func (r *MemoryBusRepository) duplicate(exclude int64, bus models.Bus) bool {
	return r.buses.exists(exclude, func(other models.Bus) bool {
		return strings.EqualFold(other.BusNumber, bus.BusNumber) ||
			strings.EqualFold(other.LicensePlate, bus.LicensePlate)
	})
}

func cloneBus(b models.Bus) models.Bus {
	b.Amenities = slices.Clone(b.Amenities)
	return b
}
