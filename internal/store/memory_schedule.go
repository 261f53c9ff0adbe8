package store

import (
	"context"

	"github.com/MKhiriev/go-bus-schedule/models"
)

// MemoryScheduleRepository is the in-memory [ScheduleRepository].
type MemoryScheduleRepository struct {
	schedules *table[models.Schedule]
}

// NewMemoryScheduleRepository returns an empty repository.
func NewMemoryScheduleRepository() *MemoryScheduleRepository {
	return &MemoryScheduleRepository{schedules: newTable[models.Schedule]()}
}

func (r *MemoryScheduleRepository) List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, error) {
	r.schedules.mu.RLock()
	defer r.schedules.mu.RUnlock()

	out := r.schedules.list(filter.Match)
	for i := range out {
		out[i] = cloneSchedule(out[i])
	}
	return out, nil
}

func (r *MemoryScheduleRepository) Search(ctx context.Context, from, to, date string) ([]models.Schedule, error) {
	return r.List(ctx, models.ScheduleFilter{From: from, To: to, Date: date})
}

func (r *MemoryScheduleRepository) Get(ctx context.Context, id int64) (models.Schedule, error) {
	if err := checkID(id); err != nil {
		return models.Schedule{}, err
	}

	r.schedules.mu.RLock()
	defer r.schedules.mu.RUnlock()

	s, ok := r.schedules.rows[id]
	if !ok {
		return models.Schedule{}, ErrNotFound
	}
	return cloneSchedule(s), nil
}

func (r *MemoryScheduleRepository) Create(ctx context.Context, schedule models.Schedule) (models.Schedule, error) {
	r.schedules.mu.Lock()
	defer r.schedules.mu.Unlock()

	if schedule.Status == "" {
		schedule.Status = models.ScheduleStatusScheduled
	}
	created := r.schedules.insert(cloneSchedule(schedule), func(s *models.Schedule, id int64) { s.ID = id })
	return cloneSchedule(created), nil
}

func (r *MemoryScheduleRepository) Update(ctx context.Context, id int64, schedule models.Schedule) (models.Schedule, error) {
	if err := checkID(id); err != nil {
		return models.Schedule{}, err
	}

	r.schedules.mu.Lock()
	defer r.schedules.mu.Unlock()

	current, ok := r.schedules.rows[id]
	if !ok {
		return models.Schedule{}, ErrNotFound
	}
	schedule.ID = id
	if schedule.Status == "" {
		schedule.Status = current.Status
	}
	r.schedules.rows[id] = cloneSchedule(schedule)
	return cloneSchedule(schedule), nil
}

func (r *MemoryScheduleRepository) UpdateStatus(ctx context.Context, id int64, update models.ScheduleStatusUpdate) (models.Schedule, error) {
	if err := checkID(id); err != nil {
		return models.Schedule{}, err
	}

	r.schedules.mu.Lock()
	defer r.schedules.mu.Unlock()

	s, ok := r.schedules.rows[id]
	if !ok {
		return models.Schedule{}, ErrNotFound
	}
	s.Status = update.Status
	r.schedules.rows[id] = s
	return cloneSchedule(s), nil
}

func (r *MemoryScheduleRepository) Delete(ctx context.Context, id int64) error {
	if err := checkID(id); err != nil {
		return err
	}

	r.schedules.mu.Lock()
	defer r.schedules.mu.Unlock()

	if _, ok := r.schedules.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.schedules.rows, id)
	return nil
}

// cloneSchedule copies the embedded bus and driver so callers cannot mutate
// stored records through the pointers.
func cloneSchedule(s models.Schedule) models.Schedule {
	if s.Bus != nil {
		bus := cloneBus(*s.Bus)
		s.Bus = &bus
	}
	if s.Driver != nil {
		driver := *s.Driver
		s.Driver = &driver
	}
	return s
}
