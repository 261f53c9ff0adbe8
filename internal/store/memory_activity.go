package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-bus-schedule/models"
)

// DefaultActivityCapacity is the number of activities kept by
// [NewMemoryActivityRepository] when no capacity is given.
const DefaultActivityCapacity = 100

// MemoryActivityRepository keeps the most recent activities in insertion
// order, dropping the oldest once capacity is reached.
type MemoryActivityRepository struct {
	mu       sync.RWMutex
	items    []models.Activity
	capacity int
}

// NewMemoryActivityRepository returns an empty repository holding at most
// capacity entries. A non-positive capacity means [DefaultActivityCapacity].
func NewMemoryActivityRepository(capacity int) *MemoryActivityRepository {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &MemoryActivityRepository{capacity: capacity}
}

func (r *MemoryActivityRepository) Record(ctx context.Context, activity models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, activity)
	if over := len(r.items) - r.capacity; over > 0 {
		r.items = slices.Delete(r.items, 0, over)
	}
	return nil
}

func (r *MemoryActivityRepository) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.items)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]models.Activity, 0, n)
	for i := len(r.items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}
