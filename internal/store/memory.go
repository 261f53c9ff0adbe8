package store

import (
	"maps"
	"slices"
	"sync"
)

// table is an id-keyed set of records guarded by a read-write mutex. Ids are
// assigned sequentially starting at 1 and never reused.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1}
}

// list returns the records accepted by keep in ascending id order. The caller
// must hold at least the read lock.
func (t *table[T]) list(keep func(T) bool) []T {
	ids := slices.Sorted(maps.Keys(t.rows))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if row := t.rows[id]; keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// insert stores row under a new id. The caller must hold the write lock.
func (t *table[T]) insert(row T, setID func(*T, int64)) T {
	id := t.nextID
	t.nextID++
	setID(&row, id)
	t.rows[id] = row
	return row
}

// exists reports whether a record other than exclude satisfies match. The
// caller must hold at least the read lock.
func (t *table[T]) exists(exclude int64, match func(T) bool) bool {
	for id, row := range t.rows {
		if id != exclude && match(row) {
			return true
		}
	}
	return false
}

func checkID(id int64) error {
	if id < 1 {
		return ErrInvalidID
	}
	return nil
}
