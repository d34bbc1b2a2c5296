// Package memory holds the item store: an ordered in-process collection
// guarded by a mutex, with no persistence across restarts.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/trixiemotil-commits/Joshoeixi-Vape/internal/entity"
)

type ItemRepository struct {
	mu       sync.RWMutex
	items    []entity.Item
	revision uint64
}

type Option func(*ItemRepository)

// WithItems seeds the store. Seed records go through the same id
// assignment as API creates.
func WithItems(items ...entity.Item) Option {
	return func(r *ItemRepository) {
		for _, item := range items {
			item.ID = r.nextIDLocked()
			r.items = append(r.items, item)
		}
	}
}

func NewItemRepository(opts ...Option) *ItemRepository {
	r := &ItemRepository{
		items: make([]entity.Item, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create assigns id = max(existing ids) + 1, or 1 for an empty store,
// and appends the item in insertion order.
func (r *ItemRepository) Create(_ context.Context, item entity.Item) (entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextIDLocked()
	r.items = append(r.items, item)
	r.revision++
	return item, nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (entity.Item, error) {
	const op = "repository.memory.GetByID"

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOfLocked(id)
	if idx < 0 {
		return entity.Item{}, fmt.Errorf("%s: id %d: %w", op, id, entity.ErrNotFound)
	}
	return r.items[idx], nil
}

// Update replaces the stored fields of the item with the given id while
// preserving its identity and position in the list.
func (r *ItemRepository) Update(_ context.Context, id int64, item entity.Item) (entity.Item, error) {
	const op = "repository.memory.Update"

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOfLocked(id)
	if idx < 0 {
		return entity.Item{}, fmt.Errorf("%s: id %d: %w", op, id, entity.ErrNotFound)
	}

	item.ID = id
	r.items[idx] = item
	r.revision++
	return item, nil
}

func (r *ItemRepository) Delete(_ context.Context, id int64) error {
	const op = "repository.memory.Delete"

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOfLocked(id)
	if idx < 0 {
		return fmt.Errorf("%s: id %d: %w", op, id, entity.ErrNotFound)
	}

	r.items = append(r.items[:idx], r.items[idx+1:]...)
	r.revision++
	return nil
}

// Search matches the query case-insensitively against name, brand and
// category. An empty query returns every item. Results keep insertion
// order; search never re-sorts.
func (r *ItemRepository) Search(_ context.Context, query string) ([]entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Item, 0, len(r.items))
	for _, item := range r.items {
		if item.Matches(query) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *ItemRepository) Len(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Revision increments on every mutation; analytics snapshots are keyed
// by it.
func (r *ItemRepository) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

func (r *ItemRepository) nextIDLocked() int64 {
	var maxID int64
	for _, item := range r.items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

func (r *ItemRepository) indexOfLocked(id int64) int {
	for i, item := range r.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
