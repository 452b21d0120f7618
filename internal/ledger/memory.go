package ledger

import (
	"context"
	"sync"

	"github.com/iliyamo/seat-booking/internal/model"
)

// MemoryRepository keeps record lists in process memory.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]model.Booking
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: map[string][]model.Booking{}}
}

func (r *MemoryRepository) Load(_ context.Context, key string) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneRecords(r.data[key]), nil
}

func (r *MemoryRepository) Save(_ context.Context, key string, records []model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = cloneRecords(records)
	return nil
}

func cloneRecords(in []model.Booking) []model.Booking {
	out := make([]model.Booking, len(in))
	for i, b := range in {
		b.Seats = append([]string(nil), b.Seats...)
		out[i] = b
	}
	return out
}
