// Package ledger records confirmed bookings.  Records for one owner are
// kept as a single list under a named storage key and are always read
// and written as a whole through a Repository.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/seat-booking/internal/model"
)

var (
	// ErrBookingNotFound is returned when an id is not in the owner's list.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotCancellable is returned when cancelling a booking that is not upcoming.
	ErrNotCancellable = errors.New("booking cannot be cancelled")
)

// newWindow is how long a fresh booking is flagged IsNew.
const newWindow = 10 * time.Second

// Repository loads and saves the whole record list stored under key.
// Load returns an empty list, not an error, for a key never saved.
type Repository interface {
	Load(ctx context.Context, key string) ([]model.Booking, error)
	Save(ctx context.Context, key string, records []model.Booking) error
}

// Ledger applies booking operations on top of a Repository.
type Ledger struct {
	repo Repository
	now  func() time.Time
	seed func(time.Time) []model.Booking
	mu   sync.Mutex // serializes read-modify-write cycles
}

// New returns a Ledger backed by repo.
func New(repo Repository, opts ...Option) *Ledger {
	l := &Ledger{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// StorageKey is the key an owner's records are stored under.
func StorageKey(owner string) string { return "bookings:" + owner }

// Add records a confirmed booking at the head of the owner's list.
func (l *Ledger) Add(ctx context.Context, owner string, ev model.Event, seats []string, totalCents uint32) (model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.load(ctx, owner)
	if err != nil {
		return model.Booking{}, err
	}
	labels := make([]string, len(seats))
	copy(labels, seats)
	b := model.Booking{
		ID:         "booking-" + uuid.NewString(),
		EventID:    ev.ID,
		EventName:  ev.Name,
		Date:       ev.Date,
		Time:       ev.Time,
		Venue:      ev.Venue,
		Type:       ev.Type,
		Image:      ev.Image,
		Seats:      labels,
		TotalCents: totalCents,
		Status:     model.BookingUpcoming,
		CreatedAt:  l.now().UTC(),
		IsNew:      true,
	}
	records = append([]model.Booking{b}, records...)
	if err := l.repo.Save(ctx, StorageKey(owner), records); err != nil {
		return model.Booking{}, fmt.Errorf("save bookings: %w", err)
	}
	return b, nil
}

// Cancel marks an upcoming booking cancelled and returns the updated record.
func (l *Ledger) Cancel(ctx context.Context, owner, id string) (model.Booking, error) {
	return l.update(ctx, owner, id, func(b *model.Booking) error {
		if b.Status != model.BookingUpcoming {
			return ErrNotCancellable
		}
		b.Status = model.BookingCancelled
		b.IsNew = false
		return nil
	})
}

// ClearNew drops the IsNew flag once the client has shown the booking.
func (l *Ledger) ClearNew(ctx context.Context, owner, id string) (model.Booking, error) {
	return l.update(ctx, owner, id, func(b *model.Booking) error {
		b.IsNew = false
		return nil
	})
}

// Get returns one booking of the owner.
func (l *Ledger) Get(ctx context.Context, owner, id string) (model.Booking, error) {
	records, err := l.All(ctx, owner)
	if err != nil {
		return model.Booking{}, err
	}
	for _, b := range records {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrBookingNotFound
}

// All returns every booking of the owner, newest first.
func (l *Ledger) All(ctx context.Context, owner string) ([]model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx, owner)
}

// Upcoming returns the owner's upcoming bookings.
func (l *Ledger) Upcoming(ctx context.Context, owner string) ([]model.Booking, error) {
	return l.filter(ctx, owner, func(b model.Booking) bool { return b.Status == model.BookingUpcoming })
}

// Past returns the owner's past and cancelled bookings.
func (l *Ledger) Past(ctx context.Context, owner string) ([]model.Booking, error) {
	return l.filter(ctx, owner, func(b model.Booking) bool { return b.Status != model.BookingUpcoming })
}

func (l *Ledger) filter(ctx context.Context, owner string, keep func(model.Booking) bool) ([]model.Booking, error) {
	records, err := l.All(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]model.Booking, 0, len(records))
	for _, b := range records {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (l *Ledger) update(ctx context.Context, owner, id string, fn func(*model.Booking) error) (model.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.load(ctx, owner)
	if err != nil {
		return model.Booking{}, err
	}
	for i := range records {
		if records[i].ID != id {
			continue
		}
		if err := fn(&records[i]); err != nil {
			return model.Booking{}, err
		}
		if err := l.repo.Save(ctx, StorageKey(owner), records); err != nil {
			return model.Booking{}, fmt.Errorf("save bookings: %w", err)
		}
		return records[i], nil
	}
	return model.Booking{}, ErrBookingNotFound
}

// load reads the owner's list and expires stale IsNew flags.
func (l *Ledger) load(ctx context.Context, owner string) ([]model.Booking, error) {
	records, err := l.repo.Load(ctx, StorageKey(owner))
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	now := l.now()
	// Lists never shrink, so an empty one was never saved.
	if len(records) == 0 && l.seed != nil {
		records = l.seed(now.UTC())
		if err := l.repo.Save(ctx, StorageKey(owner), records); err != nil {
			return nil, fmt.Errorf("seed bookings: %w", err)
		}
	}
	for i := range records {
		if records[i].IsNew && now.Sub(records[i].CreatedAt) > newWindow {
			records[i].IsNew = false
		}
	}
	return records, nil
}
