package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/seat-booking/internal/model"
)

var testEvent = model.Event{
	ID:    "event-1",
	Name:  "Avengers: Endgame",
	Date:  "June 15, 2024",
	Time:  "7:30 PM",
	Venue: "AMC Theaters",
	Type:  model.EventCinema,
}

type failingRepo struct{ err error }

func (f failingRepo) Load(context.Context, string) ([]model.Booking, error) { return nil, nil }
func (f failingRepo) Save(context.Context, string, []model.Booking) error   { return f.err }

func TestAdd_NewestFirst(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryRepository())

	first, err := l.Add(ctx, "u1", testEvent, []string{"A3", "A4"}, 3600)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second, err := l.Add(ctx, "u1", testEvent, []string{"B1"}, 1800)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if first.Status != model.BookingUpcoming || !first.IsNew {
		t.Fatalf("unexpected new booking: %+v", first)
	}

	all, err := l.All(ctx, "u1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", all)
	}
	if all[1].EventName != testEvent.Name || all[1].TotalCents != 3600 || len(all[1].Seats) != 2 {
		t.Fatalf("unexpected stored record: %+v", all[1])
	}

	other, _ := l.All(ctx, "u2")
	if len(other) != 0 {
		t.Fatalf("expected owners to be isolated, got %+v", other)
	}
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryRepository())
	b, _ := l.Add(ctx, "u1", testEvent, []string{"A1"}, 1800)

	got, err := l.Cancel(ctx, "u1", b.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got.Status != model.BookingCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
	if _, err := l.Cancel(ctx, "u1", b.ID); !errors.Is(err, ErrNotCancellable) {
		t.Fatalf("expected ErrNotCancellable, got %v", err)
	}
	if _, err := l.Cancel(ctx, "u1", "missing"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}

	upcoming, _ := l.Upcoming(ctx, "u1")
	past, _ := l.Past(ctx, "u1")
	if len(upcoming) != 0 || len(past) != 1 {
		t.Fatalf("expected booking moved to past, got upcoming=%d past=%d", len(upcoming), len(past))
	}
}

func TestIsNewExpires(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryRepository())
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	b, _ := l.Add(ctx, "u1", testEvent, []string{"A1"}, 1800)
	if got, _ := l.Get(ctx, "u1", b.ID); !got.IsNew {
		t.Fatal("expected booking to be new")
	}
	now = now.Add(newWindow + time.Second)
	if got, _ := l.Get(ctx, "u1", b.ID); got.IsNew {
		t.Fatal("expected new flag to expire")
	}
}

func TestClearNew(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryRepository())
	b, _ := l.Add(ctx, "u1", testEvent, []string{"A1"}, 1800)

	got, err := l.ClearNew(ctx, "u1", b.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got.IsNew {
		t.Fatal("expected new flag cleared")
	}
}

func TestAdd_SaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	l := New(failingRepo{err: boom})
	if _, err := l.Add(context.Background(), "u1", testEvent, []string{"A1"}, 1800); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
}

func TestDemoBookings(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	l := New(repo, WithDemoBookings())

	upcoming, err := l.Upcoming(ctx, "u1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	past, _ := l.Past(ctx, "u1")
	if len(upcoming) != 2 || len(past) != 1 || past[0].ID != "booking-3" {
		t.Fatalf("expected 2 upcoming and 1 past demo bookings, got %d and %d", len(upcoming), len(past))
	}

	if _, err := l.Cancel(ctx, "u1", "booking-1"); err != nil {
		t.Fatalf("expected demo booking to be cancellable, got %v", err)
	}
	b, err := l.Add(ctx, "u1", model.Event{ID: "event-5", Name: "Dune: Part Two", Type: model.EventCinema}, []string{"B1"}, 1800)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	all, _ := l.All(ctx, "u1")
	if len(all) != 4 || all[0].ID != b.ID {
		t.Fatalf("expected the seed to be written once, got %d records", len(all))
	}
	if got, _ := l.Get(ctx, "u1", "booking-1"); got.Status != model.BookingCancelled {
		t.Fatalf("expected cancellation to persist, got %s", got.Status)
	}

	plain, _ := New(repo).All(ctx, "u2")
	if len(plain) != 0 {
		t.Fatalf("expected no seed without the option, got %d", len(plain))
	}
}
