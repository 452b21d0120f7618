// Package booking drives one user's pass through the booking flow:
// seat selection, checkout and hand-off to the ledger.  Each flow is an
// explicitly owned Session; nothing is shared between sessions.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/seat-booking/internal/latency"
	"github.com/iliyamo/seat-booking/internal/model"
	"github.com/iliyamo/seat-booking/internal/seatmap"
)

var (
	ErrWrongStep      = errors.New("operation not allowed in current step")
	ErrEmptySelection = errors.New("select at least one seat")
	ErrCustomerInfo   = errors.New("name, email and phone are required")
)

// Step is the position of a session in the flow.
type Step string

const (
	StepSelectSeats Step = "select-seats"
	StepCheckout    Step = "checkout"
	StepSuccess     Step = "success"
)

// Customer is the contact information collected at checkout.
type Customer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

var customerRules = validator.New()

func (c Customer) validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if err := customerRules.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrCustomerInfo, err)
	}
	return nil
}

// Recorder stores a confirmed booking.  *ledger.Ledger satisfies it.
type Recorder interface {
	Add(ctx context.Context, owner string, ev model.Event, seats []string, totalCents uint32) (model.Booking, error)
}

// Notifier is told about confirmed bookings.  Delivery is best effort.
type Notifier interface {
	BookingConfirmed(ctx context.Context, owner string, b model.Booking) error
}

// Summary is the booking summary panel: grouped seats and the total.
type Summary struct {
	Groups     []seatmap.CategoryGroup `json:"groups"`
	Seats      []string                `json:"seats"`
	Count      int                     `json:"count"`
	TotalCents uint32                  `json:"total_cents"`
}

// Session is the state of one booking flow for one event.
type Session struct {
	ID        string
	Event     model.Event
	CreatedAt time.Time

	mu       sync.Mutex
	sel      *seatmap.Selection
	step     Step
	customer Customer
	booking  *model.Booking

	touched atomic.Int64 // unix nanos of last use
}

// newSession generates a fresh inventory for the event.
func newSession(id string, ev model.Event, now time.Time) *Session {
	s := &Session{
		ID:        id,
		Event:     ev,
		CreatedAt: now,
		sel:       seatmap.NewSelection(seatmap.Generate(ev.Type)),
		step:      StepSelectSeats,
	}
	s.touch(now)
	return s
}

// Step returns the current step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// ToggleSeat flips one seat while the user is picking seats.  It
// returns the seat as it is after the toggle.
func (s *Session) ToggleSeat(seatID string) (model.Seat, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepSelectSeats {
		return model.Seat{}, false, ErrWrongStep
	}
	changed, err := s.sel.Toggle(seatID)
	if err != nil {
		return model.Seat{}, false, err
	}
	seat, _ := s.sel.Seat(seatID)
	return seat, changed, nil
}

// ClearSelection drops every selected seat.
func (s *Session) ClearSelection() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step == StepSuccess {
		return ErrWrongStep
	}
	s.sel.Clear()
	s.step = StepSelectSeats
	return nil
}

// Proceed moves to checkout.  At least one seat must be selected.
func (s *Session) Proceed() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepSelectSeats {
		return ErrWrongStep
	}
	if s.sel.Len() == 0 {
		return ErrEmptySelection
	}
	s.step = StepCheckout
	return nil
}

// BackToSeats returns from checkout to seat selection, keeping the
// current selection.
func (s *Session) BackToSeats() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepCheckout {
		return ErrWrongStep
	}
	s.step = StepSelectSeats
	return nil
}

// Layout projects the inventory, optionally filtered to one category.
func (s *Session) Layout(category model.SeatCategory) seatmap.Layout {
	s.mu.Lock()
	seats := s.sel.Seats()
	s.mu.Unlock()
	return seatmap.Project(seatmap.FilterCategory(seats, category), s.Event.Type)
}

// Summary returns the grouped selection and its total.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summaryOf(s.sel)
}

func summaryOf(sel *seatmap.Selection) Summary {
	return Summary{
		Groups:     sel.Groups(),
		Seats:      sel.Labels(),
		Count:      sel.Len(),
		TotalCents: sel.Total(),
	}
}

// Booking returns the confirmed booking once the session succeeded.
func (s *Session) Booking() (model.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.booking == nil {
		return model.Booking{}, false
	}
	return *s.booking, true
}

// Checkout confirms the selection for owner.  It waits on the simulated
// round trip, then commits the seats as booked and records the booking.
// If waiting is cancelled the session is left in the checkout step with
// its selection intact.  A notifier failure is logged and ignored.
func (s *Session) Checkout(ctx context.Context, owner string, c Customer, delay latency.Simulator, rec Recorder, notify Notifier) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepCheckout {
		return model.Booking{}, ErrWrongStep
	}
	if err := c.validate(); err != nil {
		return model.Booking{}, err
	}
	if s.sel.Len() == 0 {
		return model.Booking{}, ErrEmptySelection
	}
	if err := delay.Wait(ctx); err != nil {
		return model.Booking{}, fmt.Errorf("checkout: %w", err)
	}

	labels := s.sel.Labels()
	total := s.sel.Total()
	b, err := rec.Add(ctx, owner, s.Event, labels, total)
	if err != nil {
		return model.Booking{}, fmt.Errorf("record booking: %w", err)
	}
	s.sel.Commit()
	s.customer = c
	s.booking = &b
	s.step = StepSuccess

	if notify != nil {
		if err := notify.BookingConfirmed(ctx, owner, b); err != nil {
			log.Printf("booking: notify %s failed: %v", b.ID, err)
		}
	}
	return b, nil
}

func (s *Session) touch(now time.Time) { s.touched.Store(now.UnixNano()) }

func (s *Session) idleSince() time.Time { return time.Unix(0, s.touched.Load()) }

// Customer returns the contact details given at checkout.
func (s *Session) Customer() Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

// View is a serializable snapshot of a session.
type View struct {
	ID      string         `json:"id"`
	Event   model.Event    `json:"event"`
	Step    Step           `json:"step"`
	Layout  seatmap.Layout `json:"layout"`
	Summary Summary        `json:"summary"`
	Booking *model.Booking `json:"booking,omitempty"`
}

// Snapshot captures the session for a response body.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		ID:      s.ID,
		Event:   s.Event,
		Step:    s.step,
		Layout:  seatmap.Project(s.sel.Seats(), s.Event.Type),
		Summary: summaryOf(s.sel),
	}
	if s.booking != nil {
		b := *s.booking
		v.Booking = &b
	}
	return v
}
