package seatmap

import (
	"errors"
	"fmt"

	"github.com/iliyamo/seat-booking/internal/model"
)

// ErrUnknownSeat is returned when a seat id does not belong to the
// inventory the selection was built from.
var ErrUnknownSeat = errors.New("seat not in inventory")

// Selection owns one inventory and the subset of its seats the user has
// picked.  The per-seat status and the selected set are updated together
// so a seat is "selected" exactly when it is a member of the set.
//
// A Selection is not safe for concurrent use; the booking session that
// owns it serializes access.
type Selection struct {
	seats []model.Seat
	index map[string]int // seat id -> position in seats
	order []string       // selected ids in the order they were picked
	total uint32
}

// CategoryGroup is a derived summary of selected seats sharing a category.
type CategoryGroup struct {
	Category      model.SeatCategory `json:"category"`
	Seats         []model.Seat       `json:"seats"`
	SubtotalCents uint32             `json:"subtotal_cents"`
}

// NewSelection copies the inventory and starts with nothing selected.
// Seats arriving with status selected are reset to available so the
// invariant holds from the start.
func NewSelection(inventory []model.Seat) *Selection {
	s := &Selection{
		seats: make([]model.Seat, len(inventory)),
		index: make(map[string]int, len(inventory)),
	}
	copy(s.seats, inventory)
	for i := range s.seats {
		if s.seats[i].Status == model.SeatSelected {
			s.seats[i].Status = model.SeatAvailable
		}
		s.index[s.seats[i].ID] = i
	}
	return s
}

// Toggle flips the selection state of a seat.  Booked seats are left
// alone and report false; an id outside the inventory is a caller bug
// and returns ErrUnknownSeat without touching any state.
func (s *Selection) Toggle(seatID string) (bool, error) {
	i, ok := s.index[seatID]
	if !ok {
		return false, fmt.Errorf("toggle %q: %w", seatID, ErrUnknownSeat)
	}
	seat := &s.seats[i]
	switch seat.Status {
	case model.SeatBooked:
		return false, nil
	case model.SeatSelected:
		seat.Status = model.SeatAvailable
		s.remove(seatID)
		s.total -= seat.PriceCents
	default:
		seat.Status = model.SeatSelected
		s.order = append(s.order, seatID)
		s.total += seat.PriceCents
	}
	return true, nil
}

func (s *Selection) remove(seatID string) {
	for i, id := range s.order {
		if id == seatID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Total is the summed price of the selected seats in cents.
func (s *Selection) Total() uint32 { return s.total }

// Len is the number of selected seats.
func (s *Selection) Len() int { return len(s.order) }

// IsSelected reports whether the seat is currently picked.
func (s *Selection) IsSelected(seatID string) bool {
	i, ok := s.index[seatID]
	return ok && s.seats[i].Status == model.SeatSelected
}

// Clear drops every selected seat back to available.  Booked seats keep
// their status.
func (s *Selection) Clear() {
	for _, id := range s.order {
		s.seats[s.index[id]].Status = model.SeatAvailable
	}
	s.order = nil
	s.total = 0
}

// Selected returns copies of the selected seats in pick order.
func (s *Selection) Selected() []model.Seat {
	out := make([]model.Seat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.seats[s.index[id]])
	}
	return out
}

// Labels returns the printed labels of the selected seats in pick order.
func (s *Selection) Labels() []string {
	out := make([]string, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.seats[s.index[id]].Label())
	}
	return out
}

// Groups splits the selection by seat category.  Groups appear in the
// order their first seat was picked and keep pick order inside.
func (s *Selection) Groups() []CategoryGroup {
	var groups []CategoryGroup
	pos := map[model.SeatCategory]int{}
	for _, seat := range s.Selected() {
		i, ok := pos[seat.Category]
		if !ok {
			i = len(groups)
			pos[seat.Category] = i
			groups = append(groups, CategoryGroup{Category: seat.Category})
		}
		groups[i].Seats = append(groups[i].Seats, seat)
		groups[i].SubtotalCents += seat.PriceCents
	}
	return groups
}

// Seats returns a snapshot of the whole inventory in generation order.
func (s *Selection) Seats() []model.Seat {
	out := make([]model.Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// Seat looks up one seat by id.
func (s *Selection) Seat(seatID string) (model.Seat, bool) {
	i, ok := s.index[seatID]
	if !ok {
		return model.Seat{}, false
	}
	return s.seats[i], true
}

// SeatByLabel looks up a seat by its printed label, e.g. "A1".
func (s *Selection) SeatByLabel(label string) (model.Seat, bool) {
	for _, seat := range s.seats {
		if seat.Label() == label {
			return seat, true
		}
	}
	return model.Seat{}, false
}

// Commit finalizes a checkout: the selected seats become booked and the
// selection empties.  It returns the committed seats in pick order.
func (s *Selection) Commit() []model.Seat {
	committed := s.Selected()
	for _, id := range s.order {
		s.seats[s.index[id]].Status = model.SeatBooked
	}
	for i := range committed {
		committed[i].Status = model.SeatBooked
	}
	s.order = nil
	s.total = 0
	return committed
}
