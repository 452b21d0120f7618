// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/iliyamo/seat-booking/internal/model"
)

// BookingConfirmedQueue is the durable queue confirmed bookings go to.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published when a checkout succeeds.  It carries
// enough of the booking for consumers to log or notify without reading
// the ledger.
type BookingConfirmedEvent struct {
	BookingID        string   `json:"booking_id"`
	UserID           string   `json:"user_id"`
	EventID          string   `json:"event_id"`
	EventName        string   `json:"event_name"`
	EventType        string   `json:"event_type"`
	Venue            string   `json:"venue"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	SeatLabels       []string `json:"seats"`
	TotalAmountCents uint32   `json:"total_amount_cents"`
	ConfirmedAt      string   `json:"confirmed_at"`
}

// NewBookingConfirmed builds the event for a ledger record.
func NewBookingConfirmed(owner string, b model.Booking) BookingConfirmedEvent {
	at := b.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	return BookingConfirmedEvent{
		BookingID:        b.ID,
		UserID:           owner,
		EventID:          b.EventID,
		EventName:        b.EventName,
		EventType:        string(b.Type),
		Venue:            b.Venue,
		Date:             b.Date,
		Time:             b.Time,
		SeatLabels:       append([]string(nil), b.Seats...),
		TotalAmountCents: b.TotalCents,
		ConfirmedAt:      at.UTC().Format(time.RFC3339),
	}
}
