package model

import "time"

// BookingStatus tracks where a booking record sits in the ledger.
type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "upcoming"
	BookingPast      BookingStatus = "past"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the record kept by the booking ledger once a checkout
// completes.  It copies the event metadata so the record stays
// readable after the inventory it came from is discarded.
//
// Fields:
//  ID         – booking identifier.
//  EventID    – catalog id of the booked event.
//  EventName  – display name of the event.
//  Date/Time  – display date and time of the event.
//  Venue      – venue or departure station.
//  Type       – event type (cinema, train, bus, general).
//  Image      – optional image URL.
//  Seats      – ordered seat labels, e.g. ["A3", "A4"].
//  TotalCents – total price paid in cents.
//  Status     – upcoming, past or cancelled.
//  CreatedAt  – when the booking was recorded.
//  IsNew      – true for freshly created bookings until acknowledged.
type Booking struct {
	ID         string        `json:"id"`
	EventID    string        `json:"event_id"`
	EventName  string        `json:"event_name"`
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	Venue      string        `json:"venue"`
	Type       EventType     `json:"type"`
	Image      string        `json:"image,omitempty"`
	Seats      []string      `json:"seats"`
	TotalCents uint32        `json:"total_cents"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	IsNew      bool          `json:"is_new,omitempty"`
}
