package model

import (
	"strconv"
	"unicode"
)

// SeatStatus is the availability of a seat inside one inventory.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSelected  SeatStatus = "selected"
	SeatBooked    SeatStatus = "booked"
)

// SeatCategory is the pricing tier of a seat.
type SeatCategory string

const (
	CategoryStandard SeatCategory = "standard"
	CategoryPremium  SeatCategory = "premium"
)

// Seat describes one seat of a generated inventory.  Seats are
// identified by ID for the lifetime of the inventory; Row and Number
// give the visual position and together form the printed label.
//
// Fields:
//  ID         – random identifier, fresh per generation.
//  Row        – row letter (A, B, ...) or coach number for trains.
//  Number     – 1-based position in the row.
//  Category   – pricing tier (standard or premium).
//  PriceCents – price in cents, fixed per category at generation.
//  Status     – available, selected or booked.
type Seat struct {
	ID         string       `json:"id"`
	Row        string       `json:"row"`
	Number     int          `json:"number"`
	Category   SeatCategory `json:"category"`
	PriceCents uint32       `json:"price_cents"`
	Status     SeatStatus   `json:"status"`
}

// Label returns the printed seat label, e.g. "A3".  Rows that end in a
// digit (train coaches) use a dash so that coach 1 seat 2 reads "1-2"
// rather than the ambiguous "12".
func (s Seat) Label() string {
	n := strconv.Itoa(s.Number)
	if s.Row == "" {
		return n
	}
	last := rune(s.Row[len(s.Row)-1])
	if unicode.IsDigit(last) {
		return s.Row + "-" + n
	}
	return s.Row + n
}
