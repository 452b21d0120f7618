// Package seatmap builds seat inventories for an event, tracks the
// user's seat selection and projects an inventory into the grouped
// view used to draw the seat map.
package seatmap

import (
	"github.com/google/uuid"

	"github.com/iliyamo/seat-booking/internal/model"
)

// bookedEvery marks every Nth generated seat (1-based ordinal across the
// whole inventory) as already booked, so each map shows some taken seats.
const bookedEvery = 7

// layoutSpec fixes the shape and pricing of one event type.
type layoutSpec struct {
	rows        []string
	perRow      int
	premiumRows int // leading rows tagged premium
	premium     uint32
	standard    uint32
}

var layouts = map[model.EventType]layoutSpec{
	model.EventCinema: {
		rows:        letterRows(8),
		perRow:      10,
		premiumRows: 2,
		premium:     1800,
		standard:    1200,
	},
	model.EventTrain: {
		rows:        []string{"1", "2", "3", "4"},
		perRow:      16,
		premiumRows: 1,
		premium:     4500,
		standard:    2500,
	},
	model.EventBus: {
		rows:        letterRows(10),
		perRow:      4,
		premiumRows: 2,
		premium:     3500,
		standard:    2500,
	},
	model.EventGeneral: {
		rows:        letterRows(10),
		perRow:      12,
		premiumRows: 3,
		premium:     7500,
		standard:    4500,
	},
}

func specFor(t model.EventType) layoutSpec {
	if l, ok := layouts[t]; ok {
		return l
	}
	return layouts[model.EventGeneral]
}

// Generate returns a fresh inventory for the event type in row-major
// order.  The shape, categories and prices are fixed per type and every
// call yields new seat ids.  Unknown types get the general layout.
func Generate(t model.EventType) []model.Seat {
	l := specFor(t)
	seats := make([]model.Seat, 0, len(l.rows)*l.perRow)
	ordinal := 0
	for i, row := range l.rows {
		category, price := model.CategoryStandard, l.standard
		if i < l.premiumRows {
			category, price = model.CategoryPremium, l.premium
		}
		for n := 1; n <= l.perRow; n++ {
			ordinal++
			status := model.SeatAvailable
			if ordinal%bookedEvery == 0 {
				status = model.SeatBooked
			}
			seats = append(seats, model.Seat{
				ID:         uuid.NewString(),
				Row:        row,
				Number:     n,
				Category:   category,
				PriceCents: price,
				Status:     status,
			})
		}
	}
	return seats
}

// GenerateFor parses a raw tag and generates its inventory, falling back
// to the general layout for unrecognized input.
func GenerateFor(tag string) []model.Seat {
	t, _ := model.ParseEventType(tag)
	return Generate(t)
}

// letterRows returns n row labels starting at A.
func letterRows(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}
