package ledger

import (
	"time"

	"github.com/iliyamo/seat-booking/internal/model"
)

// Option configures a Ledger.
type Option func(*Ledger)

// WithDemoBookings fills an owner's empty ledger with sample records the
// first time it is read, so both the upcoming and past lists have content.
func WithDemoBookings() Option {
	return func(l *Ledger) { l.seed = demoBookings }
}

func demoBookings(now time.Time) []model.Booking {
	const day = 24 * time.Hour
	return []model.Booking{
		{
			ID:         "booking-1",
			EventID:    "event-1",
			EventName:  "Avengers: Endgame",
			Date:       "June 15, 2024",
			Time:       "7:30 PM",
			Venue:      "AMC Theaters",
			Type:       model.EventCinema,
			Image:      "https://images.unsplash.com/photo-1478720568477-152d9b164e26?auto=format&fit=crop&w=1740&q=80",
			Seats:      []string{"A3", "A4"},
			TotalCents: 3600,
			Status:     model.BookingUpcoming,
			CreatedAt:  now.Add(-day),
		},
		{
			ID:         "booking-2",
			EventID:    "event-4",
			EventName:  "Express Train to Boston",
			Date:       "July 22, 2024",
			Time:       "10:00 AM",
			Venue:      "Grand Central Station",
			Type:       model.EventTrain,
			Image:      "https://images.unsplash.com/photo-1474487548417-781cb71495f3?auto=format&fit=crop&w=1684&q=80",
			Seats:      []string{"1-2", "1-3"},
			TotalCents: 9000,
			Status:     model.BookingUpcoming,
			CreatedAt:  now.Add(-2 * day),
		},
		{
			ID:         "booking-3",
			EventID:    "event-3",
			EventName:  "Taylor Swift: The Eras Tour",
			Date:       "April 5, 2024",
			Time:       "6:00 PM",
			Venue:      "Madison Square Garden",
			Type:       model.EventGeneral,
			Image:      "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?auto=format&fit=crop&w=1770&q=80",
			Seats:      []string{"C5", "C6", "C7"},
			TotalCents: 22500,
			Status:     model.BookingPast,
			CreatedAt:  now.Add(-30 * day),
		},
	}
}
