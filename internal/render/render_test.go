package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iliyamo/seat-booking/internal/model"
	"github.com/iliyamo/seat-booking/internal/seatmap"
)

func TestSeatMap_Cinema(t *testing.T) {
	seats := seatmap.Generate(model.EventCinema)
	out := SeatMap(seatmap.Project(seats, model.EventCinema), Options{Plain: true})

	if !strings.Contains(out, "SCREEN") {
		t.Fatalf("expected a screen bar, got:\n%s", out)
	}
	if !strings.Contains(out, "Booked: 11 • Total: 80") {
		t.Fatalf("expected 11 of 80 booked, got:\n%s", out)
	}
	if !strings.Contains(out, "A [] [] [] [] [] [] XX [] [] [] A") {
		t.Fatalf("expected row A with seat 7 booked, got:\n%s", out)
	}
}

func TestSeatMap_BusAndCoaches(t *testing.T) {
	bus := SeatMap(seatmap.Project(seatmap.Generate(model.EventBus), model.EventBus), Options{Plain: true})
	if !strings.Contains(bus, " rear ") || !strings.Contains(bus, "Total: 40") {
		t.Fatalf("expected bus with rear section and 40 seats, got:\n%s", bus)
	}

	train := SeatMap(seatmap.Project(seatmap.Generate(model.EventTrain), model.EventTrain), Options{Plain: true})
	for _, coach := range []string{"Coach 1", "Coach 4"} {
		if !strings.Contains(train, coach) {
			t.Fatalf("expected %q in:\n%s", coach, train)
		}
	}
}

func TestSeatMap_Selected(t *testing.T) {
	sel := seatmap.NewSelection(seatmap.Generate(model.EventCinema))
	a1, _ := sel.SeatByLabel("A1")
	sel.Toggle(a1.ID)
	out := SeatMap(seatmap.Project(sel.Seats(), model.EventCinema), Options{Plain: true})
	if !strings.Contains(out, "A ** []") || !strings.Contains(out, "Selected: 1") {
		t.Fatalf("expected A1 selected, got:\n%s", out)
	}
}

func TestFormatCents(t *testing.T) {
	cases := map[uint32]string{0: "$0.00", 5: "$0.05", 1800: "$18.00", 12345: "$123.45"}
	for in, want := range cases {
		if got := FormatCents(in); got != want {
			t.Fatalf("FormatCents(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestTables(t *testing.T) {
	var buf bytes.Buffer
	EventsTable(&buf, []model.Event{{ID: "event-1", Name: "Avengers: Endgame", Type: model.EventCinema}})
	if !strings.Contains(buf.String(), "Avengers: Endgame") || !strings.Contains(buf.String(), "VENUE") {
		t.Fatalf("unexpected events table:\n%s", buf.String())
	}

	buf.Reset()
	BookingsTable(&buf, []model.Booking{
		{ID: "booking-1", EventName: "Show", Seats: []string{"A1", "A2"}, TotalCents: 3600, Status: model.BookingUpcoming, IsNew: true},
		{ID: "booking-2", EventName: "Show", Seats: []string{"B1"}, TotalCents: 1200, Status: model.BookingCancelled},
	})
	out := buf.String()
	if !strings.Contains(out, "upcoming (new)") || !strings.Contains(out, "$36.00") {
		t.Fatalf("unexpected bookings table:\n%s", out)
	}
}
