package seatmap

import (
	"reflect"
	"testing"

	"github.com/iliyamo/seat-booking/internal/model"
)

func TestProject_CinemaRowsSorted(t *testing.T) {
	seats := Generate(model.EventCinema)
	// reverse so the projector has to sort
	for i, j := 0, len(seats)-1; i < j; i, j = i+1, j-1 {
		seats[i], seats[j] = seats[j], seats[i]
	}
	before := make([]model.Seat, len(seats))
	copy(before, seats)

	l := Project(seats, model.EventCinema)
	if l.Kind != KindRows {
		t.Fatalf("expected rows kind, got %s", l.Kind)
	}
	if len(l.Rows) != 8 || l.Rows[0].Label != "A" || l.Rows[7].Label != "H" {
		t.Fatalf("unexpected rows: %d", len(l.Rows))
	}
	for _, r := range l.Rows {
		for i, s := range r.Seats {
			if s.Number != i+1 {
				t.Fatalf("row %s: expected seat %d at %d, got %d", r.Label, i+1, i, s.Number)
			}
		}
	}
	if !reflect.DeepEqual(seats, before) {
		t.Fatal("expected input seats unchanged")
	}
}

func TestProject_TrainCoaches(t *testing.T) {
	l := Project(Generate(model.EventTrain), model.EventTrain)
	if l.Kind != KindCoaches {
		t.Fatalf("expected coaches kind, got %s", l.Kind)
	}
	if len(l.Rows) != 4 || l.Rows[0].Title != "Coach 1" {
		t.Fatalf("unexpected coaches: %+v", l.Rows)
	}
	if len(l.Rows[0].Seats) != 16 {
		t.Fatalf("expected 16 seats per coach, got %d", len(l.Rows[0].Seats))
	}
}

func TestProject_BusSides(t *testing.T) {
	l := Project(Generate(model.EventBus), model.EventBus)
	if l.Kind != KindBus || len(l.Bus) != 10 {
		t.Fatalf("unexpected bus layout: kind=%s rows=%d", l.Kind, len(l.Bus))
	}
	for _, r := range l.Bus {
		if r.Front != (r.Label <= "D") {
			t.Fatalf("row %s: unexpected front flag %v", r.Label, r.Front)
		}
		if len(r.Left) != 2 || len(r.Right) != 2 {
			t.Fatalf("row %s: expected 2+2 seats, got %d+%d", r.Label, len(r.Left), len(r.Right))
		}
		for _, s := range r.Left {
			if s.Number > 2 {
				t.Fatalf("row %s: seat %d on the left", r.Label, s.Number)
			}
		}
		for _, s := range r.Right {
			if s.Number <= 2 {
				t.Fatalf("row %s: seat %d on the right", r.Label, s.Number)
			}
		}
	}
}

func TestProject_UnknownTypeUsesRows(t *testing.T) {
	l := Project(Generate(model.EventGeneral), model.EventType("opera"))
	if l.Kind != KindRows || len(l.Rows) != 10 {
		t.Fatalf("expected default row layout, got kind=%s rows=%d", l.Kind, len(l.Rows))
	}
}

func TestFilterCategory(t *testing.T) {
	seats := Generate(model.EventCinema)
	premium := FilterCategory(seats, model.CategoryPremium)
	if len(premium) != 20 {
		t.Fatalf("expected 20 premium seats, got %d", len(premium))
	}
	if len(FilterCategory(seats, "")) != len(seats) {
		t.Fatal("expected empty category to keep all seats")
	}
}
