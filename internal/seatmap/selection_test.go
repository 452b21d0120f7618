package seatmap

import (
	"errors"
	"testing"

	"github.com/iliyamo/seat-booking/internal/model"
)

func mustSeat(t *testing.T, sel *Selection, label string) model.Seat {
	t.Helper()
	seat, ok := sel.SeatByLabel(label)
	if !ok {
		t.Fatalf("seat %s not found", label)
	}
	return seat
}

// selectedSum recomputes the total from seat statuses.
func selectedSum(sel *Selection) uint32 {
	var sum uint32
	for _, s := range sel.Seats() {
		if s.Status == model.SeatSelected {
			sum += s.PriceCents
		}
	}
	return sum
}

func TestToggle_CinemaScenario(t *testing.T) {
	sel := NewSelection(Generate(model.EventCinema))
	a1 := mustSeat(t, sel, "A1")

	changed, err := sel.Toggle(a1.ID)
	if err != nil || !changed {
		t.Fatalf("expected toggle to apply, got changed=%v err=%v", changed, err)
	}
	if sel.Total() != 1800 {
		t.Fatalf("expected total 1800, got %d", sel.Total())
	}
	if !sel.IsSelected(a1.ID) {
		t.Fatal("expected A1 selected")
	}

	if _, err := sel.Toggle(a1.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sel.Total() != 0 {
		t.Fatalf("expected total 0, got %d", sel.Total())
	}
	if got := mustSeat(t, sel, "A1").Status; got != model.SeatAvailable {
		t.Fatalf("expected A1 available, got %s", got)
	}
}

func TestToggle_RoundTripEverySeat(t *testing.T) {
	sel := NewSelection(Generate(model.EventTrain))
	for _, before := range sel.Seats() {
		if _, err := sel.Toggle(before.ID); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if _, err := sel.Toggle(before.ID); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		after, _ := sel.Seat(before.ID)
		if after.Status != before.Status {
			t.Fatalf("%s: expected status %s, got %s", before.Label(), before.Status, after.Status)
		}
		if sel.IsSelected(before.ID) || sel.Len() != 0 {
			t.Fatalf("%s: expected empty selection after round trip", before.Label())
		}
	}
}

func TestToggle_BookedSeatIgnored(t *testing.T) {
	sel := NewSelection(Generate(model.EventBus))
	var booked model.Seat
	for _, s := range sel.Seats() {
		if s.Status == model.SeatBooked {
			booked = s
			break
		}
	}
	if booked.ID == "" {
		t.Fatal("expected a pre-booked bus seat")
	}
	other := mustSeat(t, sel, "A1")
	if _, err := sel.Toggle(other.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	changed, err := sel.Toggle(booked.ID)
	if err != nil || changed {
		t.Fatalf("expected silent no-op, got changed=%v err=%v", changed, err)
	}
	if sel.Len() != 1 {
		t.Fatalf("expected selection size 1, got %d", sel.Len())
	}
	if sel.IsSelected(booked.ID) {
		t.Fatal("expected booked seat not selected")
	}
	if s, _ := sel.Seat(booked.ID); s.Status != model.SeatBooked {
		t.Fatalf("expected booked status kept, got %s", s.Status)
	}
}

func TestToggle_UnknownSeat(t *testing.T) {
	sel := NewSelection(Generate(model.EventCinema))
	_, err := sel.Toggle("nope")
	if !errors.Is(err, ErrUnknownSeat) {
		t.Fatalf("expected ErrUnknownSeat, got %v", err)
	}
	if sel.Len() != 0 || sel.Total() != 0 {
		t.Fatal("expected no state change")
	}
}

func TestTotal_MatchesSelectedStatuses(t *testing.T) {
	sel := NewSelection(Generate(model.EventGeneral))
	for i, s := range sel.Seats() {
		if i%3 == 0 {
			_, _ = sel.Toggle(s.ID)
		}
		if got, want := sel.Total(), selectedSum(sel); got != want {
			t.Fatalf("step %d: expected total %d, got %d", i, want, got)
		}
	}
}

func TestClear(t *testing.T) {
	sel := NewSelection(Generate(model.EventCinema))
	for _, label := range []string{"A1", "B2", "C3"} {
		_, _ = sel.Toggle(mustSeat(t, sel, label).ID)
	}
	bookedBefore := 0
	for _, s := range sel.Seats() {
		if s.Status == model.SeatBooked {
			bookedBefore++
		}
	}

	sel.Clear()
	if sel.Total() != 0 || sel.Len() != 0 {
		t.Fatalf("expected empty selection, got total=%d len=%d", sel.Total(), sel.Len())
	}
	bookedAfter := 0
	for _, s := range sel.Seats() {
		if s.Status == model.SeatSelected {
			t.Fatalf("expected no selected seats, %s still selected", s.Label())
		}
		if s.Status == model.SeatBooked {
			bookedAfter++
		}
	}
	if bookedAfter != bookedBefore {
		t.Fatalf("expected %d booked seats, got %d", bookedBefore, bookedAfter)
	}
}

func TestGroups_TwoCategories(t *testing.T) {
	sel := NewSelection(Generate(model.EventCinema))
	for _, label := range []string{"C2", "A1", "A2"} {
		if _, err := sel.Toggle(mustSeat(t, sel, label).ID); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	groups := sel.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category != model.CategoryStandard || groups[1].Category != model.CategoryPremium {
		t.Fatalf("expected first-pick group order, got %s, %s", groups[0].Category, groups[1].Category)
	}
	if groups[1].Seats[0].Label() != "A1" || groups[1].Seats[1].Label() != "A2" {
		t.Fatalf("expected pick order inside group, got %+v", groups[1].Seats)
	}
	count := 0
	var sum uint32
	for _, g := range groups {
		count += len(g.Seats)
		sum += g.SubtotalCents
	}
	if count != 3 {
		t.Fatalf("expected 3 seats, got %d", count)
	}
	if sum != sel.Total() {
		t.Fatalf("expected subtotals %d to equal total %d", sum, sel.Total())
	}
}

func TestCommit(t *testing.T) {
	sel := NewSelection(Generate(model.EventCinema))
	a1 := mustSeat(t, sel, "A1")
	a2 := mustSeat(t, sel, "A2")
	_, _ = sel.Toggle(a2.ID)
	_, _ = sel.Toggle(a1.ID)

	if got := sel.Labels(); len(got) != 2 || got[0] != "A2" || got[1] != "A1" {
		t.Fatalf("unexpected labels: %v", got)
	}
	committed := sel.Commit()
	if len(committed) != 2 || committed[0].ID != a2.ID {
		t.Fatalf("unexpected committed seats: %+v", committed)
	}
	if sel.Len() != 0 || sel.Total() != 0 {
		t.Fatal("expected empty selection after commit")
	}
	changed, err := sel.Toggle(a1.ID)
	if err != nil || changed {
		t.Fatalf("expected committed seat to be booked, got changed=%v err=%v", changed, err)
	}
}

func TestNewSelection_DoesNotAliasInventory(t *testing.T) {
	inv := Generate(model.EventCinema)
	sel := NewSelection(inv)
	_, _ = sel.Toggle(inv[0].ID)
	if inv[0].Status != model.SeatAvailable {
		t.Fatalf("expected caller inventory untouched, got %s", inv[0].Status)
	}
}
