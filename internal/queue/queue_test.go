package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iliyamo/seat-booking/internal/model"
)

var confirmed = model.Booking{
	ID:         "booking-1",
	EventID:    "event-4",
	EventName:  "Express to Boston",
	Date:       "June 22, 2024",
	Time:       "9:15 AM",
	Venue:      "Penn Station",
	Type:       model.EventTrain,
	Seats:      []string{"1-2", "1-3"},
	TotalCents: 9000,
	CreatedAt:  time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
}

func TestNewBookingConfirmed(t *testing.T) {
	ev := NewBookingConfirmed("user-7", confirmed)
	if ev.BookingID != "booking-1" || ev.UserID != "user-7" || ev.EventType != "train" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.ConfirmedAt != "2024-06-01T10:00:00Z" {
		t.Fatalf("expected RFC3339 timestamp, got %q", ev.ConfirmedAt)
	}
	ev.SeatLabels[0] = "X"
	if confirmed.Seats[0] != "1-2" {
		t.Fatalf("expected seat labels copied, booking was modified")
	}
}

func TestFormatLine(t *testing.T) {
	line := FormatLine(NewBookingConfirmed("user-7", confirmed))
	for _, want := range []string{
		"[2024-06-01T10:00:00Z] Booking confirmed",
		"booking_id=booking-1",
		`event="Express to Boston"`,
		`when="June 22, 2024 9:15 AM"`,
		"total=9000 cents",
		"seats=[1-2,1-3]",
	} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("expected trailing newline")
	}
	if got := FormatLine(BookingConfirmedEvent{}); !strings.Contains(got, "seats=[]") {
		t.Fatalf("expected empty seat list, got %q", got)
	}
}

func TestHandleMessage_AppendsLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c := NewConsumer("amqp://unused", dir)
	body, _ := json.Marshal(NewBookingConfirmed("user-7", confirmed))

	for i := 0; i < 2; i++ {
		if err := c.handleMessage(body); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "booking.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
	if err := c.handleMessage([]byte("{not json")); err == nil {
		t.Fatalf("expected error for invalid body")
	}
}
