package model

import "strings"

// EventType is the booking-domain type of an event.  It selects the
// seat layout and pricing rules used for its inventory.
type EventType string

const (
	EventCinema  EventType = "cinema"
	EventTrain   EventType = "train"
	EventBus     EventType = "bus"
	EventGeneral EventType = "general"
)

// ParseEventType normalizes a tag.  The second result is false when the
// tag is not one of the known types; callers then fall back to general.
func ParseEventType(s string) (EventType, bool) {
	switch t := EventType(strings.ToLower(strings.TrimSpace(s))); t {
	case EventCinema, EventTrain, EventBus, EventGeneral:
		return t, true
	}
	return EventGeneral, false
}

// Event is the descriptor chosen on the browse screens.  Only Type
// affects seat generation; the rest is display metadata copied into
// booking records.
type Event struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Date  string    `json:"date"`
	Time  string    `json:"time"`
	Venue string    `json:"venue"`
	Image string    `json:"image,omitempty"`
	Type  EventType `json:"type"`
}
