// Package catalog holds the browsable list of events and transport
// departures.  The list is static seed data; nothing in the service
// writes to it.
package catalog

import (
	"errors"
	"strings"

	"github.com/iliyamo/seat-booking/internal/model"
)

// ErrEventNotFound is returned when an id is not in the catalog.
var ErrEventNotFound = errors.New("event not found")

// Catalog is a read-only, ordered event list.
type Catalog struct {
	events []model.Event
	byID   map[string]int
}

// New builds a catalog over the given events, keeping their order.
func New(events []model.Event) *Catalog {
	c := &Catalog{
		events: make([]model.Event, len(events)),
		byID:   make(map[string]int, len(events)),
	}
	copy(c.events, events)
	for i, e := range c.events {
		c.byID[e.ID] = i
	}
	return c
}

// Default returns a catalog over the seed events.
func Default() *Catalog { return New(seedEvents) }

// List returns events of the given type.  An empty type or "all"
// returns every event.
func (c *Catalog) List(eventType string) []model.Event {
	tag := strings.ToLower(strings.TrimSpace(eventType))
	out := make([]model.Event, 0, len(c.events))
	for _, e := range c.events {
		if tag == "" || tag == "all" || string(e.Type) == tag {
			out = append(out, e)
		}
	}
	return out
}

// Featured returns the first n events, as shown on the home page.
func (c *Catalog) Featured(n int) []model.Event {
	if n <= 0 || n > len(c.events) {
		n = len(c.events)
	}
	out := make([]model.Event, n)
	copy(out, c.events[:n])
	return out
}

// Get looks up an event by id.
func (c *Catalog) Get(id string) (model.Event, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Event{}, ErrEventNotFound
	}
	return c.events[i], nil
}
