package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iliyamo/seat-booking/internal/model"
)

var (
	// ErrRouteNotFound is returned when a bus or train id is unknown.
	ErrRouteNotFound = errors.New("route not found")
	// ErrInvalidSort is returned for a sort key other than the four below.
	ErrInvalidSort = errors.New("invalid sort")
	// ErrInvalidClass is returned for an unknown train class.
	ErrInvalidClass = errors.New("invalid travel class")
)

// SortBy orders route listings.
type SortBy string

const (
	SortDeparture SortBy = "departure"
	SortPrice     SortBy = "price"
	SortDuration  SortBy = "duration"
	SortRating    SortBy = "rating"
)

// ParseSort accepts one of the sort keys; empty means departure.
func ParseSort(s string) (SortBy, error) {
	switch k := SortBy(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortDeparture, nil
	case SortDeparture, SortPrice, SortDuration, SortRating:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
}

// TrainClass is a fare class on a train.
type TrainClass string

const (
	ClassEconomy  TrainClass = "economy"
	ClassBusiness TrainClass = "business"
	ClassFirst    TrainClass = "firstClass"
)

// ParseTrainClass accepts economy, business or first class in any case;
// empty means economy.
func ParseTrainClass(s string) (TrainClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "economy":
		return ClassEconomy, nil
	case "business":
		return ClassBusiness, nil
	case "first", "firstclass", "first-class":
		return ClassFirst, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidClass, s)
}

// RouteQuery filters and orders a listing.  Type matches the bus or train
// type case-insensitively; empty or "all" keeps everything.  Class picks
// the fare used when sorting trains by price.
type RouteQuery struct {
	Sort  SortBy
	Type  string
	Class TrainClass
}

func (q RouteQuery) keeps(kind string) bool {
	t := strings.ToLower(strings.TrimSpace(q.Type))
	return t == "" || t == "all" || strings.EqualFold(kind, t)
}

// BusRoute is one bus departure.
type BusRoute struct {
	ID             string   `json:"id"`
	Operator       string   `json:"operator"`
	BusNumber      string   `json:"bus_number"`
	BusType        string   `json:"bus_type"`
	DepartureCity  string   `json:"departure_city"`
	ArrivalCity    string   `json:"arrival_city"`
	Date           string   `json:"date"`
	DepartureTime  string   `json:"departure_time"` // 24h "HH:MM"
	ArrivalTime    string   `json:"arrival_time"`
	DurationMin    int      `json:"duration_min"`
	PriceCents     uint32   `json:"price_cents"`
	Rating         float64  `json:"rating"`
	AvailableSeats int      `json:"available_seats"`
	TotalSeats     int      `json:"total_seats"`
	Amenities      []string `json:"amenities"`
	Image          string   `json:"image,omitempty"`
}

// Availability is the share of seats still free, in percent.
func (b BusRoute) Availability() int { return percent(b.AvailableSeats, b.TotalSeats) }

// Event describes the departure the way a booking session and the ledger
// expect.
func (b BusRoute) Event() model.Event {
	return model.Event{
		ID:    b.ID,
		Name:  fmt.Sprintf("%s %s to %s", b.Operator, b.BusNumber, b.ArrivalCity),
		Date:  b.Date,
		Time:  b.DepartureTime,
		Venue: b.DepartureCity,
		Image: b.Image,
		Type:  model.EventBus,
	}
}

// Fare is the price and capacity of one train class.
type Fare struct {
	PriceCents uint32 `json:"price_cents"`
	Available  int    `json:"available_seats"`
	Total      int    `json:"total_seats"`
}

// TrainRoute is one train departure with per-class fares.
type TrainRoute struct {
	ID               string              `json:"id"`
	TrainName        string              `json:"train_name"`
	TrainNumber      string              `json:"train_number"`
	TrainType        string              `json:"train_type"`
	DepartureStation string              `json:"departure_station"`
	ArrivalStation   string              `json:"arrival_station"`
	Date             string              `json:"date"`
	DepartureTime    string              `json:"departure_time"`
	ArrivalTime      string              `json:"arrival_time"`
	DurationMin      int                 `json:"duration_min"`
	Rating           float64             `json:"rating"`
	Fares            map[TrainClass]Fare `json:"fares"`
	Stops            []string            `json:"stops"`
	Amenities        []string            `json:"amenities"`
	Image            string              `json:"image,omitempty"`
}

// Availability is the share of free seats in class, in percent.
func (t TrainRoute) Availability(class TrainClass) int {
	f := t.Fares[class]
	return percent(f.Available, f.Total)
}

// Event describes the departure in the chosen class.  The class is part
// of the name so it stays visible on the booking record.
func (t TrainRoute) Event(class TrainClass) (model.Event, error) {
	if _, ok := t.Fares[class]; !ok {
		return model.Event{}, fmt.Errorf("%w: %q", ErrInvalidClass, class)
	}
	return model.Event{
		ID:    t.ID,
		Name:  fmt.Sprintf("%s %s (%s)", t.TrainName, t.TrainNumber, class),
		Date:  t.Date,
		Time:  t.DepartureTime,
		Venue: t.DepartureStation,
		Image: t.Image,
		Type:  model.EventTrain,
	}, nil
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (part*100 + whole/2) / whole
}

// Routes is the read-only list of bus and train departures.
type Routes struct {
	buses  []BusRoute
	trains []TrainRoute
}

// NewRoutes keeps copies of the given departures in their seed order.
func NewRoutes(buses []BusRoute, trains []TrainRoute) *Routes {
	return &Routes{buses: slices.Clone(buses), trains: slices.Clone(trains)}
}

// DefaultRoutes returns the seed departures.
func DefaultRoutes() *Routes { return NewRoutes(seedBuses, seedTrains) }

// Buses lists bus departures matching q.
func (r *Routes) Buses(q RouteQuery) []BusRoute {
	out := make([]BusRoute, 0, len(r.buses))
	for _, b := range r.buses {
		if q.keeps(b.BusType) {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b BusRoute) int {
		switch q.Sort {
		case SortPrice:
			return cmp.Compare(a.PriceCents, b.PriceCents)
		case SortDuration:
			return cmp.Compare(a.DurationMin, b.DurationMin)
		case SortRating:
			return cmp.Compare(b.Rating, a.Rating)
		default:
			return strings.Compare(a.DepartureTime, b.DepartureTime)
		}
	})
	return out
}

// Trains lists train departures matching q.  Price sorting uses q.Class,
// economy when unset.
func (r *Routes) Trains(q RouteQuery) []TrainRoute {
	class := q.Class
	if class == "" {
		class = ClassEconomy
	}
	out := make([]TrainRoute, 0, len(r.trains))
	for _, t := range r.trains {
		if q.keeps(t.TrainType) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b TrainRoute) int {
		switch q.Sort {
		case SortPrice:
			return cmp.Compare(a.Fares[class].PriceCents, b.Fares[class].PriceCents)
		case SortDuration:
			return cmp.Compare(a.DurationMin, b.DurationMin)
		case SortRating:
			return cmp.Compare(b.Rating, a.Rating)
		default:
			return strings.Compare(a.DepartureTime, b.DepartureTime)
		}
	})
	return out
}

// Bus looks up a bus departure by id.
func (r *Routes) Bus(id string) (BusRoute, error) {
	for _, b := range r.buses {
		if b.ID == id {
			return b, nil
		}
	}
	return BusRoute{}, ErrRouteNotFound
}

// Train looks up a train departure by id.
func (r *Routes) Train(id string) (TrainRoute, error) {
	for _, t := range r.trains {
		if t.ID == id {
			return t, nil
		}
	}
	return TrainRoute{}, ErrRouteNotFound
}
