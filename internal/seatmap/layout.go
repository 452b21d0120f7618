package seatmap

import (
	"sort"

	"github.com/iliyamo/seat-booking/internal/model"
)

// LayoutKind names the arrangement a front end should draw.
type LayoutKind string

const (
	KindRows    LayoutKind = "rows"
	KindCoaches LayoutKind = "coaches"
	KindBus     LayoutKind = "bus"
)

// busFrontRows is the last row label drawn in the front section of a bus.
const busFrontRows = "D"

// busAisleAfter is the highest seat number on the left of the aisle in
// a 4-across bus.
const busAisleAfter = 2

// Layout is a read-only grouping of an inventory for rendering.  Rows is
// filled for the rows and coaches kinds, Bus for the bus kind.
type Layout struct {
	Kind LayoutKind `json:"kind"`
	Rows []RowView  `json:"rows,omitempty"`
	Bus  []BusRow   `json:"bus,omitempty"`
}

// RowView is one row of a theatre-style map or one train coach.
type RowView struct {
	Label string       `json:"label"`
	Title string       `json:"title"`
	Seats []model.Seat `json:"seats"`
}

// BusRow is one bus row split at the aisle.
type BusRow struct {
	Label string       `json:"label"`
	Front bool         `json:"front"`
	Left  []model.Seat `json:"left"`
	Right []model.Seat `json:"right"`
}

// Project groups seats for the event type.  Seats are copied; neither
// the slice nor the seats are modified.  Types without a dedicated
// arrangement use the row layout.
func Project(seats []model.Seat, t model.EventType) Layout {
	rows := groupRows(seats)
	switch t {
	case model.EventTrain:
		for i := range rows {
			rows[i].Title = "Coach " + rows[i].Label
		}
		return Layout{Kind: KindCoaches, Rows: rows}
	case model.EventBus:
		return Layout{Kind: KindBus, Bus: splitBus(rows)}
	default:
		return Layout{Kind: KindRows, Rows: rows}
	}
}

// FilterCategory keeps the seats of one category.  An empty category
// keeps everything.
func FilterCategory(seats []model.Seat, category model.SeatCategory) []model.Seat {
	if category == "" {
		return seats
	}
	out := make([]model.Seat, 0, len(seats))
	for _, s := range seats {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// groupRows buckets seats by row, sorts rows by label and seats by number.
func groupRows(seats []model.Seat) []RowView {
	byRow := map[string][]model.Seat{}
	var labels []string
	for _, s := range seats {
		if _, ok := byRow[s.Row]; !ok {
			labels = append(labels, s.Row)
		}
		byRow[s.Row] = append(byRow[s.Row], s)
	}
	sort.Strings(labels)
	out := make([]RowView, 0, len(labels))
	for _, label := range labels {
		row := byRow[label]
		sort.SliceStable(row, func(i, j int) bool { return row[i].Number < row[j].Number })
		out = append(out, RowView{Label: label, Title: label, Seats: row})
	}
	return out
}

func splitBus(rows []RowView) []BusRow {
	out := make([]BusRow, 0, len(rows))
	for _, r := range rows {
		br := BusRow{Label: r.Label, Front: r.Label <= busFrontRows}
		for _, s := range r.Seats {
			if s.Number <= busAisleAfter {
				br.Left = append(br.Left, s)
			} else {
				br.Right = append(br.Right, s)
			}
		}
		out = append(out, br)
	}
	return out
}
