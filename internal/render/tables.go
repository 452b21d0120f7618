package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/iliyamo/seat-booking/internal/catalog"
	"github.com/iliyamo/seat-booking/internal/model"
)

// FormatCents prints an amount in cents as dollars, e.g. "$18.00".
func FormatCents(c uint32) string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

// EventsTable writes the catalog as a table.
func EventsTable(w io.Writer, events []model.Event) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Event", "Type", "Date", "Time", "Venue"})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 28}})
	for _, e := range events {
		t.AppendRow(table.Row{e.ID, e.Name, e.Type, e.Date, e.Time, e.Venue})
	}
	t.Render()
}

// BookingsTable writes ledger records as a table, newest first.
func BookingsTable(w io.Writer, bookings []model.Booking) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Booking", "Event", "Date", "Seats", "Total", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 24},
		{Number: 4, WidthMax: 20},
	})
	t.Style().Options.SeparateRows = true
	var total uint32
	for _, b := range bookings {
		status := string(b.Status)
		if b.IsNew {
			status += " (new)"
		}
		t.AppendRow(table.Row{b.ID, b.EventName, b.Date + " " + b.Time, strings.Join(b.Seats, ", "), FormatCents(b.TotalCents), status})
		if b.Status != model.BookingCancelled {
			total += b.TotalCents
		}
	}
	t.AppendFooter(table.Row{"", "", "", "Total", FormatCents(total), ""})
	t.Render()
}

func formatDuration(min int) string {
	return fmt.Sprintf("%dh %02dm", min/60, min%60)
}

// BusesTable writes bus departures with price and availability.
func BusesTable(w io.Writer, buses []catalog.BusRoute) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Operator", "Type", "Depart", "Arrive", "Duration", "Price", "Rating", "Seats left"})
	for _, b := range buses {
		t.AppendRow(table.Row{
			b.ID, b.Operator + " " + b.BusNumber, b.BusType, b.DepartureTime, b.ArrivalTime,
			formatDuration(b.DurationMin), FormatCents(b.PriceCents), fmt.Sprintf("%.1f", b.Rating),
			fmt.Sprintf("%d (%d%%)", b.AvailableSeats, b.Availability()),
		})
	}
	t.Render()
}

// TrainsTable writes train departures priced in the given class.
func TrainsTable(w io.Writer, trains []catalog.TrainRoute, class catalog.TrainClass) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Train", "Type", "Depart", "Arrive", "Duration", "Stops", "Price (" + string(class) + ")", "Seats left"})
	for _, tr := range trains {
		f := tr.Fares[class]
		t.AppendRow(table.Row{
			tr.ID, tr.TrainName + " " + tr.TrainNumber, tr.TrainType, tr.DepartureTime, tr.ArrivalTime,
			formatDuration(tr.DurationMin), len(tr.Stops), FormatCents(f.PriceCents),
			fmt.Sprintf("%d (%d%%)", f.Available, tr.Availability(class)),
		})
	}
	t.Render()
}
