// Package render draws seat maps and tables for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iliyamo/seat-booking/internal/model"
	"github.com/iliyamo/seat-booking/internal/seatmap"
)

// Options controls terminal output.
type Options struct {
	Plain bool // no colors
}

type styles struct {
	available, premium, selected, booked, screen, faint lipgloss.Style
}

func newStyles(opt Options) styles {
	if opt.Plain {
		s := lipgloss.NewStyle()
		return styles{s, s, s, s, s, s}
	}
	return styles{
		available: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		premium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("63")),
		booked:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		screen:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
		faint:     lipgloss.NewStyle().Faint(true),
	}
}

func (st styles) seat(s model.Seat) string {
	switch s.Status {
	case model.SeatBooked:
		return st.booked.Render("XX")
	case model.SeatSelected:
		return st.selected.Render("**")
	}
	if s.Category == model.CategoryPremium {
		return st.premium.Render("[]")
	}
	return st.available.Render("[]")
}

func (st styles) cells(seats []model.Seat) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = st.seat(s)
	}
	return strings.Join(parts, " ")
}

// SeatMap renders a projected layout followed by a legend and counts.
func SeatMap(l seatmap.Layout, opt Options) string {
	st := newStyles(opt)
	var b strings.Builder
	var all []model.Seat

	switch l.Kind {
	case seatmap.KindBus:
		width := labelWidth(len(l.Bus), func(i int) string { return l.Bus[i].Label })
		rear := false
		b.WriteString(st.faint.Render("Front / Driver") + "\n")
		for _, r := range l.Bus {
			if !r.Front && !rear {
				rear = true
				b.WriteString(st.faint.Render(strings.Repeat("-", 8)+" rear "+strings.Repeat("-", 8)) + "\n")
			}
			fmt.Fprintf(&b, "%*s %s    %s\n", width, r.Label, st.cells(r.Left), st.cells(r.Right))
			all = append(all, r.Left...)
			all = append(all, r.Right...)
		}
	case seatmap.KindCoaches:
		for _, r := range l.Rows {
			b.WriteString(r.Title + "\n  " + st.cells(r.Seats) + "\n")
			all = append(all, r.Seats...)
		}
	default:
		width := labelWidth(len(l.Rows), func(i int) string { return l.Rows[i].Label })
		if len(l.Rows) > 0 {
			bar := len(l.Rows[0].Seats)*3 - 1
			fmt.Fprintf(&b, "%*s %s\n", width, "", st.screen.Render(center("SCREEN", bar)))
		}
		for _, r := range l.Rows {
			fmt.Fprintf(&b, "%*s %s %s\n", width, r.Label, st.cells(r.Seats), r.Label)
			all = append(all, r.Seats...)
		}
	}

	b.WriteString("\n" + st.faint.Render("Legend: [] available • [] premium (bold) • ** selected • XX booked") + "\n")
	b.WriteString(st.faint.Render(counts(all)) + "\n")
	return b.String()
}

func counts(seats []model.Seat) string {
	var avail, sel, booked int
	for _, s := range seats {
		switch s.Status {
		case model.SeatBooked:
			booked++
		case model.SeatSelected:
			sel++
		default:
			avail++
		}
	}
	return fmt.Sprintf("Available: %d • Selected: %d • Booked: %d • Total: %d", avail, sel, booked, len(seats))
}

func labelWidth(n int, label func(int) string) int {
	w := 1
	for i := 0; i < n; i++ {
		if l := len(label(i)); l > w {
			w = l
		}
	}
	return w
}

func center(text string, width int) string {
	if width <= len(text) {
		return text
	}
	pad := width - len(text)
	return strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)
}
