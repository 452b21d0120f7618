package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/seat-booking/internal/catalog"
	"github.com/iliyamo/seat-booking/internal/model"
	"github.com/iliyamo/seat-booking/internal/render"
	"github.com/iliyamo/seat-booking/internal/seatmap"
)

func newMapCmd() *cobra.Command {
	var eventType, eventID, category string
	c := &cobra.Command{
		Use:   "map",
		Short: "Generate and draw a seat map",
		Long:  `Generate a fresh inventory for an event type (or a catalog event) and draw it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := model.ParseEventType(eventType)
			if eventID != "" {
				ev, err := catalog.Default().Get(eventID)
				if err != nil {
					return fmt.Errorf("event %q: %w", eventID, err)
				}
				t, ok = ev.Type, true
				fmt.Fprintf(cmd.OutOrStdout(), "%s • %s %s • %s\n\n", ev.Name, ev.Date, ev.Time, ev.Venue)
			}
			if !ok && eventType != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown type %q, using %s layout\n", eventType, t)
			}
			switch cat := model.SeatCategory(category); cat {
			case "", model.CategoryStandard, model.CategoryPremium:
				seats := seatmap.FilterCategory(seatmap.Generate(t), cat)
				fmt.Fprint(cmd.OutOrStdout(), render.SeatMap(seatmap.Project(seats, t), render.Options{Plain: plain}))
				return nil
			default:
				return fmt.Errorf("invalid category %q", category)
			}
		},
	}
	c.Flags().StringVar(&eventType, "type", "cinema", "event type: cinema, train, bus, general")
	c.Flags().StringVar(&eventID, "event", "", "catalog event id; overrides --type")
	c.Flags().StringVar(&category, "category", "", "only show standard or premium seats")
	return c
}

func newEventsCmd() *cobra.Command {
	var eventType string
	c := &cobra.Command{
		Use:   "events",
		Short: "List catalog events",
		Run: func(cmd *cobra.Command, args []string) {
			render.EventsTable(cmd.OutOrStdout(), catalog.Default().List(eventType))
		},
	}
	c.Flags().StringVar(&eventType, "type", "all", "filter by event type")
	return c
}
