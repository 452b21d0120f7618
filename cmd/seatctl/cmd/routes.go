package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iliyamo/seat-booking/internal/catalog"
	"github.com/iliyamo/seat-booking/internal/render"
)

func newRoutesCmd() *cobra.Command {
	var sortBy, kind, class string
	c := &cobra.Command{
		Use:       "routes bus|train",
		Short:     "List bus or train departures",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bus", "train"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := catalog.ParseSort(sortBy)
			if err != nil {
				return err
			}
			routes := catalog.DefaultRoutes()
			q := catalog.RouteQuery{Sort: s, Type: kind}
			if args[0] == "bus" {
				render.BusesTable(cmd.OutOrStdout(), routes.Buses(q))
				return nil
			}
			if q.Class, err = catalog.ParseTrainClass(class); err != nil {
				return err
			}
			render.TrainsTable(cmd.OutOrStdout(), routes.Trains(q), q.Class)
			return nil
		},
	}
	c.Flags().StringVar(&sortBy, "sort", "departure", "departure, price, duration or rating")
	c.Flags().StringVar(&kind, "kind", "all", "bus type (standard, luxury, sleeper) or train type (express, regional, high speed)")
	c.Flags().StringVar(&class, "class", "economy", "train fare class: economy, business, first")
	return c
}
