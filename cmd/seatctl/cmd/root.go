package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var plain bool

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seatctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "seatctl v0.1")
		},
	}
}

// NewRootCmd assembles the command tree.  Each call returns fresh
// commands so tests can run them in isolation.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "seatctl",
		Short:        "Seat booking toolbox",
		Long:         `Preview generated seat maps, browse the event catalog and manage bookings stored in a ledger directory.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&plain, "plain", false, "disable colors")
	root.AddCommand(newVersionCmd(), newMapCmd(), newEventsCmd(), newRoutesCmd(), newBookingsCmd(), newCancelCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
