package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/seat-booking/internal/ledger"
	"github.com/iliyamo/seat-booking/internal/model"
	"github.com/iliyamo/seat-booking/internal/render"
)

type ledgerFlags struct {
	dir   string
	owner string
}

func (f *ledgerFlags) bind(c *cobra.Command) {
	c.Flags().StringVar(&f.dir, "dir", "", "ledger directory (default: user config dir)")
	c.Flags().StringVar(&f.owner, "owner", "", "user id the bookings belong to")
	_ = c.MarkFlagRequired("owner")
}

func (f *ledgerFlags) open() (*ledger.Ledger, error) {
	repo, err := ledger.NewFileRepository(f.dir)
	if err != nil {
		return nil, err
	}
	return ledger.New(repo), nil
}

func newBookingsCmd() *cobra.Command {
	var lf ledgerFlags
	var status string
	c := &cobra.Command{
		Use:   "bookings",
		Short: "List bookings from a file ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.open()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			var items []model.Booking
			switch status {
			case "all":
				items, err = l.All(ctx, lf.owner)
			case "upcoming":
				items, err = l.Upcoming(ctx, lf.owner)
			case "past":
				items, err = l.Past(ctx, lf.owner)
			default:
				return fmt.Errorf("invalid status %q", status)
			}
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no bookings")
				return nil
			}
			render.BookingsTable(cmd.OutOrStdout(), items)
			return nil
		},
	}
	lf.bind(c)
	c.Flags().StringVar(&status, "status", "all", "all, upcoming or past")
	return c
}

func newCancelCmd() *cobra.Command {
	var lf ledgerFlags
	c := &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel an upcoming booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.open()
			if err != nil {
				return err
			}
			b, err := l.Cancel(cmd.Context(), lf.owner, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cancelled %s (%s, %s)\n", b.ID, b.EventName, render.FormatCents(b.TotalCents))
			return nil
		},
	}
	lf.bind(c)
	return c
}
