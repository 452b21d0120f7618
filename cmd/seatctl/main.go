// Command seatctl inspects seat maps, the event catalog and a file-backed
// booking ledger from the terminal.
package main

import (
	"os"

	"github.com/iliyamo/seat-booking/cmd/seatctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
