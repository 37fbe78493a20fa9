package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/civil"
)

var intervalsCmd = &cobra.Command{
	Use:   "intervals <zone>",
	Short: "List the offset intervals of a zone",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntervals,
}

func init() {
	rootCmd.AddCommand(intervalsCmd)
}

func runIntervals(cmd *cobra.Command, args []string) error {
	provider, err := loadProvider()
	if err != nil {
		return err
	}
	z, err := provider.Zone(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%-22s %-22s %-10s %-10s %s\n", "START", "END", "OFFSET", "SAVINGS", "NAME")
	for _, iv := range z.Intervals() {
		fmt.Printf("%-22s %-22s %-10s %-10s %s\n",
			instantLabel(iv.Start), instantLabel(iv.End), iv.Offset, iv.Savings, iv.Name)
	}
	return nil
}

func instantLabel(i civil.Instant) string {
	if i == civil.BeforeTime {
		return "-inf"
	}
	if i == civil.AfterTime {
		return "+inf"
	}
	return civil.DateTimeOfInstant(i, 0, civil.ISO).String() + "Z"
}
