package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/culture"
	"github.com/ngrash/go-civil/pattern"
	"github.com/ngrash/go-civil/zone"
)

var formatZoneID string

var formatCmd = &cobra.Command{
	Use:   "format --pattern <pattern> <datetime>",
	Short: "Render a value with a format pattern",
	Long: `Renders a wall-clock value, given as yyyy-MM-ddTHH:mm:ss, with a format
pattern. With --zone the value is first resolved into that zone, so the
pattern may use the offset (o) and zone identifier (z) fields.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&patternText, "pattern", "p", "G", "format pattern, single characters name standard formats")
	formatCmd.Flags().StringVar(&formatZoneID, "zone", "", "resolve the value into this zone before formatting")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	cul, err := lookupCulture()
	if err != nil {
		return err
	}

	sortable, err := pattern.ForDateTime("s", culture.Invariant, civil.DateTime{})
	if err != nil {
		return err
	}
	dt, err := sortable.Parse(args[0])
	if err != nil {
		return fmt.Errorf("datetime %q: %w", args[0], err)
	}

	if formatZoneID != "" {
		provider, err := loadProvider()
		if err != nil {
			return err
		}
		z, err := provider.Zone(formatZoneID)
		if err != nil {
			return err
		}
		zdt, err := zone.NewZonedDateTime(dt, z, zone.Lenient)
		if err != nil {
			return err
		}
		p, err := pattern.ForZonedDateTime(patternText, cul, zdt, provider, zone.Lenient)
		if err != nil {
			return err
		}
		fmt.Println(p.Format(zdt))
		return nil
	}

	p, err := pattern.ForDateTime(patternText, cul, civil.DateTime{})
	if err != nil {
		return err
	}
	fmt.Println(p.Format(dt))
	return nil
}
