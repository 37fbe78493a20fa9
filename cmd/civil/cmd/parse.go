package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/pattern"
	"github.com/ngrash/go-civil/zone"
)

var parseZoneID string

var parseCmd = &cobra.Command{
	Use:   "parse --pattern <pattern> <text>",
	Short: "Parse text with a format pattern",
	Long: `Parses text with a format pattern. Without --zone the text is read as
a date and time; with --zone it is read as a value in that zone and the
result includes the resolved offset.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&patternText, "pattern", "p", "s", "format pattern, single characters name standard formats")
	parseCmd.Flags().StringVar(&parseZoneID, "zone", "", "read the text as a value in this zone")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cul, err := lookupCulture()
	if err != nil {
		return err
	}

	if parseZoneID != "" {
		provider, err := loadProvider()
		if err != nil {
			return err
		}
		z, err := provider.Zone(parseZoneID)
		if err != nil {
			return err
		}
		template, err := zone.FromInstant(z, 0, civil.ISO)
		if err != nil {
			return err
		}
		p, err := pattern.ForZonedDateTime(patternText, cul, template, provider, zone.Lenient)
		if err != nil {
			return err
		}
		logger.Debug().Stringer("fields", p.Fields()).Msg("compiled pattern")
		zdt, err := p.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%v = %s\n", zdt, instantLabel(zdt.Instant()))
		return nil
	}

	p, err := pattern.ForDateTime(patternText, cul, civil.DateTime{})
	if err != nil {
		return err
	}
	logger.Debug().Stringer("fields", p.Fields()).Msg("compiled pattern")
	dt, err := p.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Println(dt)
	return nil
}
