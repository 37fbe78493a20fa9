package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/culture"
	"github.com/ngrash/go-civil/zone"
	"github.com/ngrash/go-civil/zonefile"
)

var (
	zonesFile   string
	cultureID   string
	verbose     bool
	patternText string

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "civil",
	Short: "Inspect zones and format, parse and resolve civil time values",
	Long: `civil works with calendar-tagged wall-clock values and time zones
defined in a YAML zone file.

Subcommands:
  intervals - list the offset intervals of a zone
  resolve   - map a wall-clock value into a zone
  parse     - parse text with a format pattern
  format    - render a value with a format pattern`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&zonesFile, "zones", "", "YAML zone definition file")
	rootCmd.PersistentFlags().StringVar(&cultureID, "culture", culture.Invariant.ID, "culture for names and separators")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadProvider loads the zone file named by --zones. UTC is always
// available, with or without a zone file.
func loadProvider() (zone.MapProvider, error) {
	provider := zone.NewMapProvider(zone.UTC)
	if zonesFile == "" {
		return provider, nil
	}
	zones, err := zonefile.LoadFile(zonesFile)
	if err != nil {
		return nil, fmt.Errorf("load zones: %w", err)
	}
	for _, z := range zones {
		provider[z.ID()] = z
	}
	logger.Debug().Int("zones", len(zones)).Str("file", zonesFile).Msg("loaded zone definitions")
	return provider, nil
}

func lookupCulture() (culture.Culture, error) {
	c, err := culture.Lookup(cultureID)
	if err != nil {
		return culture.Culture{}, fmt.Errorf("%w (known: %v)", err, culture.IDs())
	}
	return c, nil
}
