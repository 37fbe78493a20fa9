package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-civil/civil"
	"github.com/ngrash/go-civil/culture"
	"github.com/ngrash/go-civil/pattern"
	"github.com/ngrash/go-civil/zone"
)

var resolvePolicy string

var resolveCmd = &cobra.Command{
	Use:   "resolve <zone> <datetime>",
	Short: "Map a wall-clock value into a zone",
	Long: `Maps a wall-clock value, given as yyyy-MM-ddTHH:mm:ss, into the named
zone. The policy decides what happens when the value was skipped by a
forward transition or repeated by a backward one.`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolvePolicy, "policy", "strict", "strict, lenient or start-of-day")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	provider, err := loadProvider()
	if err != nil {
		return err
	}
	z, err := provider.Zone(args[0])
	if err != nil {
		return err
	}

	p, err := pattern.ForDateTime("s", culture.Invariant, civil.DateTime{})
	if err != nil {
		return err
	}
	dt, err := p.Parse(args[1])
	if err != nil {
		return fmt.Errorf("datetime %q: %w", args[1], err)
	}

	var resolve zone.Resolver
	switch resolvePolicy {
	case "strict":
		resolve = zone.Strict
	case "lenient":
		resolve = zone.Lenient
	case "start-of-day":
		zdt, err := zone.ResolveStartOfDay(z, dt.Date())
		if err != nil {
			return err
		}
		fmt.Printf("%v = %s\n", zdt, instantLabel(zdt.Instant()))
		return nil
	default:
		return fmt.Errorf("unknown policy %q", resolvePolicy)
	}

	m := zone.MapLocal(z, dt)
	logger.Debug().Int("count", m.Count).Msg("mapped local value")
	switch m.Count {
	case 0:
		fmt.Printf("%v is skipped in %s (gap %v -> %v)\n", dt, z, m.Early.Offset, m.Late.Offset)
	case 2:
		fmt.Printf("%v is ambiguous in %s (%v or %v)\n", dt, z, m.Early.Offset, m.Late.Offset)
	}

	zdt, err := resolve(m)
	if err != nil {
		return err
	}
	fmt.Printf("%v = %s\n", zdt, instantLabel(zdt.Instant()))
	return nil
}
