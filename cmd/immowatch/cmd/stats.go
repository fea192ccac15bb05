package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/kakwa/immowatch/internal/api/client"
)

func statsCmd() *cobra.Command {
	var (
		statsOwner      string
		statsDealType   string
		statsPostalCode string
	)

	statsRoot := &cobra.Command{
		Use:   "stats",
		Short: "Summarize an owner's seen listings",
	}

	statsRoot.PersistentFlags().StringVar(&statsOwner, "owner", "", "owner of the listings")
	statsRoot.PersistentFlags().StringVar(&statsDealType, "deal-type", "rent", "deal type (rent, sale)")
	statsRoot.PersistentFlags().StringVar(&statsPostalCode, "postal-code", "", "restrict to one postal code")

	query := func() (apiclient.StatsQuery, error) {
		if statsOwner == "" {
			return apiclient.StatsQuery{}, fmt.Errorf("--owner is required")
		}
		return apiclient.StatsQuery{
			Owner:      statsOwner,
			DealType:   statsDealType,
			PostalCode: statsPostalCode,
		}, nil
	}

	statsRoot.AddCommand(statsRoomsCmd(query))
	statsRoot.AddCommand(statsSurfaceCmd(query))

	return statsRoot
}

func statsRoomsCmd(query func() (apiclient.StatsQuery, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "Group seen listings by room count",
		Example: `  immowatch stats rooms --owner alice
  immowatch stats rooms --owner alice --deal-type sale --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			q, err := query()
			if err != nil {
				return err
			}

			c := newClient()
			buckets, err := c.RoomStats(context.Background(), q)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(buckets)
			}
			if len(buckets) == 0 {
				fmt.Println("No listings found.")
				return nil
			}
			return printRoomStatsTable(buckets)
		},
	}
}

func statsSurfaceCmd(query func() (apiclient.StatsQuery, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "surface",
		Short: "Group seen listings into surface ranges",
		Example: `  immowatch stats surface --owner alice
  immowatch stats surface --owner alice --postal-code 75011`,
		RunE: func(_ *cobra.Command, _ []string) error {
			q, err := query()
			if err != nil {
				return err
			}

			c := newClient()
			buckets, err := c.SurfaceStats(context.Background(), q)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(buckets)
			}
			if len(buckets) == 0 {
				fmt.Println("No listings found.")
				return nil
			}
			return printSurfaceStatsTable(buckets)
		},
	}
}
