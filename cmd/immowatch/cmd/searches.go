package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/kakwa/immowatch/pkg/types"
)

func searchesCmd() *cobra.Command {
	searchesRoot := &cobra.Command{
		Use:   "searches",
		Short: "Manage recurring searches",
		Long: "Manage the recurring searches the server polls. A search is a postal\n" +
			"code, minimum surface, maximum price, deal type, and optional minimum\n" +
			"room count, registered under an owner name.",
	}

	searchesRoot.AddCommand(
		searchAddCmd(),
		searchListCmd(),
		searchRmCmd(),
	)

	return searchesRoot
}

func searchAddCmd() *cobra.Command {
	var (
		addOwner      string
		addPostalCode string
		addMinSurface string
		addMaxPrice   string
		addDealType   string
		addMinRooms   int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a recurring search",
		Long: "Register a recurring search for an owner. Re-adding identical\n" +
			"criteria is a no-op; re-adding a previously removed search\n" +
			"reactivates it.",
		Example: `  # Rentals in the 11th arrondissement, at least 30 m2, up to 1200 EUR
  immowatch searches add --owner alice --postal-code 75011 --min-surface 30 --max-price 1200

  # Sales with at least 3 rooms
  immowatch searches add --owner bob --postal-code 69003 --min-surface 60 \
    --max-price 450000 --deal-type sale --min-rooms 3`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if addOwner == "" || addPostalCode == "" || addMinSurface == "" || addMaxPrice == "" {
				return fmt.Errorf("--owner, --postal-code, --min-surface and --max-price are required")
			}

			spec := &domain.SearchSpec{
				Owner:      addOwner,
				PostalCode: addPostalCode,
				MinSurface: addMinSurface,
				MaxPrice:   addMaxPrice,
				DealType:   domain.ParseDealType(addDealType),
				MinRooms:   addMinRooms,
			}

			c := newClient()
			result, err := c.CreateSearch(context.Background(), spec)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			if !result.Created {
				fmt.Printf("Search already registered: %s\n", result.Search.ID)
				return nil
			}
			fmt.Printf("Search registered: %s\n", result.Search.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&addOwner, "owner", "", "owner of the search")
	cmd.Flags().StringVar(&addPostalCode, "postal-code", "", "postal code to search")
	cmd.Flags().StringVar(&addMinSurface, "min-surface", "", "minimum surface")
	cmd.Flags().StringVar(&addMaxPrice, "max-price", "", "maximum price")
	cmd.Flags().StringVar(&addDealType, "deal-type", "rent", "deal type (rent, sale)")
	cmd.Flags().IntVar(&addMinRooms, "min-rooms", 0, "minimum room count (0 disables the filter)")

	return cmd
}

func searchListCmd() *cobra.Command {
	var listOwner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's searches",
		Example: `  immowatch searches list --owner alice
  immowatch searches list --owner alice --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listOwner == "" {
				return fmt.Errorf("--owner is required")
			}

			c := newClient()
			specs, err := c.ListSearches(context.Background(), listOwner)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(specs)
			}
			if len(specs) == 0 {
				fmt.Println("No searches found.")
				return nil
			}
			return printSearchTable(specs)
		},
	}

	cmd.Flags().StringVar(&listOwner, "owner", "", "owner of the searches")

	return cmd
}

func searchRmCmd() *cobra.Command {
	var rmOwner string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a search",
		Long: "Deactivate a search so future cycles skip it. Stored listings and\n" +
			"notification history are kept.",
		Example: `  immowatch searches rm abc123 --owner alice`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if rmOwner == "" {
				return fmt.Errorf("--owner is required")
			}

			c := newClient()
			if err := c.DeleteSearch(context.Background(), args[0], rmOwner); err != nil {
				return err
			}
			fmt.Printf("Search %s removed.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&rmOwner, "owner", "", "owner of the search")

	return cmd
}
