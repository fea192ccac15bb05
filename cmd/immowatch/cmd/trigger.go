package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func triggerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger",
		Short: "Trigger an immediate refresh cycle",
		Long: "Ask the server to start a refresh cycle right away instead of\n" +
			"waiting for the next scheduled one. The server refuses the trigger\n" +
			"when a cycle is already running.",
		Example: `  immowatch trigger`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.TriggerCycle(context.Background()); err != nil {
				return err
			}
			fmt.Println("Refresh cycle started.")
			return nil
		},
	}
}
