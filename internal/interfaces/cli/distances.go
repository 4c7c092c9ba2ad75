package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDistancesCmd lists the kinship distance from one individual to every
// reachable individual, one "Name (@ID@): distance" line each, in record
// order.
func newDistancesCmd() *cobra.Command {
	var includeUnreachable bool

	cmd := &cobra.Command{
		Use:   "distances <from-id>",
		Short: "List kinship distances from one individual to everyone else",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			lt, err := prepareTree(cmd.Context(), cliCtx)
			if err != nil {
				return err
			}

			from := args[0]
			if _, ok := lt.idx.Individual(from); !ok {
				return fmt.Errorf("unknown individual %s", from)
			}
			dist := lt.graph.Distances(from)

			out := cmd.OutOrStdout()
			for _, ind := range lt.idx.Individuals() {
				d, reachable := dist[ind.ID]
				switch {
				case reachable:
					fmt.Fprintf(out, "%s (%s): %d\n", ind.DisplayName(), ind.ID, d)
				case includeUnreachable:
					fmt.Fprintf(out, "%s (%s): unreachable\n", ind.DisplayName(), ind.ID)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeUnreachable, "all", false, "include unreachable individuals")
	return cmd
}
