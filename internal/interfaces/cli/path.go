package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPathCmd answers a single shortest-path query between two individuals.
func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <from-id> <to-id>",
		Short: "Show the shortest relationship path between two individuals",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			lt, err := prepareTree(cmd.Context(), cliCtx)
			if err != nil {
				return err
			}

			from, to := args[0], args[1]
			path, ok := lt.graph.ShortestPath(from, to)
			if !ok {
				return fmt.Errorf("no relationship path between %s and %s", from, to)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "distance: %d\n", len(path)-1)
			fmt.Fprintln(out, lt.classifier.RenderPath(path, nil))
			return nil
		},
	}
}
