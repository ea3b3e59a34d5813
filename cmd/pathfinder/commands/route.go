package commands

import "github.com/spf13/cobra"

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "route FROM TO",
		Short:   "Print the fastest walk between two places",
		Example: `  pathfinder route "Memorial Union" "Union South" --data campus.dot`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := placeArg(args[0], "start")
			if err != nil {
				return err
			}
			to, err := placeArg(args[1], "destination")
			if err != nil {
				return err
			}

			svc, err := a.loadService(cmd.Context())
			if err != nil {
				return err
			}
			route, err := svc.ShortestPath(from, to)
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout(), a.cfg.NoColor).route(from, to, route)

			return nil
		},
	}
}
