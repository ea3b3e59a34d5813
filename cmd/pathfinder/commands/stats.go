package commands

import "github.com/spf13/cobra"

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print place, edge and region counts and the total walking time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.loadService(cmd.Context())
			if err != nil {
				return err
			}
			regions, err := svc.Regions(cmd.Context())
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout(), a.cfg.NoColor).stats(svc.Statistics(), len(regions))

			return nil
		},
	}
}
