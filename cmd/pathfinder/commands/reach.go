package commands

import "github.com/spf13/cobra"

func newReachCmd(a *app) *cobra.Command {
	var maxHops int

	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "List every place reachable from FROM with its hop count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := placeArg(args[0], "start")
			if err != nil {
				return err
			}
			svc, err := a.loadService(cmd.Context())
			if err != nil {
				return err
			}
			hops, err := svc.Reachable(cmd.Context(), from, maxHops)
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout(), a.cfg.NoColor).reach(from, hops)

			return nil
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "stop after this many hops (0 = unlimited)")

	return cmd
}
