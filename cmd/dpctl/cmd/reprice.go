package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func repriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reprice",
		Short: "Trigger batch repricing",
		Long: "Recomputes and applies prices for every auto-priced item. Requires the\n" +
			"server's cron token (--cron-token or DPCTL_CRON_TOKEN).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Reprice(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			return printRepriceResult(cmd.OutOrStdout(), res)
		},
	}
}
