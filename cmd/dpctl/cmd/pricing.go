package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dataset-pricer/internal/api/client"
)

func recommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <item_id>",
		Short: "Show the price recommendation for an item",
		Long: "Shows the newest recommendation computed within the server's cache window,\n" +
			"together with the item's current price and guardrails.",
		Args: cobra.ExactArgs(1),
		Example: `  dpctl recommend 3f1c... --org acme
  dpctl recommend 3f1c... --org acme --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := orgID()
			if err != nil {
				return err
			}
			rec, err := newClient().GetRecommendation(context.Background(), args[0], org)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rec)
			}
			return printRecommendation(cmd.OutOrStdout(), rec)
		},
	}
}

func applyCmd() *cobra.Command {
	var snapshotID, reason string

	cmd := &cobra.Command{
		Use:   "apply <item_id>",
		Short: "Apply a recommended price",
		Long: "Sets the item's price to a snapshot's recommendation. Without --snapshot the\n" +
			"current recommendation is fetched and applied. The change is rejected if it\n" +
			"violates the item's guardrails.",
		Args: cobra.ExactArgs(1),
		Example: `  dpctl apply 3f1c... --org acme --actor u-42
  dpctl apply 3f1c... --org acme --actor u-42 --snapshot 9a0b... --reason promo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := orgID()
			if err != nil {
				return err
			}
			ctx := context.Background()
			c := newClient()

			if snapshotID == "" {
				rec, err := c.GetRecommendation(ctx, args[0], org)
				if err != nil {
					return err
				}
				if rec.Snapshot == nil {
					return errors.New("server returned no recommendation")
				}
				snapshotID = rec.Snapshot.ID
			}

			res, err := c.ApplyRecommendation(ctx, args[0], org, snapshotID, reason)
			if apiclient.StatusCode(err) == http.StatusConflict {
				return fmt.Errorf("%w\nfetch a fresh recommendation with 'dpctl recommend %s' and apply that snapshot", err, args[0])
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Price changed from %s to %s.\n",
				usd(res.OldPriceUSD), usd(res.NewPriceUSD))
			return err
		},
	}

	cmd.Flags().StringVar(&snapshotID, "snapshot", "", "snapshot ID to apply (default: current recommendation)")
	cmd.Flags().StringVar(&reason, "reason", "", "audit reason code (default manual_apply)")

	return cmd
}

func configCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "config",
		Short: "Manage per-item pricing guardrails",
	}
	root.AddCommand(configSetCmd())
	return root
}

func configSetCmd() *cobra.Command {
	var (
		auto      bool
		minPrice  float64
		maxPrice  float64
		maxWeekly int
	)

	cmd := &cobra.Command{
		Use:   "set <item_id>",
		Short: "Create or update an item's guardrails",
		Long:  "Only the flags given are changed; the rest keep their stored value.",
		Args:  cobra.ExactArgs(1),
		Example: `  dpctl config set 3f1c... --org acme --auto --max 900
  dpctl config set 3f1c... --org acme --max-weekly-change 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := orgID()
			if err != nil {
				return err
			}

			update := &apiclient.ConfigUpdate{}
			flags := cmd.Flags()
			if flags.Changed("auto") {
				update.AutoPricingEnabled = &auto
			}
			if flags.Changed("min") {
				update.MinPriceUSD = &minPrice
			}
			if flags.Changed("max") {
				update.MaxPriceUSD = &maxPrice
			}
			if flags.Changed("max-weekly-change") {
				update.MaxWeeklyChangePct = &maxWeekly
			}

			cfg, err := newClient().UpdateConfig(context.Background(), args[0], org, update)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cfg)
			}
			return printConfig(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "enable scheduled auto-pricing")
	cmd.Flags().Float64Var(&minPrice, "min", 0, "minimum price in USD")
	cmd.Flags().Float64Var(&maxPrice, "max", 0, "maximum price in USD")
	cmd.Flags().IntVar(&maxWeekly, "max-weekly-change", 0, "maximum weekly change in percent (1-50)")

	return cmd
}

func historyCmd() *cobra.Command {
	var (
		q     apiclient.HistoryQuery
		since time.Duration
	)

	cmd := &cobra.Command{
		Use:   "history <item_id>",
		Short: "Show recent recommendations and price changes",
		Args:  cobra.ExactArgs(1),
		Example: `  dpctl history 3f1c... --org acme
  dpctl history 3f1c... --org acme --reason auto_reprice --since 168h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := orgID()
			if err != nil {
				return err
			}
			if since > 0 {
				q.Since = time.Now().Add(-since)
			}
			hist, err := newClient().GetHistory(context.Background(), args[0], org, q)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(hist)
			}
			return printHistory(cmd.OutOrStdout(), hist)
		},
	}

	cmd.Flags().StringVar(&q.Reason, "reason", "", "only price changes with this reason code")
	cmd.Flags().StringVar(&q.ActorID, "changed-by", "", "only price changes made by this actor")
	cmd.Flags().DurationVar(&since, "since", 0, "only price changes within this window, e.g. 72h")

	return cmd
}
