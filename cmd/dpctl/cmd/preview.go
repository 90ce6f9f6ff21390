package cmd

import (
	"context"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dataset-pricer/internal/api/client"
)

func previewCmd() *cobra.Command {
	req := &apiclient.PreviewRequest{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Suggest a starting price for a new item",
		Long:  "Runs the pricing formula on the given signals without creating anything.",
		Example: `  dpctl preview --category Marketing --quality 80 --complexity B
  dpctl preview --category Finance --category Retail --quality 55 --complexity D --cleaning-cost 120`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newClient().Preview(context.Background(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printPreview(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().StringArrayVar(&req.Categories, "category", nil, "item category (repeatable, first known one wins)")
	cmd.Flags().IntVar(&req.QualityPercent, "quality", 62, "quality score 0-100")
	cmd.Flags().StringVar(&req.ComplexityTag, "complexity", "B", "complexity tag (A, B, C, D)")
	cmd.Flags().Float64Var(&req.CleaningCostUSD, "cleaning-cost", 50, "cleaning cost in USD")

	return cmd
}
