package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/dataset-pricer/internal/api/client"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View scheduler job history",
		Long: "View the execution history of scheduled jobs (auto_reprice). Each run records\n" +
			"its status, the number of prices applied, and any error.",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsHistoryCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List latest run per job",
		Example: `  dpctl jobs list
  dpctl jobs list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := newClient().ListJobs(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No job runs found.")
				return nil
			}
			return printJobRunsTable(cmd.OutOrStdout(), runs)
		},
	}
}

func jobsHistoryCmd() *cobra.Command {
	var q apiclient.JobHistoryQuery

	cmd := &cobra.Command{
		Use:   "history <job_name>",
		Short: "Show run history for a job",
		Args:  cobra.ExactArgs(1),
		Example: `  dpctl jobs history auto_reprice
  dpctl jobs history auto_reprice --limit 50 --output json
  dpctl jobs history auto_reprice --status failed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := newClient().GetJobHistory(context.Background(), args[0], q)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No runs found for job %q.\n", args[0])
				return nil
			}
			return printJobRunsTable(cmd.OutOrStdout(), runs)
		},
	}

	cmd.Flags().IntVar(&q.Limit, "limit", 0, "maximum runs to fetch (default: server default)")
	cmd.Flags().StringVar(&q.Status, "status", "", "only show runs in this status (running, succeeded, failed, crashed)")

	return cmd
}
