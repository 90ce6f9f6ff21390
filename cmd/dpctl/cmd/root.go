// Package cmd implements the dpctl CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/dataset-pricer/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "dpctl",
		Short: "CLI client for Dataset Pricer",
		Long: "dpctl is a command-line client for the Dataset Pricer API.\n" +
			"It shows price recommendations, applies them, edits guardrails,\n" +
			"and triggers batch repricing from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.dpctl.yaml)")
	flags.String("server", "http://localhost:8080", "API server URL")
	flags.String("output", "table", "output format (table, json)")
	flags.String("org", "", "organization ID that owns the items")
	flags.String("actor", "", "user ID recorded on applied price changes")
	flags.String("cron-token", "", "shared secret for the reprice trigger")

	cobra.CheckErr(viper.BindPFlag("server", flags.Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", flags.Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("org", flags.Lookup("org")))
	cobra.CheckErr(viper.BindPFlag("actor", flags.Lookup("actor")))
	cobra.CheckErr(viper.BindPFlag("cron_token", flags.Lookup("cron-token")))

	rootCmd.AddCommand(recommendCmd())
	rootCmd.AddCommand(applyCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(repriceCmd())
	rootCmd.AddCommand(jobsCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dpctl")
	}

	viper.SetEnvPrefix("DPCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"),
		apiclient.WithActor(viper.GetString("actor")),
		apiclient.WithCronToken(viper.GetString("cron_token")),
	)
}

func orgID() (string, error) {
	org := viper.GetString("org")
	if org == "" {
		return "", errors.New("an organization is required (--org or DPCTL_ORG)")
	}
	return org, nil
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
