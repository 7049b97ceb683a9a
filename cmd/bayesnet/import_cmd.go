package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/bayesnet/network/sqlnet"
	"github.com/spf13/cobra"
)

type importCmdConfig struct {
	*rootCmdConfig
	networkInput string
	output       string
}

func importCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &importCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a network into a database",
		Long:  `Import a network defined in a YAML or JSON file into an SQLite3 or PostgreSQL database`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			n, err := loadNetwork(ctx, config.networkInput, config.logger)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			adapter, err := sqlAdapter(config.output, config.logger)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			defer adapter.DB().Close()
			config.Logf("Writing network with %d nodes to %s...", n.Len(), config.output)
			err = sqlnet.Write(ctx, adapter, n)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing network to %s: %v\n", config.output, err)
				os.Exit(4)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.networkInput), "network", "n", "", "path to a YAML (.yml, .yaml) or JSON (.json) file with the network to import (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to an SQLite3 (.db) file or a PostgreSQL DB connection URL to write the network to (required)")
	return cmd
}

func (icc *importCmdConfig) Validate() error {
	if icc.networkInput == "" {
		return fmt.Errorf("required network flag was not set")
	}
	if icc.output == "" {
		return fmt.Errorf("required output flag was not set")
	}
	return nil
}
