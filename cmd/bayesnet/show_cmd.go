package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pbanos/bayesnet/estimate/json"
	"github.com/spf13/cobra"
)

type showCmdConfig struct {
	*rootCmdConfig
	storeURL   string
	id         string
	jsonOutput bool
}

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &showCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a stored estimate",
		Long:  `Show an estimate previously saved on a store by the infer command`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			store, err := openStore(ctx, config.storeURL, config.logger)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			defer store.Close(ctx)
			e, err := store.Get(ctx, config.id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "retrieving estimate %s: %v\n", config.id, err)
				os.Exit(3)
			}
			if e == nil {
				fmt.Fprintf(os.Stderr, "estimate %s not found\n", config.id)
				os.Exit(4)
			}
			if config.jsonOutput {
				err = json.WriteEstimate(os.Stdout, e)
				if err != nil {
					fmt.Fprintf(os.Stderr, "writing estimate: %v\n", err)
					os.Exit(5)
				}
				return
			}
			fmt.Print(e)
		},
	}
	cmd.PersistentFlags().StringVar(&(config.storeURL), "store", "", "redis://host:port/prefix or mongodb:// URL of the store holding the estimate (required)")
	cmd.PersistentFlags().StringVar(&(config.id), "id", "", "id of the estimate to show (required)")
	cmd.PersistentFlags().BoolVar(&(config.jsonOutput), "json", false, "print the estimate as JSON")
	return cmd
}

func (scc *showCmdConfig) Validate() error {
	if scc.storeURL == "" {
		return fmt.Errorf("required store flag was not set")
	}
	if scc.id == "" {
		return fmt.Errorf("required id flag was not set")
	}
	return nil
}
