package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bayesnet",
		Short: "bayesnet is a tool to perform approximate inference on bayesian networks",
		Long:  `A tool to estimate posterior distributions over boolean bayesian networks by sampling them`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&(config.logger)), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), inferCmd(config), importCmd(config), showCmd(config))
	return rootCmd
}
