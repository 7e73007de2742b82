package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crossgovd",
		Short: "Child Governance Coordinator",
		Long:  "Mirrors parent-chain governance proposals as local polls, tallies weighted ballots and relays the result back to the parent chain.",
	}

	rootCmd.AddCommand(getStartCommand())
	setPersistentFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setPersistentFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("home", defaultHome(), "directory for config and data")
	_ = viper.BindPFlag("home", rootCmd.PersistentFlags().Lookup("home"))

	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace|debug|info|warn|error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crossgovd"
	}

	return filepath.Join(home, ".crossgovd")
}
