// Package cli wires the cobra command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "cacheburn",
	Short:   "A synthetic workload generator for cache services",
	Version: version,
	Long: `Cacheburn replays configurable workload scenarios against a cache
service's HTTP API, measuring per-request latency and status, and exports
every request record as a CSV report for offline analysis.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(benchCmd)
	RootCmd.AddCommand(scenariosCmd)
}
