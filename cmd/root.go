package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/treewire/treewire/state"
)

var topologyPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "treewire",
	Short: "Treewire Spanning-Tree Election Simulator",
	Long: `Treewire simulates a minimal distributed spanning-tree convergence protocol.
Nodes gossip about which participant should be the tree's root and the cheapest known path-cost to it, until the whole connected topology agrees.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&topologyPath, "topology", "t", state.DefaultTopologyPath, "topology config file")
}
