package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/treewire/treewire/state"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example topology config",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := state.TopologyCfg{
			Nodes: []state.NodeCfg{
				{Id: 4, Name: "alpha"},
				{Id: 2, Name: "beta"},
				{Id: 3, Name: "gamma"},
			},
			Links: []state.LinkCfg{
				{A: 2, B: 4, Cost: 5},
				{A: 3, B: 2, Cost: 8},
			},
			Sim: state.SimCfg{
				MinIterations: state.DefaultMinIterations,
				MinHops:       state.DefaultMinHops,
				Recursive:     true,
			},
		}

		out, err := yaml.Marshal(&cfg)
		if err != nil {
			panic(err)
		}
		err = os.WriteFile(topologyPath, out, 0700)
		if err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", topologyPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
