package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/treewire/treewire/core"
	"github.com/treewire/treewire/state"
)

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path [from] [to]",
	Short: "Find a path between two nodes",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			_ = cmd.Usage()
			return
		}
		from, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid node id: %s\n", args[0])
			os.Exit(1)
		}
		to, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid node id: %s\n", args[1])
			os.Exit(1)
		}

		cfg, err := state.ReadTopologyConfig(topologyPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		topo, err := state.BuildTopology(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		search := core.BreadthFirstPath
		if dfs, _ := cmd.Flags().GetBool("dfs"); dfs {
			search = core.DepthFirstPath
		}
		result := search(topo, state.NodeId(from), state.NodeId(to))
		if result == nil {
			fmt.Printf("no path from %d to %d\n", from, to)
			os.Exit(1)
		}

		// the leading self-link only frames the path, skip it when printing
		for _, link := range result.Links[1:] {
			fmt.Printf("%d <-> %d (cost %d)\n", link.Members.V1, link.Members.V2, link.Cost)
		}
		fmt.Printf("total cost: %d\n", result.Cost)
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().Bool("dfs", false, "use depth-first search instead of breadth-first")
}
