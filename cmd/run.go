package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/treewire/treewire/core"
	"github.com/treewire/treewire/state"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the convergence simulation",
	Long:  `Loads the topology config, drives it to convergence and prints every node's belief.`,
	Run: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if ok, _ := cmd.Flags().GetBool("verbose"); ok {
			level = slog.LevelDebug
		}
		logPath, _ := cmd.Flags().GetString("log")

		log, err := core.NewLogger("treewire", level, logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		topo, err := core.Run(topologyPath, log)
		if err != nil {
			log.Error("simulation failed", "err", err)
			os.Exit(1)
		}

		printBeliefs(topo)
		if showTree, _ := cmd.Flags().GetBool("tree"); showTree {
			printTree(topo)
		}
	},
}

func printBeliefs(topo *state.Topology) {
	fmt.Println("node\troot\tcost\tnext hop\tmsgs")
	for _, node := range topo.Nodes() {
		hop := "-"
		if node.NextHop != nil {
			hop = fmt.Sprintf("%d", *node.NextHop)
		}
		fmt.Printf("%d\t%d\t%d\t%s\t%d\n", node.Id, node.RootId, node.RootCost, hop, node.MsgCount)
	}
}

func printTree(topo *state.Topology) {
	fmt.Println("tree links:")
	for _, link := range topo.TreeLinks() {
		fmt.Printf("  %d <-> %d (cost %d)\n", link.Members.V1, link.Members.V2, link.Cost)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	runCmd.Flags().String("log", "", "also write logs to this file")
	runCmd.Flags().Bool("tree", false, "print the converged tree links")
}
