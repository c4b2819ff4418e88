package state

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// NodeCfg declares one fixed-id participant. The name is a display label and
// plays no part in the protocol.
type NodeCfg struct {
	Id   NodeId
	Name string `yaml:",omitempty"`
}

// LinkCfg declares one undirected weighted edge by node id.
type LinkCfg struct {
	A    NodeId
	B    NodeId
	Cost uint64
}

// SimCfg carries the convergence driver parameters.
type SimCfg struct {
	MinIterations uint `yaml:"min_iterations,omitempty"`
	// MinHops is the informed threshold: batches repeat until every node's
	// message count exceeds it. 0 opts out and runs exactly one batch.
	MinHops   uint `yaml:"min_hops"`
	Recursive bool
	Seed      uint64 `yaml:",omitempty"` // 0 picks a random seed
}

// TopologyCfg is the on-disk description of a topology. Nodes carry explicit
// ids; Names declares dynamic-id nodes whose ids are assigned sequentially,
// past the highest fixed id, in declaration order.
type TopologyCfg struct {
	Nodes []NodeCfg `yaml:",omitempty"`
	Names []string  `yaml:",omitempty"`
	Links []LinkCfg
	Sim   SimCfg `yaml:",omitempty"`
}

func ReadTopologyConfig(path string) (*TopologyCfg, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg TopologyCfg
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// BuildTopology validates cfg and materializes it.
func BuildTopology(cfg *TopologyCfg) (*Topology, error) {
	if err := ConfigValidator(cfg); err != nil {
		return nil, err
	}
	topo := NewTopology()
	for _, n := range cfg.Nodes {
		topo.AddNode(NewNode(n.Id, n.Name))
	}
	for _, name := range cfg.Names {
		topo.AddNamed(name)
	}
	for _, l := range cfg.Links {
		topo.AddLink(NewLink(l.A, l.B, l.Cost))
	}
	return topo, nil
}

// Params applies defaults for unset driver parameters. MinHops has no
// default: 0 is the explicit opt-out of the informed threshold.
func (c SimCfg) Params() (minIterations, minHops uint, recursive bool) {
	minIterations = c.MinIterations
	if minIterations == 0 {
		minIterations = DefaultMinIterations
	}
	return minIterations, c.MinHops, c.Recursive
}
