package core

import (
	"log/slog"
	"math/rand/v2"

	"github.com/treewire/treewire/state"
)

// Simulator perturbs random nodes until the whole topology has been
// sufficiently informed.
type Simulator struct {
	*Engine
	rng *rand.Rand
}

// NewSimulator wires a convergence driver around topo. rng may be nil, in
// which case a randomly seeded generator is used; tests pass a seeded one to
// obtain a deterministic selection sequence.
func NewSimulator(topo *state.Topology, log *slog.Logger, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Simulator{Engine: NewEngine(topo, log), rng: rng}
}

// Simulate runs batches of minIterations rounds, each round propagating from
// one uniformly random node. With minHops == 0 exactly one batch runs.
// Otherwise batches repeat until every node's MsgCount exceeds minHops.
//
// There is no retry ceiling: on a topology where some node can never hear
// enough suggestions (a disconnected component with an unreachable minHops)
// this loops forever. That liveness hazard is part of the design; callers
// avoid it by choosing a reachable minHops. An empty topology is a no-op.
func (s *Simulator) Simulate(minIterations, minHops uint, recursive bool) {
	nodes := s.Topo.Nodes()
	if len(nodes) == 0 {
		return // nothing to sample
	}
	for batch := 1; ; batch++ {
		for range minIterations {
			picked := nodes[s.rng.IntN(len(nodes))]
			s.RunCalc(picked.Id, recursive)
		}
		if minHops == 0 {
			return
		}
		starved := 0
		for _, node := range nodes {
			if node.MsgCount <= uint64(minHops) {
				starved++
			}
		}
		s.Log.Debug("batch complete", "batch", batch, "starved", starved)
		if starved == 0 {
			return
		}
	}
}
