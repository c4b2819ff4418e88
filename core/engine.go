package core

import (
	"log/slog"

	"github.com/treewire/treewire/state"
)

type EngineEvent int

// trace events

const (
	BeliefAdopted EngineEvent = iota
	BeliefRefined
)

func (e EngineEvent) String() string {
	switch e {
	case BeliefAdopted:
		return "BELIEF_ADOPTED"
	case BeliefRefined:
		return "BELIEF_REFINED"
	}
	return "UNKNOWN"
}

// Engine pushes node beliefs across a Topology. It borrows the topology for
// the duration of a call and never retains per-node references across calls.
type Engine struct {
	Topo *state.Topology
	Log  *slog.Logger
}

func NewEngine(topo *state.Topology, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{Topo: topo, Log: log}
}

// RunCalc broadcasts the belief of id to every directly linked neighbour. In
// recursive mode each accepting neighbour is then propagated from in turn,
// breadth first over an explicit worklist, until the cascade dies out. The
// order of the cascade follows the stored link order and is deterministic
// within a run. Returns false, touching nothing, when id is not part of the
// topology.
func (e *Engine) RunCalc(id state.NodeId, recursive bool) bool {
	if e.Topo.GetNode(id) == nil {
		return false
	}
	worklist := []state.NodeId{id}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		node := e.Topo.GetNode(cur)
		if node == nil {
			continue
		}
		// snapshot the belief before mutating any neighbour, so updates made
		// during this sweep cannot feed back into the suggestions we send
		rootId, rootCost := node.RootId, node.RootCost
		for _, link := range e.Topo.LinksOf(cur) {
			peer, ok := link.Other(cur)
			if !ok {
				continue // self-link
			}
			other := e.Topo.GetNode(peer)
			if other == nil {
				continue // loose link end
			}
			prevRoot := other.RootId
			if !other.ReceiveSuggestion(rootId, cur, rootCost+link.Cost) {
				continue
			}
			event := BeliefRefined
			if other.RootId != prevRoot {
				event = BeliefAdopted
			}
			e.Log.Debug(event.String(), "node", peer, "root", other.RootId, "cost", other.RootCost, "via", cur)
			if recursive {
				worklist = append(worklist, peer)
			}
		}
	}
	return true
}
