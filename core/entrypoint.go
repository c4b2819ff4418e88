package core

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"path"

	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"

	"github.com/treewire/treewire/state"
)

// NewLogger builds the console handler, fanned out to a text log file when
// logPath is not empty.
func NewLogger(label string, level slog.Level, logPath string) (*slog.Logger, error) {
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: label,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// Run loads and validates the topology described at cfgPath, drives it to
// convergence and returns it for inspection.
func Run(cfgPath string, log *slog.Logger) (*state.Topology, error) {
	cfg, err := state.ReadTopologyConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	topo, err := state.BuildTopology(cfg)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Sim.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Sim.Seed, 0))
	}
	sim := NewSimulator(topo, log, rng)

	minIterations, minHops, recursive := cfg.Sim.Params()
	log.Info("starting simulation",
		"nodes", topo.Len(),
		"links", len(topo.Links()),
		"min_iterations", minIterations,
		"min_hops", minHops,
		"recursive", recursive)
	sim.Simulate(minIterations, minHops, recursive)
	if rootId, ok := topo.RootId(); ok {
		log.Info("simulation complete", "expected_root", rootId)
	}
	return topo, nil
}
