package core

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/treewire/treewire/state"
)

func TestRun(t *testing.T) {
	cfg := `
nodes:
  - id: 1
  - id: 2
links:
  - a: 1
    b: 2
    cost: 3
sim:
  min_iterations: 5
  min_hops: 10
  recursive: true
  seed: 1
`
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "topology.yaml")
	assert.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0700))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	topo, err := Run(cfgPath, log)
	assert.NoError(t, err)

	for _, node := range topo.Nodes() {
		assert.Equal(t, state.NodeId(1), node.RootId)
		assert.Greater(t, node.MsgCount, uint64(10))
	}
	assert.Equal(t, uint64(3), topo.GetNode(2).RootCost)
}

func TestRun_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "topology.yaml")
	assert.NoError(t, os.WriteFile(cfgPath, []byte("links:\n  - a: 1\n    b: 2\n    cost: 1\n"), 0700))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := Run(cfgPath, log)
	assert.ErrorContains(t, err, "node 1 not defined")
}

func TestRun_MissingFile(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := Run(filepath.Join(t.TempDir(), "nope.yaml"), log)
	assert.Error(t, err)
}
