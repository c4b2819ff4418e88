package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/treewire/treewire/state"
)

// sevenNodeTree builds the reference search fixture.
//
//        [1]
//       /   \
//    1 /     \ 1
//     /       \
//   [3]       [2]
//   / \         \
// 1/   \1        \ 2
// /     \         \
// [5]   [6]       [4]
//                  |
//                  | 1
//                 [7]
func sevenNodeTree() *state.Topology {
	topo := state.NewTopology()
	for id := state.NodeId(1); id <= 7; id++ {
		topo.AddNode(state.NewNode(id, ""))
	}
	topo.AddLink(state.NewLink(1, 3, 1))
	topo.AddLink(state.NewLink(1, 2, 1))
	topo.AddLink(state.NewLink(2, 4, 2))
	topo.AddLink(state.NewLink(3, 5, 1))
	topo.AddLink(state.NewLink(3, 6, 1))
	topo.AddLink(state.NewLink(4, 7, 1))
	return topo
}

func TestBreadthFirstPath_SelfQuery(t *testing.T) {
	// a self-query resolves even on an empty topology
	res := BreadthFirstPath(state.NewTopology(), 1, 1)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(0), res.Cost)
	assert.Equal(t, []state.Link{state.NewLink(1, 1, 0)}, res.Links)
}

func TestBreadthFirstPath_MissingEndpoints(t *testing.T) {
	topo := state.NewTopology()
	topo.AddNode(state.NewNode(1, ""))

	assert.Nil(t, BreadthFirstPath(topo, 2, 1))
	assert.Nil(t, BreadthFirstPath(topo, 1, 2))
	assert.Nil(t, BreadthFirstPath(state.NewTopology(), 1, 2))
}

func TestBreadthFirstPath_NoLink(t *testing.T) {
	topo := state.NewTopology()
	topo.AddNode(state.NewNode(1, ""))
	topo.AddNode(state.NewNode(2, ""))
	topo.AddLink(state.NewLink(1, 3, 1))

	assert.Nil(t, BreadthFirstPath(topo, 1, 2))
}

func TestBreadthFirstPath_TwoElements(t *testing.T) {
	topo := state.NewTopology()
	topo.AddNode(state.NewNode(1, ""))
	topo.AddNode(state.NewNode(2, ""))
	link := state.NewLink(1, 2, 5)
	topo.AddLink(link)

	res := BreadthFirstPath(topo, 1, 2)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(5), res.Cost)
	// the path is framed by the start node's self-link
	assert.Equal(t, state.NewLink(1, 1, 0), res.Links[0])
	assert.Equal(t, link, res.Links[1])
}

func TestBreadthFirstPath_MultipleElements(t *testing.T) {
	topo := sevenNodeTree()
	res := BreadthFirstPath(topo, 1, 7)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(4), res.Cost)
	assert.Equal(t, []state.Link{
		state.NewLink(1, 1, 0),
		state.NewLink(1, 2, 1),
		state.NewLink(2, 4, 2),
		state.NewLink(4, 7, 1),
	}, res.Links)
}

func TestBreadthFirstPath_LooseEnds(t *testing.T) {
	topo := state.NewTopology()
	topo.AddNode(state.NewNode(1, ""))
	topo.AddNode(state.NewNode(2, ""))
	topo.AddLink(state.NewLink(1, 2, 1))
	topo.AddLink(state.NewLink(1, 3, 1)) // dangling endpoint

	res := BreadthFirstPath(topo, 1, 2)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(1), res.Cost)
}

func TestBreadthFirstPath_SelfLinkedObjects(t *testing.T) {
	topo := state.NewTopology()
	topo.AddNode(state.NewNode(1, ""))
	topo.AddNode(state.NewNode(2, ""))
	topo.AddLink(state.NewLink(1, 2, 5))
	topo.AddLink(state.NewLink(1, 1, 5))

	res := BreadthFirstPath(topo, 1, 2)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(5), res.Cost)
	assert.Equal(t, state.NewLink(1, 2, 5), res.Links[1])
}

func TestBreadthFirstPath_Circular(t *testing.T) {
	topo := state.NewTopology()
	for id := state.NodeId(1); id <= 7; id++ {
		topo.AddNode(state.NewNode(id, ""))
	}
	topo.AddLink(state.NewLink(1, 3, 1))
	topo.AddLink(state.NewLink(1, 2, 1))
	topo.AddLink(state.NewLink(2, 4, 2))
	topo.AddLink(state.NewLink(3, 5, 1))
	topo.AddLink(state.NewLink(5, 1, 1)) // cycle 1-3-5-1
	topo.AddLink(state.NewLink(4, 7, 1))

	res := BreadthFirstPath(topo, 1, 7)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(4), res.Cost)
	assert.Equal(t, []state.Link{
		state.NewLink(1, 1, 0),
		state.NewLink(1, 2, 1),
		state.NewLink(2, 4, 2),
		state.NewLink(4, 7, 1),
	}, res.Links)
}

func TestDepthFirstPath_SelfQuery(t *testing.T) {
	res := DepthFirstPath(state.NewTopology(), 3, 3)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(0), res.Cost)
}

func TestDepthFirstPath_TwoElements(t *testing.T) {
	topo := state.NewTopology()
	topo.AddNode(state.NewNode(1, ""))
	topo.AddNode(state.NewNode(2, ""))
	link := state.NewLink(1, 2, 5)
	topo.AddLink(link)

	res := DepthFirstPath(topo, 1, 2)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(5), res.Cost)
	assert.Equal(t, link, res.Links[1])
}

func TestDepthFirstPath_MultiHop(t *testing.T) {
	// paths in a tree are unique, so DFS must find the same one as BFS
	topo := sevenNodeTree()
	res := DepthFirstPath(topo, 1, 7)
	assert.NotNil(t, res)
	assert.Equal(t, uint64(4), res.Cost)
	assert.Equal(t, []state.Link{
		state.NewLink(1, 1, 0),
		state.NewLink(1, 2, 1),
		state.NewLink(2, 4, 2),
		state.NewLink(4, 7, 1),
	}, res.Links)
}

func TestDepthFirstPath_NoPath(t *testing.T) {
	topo := state.NewTopology()
	topo.AddNode(state.NewNode(1, ""))
	topo.AddNode(state.NewNode(2, ""))

	assert.Nil(t, DepthFirstPath(topo, 1, 2))
}
