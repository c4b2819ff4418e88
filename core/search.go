package core

import (
	"slices"

	"github.com/treewire/treewire/state"
)

// SearchResult is a reconstructed path between two nodes. Links always starts
// with the start node's zero-cost self-link; Cost is the sum over Links.
type SearchResult struct {
	Links []state.Link
	Cost  uint64
}

func pathResult(path []state.Link) *SearchResult {
	res := &SearchResult{Links: path}
	for _, link := range path {
		res.Cost += link.Cost
	}
	return res
}

type pathTo struct {
	id   state.NodeId
	path []state.Link
}

// BreadthFirstPath searches for a path from start to target, visiting nodes
// in breadth-first order. A self-query resolves to a single zero-cost
// self-link without consulting the topology. Returns nil when the start node
// is absent or no path exists; callers branch on nil, it is not an error.
func BreadthFirstPath(t *state.Topology, start, target state.NodeId) *SearchResult {
	if start == target {
		return pathResult([]state.Link{state.NewLink(start, target, 0)})
	}
	if t.GetNode(start) == nil {
		return nil
	}
	visited := map[state.NodeId]bool{start: true}
	queue := []pathTo{{start, []state.Link{state.NewLink(start, start, 0)}}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.id == target {
			return pathResult(cur.path)
		}
		for _, link := range t.LinksOf(cur.id) {
			peer, ok := link.Other(cur.id)
			if !ok {
				continue // self-link
			}
			if t.GetNode(peer) == nil || visited[peer] {
				continue
			}
			visited[peer] = true
			queue = append(queue, pathTo{peer, append(slices.Clone(cur.path), link)})
		}
	}
	return nil
}

// DepthFirstPath is the depth-first counterpart of BreadthFirstPath, with the
// same framing and nil conventions. The recursion is expressed as an explicit
// stack so deep topologies cannot exhaust the call stack.
func DepthFirstPath(t *state.Topology, start, target state.NodeId) *SearchResult {
	if start == target {
		return pathResult([]state.Link{state.NewLink(start, target, 0)})
	}
	if t.GetNode(start) == nil {
		return nil
	}
	visited := map[state.NodeId]bool{start: true}
	stack := []pathTo{{start, []state.Link{state.NewLink(start, start, 0)}}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.id == target {
			return pathResult(cur.path)
		}
		for _, link := range t.LinksOf(cur.id) {
			peer, ok := link.Other(cur.id)
			if !ok {
				continue
			}
			if t.GetNode(peer) == nil || visited[peer] {
				continue
			}
			visited[peer] = true
			stack = append(stack, pathTo{peer, append(slices.Clone(cur.path), link)})
		}
	}
	return nil
}
