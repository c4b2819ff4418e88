package state

// NodeId identifies one participant. Ids are globally comparable; the lower
// id is the more senior candidate during root election.
type NodeId int64

// Node is the per-participant belief state. The (RootId, RootCost, NextHop)
// triple transitions only through ReceiveSuggestion; everything else reads it.
type Node struct {
	Id   NodeId
	Name string
	// MsgCount is the number of suggestions this node has ever received,
	// accepted or not. It is the convergence heuristic's only signal and is
	// never reset.
	MsgCount uint64
	RootId   NodeId
	RootCost uint64
	NextHop  *NodeId // nil while the node believes itself to be root
}

// NewNode returns a node that starts out believing itself to be root.
func NewNode(id NodeId, name string) *Node {
	return &Node{
		Id:     id,
		Name:   name,
		RootId: id,
	}
}

// ReceiveSuggestion applies the acceptance rule to a (root, cost) suggestion
// arriving from the neighbour source. A strictly lower root id wins
// unconditionally, regardless of cost; the same root with a strictly cheaper
// path refines the current belief; anything else is rejected. Returns true
// iff the suggestion was accepted.
func (n *Node) ReceiveSuggestion(suggestedRoot, source NodeId, cost uint64) bool {
	n.MsgCount++
	if suggestedRoot < n.RootId {
		n.RootId = suggestedRoot
		n.RootCost = cost
		n.NextHop = &source
		return true
	}
	if suggestedRoot == n.RootId && cost < n.RootCost {
		n.RootCost = cost
		n.NextHop = &source
		return true
	}
	return false
}
