package state

// Link is an undirected weighted edge between two node ids. Equality of the
// unordered member pair decides whether two links connect the same nodes.
type Link struct {
	Members Pair[NodeId, NodeId]
	Cost    uint64
}

func NewLink(a, b NodeId, cost uint64) Link {
	return Link{Members: Pair[NodeId, NodeId]{a, b}, Cost: cost}
}

// Connects reports whether the link joins a and b, in either order.
func (l Link) Connects(a, b NodeId) bool {
	return l.Members.V1 == a && l.Members.V2 == b ||
		l.Members.V1 == b && l.Members.V2 == a
}

// Incident reports whether id is one of the link's members.
func (l Link) Incident(id NodeId) bool {
	return l.Members.V1 == id || l.Members.V2 == id
}

// Other resolves the far end of the link as seen from id. A self-link has no
// far end and reports false, so a node never ends up suggesting a root to
// itself.
func (l Link) Other(id NodeId) (NodeId, bool) {
	if l.Members.V1 == l.Members.V2 {
		return 0, false
	}
	switch id {
	case l.Members.V1:
		return l.Members.V2, true
	case l.Members.V2:
		return l.Members.V1, true
	}
	return 0, false
}
