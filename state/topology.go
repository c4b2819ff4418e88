package state

import "slices"

// Topology owns the node and link collections of one simulation. Nodes live
// in a registry keyed by id and every mutation goes through that registry.
// Access must be done only on a single goroutine.
type Topology struct {
	nodes  map[NodeId]*Node
	order  []NodeId // insertion order, keeps traversal deterministic
	links  []Link
	byName map[string]NodeId
	nextId NodeId
	rootId *NodeId // minimum id seen so far, informational only
}

func NewTopology() *Topology {
	return &Topology{
		nodes:  make(map[NodeId]*Node),
		byName: make(map[string]NodeId),
	}
}

// AddNode inserts node under its caller-supplied id and returns the resolved
// id. Inserting an id that is already present is an idempotent merge: the
// stored node stays and its id is returned.
func (t *Topology) AddNode(node *Node) NodeId {
	if _, ok := t.nodes[node.Id]; ok {
		return node.Id
	}
	t.insert(node)
	return node.Id
}

// AddNamed inserts a node identified by name only, assigning the next
// sequential id on first insertion. A duplicate name resolves to the
// existing node's id instead of creating a new one.
func (t *Topology) AddNamed(name string) NodeId {
	if id, ok := t.byName[name]; ok {
		return id
	}
	node := NewNode(t.nextId, name)
	t.insert(node)
	return node.Id
}

func (t *Topology) insert(node *Node) {
	t.nodes[node.Id] = node
	t.order = append(t.order, node.Id)
	if node.Name != "" {
		if _, ok := t.byName[node.Name]; !ok {
			t.byName[node.Name] = node.Id
		}
	}
	if node.Id >= t.nextId {
		t.nextId = node.Id + 1
	}
	if t.rootId == nil || node.Id < *t.rootId {
		id := node.Id
		t.rootId = &id
	}
}

// AddLink stores link unless an edge already joins the same unordered pair,
// in which case the insert is silently ignored.
func (t *Topology) AddLink(link Link) {
	if _, ok := t.FindLink(link.Members.V1, link.Members.V2); ok {
		return
	}
	t.links = append(t.links, link)
}

// FindLink returns the first stored edge joining a and b, in either order.
func (t *Topology) FindLink(a, b NodeId) (Link, bool) {
	for _, link := range t.links {
		if link.Connects(a, b) {
			return link, true
		}
	}
	return Link{}, false
}

// LinksOf returns every edge incident to id, in stored orientation.
func (t *Topology) LinksOf(id NodeId) []Link {
	links := make([]Link, 0)
	for _, link := range t.links {
		if link.Incident(id) {
			links = append(links, link)
		}
	}
	return links
}

// GetNode returns nil when id is absent. Absence is a normal, recoverable
// outcome, not an error.
func (t *Topology) GetNode(id NodeId) *Node {
	return t.nodes[id]
}

// Nodes returns all nodes in insertion order.
func (t *Topology) Nodes() []*Node {
	nodes := make([]*Node, 0, len(t.order))
	for _, id := range t.order {
		nodes = append(nodes, t.nodes[id])
	}
	return nodes
}

func (t *Topology) Len() int {
	return len(t.nodes)
}

// Links returns a copy of the stored link list.
func (t *Topology) Links() []Link {
	return slices.Clone(t.links)
}

// RootId is the minimum node id seen so far. This is bookkeeping only; the
// authoritative belief lives on each Node.
func (t *Topology) RootId() (NodeId, bool) {
	if t.rootId == nil {
		return 0, false
	}
	return *t.rootId, true
}

// TreeLinks returns the links selected by each node's next hop, i.e. the
// spanning structure the current beliefs describe.
func (t *Topology) TreeLinks() []Link {
	links := make([]Link, 0)
	for _, id := range t.order {
		node := t.nodes[id]
		if node.NextHop == nil {
			continue
		}
		if link, ok := t.FindLink(node.Id, *node.NextHop); ok {
			links = append(links, link)
		}
	}
	return links
}
