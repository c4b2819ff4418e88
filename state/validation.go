package state

import (
	"fmt"
	"regexp"
	"slices"
)

var namePattern = regexp.MustCompile(`^[0-9a-z._-]+$`)

// NameValidator checks a dynamic-mode node name.
func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid node name, must match pattern %s", s, namePattern.String())
	}
	if len(s) > MaxNameLength {
		return fmt.Errorf("len(%q) = %d > %d is too long", s, len(s), MaxNameLength)
	}
	return nil
}

// ConfigValidator rejects topology files that would silently collapse under
// the store's idempotent merge rules. Duplicates are legal against the API;
// in a config file they are almost certainly typos.
func ConfigValidator(cfg *TopologyCfg) error {
	ids := make(map[NodeId]struct{})
	for _, n := range cfg.Nodes {
		if _, ok := ids[n.Id]; ok {
			return fmt.Errorf("duplicate node id: %d", n.Id)
		}
		ids[n.Id] = struct{}{}
	}

	// dynamic-mode nodes get sequential ids past the highest fixed id
	next := NodeId(0)
	for id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	seenNames := make(map[string]struct{})
	for _, name := range cfg.Names {
		if err := NameValidator(name); err != nil {
			return err
		}
		if _, ok := seenNames[name]; ok {
			return fmt.Errorf("duplicate node name: %s", name)
		}
		seenNames[name] = struct{}{}
		ids[next] = struct{}{}
		next++
	}

	edges := make([]Pair[NodeId, NodeId], 0)
	for _, l := range cfg.Links {
		edge := MakeSortedPair(l.A, l.B)
		if slices.Contains(edges, edge) {
			return fmt.Errorf("duplicate link found: %d, %d", l.A, l.B)
		}
		if _, ok := ids[l.A]; !ok {
			return fmt.Errorf("node %d not defined", l.A)
		}
		if _, ok := ids[l.B]; !ok {
			return fmt.Errorf("node %d not defined", l.B)
		}
		edges = append(edges, edge)
	}
	return nil
}
