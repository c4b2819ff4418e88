package state

const (
	// DefaultMinIterations is the batch size used when a sim config leaves
	// min_iterations unset.
	DefaultMinIterations = 10
	// DefaultMinHops is the informed threshold written by the init scaffold.
	// A config may explicitly set min_hops to 0 to opt out of the heuristic
	// and run a single batch.
	DefaultMinHops = 100

	MaxNameLength = 100
)

var (
	DefaultTopologyPath = "topology.yaml"
)
