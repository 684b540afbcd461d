package birrt

// Configuration is an opaque point in the robot's configuration space.
// The core never inspects it directly; every operation on a Configuration
// is performed by a collaborator (DistanceFunc, SteeringMethod, ...).
type Configuration = interface{}

// NodeID is a stable handle identifying a roadmap node, independent of its
// storage location. Parent maps key on NodeID rather than on *Node so that
// a single node can appear in both of the planner's parent maps at once
// without aliasing its storage.
type NodeID int64

// ComponentID is an opaque, comparable identifier for a roadmap connected
// component. Two nodes share a component iff their ComponentIDs are equal.
type ComponentID NodeID

// Node is a roadmap vertex carrying a configuration. Component membership
// is tracked by the Roadmap, not by the node itself, so that nodes remain
// simple, non-owning values.
type Node struct {
	id     NodeID
	config Configuration
}

// ID returns the node's stable handle.
func (n *Node) ID() NodeID { return n.id }

// Config returns the configuration this node carries.
func (n *Node) Config() Configuration { return n.config }

// Path is a continuous curve in configuration space. Implementations are
// supplied by the steering method / path projector collaborators; the core
// only ever calls the methods below.
type Path interface {
	// Length returns the path's scalar length. Must be non-negative;
	// a negative length is a contract violation of the steering method.
	Length() float64

	// Reverse returns a path tracing the same curve from End() to Start().
	Reverse() Path

	// TimeRange returns the start and end of the path's native parameter
	// range, used by truncation to crop relative to t0 rather than
	// assuming a zero-based parameterization.
	TimeRange() (t0, t1 float64)

	// Extract returns the sub-path over [t0, t1] of the path's own
	// parameter range.
	Extract(t0, t1 float64) Path

	// Start returns the configuration at the beginning of the path.
	Start() Configuration

	// End returns the configuration at the end of the path.
	End() Configuration
}

// Edge is a directed roadmap edge from From to To, carrying the Path
// traversed along it.
type Edge struct {
	From NodeID
	To   NodeID
	Path Path
}
