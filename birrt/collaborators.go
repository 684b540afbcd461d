package birrt

// Sampler draws a configuration from the planning problem's sampling
// strategy. Total: it never fails to produce a configuration.
type Sampler interface {
	Shoot() Configuration
}

// DistanceFunc returns a non-negative scalar distance between two
// configurations. A negative return value is a contract violation.
type DistanceFunc func(a, b Configuration) float64

// SteeringMethod produces a candidate path from one configuration toward
// another, ignoring obstacles. It may decline by returning ok=false.
type SteeringMethod func(from, to Configuration) (path Path, ok bool)

// PathProjector maps a candidate path onto a constraint manifold. It may
// decline by returning ok=false; when it succeeds it should preserve the
// path's endpoint semantics where possible.
type PathProjector interface {
	Apply(p Path) (projected Path, ok bool)
}

// ValidationReport describes the outcome of a single Validate call. Err,
// when set, describes the first constraint violation encountered; it is
// informational only — a failed validation is always a locally recovered
// condition (§7), never an error returned to the planner's caller.
type ValidationReport struct {
	Valid bool
	Err   error
}

// PathValidator certifies a (possibly partial) prefix of a path as
// collision-free and constraint-satisfying. It operates in
// "do not propagate past failure" mode: validPrefix is the longest prefix
// of p certified valid, which may be shorter than p or nil.
type PathValidator interface {
	Validate(p Path) (validPrefix Path, report ValidationReport)
}

// RobotFrame exposes the degree-of-freedom count used by the ball-radius
// formula and the default extend_max_length.
type RobotFrame interface {
	DoF() int
}

// Collaborators groups every external service the planner consults. None
// of these are implemented by this package; see the fixtures package for
// a concrete reference set used by tests.
type Collaborators struct {
	Sampler   Sampler
	Distance  DistanceFunc
	Steer     SteeringMethod
	Projector PathProjector // optional; nil means "no projection stage"
	Validator PathValidator
	Frame     RobotFrame
}
