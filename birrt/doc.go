// Package birrt implements the core of a bidirectional, asymptotically
// optimal sampling-based motion planner (Bi-RRT*). It incrementally builds
// a roadmap over an opaque configuration space, growing two trees rooted
// at a start and a goal configuration until they merge into one connected
// component, then switches to a refinement mode that keeps two
// shortest-path parent maps (one per root) over the unified roadmap and
// inserts improving samples indefinitely.
//
// Configuration sampling, the distance metric, the steering method, path
// projection, and path validation are all supplied by the caller through
// the Collaborators struct; this package treats them as opaque, total,
// synchronous services and never inspects the concrete configuration type.
package birrt
