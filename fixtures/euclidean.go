// Package fixtures provides a concrete, 2-D Euclidean set of birrt
// collaborators (sampler, distance, steering, validator, frame) for
// exercising the core planner in tests, grounded on
// plannerOptions.go's defaultDistanceFunc and the simple test-double
// frames in motionPlanner_test.go / utils_test.go.
package fixtures

import (
	"math/rand"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats"

	"github.com/kestrelrobotics/birrtstar/birrt"
)

// Config adapts r2.Point to birrt.Configuration.
type Config = r2.Point

// LinePath is a straight-line Path between two 2-D points, parameterized
// by arc length so TimeRange() and Extract() operate directly in
// distance units.
type LinePath struct {
	from, to Config
}

// NewLinePath returns the straight-line path from -> to.
func NewLinePath(from, to Config) *LinePath {
	return &LinePath{from: from, to: to}
}

func (p *LinePath) Length() float64 {
	return norm(p.to.Sub(p.from))
}

func (p *LinePath) Reverse() birrt.Path {
	return &LinePath{from: p.to, to: p.from}
}

func (p *LinePath) TimeRange() (float64, float64) {
	return 0, p.Length()
}

func (p *LinePath) Extract(t0, t1 float64) birrt.Path {
	length := p.Length()
	if length < 1e-12 {
		return &LinePath{from: p.from, to: p.to}
	}
	at := func(t float64) Config {
		frac := t / length
		return Config{
			X: p.from.X + frac*(p.to.X-p.from.X),
			Y: p.from.Y + frac*(p.to.Y-p.from.Y),
		}
	}
	return &LinePath{from: at(t0), to: at(t1)}
}

func (p *LinePath) Start() birrt.Configuration { return p.from }
func (p *LinePath) End() birrt.Configuration   { return p.to }

func norm(v r2.Point) float64 {
	return floats.Norm([]float64{v.X, v.Y}, 2)
}

// EuclideanDistance is a birrt.DistanceFunc over Config values.
func EuclideanDistance(a, b birrt.Configuration) float64 {
	return norm(a.(Config).Sub(b.(Config)))
}

// StraightLineSteer is a birrt.SteeringMethod that always succeeds,
// producing the direct line segment from -> to.
func StraightLineSteer(from, to birrt.Configuration) (birrt.Path, bool) {
	return NewLinePath(from.(Config), to.(Config)), true
}

// AcceptAllValidator is a birrt.PathValidator that certifies every path
// in full, for tests that don't exercise obstacle rejection.
type AcceptAllValidator struct{}

func (AcceptAllValidator) Validate(p birrt.Path) (birrt.Path, birrt.ValidationReport) {
	return p, birrt.ValidationReport{Valid: true}
}

// RejectAllValidator is a birrt.PathValidator that certifies nothing,
// for Scenario E (infeasible extension).
type RejectAllValidator struct{}

func (RejectAllValidator) Validate(p birrt.Path) (birrt.Path, birrt.ValidationReport) {
	return nil, birrt.ValidationReport{Valid: false, Err: errRejected}
}

var errRejected = rejectedErr{}

type rejectedErr struct{}

func (rejectedErr) Error() string { return "fixtures: validator rejects all paths" }

// UniformSampler draws configurations uniformly from a rectangular
// region [minX, maxX] x [minY, maxY].
type UniformSampler struct {
	MinX, MaxX, MinY, MaxY float64
	Rand                   *rand.Rand
}

func (s *UniformSampler) Shoot() birrt.Configuration {
	r := s.Rand
	if r == nil {
		r = rand.New(rand.NewSource(1))
		s.Rand = r
	}
	return Config{
		X: s.MinX + r.Float64()*(s.MaxX-s.MinX),
		Y: s.MinY + r.Float64()*(s.MaxY-s.MinY),
	}
}

// FixedSequenceSampler replays a fixed sequence of configurations, one
// per Shoot() call, then repeats the last entry forever. Useful for
// deterministic scenario tests (Scenario A/B/C).
type FixedSequenceSampler struct {
	Sequence []Config
	idx      int
}

func (s *FixedSequenceSampler) Shoot() birrt.Configuration {
	if len(s.Sequence) == 0 {
		return Config{}
	}
	i := s.idx
	if i >= len(s.Sequence) {
		i = len(s.Sequence) - 1
	} else {
		s.idx++
	}
	return s.Sequence[i]
}

// Frame2D is a birrt.RobotFrame reporting 2 degrees of freedom.
type Frame2D struct{}

func (Frame2D) DoF() int { return 2 }
