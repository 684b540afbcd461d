package birrt

import (
	"context"

	"go.opencensus.io/trace"
)

// BuildPath composes the steering -> projection -> truncation ->
// validation pipeline into a single candidate-edge producer (§4.3),
// grounded on the teacher's checkPath span-wrapped steer+validate
// sequence (armplanning/context.go).
//
// A returned path p always starts at qFrom; p.End() may differ from qTo
// after truncation or partial validation, so callers that need the exact
// terminal configuration must re-read p.End() (as Extend does).
func BuildPath(
	ctx context.Context,
	collab *Collaborators,
	qFrom, qTo Configuration,
	maxLength float64,
	validate bool,
) (Path, bool) {
	_, span := trace.StartSpan(ctx, "build_path")
	defer span.End()

	path, ok := collab.Steer(qFrom, qTo)
	if !ok || path == nil {
		return nil, false
	}

	if collab.Projector != nil {
		path, ok = collab.Projector.Apply(path)
		if !ok || path == nil {
			return nil, false
		}
	}

	if maxLength > 0 && path.Length() > maxLength {
		t0, _ := path.TimeRange()
		path = path.Extract(t0, t0+maxLength)
	}

	if !validate {
		return path, true
	}

	// validPrefix may be nil or empty-equivalent when nothing on the path
	// validates; callers must check its length rather than treat a
	// non-ok return as the failure signal here (§4.3 step 5).
	validPrefix, _ := collab.Validator.Validate(path)
	return validPrefix, true
}
