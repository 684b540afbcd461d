package birrt

import (
	"context"

	"go.opencensus.io/trace"

	"github.com/kestrelrobotics/birrtstar/logging"
)

// Connect repeatedly extends the tree rooted at targetRoot toward q until
// the roadmap's two connected components merge (§4.5), narrowed from the
// teacher's rrtConnect.go map1/map2 alternating-extend loop to a single
// fixed target. Returns false as soon as an Extend call fails to make
// progress; returns true once the merge is observed.
func Connect(
	ctx context.Context,
	rm Roadmap,
	collab *Collaborators,
	opts *Options,
	targetRoot NodeID,
	pm *ParentMap,
	q Configuration,
	logger logging.Logger,
) (bool, error) {
	ctx, span := trace.StartSpan(ctx, "connect")
	defer span.End()

	for len(rm.Components()) == 2 {
		qPrime := q
		ok, err := Extend(ctx, rm, collab, opts, targetRoot, pm, &qPrime, logger)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
