package birrt

import "encoding/json"

// Default parameter values, mirroring the teacher's defaultPlanIter-style
// named constants in rrt.go.
const (
	// defaultGamma is the multiplier in the near-neighbor ball-radius
	// formula (BiRRT*/gamma).
	defaultGamma = 1.0

	// defaultNearCoincidentEpsilon is the distance below which a nearest
	// node is treated as coincident with the sample (§4.4 step 1, §9).
	defaultNearCoincidentEpsilon = 1e-16

	// defaultMinPathLength is the length below which a built path is
	// treated as "too short to bother with" (§4.4 step 2, §9).
	defaultMinPathLength = 1e-10
)

// Options configures a Planner. It is JSON-tagged so a surrounding system
// can hand it a loosely-typed blob via ApplyExtra, the same
// marshal-then-unmarshal-over-defaults trick the teacher's
// newRRTStarConnectOptions uses against PlannerOptions.extra.
type Options struct {
	// MaxStepLength caps a single extension's path length
	// (BiRRT*/maxStepLength). A value <= 0 means "use sqrt(DoF)",
	// resolved from the robot frame each time Extend or Improve runs; the
	// field itself is left unchanged.
	MaxStepLength float64 `json:"max_step_length"`

	// Gamma multiplies the near-neighbor ball-radius formula
	// (BiRRT*/gamma).
	Gamma float64 `json:"gamma"`

	// NearCoincidentEpsilon and MinPathLength expose the two magic
	// thresholds §9 flags as unjustified in the source planner.
	NearCoincidentEpsilon float64 `json:"near_coincident_epsilon"`
	MinPathLength         float64 `json:"min_path_length"`

	// LoggingInterval sets how often OneStep emits a progress log line:
	// every int(1/LoggingInterval) iterations; a value <= 0 disables it.
	// Named after the teacher's PlannerOptions.LoggingInterval.
	LoggingInterval float64 `json:"logging_interval"`
}

// NewOptions returns an Options struct pre-filled with sane defaults.
func NewOptions() *Options {
	return &Options{
		MaxStepLength:         -1,
		Gamma:                 defaultGamma,
		NearCoincidentEpsilon: defaultNearCoincidentEpsilon,
		MinPathLength:         defaultMinPathLength,
		LoggingInterval:       0.1,
	}
}

// ApplyExtra merges a loosely-typed options blob over the receiver's
// current values, by marshaling extra to JSON and unmarshaling it back
// over the pre-filled struct. Unknown keys in extra are ignored; keys
// absent from extra leave the receiver's existing value untouched.
func (o *Options) ApplyExtra(extra map[string]interface{}) error {
	if len(extra) == 0 {
		return nil
	}
	jsonBytes, err := json.Marshal(extra)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, o)
}
