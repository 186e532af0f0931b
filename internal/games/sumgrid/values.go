package sumgrid

import (
	"math/rand"
	"time"
)

// Fixed game rules. These are part of the game definition, not tunables.
const (
	GridRows    = 10 // Total rows, including headroom above the prefill
	GridCols    = 6
	PrefillRows = 4 // Bottom rows filled at game start

	MinBlockValue = 1
	MaxBlockValue = 9

	MinTarget = 10
	MaxTarget = 25

	// Points awarded per block in a successful match.
	PointsPerBlock = 10

	// Timed mode injects a row every time this many seconds elapse.
	TimedRowIntervalSecs = 10
)

// OvershootClearDelay is how long a rejected over-target selection stays
// visible before it is cleared, giving the renderer time for feedback.
const OvershootClearDelay = 400 * time.Millisecond

// ValueSource supplies block values and round targets.
// Isolating randomness behind this interface keeps the grid and round
// logic deterministic under test.
type ValueSource interface {
	// BlockValue returns the value for a freshly spawned block, in
	// [MinBlockValue, MaxBlockValue].
	BlockValue() int

	// Target returns a new round target, in [MinTarget, MaxTarget].
	Target() int
}

type randValues struct {
	rng *rand.Rand
}

// NewRandValues returns a seeded ValueSource backed by math/rand.
// The same seed always yields the same value sequence.
func NewRandValues(seed int64) ValueSource {
	return &randValues{rng: rand.New(rand.NewSource(seed))}
}

func (v *randValues) BlockValue() int {
	return MinBlockValue + v.rng.Intn(MaxBlockValue-MinBlockValue+1)
}

func (v *randValues) Target() int {
	return MinTarget + v.rng.Intn(MaxTarget-MinTarget+1)
}
