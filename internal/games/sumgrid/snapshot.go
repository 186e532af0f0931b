package sumgrid

// StateType labels the round's top-level state for snapshots.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StatePaused   StateType = "paused"
	StateGameOver StateType = "game_over"
	StateTooSmall StateType = "paused_small_window"
)

// BlockSnapshot is an immutable copy of one block.
type BlockSnapshot struct {
	ID       int
	Value    int
	Row, Col int
	Selected bool
}

// Snapshot captures the complete observable state after an event: the
// full grid, score, target, current sum, timer, and flags. External
// consumers (rendering, persistence, tests) read snapshots and never
// mutate game state back.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Score      int
	Target     int
	CurrentSum int
	TimeLeft   int // seconds until the next timed-mode row

	CursorRow, CursorCol int

	Blocks   []BlockSnapshot // row-major, top-left first
	Selected []int           // selected ids in insertion order

	// ClearPending is true while an overshoot clear is scheduled.
	ClearPending bool

	State StateType
}

// Snapshot returns an immutable copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	blocks := g.grid.Blocks()
	bs := make([]BlockSnapshot, len(blocks))
	for i, b := range blocks {
		bs[i] = BlockSnapshot{
			ID:       b.ID,
			Value:    b.Value,
			Row:      b.Row,
			Col:      b.Col,
			Selected: b.Selected,
		}
	}

	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.score,
		Target:       g.target,
		CurrentSum:   g.currentSum,
		TimeLeft:     g.timeLeft,
		CursorRow:    g.cursorRow,
		CursorCol:    g.cursorCol,
		Blocks:       bs,
		Selected:     g.sel.IDs(),
		ClearPending: g.clearDelayTicks > 0,
		State:        state,
	}
}
