package sumgrid

import (
	"math/rand"
	"time"

	"github.com/WangLucas2013/Sum-Game/internal/config"
	"github.com/WangLucas2013/Sum-Game/internal/core"
	"github.com/WangLucas2013/Sum-Game/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic injects a new row after every successful match.
	ModeClassic Mode = "classic"
	// ModeTimed injects a new row every TimedRowIntervalSecs seconds.
	ModeTimed Mode = "timed"
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the display config file path for loading on Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game is the round controller: it owns the grid, the selection, the
// target, score, and timers, and sequences every state transition. All
// mutation funnels through Reset, Step, and ToggleBlock, which the
// platform calls strictly sequentially.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	values      ValueSource
	fixedValues ValueSource // test override, survives Reset

	grid *Grid
	sel  *Selection

	score      int
	target     int
	currentSum int

	// Timed mode countdown. secondTicks accumulates simulation ticks
	// toward the next whole second.
	timeLeft    int
	secondTicks int

	// Pending overshoot clear, in ticks. Zero means nothing scheduled.
	// Assigning a fresh countdown on a new overshoot is the
	// cancel-then-reschedule required of the clear timer.
	clearDelayTicks int

	cursorRow, cursorCol int

	gameOver bool
	paused   bool
	tooSmall bool

	// scoreChanged is set when the current step increased the score,
	// so the platform can forward a high-score candidate.
	scoreChanged bool

	tickRate int
	screenW  int
	screenH  int

	display config.SumConfig
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates a new timed mode game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register("sum", func() registry.Game {
		return New()
	})
	registry.Register("sum_timed", func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "sum_timed"
	}
	return "sum"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Sum Game (Timed)"
	}
	return "Sum Game"
}

// SetValueSource overrides the seeded random source; takes effect on the
// next Reset. Tests use this to supply deterministic value sequences.
func (g *Game) SetValueSource(vs ValueSource) {
	g.fixedValues = vs
}

// Reset initializes/restarts the round with the current mode.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	display, err := config.LoadSum(configPath)
	if err != nil {
		display = config.DefaultSumConfig()
	}
	g.display = display

	if g.fixedValues != nil {
		g.values = g.fixedValues
	} else {
		g.values = NewRandValues(g.rng.Int63())
	}

	g.grid = NewGrid(g.values)
	g.grid.Initialize(PrefillRows)
	g.sel = NewSelection()

	g.score = 0
	g.target = g.values.Target()
	g.currentSum = 0
	g.timeLeft = TimedRowIntervalSecs
	g.secondTicks = 0
	g.clearDelayTicks = 0
	g.cursorRow = GridRows - 1
	g.cursorCol = GridCols / 2
	g.gameOver = false
	g.paused = false
	g.scoreChanged = false

	g.checkScreenSize()
}

// checkScreenSize verifies the board and HUD fit the terminal.
func (g *Game) checkScreenSize() {
	minW := GridCols*cellWidth + 6
	minH := GridRows + hudHeight + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.scoreChanged = false

	// Restart after game over re-runs start with the current mode.
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// Terminal lock and pause: no timers, no toggles.
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	// A scheduled overshoot clear fires unconditionally when due, even
	// if toggles during the window changed the selection again.
	if g.clearDelayTicks > 0 {
		g.clearDelayTicks--
		if g.clearDelayTicks == 0 {
			g.clearSelection()
		}
	}

	g.moveCursor(in)

	if in.Has(core.ActionToggle) {
		if b := g.grid.BlockAt(g.cursorRow, g.cursorCol); b != nil {
			g.ToggleBlock(b.ID)
		}
	}

	if g.mode == ModeTimed {
		g.secondTicks++
		if g.secondTicks >= g.tickRate {
			g.secondTicks = 0
			g.timeLeft--
			if g.timeLeft <= 0 {
				g.timeLeft = TimedRowIntervalSecs
				if g.grid.InjectRow() {
					g.gameOver = true
				}
			}
		}
	}

	return core.StepResult{State: g.State(), ScoreChanged: g.scoreChanged}
}

// moveCursor applies directional input, clamped to the grid bounds.
func (g *Game) moveCursor(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.cursorRow--
	}
	if in.Has(core.ActionDown) {
		g.cursorRow++
	}
	if in.Has(core.ActionLeft) {
		g.cursorCol--
	}
	if in.Has(core.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, GridRows-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, GridCols-1)
}

// ToggleBlock flips selection membership of the block with the given id
// and re-evaluates the selection sum. Unknown or stale ids are tolerated
// as no-ops; toggles are ignored while paused or after game over.
func (g *Game) ToggleBlock(id int) {
	if g.gameOver || g.paused {
		return
	}

	b := g.grid.BlockByID(id)
	if b == nil {
		// Stale id: prune it from the selection if present, never fail.
		if g.sel.Has(id) {
			g.sel.Toggle(id)
			g.evaluate()
		}
		return
	}

	b.Selected = g.sel.Toggle(id)
	g.evaluate()
}

// evaluate recomputes the selection sum and applies the resulting
// transition: Match resolves immediately, Overshoot schedules the
// delayed clear, Partial leaves the selection waiting.
func (g *Game) evaluate() {
	sum, out := Evaluate(g.grid, g.sel, g.target)
	g.currentSum = sum

	switch out {
	case OutcomeMatch:
		g.resolveMatch()
	case OutcomeOvershoot:
		g.clearDelayTicks = g.overshootDelayTicks()
	}
}

// resolveMatch applies a successful match as one logical step: selection
// clear, block removal, gravity, scoring, target redraw, and in classic
// mode the follow-up row injection.
func (g *Game) resolveMatch() {
	ids := make(map[int]bool, g.sel.Len())
	for _, id := range g.sel.IDs() {
		ids[id] = true
	}

	// Clear synchronously with the match so no later evaluation can see
	// the stale sum.
	g.sel.Clear()

	n := g.grid.RemoveBlocks(ids)
	g.grid.ApplyGravity()

	if n > 0 {
		g.score += PointsPerBlock * n
		g.scoreChanged = true
	}
	g.target = g.values.Target()
	g.currentSum = 0

	if g.mode == ModeClassic {
		if g.grid.InjectRow() {
			g.gameOver = true
		}
	}
}

// clearSelection empties the selection and the blocks' selected flags.
func (g *Game) clearSelection() {
	for _, id := range g.sel.IDs() {
		if b := g.grid.BlockByID(id); b != nil {
			b.Selected = false
		}
	}
	g.sel.Clear()
	g.currentSum = 0
}

// overshootDelayTicks converts the fixed clear delay to simulation ticks.
func (g *Game) overshootDelayTicks() int {
	ticks := g.tickRate * int(OvershootClearDelay/time.Millisecond) / 1000
	return core.Max(1, ticks)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
