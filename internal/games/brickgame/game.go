package brickgame

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/registry"
)

// Mode selects how the piece queue is generated.
type Mode string

const (
	ModeClassic Mode = "classic" // Randomizer from config (uniform by default)
	ModeBag     Mode = "bag"     // Always a shuffled 7-bag
)

// maxTicksPerFrame bounds how many gravity ticks one frame may run, so a
// very short interval cannot stall the platform loop.
const maxTicksPerFrame = Rows

// Package-level variables for config/difficulty, set by the CLI before the
// game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts Engine to the arcade platform. It converts platform frames
// into gravity ticks and input actions into engine calls.
type Game struct {
	mode     Mode
	cfg      *config.BrickConfig // Overrides file lookup when set
	rng      *rand.Rand
	tickRate int
	frame    time.Duration

	engine *Engine
	sched  *Scheduler
	frames uint64

	loadErr error

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a classic BrickGame.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBag creates a BrickGame that deals pieces from shuffled bags.
func NewBag() *Game {
	return &Game{mode: ModeBag}
}

// NewWithConfig creates a classic game that uses cfg instead of loading
// configuration from disk.
func NewWithConfig(cfg config.BrickConfig) *Game {
	return &Game{mode: ModeClassic, cfg: &cfg}
}

func init() {
	registry.Register("brickgame", func() registry.Game {
		return New()
	})
	registry.Register("brickgame_bag", func() registry.Game {
		return NewBag()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeBag {
		return "brickgame_bag"
	}
	return "brickgame"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBag {
		return "BrickGame (7-Bag)"
	}
	return "BrickGame"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.Resize(rc.ScreenW, rc.ScreenH)
	g.frames = 0

	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(g.tickRate)

	cfg := g.loadConfig()
	g.engine = NewEngine(g.engineOptions(cfg, g.rng.Int63()))
	g.sched = NewScheduler(g.engine.Interval())
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = g.screenW < layoutWidth || g.screenH < layoutHeight
}

// loadConfig resolves the config for this run. Load errors fall back to
// the defaults and are kept for the platform to report.
func (g *Game) loadConfig() config.BrickConfig {
	g.loadErr = nil
	var cfg config.BrickConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		loaded, err := config.LoadBrick(configPath)
		if err != nil {
			g.loadErr = err
			loaded = config.DefaultBrickConfig()
		}
		cfg = loaded
	}
	config.ApplyBrickPreset(&cfg, difficultyPreset)
	if g.mode == ModeBag {
		cfg.Queue.Randomizer = config.RandomizerBag
	}
	return cfg
}

// engineOptions converts the YAML config into engine options.
func (g *Game) engineOptions(cfg config.BrickConfig, seed int64) Options {
	gravity := Gravity{
		Base:         time.Duration(cfg.Gravity.BaseIntervalMS) * time.Millisecond,
		Min:          time.Duration(cfg.Gravity.MinIntervalMS) * time.Millisecond,
		ScoreDivisor: uint64(max(cfg.Gravity.ScoreDivisor, 0)),
		PausedPoll:   time.Duration(cfg.Gravity.PausedPollMS) * time.Millisecond,
	}
	scorer := Scorer{
		LinePoints:  uint64(max(cfg.Scoring.LinePoints, 0)),
		Chain3Bonus: uint64(max(cfg.Scoring.Chain3Bonus, 0)),
		Chain4Bonus: uint64(max(cfg.Scoring.Chain4Bonus, 0)),
		ChainStep:   uint64(max(cfg.Scoring.ChainStep, 0)),
	}

	var src Randomizer
	if cfg.Queue.Randomizer == config.RandomizerBag {
		src = NewBagRandomizer(seed)
	} else {
		src = NewUniformRandomizer(seed)
	}

	return Options{Scorer: &scorer, Gravity: &gravity, Randomizer: src}
}

// LoadError returns the config error hit by the last Reset, if any.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Engine exposes the underlying simulation for read-only inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step advances the game by one platform frame: it applies this frame's
// actions in order, then runs any gravity ticks that came due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frames++

	// Handle restart
	if in.Has(core.ActionRestart) && g.engine.GameOver() {
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

	locks, lines, score := g.engine.Locks(), g.engine.Lines(), g.engine.Score()

	for _, a := range in.Actions {
		g.apply(a)
	}

	g.sched.Advance(g.frame)
	for fired := 0; g.sched.Due() && fired < maxTicksPerFrame; fired++ {
		next, changed := g.engine.Tick()
		g.sched.Fire(next, changed)
		if !changed {
			break
		}
	}

	return core.StepResult{
		State:        g.State(),
		Locked:       g.engine.Locks() - locks,
		LinesCleared: g.engine.Lines() - lines,
		Points:       int(g.engine.Score() - score),
	}
}

// apply maps one platform action onto the engine.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.engine.TogglePause()
	case core.ActionLeft:
		g.engine.Move(-1, 0)
	case core.ActionRight:
		g.engine.Move(1, 0)
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionSoftDrop:
		g.engine.SoftDrop()
	case core.ActionHardDrop:
		if g.engine.Phase() != PhasePlaying {
			return
		}
		g.engine.HardDrop()
		// The next piece gets a full gravity period.
		g.sched.Reset(g.engine.Interval())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.engine.Score()),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused(),
	}
}

// GravityInterval returns the current gravity period.
func (g *Game) GravityInterval() time.Duration {
	return g.engine.Interval()
}
