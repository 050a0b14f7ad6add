package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"starhopper/logging"
)

// Mode selects which scene owns the update pipeline.
type Mode int

const (
	ModeFlight Mode = iota
	ModeBoss
)

// Game is the top-level state: the flight simulation, the boss scene once
// entered, and the shell concerns (pause, restart, map overlay, timing).
type Game struct {
	config  Config
	log     *logging.Logger
	rng     *rand.Rand
	oracle  PlanetOracle
	world   *World
	camera  *Camera
	spawner *Spawner
	dust    []dustMote
	boss    *BossScene

	mode     Mode
	paused   bool
	showMap  bool
	gameOver bool

	lastUpdate time.Time
	readInput  func() InputState
}

// Option configures a Game at construction time.
type Option func(*Game)

// WithLogger installs a logger; the default discards everything.
func WithLogger(log *logging.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithSeed fixes the generation/AI random source. Zero picks a time seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed != 0 {
			g.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithInput replaces keyboard sampling, for tests and scripted sessions.
func WithInput(read func() InputState) Option {
	return func(g *Game) { g.readInput = read }
}

// WithOracle replaces the built-in planet-property service.
func WithOracle(oracle PlanetOracle) Option {
	return func(g *Game) { g.oracle = oracle }
}

// NewGame creates a game and starts a flight session.
func NewGame(config Config, opts ...Option) *Game {
	g := &Game{
		config:     config,
		log:        logging.Discard(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		readInput:  readKeyboard,
		lastUpdate: time.Now(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.oracle == nil {
		g.oracle = NewPlanetOracle(config, g.rng)
	}
	g.startSession()
	return g
}

// startSession (re)builds the star system and resets all session state.
func (g *Game) startSession() {
	g.world = GenerateSystem(g.config, g.oracle, g.rng)
	g.spawner = NewSpawner(g.config)
	g.spawner.SpawnInitial(g.world, g.config.InitialEnemies, g.rng)

	g.camera = NewCamera(float64(g.config.ScreenWidth), float64(g.config.ScreenHeight), g.config)
	rocket := g.world.Rocket()
	g.camera.Target = rocket.ID
	g.camera.Pos = rocket.Pos

	g.dust = newDustField(g.config, g.rng)
	g.mode = ModeFlight
	g.boss = nil
	g.paused = false
	g.gameOver = false

	g.log.Info("session started",
		"planets", g.config.PlanetCount,
		"enemies", g.world.EnemyCount())
}

// EnterBossFight switches into the boss encounter. The flight world stays as
// it is; the encounter owns its own duplicated player state.
func (g *Game) EnterBossFight() {
	if g.mode == ModeBoss {
		return
	}
	g.mode = ModeBoss
	g.boss = NewBossScene(g.rng)
	g.log.Info("boss encounter entered", "phase", g.boss.Phase)
}

// Update implements ebiten.Game. One call processes the whole simulation
// synchronously; dt is wall-clock time capped against frame hitches.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	if dt > g.config.MaxDeltaTime {
		dt = g.config.MaxDeltaTime
	}

	in := g.readInput()

	if in.TogglePause {
		g.paused = !g.paused
	}
	if in.ToggleMap {
		g.showMap = !g.showMap
	}
	if in.Restart && g.sessionOver() {
		g.startSession()
		return nil
	}
	if g.paused {
		// Pause short-circuits the whole update; rendering continues.
		return nil
	}

	switch g.mode {
	case ModeFlight:
		g.updateFlight(in, dt)
	case ModeBoss:
		g.updateBossScene(in, dt)
	}
	return nil
}

func (g *Game) updateFlight(in InputState, dt float64) {
	if in.ZoomIn {
		g.camera.ZoomIn()
	}
	if in.ZoomOut {
		g.camera.ZoomOut()
	}
	if in.EnterBoss && !g.gameOver {
		g.EnterBossFight()
		return
	}
	if g.gameOver {
		return
	}

	events := stepFlight(g.world, g.camera, g.spawner, in, dt, g.rng)

	if rocket := g.world.Rocket(); rocket != nil {
		updateDust(g.dust, rocket, g.config, dt)
	}

	if events.EnemiesDestroyed > 0 {
		g.log.Info("enemies destroyed",
			"count", events.EnemiesDestroyed,
			"remaining", g.world.EnemyCount())
	}
	if events.RocketDied {
		g.gameOver = true
		g.log.Info("game over", "cause", "rocket destroyed")
	}
}

func (g *Game) updateBossScene(in InputState, dt float64) {
	events := g.boss.Update(in, dt)
	if events.PhaseEntered != 0 {
		g.log.Info("boss phase entered", "phase", events.PhaseEntered)
	}
	if events.Victory {
		g.log.Info("boss defeated")
	}
	if events.PlayerDied {
		g.log.Info("game over", "cause", "slain in boss arena")
	}
}

// sessionOver reports whether the current session reached a terminal state.
func (g *Game) sessionOver() bool {
	if g.mode == ModeBoss {
		return g.boss.PlayerDead || g.boss.Ended
	}
	return g.gameOver
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case ModeFlight:
		g.drawFlight(screen)
	case ModeBoss:
		g.drawBossScene(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
