// Package game implements DeadAim, a turn-paced grid shooter. The player
// holds position against waves of wandering enemies, shooting the nearest
// one each turn while dodging collisions.
package game

import (
	"fmt"
	"math/rand"

	"github.com/soldeveloper00/DeadAim/internal/config"
	"github.com/soldeveloper00/DeadAim/internal/core"
	"github.com/soldeveloper00/DeadAim/internal/sim"
)

// Game implements the DeadAim game on top of the simulation kernel.
type Game struct {
	rng            *rand.Rand
	world          *sim.World
	tick           uint64
	turnEveryTicks int
	turnTicker     int // Counts ticks until next turn

	// Buffered input for the next turn
	pendingDX    float64
	pendingDY    float64
	pendingShoot bool

	// Persisted best score, injected by the platform
	highScore int
	newBest   bool

	// Last combat/wave event for the status line
	lastEvent string

	// Grid placement
	gridOffsetX int
	gridOffsetY int
	hudHeight   int

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty selection from the CLI.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new DeadAim game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "deadaim"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "DeadAim"
}

// SetHighScore injects the persisted best score for HUD display and the
// new-best banner at game over.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.turnTicker = 0
	g.pendingDX = 0
	g.pendingDY = 0
	g.pendingShoot = false
	g.newBest = false
	g.lastEvent = ""
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	// A world turn runs every ~150ms regardless of platform tick rate.
	g.turnEveryTicks = max(1, cfg.TickRate*3/20)

	fileCfg, err := config.Load(configPath)
	if err != nil {
		fileCfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&fileCfg, config.DifficultyPreset(difficultyPreset))
	}

	simCfg := sim.Config{
		GridSize:        fileCfg.Grid.Size,
		PlayerSpeed:     fileCfg.Player.Speed,
		ShootRange:      fileCfg.Combat.ShootRange,
		HitScore:        fileCfg.Combat.HitScore,
		StartHealth:     fileCfg.Player.Health,
		BaseEnemies:     fileCfg.Waves.BaseEnemies,
		EnemiesPerLevel: fileCfg.Waves.EnemiesPerLevel,
		BaseSpeed:       fileCfg.Waves.BaseSpeed,
		SpeedPerLevel:   fileCfg.Waves.SpeedPerLevel,
	}

	g.world = sim.NewWorld(simCfg, g.rng)
	g.layout()
}

// layout computes grid placement and the too-small flag.
func (g *Game) layout() {
	grid := g.world.Config().GridSize

	// Grid plus HUD, status line, and a one-cell border margin
	requiredW := grid + 2
	requiredH := grid + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.gridOffsetX = (g.screenW - grid) / 2
	g.gridOffsetY = g.hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Buffer input between turns
	g.processInput(input)

	// Run a world turn on the turn interval
	g.turnTicker++
	if g.turnTicker >= g.turnEveryTicks {
		g.turnTicker = 0
		g.runTurn()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers movement and shoot actions until the next turn.
// The latest direction pressed wins; a shoot press latches.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.pendingDX, g.pendingDY = 0, -1
	case input.Has(core.ActionDown):
		g.pendingDX, g.pendingDY = 0, 1
	case input.Has(core.ActionLeft):
		g.pendingDX, g.pendingDY = -1, 0
	case input.Has(core.ActionRight):
		g.pendingDX, g.pendingDY = 1, 0
	}
	if input.Has(core.ActionShoot) {
		g.pendingShoot = true
	}
}

// runTurn applies buffered input and advances the world by one turn.
func (g *Game) runTurn() {
	if g.pendingDX != 0 || g.pendingDY != 0 {
		g.world.MovePlayer(g.pendingDX, g.pendingDY)
	}

	res := g.world.Tick(g.pendingShoot)

	g.pendingDX = 0
	g.pendingDY = 0
	g.pendingShoot = false

	switch res.Outcome {
	case sim.OutcomeHit:
		g.lastEvent = fmt.Sprintf("Hit enemy #%d! Score: %d", res.TargetID, g.world.Score)
	case sim.OutcomeDamage:
		g.lastEvent = fmt.Sprintf("Enemy #%d got you! Health: %d", res.TargetID, g.world.Player.Health)
	}

	if res.NewWave {
		g.lastEvent = fmt.Sprintf("Wave cleared! Level %d: %d enemies", res.Wave.Level, res.Wave.Count)
	}

	if res.GameOver {
		g.gameOver = true
		if g.world.Score > g.highScore {
			g.newBest = true
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderGrid(dst)
	g.renderStatusLine(dst)

	switch {
	case g.gameOver:
		sub := "Press R to restart"
		if g.newBest {
			sub = fmt.Sprintf("New best: %d! Press R to restart", g.world.Score)
		}
		g.renderOverlay(dst, fmt.Sprintf("Game Over — Score: %d", g.world.Score), sub)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" DeadAim — Level: %d  Health: %d  Score: %d  x%d  Best: %d",
		g.world.Level, g.world.Player.Health, g.world.Score, g.world.Multiplier, g.highScore)

	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the playfield, the player, and alive enemies.
func (g *Game) renderGrid(dst *core.Screen) {
	grid := g.world.Config().GridSize

	for y := 0; y < grid; y++ {
		for x := 0; x < grid; x++ {
			dst.SetCell(g.gridOffsetX+x, g.gridOffsetY+y, '.', core.ColorGray)
		}
	}

	for _, e := range g.world.Enemies {
		if !e.Alive {
			continue
		}
		ex := g.gridOffsetX + g.cellOf(e.X)
		ey := g.gridOffsetY + g.cellOf(e.Y)
		dst.SetCell(ex, ey, 'E', core.ColorBrightRed)
	}

	// Player drawn last so it stays visible under an overlapping enemy
	px := g.gridOffsetX + g.cellOf(g.world.Player.X)
	py := g.gridOffsetY + g.cellOf(g.world.Player.Y)
	dst.SetCell(px, py, 'P', core.ColorBrightGreen)
}

// cellOf maps a continuous coordinate to a grid cell.
func (g *Game) cellOf(v float64) int {
	grid := g.world.Config().GridSize
	return core.Clamp(int(v), 0, grid-1)
}

// renderStatusLine draws the latest combat/wave event below the grid.
func (g *Game) renderStatusLine(dst *core.Screen) {
	if g.lastEvent == "" {
		return
	}
	y := g.gridOffsetY + g.world.Config().GridSize
	if y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(g.lastEvent)) / 2
	dst.DrawTextColored(x, y, g.lastEvent, core.ColorCyan)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	line1X := (w - len(line1)) / 2
	line2X := (w - len(line2)) / 2
	dst.DrawTextColored(line1X, boxY+1, line1, core.ColorBrightYellow)
	dst.DrawTextColored(line2X, boxY+3, line2, core.ColorWhite)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score, level := 0, 1
	if g.world != nil {
		score = g.world.Score
		level = g.world.Level
	}
	return core.GameState{
		Score:    score,
		Level:    level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
