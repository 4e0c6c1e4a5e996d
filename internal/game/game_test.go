package game

import (
	"strings"
	"testing"

	"github.com/soldeveloper00/DeadAim/internal/core"
	"github.com/soldeveloper00/DeadAim/internal/sim"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// stepTurn runs exactly one world turn's worth of ticks with the given input.
func stepTurn(g *Game, input core.InputFrame) {
	for i := 0; i < g.turnEveryTicks; i++ {
		g.Step(input)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testRuntimeConfig(12345)

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		input.Clear()
		if i%30 == 5 {
			input.Set(core.ActionRight)
		}
		if i%45 == 10 {
			input.Set(core.ActionShoot)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch: %+v vs %+v", snap1, snap2)
	}
}

func TestTurnPacing(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	// 60 FPS should give a turn every 9 ticks (~150ms)
	if g.turnEveryTicks != 9 {
		t.Fatalf("turnEveryTicks = %d, expected 9 at 60 FPS", g.turnEveryTicks)
	}

	startX := g.world.Player.X

	// Hold right: the player must not move until a full turn elapses
	input := core.NewInputFrame()
	input.Set(core.ActionRight)

	for i := 0; i < g.turnEveryTicks-1; i++ {
		g.Step(input)
	}
	if g.world.Player.X != startX {
		t.Errorf("Player moved mid-turn: %f vs %f", g.world.Player.X, startX)
	}

	g.Step(input)
	want := startX + g.world.Config().PlayerSpeed
	if g.world.Player.X != want {
		t.Errorf("Player.X = %f after turn, expected %f", g.world.Player.X, want)
	}
}

func TestShootScoresOnTurn(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	// Default shoot range covers the whole grid, so any alive enemy is a hit
	input := core.NewInputFrame()
	input.Set(core.ActionShoot)
	stepTurn(g, input)

	if g.world.Score != 10 {
		t.Errorf("Score = %d after first shot, expected 10", g.world.Score)
	}
	if g.world.Multiplier != 2 {
		t.Errorf("Multiplier = %d after first shot, expected 2", g.world.Multiplier)
	}
	if !strings.Contains(g.lastEvent, "Hit enemy") {
		t.Errorf("lastEvent = %q, expected a hit message", g.lastEvent)
	}
}

func TestCollisionEndsGameAtZeroHealth(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(99))

	// Pin a single stationary enemy on the player's cell
	still := sim.Config{
		GridSize:        20,
		PlayerSpeed:     2.0,
		ShootRange:      50.0,
		HitScore:        10,
		StartHealth:     1,
		BaseEnemies:     1,
		EnemiesPerLevel: 0,
		BaseSpeed:       0,
		SpeedPerLevel:   0,
	}
	g.world = sim.NewWorld(still, g.rng)
	g.world.Enemies = []sim.Enemy{{ID: 0, X: g.world.Player.X, Y: g.world.Player.Y, Alive: true}}

	stepTurn(g, core.NewInputFrame())

	if !g.gameOver {
		t.Fatal("Game should be over after a collision at 1 health")
	}
	if g.world.Player.Health != 0 {
		t.Errorf("Health = %d, expected 0", g.world.Player.Health)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("State = %s, expected game_over", g.Snapshot().State)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(3))

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.paused {
		t.Fatal("Game should be paused after pause action")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("State = %s, expected paused", g.Snapshot().State)
	}

	before := g.Snapshot()
	input.Clear()
	input.Set(core.ActionRight)
	for i := 0; i < 50; i++ {
		g.Step(input)
	}

	after := g.Snapshot()
	if before.PlayerX != after.PlayerX || before.Score != after.Score {
		t.Error("World advanced while paused")
	}

	// Unpause resumes turns
	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("Game should resume after second pause action")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(55))

	g.world.Score = 120
	g.gameOver = true

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.gameOver {
		t.Error("Game should not be over after restart")
	}
	if g.world.Score != 0 {
		t.Errorf("Score = %d after restart, expected 0", g.world.Score)
	}
	if g.world.Level != 1 {
		t.Errorf("Level = %d after restart, expected 1", g.world.Level)
	}
}

func TestRestartIgnoredMidGame(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(56))

	g.world.Score = 40
	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.world.Score != 40 {
		t.Error("Restart should only apply at game over")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     333,
		ScreenW:  15,
		ScreenH:  10,
		TickRate: 60,
	})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}

	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Errorf("State should be paused_small_window, got %s", snap.State)
	}
}

func TestRender(t *testing.T) {
	cfg := testRuntimeConfig(444)

	g := New()
	g.Reset(cfg)
	g.SetHighScore(50)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "DeadAim") {
		t.Error("HUD should contain 'DeadAim'")
	}
	if !strings.Contains(content, "Best: 50") {
		t.Error("HUD should show the injected high score")
	}

	// Player marker at the player's cell
	px := g.gridOffsetX + g.cellOf(g.world.Player.X)
	py := g.gridOffsetY + g.cellOf(g.world.Player.Y)
	if screen.Get(px, py) != 'P' {
		t.Errorf("Expected 'P' at player cell (%d,%d), got %q", px, py, screen.Get(px, py))
	}

	// One 'E' per alive enemy, fewer if enemies share a cell
	enemyMarks := strings.Count(content, "E")
	if enemyMarks == 0 || enemyMarks > g.world.AliveCount() {
		t.Errorf("Rendered %d enemy marks for %d alive enemies", enemyMarks, g.world.AliveCount())
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	cfg := testRuntimeConfig(445)

	g := New()
	g.Reset(cfg)
	g.gameOver = true

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Game Over") {
		t.Error("Overlay should contain 'Game Over'")
	}
	if !strings.Contains(content, "Press R to restart") {
		t.Error("Overlay should show the restart hint")
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "deadaim" {
		t.Errorf("ID should be 'deadaim', got %s", g.ID())
	}
	if g.Title() != "DeadAim" {
		t.Errorf("Title should be 'DeadAim', got %s", g.Title())
	}
}
