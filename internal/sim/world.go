// Package sim implements the DeadAim simulation kernel: wave spawning,
// randomized enemy motion, nearest-target search and combat/progression
// resolution. It is pure logic with no I/O and no platform dependencies;
// the surrounding game layer drives it once per turn.
package sim

import (
	"github.com/soldeveloper00/DeadAim/internal/core"
)

// Enemy is a single adversary on the grid. IDs are unique and contiguous
// from 0 within one wave; Alive transitions true -> false exactly once and
// is never reset within a wave.
type Enemy struct {
	ID    int
	X, Y  float64
	Alive bool
}

// Player holds the player's position and remaining health. Coordinates are
// real-valued so fractional step sizes work; display truncates to the cell.
type Player struct {
	X, Y   float64
	Health int
}

// Config contains the fixed tuning constants consumed by the kernel.
type Config struct {
	GridSize        int     // Grid dimension; positions live in [0, GridSize-1]
	PlayerSpeed     float64 // Player displacement per movement action
	ShootRange      float64 // Maximum distance at which a shot connects
	HitScore        int     // Base score for a hit, multiplied by the streak multiplier
	StartHealth     int     // Player health at session start
	BaseEnemies     int     // Enemy count of the first wave
	EnemiesPerLevel int     // Additional enemies per level on respawn
	BaseSpeed       float64 // Enemy speed at level 0
	SpeedPerLevel   float64 // Enemy speed gained per level
}

// DefaultConfig returns the classic DeadAim tuning.
func DefaultConfig() Config {
	return Config{
		GridSize:        20,
		PlayerSpeed:     2.0,
		ShootRange:      50.0,
		HitScore:        10,
		StartHealth:     10,
		BaseEnemies:     10,
		EnemiesPerLevel: 5,
		BaseSpeed:       0.5,
		SpeedPerLevel:   0.2,
	}
}

// World is the authoritative mutable simulation state. It is owned by the
// driving loop and mutated only through kernel operations; no component
// holds a reference across turns.
type World struct {
	Player     Player
	Enemies    []Enemy
	Score      int
	Level      int
	Multiplier int

	cfg     Config
	rng     Rand
	spawner *Spawner
}

// NewWorld creates a world with the player centered on the grid, full
// health, level 1, multiplier 1 and the first wave already spawned.
func NewWorld(cfg Config, rng Rand) *World {
	w := &World{
		cfg:        cfg,
		rng:        rng,
		spawner:    NewSpawner(rng, cfg.GridSize),
		Level:      1,
		Multiplier: 1,
	}
	w.Player = Player{
		X:      float64(cfg.GridSize / 2),
		Y:      float64(cfg.GridSize / 2),
		Health: cfg.StartHealth,
	}
	w.Enemies = w.spawner.Spawn(cfg.BaseEnemies)
	return w
}

// Config returns the tuning constants this world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// EnemySpeed returns the per-turn enemy speed for the current level.
func (w *World) EnemySpeed() float64 {
	return w.cfg.BaseSpeed + w.cfg.SpeedPerLevel*float64(w.Level)
}

// AliveCount returns the number of living enemies in the current wave.
func (w *World) AliveCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// MovePlayer displaces the player one step in the given direction,
// clamped to the grid bounds. dx and dy select the axis and sign; the
// magnitude is the configured player speed.
func (w *World) MovePlayer(dx, dy float64) {
	limit := float64(w.cfg.GridSize - 1)
	w.Player.X = core.ClampF(w.Player.X+dx*w.cfg.PlayerSpeed, 0, limit)
	w.Player.Y = core.ClampF(w.Player.Y+dy*w.cfg.PlayerSpeed, 0, limit)
}

// GameOver reports whether the session has reached its terminal state.
func (w *World) GameOver() bool {
	return w.Player.Health <= 0
}

// TickResult describes what happened during one simulation turn.
type TickResult struct {
	Outcome  Outcome // Combat outcome of the turn
	TargetID int     // ID of the enemy involved in the outcome, -1 if none
	Wave     Wave    // New wave info, valid when NewWave is true
	NewWave  bool    // Whether the wave was cleared and a new one spawned
	GameOver bool    // Whether player health reached zero this turn
}

// Tick advances the world by one turn: enemy motion, nearest-target
// search, combat resolution for the requested action, then wave
// progression. The stages run to completion in that order; progression
// never observes pre-combat state.
func (w *World) Tick(shoot bool) TickResult {
	MoveEnemies(w.rng, w.Enemies, w.EnemySpeed(), w.cfg.GridSize)

	res := TickResult{TargetID: -1}
	if idx, ok := NearestEnemy(w.Player.X, w.Player.Y, w.Enemies); ok {
		dist := Distance(w.Player.X, w.Player.Y, w.Enemies[idx])
		res.Outcome = w.resolveCombat(shoot, idx, dist)
		if res.Outcome != OutcomeNone {
			res.TargetID = w.Enemies[idx].ID
		}
	}

	if wave, ok := w.advanceWave(); ok {
		res.Wave = wave
		res.NewWave = true
	}

	res.GameOver = w.GameOver()
	return res
}
