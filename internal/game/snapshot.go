package game

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Level      int
	Score      int
	Health     int
	Multiplier int
	PlayerX    int // Grid cell, not continuous position
	PlayerY    int
	Alive      int // Alive enemies in the current wave
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:       g.tick,
		Level:      g.world.Level,
		Score:      g.world.Score,
		Health:     g.world.Player.Health,
		Multiplier: g.world.Multiplier,
		PlayerX:    g.cellOf(g.world.Player.X),
		PlayerY:    g.cellOf(g.world.Player.Y),
		Alive:      g.world.AliveCount(),
		State:      state,
	}
}
