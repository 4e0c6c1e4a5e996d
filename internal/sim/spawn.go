package sim

// Spawner creates enemy waves. Each call produces a fresh collection that
// replaces the previous wave wholesale; no enemy state survives a respawn.
type Spawner struct {
	rng      Rand
	gridSize int
}

// NewSpawner creates a spawner placing enemies on a gridSize x gridSize grid.
func NewSpawner(rng Rand, gridSize int) *Spawner {
	return &Spawner{rng: rng, gridSize: gridSize}
}

// Spawn returns a new wave of count enemies with contiguous ids from 0,
// uniformly random integer-coordinate positions and Alive set. A count of
// zero or less yields an empty wave, not an error.
func (s *Spawner) Spawn(count int) []Enemy {
	if count <= 0 {
		return nil
	}

	enemies := make([]Enemy, count)
	for i := range enemies {
		enemies[i] = Enemy{
			ID:    i,
			X:     float64(s.rng.Intn(s.gridSize)),
			Y:     float64(s.rng.Intn(s.gridSize)),
			Alive: true,
		}
	}
	return enemies
}
