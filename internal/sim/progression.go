package sim

// Wave describes a freshly spawned enemy wave.
type Wave struct {
	Level int // Level the wave belongs to
	Count int // Number of enemies spawned
}

// advanceWave checks for wave clearance and, when every enemy is dead,
// increments the level and spawns the next, larger wave. The previous
// collection is discarded wholesale. Returns false and leaves the world
// untouched while any enemy is still alive. Runs after combat resolution
// within a turn, never before.
func (w *World) advanceWave() (Wave, bool) {
	for _, e := range w.Enemies {
		if e.Alive {
			return Wave{}, false
		}
	}

	w.Level++
	count := w.cfg.BaseEnemies + w.Level*w.cfg.EnemiesPerLevel
	w.Enemies = w.spawner.Spawn(count)

	return Wave{Level: w.Level, Count: count}, true
}
