package sim

import (
	"github.com/soldeveloper00/DeadAim/internal/core"
)

// MoveEnemies displaces every living enemy by an independent random step on
// each axis, uniform in (-speed, +speed), then clamps the result into
// [0, gridSize-1]. Dead enemies are left untouched so their positions never
// drift after death. A non-positive speed is a no-op.
func MoveEnemies(rng Rand, enemies []Enemy, speed float64, gridSize int) {
	if speed <= 0 {
		return
	}

	limit := float64(gridSize - 1)
	for i := range enemies {
		if !enemies[i].Alive {
			continue
		}
		dx := (rng.Float64()*2 - 1) * speed
		dy := (rng.Float64()*2 - 1) * speed
		enemies[i].X = core.ClampF(enemies[i].X+dx, 0, limit)
		enemies[i].Y = core.ClampF(enemies[i].Y+dy, 0, limit)
	}
}
