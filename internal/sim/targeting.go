package sim

import "math"

// NearestEnemy returns the index of the living enemy closest to (px, py)
// by Euclidean distance, or false when no enemy is alive. Ties resolve to
// the lowest index (spawn order). Dead enemies are never candidates: a
// resolved-dead enemy reappearing as a target would break the aliveness
// invariant.
func NearestEnemy(px, py float64, enemies []Enemy) (int, bool) {
	nearest := -1
	minDist2 := math.MaxFloat64

	for i, e := range enemies {
		if !e.Alive {
			continue
		}
		dx := px - e.X
		dy := py - e.Y
		dist2 := dx*dx + dy*dy
		if dist2 < minDist2 {
			minDist2 = dist2
			nearest = i
		}
	}

	if nearest < 0 {
		return 0, false
	}
	return nearest, true
}

// Distance returns the Euclidean distance from (px, py) to the enemy.
func Distance(px, py float64, e Enemy) float64 {
	return math.Hypot(px-e.X, py-e.Y)
}
