package sim

// Outcome classifies the combat result of one turn.
type Outcome int

const (
	OutcomeNone   Outcome = iota // No combat effect this turn
	OutcomeHit                   // Player shot the nearest enemy
	OutcomeDamage                // Nearest enemy collided with the player
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeHit:
		return "hit"
	case OutcomeDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// resolveCombat applies the combat rules for one turn against the nearest
// enemy at index idx, dist away. Shooting takes priority: a successful shot
// within range kills the target, scores HitScore times the current
// multiplier and extends the streak, and prevents collision damage on the
// same turn even when the enemy is adjacent. Failing that, an enemy within
// distance 1 collides: it dies on contact, costs one health and resets the
// multiplier to 1. Anything else is a no-op.
func (w *World) resolveCombat(shoot bool, idx int, dist float64) Outcome {
	switch {
	case shoot && dist <= w.cfg.ShootRange:
		w.Enemies[idx].Alive = false
		w.Score += w.cfg.HitScore * w.Multiplier
		w.Multiplier++
		return OutcomeHit

	case dist <= 1:
		w.Enemies[idx].Alive = false
		w.Player.Health--
		w.Multiplier = 1
		return OutcomeDamage
	}

	return OutcomeNone
}
