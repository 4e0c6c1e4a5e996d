// Package config provides YAML-based tuning configuration and difficulty
// presets for DeadAim.
package config

// Config contains all tuning for the game. Values are fixed at start time;
// the kernel is not runtime-reconfigurable.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Player PlayerConfig `yaml:"player"`
	Combat CombatConfig `yaml:"combat"`
	Waves  WavesConfig  `yaml:"waves"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Size int `yaml:"size"` // Grid dimension; cells span [0, size-1] on both axes
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`  // Displacement per movement action
	Health int     `yaml:"health"` // Starting health
}

// CombatConfig defines shooting parameters.
type CombatConfig struct {
	ShootRange float64 `yaml:"shoot_range"` // Maximum distance at which a shot connects
	HitScore   int     `yaml:"hit_score"`   // Base score per hit before the multiplier
}

// WavesConfig defines wave spawning and enemy speed progression.
type WavesConfig struct {
	BaseEnemies     int     `yaml:"base_enemies"`      // Enemy count of the first wave
	EnemiesPerLevel int     `yaml:"enemies_per_level"` // Extra enemies per level on respawn
	BaseSpeed       float64 `yaml:"base_speed"`        // Enemy speed at level 0
	SpeedPerLevel   float64 `yaml:"speed_per_level"`   // Enemy speed gained per level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the wave progression for a difficulty preset.
// "fixed" freezes waves at their base size and speed; "easy" and "hard"
// soften or sharpen the per-level scaling. "normal" and unknown presets
// leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Waves.EnemiesPerLevel = 3
		cfg.Waves.SpeedPerLevel = 0.1
	case DifficultyHard:
		cfg.Waves.EnemiesPerLevel = 7
		cfg.Waves.SpeedPerLevel = 0.3
		cfg.Player.Health = 5
	case DifficultyFixed:
		cfg.Waves.EnemiesPerLevel = 0
		cfg.Waves.SpeedPerLevel = 0
	}
}
