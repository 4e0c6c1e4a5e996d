package config

import (
	_ "embed"
)

//go:embed defaults/deadaim.yaml
var defaultYAML []byte

// Default returns the classic DeadAim tuning, matching the embedded YAML.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size: 20,
		},
		Player: PlayerConfig{
			Speed:  2.0,
			Health: 10,
		},
		Combat: CombatConfig{
			ShootRange: 50.0,
			HitScore:   10,
		},
		Waves: WavesConfig{
			BaseEnemies:     10,
			EnemiesPerLevel: 5,
			BaseSpeed:       0.5,
			SpeedPerLevel:   0.2,
		},
	}
}
