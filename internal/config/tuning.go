package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	gamecfg "github.com/tomz197/skyraid/internal/loop/config"
)

// Tuning holds the gameplay knobs that can be overridden from a YAML file.
// Fields omitted from the file keep their defaults.
type Tuning struct {
	Seed               int64   `yaml:"seed"`               // RNG seed, 0 = time based
	VictoryScore       int     `yaml:"victoryScore"`       // Score that ends the run in victory, 0 = never
	EnemySpawnBase     float64 `yaml:"enemySpawnBase"`     // Per-tick enemy spawn chance at level 0
	EnemySpawnPerLevel float64 `yaml:"enemySpawnPerLevel"` // Added per level
	PowerUpSpawnChance float64 `yaml:"powerUpSpawnChance"` // Per-tick power-up spawn chance
	PowerUpDurationMs  int     `yaml:"powerUpDurationMs"`  // Power-up window in simulated ms
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		EnemySpawnBase:     gamecfg.EnemySpawnBase,
		EnemySpawnPerLevel: gamecfg.EnemySpawnPerLevel,
		PowerUpSpawnChance: gamecfg.PowerUpSpawnChance,
		PowerUpDurationMs:  gamecfg.PowerUpDuration,
	}
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning.
// An empty path returns the defaults.
func LoadTuning(filePath string) (Tuning, error) {
	tuning := DefaultTuning()
	if filePath == "" {
		return tuning, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := validateTuning(&tuning); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning config: %w", err)
	}

	return tuning, nil
}

func validateTuning(t *Tuning) error {
	if t.VictoryScore < 0 {
		return fmt.Errorf("victoryScore must be >= 0, got %d", t.VictoryScore)
	}
	if t.EnemySpawnBase < 0 || t.EnemySpawnBase > 1 {
		return fmt.Errorf("enemySpawnBase must be within [0,1], got %f", t.EnemySpawnBase)
	}
	if t.EnemySpawnPerLevel < 0 {
		return fmt.Errorf("enemySpawnPerLevel must be >= 0, got %f", t.EnemySpawnPerLevel)
	}
	if t.PowerUpSpawnChance < 0 || t.PowerUpSpawnChance > 1 {
		return fmt.Errorf("powerUpSpawnChance must be within [0,1], got %f", t.PowerUpSpawnChance)
	}
	if t.PowerUpDurationMs <= 0 {
		return fmt.Errorf("powerUpDurationMs must be > 0, got %d", t.PowerUpDurationMs)
	}
	return nil
}
