package object

import (
	"math/rand"

	"github.com/tomz197/skyraid/internal/loop/config"
)

// EnemyShape is the closed set of enemy silhouettes.
type EnemyShape int

const (
	Triangle EnemyShape = iota
	Square
	Circle
)

var enemyShapes = [...]EnemyShape{Triangle, Square, Circle}

// String returns the shape name.
func (s EnemyShape) String() string {
	switch s {
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Circle:
		return "circle"
	default:
		return "unknown"
	}
}

// EnemyColors is the palette enemies are painted from.
var EnemyColors = []string{"#FF4757", "#FF6B81", "#A55EEA", "#FFA502", "#2ED573", "#1E90FF"}

// Enemy descends the field until it is shot down or escapes past the bottom.
type Enemy struct {
	ID        uint64
	X, Y      float64 // Position (center)
	Speed     float64 // Downward distance per tick
	Health    int
	MaxHealth int
	Color     string
	Size      float64 // Half extent of the bullet hit box; the body radius is Size/2
	Shape     EnemyShape
	Hit       bool // Set for the tick in which a bullet struck it
}

// NewEnemy creates an enemy above the field. Speed scales with level.
func NewEnemy(rng *rand.Rand, ids *Counter, level int) Enemy {
	x := config.EnemySpawnMinX + rng.Float64()*config.EnemySpawnRangeX
	speed := config.EnemyBaseSpeed + float64(level)*config.EnemySpeedPerLevel + rng.Float64()*config.EnemySpeedJitter

	return Enemy{
		ID:        ids.Next(),
		X:         x,
		Y:         config.SpawnY,
		Speed:     speed,
		Health:    config.EnemyHealth,
		MaxHealth: config.EnemyHealth,
		Color:     EnemyColors[rng.Intn(len(EnemyColors))],
		Size:      config.EnemyMinSize + rng.Float64()*config.EnemySizeRange,
		Shape:     enemyShapes[rng.Intn(len(enemyShapes))],
	}
}

// Update moves the enemy down, clears the hit flash and reports whether it escaped.
func (e *Enemy) Update() bool {
	e.Y += e.Speed
	e.Hit = false
	return e.Y >= config.FallOffBottom
}

// Alive reports whether the enemy still has health.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}
