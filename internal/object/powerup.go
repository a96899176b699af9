package object

import (
	"math/rand"

	"github.com/tomz197/skyraid/internal/loop/config"
)

// PowerUpKind identifies what a pickup grants. Only stars exist today.
type PowerUpKind int

const (
	Star PowerUpKind = iota
)

// PowerUp is a falling pickup.
type PowerUp struct {
	ID   uint64
	X, Y float64
	Size float64
	Kind PowerUpKind
}

// NewPowerUp creates a star above the field.
func NewPowerUp(rng *rand.Rand, ids *Counter) PowerUp {
	return PowerUp{
		ID:   ids.Next(),
		X:    config.EnemySpawnMinX + rng.Float64()*config.EnemySpawnRangeX,
		Y:    config.SpawnY,
		Size: config.PowerUpSize,
		Kind: Star,
	}
}

// Update drops the pickup and reports whether it fell off the field.
func (p *PowerUp) Update() bool {
	p.Y += config.PowerUpFallSpeed
	return p.Y >= config.FallOffBottom
}
