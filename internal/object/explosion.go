package object

import (
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/physics"
)

// Explosion is an expanding shock ring.
type Explosion struct {
	ID        uint64
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      int // Ticks remaining
}

// NewExplosion creates a ring at (x, y). Big rings grow larger.
func NewExplosion(ids *Counter, x, y float64, big bool) Explosion {
	maxRadius := config.ExplosionRadius
	if big {
		maxRadius = config.ExplosionBigRadius
	}
	return Explosion{
		ID:        ids.Next(),
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		Life:      config.ExplosionLife,
	}
}

// Update eases the radius toward its maximum and reports whether the ring is spent.
func (e *Explosion) Update() bool {
	e.Radius = physics.Approach(e.Radius, e.MaxRadius, config.ExplosionEasing)
	e.Life--
	return e.Life <= 0
}
