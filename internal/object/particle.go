package object

import (
	"math"
	"math/rand"
)

// ParticleKind is the closed set of particle categories.
type ParticleKind int

const (
	Spark ParticleKind = iota
	Smoke
	Fire
	Debris
)

// String returns the category name.
func (k ParticleKind) String() string {
	switch k {
	case Spark:
		return "spark"
	case Smoke:
		return "smoke"
	case Fire:
		return "fire"
	case Debris:
		return "debris"
	default:
		return "unknown"
	}
}

// particleBehavior holds the per-category physics and look.
type particleBehavior struct {
	gravity  float64  // Added to VY every tick (negative rises)
	growth   float64  // Size multiplier per tick
	lift     float64  // Subtracted from initial VY
	minSize  float64  // Initial size lower bound
	sizeSpan float64  // Initial size random span
	palette  []string // Colors used when the burst has no base color
}

var particleBehaviors = [...]particleBehavior{
	Spark: {
		gravity: 0.15, growth: 0.97, minSize: 3, sizeSpan: 6,
		palette: []string{"#FFD700", "#FFA500", "#FF6B00", "#FFFF00", "#FF4500"},
	},
	Smoke: {
		gravity: -0.1, growth: 1.02, minSize: 8, sizeSpan: 12,
		palette: []string{"#666666", "#888888", "#AAAAAA", "#CCCCCC", "#999999"},
	},
	Fire: {
		gravity: 0.15, growth: 0.97, lift: 2, minSize: 3, sizeSpan: 6,
		palette: []string{"#FF4500", "#FF6B00", "#FF8C00", "#FFA500", "#FFD700"},
	},
	Debris: {
		gravity: 0.15, growth: 0.97, minSize: 3, sizeSpan: 6,
		palette: []string{"#8B4513", "#A0522D", "#CD853F", "#D2691E", "#8B0000"},
	},
}

const (
	particleFriction = 0.98
	particleMinSize  = 0.5
)

// Particle is a short-lived visual effect.
type Particle struct {
	ID            uint64
	X, Y          float64 // Position
	VX, VY        float64 // Velocity per tick
	Size          float64
	Color         string
	Life          float64 // Ticks remaining
	MaxLife       float64 // Initial life (for fade calculation)
	Kind          ParticleKind
	Rotation      float64 // Degrees
	RotationSpeed float64 // Degrees per tick
}

// Update moves the particle one tick and reports whether it has burnt out.
func (p *Particle) Update() bool {
	b := particleBehaviors[p.Kind]

	p.X += p.VX
	p.Y += p.VY
	p.VY += b.gravity
	p.VX *= particleFriction
	p.Life--
	p.Size *= b.growth
	p.Rotation += p.RotationSpeed

	return p.Life <= 0 || p.Size <= particleMinSize
}

// Burst creates count particles spread evenly around (x, y).
// An empty color picks from the category palette per particle.
func Burst(rng *rand.Rand, ids *Counter, x, y float64, count int, kind ParticleKind, color string) []Particle {
	b := particleBehaviors[kind]
	out := make([]Particle, 0, count)

	for i := 0; i < count; i++ {
		angle := 2*math.Pi*float64(i)/float64(count) + (rng.Float64()-0.5)*0.5
		speed := 2 + rng.Float64()*8
		life := 30 + rng.Float64()*40
		size := b.minSize + rng.Float64()*b.sizeSpan

		c := color
		if c == "" {
			c = b.palette[rng.Intn(len(b.palette))]
		}

		out = append(out, Particle{
			ID:            ids.Next(),
			X:             x,
			Y:             y,
			VX:            math.Cos(angle) * speed,
			VY:            math.Sin(angle)*speed - b.lift,
			Size:          size,
			Color:         c,
			Life:          life,
			MaxLife:       life,
			Kind:          kind,
			Rotation:      rng.Float64() * 360,
			RotationSpeed: (rng.Float64() - 0.5) * 20,
		})
	}

	return out
}
