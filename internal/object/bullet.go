package object

import (
	"math"

	"github.com/tomz197/skyraid/internal/loop/config"
)

// Bullet is a projectile fired by the player. It travels up the field.
type Bullet struct {
	ID    uint64
	X, Y  float64
	Speed float64 // Upward distance per tick
	VX    float64 // Horizontal drift per tick
}

// Update moves the bullet and reports whether it has left the field.
func (b *Bullet) Update() bool {
	b.Y -= b.Speed
	b.X += b.VX
	return !b.InBounds()
}

// InBounds reports whether the bullet is still on the field.
func (b *Bullet) InBounds() bool {
	return b.Y > config.BulletMinY && b.X > config.BulletMinX && b.X < config.BulletMaxX
}

// Volley returns the bullets produced by one trigger pull from x.
// A normal shot is one fast bullet; a powered shot fans 2*SpreadCount+1
// slower bullets in SpreadStepDegrees steps.
func Volley(ids *Counter, x float64, powered bool) []Bullet {
	if !powered {
		return []Bullet{{
			ID:    ids.Next(),
			X:     x,
			Y:     config.BulletSpawnY,
			Speed: config.BulletSpeed,
		}}
	}

	out := make([]Bullet, 0, 2*config.SpreadCount+1)
	for i := -config.SpreadCount; i <= config.SpreadCount; i++ {
		angle := float64(i) * config.SpreadStepDegrees * math.Pi / 180
		out = append(out, Bullet{
			ID:    ids.Next(),
			X:     x,
			Y:     config.BulletSpawnY,
			Speed: config.SpreadBulletSpeed,
			VX:    math.Sin(angle) * config.SpreadBulletDrift,
		})
	}
	return out
}
