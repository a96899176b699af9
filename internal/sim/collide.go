package sim

import (
	gamecfg "github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
	"github.com/tomz197/skyraid/internal/sound"
)

// burst is a request for a particle burst.
type burst struct {
	x, y  float64
	count int
	kind  object.ParticleKind
	color string
}

// blast is a request for an explosion ring plus its debris.
type blast struct {
	x, y float64
	big  bool
}

// effect is one spawn request, kept in the order it was produced.
type effect struct {
	blast *blast
	burst *burst
}

// Outcome is everything one collision pass decided. It is computed against a
// frozen view of the stores and applied in one step afterwards.
type Outcome struct {
	ConsumedBullets map[uint64]struct{} // Bullet ids to remove
	EnemyHits       map[uint64]int      // Enemy id -> health lost
	Killed          map[uint64]struct{} // Enemy ids brought to zero health
	ScoreDelta      int
	PlayerKilled    bool
	PowerUpTaken    uint64
	PowerUpPicked   bool
	Cues            []sound.Cue

	effects []effect
}

func (o *Outcome) explode(x, y float64, big bool) {
	o.effects = append(o.effects, effect{blast: &blast{x: x, y: y, big: big}})
}

func (o *Outcome) sparks(x, y float64, count int, color string) {
	o.effects = append(o.effects, effect{burst: &burst{x: x, y: y, count: count, kind: object.Spark, color: color}})
}

// resolve runs the three collision checks in order and returns their combined outcome.
// It does not mutate the simulation.
func (s *Simulation) resolve() Outcome {
	out := Outcome{
		ConsumedBullets: make(map[uint64]struct{}),
		EnemyHits:       make(map[uint64]int),
		Killed:          make(map[uint64]struct{}),
	}

	s.resolveBulletsVsEnemies(&out)
	s.resolveEnemiesVsPlayer(&out)
	s.resolvePowerUpsVsPlayer(&out)

	return out
}

// resolveBulletsVsEnemies lets each enemy, in store order, take the first
// unconsumed bullet inside its hit box. A bullet hits at most one enemy and an
// enemy takes at most one bullet per tick.
func (s *Simulation) resolveBulletsVsEnemies(out *Outcome) {
	bullets := s.bullets.Items()
	if len(bullets) == 0 {
		return
	}

	s.grid.Clear()
	for i, b := range bullets {
		s.grid.Insert(b.X, b.Y, i)
	}
	if cap(s.consumed) < len(bullets) {
		s.consumed = make([]bool, len(bullets))
	}
	consumed := s.consumed[:len(bullets)]
	clear(consumed)

	for _, e := range s.enemies.Items() {
		hit := s.grid.LowestMatch(e.X, e.Y, func(i int) bool {
			return !consumed[i] && physics.PointInBox(bullets[i].X, bullets[i].Y, e.X, e.Y, e.Size)
		})
		if hit < 0 {
			continue
		}

		consumed[hit] = true
		out.ConsumedBullets[bullets[hit].ID] = struct{}{}
		out.EnemyHits[e.ID]++

		if e.Health-out.EnemyHits[e.ID] <= 0 {
			out.Killed[e.ID] = struct{}{}
			out.explode(e.X, e.Y, true)
			out.Cues = append(out.Cues, sound.Explosion)
			out.ScoreDelta += gamecfg.ScorePerKill
		} else {
			out.Cues = append(out.Cues, sound.Hit)
			out.sparks(e.X, e.Y, gamecfg.HitSparks, e.Color)
		}
	}
}

// resolveEnemiesVsPlayer checks whether any surviving enemy reached the craft.
// The first one found ends the run; the enemy store is left alone.
func (s *Simulation) resolveEnemiesVsPlayer(out *Outcome) {
	p := s.player
	for _, e := range s.enemies.Items() {
		if _, dead := out.Killed[e.ID]; dead {
			continue
		}
		if physics.Within(e.X, e.Y, p.X, p.Y, e.Size/2+gamecfg.PlayerCollisionRange) {
			out.PlayerKilled = true
			out.explode(p.X, p.Y, true)
			out.Cues = append(out.Cues, sound.GameOver, sound.Crash)
			return
		}
	}
}

// resolvePowerUpsVsPlayer picks up the first power-up in reach of the craft.
func (s *Simulation) resolvePowerUpsVsPlayer(out *Outcome) {
	p := s.player
	for _, pu := range s.powerUps.Items() {
		if physics.Within(pu.X, pu.Y, p.X, p.Y, pu.Size+gamecfg.PlayerCollisionRange) {
			out.PowerUpTaken = pu.ID
			out.PowerUpPicked = true
			out.sparks(pu.X, pu.Y, gamecfg.PickupSparks, gamecfg.PickupSparkColor)
			out.Cues = append(out.Cues, sound.PowerUp)
			return
		}
	}
}

// apply commits an outcome to the stores and game state.
func (s *Simulation) apply(out Outcome) {
	if len(out.ConsumedBullets) > 0 {
		s.bullets.Filter(func(b *object.Bullet) bool {
			_, gone := out.ConsumedBullets[b.ID]
			return !gone
		})
	}

	if len(out.EnemyHits) > 0 {
		s.enemies.Filter(func(e *object.Enemy) bool {
			if n, ok := out.EnemyHits[e.ID]; ok {
				e.Health = max(e.Health-n, 0)
				e.Hit = true
			}
			return e.Alive()
		})
	}

	if out.ScoreDelta > 0 {
		s.state.Score += out.ScoreDelta
		s.state.Level = LevelFor(s.state.Score)
	}

	for _, fx := range out.effects {
		switch {
		case fx.blast != nil:
			s.createExplosion(fx.blast.x, fx.blast.y, fx.blast.big)
		case fx.burst != nil:
			b := fx.burst
			s.particles.Append(object.Burst(s.rng, &s.ids.Particles, b.x, b.y, b.count, b.kind, b.color)...)
		}
	}

	if out.PlayerKilled {
		s.state.Phase = PhaseGameOver
		s.shake(gamecfg.DeathShake)
	}

	if out.PowerUpPicked {
		s.powerUps.Filter(func(p *object.PowerUp) bool {
			return p.ID != out.PowerUpTaken
		})
		s.state.PowerUpRemaining = s.tuning.PowerUpDurationMs
		s.state.Stars++
	}
}

// explosionBursts lists the particle mix of an explosion, big first then small counts.
var explosionBursts = [...]struct {
	kind       object.ParticleKind
	big, small int
}{
	{object.Spark, 30, 15},
	{object.Fire, 20, 10},
	{object.Smoke, 15, 8},
	{object.Debris, 12, 6},
}

// createExplosion adds a ring and its particle mix. Big explosions shake the view.
func (s *Simulation) createExplosion(x, y float64, big bool) {
	for _, eb := range explosionBursts {
		count := eb.small
		if big {
			count = eb.big
		}
		s.particles.Append(object.Burst(s.rng, &s.ids.Particles, x, y, count, eb.kind, "")...)
	}
	s.explosions.Append(object.NewExplosion(&s.ids.Explosions, x, y, big))

	if big {
		s.shake(gamecfg.BigExplodeShake)
	}
}

// shake extends the screen shake to at least ms of simulated time.
func (s *Simulation) shake(ms int) {
	s.state.ScreenShakeTicks = max(s.state.ScreenShakeTicks, ticksFor(ms))
}
