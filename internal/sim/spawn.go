package sim

import (
	gamecfg "github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
)

// spawn runs the scheduled opening spawns and the per-tick random rolls.
func (s *Simulation) spawn() {
	s.runScheduled()

	if s.rng.Float64() < s.enemySpawnChance() {
		s.spawnEnemy()
	}
	if s.rng.Float64() < s.tuning.PowerUpSpawnChance {
		s.spawnPowerUp()
	}
}

// runScheduled counts down the opening spawn delays and releases the due ones.
func (s *Simulation) runScheduled() {
	kept := s.pending[:0]
	for _, delay := range s.pending {
		delay -= gamecfg.TickMilliseconds
		if delay <= 0 {
			s.spawnEnemy()
			continue
		}
		kept = append(kept, delay)
	}
	s.pending = kept
}

// enemySpawnChance is the per-tick enemy spawn probability at the current
// level. The linear formula passes 1 at high levels; it is clamped there, so
// the spawn rate saturates at one enemy per tick.
func (s *Simulation) enemySpawnChance() float64 {
	p := s.tuning.EnemySpawnBase + float64(s.state.Level)*s.tuning.EnemySpawnPerLevel
	return min(max(p, 0), 1)
}

func (s *Simulation) spawnEnemy() {
	s.enemies.Append(object.NewEnemy(s.rng, &s.ids.Enemies, s.state.Level))
}

func (s *Simulation) spawnPowerUp() {
	s.powerUps.Append(object.NewPowerUp(s.rng, &s.ids.PowerUps))
}

// Pending returns how many opening spawns are still scheduled.
func (s *Simulation) Pending() int {
	return len(s.pending)
}
