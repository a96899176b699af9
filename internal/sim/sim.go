// Package sim is the authoritative game simulation: entity stores, spawning,
// per-tick physics, collision resolution and the game state machine.
//
// A Simulation is not safe for concurrent use. One goroutine owns it and
// serialises actions and ticks (see package loop).
package sim

import (
	"math/rand"
	"time"

	"github.com/tomz197/skyraid/internal/config"
	gamecfg "github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
	"github.com/tomz197/skyraid/internal/sound"
)

// Options configures a Simulation. Zero values pick sensible defaults.
type Options struct {
	// Tuning is used as given, so a zero spawn chance disables that spawn.
	// Start from config.DefaultTuning() to override single knobs. The zero
	// value means config.DefaultTuning() and a missing power-up duration
	// falls back to the stock one.
	Tuning config.Tuning
	Rand   *rand.Rand    // Overrides Tuning.Seed when set
	Sound  sound.Sink    // Defaults to sound.Discard
}

// Simulation owns every entity store and the game state of one session.
type Simulation struct {
	state  GameState
	player object.Player

	particles  object.Store[object.Particle]
	bullets    object.Store[object.Bullet]
	enemies    object.Store[object.Enemy]
	explosions object.Store[object.Explosion]
	powerUps   object.Store[object.PowerUp]

	ids     object.IDs
	pending []int // Delays in ms of scheduled enemy spawns

	tuning config.Tuning
	rng    *rand.Rand
	sound  sound.Sink
	ticks  uint64

	// Reused collision scratch space
	grid     *physics.SpatialGrid
	consumed []bool
}

// New creates an idle simulation.
func New(opts Options) *Simulation {
	tuning := opts.Tuning
	if tuning == (config.Tuning{}) {
		tuning = config.DefaultTuning()
	}
	if tuning.PowerUpDurationMs <= 0 {
		tuning.PowerUpDurationMs = gamecfg.PowerUpDuration
	}

	rng := opts.Rand
	if rng == nil {
		seed := tuning.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	sink := opts.Sound
	if sink == nil {
		sink = sound.Discard
	}

	return &Simulation{
		state:  newGameState(PhaseIdle),
		player: object.NewPlayer(""),
		tuning: tuning,
		rng:    rng,
		sound:  sink,
		grid:   physics.NewSpatialGrid(gamecfg.FieldWidth, gamecfg.FieldHeight, gamecfg.EnemyMaxSize),
	}
}

// State returns the current scalar game state.
func (s *Simulation) State() GameState { return s.state }

// Player returns the player craft.
func (s *Simulation) Player() object.Player { return s.player }

// Ticks returns how many simulation ticks have run since creation.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Active reports whether Tick has work to do: a running session, or an ended
// session still winding down its screen shake.
func (s *Simulation) Active() bool {
	switch {
	case s.state.Phase == PhasePlaying:
		return true
	case s.state.Terminal():
		return s.state.ScreenShakeTicks > 0
	default:
		return false
	}
}

// Start begins a new session. Ignored while a session is in progress.
func (s *Simulation) Start() bool {
	if s.state.IsPlaying() {
		return false
	}

	s.state = newGameState(PhasePlaying)
	s.player = object.NewPlayer(s.player.Color)
	s.particles.Reset()
	s.bullets.Reset()
	s.enemies.Reset()
	s.explosions.Reset()
	s.powerUps.Reset()

	s.pending = s.pending[:0]
	for i := 0; i < gamecfg.InitialEnemies; i++ {
		s.pending = append(s.pending, i*gamecfg.InitialSpawnSpacing)
	}
	return true
}

// Restart begins a new session after game over or victory.
func (s *Simulation) Restart() bool {
	if !s.state.Terminal() {
		return false
	}
	return s.Start()
}

// TogglePause pauses or resumes a session in progress.
func (s *Simulation) TogglePause() bool {
	switch s.state.Phase {
	case PhasePlaying:
		s.state.Phase = PhasePaused
	case PhasePaused:
		s.state.Phase = PhasePlaying
	default:
		return false
	}
	return true
}

// MoveLeft shifts the craft one step left.
func (s *Simulation) MoveLeft() bool { return s.move(-gamecfg.PlayerStep) }

// MoveRight shifts the craft one step right.
func (s *Simulation) MoveRight() bool { return s.move(gamecfg.PlayerStep) }

func (s *Simulation) move(dx float64) bool {
	if s.state.Phase != PhasePlaying {
		return false
	}
	s.player.Move(dx)
	return true
}

// Fire launches a volley from the craft: one bullet normally, a spread while powered up.
func (s *Simulation) Fire() bool {
	if s.state.Phase != PhasePlaying {
		return false
	}
	s.bullets.Append(object.Volley(&s.ids.Bullets, s.player.X, s.state.IsPoweredUp())...)
	s.sound.Play(sound.Shoot)
	return true
}

// SelectColor repaints the craft. Only allowed outside a session.
func (s *Simulation) SelectColor(color string) bool {
	if s.state.IsPlaying() || color == "" {
		return false
	}
	s.player.Color = color
	return true
}

// Tick advances the simulation by one fixed step.
func (s *Simulation) Tick() {
	if !s.Active() {
		return
	}
	s.ticks++

	if s.state.ScreenShakeTicks > 0 {
		s.state.ScreenShakeTicks--
	}
	if s.state.Terminal() {
		return
	}

	s.tickPowerUp()
	s.updateEntities()
	out := s.resolve()
	s.apply(out)
	s.spawn()

	for _, cue := range out.Cues {
		s.sound.Play(cue)
	}
	s.checkVictory()
}

// tickPowerUp counts the power-up window down by one tick of simulated time.
func (s *Simulation) tickPowerUp() {
	if s.state.PowerUpRemaining <= 0 {
		return
	}
	s.state.PowerUpRemaining -= gamecfg.TickMilliseconds
	if s.state.PowerUpRemaining < 0 {
		s.state.PowerUpRemaining = 0
	}
}

// updateEntities integrates motion and drops expired entities.
func (s *Simulation) updateEntities() {
	object.Step[object.Particle](&s.particles)
	object.Step[object.Explosion](&s.explosions)
	object.Step[object.PowerUp](&s.powerUps)
	object.Step[object.Bullet](&s.bullets)
	object.Step[object.Enemy](&s.enemies)
}

// checkVictory ends the session once the configured score is reached.
func (s *Simulation) checkVictory() {
	if s.tuning.VictoryScore <= 0 || s.state.Phase != PhasePlaying {
		return
	}
	if s.state.Score >= s.tuning.VictoryScore {
		s.state.Phase = PhaseVictory
		s.sound.Play(sound.Victory)
	}
}

// Snapshot is a deep copy of the simulation for renderers.
type Snapshot struct {
	State      GameState
	Player     object.Player
	Particles  []object.Particle
	Bullets    []object.Bullet
	Enemies    []object.Enemy
	Explosions []object.Explosion
	PowerUps   []object.PowerUp
	Tick       uint64
}

// Snapshot copies the current state. The result shares nothing with the simulation.
func (s *Simulation) Snapshot() *Snapshot {
	return &Snapshot{
		State:      s.state,
		Player:     s.player,
		Particles:  s.particles.Clone(),
		Bullets:    s.bullets.Clone(),
		Enemies:    s.enemies.Clone(),
		Explosions: s.explosions.Clone(),
		PowerUps:   s.powerUps.Clone(),
		Tick:       s.ticks,
	}
}
