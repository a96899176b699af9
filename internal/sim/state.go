package sim

import "github.com/tomz197/skyraid/internal/loop/config"

// Phase is the top-level game phase.
type Phase int

const (
	PhaseIdle     Phase = iota // Title screen, nothing simulated
	PhasePlaying               // Active gameplay
	PhasePaused                // Gameplay frozen, resumable
	PhaseGameOver              // Player destroyed, waiting for restart
	PhaseVictory               // Win condition reached, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// GameState is the scalar state of one session.
type GameState struct {
	Phase            Phase
	Score            int
	Level            int
	Stars            int // Power-ups collected this session
	PowerUpRemaining int // Milliseconds of simulated time left in the power-up window
	ScreenShakeTicks int // Ticks left of the cosmetic shake
}

func newGameState(phase Phase) GameState {
	return GameState{Phase: phase, Level: 1}
}

// IsPlaying reports whether a session is in progress (running or paused).
func (g GameState) IsPlaying() bool {
	return g.Phase == PhasePlaying || g.Phase == PhasePaused
}

// IsPaused reports whether the session is paused.
func (g GameState) IsPaused() bool { return g.Phase == PhasePaused }

// GameOver reports whether the player was destroyed.
func (g GameState) GameOver() bool { return g.Phase == PhaseGameOver }

// Victory reports whether the win condition was reached.
func (g GameState) Victory() bool { return g.Phase == PhaseVictory }

// Terminal reports whether the session has ended.
func (g GameState) Terminal() bool { return g.GameOver() || g.Victory() }

// IsPoweredUp reports whether the spread-shot window is open.
func (g GameState) IsPoweredUp() bool { return g.PowerUpRemaining > 0 }

// ScreenShake reports whether the view should shake this frame.
func (g GameState) ScreenShake() bool { return g.ScreenShakeTicks > 0 }

// LevelFor returns the level reached at score.
func LevelFor(score int) int {
	return score/config.ScorePerLevel + 1
}

// ticksFor converts milliseconds of simulated time to whole ticks, rounding up.
func ticksFor(ms int) int {
	return (ms + config.TickMilliseconds - 1) / config.TickMilliseconds
}
