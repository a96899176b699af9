// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield dimensions in logical units.
const (
	FieldWidth  = 600
	FieldHeight = 600
)

// Entity bounds. Objects beyond these are discarded.
const (
	BulletMinY    = -20.0 // Bullets at or above this are gone
	BulletMinX    = 0.0
	BulletMaxX    = FieldWidth
	FallOffBottom = 700.0 // Enemies and power-ups at or below this have escaped
	SpawnY        = -50.0 // Spawns appear above the visible area
)

// Player
const (
	PlayerStartX         = 300.0
	PlayerY              = 550.0
	PlayerMinX           = 40.0
	PlayerMaxX           = 560.0
	PlayerStep           = 25.0
	PlayerCollisionRange = 20.0 // Added to enemy half-size and power-up size
	DefaultPlayerColor   = "#00D4FF"
)

// Bullets
const (
	BulletSpawnY      = 520.0
	BulletSpeed       = 40.0
	SpreadBulletSpeed = 15.0
	SpreadBulletDrift = 15.0 // Multiplied by sin(angle)
	SpreadCount       = 3    // Bullets per side; total = 2*SpreadCount+1
	SpreadStepDegrees = 10.0
)

// Enemies
const (
	EnemySpawnMinX     = 50.0
	EnemySpawnRangeX   = 500.0
	EnemyBaseSpeed     = 2.0
	EnemySpeedPerLevel = 0.5
	EnemySpeedJitter   = 2.0
	EnemyHealth        = 2
	EnemyMinSize       = 25.0
	EnemySizeRange     = 15.0
	EnemyMaxSize       = EnemyMinSize + EnemySizeRange
)

// Power-ups
const (
	PowerUpSize      = 20.0
	PowerUpFallSpeed = 3.0
)

// Spawning
const (
	EnemySpawnBase      = 0.02
	EnemySpawnPerLevel  = 0.005
	PowerUpSpawnChance  = 0.001
	InitialEnemies      = 4
	InitialSpawnSpacing = 500 // Milliseconds between opening spawns
)

// Scoring
const (
	ScorePerKill  = 10
	ScorePerLevel = 50
)

// Explosions
const (
	ExplosionLife      = 20
	ExplosionBigRadius = 80.0
	ExplosionRadius    = 50.0
	ExplosionEasing    = 0.2
	HitSparks          = 5
	PickupSparks       = 20
	PickupSparkColor   = "#FFFF00"
)

// Timers, in milliseconds of simulated time.
const (
	PowerUpDuration  = 60000
	DeathShake       = 500
	BigExplodeShake  = 300
	TickMilliseconds = 16
)

// Tick rate
const (
	TickTime = TickMilliseconds * time.Millisecond
)

// Inactivity, for remote sessions.
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)
