package game

import (
	"math"
	"math/rand"
)

// Spawner controls the enemy population around the rocket.
type Spawner struct {
	SpawnRate  float64 // per-tick Bernoulli probability, deliberately not dt-scaled
	MaxEnemies int
	InnerDist  float64
	OuterDist  float64
}

// NewSpawner creates a spawner from the config's population tuning.
func NewSpawner(config Config) *Spawner {
	return &Spawner{
		SpawnRate:  config.EnemySpawnRate,
		MaxEnemies: config.MaxEnemies,
		InnerDist:  config.SpawnAnnulusInner,
		OuterDist:  config.SpawnAnnulusOuter,
	}
}

// SpawnInitial places the session's starting enemies in the annulus around
// the rocket.
func (s *Spawner) SpawnInitial(w *World, count int, rng *rand.Rand) {
	rocket := w.Rocket()
	if rocket == nil {
		return
	}
	for i := 0; i < count; i++ {
		w.Add(s.spawnOne(w, rocket, rng))
	}
}

// Update runs the per-tick spawn policy: while under the population cap, a
// single Bernoulli trial with probability SpawnRate. The resulting spawn
// interval is geometrically distributed in ticks, not fixed; that statistical
// shape is part of the game's feel.
func (s *Spawner) Update(w *World, rng *rand.Rand) {
	if w.EnemyCount() >= s.MaxEnemies {
		return
	}
	rocket := w.Rocket()
	if rocket == nil {
		return
	}
	if rng.Float64() < s.SpawnRate {
		w.Add(s.spawnOne(w, rocket, rng))
	}
}

// spawnOne picks a random angle and a distance uniform in the annulus.
func (s *Spawner) spawnOne(w *World, rocket *Body, rng *rand.Rand) *Body {
	angle := rng.Float64() * 2 * math.Pi
	dist := s.InnerDist + rng.Float64()*(s.OuterDist-s.InnerDist)
	pos := rocket.Pos.Add(Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(dist))
	return NewEnemy(pos, rocket.ID, w.Config, rng)
}
