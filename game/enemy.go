package game

import (
	"image/color"
	"math"
	"math/rand"
)

// EnemyState is the hostile-ship extension of a Body. The target is a weak
// reference: an EntityID resolved against the world every tick, tolerant of
// the target having been removed.
type EnemyState struct {
	Health    float64
	MaxHealth float64

	Target EntityID

	Speed       float64
	FireRange   float64
	CooldownMin float64
	CooldownMax float64
	Cooldown    float64 // seconds until the next shot

	Active bool
}

// NewEnemy creates an enemy body at pos hunting the given target.
func NewEnemy(pos Vec2, target EntityID, config Config, rng *rand.Rand) *Body {
	body := NewBody(KindEnemy, "enemy", pos, config.EnemyMass, config.EnemyRadius,
		color.NRGBA{R: 230, G: 70, B: 60, A: 255})
	body.Enemy = &EnemyState{
		Health:      config.EnemyMaxHealth,
		MaxHealth:   config.EnemyMaxHealth,
		Target:      target,
		Speed:       config.EnemySpeed,
		FireRange:   config.EnemyFireRange,
		CooldownMin: config.EnemyCooldownMin,
		CooldownMax: config.EnemyCooldownMax,
		Cooldown:    randomCooldown(config.EnemyCooldownMin, config.EnemyCooldownMax, rng),
		Active:      true,
	}
	return body
}

// TakeDamage reduces health and reports whether the enemy was destroyed by
// this hit. On destruction the enemy is marked inactive; the caller is
// responsible for removing it from the world, which keeps the flat collection
// and the enemy pool in sync.
func (e *EnemyState) TakeDamage(amount float64) bool {
	if !e.Active {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Active = false
		return true
	}
	return false
}

// updateEnemy runs one AI tick: pure pursuit toward the target at fixed
// speed, facing the direction of motion, firing when inside range. Returns a
// bullet to spawn, or nil.
func updateEnemy(body *Body, world *World, dt float64, rng *rand.Rand) *Body {
	e := body.Enemy
	if !e.Active {
		return nil
	}

	target := world.Get(e.Target)
	if target == nil {
		// Target gone: drift with current velocity, hold fire.
		return nil
	}

	toTarget := target.Pos.Sub(body.Pos)
	dir := toTarget.Normalize()
	body.Vel = dir.Mul(e.Speed)
	if dir.LenSq() > 0 {
		body.Rotation = wrapAngle(math.Atan2(dir.Y, dir.X))
	}

	// The cooldown only runs down while the target is in firing range.
	if toTarget.LenSq() > e.FireRange*e.FireRange {
		return nil
	}
	e.Cooldown -= dt
	if e.Cooldown > 0 {
		return nil
	}
	e.Cooldown = randomCooldown(e.CooldownMin, e.CooldownMax, rng)

	muzzleSpeed := world.Config.BulletSpeed
	bulletVel := body.Vel.Add(dir.Mul(muzzleSpeed))
	spawnPos := body.Pos.Add(dir.Mul(body.Radius + world.Config.BulletRadius + 1))
	return NewBullet(spawnPos, bulletVel, body.ID, world.Config)
}

func randomCooldown(lo, hi float64, rng *rand.Rand) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
