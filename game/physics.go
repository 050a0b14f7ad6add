package game

import (
	"math"
	"math/rand"
)

// tickEvents collects what happened during one flight-mode step so the caller
// can log and react without the physics code knowing about either.
type tickEvents struct {
	EnemiesDestroyed int
	RocketDied       bool
}

// stepFlight advances the flight simulation by one tick: gravity, input,
// integration, collision resolution, bullet aging, enemy AI, spawning,
// trajectory refresh, and the camera. dt is assumed already capped.
func stepFlight(w *World, cam *Camera, spawner *Spawner, in InputState, dt float64, rng *rand.Rand) tickEvents {
	var events tickEvents

	applyGravity(w)

	rocket := w.Rocket()
	if rocket != nil {
		rocket.steer(in, dt)
		if in.Fire && rocket.Rocket.FireCooldown <= 0 {
			fireRocketWeapon(w, rocket)
		}
	}

	for _, body := range w.Bodies {
		body.Integrate(dt)
	}

	if rocket != nil {
		events.RocketDied = resolveRocketCollisions(w, rocket)
		events.EnemiesDestroyed += resolveBulletHits(w, rocket)
	}

	ageBullets(w, cam, dt)

	// Enemy AI runs over a snapshot: bullets spawned here must not receive an
	// AI tick or gravity until the next step.
	for _, enemy := range w.Enemies() {
		if bullet := updateEnemy(enemy, w, dt, rng); bullet != nil {
			w.Add(bullet)
		}
	}

	spawner.Update(w, rng)

	if rocket != nil {
		rocket.Rocket.Trajectory = PredictTrajectory(rocket, w, rocket.Rocket.Trajectory[:0])
	}

	cam.Update(dt, w)

	return events
}

// applyGravity accumulates pairwise gravitational forces across the flat
// collection. Each unordered pair is computed once and applied with opposite
// signs, so Newton's third law holds exactly. O(N²) over at most tens of
// bodies.
func applyGravity(w *World) {
	g := w.Config.Gravity
	bodies := w.Bodies
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			force := GravPull(bodies[i], bodies[j], g)
			bodies[i].ApplyForce(force)
			bodies[j].ApplyForce(force.Mul(-1))
		}
	}
}

// fireRocketWeapon spawns a bullet from the rocket's nose along its heading,
// inheriting the rocket's velocity, and starts the weapon cooldown.
func fireRocketWeapon(w *World, rocket *Body) {
	r := rocket.Rocket
	heading := r.Heading()
	spawnPos := rocket.Pos.Add(heading.Mul(rocket.Radius + w.Config.BulletRadius + 1))
	vel := rocket.Vel.Add(heading.Mul(w.Config.BulletSpeed))
	w.Add(NewBullet(spawnPos, vel, rocket.ID, w.Config))
	r.FireCooldown = w.Config.FireCooldown
}

// resolveRocketCollisions checks the rocket against every other body and
// reports whether the rocket died. Damage is floor(0.5·|relative velocity|).
// The bounce replaces the rocket's velocity with its projection onto the
// collision normal scaled by 0.5; the tangential component is discarded.
func resolveRocketCollisions(w *World, rocket *Body) bool {
	r := rocket.Rocket
	dead := r.Health <= 0

	for _, other := range w.Bodies {
		if other == rocket {
			continue
		}
		// A freshly fired bullet overlaps its own shooter for a moment.
		if other.Kind == KindBullet && other.Bullet.Owner == rocket.ID && other.Bullet.Age < 0.1 {
			continue
		}

		sumR := rocket.Radius + other.Radius
		if distanceSq(rocket.Pos, other.Pos) >= sumR*sumR {
			continue
		}

		relVel := rocket.Vel.Sub(other.Vel)
		damage := math.Floor(0.5 * relVel.Len())
		if damage > 0 {
			if r.Damage(damage) {
				dead = true
			}
		}

		normal := rocket.Pos.Sub(other.Pos).Normalize()
		projected := normal.Mul(rocket.Vel.Dot(normal))
		rocket.Vel = projected.Mul(0.5)
	}
	return dead
}

// resolveBulletHits applies player bullets to enemies and returns how many
// enemies were destroyed. Removal goes through World.Remove so both the flat
// collection and the pools stay in sync.
func resolveBulletHits(w *World, rocket *Body) int {
	destroyed := 0
	for _, bullet := range w.Bullets() {
		if bullet.Bullet.Owner != rocket.ID {
			continue
		}
		for _, enemy := range w.Enemies() {
			sumR := bullet.Radius + enemy.Radius
			if distanceSq(bullet.Pos, enemy.Pos) >= sumR*sumR {
				continue
			}
			w.Remove(bullet.ID)
			if enemy.Enemy.TakeDamage(w.Config.BulletDamage) {
				w.Remove(enemy.ID)
				destroyed++
			}
			break
		}
	}
	return destroyed
}

// ageBullets advances bullet ages and removes the ones whose lifetime ran
// out or whose projection left the viewport. Iterates a snapshot, mutates the
// live world.
func ageBullets(w *World, cam *Camera, dt float64) {
	for _, bullet := range w.Bullets() {
		bullet.Bullet.Age += dt
		if bullet.expired(cam) {
			w.Remove(bullet.ID)
		}
	}
}
