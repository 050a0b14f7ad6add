package game

import (
	"math"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// flightFixture builds a minimal world with a rocket and no random spawning.
func flightFixture(t *testing.T) (*World, *Camera, *Spawner, Config) {
	t.Helper()
	config := DefaultConfig()
	config.EnemySpawnRate = 0
	config.InitialEnemies = 0

	w := NewWorld(config)
	rocket := NewRocket(Vec2{}, config)
	w.Add(rocket)

	cam := NewCamera(float64(config.ScreenWidth), float64(config.ScreenHeight), config)
	cam.Target = rocket.ID
	return w, cam, NewSpawner(config), config
}

// totalEnergy computes kinetic plus gravitational potential energy for a
// two-body system.
func totalEnergy(a, b *Body, g float64) float64 {
	kinetic := 0.5*a.Mass*a.Vel.LenSq() + 0.5*b.Mass*b.Vel.LenSq()
	potential := -g * a.Mass * b.Mass / distance(a.Pos, b.Pos)
	return kinetic + potential
}

func TestEnergyBoundedUnderMutualGravity(t *testing.T) {
	g := 6.67e-2
	a := testBody(KindPlanet, Vec2{X: -500}, 1e6, 10)
	b := testBody(KindPlanet, Vec2{X: 500}, 1e6, 10)

	w := NewWorld(DefaultConfig())
	w.Config.Gravity = g
	w.Add(a)
	w.Add(b)

	initial := totalEnergy(a, b, g)
	dt := 0.001
	for i := 0; i < 1000; i++ {
		applyGravity(w)
		a.Integrate(dt)
		b.Integrate(dt)
	}
	final := totalEnergy(a, b, g)

	drift := (final - initial) / math.Abs(initial)
	if drift > 1e-3 {
		t.Errorf("mechanical energy grew by %.2g%% over 1000 steps", drift*100)
	}
}

func TestFuelMonotonicity(t *testing.T) {
	w, cam, spawner, config := flightFixture(t)
	rocket := w.Rocket()

	in := InputState{Thrust: true}
	prev := rocket.Rocket.Fuel
	for i := 0; i < 2000; i++ {
		stepFlight(w, cam, spawner, in, config.TimeStep, testRNG())
		fuel := rocket.Rocket.Fuel
		if fuel > prev {
			t.Fatalf("fuel increased from %g to %g during thrust", prev, fuel)
		}
		if fuel < 0 {
			t.Fatalf("fuel went negative: %g", fuel)
		}
		prev = fuel
	}
	if prev != 0 {
		t.Errorf("fuel = %g after sustained thrust, want 0", prev)
	}

	// With the tank empty, thrust no longer accelerates the rocket.
	velBefore := rocket.Vel
	stepFlight(w, cam, spawner, in, config.TimeStep, testRNG())
	if rocket.Vel != velBefore {
		t.Errorf("empty tank still produced thrust: %+v -> %+v", velBefore, rocket.Vel)
	}
}

func TestRefuelClamped(t *testing.T) {
	config := DefaultConfig()
	rocket := NewRocket(Vec2{}, config)
	r := rocket.Rocket
	r.Fuel = config.RocketMaxFuel - 1
	r.Refuel(100)
	if r.Fuel != config.RocketMaxFuel {
		t.Errorf("fuel = %g, want clamp at %g", r.Fuel, config.RocketMaxFuel)
	}
}

func TestHealthClamp(t *testing.T) {
	config := DefaultConfig()
	rocket := NewRocket(Vec2{}, config)
	r := rocket.Rocket

	r.Damage(1e9)
	if r.Health != 0 {
		t.Errorf("health = %g after massive damage, want 0", r.Health)
	}
	r.Damage(50)
	if r.Health != 0 {
		t.Errorf("health went below zero: %g", r.Health)
	}
	// Negative damage must not heal.
	r.Damage(-100)
	if r.Health != 0 {
		t.Errorf("negative damage changed health to %g", r.Health)
	}
}

func TestRocketCollisionDamageAndBounce(t *testing.T) {
	config := DefaultConfig()
	w := NewWorld(config)

	planet := testBody(KindPlanet, Vec2{}, 1e5, 50)
	w.Add(planet)

	rocket := NewRocket(Vec2{X: 40}, config) // overlapping: 40 < 50+14
	rocket.Vel = Vec2{X: -10, Y: 4}
	w.Add(rocket)

	died := resolveRocketCollisions(w, rocket)
	if died {
		t.Fatal("rocket reported dead after a gentle scrape")
	}

	// damage = floor(0.5·|relVel|) = floor(0.5·sqrt(116)) = 5
	wantHealth := config.RocketMaxHealth - 5
	if rocket.Rocket.Health != wantHealth {
		t.Errorf("health = %g, want %g", rocket.Rocket.Health, wantHealth)
	}

	// Bounce: velocity replaced by its projection onto the collision normal
	// (1,0), scaled by 0.5. The tangential component is discarded.
	if !almostEqual(rocket.Vel.X, -5, 1e-9) || !almostEqual(rocket.Vel.Y, 0, 1e-9) {
		t.Errorf("post-bounce velocity = %+v, want (-5, 0)", rocket.Vel)
	}
}

func TestSlowCollisionDealsNoDamage(t *testing.T) {
	config := DefaultConfig()
	w := NewWorld(config)
	w.Add(testBody(KindPlanet, Vec2{}, 1e5, 50))

	rocket := NewRocket(Vec2{X: 40}, config)
	rocket.Vel = Vec2{X: -1} // floor(0.5·1) = 0
	w.Add(rocket)

	resolveRocketCollisions(w, rocket)
	if rocket.Rocket.Health != config.RocketMaxHealth {
		t.Errorf("slow scrape dealt damage: health %g", rocket.Rocket.Health)
	}
	// The bounce response applies regardless of damage.
	if !almostEqual(rocket.Vel.X, -0.5, 1e-9) {
		t.Errorf("bounce missing on zero-damage collision: %+v", rocket.Vel)
	}
}

func TestLethalCollisionEndsSession(t *testing.T) {
	w, cam, spawner, config := flightFixture(t)
	rocket := w.Rocket()
	rocket.Rocket.Health = 3

	planet := testBody(KindPlanet, rocket.Pos.Add(Vec2{X: 30}), 0, 50)
	w.Add(planet)
	rocket.Vel = Vec2{X: 500}

	events := stepFlight(w, cam, spawner, InputState{}, config.TimeStep, testRNG())
	if !events.RocketDied {
		t.Error("lethal collision did not report rocket death")
	}
	if rocket.Rocket.Health != 0 {
		t.Errorf("health = %g after lethal collision, want 0", rocket.Rocket.Health)
	}
	if w.Rocket() == nil {
		t.Error("dead rocket was removed from the world; it must stay frozen")
	}
}

func TestBulletLifetimeExpiry(t *testing.T) {
	w, cam, _, config := flightFixture(t)
	rocket := w.Rocket()

	bullet := NewBullet(rocket.Pos, Vec2{}, rocket.ID, config)
	w.Add(bullet)

	ageBullets(w, cam, config.BulletLifetime+0.01)
	if len(w.BulletIDs) != 0 {
		t.Error("expired bullet not removed")
	}
	if w.Get(bullet.ID) != nil {
		t.Error("expired bullet still resolvable in the arena")
	}
}

func TestBulletOffscreenRemoval(t *testing.T) {
	w, cam, _, config := flightFixture(t)

	// Far outside the viewport, young enough to otherwise survive.
	bullet := NewBullet(Vec2{X: 1e6}, Vec2{}, w.RocketID, config)
	w.Add(bullet)

	ageBullets(w, cam, 0.01)
	if len(w.BulletIDs) != 0 {
		t.Error("off-screen bullet not removed")
	}
}

func TestPlayerBulletDestroysEnemy(t *testing.T) {
	w, cam, spawner, config := flightFixture(t)
	rocket := w.Rocket()

	enemy := NewEnemy(rocket.Pos.Add(Vec2{X: 200}), rocket.ID, config, testRNG())
	enemy.Enemy.Health = config.BulletDamage // one hit kills
	w.Add(enemy)

	bullet := NewBullet(enemy.Pos, Vec2{}, rocket.ID, config)
	w.Add(bullet)

	events := stepFlight(w, cam, spawner, InputState{}, config.TimeStep, testRNG())
	if events.EnemiesDestroyed != 1 {
		t.Errorf("EnemiesDestroyed = %d, want 1", events.EnemiesDestroyed)
	}
	if w.EnemyCount() != 0 {
		t.Error("destroyed enemy still in the pool")
	}
	if len(w.BulletIDs) != 0 {
		t.Error("bullet not consumed by the hit")
	}
}

func TestFireSpawnsBulletAndStartsCooldown(t *testing.T) {
	w, cam, spawner, config := flightFixture(t)
	rocket := w.Rocket()

	stepFlight(w, cam, spawner, InputState{Fire: true}, config.TimeStep, testRNG())
	if len(w.BulletIDs) != 1 {
		t.Fatalf("bullets after firing = %d, want 1", len(w.BulletIDs))
	}
	if rocket.Rocket.FireCooldown <= 0 {
		t.Error("weapon cooldown not started")
	}

	// Held fire during cooldown must not spawn another bullet.
	stepFlight(w, cam, spawner, InputState{Fire: true}, config.TimeStep, testRNG())
	if len(w.BulletIDs) != 1 {
		t.Errorf("cooldown ignored: %d bullets", len(w.BulletIDs))
	}
}
