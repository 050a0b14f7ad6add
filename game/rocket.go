package game

import (
	"image/color"
	"math"
)

// RocketState is the player-specific extension of a Body. One instance exists
// per session; reaching zero health freezes the session in game over rather
// than removing the rocket.
type RocketState struct {
	Angle    float64 // heading in radians, 0 points along +X
	TurnRate float64

	Thrust       float64 // force magnitude applied along the heading
	Thrusting    bool    // whether thrust was applied this tick (for rendering)
	Fuel         float64
	MaxFuel      float64
	FuelBurnRate float64

	Health    float64
	MaxHealth float64

	DamageFlash  float64 // seconds remaining of the hit flash
	FireCooldown float64 // seconds until the weapon may fire again

	Trajectory []Vec2 // predicted future positions, refreshed every tick
}

// NewRocket creates the player's rocket body at pos.
func NewRocket(pos Vec2, config Config) *Body {
	body := NewBody(KindRocket, "rocket", pos, config.RocketMass, config.RocketRadius,
		color.NRGBA{R: 220, G: 230, B: 240, A: 255})
	body.Rocket = &RocketState{
		TurnRate:     config.RocketTurnRate,
		Thrust:       config.RocketThrust,
		Fuel:         config.RocketMaxFuel,
		MaxFuel:      config.RocketMaxFuel,
		FuelBurnRate: config.FuelBurnRate,
		Health:       config.RocketMaxHealth,
		MaxHealth:    config.RocketMaxHealth,
		Trajectory:   make([]Vec2, 0, config.TrajectoryLength),
	}
	return body
}

// Heading returns the unit vector of the rocket's facing direction.
func (r *RocketState) Heading() Vec2 {
	return Vec2{X: math.Cos(r.Angle), Y: math.Sin(r.Angle)}
}

// steer applies turn input, thrust, and fuel drain for one tick. Thrust stops
// once the tank is empty; fuel already consumed this tick still burns down to
// the zero clamp.
func (body *Body) steer(in InputState, dt float64) {
	r := body.Rocket
	r.Thrusting = false

	if in.TurnLeft {
		r.Angle = wrapAngle(r.Angle - r.TurnRate*dt)
	}
	if in.TurnRight {
		r.Angle = wrapAngle(r.Angle + r.TurnRate*dt)
	}
	body.Rotation = r.Angle

	if in.Thrust && r.Fuel > 0 {
		body.ApplyForce(r.Heading().Mul(r.Thrust))
		r.Fuel = clamp(r.Fuel-r.FuelBurnRate*dt, 0, r.MaxFuel)
		r.Thrusting = true
	}

	if r.DamageFlash > 0 {
		r.DamageFlash = math.Max(0, r.DamageFlash-dt)
	}
	if r.FireCooldown > 0 {
		r.FireCooldown = math.Max(0, r.FireCooldown-dt)
	}
}

// Damage applies amount to the rocket's health, clamped into [0, max], and
// reports whether the rocket is dead.
func (r *RocketState) Damage(amount float64) bool {
	if amount <= 0 {
		return r.Health <= 0
	}
	r.Health = clamp(r.Health-amount, 0, r.MaxHealth)
	r.DamageFlash = 0.3
	return r.Health <= 0
}

// Refuel adds fuel, clamped to the tank size. The only way fuel increases.
func (r *RocketState) Refuel(amount float64) {
	if amount <= 0 {
		return
	}
	r.Fuel = clamp(r.Fuel+amount, 0, r.MaxFuel)
}
