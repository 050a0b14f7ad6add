package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PlanetProps is what the planet-property service returns for an orbital
// distance.
type PlanetProps struct {
	Mass    float64
	Radius  float64
	Density float64
	Color   color.NRGBA
}

// PlanetOracle maps an orbital distance to surface properties. The core
// treats it as an opaque, possibly stochastic service; a failing oracle falls
// back to defaultPlanetProps.
type PlanetOracle interface {
	Properties(distance float64) (PlanetProps, error)
}

// defaultPlanetProps is the documented fallback used when the oracle errors.
var defaultPlanetProps = PlanetProps{
	Mass:    1.0e5,
	Radius:  80,
	Density: 4.9,
	Color:   color.NRGBA{R: 150, G: 150, B: 160, A: 255},
}

// statOracle is the built-in property generator: mass and radius are drawn
// from distance-keyed bands, and the color runs a warm-to-cold ramp from the
// inner system outward.
type statOracle struct {
	config Config
	rng    *rand.Rand
}

// NewPlanetOracle returns the default stochastic oracle.
func NewPlanetOracle(config Config, rng *rand.Rand) PlanetOracle {
	return &statOracle{config: config, rng: rng}
}

func (o *statOracle) Properties(distance float64) (PlanetProps, error) {
	c := o.config
	if distance <= 0 {
		return PlanetProps{}, fmt.Errorf("non-positive orbital distance %g", distance)
	}

	// Outer planets trend heavier and larger, with per-planet jitter.
	t := clamp(scaleRange(distance, c.PlanetMinOrbit, c.PlanetMaxOrbit, 0, 1), 0, 1)
	jitter := func() float64 { return 0.6 + o.rng.Float64()*0.8 }

	mass := lerp(c.PlanetMinMass, c.PlanetMaxMass, t) * jitter()
	radius := lerp(c.PlanetMinRadius, c.PlanetMaxRadius, t) * jitter()
	density := mass / (math.Pi * radius * radius)

	// Hue ramp: rocky oranges near the star through blues and violets out at
	// the system edge.
	hue := lerp(30, 280, t) + o.rng.Float64()*40 - 20
	sat := 0.45 + o.rng.Float64()*0.35
	val := 0.7 + o.rng.Float64()*0.3
	r, g, b := colorful.Hsv(wrapDegrees(hue), sat, val).RGB255()

	return PlanetProps{
		Mass:    mass,
		Radius:  radius,
		Density: density,
		Color:   color.NRGBA{R: r, G: g, B: b, A: 255},
	}, nil
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// GenerateSystem builds a fresh star system: the star fixed at the origin,
// PlanetCount planets on quasi-circular orbits, and the rocket inserted into
// a circular orbit at RocketStartDist. Orbital speeds come from the vis-viva
// relation for a circular orbit, v = sqrt(G·M/r).
func GenerateSystem(config Config, oracle PlanetOracle, rng *rand.Rand) *World {
	w := NewWorld(config)

	star := NewBody(KindStar, "star", Vec2{}, config.StarMass, config.StarRadius,
		color.NRGBA{R: 255, G: 210, B: 110, A: 255})
	w.Add(star)

	for i := 0; i < config.PlanetCount; i++ {
		// Spread orbits evenly with jitter so planets don't clump.
		frac := (float64(i) + 0.5 + (rng.Float64()-0.5)*0.6) / float64(config.PlanetCount)
		dist := lerp(config.PlanetMinOrbit, config.PlanetMaxOrbit, clamp(frac, 0, 1))

		props, err := oracle.Properties(dist)
		if err != nil {
			props = defaultPlanetProps
		}

		angle := rng.Float64() * 2 * math.Pi
		pos := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(dist)

		planet := NewBody(KindPlanet, fmt.Sprintf("planet-%d", i+1), pos, props.Mass, props.Radius, props.Color)
		planet.Vel = orbitalVelocity(pos, config.StarMass, config.Gravity)
		planet.RotationSpeed = (rng.Float64() - 0.5) * 0.8
		w.Add(planet)
	}

	rocketPos := Vec2{X: config.RocketStartDist}
	rocket := NewRocket(rocketPos, config)
	rocket.Vel = orbitalVelocity(rocketPos, config.StarMass, config.Gravity)
	w.Add(rocket)

	return w
}

// orbitalVelocity returns the tangential velocity for a circular orbit
// around a mass at the origin.
func orbitalVelocity(pos Vec2, centralMass, g float64) Vec2 {
	r := pos.Len()
	if r == 0 {
		return Vec2{}
	}
	speed := math.Sqrt(g * centralMass / r)
	// Tangent: radius rotated 90° counter-clockwise.
	tangent := Vec2{X: -pos.Y, Y: pos.X}.Normalize()
	return tangent.Mul(speed)
}
