package game

import (
	"math"
	"math/rand"
)

const (
	dustCount     = 70
	dustSpanScale = 1.5
)

// dustMote is one particle of the parallax background field.
type dustMote struct {
	Pos    Vec2
	Depth  float64 // 0..1, deeper motes drift slower
	Radius float64
}

func newDustField(config Config, rng *rand.Rand) []dustMote {
	span := math.Hypot(float64(config.ScreenWidth), float64(config.ScreenHeight)) * dustSpanScale
	dust := make([]dustMote, dustCount)
	for i := range dust {
		dust[i] = dustMote{
			Pos: Vec2{
				X: (rng.Float64() - 0.5) * span,
				Y: (rng.Float64() - 0.5) * span,
			},
			Depth:  0.2 + rng.Float64()*0.8,
			Radius: 1 + rng.Float64()*1.5,
		}
	}
	return dust
}

// updateDust drifts the field against the rocket's motion for parallax and
// wraps motes on a torus around the rocket so the field never thins out.
func updateDust(dust []dustMote, rocket *Body, config Config, dt float64) {
	span := math.Hypot(float64(config.ScreenWidth), float64(config.ScreenHeight)) * dustSpanScale
	half := span * 0.5
	for i := range dust {
		m := &dust[i]
		m.Pos.X -= rocket.Vel.X * dt * m.Depth
		m.Pos.Y -= rocket.Vel.Y * dt * m.Depth

		dx := m.Pos.X - rocket.Pos.X
		dy := m.Pos.Y - rocket.Pos.Y
		if dx < -half {
			m.Pos.X += span
		}
		if dx > half {
			m.Pos.X -= span
		}
		if dy < -half {
			m.Pos.Y += span
		}
		if dy > half {
			m.Pos.Y -= span
		}
	}
}
