package game

// attractor is a frozen snapshot of a body's gravitating state, so the
// predictor never touches live entities.
type attractor struct {
	pos  Vec2
	mass float64
}

// PredictTrajectory forward-simulates the rocket's free-fall path for the
// configured number of samples and appends the positions to dst (pass a
// sliced-to-zero cache to reuse its backing array). The predictor steps at
// twice the live time step, undersampling to cover a longer displayed arc
// with the same sample count. It operates entirely on copies:
// neither the rocket nor any other body is mutated, and the rocket itself is
// excluded from the gravity sum.
func PredictTrajectory(rocket *Body, w *World, dst []Vec2) []Vec2 {
	others := make([]attractor, 0, len(w.Bodies))
	for _, body := range w.Bodies {
		if body == rocket || body.Mass <= 0 {
			continue
		}
		others = append(others, attractor{pos: body.Pos, mass: body.Mass})
	}

	pos := rocket.Pos
	vel := rocket.Vel
	mass := rocket.Mass
	g := w.Config.Gravity
	dt := 2 * w.Config.TimeStep

	for i := 0; i < w.Config.TrajectoryLength; i++ {
		var acc Vec2
		for _, a := range others {
			delta := a.pos.Sub(pos)
			distSq := delta.LenSq()
			if distSq == 0 {
				continue
			}
			// F = G·M·m/d², a = F/m; m cancels but is kept explicit so the
			// guard below mirrors the live ApplyForce policy.
			if mass <= 0 {
				break
			}
			accMag := g * a.mass / distSq
			acc = acc.Add(delta.Normalize().Mul(accMag))
		}

		vel = vel.Add(acc.Mul(dt))
		pos = pos.Add(vel.Mul(dt))
		dst = append(dst, pos)
	}
	return dst
}
