package game

import "image/color"

// BulletState is the projectile extension of a Body. Bullets carry mass 1 and
// participate in gravity pairing like every other body.
type BulletState struct {
	Age      float64
	Lifetime float64
	Owner    EntityID
}

// NewBullet creates a bullet body owned by the given shooter.
func NewBullet(pos, vel Vec2, owner EntityID, config Config) *Body {
	body := NewBody(KindBullet, "bullet", pos, 1, config.BulletRadius,
		color.NRGBA{R: 255, G: 220, B: 90, A: 255})
	body.Vel = vel
	body.Bullet = &BulletState{
		Lifetime: config.BulletLifetime,
		Owner:    owner,
	}
	return body
}

// expired reports whether the bullet should be removed: either its lifetime
// ran out or its screen projection left the viewport.
func (body *Body) expired(cam *Camera) bool {
	b := body.Bullet
	return b.Age >= b.Lifetime || !body.Visible(cam)
}
