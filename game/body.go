package game

import (
	"image/color"
	"math"
	"sync/atomic"
)

// EntityID is a unique identifier for any body in the world. IDs are never
// reused, so a stale ID held by an enemy or the camera simply fails to
// resolve once the body is gone.
type EntityID uint64

// InvalidEntityID marks an unset or invalidated body reference.
const InvalidEntityID EntityID = 0

var nextEntityID uint64

func newEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// BodyKind tags the variant of a Body.
type BodyKind int

const (
	KindStar BodyKind = iota
	KindPlanet
	KindRocket
	KindEnemy
	KindBullet
)

func (k BodyKind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	case KindRocket:
		return "rocket"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	}
	return "unknown"
}

// Body is a physical entity participating in gravity and integration. The
// per-kind extension structs are nil except for the matching kind.
type Body struct {
	ID   EntityID
	Kind BodyKind
	Name string

	Pos Vec2
	Vel Vec2
	Acc Vec2

	Mass   float64
	Radius float64

	Rotation      float64 // radians, wraps modulo 2π
	RotationSpeed float64 // radians per second

	Color color.NRGBA

	Rocket *RocketState
	Enemy  *EnemyState
	Bullet *BulletState
}

// NewBody creates a body of the given kind with a fresh ID.
func NewBody(kind BodyKind, name string, pos Vec2, mass, radius float64, clr color.NRGBA) *Body {
	return &Body{
		ID:     newEntityID(),
		Kind:   kind,
		Name:   name,
		Pos:    pos,
		Mass:   mass,
		Radius: radius,
		Color:  clr,
	}
}

// ApplyForce accumulates f/mass into the acceleration. Bodies with
// non-positive mass skip force application so bullets and degenerate cases
// never divide by zero.
func (b *Body) ApplyForce(f Vec2) {
	if b.Mass <= 0 {
		return
	}
	b.Acc = b.Acc.Add(f.Mul(1.0 / b.Mass))
}

// Integrate advances the body by one explicit Euler step and resets the
// acceleration accumulator for the next step.
func (b *Body) Integrate(dt float64) {
	b.Vel = b.Vel.Add(b.Acc.Mul(dt))
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
	b.Acc = Vec2{}
	b.Rotation = wrapAngle(b.Rotation + b.RotationSpeed*dt)
}

// GravPull returns the gravitational force on a exerted by b. Zero separation
// yields the zero vector rather than NaN/Inf.
func GravPull(a, b *Body, g float64) Vec2 {
	delta := b.Pos.Sub(a.Pos)
	distSq := delta.LenSq()
	if distSq == 0 {
		return Vec2{}
	}
	magnitude := g * a.Mass * b.Mass / distSq
	return delta.Mul(magnitude / math.Sqrt(distSq))
}

// Visible reports whether the body's bounding box intersects the camera's
// viewport, so the renderer can cull off-screen bodies.
func (b *Body) Visible(cam *Camera) bool {
	sx, sy := cam.WorldToScreen(b.Pos)
	r := b.Radius * cam.Zoom
	return sx+r >= 0 && sx-r <= cam.Width &&
		sy+r >= 0 && sy-r <= cam.Height
}
