package game

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length. Use it for comparisons where the actual
// distance is not needed.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Normalize returns the unit vector, or the zero vector for zero-length input.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate rotates the vector around the origin by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return Vec2{
		X: v.X*cosA - v.Y*sinA,
		Y: v.X*sinA + v.Y*cosA,
	}
}

func distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

func distanceSq(a, b Vec2) float64 {
	return a.Sub(b).LenSq()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp interpolates linearly between a and b; t is not clamped.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// scaleRange maps v from [inLo, inHi] to [outLo, outHi].
func scaleRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

// wrapAngle wraps an angle into [0, 2π).
func wrapAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}
