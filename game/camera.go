package game

// Camera is the viewport into the world. It optionally follows a body through
// a non-owning EntityID handle resolved against the world each tick.
type Camera struct {
	Pos    Vec2
	Zoom   float64
	Width  float64
	Height float64

	MinZoom    float64
	MaxZoom    float64
	ZoomFactor float64

	FollowSpeed float64
	Target      EntityID
}

// NewCamera creates a camera covering a width×height viewport.
func NewCamera(width, height float64, config Config) *Camera {
	return &Camera{
		Zoom:        1.0,
		Width:       width,
		Height:      height,
		MinZoom:     config.MinZoom,
		MaxZoom:     config.MaxZoom,
		ZoomFactor:  config.ZoomFactor,
		FollowSpeed: config.CameraFollowSpeed,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) (float64, float64) {
	sx := (p.X-c.Pos.X)*c.Zoom + c.Width/2
	sy := (p.Y-c.Pos.Y)*c.Zoom + c.Height/2
	return sx, sy
}

// ScreenToWorld converts screen coordinates back to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) Vec2 {
	return Vec2{
		X: (sx-c.Width/2)/c.Zoom + c.Pos.X,
		Y: (sy-c.Height/2)/c.Zoom + c.Pos.Y,
	}
}

// Update moves the camera toward its follow target with exponential
// smoothing. A target that no longer resolves is treated as "no target".
func (c *Camera) Update(dt float64, world *World) {
	if c.Target == InvalidEntityID {
		return
	}
	target := world.Get(c.Target)
	if target == nil {
		c.Target = InvalidEntityID
		return
	}
	delta := target.Pos.Sub(c.Pos)
	c.Pos = c.Pos.Add(delta.Mul(c.FollowSpeed * dt))
}

// ZoomIn multiplies the zoom by the configured factor, clamped to MaxZoom.
func (c *Camera) ZoomIn() {
	c.Zoom = clamp(c.Zoom*c.ZoomFactor, c.MinZoom, c.MaxZoom)
}

// ZoomOut divides the zoom by the configured factor, clamped to MinZoom.
func (c *Camera) ZoomOut() {
	c.Zoom = clamp(c.Zoom/c.ZoomFactor, c.MinZoom, c.MaxZoom)
}
