package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.NRGBA{R: 4, G: 6, B: 18, A: 255}
	colorDust       = color.NRGBA{R: 100, G: 100, B: 110, A: 255}
	colorTrajectory = color.NRGBA{R: 90, G: 200, B: 255, A: 220}
	colorFlame      = color.NRGBA{R: 255, G: 170, B: 60, A: 255}
	colorHealthBar  = color.NRGBA{R: 90, G: 220, B: 110, A: 255}
	colorFuelBar    = color.NRGBA{R: 250, G: 200, B: 70, A: 255}
	colorBarBack    = color.NRGBA{R: 40, G: 40, B: 55, A: 255}
	colorDamage     = color.NRGBA{R: 255, G: 60, B: 60, A: 90}
)

func (g *Game) drawFlight(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g.drawDust(screen)
	g.drawTrajectory(screen)

	for _, body := range g.world.Bodies {
		if !body.Visible(g.camera) {
			continue
		}
		g.drawBody(screen, body)
	}

	g.drawHUD(screen)

	if g.showMap {
		g.drawSystemMap(screen)
	}
	if g.paused {
		drawBanner(screen, g.config, "PAUSED", color.NRGBA{R: 220, G: 220, B: 240, A: 255})
	}
	if g.gameOver {
		drawBanner(screen, g.config, "GAME OVER - press R to restart", color.NRGBA{R: 255, G: 90, B: 90, A: 255})
	}
}

func (g *Game) drawDust(screen *ebiten.Image) {
	for i := range g.dust {
		m := &g.dust[i]
		sx, sy := g.camera.WorldToScreen(m.Pos)
		if sx < 0 || sx > g.camera.Width || sy < 0 || sy > g.camera.Height {
			continue
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(m.Radius), colorDust, false)
	}
}

func (g *Game) drawTrajectory(screen *ebiten.Image) {
	rocket := g.world.Rocket()
	if rocket == nil {
		return
	}
	points := rocket.Rocket.Trajectory
	for i := 0; i+1 < len(points); i++ {
		x1, y1 := g.camera.WorldToScreen(points[i])
		x2, y2 := g.camera.WorldToScreen(points[i+1])

		// Fade out along the arc.
		progress := float64(i) / float64(len(points))
		alpha := uint8(float64(colorTrajectory.A) * (1.0 - progress*0.85))
		clr := colorTrajectory
		clr.A = alpha
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, clr, true)
	}
}

func (g *Game) drawBody(screen *ebiten.Image, body *Body) {
	sx, sy := g.camera.WorldToScreen(body.Pos)
	radius := body.Radius * g.camera.Zoom
	if radius < 1 {
		radius = 1
	}

	switch body.Kind {
	case KindRocket:
		g.drawRocket(screen, body, sx, sy, radius)
	case KindEnemy:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), body.Color, true)
		// Nose line showing facing.
		tipX := sx + math.Cos(body.Rotation)*radius*1.6
		tipY := sy + math.Sin(body.Rotation)*radius*1.6
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(tipX), float32(tipY), 2, body.Color, true)
		drawHealthBar(screen, sx, sy, radius, body.Enemy.Health/body.Enemy.MaxHealth)
	default:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), body.Color, true)
	}
}

func (g *Game) drawRocket(screen *ebiten.Image, body *Body, sx, sy, radius float64) {
	r := body.Rocket

	// Triangle hull from heading.
	nose := Vec2{X: radius * 1.8}.Rotate(r.Angle)
	left := Vec2{X: -radius, Y: -radius * 0.9}.Rotate(r.Angle)
	right := Vec2{X: -radius, Y: radius * 0.9}.Rotate(r.Angle)

	hull := body.Color
	if r.DamageFlash > 0 {
		hull = color.NRGBA{R: 255, G: 80, B: 80, A: 255}
	}
	vector.StrokeLine(screen, float32(sx+nose.X), float32(sy+nose.Y), float32(sx+left.X), float32(sy+left.Y), 2, hull, true)
	vector.StrokeLine(screen, float32(sx+left.X), float32(sy+left.Y), float32(sx+right.X), float32(sy+right.Y), 2, hull, true)
	vector.StrokeLine(screen, float32(sx+right.X), float32(sy+right.Y), float32(sx+nose.X), float32(sy+nose.Y), 2, hull, true)

	if r.Thrusting {
		flame := Vec2{X: -radius * 2.2}.Rotate(r.Angle)
		vector.StrokeLine(screen, float32(sx+left.X), float32(sy+left.Y), float32(sx+flame.X), float32(sy+flame.Y), 2, colorFlame, true)
		vector.StrokeLine(screen, float32(sx+right.X), float32(sy+right.Y), float32(sx+flame.X), float32(sy+flame.Y), 2, colorFlame, true)
	}
}

func drawHealthBar(screen *ebiten.Image, sx, sy, radius, fraction float64) {
	if fraction >= 1 {
		return
	}
	barW := float32(radius * 2)
	barX := float32(sx) - barW/2
	barY := float32(sy - radius - 8)
	vector.DrawFilledRect(screen, barX, barY, barW, 3, colorBarBack, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(clamp(fraction, 0, 1)), 3, colorHealthBar, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	rocket := g.world.Rocket()
	if rocket == nil {
		return
	}
	r := rocket.Rocket

	// Fuel and health bars, top-left.
	const barW, barH, pad = 180.0, 10.0, 12.0
	vector.DrawFilledRect(screen, pad, pad, barW, barH, colorBarBack, false)
	vector.DrawFilledRect(screen, pad, pad, float32(barW*r.Health/r.MaxHealth), barH, colorHealthBar, false)
	vector.DrawFilledRect(screen, pad, pad+barH+4, barW, barH, colorBarBack, false)
	vector.DrawFilledRect(screen, pad, pad+barH+4, float32(barW*r.Fuel/r.MaxFuel), barH, colorFuelBar, false)

	hud := fmt.Sprintf("speed %.0f  enemies %d  zoom %.2f",
		rocket.Vel.Len(), g.world.EnemyCount(), g.camera.Zoom)
	ebitenutil.DebugPrintAt(screen, hud, int(pad), int(pad+2*barH+10))

	if r.DamageFlash > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(g.camera.Width), float32(g.camera.Height), colorDamage, false)
	}
}

// drawBanner centers a line of text on screen using the basic bitmap face.
func drawBanner(screen *ebiten.Image, config Config, msg string, clr color.NRGBA) {
	face := basicfont.Face7x13
	w := len(msg) * face.Advance
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight / 2
	text.Draw(screen, msg, face, x, y, clr)
}
