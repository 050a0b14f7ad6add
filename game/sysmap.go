package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorMapBackdrop = color.NRGBA{R: 10, G: 16, B: 32, A: 230}
	colorMapOrbit    = color.NRGBA{R: 24, G: 48, B: 96, A: 255}
	colorMapRocket   = color.NRGBA{R: 180, G: 255, B: 200, A: 255}
)

// drawSystemMap renders the whole star system scaled into a centered overlay:
// orbit rings, bodies, and a heading marker for the rocket.
func (g *Game) drawSystemMap(screen *ebiten.Image) {
	size := math.Min(g.camera.Width, g.camera.Height) * 0.8
	half := size / 2
	cx := g.camera.Width / 2
	cy := g.camera.Height / 2

	vector.DrawFilledRect(screen, float32(cx-half), float32(cy-half), float32(size), float32(size), colorMapBackdrop, false)

	// Fit the widest orbit (plus spawn ring slack) inside the overlay.
	maxDist := g.config.PlanetMaxOrbit * 1.1
	for _, body := range g.world.Bodies {
		if d := body.Pos.Len(); d > maxDist {
			maxDist = d
		}
	}
	scale := (half * 0.92) / maxDist

	for _, body := range g.world.Bodies {
		mx := cx + body.Pos.X*scale
		my := cy + body.Pos.Y*scale

		switch body.Kind {
		case KindPlanet:
			orbit := body.Pos.Len() * scale
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(orbit), 1, colorMapOrbit, true)
			vector.DrawFilledCircle(screen, float32(mx), float32(my), 3, body.Color, true)
		case KindStar:
			vector.DrawFilledCircle(screen, float32(mx), float32(my), 5, body.Color, true)
		case KindRocket:
			tipX := mx + math.Cos(body.Rocket.Angle)*8
			tipY := my + math.Sin(body.Rocket.Angle)*8
			vector.DrawFilledCircle(screen, float32(mx), float32(my), 3, colorMapRocket, true)
			vector.StrokeLine(screen, float32(mx), float32(my), float32(tipX), float32(tipY), 1, colorMapRocket, true)
		case KindEnemy:
			vector.DrawFilledCircle(screen, float32(mx), float32(my), 2, body.Color, true)
		}
	}

	ebitenutil.DebugPrintAt(screen, "SYSTEM MAP (M to close)", int(cx-half)+8, int(cy-half)+8)
}
