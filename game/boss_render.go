package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorArenaFloor  = color.NRGBA{R: 18, G: 10, B: 24, A: 255}
	colorArenaEdge   = color.NRGBA{R: 90, G: 50, B: 110, A: 255}
	colorBossPlayer  = color.NRGBA{R: 120, G: 220, B: 255, A: 255}
	colorBossBody    = color.NRGBA{R: 210, G: 60, B: 200, A: 255}
	colorBossAlien   = color.NRGBA{R: 120, G: 230, B: 90, A: 255}
	colorAlienOrb    = color.NRGBA{R: 140, G: 255, B: 120, A: 255}
	colorBossOrb     = color.NRGBA{R: 255, G: 120, B: 230, A: 255}
	colorPlayerOrb   = color.NRGBA{R: 150, G: 220, B: 255, A: 255}
	colorSwordSwing  = color.NRGBA{R: 240, G: 240, B: 255, A: 180}
	colorPhaseBanner = color.NRGBA{R: 255, G: 220, B: 120, A: 255}
)

func (g *Game) drawBossScene(screen *ebiten.Image) {
	s := g.boss
	screen.Fill(colorArenaFloor)

	// Arena fills the screen; scale arena coordinates to the viewport.
	scaleX := g.camera.Width / bossArenaWidth
	scaleY := g.camera.Height / bossArenaHeight
	toScreen := func(p Vec2) (float32, float32) {
		return float32(p.X * scaleX), float32(p.Y * scaleY)
	}

	vector.StrokeRect(screen, 0, 0, float32(g.camera.Width), float32(g.camera.Height), 3, colorArenaEdge, false)

	for _, alien := range s.Aliens {
		x, y := toScreen(alien.Pos)
		vector.DrawFilledCircle(screen, x, y, 14, colorBossAlien, true)
		tipX := x + float32(math.Cos(alien.Facing))*20
		tipY := y + float32(math.Sin(alien.Facing))*20
		vector.StrokeLine(screen, x, y, tipX, tipY, 2, colorBossAlien, true)
	}

	if s.Phase >= 2 && s.BossHealth > 0 {
		x, y := toScreen(s.BossPos)
		vector.DrawFilledCircle(screen, x, y, 28, colorBossBody, true)
		drawHealthBar(screen, float64(x), float64(y), 28, s.BossHealth/bossHealthForPhase(s.Phase))
	}

	px, py := toScreen(s.PlayerPos)
	vector.DrawFilledCircle(screen, px, py, 12, colorBossPlayer, true)
	if s.Swinging {
		// Sword arc sweeps across the 4 frames.
		start := s.PlayerFacing - math.Pi/3
		sweep := start + (math.Pi*2/3)*float64(s.SwingFrame+1)/swingFrames
		tipX := px + float32(math.Cos(sweep)*swingRadius*float64(scaleX))
		tipY := py + float32(math.Sin(sweep)*swingRadius*float64(scaleY))
		vector.StrokeLine(screen, px, py, tipX, tipY, 3, colorSwordSwing, true)
	}

	drawOrbPool(screen, s.AlienOrbs, colorAlienOrb, toScreen)
	drawOrbPool(screen, s.BossOrbs, colorBossOrb, toScreen)
	drawOrbPool(screen, s.PlayerOrbs, colorPlayerOrb, toScreen)

	// HUD
	hud := fmt.Sprintf("phase %d  health %.0f", s.Phase, s.PlayerHealth)
	ebitenutil.DebugPrintAt(screen, hud, 12, 12)

	if s.Transitioning {
		drawBanner(screen, g.config, fmt.Sprintf("PHASE %d", s.Phase), colorPhaseBanner)
	}
	if s.Victory {
		drawBanner(screen, g.config, "VICTORY", colorPhaseBanner)
	}
	if s.PlayerDead {
		drawBanner(screen, g.config, "SLAIN - press R to restart", color.NRGBA{R: 255, G: 90, B: 90, A: 255})
	}
	if s.FadeAlpha > 0 {
		fade := color.NRGBA{A: uint8(255 * clamp(s.FadeAlpha, 0, 1))}
		vector.DrawFilledRect(screen, 0, 0, float32(g.camera.Width), float32(g.camera.Height), fade, false)
	}
}

func drawOrbPool(screen *ebiten.Image, orbs []*bossOrb, clr color.NRGBA, toScreen func(Vec2) (float32, float32)) {
	for _, orb := range orbs {
		x, y := toScreen(orb.Pos)
		vector.DrawFilledCircle(screen, x, y, 5, clr, true)
	}
}

func bossHealthForPhase(phase int) float64 {
	if phase >= 3 {
		return bossDuelHealth
	}
	return bossGunHealth
}
