package game

import (
	"math"
	"math/rand"
)

// Boss encounter tuning. The scene has its own constants rather than Config
// entries: the fight is scripted and its numbers are part of the script.
const (
	bossArenaWidth  = 1600.0
	bossArenaHeight = 1000.0

	bossPlayerSpeed     = 300.0
	bossPlayerMaxHealth = 100.0

	swingFrames    = 4
	swingFrameTime = 0.1
	swingCooldown  = 0.5
	swingRadius    = 80.0
	swingAlienDmg  = 30.0
	swingBossDmg   = 20.0

	bossMeleeCooldown = 1.2
	bossMeleeRadius   = 80.0
	bossMeleeDmg      = 25.0

	phase1Minions = 5
	phase2Minions = 10

	bossGunHealth  = 300.0
	bossDuelHealth = 150.0
	bossSpeed      = 140.0
	bossGunRange   = 650.0
	bossGunCDMin   = 1.2
	bossGunCDMax   = 2.4

	alienHealth      = 60.0
	alienSpeed       = 180.0
	alienAttackRange = 450.0
	alienCDMin       = 1.5
	alienCDMax       = 3.5

	orbLifetime    = 3.0
	alienOrbSpeed  = 320.0
	alienOrbDmg    = 8.0
	bossOrbSpeed   = 380.0
	bossOrbDmg     = 12.0
	playerOrbSpeed = 500.0
	playerOrbDmg   = 10.0
	playerShootCD  = 0.35

	phaseTransitionTime = 1.0
	victoryHoldTime     = 3.0
	fadeSpeed           = 0.8 // alpha per second
)

// bossAlien is a minion in the boss arena.
type bossAlien struct {
	Pos         Vec2
	Health      float64
	Facing      float64
	AttackTimer float64
}

// bossOrb is a straight-line projectile; it is aimed at the target's position
// at spawn time and never re-aims.
type bossOrb struct {
	Pos Vec2
	Vel Vec2
	Age float64
}

// bossEvents reports what a scene tick produced, for logging by the caller.
type bossEvents struct {
	PhaseEntered int // 0 when no transition happened
	Victory      bool
	PlayerDied   bool
}

// BossScene is the scripted three-phase encounter. It owns an update pipeline
// independent of the flight simulation, including its own duplicated player
// state: progress and damage here never touch the flight-mode rocket.
type BossScene struct {
	rng *rand.Rand

	Phase           int // 1..3
	PhaseTimer      float64
	Transitioning   bool
	TransitionTimer float64

	PlayerPos    Vec2
	PlayerVel    Vec2
	PlayerFacing float64
	PlayerHealth float64

	// Melee swing state. struckAliens/struckBoss guarantee at most one hit
	// per target per swing activation.
	Swinging      bool
	SwingFrame    int
	swingTimer    float64
	swingCD       float64
	struckAliens  map[*bossAlien]bool
	struckBoss    bool
	shootCooldown float64

	BossPos        Vec2
	BossFacing     float64
	BossHealth     float64
	bossGunTimer   float64
	bossMeleeTimer float64

	Aliens     []*bossAlien
	AlienOrbs  []*bossOrb
	BossOrbs   []*bossOrb
	PlayerOrbs []*bossOrb

	Victory      bool
	VictoryTimer float64
	PlayerDead   bool
	Ended        bool // terminal: the session is over once the fade completes

	FadeAlpha float64
	fading    bool
}

// NewBossScene starts the encounter in phase 1.
func NewBossScene(rng *rand.Rand) *BossScene {
	s := &BossScene{
		rng:          rng,
		PlayerPos:    Vec2{X: bossArenaWidth * 0.2, Y: bossArenaHeight * 0.5},
		PlayerHealth: bossPlayerMaxHealth,
		BossPos:      Vec2{X: bossArenaWidth * 0.8, Y: bossArenaHeight * 0.5},
	}
	s.enterPhase(1)
	// The opening phase gets no transition overlay; there is nothing to
	// transition from.
	s.Transitioning = false
	s.TransitionTimer = 0
	return s
}

// enterPhase resets per-phase timers, unconditionally clears every entity
// pool, and populates the phase's roster.
func (s *BossScene) enterPhase(phase int) {
	s.Phase = phase
	s.PhaseTimer = 0
	s.Transitioning = true
	s.TransitionTimer = phaseTransitionTime

	s.Aliens = s.Aliens[:0]
	s.AlienOrbs = s.AlienOrbs[:0]
	s.BossOrbs = s.BossOrbs[:0]
	s.PlayerOrbs = s.PlayerOrbs[:0]
	s.struckAliens = make(map[*bossAlien]bool)
	s.struckBoss = false

	switch phase {
	case 1:
		s.spawnAliens(phase1Minions)
	case 2:
		s.spawnAliens(phase2Minions)
		s.BossHealth = bossGunHealth
		s.bossGunTimer = randomCooldown(bossGunCDMin, bossGunCDMax, s.rng)
	case 3:
		s.BossHealth = bossDuelHealth
		s.bossMeleeTimer = bossMeleeCooldown
	}
}

func (s *BossScene) spawnAliens(count int) {
	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		pos := Vec2{X: bossArenaWidth * 0.5, Y: bossArenaHeight * 0.5}.
			Add(Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(bossArenaHeight * 0.4))
		s.Aliens = append(s.Aliens, &bossAlien{
			Pos:         clampToArena(pos),
			Health:      alienHealth,
			AttackTimer: randomCooldown(alienCDMin, alienCDMax, s.rng),
		})
	}
}

// Update advances the encounter by one tick. The transition overlay is a UI
// concern: phase and combat timers keep running underneath it.
func (s *BossScene) Update(in InputState, dt float64) bossEvents {
	var events bossEvents
	if s.Ended || s.PlayerDead {
		return events
	}

	s.PhaseTimer += dt
	if s.Transitioning {
		s.TransitionTimer -= dt
		if s.TransitionTimer <= 0 {
			s.Transitioning = false
		}
	}

	if s.Victory {
		s.updateVictory(dt)
		return events
	}

	s.updatePlayer(in, dt)
	s.updateAliens(dt)
	s.updateBoss(dt)
	s.updateOrbs(dt)

	if s.PlayerHealth <= 0 {
		s.PlayerHealth = 0
		s.PlayerDead = true
		events.PlayerDied = true
		return events
	}

	// Phase completion predicates. Pools are cleared on entry, so a phase-2
	// boss kill discards any minions still standing.
	switch s.Phase {
	case 1:
		if len(s.Aliens) == 0 {
			s.enterPhase(2)
			events.PhaseEntered = 2
		}
	case 2:
		if s.BossHealth <= 0 {
			s.enterPhase(3)
			events.PhaseEntered = 3
		}
	case 3:
		if s.BossHealth <= 0 {
			s.Victory = true
			s.VictoryTimer = 0
			events.Victory = true
		}
	}
	return events
}

func (s *BossScene) updateVictory(dt float64) {
	s.VictoryTimer += dt
	if s.VictoryTimer >= victoryHoldTime {
		s.fading = true
	}
	if s.fading {
		s.FadeAlpha = clamp(s.FadeAlpha+fadeSpeed*dt, 0, 1)
		if s.FadeAlpha >= 1 {
			s.Ended = true
		}
	}
}

func (s *BossScene) updatePlayer(in InputState, dt float64) {
	var move Vec2
	if in.MoveLeft {
		move.X -= 1
	}
	if in.MoveRight {
		move.X += 1
	}
	if in.MoveUp {
		move.Y -= 1
	}
	if in.MoveDown {
		move.Y += 1
	}
	if move.LenSq() > 0 {
		move = move.Normalize()
		s.PlayerFacing = math.Atan2(move.Y, move.X)
	}
	s.PlayerVel = move.Mul(bossPlayerSpeed)
	s.PlayerPos = clampToArena(s.PlayerPos.Add(s.PlayerVel.Mul(dt)))

	if s.swingCD > 0 {
		s.swingCD = math.Max(0, s.swingCD-dt)
	}
	if s.shootCooldown > 0 {
		s.shootCooldown = math.Max(0, s.shootCooldown-dt)
	}

	if in.Fire && !s.Swinging && s.swingCD <= 0 {
		s.startSwing()
	}
	if s.Swinging {
		s.advanceSwing(dt)
	}

	if in.Shoot && s.shootCooldown <= 0 {
		dir := Vec2{X: math.Cos(s.PlayerFacing), Y: math.Sin(s.PlayerFacing)}
		s.PlayerOrbs = append(s.PlayerOrbs, &bossOrb{
			Pos: s.PlayerPos.Add(dir.Mul(20)),
			Vel: dir.Mul(playerOrbSpeed),
		})
		s.shootCooldown = playerShootCD
	}
}

func (s *BossScene) startSwing() {
	s.Swinging = true
	s.SwingFrame = 0
	s.swingTimer = 0
	s.struckAliens = make(map[*bossAlien]bool)
	s.struckBoss = false
}

// advanceSwing steps the 4-frame animation and applies melee hits. Each
// target takes damage at most once per activation regardless of how many
// frames it stays in range.
func (s *BossScene) advanceSwing(dt float64) {
	s.swingTimer += dt
	s.SwingFrame = int(s.swingTimer / swingFrameTime)
	if s.SwingFrame >= swingFrames {
		s.Swinging = false
		s.swingCD = swingCooldown
		return
	}

	survivors := s.Aliens[:0]
	for _, alien := range s.Aliens {
		if !s.struckAliens[alien] && distance(s.PlayerPos, alien.Pos) <= swingRadius {
			s.struckAliens[alien] = true
			alien.Health -= swingAlienDmg
		}
		if alien.Health > 0 {
			survivors = append(survivors, alien)
		}
	}
	s.Aliens = survivors

	if s.Phase == 3 && !s.struckBoss && distance(s.PlayerPos, s.BossPos) <= swingRadius {
		s.struckBoss = true
		s.BossHealth -= swingBossDmg
	}
}

func (s *BossScene) updateAliens(dt float64) {
	for _, alien := range s.Aliens {
		toPlayer := s.PlayerPos.Sub(alien.Pos)
		dir := toPlayer.Normalize()
		alien.Pos = clampToArena(alien.Pos.Add(dir.Mul(alienSpeed * dt)))
		if dir.LenSq() > 0 {
			alien.Facing = math.Atan2(dir.Y, dir.X)
		}

		if toPlayer.Len() > alienAttackRange {
			continue
		}
		alien.AttackTimer -= dt
		if alien.AttackTimer > 0 {
			continue
		}
		alien.AttackTimer = randomCooldown(alienCDMin, alienCDMax, s.rng)
		s.AlienOrbs = append(s.AlienOrbs, &bossOrb{
			Pos: alien.Pos,
			Vel: dir.Mul(alienOrbSpeed),
		})
	}
}

func (s *BossScene) updateBoss(dt float64) {
	if s.Phase < 2 || s.BossHealth <= 0 {
		return
	}

	toPlayer := s.PlayerPos.Sub(s.BossPos)
	dir := toPlayer.Normalize()
	if dir.LenSq() > 0 {
		s.BossFacing = math.Atan2(dir.Y, dir.X)
	}

	switch s.Phase {
	case 2:
		// Gun phase: hold range, fire orbs at the player's current position.
		if toPlayer.Len() > bossGunRange*0.6 {
			s.BossPos = clampToArena(s.BossPos.Add(dir.Mul(bossSpeed * dt)))
		}
		s.bossGunTimer -= dt
		if s.bossGunTimer <= 0 && toPlayer.Len() <= bossGunRange {
			s.bossGunTimer = randomCooldown(bossGunCDMin, bossGunCDMax, s.rng)
			s.BossOrbs = append(s.BossOrbs, &bossOrb{
				Pos: s.BossPos,
				Vel: dir.Mul(bossOrbSpeed),
			})
		}
	case 3:
		// Duel phase: close in and swing.
		s.BossPos = clampToArena(s.BossPos.Add(dir.Mul(bossSpeed * dt)))
		s.bossMeleeTimer -= dt
		if s.bossMeleeTimer <= 0 && toPlayer.Len() <= bossMeleeRadius {
			s.bossMeleeTimer = bossMeleeCooldown
			s.PlayerHealth = clamp(s.PlayerHealth-bossMeleeDmg, 0, bossPlayerMaxHealth)
		}
	}
}

// updateOrbs moves every projectile pool, culls expired and out-of-bounds
// orbs, and resolves hits. Any hit removes the orb.
func (s *BossScene) updateOrbs(dt float64) {
	const hitRadius = 24.0

	s.AlienOrbs = stepOrbs(s.AlienOrbs, dt, func(orb *bossOrb) bool {
		if distance(orb.Pos, s.PlayerPos) <= hitRadius {
			s.PlayerHealth = clamp(s.PlayerHealth-alienOrbDmg, 0, bossPlayerMaxHealth)
			return true
		}
		return false
	})

	s.BossOrbs = stepOrbs(s.BossOrbs, dt, func(orb *bossOrb) bool {
		if distance(orb.Pos, s.PlayerPos) <= hitRadius {
			s.PlayerHealth = clamp(s.PlayerHealth-bossOrbDmg, 0, bossPlayerMaxHealth)
			return true
		}
		return false
	})

	s.PlayerOrbs = stepOrbs(s.PlayerOrbs, dt, func(orb *bossOrb) bool {
		survivors := s.Aliens[:0]
		hit := false
		for _, alien := range s.Aliens {
			if !hit && distance(orb.Pos, alien.Pos) <= hitRadius {
				alien.Health -= playerOrbDmg
				hit = true
			}
			if alien.Health > 0 {
				survivors = append(survivors, alien)
			}
		}
		s.Aliens = survivors
		if hit {
			return true
		}
		if s.Phase >= 2 && s.BossHealth > 0 && distance(orb.Pos, s.BossPos) <= hitRadius {
			s.BossHealth -= playerOrbDmg
			return true
		}
		return false
	})
}

// stepOrbs integrates one orb pool and drops orbs that hit, expired, or left
// the arena, compacting the slice in place.
func stepOrbs(orbs []*bossOrb, dt float64, hit func(*bossOrb) bool) []*bossOrb {
	kept := orbs[:0]
	for _, orb := range orbs {
		orb.Pos = orb.Pos.Add(orb.Vel.Mul(dt))
		orb.Age += dt
		if orb.Age >= orbLifetime || outOfArena(orb.Pos) || hit(orb) {
			continue
		}
		kept = append(kept, orb)
	}
	return kept
}

func clampToArena(p Vec2) Vec2 {
	return Vec2{
		X: clamp(p.X, 0, bossArenaWidth),
		Y: clamp(p.Y, 0, bossArenaHeight),
	}
}

func outOfArena(p Vec2) bool {
	const margin = 60.0
	return p.X < -margin || p.X > bossArenaWidth+margin ||
		p.Y < -margin || p.Y > bossArenaHeight+margin
}
