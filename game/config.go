package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds every tuning constant of the simulation. Values are injected at
// startup; the zero value is not usable, start from DefaultConfig.
type Config struct {
	// Screen and timing
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	TargetFPS    int     `json:"targetFPS"`
	TimeStep     float64 `json:"timeStep"`     // nominal simulation step in seconds
	MaxDeltaTime float64 `json:"maxDeltaTime"` // dt cap against frame hitches

	// Gravity and system generation
	Gravity         float64 `json:"gravity"` // gravitational constant G
	StarMass        float64 `json:"starMass"`
	StarRadius      float64 `json:"starRadius"`
	PlanetCount     int     `json:"planetCount"`
	PlanetMinOrbit  float64 `json:"planetMinOrbit"`
	PlanetMaxOrbit  float64 `json:"planetMaxOrbit"`
	PlanetMinMass   float64 `json:"planetMinMass"`
	PlanetMaxMass   float64 `json:"planetMaxMass"`
	PlanetMinRadius float64 `json:"planetMinRadius"`
	PlanetMaxRadius float64 `json:"planetMaxRadius"`

	// Rocket tuning
	RocketMass      float64 `json:"rocketMass"`
	RocketRadius    float64 `json:"rocketRadius"`
	RocketThrust    float64 `json:"rocketThrust"`   // thrust force magnitude
	RocketTurnRate  float64 `json:"rocketTurnRate"` // radians per second
	RocketMaxFuel   float64 `json:"rocketMaxFuel"`
	FuelBurnRate    float64 `json:"fuelBurnRate"` // units per second of thrust
	RocketMaxHealth float64 `json:"rocketMaxHealth"`
	RocketStartDist float64 `json:"rocketStartDist"` // starting orbit radius
	FireCooldown    float64 `json:"fireCooldown"`    // player weapon, seconds

	// Bullets
	BulletSpeed    float64 `json:"bulletSpeed"` // muzzle speed added to shooter velocity
	BulletRadius   float64 `json:"bulletRadius"`
	BulletLifetime float64 `json:"bulletLifetime"` // seconds
	BulletDamage   float64 `json:"bulletDamage"`   // player bullet vs enemy

	// Enemies and spawning
	EnemyMass         float64 `json:"enemyMass"`
	EnemyRadius       float64 `json:"enemyRadius"`
	EnemyMaxHealth    float64 `json:"enemyMaxHealth"`
	EnemySpeed        float64 `json:"enemySpeed"`
	EnemyFireRange    float64 `json:"enemyFireRange"`
	EnemyCooldownMin  float64 `json:"enemyCooldownMin"` // seconds
	EnemyCooldownMax  float64 `json:"enemyCooldownMax"`
	InitialEnemies    int     `json:"initialEnemies"`
	MaxEnemies        int     `json:"maxEnemies"`
	EnemySpawnRate    float64 `json:"enemySpawnRate"` // per-tick Bernoulli probability
	SpawnAnnulusInner float64 `json:"spawnAnnulusInner"`
	SpawnAnnulusOuter float64 `json:"spawnAnnulusOuter"`

	// Trajectory predictor
	TrajectoryLength int `json:"trajectoryLength"` // predicted samples per tick

	// Camera
	MinZoom           float64 `json:"minZoom"`
	MaxZoom           float64 `json:"maxZoom"`
	ZoomFactor        float64 `json:"zoomFactor"`
	CameraFollowSpeed float64 `json:"cameraFollowSpeed"`
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 800,
		TargetFPS:    60,
		TimeStep:     1.0 / 60.0,
		MaxDeltaTime: 0.1,

		Gravity:         6.674e-2,
		StarMass:        2.0e7,
		StarRadius:      320,
		PlanetCount:     6,
		PlanetMinOrbit:  1200,
		PlanetMaxOrbit:  9000,
		PlanetMinMass:   4.0e4,
		PlanetMaxMass:   6.0e5,
		PlanetMinRadius: 40,
		PlanetMaxRadius: 160,

		RocketMass:      1000,
		RocketRadius:    14,
		RocketThrust:    2.4e5,
		RocketTurnRate:  3.2,
		RocketMaxFuel:   100,
		FuelBurnRate:    4.0,
		RocketMaxHealth: 100,
		RocketStartDist: 1600,
		FireCooldown:    0.25,

		BulletSpeed:    900,
		BulletRadius:   3,
		BulletLifetime: 4.0,
		BulletDamage:   10,

		EnemyMass:         800,
		EnemyRadius:       16,
		EnemyMaxHealth:    30,
		EnemySpeed:        220,
		EnemyFireRange:    700,
		EnemyCooldownMin:  1.0,
		EnemyCooldownMax:  3.0,
		InitialEnemies:    3,
		MaxEnemies:        8,
		EnemySpawnRate:    0.002,
		SpawnAnnulusInner: 2000,
		SpawnAnnulusOuter: 5000,

		TrajectoryLength: 180,

		MinZoom:           0.05,
		MaxZoom:           4.0,
		ZoomFactor:        1.1,
		CameraFollowSpeed: 5.0,
	}
}

// LoadConfig reads a flat JSON document and overlays it on DefaultConfig.
// Keys absent from the file keep their defaults; unknown keys are ignored.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return config, nil
}

// Validate rejects values that would break the simulation outright.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.TargetFPS <= 0:
		return fmt.Errorf("targetFPS must be positive, got %d", c.TargetFPS)
	case c.TimeStep <= 0:
		return fmt.Errorf("timeStep must be positive, got %g", c.TimeStep)
	case c.Gravity <= 0:
		return fmt.Errorf("gravity must be positive, got %g", c.Gravity)
	case c.TrajectoryLength <= 0:
		return fmt.Errorf("trajectoryLength must be positive, got %d", c.TrajectoryLength)
	case c.MinZoom <= 0 || c.MaxZoom < c.MinZoom:
		return fmt.Errorf("zoom range [%g, %g] is invalid", c.MinZoom, c.MaxZoom)
	case c.EnemySpawnRate < 0 || c.EnemySpawnRate > 1:
		return fmt.Errorf("enemySpawnRate must be a probability, got %g", c.EnemySpawnRate)
	case c.SpawnAnnulusOuter < c.SpawnAnnulusInner:
		return fmt.Errorf("spawn annulus [%g, %g] is inverted", c.SpawnAnnulusInner, c.SpawnAnnulusOuter)
	}
	return nil
}
