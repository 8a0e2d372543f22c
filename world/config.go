package world

import (
	"errors"
	"fmt"
	"math"
)

type Config struct {
	Layout Layout
	Player PlayerConfig
	Bullet BulletConfig
	Zombie ZombieConfig
	Blood  BloodConfig
}

type PlayerConfig struct {
	Speed  float64
	StartX float64
	StartY float64
	// FireCooldown is the minimum number of seconds between two shots.
	// Zero leaves firing gated only by the button edge.
	FireCooldown float64
}

type BulletConfig struct {
	Speed  float64
	HitBox Vector
	Damage int
	// Pierce lets one bullet damage every enemy it overlaps in the tick it
	// hits. When false the bullet stops at the first enemy.
	Pierce bool
}

type ZombieConfig struct {
	Speed  float64
	Health int
	HitBox Vector
	Route  []Vector
	// Formation holds the route index each spawned zombie starts at. The
	// zombie heads for the waypoint after it.
	Formation []int
}

type BloodConfig struct {
	TTL          float64
	TTM          float64
	SpatterSpeed float64
	BurstMin     int
	BurstMax     int
	Jitter       float64
	// Directional moves spatter along (sin, -cos) of its angle. The default
	// uses sin on both axes, which only ever spatters along the diagonal.
	Directional bool
}

func DefaultConfig() Config {
	return Config{
		Layout: Layout{
			ViewportWidth:  1280,
			ViewportHeight: 720,
			BufferWidth:    50,
			BufferHeight:   50,
			GridWidth:      3,
			GridHeight:     3,
		},
		Player: PlayerConfig{
			Speed:  150,
			StartX: 100,
			StartY: 100,
		},
		Bullet: BulletConfig{
			Speed:  500,
			HitBox: Vector{X: 10, Y: 20},
			Damage: 1,
			Pierce: true,
		},
		Zombie: ZombieConfig{
			Speed:  150,
			Health: 5,
			HitBox: Vector{X: 100, Y: 100},
			Route: []Vector{
				{X: 400, Y: 200},
				{X: 250, Y: 450},
				{X: 400, Y: 600},
				{X: 900, Y: 600},
				{X: 900, Y: 200},
			},
			Formation: []int{0, 3},
		},
		Blood: BloodConfig{
			TTL:          3.0,
			TTM:          0.2,
			SpatterSpeed: 380,
			BurstMin:     2,
			BurstMax:     4,
			Jitter:       math.Pi / 3,
		},
	}
}

// Validate reports every rule that would let the simulation reach an
// invalid state.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.ViewportWidth <= 0 || c.Layout.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %vx%v", c.Layout.ViewportWidth, c.Layout.ViewportHeight))
	}
	if c.Layout.GridWidth < 1 || c.Layout.GridHeight < 1 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Layout.GridWidth, c.Layout.GridHeight))
	}
	if len(c.Zombie.Route) == 0 {
		errs = append(errs, errors.New("zombie route is empty"))
	}
	for _, i := range c.Zombie.Formation {
		if i < 0 || i >= len(c.Zombie.Route) {
			errs = append(errs, fmt.Errorf("formation index %d outside route of %d points", i, len(c.Zombie.Route)))
		}
	}
	if c.Zombie.Health <= 0 {
		errs = append(errs, fmt.Errorf("zombie health must be positive, got %d", c.Zombie.Health))
	}
	if c.Blood.BurstMin < 0 || c.Blood.BurstMax <= c.Blood.BurstMin {
		errs = append(errs, fmt.Errorf("blood burst range [%d, %d) is empty", c.Blood.BurstMin, c.Blood.BurstMax))
	}
	return errors.Join(errs...)
}
