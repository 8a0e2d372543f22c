package world

import "math"

type Player struct {
	Coords Vector
	// AimTarget is the last pointer position, in render space.
	AimTarget Vector
	// reload counts down to the next allowed shot.
	reload float64
}

func NewPlayer(cfg PlayerConfig) *Player {
	return &Player{Coords: Vector{X: cfg.StartX, Y: cfg.StartY}}
}

// Move applies the directional input, clamps the player to the buffered
// world bounds and returns the camera offset for the new position.
func (p *Player) Move(in Input, dt, speed float64, layout Layout) WorldOffset {
	step := speed * dt
	if in.Up {
		p.Coords.Y += step
	}
	if in.Down {
		p.Coords.Y -= step
	}
	if in.Left {
		p.Coords.X -= step
	}
	if in.Right {
		p.Coords.X += step
	}
	p.Coords = layout.clampToWorld(p.Coords)
	return layout.offsetFor(p.Coords)
}

func (p *Player) TrackPointer(pointer Vector, layout Layout) {
	p.AimTarget = layout.TrackPointer(pointer)
}

// AimAngle is the travel angle of a bullet fired towards AimTarget.
func (p *Player) AimAngle(offset WorldOffset, layout Layout) float64 {
	d := layout.ToScreen(p.Coords, offset).Sub(p.AimTarget)
	return NormalizeAngle(d.Angle()) - math.Pi/2
}

// Facing is the sprite rotation that points the player at AimTarget.
func (p *Player) Facing(offset WorldOffset, layout Layout) float64 {
	d := p.AimTarget.Sub(layout.ToScreen(p.Coords, offset))
	return NormalizeAngle(d.Angle()) + math.Pi/2
}

// Trigger consumes a fire press. It reports whether a shot goes out and, if
// so, arms the cooldown.
func (p *Player) Trigger(pressed bool, cooldown float64) bool {
	if !pressed || p.reload > 0 {
		return false
	}
	p.reload = cooldown
	return true
}

func (p *Player) cool(dt float64) {
	if p.reload > 0 {
		p.reload = math.Max(0, p.reload-dt)
	}
}

// Fire builds the bullet for a shot from the player's current position.
func (p *Player) Fire(offset WorldOffset, layout Layout, cfg BulletConfig) *Bullet {
	return &Bullet{
		Coords: p.Coords,
		Angle:  p.AimAngle(offset, layout),
		HitBox: cfg.HitBox,
		Damage: cfg.Damage,
	}
}
