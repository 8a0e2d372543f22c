package world

import (
	"errors"
	"math"
)

var ErrEmptyRoute = errors.New("zombie route is empty")

// Zombie walks a cyclic patrol route and never pauses at a waypoint.
type Zombie struct {
	ID       ID
	Coords   Vector
	Route    []Vector
	Waypoint int
	HitBox   Vector
	Health   int
	Rotation float64
}

// NewZombie places a zombie on route[start] heading for the point after it.
func NewZombie(route []Vector, start int, cfg ZombieConfig) (*Zombie, error) {
	if len(route) == 0 {
		return nil, ErrEmptyRoute
	}
	start = wrap(start, len(route))
	return &Zombie{
		Coords:   route[start],
		Route:    append([]Vector(nil), route...),
		Waypoint: wrap(start+1, len(route)),
		HitBox:   cfg.HitBox,
		Health:   cfg.Health,
	}, nil
}

func (z *Zombie) Target() Vector {
	return z.Route[z.Waypoint]
}

// Advance walks towards the current waypoint. Each axis that is within one
// step snaps onto the waypoint; once both have arrived the zombie moves on
// to the next point of the route. It reports false if the waypoint index
// was out of range and had to be wrapped.
func (z *Zombie) Advance(dt, speed float64) bool {
	if len(z.Route) == 0 {
		return false
	}
	valid := z.Waypoint >= 0 && z.Waypoint < len(z.Route)
	z.Waypoint = wrap(z.Waypoint, len(z.Route))

	target := z.Target()
	angle := NormalizeAngle(target.Sub(z.Coords).Angle()) + math.Pi/2
	step := speed * dt
	dir := Heading(angle)

	xMet := approach(&z.Coords.X, target.X, dir.X*step, step)
	yMet := approach(&z.Coords.Y, target.Y, dir.Y*step, step)
	z.Rotation = angle

	if xMet && yMet {
		z.Waypoint = wrap(z.Waypoint+1, len(z.Route))
	}
	return valid
}

// ApplyDamage reports whether the hit killed the zombie. Removing it is up
// to the caller.
func (z *Zombie) ApplyDamage(amount int) bool {
	z.Health -= amount
	return z.Health <= 0
}

func (z *Zombie) Dead() bool {
	return z.Health <= 0
}

func approach(pos *float64, target, delta, step float64) bool {
	if *pos == target {
		return true
	}
	if math.Abs(target-*pos) <= step {
		*pos = target
		return true
	}
	*pos += delta
	return false
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
