package world

import "math"

// Blood is a spatter decal. It slides for TTM seconds, then sits and decays
// for TTL seconds.
type Blood struct {
	ID     ID
	Coords Vector
	Angle  float64
	TTL    float64
	TTM    float64
}

func NewBlood(pos Vector, angle float64, cfg BloodConfig) *Blood {
	return &Blood{Coords: pos, Angle: angle, TTL: cfg.TTL, TTM: cfg.TTM}
}

func (b *Blood) Spattering() bool {
	return b.TTM >= 0
}

// Advance runs one tick of the decal and reports false once it has expired.
func (b *Blood) Advance(dt float64, cfg BloodConfig) bool {
	if b.Spattering() {
		b.TTM -= dt
		b.Coords = b.Coords.Add(b.direction(cfg.Directional).Scale(cfg.SpatterSpeed * dt))
		return true
	}
	b.TTL -= dt
	return b.TTL > 0
}

func (b *Blood) direction(directional bool) Vector {
	if directional {
		return Heading(b.Angle)
	}
	s := math.Sin(b.Angle)
	return Vector{X: s, Y: s}
}
