package world

type Bullet struct {
	ID     ID
	Coords Vector
	Angle  float64
	HitBox Vector
	Damage int
}

// Advance moves the bullet in a straight line along its angle. It reports
// false once the bullet has left the world.
func (b *Bullet) Advance(dt, speed float64, layout Layout) bool {
	b.Coords = b.Coords.Add(Heading(b.Angle).Scale(speed * dt))
	return layout.Contains(b.Coords)
}
