package server

import "zombies/world"

// Autopilot plays the spectator server's level. It stands still, keeps the
// pointer on the nearest zombie and fires every Interval seconds.
type Autopilot struct {
	Interval float64
	elapsed  float64
}

func NewAutopilot(interval float64) *Autopilot {
	return &Autopilot{Interval: interval}
}

// Next returns the input for the coming tick of w.
func (a *Autopilot) Next(w *world.World, dt float64) world.Input {
	a.elapsed += dt
	target, ok := nearestZombie(w)
	if !ok {
		return world.Input{}
	}

	layout := w.Config().Layout
	in := world.Input{
		Pointer:      layout.PointerFor(layout.ToScreen(target, w.Offset)),
		PointerMoved: true,
	}
	if a.elapsed >= a.Interval {
		in.Fire = true
		a.elapsed = 0
	}
	return in
}

func nearestZombie(w *world.World) (world.Vector, bool) {
	var best world.Vector
	found := false
	bestDist := 0.0
	w.ForEachZombie(func(_ world.ID, z *world.Zombie) {
		d := z.Coords.Sub(w.Player.Coords)
		dist := d.X*d.X + d.Y*d.Y
		if !found || dist < bestDist {
			best, bestDist, found = z.Coords, dist, true
		}
	})
	return best, found
}
