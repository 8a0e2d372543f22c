package world

import "math"

// Overlaps tests two axis aligned boxes given by their centres and sizes.
// Touching edges do not count.
func Overlaps(aPos, aBox, bPos, bBox Vector) bool {
	return math.Abs(aPos.X-bPos.X) < (aBox.X+bBox.X)/2 &&
		math.Abs(aPos.Y-bPos.Y) < (aBox.Y+bBox.Y)/2
}

// resolveCollisions tests every live bullet against every live zombie.
// A bullet that hits anything is removed once, after all of its hits.
func (w *World) resolveCollisions() {
	zombies := sortedIDs(w.zombies)
	for _, bid := range sortedIDs(w.bullets) {
		b := w.bullets[bid]
		hit := false
		for _, zid := range zombies {
			z, ok := w.zombies[zid]
			if !ok {
				continue
			}
			if !Overlaps(b.Coords, b.HitBox, z.Coords, z.HitBox) {
				continue
			}
			hit = true
			w.splatter(z.Coords, b.Angle)
			if z.ApplyDamage(b.Damage) {
				w.logger.Debug("zombie killed", "id", zid, "bullet", bid)
				w.remove(zid, KindZombie)
			}
			if !w.cfg.Bullet.Pierce {
				break
			}
		}
		if hit {
			w.remove(bid, KindBullet)
		}
	}
}

// splatter spawns a small random burst of blood at pos, thrown back along
// the bullet's path.
func (w *World) splatter(pos Vector, bulletAngle float64) {
	cfg := w.cfg.Blood
	n := cfg.BurstMin + w.rng.Intn(cfg.BurstMax-cfg.BurstMin)
	for range n {
		jitter := between(w.rng, -cfg.Jitter, cfg.Jitter)
		w.SpawnBlood(NewBlood(pos, bulletAngle-math.Pi/2+jitter, cfg))
	}
}
