package world

// Frame is everything the host needs after one update.
type Frame struct {
	Tick   int64
	Offset WorldOffset
	// Requests lists the spawns and despawns raised this tick, in order.
	Requests     []Request
	ReturnToMenu bool
}

// Update advances the simulation by dt seconds. The player always moves
// first so that every later step sees this tick's camera offset.
func (w *World) Update(dt float64, in Input) Frame {
	w.tick++
	layout := w.cfg.Layout

	w.Offset = w.Player.Move(in, dt, w.cfg.Player.Speed, layout)
	if in.PointerMoved {
		w.Player.TrackPointer(in.Pointer, layout)
	}
	w.Player.cool(dt)
	if w.Player.Trigger(in.Fire, w.cfg.Player.FireCooldown) {
		w.SpawnBullet(w.Player.Fire(w.Offset, layout, w.cfg.Bullet))
	}

	w.ensurePopulation()
	w.updateZombies(dt)
	w.updateBullets(dt)
	w.resolveCollisions()
	w.updateBlood(dt)

	return Frame{
		Tick:         w.tick,
		Offset:       w.Offset,
		Requests:     w.flush(),
		ReturnToMenu: in.Escape,
	}
}

// ensurePopulation spawns a fresh patrol formation whenever every zombie
// is dead.
func (w *World) ensurePopulation() {
	if len(w.zombies) > 0 {
		return
	}
	cfg := w.cfg.Zombie
	for _, start := range cfg.Formation {
		z, err := NewZombie(cfg.Route, start, cfg)
		if err != nil {
			w.logger.Warn("cannot spawn zombie", "err", err)
			return
		}
		w.SpawnZombie(z)
	}
	w.logger.Debug("formation spawned", "tick", w.tick, "zombies", len(w.zombies))
}

func (w *World) updateZombies(dt float64) {
	w.ForEachZombie(func(id ID, z *Zombie) {
		if !z.Advance(dt, w.cfg.Zombie.Speed) {
			w.logger.Warn("zombie waypoint repaired", "id", id, "waypoint", z.Waypoint)
		}
	})
}

func (w *World) updateBullets(dt float64) {
	w.ForEachBullet(func(id ID, b *Bullet) {
		if !b.Advance(dt, w.cfg.Bullet.Speed, w.cfg.Layout) {
			w.logger.Debug("bullet left the world", "id", id, "x", b.Coords.X, "y", b.Coords.Y)
			w.remove(id, KindBullet)
		}
	})
}

func (w *World) updateBlood(dt float64) {
	w.ForEachBlood(func(id ID, b *Blood) {
		if !b.Advance(dt, w.cfg.Blood) {
			w.remove(id, KindBlood)
		}
	})
}
