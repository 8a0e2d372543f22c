package world

// State is a point-in-time copy of the world for spectators.
type State struct {
	Tick     int64
	Offset   WorldOffset
	Entities []EntityState
}

type EntityState struct {
	ID       ID
	Kind     Kind
	Coords   Vector
	Rotation float64
	Health   int
}

func (w *World) State() *State {
	s := &State{
		Tick:     w.tick,
		Offset:   w.Offset,
		Entities: make([]EntityState, 0, 1+len(w.zombies)+len(w.bullets)+len(w.bloods)),
	}
	s.Entities = append(s.Entities, EntityState{
		ID:       PlayerID,
		Kind:     KindPlayer,
		Coords:   w.Player.Coords,
		Rotation: w.Player.Facing(w.Offset, w.cfg.Layout),
	})
	w.ForEachZombie(func(id ID, z *Zombie) {
		s.Entities = append(s.Entities, EntityState{ID: id, Kind: KindZombie, Coords: z.Coords, Rotation: z.Rotation, Health: z.Health})
	})
	w.ForEachBullet(func(id ID, b *Bullet) {
		s.Entities = append(s.Entities, EntityState{ID: id, Kind: KindBullet, Coords: b.Coords, Rotation: b.Angle})
	})
	w.ForEachBlood(func(id ID, b *Blood) {
		s.Entities = append(s.Entities, EntityState{ID: id, Kind: KindBlood, Coords: b.Coords, Rotation: b.Angle})
	})
	return s
}

// Count returns how many entities of kind the state holds.
func (s *State) Count(kind Kind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
