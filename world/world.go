package world

import (
	"log/slog"
	"maps"
	"math/rand"
	"slices"

	"github.com/segmentio/ksuid"
)

// World owns every live entity record. Each kind lives in its own map keyed
// by ID; iteration always walks a sorted copy of the keys so that removing
// entities mid-walk is safe and runs replay identically.
type World struct {
	cfg    Config
	rng    Rand
	logger *slog.Logger
	ids    *idSequence

	Player *Player
	Offset WorldOffset

	zombies map[ID]*Zombie
	bullets map[ID]*Bullet
	bloods  map[ID]*Blood

	tick     int64
	requests []Request
}

// NewWorld starts a level. A nil rng is replaced by one seeded with 1 and a
// nil logger logs to slog.Default.
func NewWorld(cfg Config, rng Rand, logger *slog.Logger) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &World{
		cfg:     cfg,
		rng:     rng,
		logger:  logger,
		ids:     newIDSequence(ksuid.New()),
		Player:  NewPlayer(cfg.Player),
		zombies: make(map[ID]*Zombie),
		bullets: make(map[ID]*Bullet),
		bloods:  make(map[ID]*Blood),
	}
	w.Player.Coords = cfg.Layout.clampToWorld(w.Player.Coords)
	w.Offset = cfg.Layout.offsetFor(w.Player.Coords)
	w.requests = append(w.requests, SpawnRequest{ID: PlayerID, Kind: KindPlayer, Pos: w.Player.Coords})
	return w
}

// SeedIDs restarts the ID sequence from seed, making IDs reproducible.
func (w *World) SeedIDs(seed ksuid.KSUID) {
	w.ids = newIDSequence(seed)
}

func (w *World) Config() Config { return w.cfg }
func (w *World) Tick() int64    { return w.tick }

func (w *World) Zombie(id ID) *Zombie { return w.zombies[id] }
func (w *World) Bullet(id ID) *Bullet { return w.bullets[id] }
func (w *World) Blood(id ID) *Blood   { return w.bloods[id] }

func (w *World) ZombieCount() int { return len(w.zombies) }
func (w *World) BulletCount() int { return len(w.bullets) }
func (w *World) BloodCount() int  { return len(w.bloods) }

func (w *World) ForEachZombie(callback func(ID, *Zombie)) {
	for _, id := range sortedIDs(w.zombies) {
		if e, ok := w.zombies[id]; ok {
			callback(id, e)
		}
	}
}

func (w *World) ForEachBullet(callback func(ID, *Bullet)) {
	for _, id := range sortedIDs(w.bullets) {
		if e, ok := w.bullets[id]; ok {
			callback(id, e)
		}
	}
}

func (w *World) ForEachBlood(callback func(ID, *Blood)) {
	for _, id := range sortedIDs(w.bloods) {
		if e, ok := w.bloods[id]; ok {
			callback(id, e)
		}
	}
}

func (w *World) SpawnZombie(z *Zombie) ID {
	z.ID = w.ids.next()
	w.zombies[z.ID] = z
	w.requests = append(w.requests, SpawnRequest{ID: z.ID, Kind: KindZombie, Pos: z.Coords, Angle: z.Rotation, HitBox: z.HitBox})
	return z.ID
}

func (w *World) SpawnBullet(b *Bullet) ID {
	b.ID = w.ids.next()
	w.bullets[b.ID] = b
	w.requests = append(w.requests, SpawnRequest{ID: b.ID, Kind: KindBullet, Pos: b.Coords, Angle: b.Angle, HitBox: b.HitBox})
	return b.ID
}

func (w *World) SpawnBlood(b *Blood) ID {
	b.ID = w.ids.next()
	w.bloods[b.ID] = b
	w.requests = append(w.requests, SpawnRequest{ID: b.ID, Kind: KindBlood, Pos: b.Coords, Angle: b.Angle})
	return b.ID
}

func (w *World) remove(id ID, kind Kind) {
	switch kind {
	case KindZombie:
		delete(w.zombies, id)
	case KindBullet:
		delete(w.bullets, id)
	case KindBlood:
		delete(w.bloods, id)
	}
	w.requests = append(w.requests, DespawnRequest{ID: id, Kind: kind})
}

// ForEachTransform yields the render placement of the player followed by
// every zombie, bullet and blood decal.
func (w *World) ForEachTransform(callback func(ID, Transform)) {
	layout := w.cfg.Layout
	callback(PlayerID, Transform{
		Kind:     KindPlayer,
		Screen:   layout.ToScreen(w.Player.Coords, w.Offset),
		Rotation: w.Player.Facing(w.Offset, layout),
	})
	w.ForEachZombie(func(id ID, z *Zombie) {
		callback(id, Transform{Kind: KindZombie, Screen: layout.ToScreen(z.Coords, w.Offset), Rotation: z.Rotation})
	})
	w.ForEachBullet(func(id ID, b *Bullet) {
		callback(id, Transform{Kind: KindBullet, Screen: layout.ToScreen(b.Coords, w.Offset), Rotation: b.Angle})
	})
	w.ForEachBlood(func(id ID, b *Blood) {
		callback(id, Transform{Kind: KindBlood, Screen: layout.ToScreen(b.Coords, w.Offset)})
	})
}

// Teardown removes every entity, the player included, and returns the
// despawn requests for the host.
func (w *World) Teardown() []Request {
	w.requests = nil
	for _, id := range sortedIDs(w.zombies) {
		w.remove(id, KindZombie)
	}
	for _, id := range sortedIDs(w.bullets) {
		w.remove(id, KindBullet)
	}
	for _, id := range sortedIDs(w.bloods) {
		w.remove(id, KindBlood)
	}
	w.requests = append(w.requests, DespawnRequest{ID: PlayerID, Kind: KindPlayer})
	return w.flush()
}

func (w *World) flush() []Request {
	r := w.requests
	w.requests = nil
	return r
}

func sortedIDs[T any](m map[ID]T) []ID {
	return slices.Sorted(maps.Keys(m))
}
