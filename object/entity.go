package object

import (
	"log"
	"maps"
	"slices"
	"zombies/world"
)

// Coords is a position in window pixels, origin top left.
type Coords struct {
	X, Y float64
}

func (c *Coords) Coordinates() Coords {
	return *c
}

// Entity is the host's render handle for one live simulation ID.
type Entity struct {
	Coords
	ID       world.ID
	Kind     world.Kind
	Rotation float64
	// Size is the hitbox the entity spawned with. Zero for kinds without one.
	Size world.Vector
}

// Set mirrors the world's entities for drawing.
type Set struct {
	layout   world.Layout
	entities map[world.ID]*Entity
}

func NewSet(layout world.Layout) *Set {
	return &Set{
		layout:   layout,
		entities: make(map[world.ID]*Entity),
	}
}

func (s *Set) Len() int { return len(s.entities) }

func (s *Set) Get(id world.ID) *Entity { return s.entities[id] }

// Apply creates and destroys handles for a frame's requests, in order.
func (s *Set) Apply(requests []world.Request) {
	for _, r := range requests {
		switch r := r.(type) {
		case world.SpawnRequest:
			if _, ok := s.entities[r.ID]; ok {
				log.Printf("spawn of existing %v %s", r.Kind, r.ID)
			}
			s.entities[r.ID] = &Entity{
				ID:       r.ID,
				Kind:     r.Kind,
				Rotation: r.Angle,
				Size:     r.HitBox,
			}
		case world.DespawnRequest:
			if _, ok := s.entities[r.ID]; !ok {
				log.Printf("despawn of unknown %v %s", r.Kind, r.ID)
				continue
			}
			delete(s.entities, r.ID)
		}
	}
}

// Sync moves every handle to the transform the world reports for it.
func (s *Set) Sync(w *world.World) {
	w.ForEachTransform(func(id world.ID, t world.Transform) {
		e := s.entities[id]
		if e == nil {
			return
		}
		p := s.layout.PointerFor(t.Screen)
		e.Coords = Coords{X: p.X, Y: p.Y}
		e.Rotation = t.Rotation
	})
}

// ForEach walks the handles of one kind in ID order.
func (s *Set) ForEach(kind world.Kind, callback func(*Entity)) {
	for _, id := range slices.Sorted(maps.Keys(s.entities)) {
		if e := s.entities[id]; e.Kind == kind {
			callback(e)
		}
	}
}
