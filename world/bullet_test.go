package world

import (
	"math"
	"testing"
)

func TestBulletLeavesWorld(t *testing.T) {
	l := DefaultConfig().Layout
	b := &Bullet{Coords: Vector{X: 10, Y: 100}, Angle: -math.Pi / 2}
	if !b.Advance(1.0/60, 500, l) {
		t.Fatalf("bullet at %+v should still be inside", b.Coords)
	}
	if b.Advance(1.0/60, 500, l) {
		t.Fatalf("bullet at %+v should have left the world", b.Coords)
	}
}

func TestBulletDespawnedOutOfBounds(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil, nil)
	w.Update(1.0/60, Input{})

	id := w.SpawnBullet(&Bullet{Coords: Vector{X: 100, Y: 2155}, Angle: math.Pi, HitBox: Vector{X: 10, Y: 20}, Damage: 1})
	frame := w.Update(1.0/60, Input{})
	if w.Bullet(id) != nil {
		t.Fatal("bullet outside the world was kept")
	}
	if !hasDespawn(frame.Requests, id) {
		t.Fatalf("no despawn request for %s in %+v", id, frame.Requests)
	}
}

func hasDespawn(requests []Request, id ID) bool {
	for _, r := range requests {
		if d, ok := r.(DespawnRequest); ok && d.ID == id {
			return true
		}
	}
	return false
}
