package world

import (
	"math/rand"
	"testing"
)

func TestOverlaps(t *testing.T) {
	bullet := Vector{X: 10, Y: 20}
	zombie := Vector{X: 100, Y: 100}
	cases := []struct {
		name string
		pos  Vector
		want bool
	}{
		{"same centre", Vector{X: 0, Y: 0}, true},
		{"inside", Vector{X: 54.9, Y: 59.9}, true},
		{"touching x", Vector{X: 55, Y: 0}, false},
		{"touching y", Vector{X: 0, Y: -60}, false},
		{"apart", Vector{X: 200, Y: 0}, false},
	}
	for _, c := range cases {
		if got := Overlaps(Vector{}, bullet, c.pos, zombie); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
	}

	square := Vector{X: 10, Y: 10}
	for _, c := range []struct {
		x    float64
		want bool
	}{
		{5, true},
		{10, false},
		{11, false},
	} {
		if got := Overlaps(Vector{}, square, Vector{X: c.x}, square); got != c.want {
			t.Errorf("squares %v apart: Overlaps = %v, want %v", c.x, got, c.want)
		}
	}
}

// standingConfig keeps zombies and bullets in place so hits are decided
// only by where the test puts them.
func standingConfig() Config {
	cfg := DefaultConfig()
	cfg.Zombie.Speed = 0
	cfg.Bullet.Speed = 0
	return cfg
}

func firstZombie(w *World) (ID, *Zombie) {
	var id ID
	var z *Zombie
	w.ForEachZombie(func(i ID, e *Zombie) {
		if z == nil {
			id, z = i, e
		}
	})
	return id, z
}

func shoot(w *World, at Vector) ID {
	cfg := w.Config().Bullet
	return w.SpawnBullet(&Bullet{Coords: at, HitBox: cfg.HitBox, Damage: cfg.Damage})
}

func TestBulletHitSpattersBlood(t *testing.T) {
	w := NewWorld(standingConfig(), rand.New(rand.NewSource(42)), nil)
	w.Update(1.0/60, Input{})
	id, z := firstZombie(w)

	bid := shoot(w, z.Coords)
	frame := w.Update(1.0/60, Input{})

	if w.Bullet(bid) != nil || !hasDespawn(frame.Requests, bid) {
		t.Fatal("bullet should be consumed by the hit")
	}
	if z.Health != 4 {
		t.Fatalf("zombie %s health = %d, want 4", id, z.Health)
	}
	if n := w.BloodCount(); n < 2 || n > 3 {
		t.Fatalf("blood decals = %d, want 2 or 3", n)
	}
	w.ForEachBlood(func(_ ID, b *Blood) {
		if !approxVector(b.Coords.Sub(z.Coords), b.direction(false).Scale(380.0/60)) {
			t.Fatalf("blood at %+v did not start from the zombie at %+v", b.Coords, z.Coords)
		}
	})
}

func TestZombieKilledAfterFiveHits(t *testing.T) {
	w := NewWorld(standingConfig(), nil, nil)
	w.Update(1.0/60, Input{})
	id, z := firstZombie(w)

	for i := 1; i <= 4; i++ {
		shoot(w, z.Coords)
		w.Update(1.0/60, Input{})
		if w.Zombie(id) == nil {
			t.Fatalf("zombie removed after %d hits", i)
		}
	}
	shoot(w, z.Coords)
	frame := w.Update(1.0/60, Input{})
	if w.Zombie(id) != nil || !hasDespawn(frame.Requests, id) {
		t.Fatal("zombie should be removed on the fifth hit")
	}
	if w.ZombieCount() != 1 {
		t.Fatalf("zombies = %d, want the other one left", w.ZombieCount())
	}
}

func TestPierce(t *testing.T) {
	for _, pierce := range []bool{true, false} {
		cfg := standingConfig()
		cfg.Zombie.Formation = []int{0, 0}
		cfg.Bullet.Pierce = pierce
		w := NewWorld(cfg, nil, nil)
		w.Update(1.0/60, Input{})

		_, z := firstZombie(w)
		shoot(w, z.Coords)
		w.Update(1.0/60, Input{})

		hurt := 0
		w.ForEachZombie(func(_ ID, z *Zombie) {
			if z.Health < cfg.Zombie.Health {
				hurt++
			}
		})
		want := 1
		if pierce {
			want = 2
		}
		if hurt != want {
			t.Fatalf("pierce=%v: %d zombies hurt, want %d", pierce, hurt, want)
		}
		if w.BulletCount() != 0 {
			t.Fatalf("pierce=%v: bullet survived the hit", pierce)
		}
	}
}

func TestFormationRespawns(t *testing.T) {
	cfg := standingConfig()
	cfg.Zombie.Health = 1
	cfg.Zombie.Formation = []int{0}
	w := NewWorld(cfg, nil, nil)
	w.Update(1.0/60, Input{})
	id, z := firstZombie(w)

	shoot(w, z.Coords)
	w.Update(1.0/60, Input{})
	if w.ZombieCount() != 0 {
		t.Fatalf("zombies = %d after the kill, want 0", w.ZombieCount())
	}

	frame := w.Update(1.0/60, Input{})
	if w.ZombieCount() != 1 {
		t.Fatalf("zombies = %d, want the formation back", w.ZombieCount())
	}
	next, _ := firstZombie(w)
	if next == id {
		t.Fatal("respawned zombie reused the dead one's ID")
	}
	found := false
	for _, r := range frame.Requests {
		if s, ok := r.(SpawnRequest); ok && s.ID == next && s.Pos == cfg.Zombie.Route[0] {
			found = true
		}
	}
	if !found {
		t.Fatalf("no spawn request for %s at route[0] in %+v", next, frame.Requests)
	}
}
