package world

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.GridWidth = 0
	cfg.Zombie.Health = 0
	cfg.Zombie.Formation = []int{7}
	cfg.Blood.BurstMax = cfg.Blood.BurstMin

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("error %v does not join its causes", err)
	}
	if n := len(joined.Unwrap()); n != 4 {
		t.Fatalf("got %d problems, want 4: %v", n, err)
	}
}

func TestValidateEmptyRoute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Zombie.Route = nil
	cfg.Zombie.Formation = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty route should be rejected")
	}
	if _, err := NewZombie(cfg.Zombie.Route, 0, cfg.Zombie); !errors.Is(err, ErrEmptyRoute) {
		t.Fatalf("NewZombie: got %v, want ErrEmptyRoute", err)
	}
}
