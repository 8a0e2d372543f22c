package spectate

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"zombies/server"
	"zombies/utils"
	"zombies/world"

	"github.com/gdamore/tcell/v2"
	"nhooyr.io/websocket"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(width, height)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func rowText(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := range width {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func TestProjectorCell(t *testing.T) {
	p := NewProjector(world.DefaultConfig().Layout, 40, 13)
	cases := []struct {
		pos  world.Vector
		x, y int
		ok   bool
	}{
		{world.Vector{X: 0, Y: 0}, 0, 11, true},
		{world.Vector{X: 1920, Y: 1080}, 20, 5, true},
		{world.Vector{X: 3839, Y: 2159}, 39, 0, true},
		{world.Vector{X: 3840, Y: 10}, 0, 0, false},
		{world.Vector{X: 10, Y: -1}, 0, 0, false},
	}
	for _, c := range cases {
		x, y, ok := p.Cell(c.pos)
		if ok != c.ok || (ok && (x != c.x || y != c.y)) {
			t.Errorf("Cell(%+v) = %d, %d, %v; want %d, %d, %v", c.pos, x, y, ok, c.x, c.y, c.ok)
		}
	}
}

func TestDraw(t *testing.T) {
	screen := newScreen(t, 40, 13)
	state := &world.State{
		Tick:   12,
		Offset: world.WorldOffset{X: 0, Y: 0, GridWidth: 3, GridHeight: 3},
		Entities: []world.EntityState{
			{ID: world.PlayerID, Kind: world.KindPlayer, Coords: world.Vector{X: 1920, Y: 1080}},
			{ID: "z", Kind: world.KindZombie, Coords: world.Vector{X: 0, Y: 0}, Health: 5},
			{ID: "b", Kind: world.KindBullet, Coords: world.Vector{X: 3839, Y: 2159}},
			{ID: "d", Kind: world.KindBlood, Coords: world.Vector{X: 3839, Y: 2159}},
		},
	}
	Draw(screen, state, world.DefaultConfig().Layout)

	if r := runeAt(screen, 20, 5); r != '@' {
		t.Fatalf("player cell = %q, want '@'", r)
	}
	if r := runeAt(screen, 0, 11); r != 'Z' {
		t.Fatalf("zombie cell = %q, want 'Z'", r)
	}
	if r := runeAt(screen, 39, 0); r != '*' {
		t.Fatalf("bullet should be drawn over blood, got %q", r)
	}
	// The camera covers the bottom left third of the world.
	if r := runeAt(screen, 5, 10); r != '·' {
		t.Fatalf("camera cell = %q, want shading", r)
	}
	if r := runeAt(screen, 30, 1); r != ' ' {
		t.Fatalf("cell outside the camera = %q, want blank", r)
	}
	if status := rowText(screen, 12, 40); !strings.HasPrefix(status, "tick 12  zombies 1  bullets 1") {
		t.Fatalf("status line = %q", status)
	}
}

func TestQuitKey(t *testing.T) {
	for _, c := range []struct {
		ev   *tcell.EventKey
		want bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), false},
	} {
		if got := quitKey(c.ev); got != c.want {
			t.Errorf("quitKey(%v) = %v, want %v", c.ev.Name(), got, c.want)
		}
	}
}

func TestWatchServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := utils.DefaultConfig()
	s := server.NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Start(ctx)
	ts := httptest.NewServer(s)
	defer ts.Close()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	screen := newScreen(t, 60, 20)
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, screen, c, cfg.World.Layout)
	}()

	for !strings.HasPrefix(rowText(screen, 19, 60), "tick") {
		select {
		case err := <-done:
			t.Fatalf("watch stopped early: %v", err)
		case <-ctx.Done():
			t.Fatal("no state was drawn")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
	case <-ctx.Done():
		t.Fatal("watch ignored the quit key")
	}
}
