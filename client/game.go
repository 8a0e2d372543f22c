package client

import (
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math/rand"
	"strings"
	"time"
	"zombies/object"
	"zombies/utils"
	"zombies/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type mode int

const (
	modeMenu mode = iota
	modePlaying
)

const menuText = `ZOMBIES

Enter: play
Q: quit

WASD moves, left click shoots, Escape returns here.`

type Game struct {
	*Assets
	cfg      *utils.Config
	logger   *slog.Logger
	rng      *rand.Rand
	player   *LocalPlayer
	renderer *Renderer

	mode    mode
	level   int
	state   *world.World
	handles *object.Set
	offset  world.WorldOffset
}

func NewGame(cfg *utils.Config, assets *Assets, logger *slog.Logger) *Game {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		Assets:   assets,
		cfg:      cfg,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
		player:   NewLocalPlayer(),
		renderer: NewRenderer(cfg.World.Layout),
		handles:  object.NewSet(cfg.World.Layout),
	}
}

func (g *Game) start() {
	g.level++
	g.state = world.NewWorld(g.cfg.World, g.rng, g.logger.With("level", g.level))
	g.handles = object.NewSet(g.cfg.World.Layout)
	g.offset = g.state.Offset
	g.player.Reset()
	g.mode = modePlaying
	log.Printf("level %d started", g.level)
}

func (g *Game) stop() {
	g.handles.Apply(g.state.Teardown())
	log.Printf("level %d left after %d ticks", g.level, g.state.Tick())
	g.state = nil
	g.mode = modeMenu
}

func (g *Game) Update() error {
	if g.mode == modeMenu {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.start()
		}
		return nil
	}

	frame := g.state.Update(1/float64(ebiten.TPS()), g.player.Poll())
	g.handles.Apply(frame.Requests)
	g.handles.Sync(g.state)
	g.offset = frame.Offset
	if frame.ReturnToMenu {
		g.stop()
	}
	return nil
}

func (g *Game) debugString() string {
	lines := []string{
		fmt.Sprintf("Version: %s, TPS: %0.02f, FPS: %0.02f", strings.TrimSpace(Version), ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	if g.state != nil {
		lines = append(lines, fmt.Sprintf("Tick: %d, zombies: %d, bullets: %d, blood: %d",
			g.state.Tick(), g.state.ZombieCount(), g.state.BulletCount(), g.state.BloodCount()))
	}
	return strings.Join(lines, "\n")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{
		40,
		44,
		52,
		255,
	})
	if g.mode == modeMenu {
		ebitenutil.DebugPrintAt(screen, menuText, int(g.cfg.World.Layout.ViewportWidth)/2-80, int(g.cfg.World.Layout.ViewportHeight)/2-40)
		ebitenutil.DebugPrint(screen, g.debugString())
		return
	}
	g.renderer.Render(screen, g.Assets, g.handles, g.offset)
	ebitenutil.DebugPrint(screen, g.debugString())
}

// Layout keeps the logical screen at the simulation's viewport size; the
// window resolution only scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.cfg.World.Layout.ViewportWidth), int(g.cfg.World.Layout.ViewportHeight)
}
