// Package spectate draws the spectator server's state stream in a terminal.
package spectate

import (
	"context"
	"fmt"
	"zombies/world"

	"github.com/gdamore/tcell/v2"
	"nhooyr.io/websocket"
)

const readLimit = 1 << 20

var glyphs = map[world.Kind]struct {
	r     rune
	style tcell.Style
}{
	world.KindBlood:  {'.', tcell.StyleDefault.Foreground(tcell.ColorDarkRed)},
	world.KindZombie: {'Z', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	world.KindBullet: {'*', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	world.KindPlayer: {'@', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
}

// Later kinds are drawn over earlier ones.
var drawOrder = []world.Kind{world.KindBlood, world.KindZombie, world.KindBullet, world.KindPlayer}

// Projector maps world positions onto terminal cells. The bottom row is
// left for the status line.
type Projector struct {
	extent     world.Vector
	cols, rows int
}

func NewProjector(layout world.Layout, width, height int) Projector {
	return Projector{
		extent: layout.Extent(),
		cols:   max(width, 1),
		rows:   max(height-1, 1),
	}
}

// Cell returns the cell holding pos, or false if pos is outside the world.
func (p Projector) Cell(pos world.Vector) (x, y int, ok bool) {
	if pos.X < 0 || pos.X >= p.extent.X || pos.Y < 0 || pos.Y >= p.extent.Y {
		return 0, 0, false
	}
	x = int(pos.X / p.extent.X * float64(p.cols))
	y = p.rows - 1 - int(pos.Y/p.extent.Y*float64(p.rows))
	return min(x, p.cols-1), max(y, 0), true
}

// centre is the world position in the middle of cell (x, y).
func (p Projector) centre(x, y int) world.Vector {
	return world.Vector{
		X: (float64(x) + 0.5) / float64(p.cols) * p.extent.X,
		Y: (float64(p.rows-1-y) + 0.5) / float64(p.rows) * p.extent.Y,
	}
}

// Draw renders one state: the camera's view shaded, every entity as a
// glyph, and a status line.
func Draw(screen tcell.Screen, s *world.State, layout world.Layout) {
	screen.Clear()
	width, height := screen.Size()
	p := NewProjector(layout, width, height)

	shade := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := range p.rows {
		for x := range p.cols {
			c := p.centre(x, y)
			if c.X >= s.Offset.X && c.X < s.Offset.X+layout.ViewportWidth &&
				c.Y >= s.Offset.Y && c.Y < s.Offset.Y+layout.ViewportHeight {
				screen.SetContent(x, y, '·', nil, shade)
			}
		}
	}

	for _, kind := range drawOrder {
		g := glyphs[kind]
		for _, e := range s.Entities {
			if e.Kind != kind {
				continue
			}
			if x, y, ok := p.Cell(e.Coords); ok {
				screen.SetContent(x, y, g.r, nil, g.style)
			}
		}
	}

	status := fmt.Sprintf("tick %d  zombies %d  bullets %d  blood %d  [q] quit",
		s.Tick, s.Count(world.KindZombie), s.Count(world.KindBullet), s.Count(world.KindBlood))
	for i, r := range []rune(status) {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

func quitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// Run opens the terminal, connects to the server at url and draws every
// state it sends until the user quits or the stream ends.
func Run(ctx context.Context, url string, layout world.Layout) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	return watch(ctx, screen, c, layout)
}

func watch(ctx context.Context, screen tcell.Screen, c *websocket.Conn, layout world.Layout) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.SetReadLimit(readLimit)

	states := make(chan *world.State, 16)
	errc := make(chan error, 1)
	go func() {
		for {
			_, b, err := c.Read(ctx)
			if err != nil {
				errc <- err
				return
			}
			s, err := world.UnmarshalState(b)
			if err != nil {
				errc <- err
				return
			}
			select {
			case states <- s:
			case <-ctx.Done():
				return
			}
		}
	}()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	var last *world.State
	for {
		select {
		case s := <-states:
			last = s
			Draw(screen, s, layout)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				if last != nil {
					Draw(screen, last, layout)
				}
			}
		case err := <-errc:
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
