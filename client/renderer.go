package client

import (
	"fmt"
	"image/color"
	"math"
	"zombies/object"
	"zombies/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var tileColors = [2]color.RGBA{
	{164, 178, 191, 255},
	{150, 164, 178, 255},
}

type Renderer struct {
	layout world.Layout
}

func NewRenderer(layout world.Layout) *Renderer {
	return &Renderer{layout: layout}
}

// RenderTiles draws the background grid as a checkerboard, one viewport
// sized cell per tile.
func (r *Renderer) RenderTiles(screen *ebiten.Image, offset world.WorldOffset) {
	w, h := r.layout.ViewportWidth, r.layout.ViewportHeight
	for x := range offset.GridWidth {
		for y := range offset.GridHeight {
			pos := r.layout.TileScreenPos(x, y, offset)
			// pos is the tile's bottom left corner with y up.
			left, top := pos.X, -pos.Y
			if left >= w || left+w <= 0 || top >= h || top+h <= 0 {
				continue
			}
			vector.DrawFilledRect(screen, float32(left), float32(top), float32(w), float32(h), tileColors[(x+y)%2], false)
		}
	}
}

// RenderEntity draws image centred on the handle and turned to its
// rotation.
func (r *Renderer) RenderEntity(screen *ebiten.Image, image *ebiten.Image, e *object.Entity) {
	opt := &ebiten.DrawImageOptions{}
	bounds := image.Bounds()
	opt.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	// Rotation is measured in y up space; the screen is y down.
	opt.GeoM.Rotate(math.Pi - e.Rotation)
	opt.GeoM.Translate(e.X, e.Y)
	opt.Filter = ebiten.FilterLinear
	screen.DrawImage(image, opt)
}

func (r *Renderer) RenderAim(screen *ebiten.Image, player *object.Entity) {
	x, y := ebiten.CursorPosition()
	vector.StrokeLine(screen, float32(player.X), float32(player.Y), float32(x), float32(y), 1, color.RGBA{255, 0, 0, 255}, true)
}

// Render draws one frame of a level: tiles, then decals, zombies, bullets
// and the player on top.
func (r *Renderer) Render(screen *ebiten.Image, a *Assets, handles *object.Set, offset world.WorldOffset) {
	r.RenderTiles(screen, offset)
	for _, kind := range []world.Kind{world.KindBlood, world.KindZombie, world.KindBullet} {
		image := a.Image(kind)
		handles.ForEach(kind, func(e *object.Entity) {
			r.RenderEntity(screen, image, e)
		})
	}
	handles.ForEach(world.KindZombie, func(e *object.Entity) {
		ebitenutil.DebugPrintAt(screen, shortID(e.ID), int(e.X-e.Size.X/2), int(e.Y+e.Size.Y/2))
	})
	if player := handles.Get(world.PlayerID); player != nil {
		r.RenderAim(screen, player)
		r.RenderEntity(screen, a.Image(world.KindPlayer), player)
		debugString := fmt.Sprintf("(%0.0f,%0.0f)", player.X+offset.X, r.layout.ViewportHeight-player.Y+offset.Y)
		ebitenutil.DebugPrintAt(screen, debugString, int(player.X)-playerSize/2, int(player.Y)+playerSize/2)
	}
}

func shortID(id world.ID) string {
	s := string(id)
	if len(s) > 6 {
		return s[len(s)-6:]
	}
	return s
}
