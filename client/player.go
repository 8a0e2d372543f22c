package client

import (
	"image"
	"zombies/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LocalPlayer turns the keyboard and mouse into simulation input.
type LocalPlayer struct {
	cursor  image.Point
	tracked bool
}

func NewLocalPlayer() *LocalPlayer {
	return &LocalPlayer{}
}

// Reset forgets the last cursor so the next poll re-aims.
func (p *LocalPlayer) Reset() {
	p.tracked = false
}

func (p *LocalPlayer) Poll() world.Input {
	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)
	in := world.Input{
		Up:           ebiten.IsKeyPressed(ebiten.KeyW),
		Down:         ebiten.IsKeyPressed(ebiten.KeyS),
		Left:         ebiten.IsKeyPressed(ebiten.KeyA),
		Right:        ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:         inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pointer:      world.Vector{X: float64(x), Y: float64(y)},
		PointerMoved: !p.tracked || cursor != p.cursor,
		Escape:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	p.cursor, p.tracked = cursor, true
	return in
}
