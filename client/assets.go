package client

import (
	_ "embed"
	"fmt"
	"image/color"
	"log"
	"zombies/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	playerSize = 40
	bloodSize  = 12
)

//go:embed assets/version.txt
var Version string

// Assets holds one placeholder sprite per entity kind. Sprites are drawn
// pointing up; the darker band marks the front.
type Assets struct {
	images map[world.Kind]*ebiten.Image
}

func (a *Assets) Image(kind world.Kind) *ebiten.Image {
	image := a.images[kind]
	if image == nil {
		log.Fatalf("invalid image kind: %v", kind)
	}
	return image
}

func LoadAssets(cfg world.Config) (*Assets, error) {
	a := &Assets{
		images: make(map[world.Kind]*ebiten.Image),
	}

	sizes := map[world.Kind]world.Vector{
		world.KindPlayer: {X: playerSize, Y: playerSize},
		world.KindZombie: cfg.Zombie.HitBox,
		world.KindBullet: cfg.Bullet.HitBox,
	}
	for kind, size := range sizes {
		if size.X < 1 || size.Y < 1 {
			return nil, fmt.Errorf("%v sprite needs a positive size, got %vx%v", kind, size.X, size.Y)
		}
	}

	a.images[world.KindPlayer] = newSprite(sizes[world.KindPlayer], color.RGBA{218, 212, 94, 255}, color.RGBA{120, 110, 30, 255})
	a.images[world.KindZombie] = newSprite(sizes[world.KindZombie], color.RGBA{96, 140, 72, 255}, color.RGBA{208, 70, 72, 255})
	a.images[world.KindBullet] = newSprite(sizes[world.KindBullet], color.RGBA{240, 240, 240, 255}, color.RGBA{255, 160, 40, 255})

	blood := ebiten.NewImage(bloodSize, bloodSize)
	vector.DrawFilledCircle(blood, bloodSize/2, bloodSize/2, bloodSize/2, color.RGBA{140, 16, 24, 220}, true)
	a.images[world.KindBlood] = blood
	return a, nil
}

func newSprite(size world.Vector, body, front color.Color) *ebiten.Image {
	image := ebiten.NewImage(int(size.X), int(size.Y))
	image.Fill(body)
	vector.DrawFilledRect(image, 0, 0, float32(size.X), float32(size.Y)/5, front, false)
	return image
}
