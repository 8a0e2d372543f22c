package main

import (
	"context"
	"log"
	"os"
	"zombies/client"
	"zombies/server"
	"zombies/spectate"
	"zombies/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	cfg, err := utils.LoadTOML("config.toml")
	if err != nil {
		log.Fatal(err)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "server":
			if err := server.Run(cfg, os.Args[1:]); err != nil {
				log.Fatal(err)
			}
			return
		case "spectate":
			url := "ws://" + cfg.Server.Address
			if len(os.Args) > 2 {
				url = os.Args[2]
			}
			if err := spectate.Run(context.Background(), url, cfg.World.Layout); err != nil {
				log.Fatal(err)
			}
			return
		}
	}

	assets, err := client.LoadAssets(cfg.World)
	if err != nil {
		log.Fatal(err)
	}

	resolutionConfig := cfg.UI.Resolution
	log.Printf("%+v", resolutionConfig)

	ebiten.SetWindowSize(resolutionConfig.X, resolutionConfig.Y)
	ebiten.SetWindowTitle("Zombies")

	game := client.NewGame(cfg, assets, utils.NewLogger(os.Stderr, cfg.Game.LogLevel))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
