package main

import (
	"log"
	"os"
	"zombies/server"
	"zombies/utils"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)
	cfg, err := utils.LoadTOML("config.toml")
	if err != nil {
		log.Fatal(err)
	}
	if err := server.Run(cfg, os.Args); err != nil {
		log.Fatal(err)
	}
}
