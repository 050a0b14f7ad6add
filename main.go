package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"starhopper/game"
	"starhopper/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (optional)")
	seed := flag.Int64("seed", 0, "system generation seed (0 picks a random one)")
	flag.Parse()

	log := logging.New()

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Error("failed to load config", err, "path", *configPath)
			os.Exit(1)
		}
		config = loaded
	}

	g := game.NewGame(config, game.WithLogger(log), game.WithSeed(*seed))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Starhopper")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Error("game loop exited", err)
		os.Exit(1)
	}
}
