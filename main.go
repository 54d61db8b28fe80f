package main

import (
	"errors"
	"flag"
	"log"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"

	"airhockey/game"
	"airhockey/spectate"
	"airhockey/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	spectateAddr := flag.String("spectate", "", "listen address for the spectator feed (overrides config)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *spectateAddr != "" {
		config.SpectateAddr = *spectateAddr
	}

	var sink game.SnapshotSink
	if config.SpectateAddr != "" {
		hub := spectate.NewHub()
		defer hub.Close()
		server := spectate.NewServer(config.SpectateAddr, hub)
		go func() {
			log.Printf("spectate: listening on %s", config.SpectateAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("spectate: server stopped: %v", err)
			}
		}()
		defer server.Close()
		sink = hub
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Air Hockey")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TargetTPS)

	if err := ebiten.RunGame(ui.NewGame(config, sink)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
