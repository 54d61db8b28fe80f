package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"airhockey/game"
	"airhockey/spectate"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	frames := flag.Int("frames", 0, "stop after this many frames (0 runs until the match ends)")
	spectateAddr := flag.String("spectate", "", "listen address for the spectator feed (overrides config)")
	realtime := flag.Bool("realtime", false, "pace frames with the wall clock instead of running flat out")
	replay := flag.Bool("replay", false, "start a new match from the result screen instead of quitting")
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

	match := game.NewMatch(config)
	pilot := game.NewAutopilot(match, *replay)
	clock := game.NewClock(config.TargetTPS)

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(time.Duration(clock.FixedDelta() * float64(time.Second)))
		defer ticker.Stop()
	}

	log.Printf("Starting headless match: %d substeps at %d TPS, %gs on the clock",
		config.Substeps, config.TargetTPS, config.MatchSeconds)

	start := time.Now()
	n := 0
	for !match.Terminal() && (*frames == 0 || n < *frames) {
		dt := clock.FixedDelta()
		if ticker != nil {
			dt = clock.Tick(<-ticker.C)
		}

		match.Update(dt, pilot.Poll())
		if sink != nil {
			sink.Publish(match.Snapshot(), match.Events())
		}
		n++
	}

	sb := match.Scoreboard()
	elapsed := time.Since(start)
	log.Printf("Stopped after %d frames in %v (%.0f frames/s): %d-%d, %s",
		n, elapsed.Round(time.Millisecond), float64(n)/max(elapsed.Seconds(), 1e-9),
		sb.Team1Score, sb.Team2Score, match.ResultText())
}
