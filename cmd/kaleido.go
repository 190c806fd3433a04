package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game_log "github.com/avelhart/kaleido/internal/log"
	"github.com/avelhart/kaleido/internal/ui"
)

func main() {
	logLevel := flag.String("loglevel", "info", "log level: debug, info, warn, error, none")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	seed := flag.Int64("seed", 0, "pattern randomization seed (0 = time-based)")
	flag.Parse()

	logger := game_log.New(os.Stdout, game_log.LevelFromString(*logLevel))

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logger.Debugf("[MAIN] seed=%d", s)

	app, err := ui.New(logger, rand.New(rand.NewSource(s)))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Kaleido")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if *fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
