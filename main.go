package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"crypthack/config"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "generator seed")
	interval := flag.Float64("step", config.StepInterval, "seconds between generator steps")
	theme := flag.String("theme", "meadow", "tile theme")
	templates := flag.String("templates", "", "directory of extra JSON templates")
	bgm := flag.String("bgm", "", "mp3 or ogg file to loop as background music")
	noAudio := flag.Bool("no-audio", false, "disable audio")
	skipMenu := flag.Bool("skip-menu", false, "start generating immediately")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen mode")
	flag.Parse()

	game, err := NewGame(Options{
		Seed:      *seed,
		Interval:  *interval,
		Theme:     *theme,
		Templates: *templates,
		BGM:       *bgm,
		Audio:     !*noAudio,
		SkipMenu:  *skipMenu,
	})
	if err != nil {
		log.Fatal(err)
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetWindowTitle("CryptHack - Branch Dungeon Viewer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
