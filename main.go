package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spriteapp/backend"
	"github.com/milk9111/spriteapp/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config path (default ./"+config.DefaultFile+" or built-in settings)")
	debug := flag.Bool("debug", false, "show the debug overlay and log stick axes every frame")
	scriptPath := flag.String("script", "", "tengo script run while face buttons are held")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "reload the config and script when they change on disk")
	fonts := flag.Bool("fonts", false, "list the font names the config accepts and exit")
	flag.Parse()

	if *fonts {
		fmt.Println(strings.Join(backend.FontNames(), "\n"))
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Debug.Overlay = true
		cfg.Debug.LogAxes = true
	}
	if *scriptPath != "" {
		cfg.Script = *scriptPath
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	game.forceDebug = *debug

	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("watch disabled: %v", err)
		}
	}

	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}
