package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spriteapp/backend"
	"github.com/milk9111/spriteapp/config"
	"github.com/milk9111/spriteapp/script"
	"github.com/milk9111/spriteapp/spriteapp"
)

// Game wraps the frame driver with the desktop extras: the debug overlay,
// HUD copy and hot reload.
type Game struct {
	cfg    config.Config
	cfgMod time.Time

	eng    *backend.Engine
	app    *spriteapp.SpriteApp
	driver *backend.Driver
	hook   *script.Hook

	// forceDebug keeps -debug in effect across config reloads.
	forceDebug bool

	overlay     *DebugUI
	showOverlay bool
	clip        *Clipboard
	watcher     *config.Watcher
}

func NewGame(cfg config.Config) (*Game, error) {
	eng := backend.New(backend.Options{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		ClearColour: cfg.Clear.ABGR(),
		Deadzone:    cfg.Input.Deadzone,
	})

	opts := appOptions(cfg)
	var hook *script.Hook
	if cfg.Script != "" {
		h, err := script.Load(cfg.Script, log.Default())
		if err != nil {
			return nil, err
		}
		hook = h
		opts.Hook = h
	}

	app := spriteapp.New(eng, opts)
	return &Game{
		cfg:         cfg,
		cfgMod:      modTime(cfg.Path),
		eng:         eng,
		app:         app,
		driver:      backend.NewDriver(eng, app),
		hook:        hook,
		overlay:     NewDebugUI(),
		showOverlay: cfg.Debug.Overlay,
		clip:        &Clipboard{},
	}, nil
}

// Watch starts reporting changes to the config file and the script.
func (g *Game) Watch() error {
	var files []string
	if g.cfg.Path != "" {
		files = append(files, g.cfg.Path)
	}
	if g.hook != nil {
		files = append(files, g.hook.Path())
	}
	if len(files) == 0 {
		return fmt.Errorf("nothing to watch: using built-in config and no script")
	}
	w, err := config.NewWatcher(files...)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Run() error {
	if g.watcher != nil {
		defer g.watcher.Close()
	}
	return g.driver.Run(g)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showOverlay = !g.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyHUD()
	}
	g.pollReload()

	if err := g.driver.Update(); err != nil {
		return err
	}

	if g.showOverlay {
		g.overlay.Update(g.app.Snapshot())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.driver.Draw(screen)
	if g.showOverlay && !g.driver.Stopped() {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.driver.Layout(outsideWidth, outsideHeight)
}

func (g *Game) copyHUD() {
	if err := g.clip.Copy(strings.Join(g.app.HUDLines(), "\n")); err != nil {
		log.Printf("copy hud: %v", err)
		return
	}
	log.Printf("hud copied to clipboard")
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		g.reload(name)
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch: %v", err)
		}
	default:
	}
}

func (g *Game) reload(name string) {
	switch {
	case g.hook != nil && sameFile(name, g.hook.Path()):
		if err := g.hook.Reload(); err != nil {
			log.Printf("reload script: %v", err)
			return
		}
		log.Printf("reloaded script %s", g.hook.Path())
	case g.cfg.Path != "" && sameFile(name, g.cfg.Path):
		mod := modTime(g.cfg.Path)
		if !mod.IsZero() && mod.Equal(g.cfgMod) {
			return
		}
		g.cfgMod = mod
		cfg, err := config.Load(g.cfg.Path)
		if err != nil {
			log.Printf("reload config: %v", err)
			return
		}
		g.applyConfig(cfg)
		log.Printf("reloaded config %s", g.cfg.Path)
	}
}

// applyConfig takes over the settings that can change while running and
// logs the ones that only apply after a restart.
func (g *Game) applyConfig(cfg config.Config) {
	for _, name := range restartOnly(g.cfg, cfg) {
		log.Printf("reload config: %s changed, restart to apply", name)
	}
	if g.forceDebug {
		cfg.Debug.Overlay = true
		cfg.Debug.LogAxes = true
	}
	cfg.Script = g.cfg.Script

	g.app.SetHUD(hudLayout(cfg.HUD))
	g.app.SetInput(cfg.Input.Controller, cfg.Debug.LogAxes)
	g.eng.SetDeadzone(cfg.Input.Deadzone)
	g.eng.SetClearColour(cfg.Clear.ABGR())
	if cfg.TPS != g.cfg.TPS {
		ebiten.SetTPS(cfg.TPS)
	}
	g.cfg = cfg
}

// restartOnly names the settings that differ between old and next but are
// fixed once the window and the app are up.
func restartOnly(old, next config.Config) []string {
	var names []string
	if old.Window != next.Window {
		names = append(names, "window")
	}
	if old.Sprite != next.Sprite {
		names = append(names, "sprite")
	}
	if old.Font != next.Font {
		names = append(names, "font")
	}
	// an empty script in the file keeps whatever -script loaded
	if next.Script != "" && old.Script != next.Script {
		names = append(names, "script")
	}
	return names
}

func modTime(path string) time.Time {
	t, _ := config.ModTime(path)
	return t
}

func sameFile(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}
