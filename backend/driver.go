package backend

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spriteapp/engine"
)

var ErrNotInitialised = errors.New("backend: driver not initialised")

// Driver runs an engine.Application inside Ebitengine's game loop. It
// implements ebiten.Game so it can be run directly or wrapped.
type Driver struct {
	eng *Engine
	app engine.Application
	now func() time.Time

	last    time.Time
	inited  bool
	stopped bool
	cleaned bool
}

var _ ebiten.Game = (*Driver)(nil)

func NewDriver(eng *Engine, app engine.Application) *Driver {
	return &Driver{eng: eng, app: app, now: time.Now}
}

// SetClock replaces the wall clock used to measure frame time.
func (d *Driver) SetClock(now func() time.Time) {
	if now != nil {
		d.now = now
	}
}

func (d *Driver) Init() error {
	if d.inited {
		return nil
	}
	if err := d.app.Init(); err != nil {
		return err
	}
	d.inited = true
	d.last = d.now()
	return nil
}

// Update passes the elapsed wall time to the application. Once the
// application asks to stop, Update keeps returning ebiten.Termination.
func (d *Driver) Update() error {
	if d.stopped {
		return ebiten.Termination
	}
	if !d.inited {
		return ErrNotInitialised
	}

	now := d.now()
	dt := float32(now.Sub(d.last).Seconds())
	d.last = now

	if !d.app.Update(dt) {
		d.stopped = true
		return ebiten.Termination
	}
	return nil
}

func (d *Driver) Draw(screen *ebiten.Image) {
	if !d.inited || d.stopped {
		return
	}
	d.eng.Bind(screen)
	d.app.Render()
}

func (d *Driver) Layout(_, _ int) (int, int) {
	return d.eng.Size()
}

// CleanUp releases the application once, and only if Init succeeded.
func (d *Driver) CleanUp() {
	if !d.inited || d.cleaned {
		return
	}
	d.cleaned = true
	d.app.CleanUp()
}

func (d *Driver) Stopped() bool {
	return d.stopped
}

// Run initialises the application, runs game (the driver itself when nil)
// and cleans up when the loop ends.
func (d *Driver) Run(game ebiten.Game) error {
	if err := d.Init(); err != nil {
		return err
	}
	defer d.CleanUp()
	if game == nil {
		game = d
	}
	return ebiten.RunGame(game)
}
