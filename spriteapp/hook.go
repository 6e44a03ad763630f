package spriteapp

import (
	"log"

	"github.com/milk9111/spriteapp/engine"
)

var heldMessages = map[engine.Button]string{
	engine.ButtonCross:    "x is held down",
	engine.ButtonTriangle: "Triangle is held down",
	engine.ButtonCircle:   "O is held down",
	engine.ButtonSquare:   "square is held down",
}

// LogHook logs one line per held face button.
type LogHook struct {
	Logger *log.Logger
}

func NewLogHook(logger *log.Logger) *LogHook {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHook{Logger: logger}
}

func (h *LogHook) ButtonHeld(b engine.Button, _ *engine.Controller) {
	if h == nil || h.Logger == nil {
		return
	}
	msg, ok := heldMessages[b]
	if !ok {
		msg = b.String() + " is held down"
	}
	h.Logger.Print(msg)
}
