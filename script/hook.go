// Package script runs a tengo script whenever a face button is held.
//
// The script must define
//
//	on_held := func(engine, button, state) { ... }
//
// where engine exposes log(...), stick() and held(name), button is the
// button name ("cross", "triangle", ...) and state is a map kept between
// calls.
package script

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/spriteapp/engine"
)

const dispatch = `
if __button != "" {
	on_held(__engine, __button, __state)
}
`

var ErrNoSource = errors.New("script: no source")

// Hook implements engine.ButtonHook on top of a compiled tengo script.
type Hook struct {
	path string
	log  *log.Logger

	mu       sync.Mutex
	compiled *tengo.Compiled
	state    *tengo.Map
	failed   bool
}

var _ engine.ButtonHook = (*Hook)(nil)

// Load compiles the script at path.
func Load(path string, logger *log.Logger) (*Hook, error) {
	h := &Hook{path: path, log: logger}
	if h.log == nil {
		h.log = log.Default()
	}
	if err := h.Reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// New compiles src directly; Reload is not available on the result.
func New(src []byte, logger *log.Logger) (*Hook, error) {
	h := &Hook{log: logger}
	if h.log == nil {
		h.log = log.Default()
	}
	compiled, err := compile(src)
	if err != nil {
		return nil, err
	}
	h.compiled = compiled
	h.state = &tengo.Map{Value: map[string]tengo.Object{}}
	return h, nil
}

func (h *Hook) Path() string {
	return h.path
}

// Reload recompiles the script from disk. The previous script and its state
// stay active when compilation fails.
func (h *Hook) Reload() error {
	if h.path == "" {
		return ErrNoSource
	}
	src, err := os.ReadFile(h.path)
	if err != nil {
		return fmt.Errorf("script: read %s: %w", h.path, err)
	}
	compiled, err := compile(src)
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", h.path, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.compiled = compiled
	h.state = &tengo.Map{Value: map[string]tengo.Object{}}
	h.failed = false
	return nil
}

func compile(src []byte) (*tengo.Compiled, error) {
	if len(strings.TrimSpace(string(src))) == 0 {
		return nil, ErrNoSource
	}
	s := tengo.NewScript([]byte(string(src) + "\n" + dispatch))
	_ = s.Add("__button", "")
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return s.Compile()
}

func (h *Hook) ButtonHeld(b engine.Button, c *engine.Controller) {
	if err := h.run(b.String(), c); err != nil {
		h.mu.Lock()
		first := !h.failed
		h.failed = true
		h.mu.Unlock()
		if first {
			h.log.Printf("script: on_held %s: %v", b, err)
		}
	}
}

// run reports VM panics, such as integer division by zero, as errors.
func (h *Hook) run(button string, c *engine.Controller) (err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script: panic: %v", r)
		}
	}()
	if h.compiled == nil {
		return ErrNoSource
	}
	if err := h.compiled.Set("__button", button); err != nil {
		return err
	}
	if err := h.compiled.Set("__engine", h.engineMap(c)); err != nil {
		return err
	}
	if err := h.compiled.Set("__state", h.state); err != nil {
		return err
	}
	return h.compiled.Run()
}

func (h *Hook) engineMap(c *engine.Controller) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		h.log.Print(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	values["stick"] = &tengo.UserFunction{Name: "stick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		var lx, ly, rx, ry float32
		if c != nil {
			lx, ly, rx, ry = c.LeftStickX, c.LeftStickY, c.RightStickX, c.RightStickY
		}
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"lx": &tengo.Float{Value: float64(lx)},
			"ly": &tengo.Float{Value: float64(ly)},
			"rx": &tengo.Float{Value: float64(rx)},
			"ry": &tengo.Float{Value: float64(ry)},
		}}, nil
	}}

	values["held"] = &tengo.UserFunction{Name: "held", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		b, ok := engine.ParseButton(objectAsString(args[0]))
		if !ok || !c.Held(b) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(o tengo.Object) string {
	if o == nil {
		return ""
	}
	if s, ok := tengo.ToString(o); ok {
		return s
	}
	return o.String()
}
