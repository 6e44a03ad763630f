package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard initialises the system clipboard on first use.
type Clipboard struct {
	once sync.Once
	err  error
}

func (c *Clipboard) Copy(s string) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.err)
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
