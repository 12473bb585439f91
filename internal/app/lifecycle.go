package app

import (
	"fmt"
	"sync"

	clog "github.com/charmbracelet/log"

	"github.com/dshills/tickloop/internal/renderer/backend"
)

// terminalGuard owns the terminal for one run. acquire puts it into the
// interactive mode the loop needs; release puts it back and runs at most
// once, whatever path the run takes out.
type terminalGuard struct {
	backend  backend.Backend
	log      *clog.Logger
	once     sync.Once
	acquired bool
}

func newTerminalGuard(b backend.Backend, log *clog.Logger) *terminalGuard {
	return &terminalGuard{backend: b, log: log}
}

// acquire enters raw mode, hides the cursor and captures the mouse. If
// setup panics after raw mode is on, the terminal is shut down again and the
// panic is returned as an *InitError.
func (g *terminalGuard) acquire() (err error) {
	if err := g.backend.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("terminal setup panicked", "panic", r)
			g.shutdown()
			err = &InitError{Component: "terminal", Err: fmt.Errorf("setup panicked: %v", r)}
		}
	}()

	g.backend.HideCursor()
	g.backend.EnableMouse()
	g.acquired = true
	g.log.Debug("terminal acquired")
	return nil
}

// shutdown leaves raw mode after a failed setup.
func (g *terminalGuard) shutdown() {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("terminal shutdown failed", "panic", r)
		}
	}()
	g.backend.Shutdown()
}

// release restores colors and cursor, clears the screen, stops mouse
// capture and leaves raw mode. A panic here is logged and swallowed so it
// never replaces the run's own outcome.
func (g *terminalGuard) release() {
	g.once.Do(func() {
		if !g.acquired {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				g.log.Error("terminal release failed", "panic", r)
			}
		}()

		g.backend.ResetStyle()
		g.backend.ShowCursor(0, 0)
		g.backend.Clear()
		g.backend.Show()
		g.backend.DisableMouse()
		g.backend.Shutdown()
		g.log.Debug("terminal released")
	})
}
