package app

import (
	"runtime/debug"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/tickloop/internal/dispatcher"
	"github.com/dshills/tickloop/internal/element"
	"github.com/dshills/tickloop/internal/event"
	"github.com/dshills/tickloop/internal/input/key"
	"github.com/dshills/tickloop/internal/input/mouse"
	"github.com/dshills/tickloop/internal/renderer"
	"github.com/dshills/tickloop/internal/renderer/backend"
)

// DefaultTickRate is how long the loop waits for input before running the
// next loop phase on its own.
const DefaultTickRate = 33 * time.Millisecond

// Options configures a run.
type Options[S comparable] struct {
	// TickRate is the idle wait between loop phases. Zero means DefaultTickRate.
	TickRate time.Duration

	// Exit is evaluated after every loop phase; the run ends right after
	// the render that follows a true result. When nil, ctrl+c ends the run
	// instead and is never dispatched.
	Exit func(S) bool

	// Backend is the terminal. Nil means a new tcell terminal.
	Backend backend.Backend

	// Logger receives lifecycle logs. Nil discards them.
	Logger *clog.Logger

	// Metrics, when set, is updated as the run progresses.
	Metrics *Metrics
}

// runState is the lifecycle of a single run.
type runState int

const (
	stateInitializing runState = iota
	stateRunning
	stateExiting
	stateTerminated
)

func (s runState) String() string {
	switch s {
	case stateInitializing:
		return "initializing"
	case stateRunning:
		return "running"
	case stateExiting:
		return "exiting"
	case stateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// phaseExit labels a panic raised by the exit predicate.
const phaseExit = "exit"

// Run drives state through the elements' callbacks until the exit predicate
// holds, ctrl+c is pressed (only without a predicate), or input ends. It
// returns the final state. The terminal is restored before Run returns on
// every path; a panic in a callback is returned as *CallbackError.
func Run[S comparable](state S, elements *element.Collection[S], opts Options[S]) (S, error) {
	if elements == nil {
		return state, ErrNoElements
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = DiscardLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	log := opts.Logger.With("run", uuid.NewString())

	b := opts.Backend
	if b == nil {
		t, err := backend.NewTerminal()
		if err != nil {
			return state, &InitError{Component: "terminal", Err: err}
		}
		b = t
	}

	r := &runner[S]{
		opts:     opts,
		log:      log,
		backend:  b,
		guard:    newTerminalGuard(b, log),
		listener: dispatcher.New(elements),
		metrics:  opts.Metrics,
		state:    state,
	}
	log.Info("run starting", "tick_rate", opts.TickRate, "elements", elements.Len(), "exit_predicate", opts.Exit != nil)
	return r.run()
}

type runner[S comparable] struct {
	opts     Options[S]
	log      *clog.Logger
	backend  backend.Backend
	guard    *terminalGuard
	painter  *renderer.Painter
	listener *dispatcher.Listener[S]
	metrics  *Metrics

	state  S
	tick   int
	phase  string
	status runState
}

func (r *runner[S]) transition(to runState) {
	r.log.Debug("run state", "from", r.status, "to", to)
	r.status = to
}

func (r *runner[S]) run() (final S, err error) {
	r.status = stateInitializing
	r.log.Debug("run state", "to", r.status)

	if err := r.guard.acquire(); err != nil {
		r.log.Error("terminal setup failed", "err", err)
		r.transition(stateTerminated)
		return r.state, err
	}

	done := make(chan struct{})
	reason := "unknown"
	defer func() {
		rec := recover()
		var stack []byte
		if rec != nil {
			stack = debug.Stack()
			reason = "callback panic"
		}
		close(done)
		if r.status != stateExiting {
			r.transition(stateExiting)
		}
		r.guard.release()

		if rec != nil {
			err = &CallbackError{Phase: r.phase, Value: rec, Stack: stack}
			r.log.Error("callback panicked", "phase", r.phase, "panic", rec)
		}
		m := r.metrics.Snapshot()
		r.log.Info("run finished", "reason", reason, "ticks", r.tick, "renders", m.Renders,
			"keys", m.Keys, "moves", m.Moves, "clicks", m.Clicks)
		r.log.Debug("dispatch counts", "phases", r.listener.Stats().Snapshot())
		r.transition(stateTerminated)
		final = r.state
	}()

	r.painter = renderer.NewPainter(r.backend)
	r.painter.Clear()
	events := startInputPolling(r.backend, done)
	r.render()
	r.painter.Flush()
	r.transition(stateRunning)

	reason = r.loop(events)
	r.transition(stateExiting)
	return r.state, nil
}

// loop runs iterations until something ends the run, and returns why.
func (r *runner[S]) loop(events <-chan backend.Event) string {
	timer := time.NewTimer(r.opts.TickRate)
	defer timer.Stop()

	for {
		before := r.state
		r.metrics.recordTick()
		r.dispatch(dispatcher.PhaseLoop, event.Data{Tick: r.tick, Frame: r.painter.Frame()})
		exit := r.shouldExit()
		r.renderIfChanged(before)
		r.painter.Flush()
		if exit {
			return "exit predicate"
		}
		r.tick++

		timer.Reset(r.opts.TickRate)
		select {
		case <-timer.C:
			continue
		case ev, ok := <-events:
			timer.Stop()
			if !ok {
				return "end of input"
			}
			if reason, stop := r.handle(ev); stop {
				return reason
			}
		}
	}
}

// handle dispatches one input event and reports whether the run should end.
func (r *runner[S]) handle(ev backend.Event) (string, bool) {
	switch ev.Type {
	case backend.EventKey:
		if r.opts.Exit == nil && key.IsInterrupt(ev) {
			return "interrupt", true
		}
		name, ok := key.Name(ev)
		if !ok {
			r.metrics.recordIgnored()
			return "", false
		}
		r.metrics.recordKey()
		r.interactive(dispatcher.PhaseKeypress, event.Data{
			Key:       name,
			Modifiers: key.ModifierNames(ev.Mod),
		})

	case backend.EventMouse:
		var p dispatcher.Phase
		switch mouse.Classify(ev.MouseButton, ev.MouseAction) {
		case mouse.KindMove:
			r.metrics.recordMove()
			p = dispatcher.PhaseMove
		case mouse.KindClick:
			r.metrics.recordClick()
			p = dispatcher.PhaseClick
		default:
			r.metrics.recordIgnored()
			return "", false
		}
		r.interactive(p, event.Data{
			X:           ev.MouseX,
			Y:           ev.MouseY,
			HasPosition: true,
			Modifiers:   key.ModifierNames(ev.Mod),
		})

	case backend.EventError:
		r.log.Warn("input failed", "err", ev.Err)
		return "input error", true

	default:
		r.metrics.recordIgnored()
	}
	return "", false
}

// interactive runs one event phase followed by its render check and flush.
func (r *runner[S]) interactive(p dispatcher.Phase, ev event.Data) {
	before := r.state
	ev.Tick = r.tick
	ev.Frame = r.painter.Frame()
	r.dispatch(p, ev)
	r.renderIfChanged(before)
	r.painter.Flush()
}

func (r *runner[S]) dispatch(p dispatcher.Phase, ev event.Data) {
	r.phase = p.String()
	r.listener.Dispatch(p, &r.state, ev)
}

func (r *runner[S]) shouldExit() bool {
	if r.opts.Exit == nil {
		return false
	}
	r.phase = phaseExit
	return r.opts.Exit(r.state)
}

func (r *runner[S]) renderIfChanged(before S) {
	if r.state != before {
		r.render()
	}
}

func (r *runner[S]) render() {
	start := time.Now()
	r.phase = dispatcher.PhaseState.String()
	r.listener.State(r.state, r.painter.Frame())
	r.metrics.recordRender(time.Since(start))
}
