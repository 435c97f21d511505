package simulation

import (
	"fmt"
	"io"
	"log"
	"sandfall/src/input"
	"sandfall/src/universe"
	"sandfall/src/view"
	"time"
)

//State is the loop running state
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

//Loop drives the simulation: poll input, apply commands, advance one tick, render
//it owns the universe exclusively and runs on the caller's goroutine
type Loop struct {
	u               *universe.Universe
	source          input.Source
	renderer        view.Renderer
	timeout         time.Duration
	maxSteps        int
	stopWhenSettled bool
	state           State
	logger          *log.Logger
}

//NewLoop creates the loop, the poll timeout and the stop conditions are taken from the universe options
//renderer may be nil when nothing is drawn
func NewLoop(u *universe.Universe, source input.Source, renderer view.Renderer) *Loop {
	o := u.Options()
	return &Loop{
		u:               u,
		source:          source,
		renderer:        renderer,
		timeout:         o.Interval,
		maxSteps:        o.MaxSteps,
		stopWhenSettled: o.StopWhenSettled,
		state:           Running,
		logger:          log.New(io.Discard, "", 0),
	}
}

func (l *Loop) SetLogger(logger *log.Logger) {
	l.logger = logger
}

func (l *Loop) State() State {
	return l.state
}

//Run loops until the quit command or a stop condition, a render failure stops the loop and is returned
func (l *Loop) Run() error {
	if l.state == Stopped {
		return nil
	}
	//the seed is visible before the first poll
	if err := l.render(); err != nil {
		l.stop("render failed")
		return err
	}
	for l.state == Running {
		if err := l.tick(); err != nil {
			l.stop("render failed")
			return err
		}
	}
	return nil
}

func (l *Loop) tick() error {
	ev, ok := l.source.Poll(l.timeout)
	for ok {
		if ev.Kind == input.EventResize {
			l.invalidate()
		}
		if !l.apply(input.Translate(ev)) {
			return nil
		}
		//events queued meanwhile are applied in the same tick
		ev, ok = l.source.Poll(0)
	}

	st := l.u.Step()
	if err := l.render(); err != nil {
		return err
	}

	if l.maxSteps > 0 && st.IterationNum >= l.maxSteps {
		l.stop(fmt.Sprintf("max steps %v reached", l.maxSteps))
	} else if l.stopWhenSettled && st.Settled {
		l.stop(fmt.Sprintf("settled at step %v", st.IterationNum))
	}
	return nil
}

//apply executes the command, returns false when the loop has to stop
func (l *Loop) apply(c input.Command) bool {
	switch c.Kind {
	case input.CommandToggle:
		l.u.Toggle(c.X, c.Y)
	case input.CommandQuit:
		l.stop("quit")
		return false
	}
	return true
}

func (l *Loop) render() error {
	if l.renderer == nil {
		return nil
	}
	if err := l.renderer.Render(l.u.Grid()); err != nil {
		return fmt.Errorf("render step %v: %w", l.u.Status().IterationNum, err)
	}
	return nil
}

//invalidate forces a full redraw of the next frame on renderers which draw incrementally
func (l *Loop) invalidate() {
	if r, ok := l.renderer.(interface{ Invalidate() }); ok {
		r.Invalidate()
	}
}

func (l *Loop) stop(reason string) {
	l.state = Stopped
	l.logger.Printf("loop stopped: %v", reason)
}
