package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

//Source delivers the input events
//Poll waits at most timeout for the next event, a zero timeout does not wait at all
type Source interface {
	Poll(timeout time.Duration) (Event, bool)
}

//ScreenSource reads the events of a tcell screen
//a pump goroutine feeds the queue, the events are converted on the polling goroutine
//once the screen is finalized or the source is closed, Poll behaves as Idle
type ScreenSource struct {
	events      chan tcell.Event
	done        chan struct{}
	sync        func()
	exhausted   bool
	primaryDown bool
}

func NewScreenSource(screen tcell.Screen) *ScreenSource {
	s := newScreenSource(make(chan tcell.Event, 100), screen.Sync)
	go func() {
		for {
			ev := screen.PollEvent()
			//nil is returned once the screen is finalized
			if ev == nil {
				close(s.events)
				return
			}
			select {
			case s.events <- ev:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newScreenSource(events chan tcell.Event, sync func()) *ScreenSource {
	return &ScreenSource{events: events, done: make(chan struct{}), sync: sync}
}

//Close releases the pump goroutine, it must be called before the screen is finalized
func (s *ScreenSource) Close() {
	if !s.exhausted {
		s.exhausted = true
		close(s.done)
	}
}

func (s *ScreenSource) Poll(timeout time.Duration) (Event, bool) {
	if s.exhausted {
		return Idle{}.Poll(timeout)
	}
	if timeout <= 0 {
		select {
		case ev, ok := <-s.events:
			return s.received(ev, ok, time.Time{})
		default:
			return Event{}, false
		}
	}
	deadline := time.Now().Add(timeout)
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev, ok := <-s.events:
		return s.received(ev, ok, deadline)
	case <-timer.C:
		return Event{}, false
	}
}

//received converts the queued event, a closed queue exhausts the source and waits out the deadline
func (s *ScreenSource) received(ev tcell.Event, ok bool, deadline time.Time) (Event, bool) {
	if !ok {
		s.Close()
		return Idle{}.Poll(time.Until(deadline))
	}
	return s.convert(ev), true
}

//convert maps the tcell event
//tcell reports the held buttons only, so the primary button report is a press when the button was up before
func (s *ScreenSource) convert(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return KeyPress(KeyRune, ev.Rune())
		case tcell.KeyEscape:
			return KeyPress(KeyEscape, 0)
		case tcell.KeyCtrlC:
			return KeyPress(KeyCtrlC, 0)
		}
		return KeyPress(KeyOther, 0)
	case *tcell.EventResize:
		if s.sync != nil {
			s.sync()
		}
		return Event{Kind: EventResize}
	case *tcell.EventMouse:
		col, row := ev.Position()
		b := ev.Buttons()
		if b&tcell.Button1 != 0 {
			if s.primaryDown {
				return PointerDrag(col, row, ButtonPrimary)
			}
			s.primaryDown = true
			return PointerPress(col, row, ButtonPrimary)
		}
		s.primaryDown = false
		switch {
		case b&tcell.Button2 != 0:
			return PointerPress(col, row, ButtonSecondary)
		case b&tcell.Button3 != 0:
			return PointerPress(col, row, ButtonMiddle)
		}
	}
	return Event{Kind: EventOther}
}

//Idle is the Source without events, used when no terminal is attached
type Idle struct{}

func (Idle) Poll(timeout time.Duration) (Event, bool) {
	if timeout > 0 {
		time.Sleep(timeout)
	}
	return Event{}, false
}
