package universe

import (
	"errors"
	"time"
)

//ErrUnknownTemplate is returned when settling with a template which was never added
var ErrUnknownTemplate = errors.New("unknown template")

//Options represents the Universe's configurable options
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration //bounded wait for input between ticks
	MaxSteps        int           //0 means unlimited
	StopWhenSettled bool          //finish on the first tick without movement
	Engine          string
	Advanced        map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	Particles     int
	Moved         int
	Settled       bool
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display the simulation status
type Viewer interface {
	Refresh()
	Register(u *Universe)
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//default options
const (
	DefPollInterval = time.Millisecond * 16
	DefMaxSteps     = 0
	DefWidth        = 80
	DefHeight       = 50
	DefEngine       = "rtl"
)

var DefaultUniverseOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefPollInterval,
	MaxSteps: DefMaxSteps,
	Engine:   DefEngine,
}

//Engines maps the engine name to the fall rule implementation
//engines differ only in the column scan order, the tie-break is always left first
var Engines = map[string]func(g *Grid) int{
	"rtl": Advance,
	"ltr": AdvanceLeftToRight,
}
