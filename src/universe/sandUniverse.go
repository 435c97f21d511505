package universe

import (
	"fmt"
	"math/rand"
	"time"
)

//Universe owns the sand grid and the tick counters
//it is not safe for concurrent use, the simulation loop is its only owner
type Universe struct {
	options       Options
	grid          *Grid
	status        Status
	views         []Viewer
	templates     map[string]Template
	nextIteration func(g *Grid) int
}

//NewUniverse creates the Universe instance with an empty grid
func NewUniverse(o *Options) (*Universe, error) {
	if o == nil {
		d := DefaultUniverseOptions
		o = &d
	}
	if o.Engine == "" {
		o.Engine = DefEngine
	}
	next, ok := Engines[o.Engine]
	if !ok {
		return nil, fmt.Errorf("new universe: unknown engine %q", o.Engine)
	}
	g, err := NewGrid(o.Width, o.Height)
	if err != nil {
		return nil, err
	}
	o.Advanced = make(map[string]interface{})
	o.Advanced["engine"] = o.Engine

	u := Universe{
		options:       *o,
		grid:          g,
		templates:     map[string]Template{},
		nextIteration: next,
	}
	for _, t := range DefaultTemplates(o.Width, o.Height) {
		u.AddTemplate(t)
	}
	return &u, nil
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *Universe) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

//Templates returns the names of the known templates
func (u *Universe) Templates() []string {
	names := make([]string, 0, len(u.templates))
	for k := range u.templates {
		names = append(names, k)
	}
	return names
}

//SettleTemplate populates the universe with the seeding template
func (u *Universe) SettleTemplate(name string) error {
	tmpl, ok := u.templates[name]
	if !ok {
		return fmt.Errorf("settle %q: %w", name, ErrUnknownTemplate)
	}
	u.Settle(tmpl.Coordinates)
	return nil
}

//Settle settles the universe with data
//vc - array of x,y coordinates, the coordinates outside the grid are skipped
func (u *Universe) Settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		u.grid.Toggle(v[0], v[1])
	}
	u.status.Particles = u.grid.Particles()
	u.refreshView()
}

//SettleWithRandomData occupies every cell with the probability density
func (u *Universe) SettleWithRandomData(density float64, rnd *rand.Rand) {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	u.grid.walk(func(x int, y int, _ Cell) {
		if rnd.Float64() < density {
			u.grid.Toggle(x, y)
		}
	})
	u.status.Particles = u.grid.Particles()
	u.refreshView()
}

//Toggle occupies the cell at x,y, out of range coordinates are ignored
func (u *Universe) Toggle(x int, y int) {
	if u.grid.Toggle(x, y) {
		u.status.Particles++
	}
}

//Step advances the simulation by exactly one tick
func (u *Universe) Step() Status {
	start := time.Now()
	moved := u.nextIteration(u.grid)
	u.status.IterationNum++
	u.status.Moved = moved
	u.status.Settled = moved == 0
	u.status.IterationTime = time.Since(start)
	u.refreshView()
	return u.status
}

//Clear empties the grid and resets all counters
func (u *Universe) Clear() {
	u.grid.Clear()
	u.status = Status{}
	u.refreshView()
}

//Grid returns the grid, callers outside the simulation loop must treat it as read only
func (u *Universe) Grid() *Grid {
	return u.grid
}

//Status returns current universe status represented by Status struct
func (u *Universe) Status() Status {
	return u.status
}

//Options returns current universe configuration represented by Options struct
func (u *Universe) Options() Options {
	return u.options
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *Universe) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//refreshView calls Refresh event for all registered views
func (u *Universe) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
