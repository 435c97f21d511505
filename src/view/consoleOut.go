package view

import (
	"fmt"
	"io"
	"sandfall/src/universe"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"
)

//ConsoleOut reports the simulation progress as plain lines, used in headless mode
type ConsoleOut struct {
	u         *universe.Universe
	w         io.Writer
	startTime time.Time
	every     int
}

func NewConsoleOut(w io.Writer) *ConsoleOut {
	return &ConsoleOut{w: w, every: 10}
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	if st.IterationNum > 0 && st.IterationNum%c.every == 0 {
		fmt.Fprintf(c.w, "  Iterations done: %v, moved: %v\n", st.IterationNum, st.Moved)
	}
}

func (c *ConsoleOut) Register(u *universe.Universe) {
	c.u = u
	o := c.u.Options()
	fmt.Fprintln(c.w, "Running configuration:")
	fmt.Fprintf(c.w, "  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Fprintf(c.w, "  Interval: %v\n", o.Interval)
	fmt.Fprintf(c.w, "  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

//Finish prints the summary of the run
func (c *ConsoleOut) Finish() {
	st := c.u.Status()
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	state := aurora.Colorize("stopped", aurora.RedFg).String()
	if st.Settled {
		state = aurora.Colorize("settled", aurora.GreenFg).String()
	}
	resultData := map[string]interface{}{
		"Last iteration": st.IterationNum,
		"Total time":     totalTime,
		"Particles":      st.Particles,
		"State":          state,
	}
	fmt.Fprintln(c.w, "\nFinished:")
	c.printHashData(resultData)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", aurora.Colorize(propName, aurora.CyanFg), d[propName])
	}
}
