package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sandfall/src/input"
	"sandfall/src/simulation"
	"sandfall/src/universe"
	"sandfall/src/view"
	"sort"
	"strings"

	"github.com/integrii/flaggy"
)

//DefHeadlessMaxSteps bounds the headless run when no limit is given
const DefHeadlessMaxSteps = 1000

var (
	renderers = map[string]func(s view.Surface) view.Renderer{
		"full": func(s view.Surface) view.Renderer { return view.NewFullRenderer(s) },
		"diff": func(s view.Surface) view.Renderer { return view.NewDiffRenderer(s) },
	}
)

type EnvOptions struct {
	headless   bool
	frames     bool
	fit        bool
	randomData bool
	density    float64
	template   string
	render     string
	logFile    string
}

func main() {
	eo, uo := initOptions()
	if err := run(eo, uo, os.Stdout, os.Stderr); err != nil {
		log.Fatalln(err)
	}
}

//run builds the universe and the boundary for the chosen mode and runs the loop
//the terminal is restored before run returns
func run(eo *EnvOptions, uo *universe.Options, stdout io.Writer, stderr io.Writer) error {
	logger := log.New(io.Discard, "", log.LstdFlags)
	if eo.logFile != "" {
		f, err := os.OpenFile(eo.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	var (
		ui     *view.ConsoleUI
		source input.Source = input.Idle{}
		err    error
	)
	if !eo.headless {
		ui, err = view.NewConsoleUI()
		if err != nil {
			return err
		}
		defer ui.Close()
		if eo.fit {
			uo.Width, uo.Height = ui.FieldSize()
		}
		ss := input.NewScreenSource(ui.Screen())
		defer ss.Close()
		source = ss
	} else {
		uo.StopWhenSettled = true
		if uo.MaxSteps == 0 {
			uo.MaxSteps = DefHeadlessMaxSteps
		}
		if !eo.frames {
			uo.Interval = 0
		}
	}

	u, err := universe.NewUniverse(uo)
	if err != nil {
		return err
	}
	if eo.randomData {
		u.SettleWithRandomData(eo.density, nil)
	} else if err := u.SettleTemplate(eo.template); err != nil {
		return err
	}

	var renderer view.Renderer
	switch {
	case ui != nil:
		renderer = renderers[eo.render](ui.Surface())
	case eo.frames:
		renderer = renderers[eo.render](view.NewStreamSurface(stdout))
	}

	var out *view.ConsoleOut
	if eo.headless {
		w := stdout
		if eo.frames {
			w = stderr
		}
		out = view.NewConsoleOut(w)
		u.RegisterViewer(out)
		out.Start()
	}

	l := simulation.NewLoop(u, source, renderer)
	l.SetLogger(logger)
	logger.Printf("started %vx%v, engine %v, renderer %v", uo.Width, uo.Height, uo.Engine, eo.render)
	if err := l.Run(); err != nil {
		return err
	}
	if out != nil {
		out.Finish()
	}
	return nil
}

func names[V any](m map[string]V) []string {
	n := make([]string, 0, len(m))
	for k := range m {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultUniverseOptions
	uo = &o
	eo = &EnvOptions{density: 0.2, template: "single", render: "full"}
	flaggy.SetName("sandfall")
	flaggy.SetDescription("Falling sand in the terminal. Click or drag to drop sand, q to quit.")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of the sand field")
	flaggy.Int(&uo.Height, "y", "height", "Height of the sand field")
	flaggy.Bool(&eo.fit, "w", "fit", "Size the sand field to the terminal window")
	flaggy.Duration(&uo.Interval, "i", "interval", "Maximum wait for input between the steps, for example 16ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 is unlimited")
	flaggy.Bool(&eo.headless, "n", "headless", "Run without the terminal UI until the sand settles")
	flaggy.Bool(&eo.frames, "f", "frames", "Stream every frame as ANSI output in headless mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Float64(&eo.density, "d", "density", "Ratio of the cells settled by random data")
	flaggy.String(&eo.template, "t", "template", "Seeding template [single|pyramid|rain]")
	flaggy.String(&uo.Engine, "e", "engine", "Engine to use ["+strings.Join(names(universe.Engines), "|")+"]")
	flaggy.String(&eo.render, "m", "render", "Renderer to use ["+strings.Join(names(renderers), "|")+"]")
	flaggy.String(&eo.logFile, "l", "log", "Append the diagnostic log to the file")

	flaggy.Parse()

	if _, ok := universe.Engines[uo.Engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if _, ok := renderers[eo.render]; !ok {
		flaggy.ShowHelpAndExit("unknown renderer")
	}
	if eo.frames && !eo.headless {
		flaggy.ShowHelpAndExit("frames requires headless mode")
	}

	return
}
