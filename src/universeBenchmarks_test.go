package main

import (
	"bytes"
	"io"
	"sandfall/src/universe"
	"strings"
	"testing"
	"time"
)

func newHeadlessOptions(render string, frames bool) (*EnvOptions, *universe.Options) {
	o := universe.DefaultUniverseOptions
	o.Interval = 0
	o.Width = 60
	o.Height = 40
	eo := &EnvOptions{headless: true, frames: frames, template: "pyramid", render: render}
	return eo, &o
}

func TestRun_HeadlessSettles(t *testing.T) {
	eo, uo := newHeadlessOptions("full", false)
	var out bytes.Buffer
	if err := run(eo, uo, &out, io.Discard); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "Finished:") || !strings.Contains(s, "settled") {
		t.Fatalf("unexpected report:\n%v", s)
	}
	if uo.MaxSteps != DefHeadlessMaxSteps {
		t.Fatalf("expected the headless step limit, got %v", uo.MaxSteps)
	}
}

func TestRun_HeadlessFrames(t *testing.T) {
	eo, uo := newHeadlessOptions("diff", true)
	uo.Interval = time.Microsecond
	uo.MaxSteps = 5
	var out, report bytes.Buffer
	if err := run(eo, uo, &out, &report); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\x1b[2J") {
		t.Fatalf("frames must start with a clear, got %q", out.String())
	}
	if !strings.Contains(report.String(), "Last iteration") {
		t.Fatalf("report must go to the second writer:\n%v", report.String())
	}
}

func TestRun_Errors(t *testing.T) {
	eo, uo := newHeadlessOptions("full", false)
	uo.Width = 0
	if err := run(eo, uo, io.Discard, io.Discard); err == nil {
		t.Error("expected an error for an empty field")
	}
	eo, uo = newHeadlessOptions("full", false)
	eo.template = "castle"
	if err := run(eo, uo, io.Discard, io.Discard); err == nil {
		t.Error("expected an error for an unknown template")
	}
}

func BenchmarkHeadless_Run(b *testing.B) {
	for _, r := range names(renderers) {
		b.Run(r, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				eo, uo := newHeadlessOptions(r, true)
				if err := run(eo, uo, io.Discard, io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
