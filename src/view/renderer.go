package view

import (
	"fmt"
	"sandfall/src/universe"
)

//GlyphWidth is the number of columns one cell takes on the surface, two columns make it roughly square
const GlyphWidth = 2

const glyph = "  "

//Renderer projects the grid onto a Surface, one call per tick
type Renderer interface {
	Render(g *universe.Grid) error
}

//FullRenderer clears the surface and paints every particle on each frame
type FullRenderer struct {
	s Surface
}

func NewFullRenderer(s Surface) *FullRenderer {
	return &FullRenderer{s: s}
}

func (r *FullRenderer) Render(g *universe.Grid) error {
	if err := r.s.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := r.s.SetBackground(ColorSand); err != nil {
		return fmt.Errorf("set background: %w", err)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.Get(x, y) {
				continue
			}
			if err := paint(r.s, x, y); err != nil {
				return err
			}
		}
	}
	return finish(r.s)
}

//DiffRenderer repaints only the cells changed since the previous flushed frame
//the first frame, and any frame after a failure, is a full redraw
type DiffRenderer struct {
	s    Surface
	prev *universe.Area
}

func NewDiffRenderer(s Surface) *DiffRenderer {
	return &DiffRenderer{s: s}
}

//Invalidate makes the next frame a full redraw, the surface no longer matches the previous frame
func (r *DiffRenderer) Invalidate() {
	r.prev = nil
}

func (r *DiffRenderer) Render(g *universe.Grid) error {
	a := g.Area()
	prev := r.prev
	r.prev = nil
	if prev == nil || prev.Width != a.Width || prev.Height != a.Height {
		if err := NewFullRenderer(r.s).Render(g); err != nil {
			return err
		}
		r.prev = &a
		return nil
	}

	//cleared cells first, then the occupied ones, to switch the background twice at most
	for _, c := range []universe.Cell{false, true} {
		bg := ColorDefault
		if c {
			bg = ColorSand
		}
		if err := r.s.SetBackground(bg); err != nil {
			return fmt.Errorf("set background: %w", err)
		}
		for y, row := range a.Entities {
			for x, e := range row {
				if e != c || prev.Entities[y][x] == e {
					continue
				}
				if err := paint(r.s, x, y); err != nil {
					return err
				}
			}
		}
	}
	if err := finish(r.s); err != nil {
		return err
	}
	r.prev = &a
	return nil
}

//paint writes one glyph block at the cell position with the current background
func paint(s Surface, x int, y int) error {
	if err := s.MoveTo(x*GlyphWidth, y); err != nil {
		return fmt.Errorf("move to %v,%v: %w", x, y, err)
	}
	if err := s.WriteText(glyph); err != nil {
		return fmt.Errorf("paint %v,%v: %w", x, y, err)
	}
	return nil
}

func finish(s Surface) error {
	if err := s.SetBackground(ColorDefault); err != nil {
		return fmt.Errorf("reset background: %w", err)
	}
	if err := s.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
