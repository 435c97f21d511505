package universe

import (
	"errors"
	"fmt"
)

//ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height
var ErrInvalidDimensions = errors.New("grid width and height must be at least 1")

type Cell bool

//Area is a snapshot of the grid cells
//Entities is indexed as Entities[y][x], every row has exactly Width entries
type Area struct {
	Width    int
	Height   int
	Entities [][]Cell
}

//Grid owns the occupancy matrix of the sand field
//x is the column (0 is leftmost), y is the row (0 is topmost, gravity pulls toward increasing y)
type Grid struct {
	area Area
}

//NewGrid creates the empty grid with fixed dimensions
func NewGrid(width int, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new grid %vx%v: %w", width, height, ErrInvalidDimensions)
	}
	return &Grid{area: createArea(width, height)}, nil
}

//Width returns the number of columns
func (g *Grid) Width() int {
	return g.area.Width
}

//Height returns the number of rows
func (g *Grid) Height() int {
	return g.area.Height
}

//Toggle sets the cell at x,y occupied, returns true when the cell was empty before
//coordinates outside the grid are ignored, the pointer may report positions beyond the field
func (g *Grid) Toggle(x int, y int) bool {
	if !g.inBounds(x, y) || bool(g.area.Entities[y][x]) {
		return false
	}
	g.area.Entities[y][x] = true
	return true
}

//Get returns the occupancy of the cell at x,y, cells outside the grid read as empty
func (g *Grid) Get(x int, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return bool(g.area.Entities[y][x])
}

//Particles counts the occupied cells
func (g *Grid) Particles() int {
	n := 0
	g.walk(func(x int, y int, c Cell) {
		if c {
			n++
		}
	})
	return n
}

//Clear empties every cell
func (g *Grid) Clear() {
	for y := range g.area.Entities {
		row := g.area.Entities[y]
		for x := range row {
			row[x] = false
		}
	}
}

//Area returns a copy of the current cells
func (g *Grid) Area() Area {
	a := createArea(g.area.Width, g.area.Height)
	for y := range g.area.Entities {
		copy(a.Entities[y], g.area.Entities[y])
	}
	return a
}

//Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(o *Grid) bool {
	if g.area.Width != o.area.Width || g.area.Height != o.area.Height {
		return false
	}
	for y := range g.area.Entities {
		for x := range g.area.Entities[y] {
			if g.area.Entities[y][x] != o.area.Entities[y][x] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) inBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < g.area.Width && y < g.area.Height
}

//walk walks the entire grid and calls the cb function for each cell
func (g *Grid) walk(cb func(x int, y int, c Cell)) {
	for y := range g.area.Entities {
		for x := range g.area.Entities[y] {
			cb(x, y, g.area.Entities[y][x])
		}
	}
}

//createArea allocates the area rows over one contiguous buffer
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}
