package universe

//ScanOrder is the column direction used inside a row while applying the fall rule
type ScanOrder int

const (
	ScanRightToLeft ScanOrder = iota
	ScanLeftToRight
)

//Advance applies one gravity step to every particle, scanning columns right to left
//returns the number of particles moved
func Advance(g *Grid) int {
	return advance(g, ScanRightToLeft)
}

//AdvanceLeftToRight is Advance with the increasing column order
func AdvanceLeftToRight(g *Grid) int {
	return advance(g, ScanLeftToRight)
}

//advance walks the rows bottom up, skipping the last row which never moves
//a particle landing in row y+1 is never revisited, that row is already processed
func advance(g *Grid, order ScanOrder) (moved int) {
	w, h := g.area.Width, g.area.Height
	e := g.area.Entities
	for y := h - 2; y >= 0; y-- {
		below := e[y+1]
		row := e[y]
		for i := 0; i < w; i++ {
			x := i
			if order == ScanRightToLeft {
				x = w - 1 - i
			}
			if !row[x] {
				continue
			}
			//straight down, then below-left, then below-right
			nx := -1
			switch {
			case !bool(below[x]):
				nx = x
			case x > 0 && !bool(below[x-1]):
				nx = x - 1
			case x < w-1 && !bool(below[x+1]):
				nx = x + 1
			}
			if nx < 0 {
				continue
			}
			row[x] = false
			below[nx] = true
			moved++
		}
	}
	return
}
