package universe

//DefaultTemplates returns the built-in seeding templates sized for the given field
func DefaultTemplates(width int, height int) []Template {
	return []Template{
		{
			"single",
			"one grain dropped from the upper left",
			[][]int{{3, 8}},
		},
		{
			"pyramid",
			"a block of sand hanging in the middle, collapses into a heap",
			block(width/2-width/8, 0, width/4, height/4),
		},
		{
			"rain",
			"every other column of the top row",
			rain(width),
		},
	}
}

func block(x0 int, y0 int, w int, h int) [][]int {
	vc := make([][]int, 0, w*h)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			vc = append(vc, []int{x, y})
		}
	}
	return vc
}

func rain(width int) [][]int {
	vc := make([][]int, 0, width/2+1)
	for x := 0; x < width; x += 2 {
		vc = append(vc, []int{x, 0})
	}
	return vc
}
