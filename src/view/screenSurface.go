package view

import (
	"github.com/gdamore/tcell/v2"
)

//RgbSand is the background of the occupied cells on the terminal screen
var RgbSand = tcell.NewRGBColor(214, 174, 128)

var screenColors = map[Color]tcell.Color{
	ColorDefault: tcell.ColorDefault,
	ColorSand:    RgbSand,
}

//ScreenSurface draws to a tcell screen
type ScreenSurface struct {
	screen tcell.Screen
	x, y   int
	style  tcell.Style
}

func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen, style: tcell.StyleDefault}
}

func (s *ScreenSurface) MoveTo(col int, row int) error {
	s.x, s.y = col, row
	return nil
}

func (s *ScreenSurface) Clear() error {
	s.screen.Clear()
	return nil
}

func (s *ScreenSurface) SetBackground(c Color) error {
	s.style = tcell.StyleDefault.Background(screenColors[c])
	return nil
}

//WriteText writes the runes from the cursor position, cells past the screen edge are dropped by tcell
func (s *ScreenSurface) WriteText(text string) error {
	for _, r := range text {
		s.screen.SetContent(s.x, s.y, r, nil, s.style)
		s.x++
	}
	return nil
}

func (s *ScreenSurface) Flush() error {
	s.screen.Show()
	return nil
}
