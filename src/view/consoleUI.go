package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

//ConsoleUI is the interactive terminal: raw mode, alternate screen and mouse capture
//all of them are released by Close
type ConsoleUI struct {
	screen  tcell.Screen
	surface *ScreenSurface
}

func NewConsoleUI() (*ConsoleUI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return newConsoleUI(screen)
}

func newConsoleUI(screen tcell.Screen) (*ConsoleUI, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &ConsoleUI{screen: screen, surface: NewScreenSurface(screen)}, nil
}

//Screen returns the underlying screen, it is the event source of the interactive mode
func (t *ConsoleUI) Screen() tcell.Screen {
	return t.screen
}

func (t *ConsoleUI) Surface() Surface {
	return t.surface
}

//FieldSize returns the grid size which fits the terminal window
func (t *ConsoleUI) FieldSize() (width int, height int) {
	w, h := t.screen.Size()
	return w / GlyphWidth, h
}

func (t *ConsoleUI) Close() {
	t.screen.DisableMouse()
	t.screen.Fini()
}
