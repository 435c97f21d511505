package view

//Color is the background color of the glyphs written to the Surface
type Color int

const (
	ColorDefault Color = iota
	ColorSand
)

//Surface is the character-cell drawing target addressed in columns and rows
//drawing may be buffered, nothing is guaranteed visible before Flush returns
type Surface interface {
	MoveTo(col int, row int) error
	Clear() error
	SetBackground(c Color) error
	WriteText(s string) error
	Flush() error
}
