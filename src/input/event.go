package input

type EventKind int

const (
	EventOther EventKind = iota
	EventKeyPress
	EventPointerPress
	EventPointerDrag
	EventResize
)

type Key int

const (
	KeyOther Key = iota
	KeyRune
	KeyEscape
	KeyCtrlC
)

type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

//Event is one input event of the terminal, independent from the terminal library
//Column and Row are in surface character cells, Rune is set for KeyRune only
type Event struct {
	Kind   EventKind
	Key    Key
	Rune   rune
	Column int
	Row    int
	Button Button
}

func KeyPress(k Key, r rune) Event {
	return Event{Kind: EventKeyPress, Key: k, Rune: r}
}

func PointerPress(col int, row int, b Button) Event {
	return Event{Kind: EventPointerPress, Column: col, Row: row, Button: b}
}

func PointerDrag(col int, row int, b Button) Event {
	return Event{Kind: EventPointerDrag, Column: col, Row: row, Button: b}
}
