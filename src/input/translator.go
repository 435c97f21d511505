package input

import "fmt"

type CommandKind int

const (
	CommandIgnore CommandKind = iota
	CommandToggle
	CommandQuit
)

//Command is the translated event, X and Y are grid coordinates for CommandToggle
type Command struct {
	Kind CommandKind
	X    int
	Y    int
}

func (c Command) String() string {
	switch c.Kind {
	case CommandToggle:
		return fmt.Sprintf("toggle(%v,%v)", c.X, c.Y)
	case CommandQuit:
		return "quit"
	}
	return "ignore"
}

//glyphWidth is the number of surface columns per grid cell
const glyphWidth = 2

var quitRunes = map[rune]bool{'q': true, 'Q': true}

//Translate maps the event to the command
//coordinates are not validated, the grid ignores the cells outside the field
func Translate(ev Event) Command {
	switch ev.Kind {
	case EventPointerPress, EventPointerDrag:
		if ev.Button != ButtonPrimary {
			break
		}
		return Command{Kind: CommandToggle, X: ev.Column / glyphWidth, Y: ev.Row}
	case EventKeyPress:
		if isQuitKey(ev) {
			return Command{Kind: CommandQuit}
		}
	}
	return Command{Kind: CommandIgnore}
}

func isQuitKey(ev Event) bool {
	switch ev.Key {
	case KeyEscape, KeyCtrlC:
		return true
	case KeyRune:
		return quitRunes[ev.Rune]
	}
	return false
}
