package view

import (
	"bufio"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

const (
	escClear  = "\x1b[2J"
	escMoveTo = "\x1b[%d;%dH" //row and column, 1-based
)

var streamColors = map[Color]aurora.Color{
	ColorSand: aurora.YellowBg,
}

//StreamSurface writes ANSI escape sequences to a stream
//it is used for the headless frame dump, where no terminal screen is owned
type StreamSurface struct {
	w  *bufio.Writer
	bg Color
}

func NewStreamSurface(w io.Writer) *StreamSurface {
	return &StreamSurface{w: bufio.NewWriter(w)}
}

func (s *StreamSurface) MoveTo(col int, row int) error {
	_, err := fmt.Fprintf(s.w, escMoveTo, row+1, col+1)
	return err
}

func (s *StreamSurface) Clear() error {
	_, err := s.w.WriteString(escClear)
	return err
}

func (s *StreamSurface) SetBackground(c Color) error {
	s.bg = c
	return nil
}

func (s *StreamSurface) WriteText(text string) error {
	if ac, ok := streamColors[s.bg]; ok {
		text = aurora.Colorize(text, ac).String()
	}
	_, err := s.w.WriteString(text)
	return err
}

func (s *StreamSurface) Flush() error {
	return s.w.Flush()
}
