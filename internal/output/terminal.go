package output

import (
	"bufio"
	"fmt"
	"io"
)

// ANSI colors
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorGray    = "\033[90m"
	ColorWhite   = "\033[97m"

	clearScreen = "\033[H\033[2J"
)

var terminalCells = map[Paint]struct {
	symbol string
	color  string
}{
	PaintEmpty:    {"·", ColorGray},
	PaintExplored: {"o", ColorBlue},
	PaintWall:     {"#", ColorWhite},
	PaintPath:     {"*", ColorMagenta},
	PaintStart:    {"S", ColorGreen},
	PaintTarget:   {"T", ColorRed},
}

// TerminalRenderer draws frames as a character grid. With Clear set each
// frame redraws in place.
type TerminalRenderer struct {
	w       io.Writer
	Clear   bool
	NoColor bool
}

// NewTerminalRenderer creates a renderer writing to w.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: w, Clear: true}
}

// Render implements Renderer.
func (t *TerminalRenderer) Render(frame Frame) error {
	bw := bufio.NewWriter(t.w)
	if t.Clear {
		fmt.Fprint(bw, clearScreen)
	}

	for _, row := range frame.Paints() {
		for col, p := range row {
			if col > 0 {
				bw.WriteByte(' ')
			}
			cell := terminalCells[p]
			if t.NoColor {
				bw.WriteString(cell.symbol)
			} else {
				bw.WriteString(cell.color + cell.symbol + ColorReset)
			}
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "step %d  explored %d  path %d  walls %d\n",
		frame.Step, len(frame.Explored), len(frame.Path), frame.Grid.DynamicWallCount())

	return bw.Flush()
}
