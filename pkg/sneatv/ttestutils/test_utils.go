// Package ttestutils draws primitives on a simulation screen and reads
// the result back as text.
package ttestutils

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TB is the part of testing.TB used here.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

var NewSimulationScreen = tcell.NewSimulationScreen

// NewSimScreen returns an initialized UTF-8 simulation screen of the given
// size, or nil after reporting a failed Init to t.
func NewSimScreen(t TB, width, height int) tcell.Screen {
	t.Helper()
	s := NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
		return nil
	}
	s.SetSize(width, height)
	return s
}

// ReadLine returns row y across the full screen width.
// Cells nothing was drawn to read as spaces.
func ReadLine(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			str = " "
		}
		sb.WriteString(str)
	}
	return sb.String()
}

// ReadScreen returns every row, joined with new lines.
func ReadScreen(screen tcell.Screen) string {
	_, height := screen.Size()
	lines := make([]string, height)
	for y := range lines {
		lines[y] = ReadLine(screen, y)
	}
	return strings.Join(lines, "\n")
}
