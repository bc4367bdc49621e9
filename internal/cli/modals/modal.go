// Package modals holds the two multi-step shipment flows. Each flow renders
// through an injectable reader/writer and shares the drag-to-reposition
// behavior: the modal's horizontal drag offset becomes render indentation.
package modals

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"GeoConsole/internal/cli/ui"
)

const maxIndent = 40

// Modal is the shared frame of the shipment flows: a title, the drag
// position state, and the IO the flow renders through.
type Modal struct {
	Title string
	Drag  ui.Drag
	In    *bufio.Scanner
	Out   io.Writer
}

// printf writes a line shifted right by the modal's drag offset.
func (m *Modal) printf(format string, args ...any) {
	x, _ := m.Drag.Position()
	if x < 0 {
		x = 0
	}
	if x > maxIndent {
		x = maxIndent
	}
	fmt.Fprint(m.Out, strings.Repeat(" ", x))
	fmt.Fprintf(m.Out, format+"\n", args...)
}

// prompt prints a label (indented like the body) and reads one trimmed line.
func (m *Modal) prompt(label string) string {
	x, _ := m.Drag.Position()
	if x < 0 {
		x = 0
	}
	if x > maxIndent {
		x = maxIndent
	}
	fmt.Fprint(m.Out, strings.Repeat(" ", x), label)
	if !m.In.Scan() {
		return ""
	}
	return strings.TrimSpace(m.In.Text())
}
