package codegen

import (
	"fmt"
	"strings"
)

// DefaultIndentSize is the emitted-code indentation width used when the
// caller does not override it.
const DefaultIndentSize = 4

// Writer accumulates emitted lines under an indentation cursor. Indentation
// follows a stack discipline: Indented runs its body one level deeper and
// restores the level afterwards, so emission helpers can never unbalance the
// cursor.
type Writer struct {
	indentSize int
	level      int
	lines      []string
}

// NewWriter returns a writer emitting indentSize spaces per level. A
// non-positive size falls back to DefaultIndentSize.
func NewWriter(indentSize int) *Writer {
	if indentSize <= 0 {
		indentSize = DefaultIndentSize
	}
	return &Writer{indentSize: indentSize}
}

// Line appends one line at the current indentation level.
func (w *Writer) Line(text string) {
	w.lines = append(w.lines, strings.Repeat(" ", w.indentSize*w.level)+text)
}

// Linef appends one formatted line at the current indentation level.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank appends an empty line.
func (w *Writer) Blank() {
	w.lines = append(w.lines, "")
}

// Blanks appends n empty lines.
func (w *Writer) Blanks(n int) {
	for i := 0; i < n; i++ {
		w.Blank()
	}
}

// Indented runs body with the indentation level one deeper.
func (w *Writer) Indented(body func()) {
	w.level++
	body()
	w.level--
}

// Level returns the current indentation level.
func (w *Writer) Level() int { return w.level }

// Lines returns the accumulated lines, without trailing newlines.
func (w *Writer) Lines() []string { return w.lines }
