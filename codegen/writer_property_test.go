package codegen

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestWriterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("the cursor always returns to its starting level", prop.ForAll(
		func(depths []uint8) bool {
			w := NewWriter(4)
			for _, d := range depths {
				var emit func(depth int)
				emit = func(depth int) {
					if depth == 0 {
						w.Line("x")
						return
					}
					w.Indented(func() {
						emit(depth - 1)
					})
				}
				emit(int(d % 8))
			}
			return w.Level() == 0
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("every line is indented by level times the indent size", prop.ForAll(
		func(depth uint8, size uint8) bool {
			indent := int(size%8) + 1
			w := NewWriter(indent)
			n := int(depth % 10)
			var emit func(remaining int)
			emit = func(remaining int) {
				if remaining == 0 {
					w.Line("x")
					return
				}
				w.Indented(func() {
					emit(remaining - 1)
				})
			}
			emit(n)
			line := w.Lines()[0]
			return line == strings.Repeat(" ", indent*n)+"x"
		},
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.Property("lines are emitted in order", prop.ForAll(
		func(texts []string) bool {
			w := NewWriter(1)
			for _, text := range texts {
				w.Line(text)
			}
			lines := w.Lines()
			if len(lines) != len(texts) {
				return false
			}
			for i, text := range texts {
				if lines[i] != text {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("blank lines carry no indentation", prop.ForAll(
		func(depth uint8) bool {
			w := NewWriter(4)
			n := int(depth % 10)
			var emit func(remaining int)
			emit = func(remaining int) {
				if remaining == 0 {
					w.Blank()
					return
				}
				w.Indented(func() {
					emit(remaining - 1)
				})
			}
			emit(n)
			return w.Lines()[0] == ""
		},
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
