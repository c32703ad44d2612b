package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("indentation follows the cursor", func(t *testing.T) {
		w := NewWriter(4)
		w.Line("def f():")
		w.Indented(func() {
			w.Line("if x:")
			w.Indented(func() {
				w.Line("return 1")
			})
			w.Line("return 0")
		})
		require.Equal(t, []string{
			"def f():",
			"    if x:",
			"        return 1",
			"    return 0",
		}, w.Lines())
	})

	t.Run("custom indent size", func(t *testing.T) {
		w := NewWriter(2)
		w.Indented(func() {
			w.Line("x")
		})
		require.Equal(t, []string{"  x"}, w.Lines())
	})

	t.Run("non-positive size falls back to default", func(t *testing.T) {
		w := NewWriter(0)
		w.Indented(func() {
			w.Line("x")
		})
		require.Equal(t, []string{strings.Repeat(" ", DefaultIndentSize) + "x"}, w.Lines())
	})

	t.Run("linef formats", func(t *testing.T) {
		w := NewWriter(4)
		w.Linef("x = %d", 7)
		require.Equal(t, []string{"x = 7"}, w.Lines())
	})

	t.Run("blanks", func(t *testing.T) {
		w := NewWriter(4)
		w.Line("a")
		w.Blanks(2)
		w.Line("b")
		require.Equal(t, []string{"a", "", "", "b"}, w.Lines())
	})

	t.Run("indented restores the level", func(t *testing.T) {
		w := NewWriter(4)
		w.Indented(func() {
			w.Indented(func() {})
			require.Equal(t, 1, w.Level())
		})
		require.Zero(t, w.Level())
	})
}

func TestSanitizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "miners", want: "miners"},
		{in: "My Simulation.aasm", want: "my_simulation_aasm"},
		{in: "__x__", want: "x"},
		{in: "a--b", want: "a_b"},
		{in: "ŻÓŁĆ", want: "output"},
		{in: "", want: "output"},
		{in: "A1_b2", want: "a1_b2"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SanitizeToken(tc.in, "output"), "input %q", tc.in)
	}
}
