package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agents-assembly/aasm-go/diag"
)

func TestRun_PassThrough(t *testing.T) {
	p := New([]string{"AGENT miner", "EAGENT"})
	lines, err := p.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"AGENT miner", "EAGENT"}, lines)

	origin, directive := p.OriginalLine(2)
	require.Equal(t, 2, origin)
	require.Empty(t, directive)
}

func TestRun_Define(t *testing.T) {
	p := New([]string{
		"%define WEALTH 100",
		"AGENT miner",
		"PRM gold float init WEALTH",
		"EAGENT",
	})
	lines, err := p.Run()
	require.NoError(t, err)
	require.Equal(t, []string{
		"AGENT miner",
		"PRM gold float init 100",
		"EAGENT",
	}, lines)

	// Processed line 2 came from source line 3; the %define line itself is
	// consumed and emits nothing.
	origin, directive := p.OriginalLine(2)
	require.Equal(t, 3, origin)
	require.Empty(t, directive)
}

func TestRun_MacroExpansion(t *testing.T) {
	p := New([]string{
		"%macro wealth_prm NAME VALUE",
		"PRM NAME float init VALUE",
		"%endmacro",
		"AGENT miner",
		"%expand wealth_prm gold 50",
		"%expand wealth_prm silver 80",
		"EAGENT",
	})
	lines, err := p.Run()
	require.NoError(t, err)
	require.Equal(t, []string{
		"AGENT miner",
		"PRM gold float init 50",
		"PRM silver float init 80",
		"EAGENT",
	}, lines)

	t.Run("generated lines map back to the expand directive", func(t *testing.T) {
		origin, directive := p.OriginalLine(2)
		require.Equal(t, 5, origin)
		require.Contains(t, directive, "%expand wealth_prm")
		require.Contains(t, directive, "declared at line 1")

		origin, directive = p.OriginalLine(3)
		require.Equal(t, 6, origin)
		require.Contains(t, directive, "%expand wealth_prm")
	})
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name   string
		lines  []string
		reason string
		line   int
	}{
		{
			name:   "unknown directive",
			lines:  []string{"%frobnicate x"},
			reason: "Unknown preprocessor directive",
			line:   1,
		},
		{
			name:   "define without value",
			lines:  []string{"%define X"},
			reason: "%define requires a name and a value",
			line:   1,
		},
		{
			name:   "missing endmacro",
			lines:  []string{"AGENT a", "%macro m", "PRM x float init 1"},
			reason: "missing %endmacro",
			line:   2,
		},
		{
			name:   "nested macro",
			lines:  []string{"%macro a", "%macro b", "%endmacro"},
			reason: "Nested %macro",
			line:   2,
		},
		{
			name:   "expand of unknown macro",
			lines:  []string{"%expand nope"},
			reason: "Macro nope is not defined",
			line:   1,
		},
		{
			name:   "expand arity mismatch",
			lines:  []string{"%macro m A B", "PRM A float init B", "%endmacro", "%expand m 1"},
			reason: "expects 2 arguments, got 1",
			line:   4,
		},
		{
			name:   "endmacro without macro",
			lines:  []string{"%endmacro"},
			reason: "%endmacro without a matching %macro",
			line:   1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.lines).Run()
			require.Error(t, err)
			var d *diag.Diagnostic
			require.ErrorAs(t, err, &d)
			require.Contains(t, d.Reason, tc.reason)
			require.Equal(t, tc.line, d.Line)
		})
	}
}
