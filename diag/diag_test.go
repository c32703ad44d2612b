package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnosticError(t *testing.T) {
	t.Run("source line", func(t *testing.T) {
		d := &Diagnostic{
			Line:       7,
			SourceText: "ADD gold ghost",
			Reason:     "Unknown argument: ghost",
		}
		require.Equal(t, "Error in line 7: ADD gold ghost\nUnknown argument: ghost", d.Error())
	})

	t.Run("with suggestion", func(t *testing.T) {
		d := &Diagnostic{
			Line:       3,
			SourceText: "PRM mood enum happy",
			Reason:     "Enum parameters require (value, percentage) pairs",
			Suggestion: "PRM name enum value1, percentage1, value2, percentage2",
		}
		require.Equal(t,
			"Error in line 3: PRM mood enum happy\n"+
				"Enum parameters require (value, percentage) pairs\n"+
				"PRM name enum value1, percentage1, value2, percentage2",
			d.Error())
	})

	t.Run("preprocessor directive", func(t *testing.T) {
		d := &Diagnostic{
			Line:      5,
			Directive: "%expand wealth_prm miner",
			Reason:    "Unknown argument: ghost",
		}
		require.Equal(t,
			"Error in preprocessor directive: %expand wealth_prm miner, declared at line 5\nUnknown argument: ghost",
			d.Error())
	})
}
