package parsing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{name: "opcode upper-cased", line: "agent miner", want: []string{"AGENT", "miner"}},
		{name: "commas as whitespace", line: "PRM mood enum happy, 50, sad, 50", want: []string{"PRM", "mood", "enum", "happy", "50", "sad", "50"}},
		{name: "comment stripped", line: "EAGENT # closes the miner", want: []string{"EAGENT"}},
		{name: "comment only", line: "# nothing here", want: nil},
		{name: "blank", line: "   ", want: nil},
		{name: "argument case preserved", line: "ADD Gold bonus", want: []string{"ADD", "Gold", "bonus"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Tokens(tc.line))
		})
	}
}
