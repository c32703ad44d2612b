package parsing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agents-assembly/aasm-go/diag"
	"github.com/agents-assembly/aasm-go/intermediate"
)

// minerProgram exercises every parameter category, all four behaviour
// triggers and a representative slice of the instruction set.
var minerProgram = []string{
	"MESSAGE trade offer",
	"PRM price float",
	"EMESSAGE",
	"",
	"AGENT miner",
	"PRM gold float init 100",
	"PRM luck float dist_normal 0, 1",
	"PRM stamina float dist_exp 2",
	"PRM mood enum happy, 50, sad, 50",
	"PRM friends conn_list",
	"PRM offers msg_list",
	"BEHAV start setup",
	"ACTION init modify_self",
	"DECL bonus 10",
	"ADD gold bonus",
	"EACTION",
	"EBEHAV",
	"BEHAV tick cyclic 5",
	"ACTION spend modify_self",
	"IGT gold 50",
	"SUBT gold 1",
	"EBLOCK",
	"EACTION",
	"EBEHAV",
	"BEHAV on_offer msg_rcv trade offer",
	"ACTION handle modify_self",
	"SET gold RCV.price",
	"ADDE friends RCV.sender",
	"ADDE offers RCV",
	"EACTION",
	"EBEHAV",
	"BEHAV announce one_time 10",
	"ACTION shout send_msg trade offer",
	"SET SEND.price gold",
	"SEND connections",
	"EACTION",
	"EBEHAV",
	"EAGENT",
}

func TestParse_FullProgram(t *testing.T) {
	parsed, err := Parse(minerProgram)
	require.NoError(t, err)

	require.Len(t, parsed.Messages, 1)
	msg := parsed.Messages[0]
	require.Equal(t, "trade", msg.Type)
	require.Equal(t, "offer", msg.Performative)
	require.Equal(t, []string{"price"}, msg.FloatParams)

	require.Len(t, parsed.Agents, 1)
	agent := parsed.Agents[0]
	require.Equal(t, "miner", agent.Name)

	t.Run("parameters", func(t *testing.T) {
		require.Len(t, agent.InitFloatParams, 1)
		require.Equal(t, "100", agent.InitFloatParams[0].Value)
		require.Len(t, agent.DistNormalFloatParams, 1)
		require.Len(t, agent.DistExpFloatParams, 1)
		require.Len(t, agent.EnumParams, 1)
		require.Equal(t, []intermediate.EnumValuePair{
			{Value: "happy", Percentage: "50"},
			{Value: "sad", Percentage: "50"},
		}, agent.EnumParams[0].Values)
		require.Len(t, agent.ConnectionListParams, 1)
		require.Len(t, agent.MessageListParams, 1)
		require.Equal(t, []string{"gold", "luck", "stamina"}, agent.FloatParamNames())
	})

	t.Run("behaviours", func(t *testing.T) {
		require.Len(t, agent.SetupBehaviours, 1)
		require.Len(t, agent.CyclicBehaviours, 1)
		require.Equal(t, "5", agent.CyclicBehaviours[0].Period)
		require.Len(t, agent.MessageReceivedBehaviours, 1)
		require.Len(t, agent.OneTimeBehaviours, 1)
		require.Equal(t, "10", agent.OneTimeBehaviours[0].Delay)
	})

	t.Run("message-received behaviour binds a template copy", func(t *testing.T) {
		received := agent.MessageReceivedBehaviours[0].ReceivedMessage
		require.Equal(t, "trade", received.Type)
		require.NotSame(t, msg, received)
	})

	t.Run("nested block", func(t *testing.T) {
		actions := agent.CyclicBehaviours[0].Actions()
		require.Len(t, actions, 1)
		statements := actions[0].Main().Statements
		require.Len(t, statements, 2)
		require.IsType(t, &intermediate.IfGreaterThan{}, statements[0])
		body, ok := statements[1].(*intermediate.Block)
		require.True(t, ok)
		require.Len(t, body.Statements, 1)
		require.IsType(t, &intermediate.Subtract{}, body.Statements[0])
	})

	t.Run("send action", func(t *testing.T) {
		actions := agent.OneTimeBehaviours[0].Actions()
		require.Len(t, actions, 1)
		send, ok := actions[0].(*intermediate.SendMessageAction)
		require.True(t, ok)
		require.Equal(t, "trade", send.SendMessage.Type)
		statements := send.Main().Statements
		require.Len(t, statements, 2)
		require.IsType(t, &intermediate.Set{}, statements[0])
		sendInstr, ok := statements[1].(*intermediate.Send)
		require.True(t, ok)
		require.Equal(t, intermediate.AgentConnectionList, sendInstr.Receiver.Kind)
	})
}

func TestParse_DuplicatePolicies(t *testing.T) {
	t.Run("duplicate agent rejected", func(t *testing.T) {
		_, err := Parse([]string{"AGENT a", "EAGENT", "AGENT a", "EAGENT"})
		requireDiagnostic(t, err, "Agent a is already defined")
	})

	t.Run("duplicate message overwrites, last write retrievable", func(t *testing.T) {
		parsed, err := Parse([]string{
			"MESSAGE trade offer",
			"PRM price float",
			"EMESSAGE",
			"MESSAGE trade offer",
			"PRM amount float",
			"EMESSAGE",
			"AGENT a",
			"BEHAV b msg_rcv trade offer",
			"EBEHAV",
			"EAGENT",
		})
		require.NoError(t, err)
		require.Len(t, parsed.Messages, 1)
		require.Equal(t, []string{"amount"}, parsed.Messages[0].FloatParams)
		received := parsed.Agents[0].MessageReceivedBehaviours[0].ReceivedMessage
		require.Equal(t, []string{"amount"}, received.FloatParams)
	})
}

func TestParse_MissingCloses(t *testing.T) {
	cases := []struct {
		name    string
		lines   []string
		missing string
	}{
		{name: "agent", lines: []string{"AGENT a"}, missing: "Missing EAGENT"},
		{name: "message", lines: []string{"MESSAGE t p"}, missing: "Missing EMESSAGE"},
		{name: "graph", lines: []string{"AGENT a", "EAGENT", "GRAPH statistical"}, missing: "Missing EGRAPH"},
		{name: "behaviour", lines: []string{"AGENT a", "BEHAV b setup"}, missing: "Missing EBEHAV"},
		{name: "action", lines: []string{"AGENT a", "BEHAV b setup", "ACTION c modify_self"}, missing: "Missing EACTION"},
		{name: "block", lines: []string{"AGENT a", "PRM x float init 1", "BEHAV b setup", "ACTION c modify_self", "IGT x 0", "EACTION"}, missing: "Missing EBLOCK"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.lines)
			requireDiagnostic(t, err, tc.missing)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	cases := []struct {
		name   string
		lines  []string
		reason string
	}{
		{
			name:   "unknown opcode",
			lines:  []string{"FLY away"},
			reason: "Unknown tokens",
		},
		{
			name:   "wrong arity fails at dispatch",
			lines:  []string{"AGENT a b"},
			reason: "Unknown tokens",
		},
		{
			name:   "duplicate parameter across categories",
			lines:  []string{"AGENT a", "PRM x float init 1", "PRM x conn_list"},
			reason: "Parameter x is already defined",
		},
		{
			name:   "undeclared message in behaviour",
			lines:  []string{"AGENT a", "BEHAV b msg_rcv nope nope"},
			reason: "Message nope/nope is not defined",
		},
		{
			name:   "undeclared argument",
			lines:  []string{"AGENT a", "PRM x float init 1", "BEHAV b setup", "ACTION c modify_self", "ADD x ghost"},
			reason: "Unknown argument: ghost",
		},
		{
			name:   "literal is not assignable",
			lines:  []string{"AGENT a", "PRM x float init 1", "BEHAV b setup", "ACTION c modify_self", "ADD 5 x"},
			reason: "5 cannot be assigned to",
		},
		{
			name:   "enum compared against number",
			lines:  []string{"AGENT a", "PRM mood enum happy 50 sad 50", "BEHAV b setup", "ACTION c modify_self", "IEQ mood 3"},
			reason: "mood and 3 cannot be compared",
		},
		{
			name:   "ordered comparison rejects enums",
			lines:  []string{"AGENT a", "PRM mood enum happy 50 sad 50", "BEHAV b setup", "ACTION c modify_self", "IGT mood happy"},
			reason: "mood is not a numeric value",
		},
		{
			name:   "eblock without block",
			lines:  []string{"AGENT a", "BEHAV b setup", "ACTION c modify_self", "EBLOCK"},
			reason: "EBLOCK without an open block",
		},
		{
			name:   "send outside send_msg action",
			lines:  []string{"AGENT a", "PRM l conn_list", "BEHAV b setup", "ACTION c modify_self", "SEND l"},
			reason: "SEND is only available inside send_msg actions",
		},
		{
			name:   "rcv outside msg_rcv behaviour",
			lines:  []string{"AGENT a", "PRM x float init 1", "BEHAV b setup", "ACTION c modify_self", "SET x RCV.price"},
			reason: "RCV is only available inside msg_rcv behaviours",
		},
		{
			name:   "declaration shadows parameter",
			lines:  []string{"AGENT a", "PRM x float init 1", "BEHAV b setup", "ACTION c modify_self", "DECL x 2"},
			reason: "x shadows an agent parameter",
		},
		{
			name:   "subset across list kinds",
			lines:  []string{"AGENT a", "PRM c conn_list", "PRM m msg_list", "BEHAV b setup", "ACTION x modify_self", "SUBS c m 2"},
			reason: "c and m are lists of different kinds",
		},
		{
			name:   "unknown distribution",
			lines:  []string{"AGENT a", "PRM x float init 1", "BEHAV b setup", "ACTION c modify_self", "RAND x float pareto 1"},
			reason: "Unknown distribution: pareto",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.lines)
			requireDiagnostic(t, err, tc.reason)
		})
	}
}

func TestParse_DiagnosticPosition(t *testing.T) {
	_, err := Parse([]string{
		"AGENT a",
		"",
		"# a comment line",
		"PRM x float init oops",
	})
	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, 4, d.Line)
	require.Equal(t, "PRM x float init oops", d.SourceText)
	require.Contains(t, d.Reason, "oops is not a valid number")
}

func TestParse_MacroGeneratedLineDiagnostic(t *testing.T) {
	_, err := Parse([]string{
		"%macro bad_prm NAME",
		"PRM NAME float init nan_value",
		"%endmacro",
		"AGENT a",
		"%expand bad_prm x",
		"EAGENT",
	})
	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Equal(t, 5, d.Line)
	require.Contains(t, d.Directive, "%expand bad_prm")
}

func requireDiagnostic(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	var d *diag.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Contains(t, d.Reason, reason)
}
